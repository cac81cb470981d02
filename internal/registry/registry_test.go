package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digiko-labs/cardforge/internal/card"
)

const sampleCSV = `symbol,name,color,color_secondary,precision
DGKO,Digiko,#00E8C6,#0B8F7D,6
KLV,Klever,#7A5CFF,,6
BTC,Bitcoin,#F7931A,,8
`

func loadSample(t *testing.T) *Registry {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tokens.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	r := New()
	require.NoError(t, r.LoadCSV(path))
	return r
}

func TestLoadCSVAndLookup(t *testing.T) {
	r := loadSample(t)

	tok, ok := r.Lookup("dgko")
	require.True(t, ok, "lookup is case-insensitive")
	assert.Equal(t, "Digiko", tok.Name)
	assert.Equal(t, "#00E8C6", tok.Color)
	assert.Equal(t, "#0B8F7D", tok.ColorSecondary)
	assert.Equal(t, 6, tok.Precision)

	_, ok = r.Lookup("NOPE")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	r := loadSample(t)

	all := r.Search("")
	assert.Len(t, all, 3)
	assert.Equal(t, "DGKO", all[0].Symbol, "load order preserved")

	byName := r.Search("bit")
	require.Len(t, byName, 1)
	assert.Equal(t, "BTC", byName[0].Symbol)
}

func TestEnrichFillsOnlyMissingFields(t *testing.T) {
	r := loadSample(t)

	in := []card.TokenInfo{
		{Symbol: "KLV"},
		{Symbol: "DGKO", Color: "#123456"},
		{Symbol: "UNKNOWN"},
	}
	out := r.Enrich(in)
	require.Len(t, out, 3)

	assert.Equal(t, "Klever", out[0].Name)
	assert.Equal(t, "#7A5CFF", out[0].Color)

	// explicit request values win over the registry
	assert.Equal(t, "#123456", out[1].Color)
	assert.Equal(t, "Digiko", out[1].Name)

	// unknown tokens pass through untouched
	assert.Equal(t, card.TokenInfo{Symbol: "UNKNOWN"}, out[2])
}

func TestLoadCSVMissingFile(t *testing.T) {
	r := New()
	assert.Error(t, r.LoadCSV(filepath.Join(t.TempDir(), "absent.csv")))
}

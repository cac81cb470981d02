// Package registry holds the known-token table used to enrich card
// requests that only name a symbol. It is plain display glue: the render
// engine never sees it, only the enriched TemplateData.
package registry

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/digiko-labs/cardforge/internal/card"
)

// Registry is a read-mostly token table keyed by uppercased symbol.
type Registry struct {
	mu     sync.RWMutex
	tokens map[string]card.TokenInfo
	order  []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{tokens: map[string]card.TokenInfo{}}
}

// LoadCSV reads a token table: symbol,name,color,color_secondary,precision.
// Header row required; missing optional columns are tolerated.
func (r *Registry) LoadCSV(path string) error {
	fp, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fp.Close()

	cr := csv.NewReader(fp)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) < 1 {
		return fmt.Errorf("csv %s has no header", path)
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.TrimSpace(strings.ToLower(h))] = i
	}
	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range rows[1:] {
		t := card.TokenInfo{
			Symbol:         get(row, "symbol"),
			Name:           get(row, "name"),
			Color:          get(row, "color"),
			ColorSecondary: get(row, "color_secondary"),
			AssetID:        get(row, "asset_id"),
			LogoURL:        get(row, "logo_url"),
		}
		if t.Symbol == "" {
			continue
		}
		if p := get(row, "precision"); p != "" {
			v, _ := strconv.Atoi(p)
			t.Precision = v
		}
		key := strings.ToUpper(t.Symbol)
		if _, dup := r.tokens[key]; !dup {
			r.order = append(r.order, key)
		}
		r.tokens[key] = t
	}
	return nil
}

// Lookup finds a token by symbol, case-insensitive.
func (r *Registry) Lookup(symbol string) (card.TokenInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tokens[strings.ToUpper(symbol)]
	return t, ok
}

// Search returns tokens whose symbol or name contains q, in load order.
// Empty q lists everything.
func (r *Registry) Search(q string) []card.TokenInfo {
	q = strings.ToUpper(strings.TrimSpace(q))
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []card.TokenInfo
	for _, key := range r.order {
		t := r.tokens[key]
		if q == "" || strings.Contains(key, q) || strings.Contains(strings.ToUpper(t.Name), q) {
			out = append(out, t)
		}
	}
	return out
}

// Enrich fills registry-known metadata into request tokens that only carry
// a symbol. Explicit request values always win.
func (r *Registry) Enrich(tokens []card.TokenInfo) []card.TokenInfo {
	out := make([]card.TokenInfo, len(tokens))
	for i, t := range tokens {
		known, ok := r.Lookup(t.Symbol)
		if !ok {
			out[i] = t
			continue
		}
		if t.Name == "" {
			t.Name = known.Name
		}
		if t.Color == "" {
			t.Color = known.Color
		}
		if t.ColorSecondary == "" {
			t.ColorSecondary = known.ColorSecondary
		}
		if t.LogoURL == "" {
			t.LogoURL = known.LogoURL
		}
		if t.AssetID == "" {
			t.AssetID = known.AssetID
		}
		if t.Precision == 0 {
			t.Precision = known.Precision
		}
		out[i] = t
	}
	return out
}

package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairLabel(t *testing.T) {
	got := pairLabel(TokenInfo{Symbol: "dgko"}, TokenInfo{Symbol: "klv"})
	assert.Equal(t, "DGKO / KLV", got)
}

func TestListingCTA(t *testing.T) {
	assert.Equal(t, "ABC • Now on Digiko", listingCTA("abc", "Now on Digiko"))
}

func TestMetricLabelLookup(t *testing.T) {
	assert.Equal(t, "active users", metricLabel("users"))
	assert.Equal(t, "transactions processed", metricLabel("transactions"))
	// unrecognized keys fall back to the raw key
	assert.Equal(t, "unknown_key", metricLabel("unknown_key"))
}

func TestSplitHeadline(t *testing.T) {
	assert.Equal(t, []string{"NEW PAIR ADDED"}, splitHeadline("NEW PAIR ADDED"))
	assert.Equal(t,
		[]string{"A BRAND NEW", "ERA BEGINS"},
		splitHeadline("A BRAND NEW ERA BEGINS"))
	assert.Equal(t,
		[]string{"ONE TWO", "THREE FOUR"},
		splitHeadline("ONE TWO THREE FOUR"))
}

func TestTemplateDefaults(t *testing.T) {
	// scenario: new-pair with empty fields uses the stock headline
	d := TemplateData{Template: TemplateNewPair, Tokens: []TokenInfo{{Symbol: "DGKO"}, {Symbol: "KLV"}}}
	assert.Equal(t, "NEW PAIR ADDED", d.field("headline", "NEW PAIR ADDED"))
	assert.Equal(t, "DGKO / KLV", pairLabel(d.token(0), d.token(1)))

	// scenario: listing CTA concatenates symbol and subheadline
	listing := TemplateData{
		Template: TemplateListing,
		Tokens:   []TokenInfo{{Symbol: "ABC"}},
		Fields:   map[string]string{"subheadline": "Now on Digiko"},
	}
	assert.Equal(t, "ABC • Now on Digiko",
		listingCTA(listing.token(0).Symbol, listing.field("subheadline", "Now on Digiko")))

	// scenario: milestone metric resolves via the lookup table
	milestone := TemplateData{Template: TemplateMilestone,
		Fields: map[string]string{"number": "1,000,000", "metric": "users"}}
	assert.Equal(t, "active users", metricLabel(milestone.field("metric", "transactions")))
}

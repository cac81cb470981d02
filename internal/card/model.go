package card

import "strings"

// Template selects one of the fixed layout recipes.
type Template string

const (
	TemplateNewPair      Template = "new-pair"
	TemplateAPRPromotion Template = "apr-promotion"
	TemplateListing      Template = "listing"
	TemplateAnnouncement Template = "announcement"
	TemplateMilestone    Template = "milestone"
	TemplateSeason       Template = "season-announcement"
)

// GridStyle selects the background grid variant.
type GridStyle string

const (
	GridNone        GridStyle = "none"
	GridPerspective GridStyle = "perspective"
	GridIsometric   GridStyle = "isometric"
	GridHorizontal  GridStyle = "horizontal"
	GridRadial      GridStyle = "radial"
	GridHex         GridStyle = "hex"
)

// GridConfig configures the background grid layer.
type GridConfig struct {
	Style   GridStyle `json:"style"`
	Opacity float64   `json:"opacity"` // 0-100
	Density int       `json:"density"` // 1|2|3, clamped
}

// TokenInfo describes a token shown on a card. Only Symbol is required;
// everything else has a drawing fallback.
type TokenInfo struct {
	Symbol         string `json:"symbol"`
	Name           string `json:"name"`
	Color          string `json:"color"`
	ColorSecondary string `json:"color_secondary,omitempty"`
	AssetID        string `json:"asset_id,omitempty"`
	LogoURL        string `json:"logo_url,omitempty"`
	Precision      int    `json:"precision,omitempty"`
}

// LogoRef resolves the token's logo reference: an explicit URL wins,
// otherwise the conventional /tokens/{symbol}.png path, otherwise empty
// (the badge falls back to color + initial).
func (t TokenInfo) LogoRef() string {
	if t.LogoURL != "" {
		return t.LogoURL
	}
	if t.Symbol != "" {
		return "/tokens/" + strings.ToLower(t.Symbol) + ".png"
	}
	return ""
}

// Initial returns the uppercased first character of the symbol, used by the
// badge fallback glyph.
func (t TokenInfo) Initial() string {
	for _, r := range t.Symbol {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// TemplateData is the immutable input of one render. Missing fields and
// tokens are defaulted per template; a render never fails on absent data.
type TemplateData struct {
	Template       Template          `json:"template"`
	Fields         map[string]string `json:"fields"`
	Tokens         []TokenInfo       `json:"tokens"`
	AccentColor    string            `json:"accent_color"`
	Grid           GridConfig        `json:"grid"`
	ShowDisclaimer bool              `json:"show_disclaimer"`
	Size           string            `json:"size"`
}

// field returns the named field or def when absent or empty.
func (d TemplateData) field(name, def string) string {
	if v, ok := d.Fields[name]; ok && v != "" {
		return v
	}
	return def
}

// token returns the i-th token or a placeholder.
func (d TemplateData) token(i int) TokenInfo {
	if i < len(d.Tokens) {
		return d.Tokens[i]
	}
	return TokenInfo{Symbol: "TOKEN", Color: "#627EEA"}
}

// accent returns the accent color hex, defaulted.
func (d TemplateData) accent() string {
	if d.AccentColor != "" {
		return d.AccentColor
	}
	return "#00E8C6"
}

// SizeSpec is a fixed output raster size.
type SizeSpec struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Sizes is the table of named social formats.
var Sizes = map[string]SizeSpec{
	"square":    {1080, 1080},
	"portrait":  {1080, 1350},
	"landscape": {1200, 630},
	"story":     {1080, 1920},
	"wide":      {1600, 900},
}

// SizeFor resolves a size key, falling back to square for unknown keys.
func SizeFor(key string) SizeSpec {
	if s, ok := Sizes[key]; ok {
		return s
	}
	return Sizes["square"]
}

// LogoRefs collects every logo reference a render of d will want, including
// the fixed brand footer logo. Empty refs are skipped, duplicates kept out.
func (d TemplateData) LogoRefs() []string {
	seen := map[string]bool{}
	var refs []string
	add := func(ref string) {
		if ref != "" && !seen[ref] {
			seen[ref] = true
			refs = append(refs, ref)
		}
	}
	for _, t := range d.Tokens {
		add(t.LogoRef())
	}
	add(BrandLogoRef)
	return refs
}

// Brand constants drawn by the footer.
const (
	BrandLogoRef    = "/brand/logo.png"
	BrandName       = "DIGIKO"
	BrandTagline    = "The community-first multichain DEX"
	BrandSite       = "digiko.exchange"
	BrandDisclaimer = "Not financial advice. Digital assets are volatile and trading involves risk."
)

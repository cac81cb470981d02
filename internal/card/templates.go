package card

import (
	"image/color"
	"strings"

	"github.com/fogleman/gg"
)

// layout tracks the vertical cursor a template recipe advances as it draws.
// Gap constants are proportional to canvas width so every recipe rescales
// with the surface.
type layout struct {
	s *scene
	y float64
}

func (s *scene) layoutAt(frac float64) *layout {
	return &layout{s: s, y: s.h * frac}
}

func (l *layout) gapXL() float64     { return l.s.w * 0.055 }
func (l *layout) gapLarge() float64  { return l.s.w * 0.040 }
func (l *layout) gapMedium() float64 { return l.s.w * 0.025 }
func (l *layout) gapSmall() float64  { return l.s.w * 0.015 }

// advance moves the cursor below the given baseline by gap.
func (l *layout) advance(baseline, gap float64) {
	l.y = baseline + gap
}

// dispatch selects the template recipe. Unknown templates draw nothing
// beyond the background and footer.
func (s *scene) dispatch() {
	switch s.data.Template {
	case TemplateNewPair:
		s.drawNewPair()
	case TemplateAPRPromotion:
		s.drawAPRPromotion()
	case TemplateListing:
		s.drawListing()
	case TemplateAnnouncement:
		s.drawAnnouncement()
	case TemplateMilestone:
		s.drawMilestone()
	case TemplateSeason:
		s.drawSeason()
	}
}

// pairLabel formats the trading-pair caption for two tokens.
func pairLabel(a, b TokenInfo) string {
	return strings.ToUpper(a.Symbol) + " / " + strings.ToUpper(b.Symbol)
}

// listingCTA joins the listed symbol and the listing subheadline.
func listingCTA(symbol, subheadline string) string {
	return strings.ToUpper(symbol) + " • " + subheadline
}

// metricLabels maps milestone metric keys to display phrases. Unrecognized
// keys fall through to the raw key.
var metricLabels = map[string]string{
	"transactions": "transactions processed",
	"users":        "active users",
	"volume":       "total volume traded",
	"trades":       "trades executed",
	"holders":      "token holders",
	"pairs":        "pairs listed",
}

func metricLabel(key string) string {
	if label, ok := metricLabels[key]; ok {
		return label
	}
	return key
}

// splitHeadline breaks headlines longer than three words into two roughly
// even lines; shorter headlines stay on one line.
func splitHeadline(text string) []string {
	words := strings.Fields(text)
	if len(words) <= 3 {
		return []string{strings.Join(words, " ")}
	}
	mid := (len(words) + 1) / 2
	return []string{
		strings.Join(words[:mid], " "),
		strings.Join(words[mid:], " "),
	}
}

func (s *scene) drawNewPair() {
	d := s.data
	l := s.layoutAt(0.12)

	s.drawKicker(d.field("kicker", "DIGIKO EXCHANGE"), l.y)
	l.advance(l.y, l.gapLarge())

	headline := strings.ToUpper(d.field("headline", "NEW PAIR ADDED"))
	l.advance(s.drawHeadline(headline, l.y+s.w*0.05, 1), l.gapXL())

	// platform with the pair sitting on it
	py := l.y + s.w*0.16
	s.drawPlatform(s.w/2, py)
	r := s.w * 0.085
	s.drawTokenBadge(d.token(0), s.w/2-r*1.15, py-r*0.9, r)
	s.drawTokenBadge(d.token(1), s.w/2+r*1.15, py-r*0.9, r)
	l.advance(py+s.w*platformWidth*0.16+s.w*0.05, l.gapLarge())

	label := textStyle{
		font:     FontMono,
		size:     s.w * 0.026,
		tracking: 0.2,
		color:    color.NRGBA{R: 0xf0, G: 0xf4, B: 0xfb, A: 0xff},
	}
	s.drawTracked(pairLabel(d.token(0), d.token(1)), s.w/2, l.y, AlignCenter, label)
	l.advance(l.y, l.gapXL())

	s.drawCTA(d.field("cta", "TRADE NOW AT DIGIKO.EXCHANGE"), l.y)
}

func (s *scene) drawAPRPromotion() {
	d := s.data
	l := s.layoutAt(0.11)

	s.drawKicker(d.field("kicker", "LIMITED TIME OFFER"), l.y)
	l.advance(l.y, l.gapMedium())

	headline := strings.ToUpper(d.field("headline", "EARN MORE"))
	l.advance(s.drawHeadline(headline, l.y+s.w*0.05, 0.85), l.gapXL())

	// hero APR value with its own glow
	apr := d.field("apr", "120%")
	l.advance(s.drawHero(apr, l.y+s.w*0.09), l.gapSmall())
	s.drawLabel(d.field("apr_label", "APR"), s.w/2, l.y, AlignCenter, 0.9)
	l.advance(l.y, l.gapXL())

	r := s.w * 0.07
	s.drawTokenBadge(d.token(0), s.w/2, l.y+r, r)
	l.advance(l.y+r*2, l.gapLarge())

	l.advance(s.drawSubhead(d.field("subheadline", "Stake and earn rewards every epoch"), l.y), l.gapXL())
	s.drawCTA(d.field("cta", "START EARNING"), l.y)
}

func (s *scene) drawListing() {
	d := s.data
	l := s.layoutAt(0.12)
	token := d.token(0)

	s.drawKicker(d.field("kicker", "NEW LISTING"), l.y)
	l.advance(l.y, l.gapLarge())

	// the listed symbol is the hero line
	l.advance(s.drawHeadline(strings.ToUpper(token.Symbol), l.y+s.w*0.06, 1.2), l.gapSmall())
	l.advance(s.drawSubhead(d.field("secondary", "is now available"), l.y+s.w*0.02), l.gapXL())

	py := l.y + s.w*0.15
	s.drawPlatform(s.w/2, py)
	r := s.w * 0.1
	s.drawTokenBadge(token, s.w/2, py-r*0.75, r)
	l.advance(py+s.w*platformWidth*0.16+s.w*0.05, l.gapXL())

	s.drawCTA(listingCTA(token.Symbol, d.field("subheadline", "Now on Digiko")), l.y)
}

func (s *scene) drawAnnouncement() {
	d := s.data
	l := s.layoutAt(0.13)

	s.drawKicker(d.field("kicker", "ANNOUNCEMENT"), l.y)
	l.advance(l.y, l.gapLarge())

	// long headlines wrap onto two centered lines at reduced scale
	lines := splitHeadline(strings.ToUpper(d.field("headline", "BIG NEWS COMING")))
	scale := 1.0
	if len(lines) > 1 {
		scale = 0.72
	}
	for _, line := range lines {
		l.advance(s.drawHeadline(line, l.y+s.w*0.05*scale, scale), l.gapSmall())
	}
	l.advance(l.y, l.gapXL())

	s.drawChain(l.y + s.w*0.06)
	l.advance(l.y+s.w*0.14, l.gapLarge())

	body := d.field("body", "Something new is landing on the exchange. Stay tuned for details.")
	l.advance(s.drawBody(body, l.y, s.w*0.72), l.gapXL())

	s.drawCTA(d.field("cta", "FOLLOW @DIGIKO FOR UPDATES"), l.y)
}

func (s *scene) drawMilestone() {
	d := s.data
	l := s.layoutAt(0.13)

	s.drawKicker(d.field("kicker", "MILESTONE REACHED"), l.y)
	l.advance(l.y, l.gapXL())

	l.advance(s.drawHero(d.field("number", "1,000,000"), l.y+s.w*0.1), l.gapMedium())
	s.drawLabel(metricLabel(d.field("metric", "transactions")), s.w/2, l.y, AlignCenter, 0.95)
	l.advance(l.y, l.gapXL())

	body := d.field("body", "Thank you to everyone trading with us. This is just the start.")
	l.advance(s.drawBody(body, l.y, s.w*0.7), l.gapXL())

	s.drawCTA(d.field("cta", "JOIN THE NEXT MILLION"), l.y)
}

func (s *scene) drawSeason() {
	d := s.data
	l := s.layoutAt(0.11)

	s.drawCheckeredCorners()
	s.drawSpeedLines()

	s.drawKicker(d.field("kicker", "SEASON EVENT"), l.y)
	l.advance(l.y, l.gapMedium())

	headline := strings.ToUpper(d.field("headline", "TRADING SEASON"))
	l.advance(s.drawHeadline(headline, l.y+s.w*0.05, 0.9), l.gapXL())

	l.advance(s.drawHero(d.field("number", "$50,000"), l.y+s.w*0.09), l.gapSmall())
	s.drawLabel(metricLabel(d.field("metric", "prize pool")), s.w/2, l.y, AlignCenter, 0.95)
	l.advance(l.y, l.gapXL())

	// two fixed info cards side by side
	cardW := s.w * 0.33
	cardH := s.w * 0.1
	gap := s.w * 0.03
	s.drawInfoCard(s.w/2-cardW-gap/2, l.y, cardW, cardH,
		d.field("top_players", "TOP 100"), "win rewards")
	s.drawInfoCard(s.w/2+gap/2, l.y, cardW, cardH,
		d.field("duration", "14 DAYS"), "to compete")
	l.advance(l.y+cardH, l.gapXL())

	s.drawCTA(d.field("cta", "ENTER THE RACE"), l.y)
}

// drawHero draws a large numeric value with its own radial glow. Returns
// the baseline drawn at.
func (s *scene) drawHero(value string, y float64) float64 {
	st := textStyle{
		font:     FontDisplayBold,
		size:     s.w * 0.11,
		tracking: 0.01,
		gradient: &gradientSpec{
			from: HexToRGBA(s.accent, 1),
			to:   color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		},
	}
	total := s.trackedWidth(st, value)

	glow := gg.NewRadialGradient(s.w/2, y-st.size*0.35, 0, s.w/2, y-st.size*0.35, total*0.8+st.size)
	glow.AddColorStop(0, HexToRGBA(s.accent, 0.3))
	glow.AddColorStop(1, HexToRGBA(s.accent, 0))
	s.dc.SetFillStyle(glow)
	s.dc.DrawRectangle(s.w/2-total, y-st.size*1.6, total*2, st.size*2.4)
	s.dc.Fill()

	s.drawTracked(value, s.w/2, y, AlignCenter, st)
	return y
}

// drawInfoCard draws one season stat card: rounded panel, mono value,
// dim caption.
func (s *scene) drawInfoCard(x, y, w, h float64, value, caption string) {
	s.dc.SetColor(color.NRGBA{R: 0x0c, G: 0x10, B: 0x1e, A: 0xcc})
	s.dc.DrawRoundedRectangle(x, y, w, h, s.w*0.012)
	s.dc.Fill()
	s.dc.SetColor(HexToRGBA(s.accent, 0.45))
	s.dc.SetLineWidth(s.w * 0.0014)
	s.dc.DrawRoundedRectangle(x, y, w, h, s.w*0.012)
	s.dc.Stroke()

	value = strings.ToUpper(value)
	vst := textStyle{
		font:     FontMono,
		size:     s.w * 0.026,
		tracking: 0.08,
		color:    color.NRGBA{R: 0xf0, G: 0xf4, B: 0xfb, A: 0xff},
	}
	s.drawTracked(value, x+w/2, y+h*0.45, AlignCenter, vst)
	s.drawLabel(caption, x+w/2, y+h*0.78, AlignCenter, 0.8)
}

// drawCheckeredCorners paints small checkered-flag patches in the top
// corners of the season template.
func (s *scene) drawCheckeredCorners() {
	cell := s.w * 0.016
	cols, rows := 5, 3
	for _, left := range []bool{true, false} {
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				if (row+col)%2 != 0 {
					continue
				}
				x := float64(col) * cell
				if !left {
					x = s.w - float64(col+1)*cell
				}
				fade := 1 - float64(col)/float64(cols)
				s.dc.SetColor(HexToRGBA("#ffffff", 0.25*fade))
				s.dc.DrawRectangle(x, float64(row)*cell, cell, cell)
				s.dc.Fill()
			}
		}
	}
}

// drawSpeedLines streaks a few horizontal motion lines across the midband.
func (s *scene) drawSpeedLines() {
	ys := []float64{0.30, 0.36, 0.62, 0.68}
	for i, fy := range ys {
		y := s.h * fy
		w := s.w * (0.12 + 0.05*float64(i%2))
		x := s.w * 0.04
		if i%2 == 1 {
			x = s.w - x - w
		}
		grad := gg.NewLinearGradient(x, y, x+w, y)
		grad.AddColorStop(0, HexToRGBA(s.accent, 0))
		grad.AddColorStop(1, HexToRGBA(s.accent, 0.35))
		if i%2 == 1 {
			grad = gg.NewLinearGradient(x, y, x+w, y)
			grad.AddColorStop(0, HexToRGBA(s.accent, 0.35))
			grad.AddColorStop(1, HexToRGBA(s.accent, 0))
		}
		s.dc.SetFillStyle(grad)
		s.dc.DrawRectangle(x, y, w, s.w*0.002)
		s.dc.Fill()
	}
}

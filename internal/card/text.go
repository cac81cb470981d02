package card

import (
	"image/color"
	"strings"

	"github.com/fogleman/gg"
)

// Align positions tracked text against its anchor x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// textStyle describes one text draw. Tracking is the extra gap inserted
// between characters as a multiple of the font size. When gradient is set
// it overrides color and spans the full tracked width.
type textStyle struct {
	font     FontKind
	size     float64
	tracking float64
	color    color.Color
	gradient *gradientSpec
}

type gradientSpec struct {
	from, to color.Color
}

// trackedWidth measures text as the sum of per-character advances plus
// (n-1) tracking gaps. This is the width the alignment offset is computed
// from, so draw and measure must agree exactly.
func (s *scene) trackedWidth(st textStyle, text string) float64 {
	s.dc.SetFontFace(s.fonts.Face(st.font, st.size))
	total := 0.0
	n := 0
	for _, r := range text {
		w, _ := s.dc.MeasureString(string(r))
		total += w
		n++
	}
	if n > 1 {
		total += float64(n-1) * st.tracking * st.size
	}
	return total
}

// drawTracked draws text character by character at accumulating x offsets.
// x is the anchor: left edge, center, or right edge per align. y is the
// baseline. Returns the total tracked width.
//
// Gradient fills are sampled per character at the glyph's center x, over a
// linear gradient spanning the measured total width, so the ramp always
// covers the tracked extent regardless of alignment.
func (s *scene) drawTracked(text string, x, y float64, align Align, st textStyle) float64 {
	s.dc.SetFontFace(s.fonts.Face(st.font, st.size))
	total := s.trackedWidth(st, text)

	startX := x
	switch align {
	case AlignCenter:
		startX = x - total/2
	case AlignRight:
		startX = x - total
	}

	var grad gg.Gradient
	if st.gradient != nil {
		grad = gg.NewLinearGradient(startX, y, startX+total, y)
		grad.AddColorStop(0, st.gradient.from)
		grad.AddColorStop(1, st.gradient.to)
	}

	gap := st.tracking * st.size
	cx := startX
	for _, r := range text {
		ch := string(r)
		w, _ := s.dc.MeasureString(ch)
		if grad != nil {
			s.dc.SetColor(grad.ColorAt(int(cx+w/2), int(y)))
		} else {
			s.dc.SetColor(st.color)
		}
		s.dc.DrawString(ch, cx, y)
		cx += w + gap
	}
	return total
}

// drawKicker draws the small tracked label above a headline. Mono family,
// wide tracking, accent color. Returns the baseline it drew at.
func (s *scene) drawKicker(text string, y float64) float64 {
	st := textStyle{
		font:     FontMono,
		size:     s.w * 0.018,
		tracking: 0.3,
		color:    HexToRGBA(s.accent, 0.95),
	}
	s.drawTracked(strings.ToUpper(text), s.w/2, y, AlignCenter, st)
	return y
}

// drawHeadline draws the main line: soft radial glow behind the text, then
// the tracked gradient pass. scale lets templates shrink long headlines.
// Returns the y below the headline.
func (s *scene) drawHeadline(text string, y, scale float64) float64 {
	st := textStyle{
		font:     FontDisplayBold,
		size:     s.w * 0.062 * scale,
		tracking: 0.02,
		gradient: &gradientSpec{
			from: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
			to:   HexToRGBA(s.accent, 1),
		},
	}
	total := s.trackedWidth(st, text)

	// glow halo behind the text
	glow := gg.NewRadialGradient(s.w/2, y-st.size*0.35, 0, s.w/2, y-st.size*0.35, total*0.75+st.size)
	glow.AddColorStop(0, HexToRGBA(s.accent, 0.20))
	glow.AddColorStop(1, HexToRGBA(s.accent, 0))
	s.dc.SetFillStyle(glow)
	s.dc.DrawRectangle(s.w/2-total, y-st.size*2, total*2, st.size*3)
	s.dc.Fill()

	s.drawTracked(text, s.w/2, y, AlignCenter, st)
	return y + st.size*0.55
}

// drawSubhead draws secondary prose below a headline.
func (s *scene) drawSubhead(text string, y float64) float64 {
	st := textStyle{
		font:  FontDisplay,
		size:  s.w * 0.027,
		color: color.NRGBA{R: 0xc9, G: 0xd2, B: 0xe4, A: 0xff},
	}
	s.drawTracked(text, s.w/2, y, AlignCenter, st)
	return y
}

// drawBody draws wrapped prose centered on the canvas, breaking greedily
// whenever the next word would exceed maxWidth. Returns the baseline of the
// last drawn line.
func (s *scene) drawBody(text string, y, maxWidth float64) float64 {
	st := textStyle{
		font:  FontDisplay,
		size:  s.w * 0.021,
		color: color.NRGBA{R: 0x9a, G: 0xa5, B: 0xbd, A: 0xff},
	}
	lineHeight := st.size * 1.5
	lines := s.wrapBody(st, text, maxWidth)
	for i, line := range lines {
		s.drawTracked(line, s.w/2, y+float64(i)*lineHeight, AlignCenter, st)
	}
	if len(lines) > 1 {
		y += float64(len(lines)-1) * lineHeight
	}
	return y
}

// wrapBody splits text into greedy lines no wider than maxWidth. A single
// overlong word gets its own line rather than being broken mid-word.
func (s *scene) wrapBody(st textStyle, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if s.trackedWidth(st, candidate) > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	return append(lines, line)
}

// drawCTA draws the call-to-action pill: mono tracked text inside a dark
// rounded rectangle with an accent stroke.
func (s *scene) drawCTA(text string, y float64) float64 {
	st := textStyle{
		font:     FontMono,
		size:     s.w * 0.019,
		tracking: 0.14,
		color:    color.NRGBA{R: 0xf0, G: 0xf4, B: 0xfb, A: 0xff},
	}
	text = strings.ToUpper(text)
	total := s.trackedWidth(st, text)

	padX := st.size * 1.3
	padY := st.size * 0.85
	bx := s.w/2 - total/2 - padX
	by := y - st.size - padY
	bw := total + padX*2
	bh := st.size + padY*2

	s.dc.SetColor(color.NRGBA{R: 0x0b, G: 0x0f, B: 0x1c, A: 0xd9})
	s.dc.DrawRoundedRectangle(bx, by, bw, bh, bh/2)
	s.dc.Fill()
	s.dc.SetColor(HexToRGBA(s.accent, 0.7))
	s.dc.SetLineWidth(s.w * 0.0016)
	s.dc.DrawRoundedRectangle(bx, by, bw, bh, bh/2)
	s.dc.Stroke()

	s.drawTracked(text, s.w/2, y, AlignCenter, st)
	return by + bh
}

// drawLabel draws a small mono caption at an explicit anchor.
func (s *scene) drawLabel(text string, x, y float64, align Align, alpha float64) {
	st := textStyle{
		font:     FontMono,
		size:     s.w * 0.015,
		tracking: 0.12,
		color:    color.NRGBA{R: 0x8a, G: 0x94, B: 0xac, A: uint8(alpha*255 + 0.5)},
	}
	s.drawTracked(strings.ToUpper(text), x, y, align, st)
}

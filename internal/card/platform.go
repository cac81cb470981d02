package card

import (
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// platformWidth is the platform footprint as a fraction of canvas width.
// Every other platform measurement derives from it, so the whole prism
// rescales uniformly with the canvas.
const platformWidth = 0.38

// drawPlatform renders the isometric hexagonal prism centered at (cx, cy):
// shadow and glow beneath, the faces back to front, then the lens flare and
// accent line at the front-bottom edge.
func (s *scene) drawPlatform(cx, cy float64) {
	pw := s.w * platformWidth
	rx := pw / 2   // hex radius in x
	ry := rx * 0.5 // isometric squash
	depth := pw * 0.16

	// drop shadow
	shadow := gg.NewRadialGradient(cx, cy+depth+ry*0.6, 0, cx, cy+depth+ry*0.6, rx*1.15)
	shadow.AddColorStop(0, color.NRGBA{A: 0xa0})
	shadow.AddColorStop(1, color.NRGBA{A: 0})
	s.dc.SetFillStyle(shadow)
	s.dc.DrawEllipse(cx, cy+depth+ry*0.6, rx*1.15, ry*0.6)
	s.dc.Fill()

	// accent glow pooling under the prism
	s.glowAt(cx, cy, rx*1.3, HexToRGBA(s.accent, 1), 0.22)

	top := hexPoints(cx, cy, rx, ry)
	bottom := hexPoints(cx, cy+depth, rx, ry)

	// side faces back to front; only the front three read at this squash
	shades := []color.NRGBA{
		{R: 0x0a, G: 0x0d, B: 0x16, A: 0xff},
		{R: 0x0e, G: 0x12, B: 0x1f, A: 0xff},
		{R: 0x0a, G: 0x0d, B: 0x16, A: 0xff},
	}
	order := []int{4, 3, 5, 2, 0, 1} // back faces first
	for _, i := range order {
		j := (i + 1) % 6
		s.dc.MoveTo(top[i][0], top[i][1])
		s.dc.LineTo(top[j][0], top[j][1])
		s.dc.LineTo(bottom[j][0], bottom[j][1])
		s.dc.LineTo(bottom[i][0], bottom[i][1])
		s.dc.ClosePath()
		s.dc.SetColor(shades[i%3])
		s.dc.FillPreserve()
		s.dc.SetColor(HexToRGBA(s.accent, 0.35))
		s.dc.SetLineWidth(s.w * 0.0012)
		s.dc.Stroke()
	}

	// top face last, slightly lighter with a stronger outline
	s.dc.MoveTo(top[0][0], top[0][1])
	for i := 1; i < 6; i++ {
		s.dc.LineTo(top[i][0], top[i][1])
	}
	s.dc.ClosePath()
	s.dc.SetColor(color.NRGBA{R: 0x12, G: 0x16, B: 0x26, A: 0xff})
	s.dc.FillPreserve()
	s.dc.SetColor(HexToRGBA(s.accent, 0.6))
	s.dc.SetLineWidth(s.w * 0.0016)
	s.dc.Stroke()

	// lens flare and accent line at the front-bottom edge
	fx, fy := cx, cy+depth+ry
	flare := gg.NewRadialGradient(fx, fy, 0, fx, fy, rx*0.28)
	flare.AddColorStop(0, HexToRGBA(s.accent, 0.8))
	flare.AddColorStop(0.25, HexToRGBA(s.accent, 0.25))
	flare.AddColorStop(1, HexToRGBA(s.accent, 0))
	s.dc.SetFillStyle(flare)
	s.dc.DrawRectangle(fx-rx*0.28, fy-rx*0.28, rx*0.56, rx*0.56)
	s.dc.Fill()

	line := gg.NewLinearGradient(fx-rx*0.8, fy, fx+rx*0.8, fy)
	line.AddColorStop(0, HexToRGBA(s.accent, 0))
	line.AddColorStop(0.5, HexToRGBA(s.accent, 0.9))
	line.AddColorStop(1, HexToRGBA(s.accent, 0))
	s.dc.SetFillStyle(line)
	s.dc.DrawRectangle(fx-rx*0.8, fy-s.w*0.0012, rx*1.6, s.w*0.0024)
	s.dc.Fill()
}

// hexPoints returns the six corners of an isometric hexagon, starting at
// the right corner and winding clockwise in screen space.
func hexPoints(cx, cy, rx, ry float64) [6][2]float64 {
	var pts [6][2]float64
	for i := 0; i < 6; i++ {
		a := float64(i) / 6 * 2 * math.Pi
		pts[i] = [2]float64{cx + rx*math.Cos(a), cy + ry*math.Sin(a)}
	}
	return pts
}

// drawTokenBadge renders a circular token badge at (cx, cy) with radius r:
// glow ring, rim stroke, dark disc, then the clipped logo or the
// color+initial fallback when no bitmap resolved.
func (s *scene) drawTokenBadge(t TokenInfo, cx, cy, r float64) {
	tint := t.Color
	if tint == "" {
		tint = s.accent
	}

	ring := gg.NewRadialGradient(cx, cy, r*0.85, cx, cy, r*1.55)
	ring.AddColorStop(0, HexToRGBA(tint, 0.35))
	ring.AddColorStop(1, HexToRGBA(tint, 0))
	s.dc.SetFillStyle(ring)
	s.dc.DrawCircle(cx, cy, r*1.55)
	s.dc.Fill()

	s.dc.SetColor(HexToRGBA(tint, 0.9))
	s.dc.SetLineWidth(r * 0.08)
	s.dc.DrawCircle(cx, cy, r)
	s.dc.Stroke()

	s.dc.SetColor(color.NRGBA{R: 0x0a, G: 0x0d, B: 0x16, A: 0xff})
	s.dc.DrawCircle(cx, cy, r*0.92)
	s.dc.Fill()

	inner := r * 0.84
	if logo := s.image(t.LogoRef()); logo != nil {
		d := int(inner * 2)
		fitted := imaging.Fill(logo, d, d, imaging.Center, imaging.Lanczos)
		s.dc.Push()
		s.dc.DrawCircle(cx, cy, inner)
		s.dc.Clip()
		s.dc.DrawImageAnchored(fitted, int(cx), int(cy), 0.5, 0.5)
		s.dc.ResetClip()
		s.dc.Pop()
		return
	}

	// fallback: token color fill and the first symbol character
	second := t.ColorSecondary
	if second == "" {
		second = tint
	}
	fill := gg.NewLinearGradient(cx, cy-inner, cx, cy+inner)
	fill.AddColorStop(0, HexToRGBA(tint, 1))
	fill.AddColorStop(1, HexToRGBA(second, 1))
	s.dc.SetFillStyle(fill)
	s.dc.DrawCircle(cx, cy, inner)
	s.dc.Fill()

	st := textStyle{
		font:  FontDisplayBold,
		size:  inner * 1.1,
		color: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xf2},
	}
	s.dc.SetFontFace(s.fonts.Face(st.font, st.size))
	glyph := t.Initial()
	gw, _ := s.dc.MeasureString(glyph)
	s.dc.SetColor(st.color)
	s.dc.DrawString(glyph, cx-gw/2, cy+st.size*0.36)
}

// drawChain renders the announcement motif: five isometric blocks of
// varying scale and opacity linked by straight lines.
func (s *scene) drawChain(cy float64) {
	scales := []float64{0.65, 0.85, 1, 0.85, 0.65}
	alphas := []float64{0.45, 0.7, 1, 0.7, 0.45}
	base := s.w * 0.055
	step := s.w * 0.17
	startX := s.w/2 - 2*step

	// links first so the blocks sit on top of them
	s.dc.SetLineWidth(s.w * 0.0018)
	for i := 0; i < 4; i++ {
		s.dc.SetColor(HexToRGBA(s.accent, 0.5*math.Min(alphas[i], alphas[i+1])))
		s.dc.DrawLine(startX+float64(i)*step, cy, startX+float64(i+1)*step, cy)
		s.dc.Stroke()
	}

	for i := 0; i < 5; i++ {
		s.drawBlock(startX+float64(i)*step, cy, base*scales[i], alphas[i])
	}
}

// drawBlock draws one isometric cube with top, left and right faces and a
// centered # glyph.
func (s *scene) drawBlock(cx, cy, r, alpha float64) {
	hy := r * 0.5 // vertical half-step of the iso diamond

	// top face
	s.dc.MoveTo(cx, cy-r)
	s.dc.LineTo(cx+r, cy-r+hy)
	s.dc.LineTo(cx, cy-r+2*hy)
	s.dc.LineTo(cx-r, cy-r+hy)
	s.dc.ClosePath()
	s.dc.SetColor(withAlpha(color.NRGBA{R: 0x16, G: 0x1b, B: 0x2e}, alpha))
	s.dc.FillPreserve()
	s.dc.SetColor(HexToRGBA(s.accent, 0.55*alpha))
	s.dc.SetLineWidth(s.w * 0.001)
	s.dc.Stroke()

	// left face
	s.dc.MoveTo(cx-r, cy-r+hy)
	s.dc.LineTo(cx, cy-r+2*hy)
	s.dc.LineTo(cx, cy+r)
	s.dc.LineTo(cx-r, cy+r-hy)
	s.dc.ClosePath()
	s.dc.SetColor(withAlpha(color.NRGBA{R: 0x0b, G: 0x0e, B: 0x19}, alpha))
	s.dc.FillPreserve()
	s.dc.SetColor(HexToRGBA(s.accent, 0.4*alpha))
	s.dc.Stroke()

	// right face
	s.dc.MoveTo(cx+r, cy-r+hy)
	s.dc.LineTo(cx, cy-r+2*hy)
	s.dc.LineTo(cx, cy+r)
	s.dc.LineTo(cx+r, cy+r-hy)
	s.dc.ClosePath()
	s.dc.SetColor(withAlpha(color.NRGBA{R: 0x10, G: 0x14, B: 0x23}, alpha))
	s.dc.FillPreserve()
	s.dc.SetColor(HexToRGBA(s.accent, 0.4*alpha))
	s.dc.Stroke()

	st := textStyle{font: FontMono, size: r * 0.7}
	s.dc.SetFontFace(s.fonts.Face(st.font, st.size))
	gw, _ := s.dc.MeasureString("#")
	s.dc.SetColor(HexToRGBA(s.accent, 0.85*alpha))
	s.dc.DrawString("#", cx-gw/2, cy+st.size*0.1)
}

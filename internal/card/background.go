package card

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// drawBackground paints every layer beneath the template content. Order is
// load-bearing: grid and beams sit on the base gradient, noise goes on top
// of everything drawn so far.
func (s *scene) drawBackground() {
	s.baseGradient()
	s.ambientGlows()
	s.drawGrid()
	s.lightBeams()
	s.noise(6)
}

// baseGradient fills the canvas with the dark radial base.
func (s *scene) baseGradient() {
	r := math.Max(s.w, s.h) * 0.75
	grad := gg.NewRadialGradient(s.w/2, s.h/2, 0, s.w/2, s.h/2, r)
	grad.AddColorStop(0, color.NRGBA{R: 0x13, G: 0x17, B: 0x26, A: 0xff})
	grad.AddColorStop(1, color.NRGBA{R: 0x06, G: 0x08, B: 0x0f, A: 0xff})
	s.dc.SetFillStyle(grad)
	s.dc.DrawRectangle(0, 0, s.w, s.h)
	s.dc.Fill()
}

// ambientGlows paints the two fixed color pools: accent in the top-right,
// violet in the bottom-left.
func (s *scene) ambientGlows() {
	s.glowAt(s.w*0.85, s.h*0.12, s.w*0.55, HexToRGBA(s.accent, 1), 0.16)
	s.glowAt(s.w*0.10, s.h*0.92, s.w*0.50, color.NRGBA{R: 0x4b, G: 0x3a, B: 0x8f, A: 0xff}, 0.14)
}

// glowAt draws a 3-stop radial falloff of c at the given center.
func (s *scene) glowAt(x, y, r float64, c color.NRGBA, alpha float64) {
	grad := gg.NewRadialGradient(x, y, 0, x, y, r)
	grad.AddColorStop(0, withAlpha(c, alpha))
	grad.AddColorStop(0.5, withAlpha(c, alpha*0.35))
	grad.AddColorStop(1, withAlpha(c, 0))
	s.dc.SetFillStyle(grad)
	s.dc.DrawRectangle(x-r, y-r, r*2, r*2)
	s.dc.Fill()
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(clamp(alpha, 0, 1)*255 + 0.5)
	return c
}

// lightBeams draws two diagonal accent-tinted streaks, dimmer than the
// ambient glows.
func (s *scene) lightBeams() {
	s.beam(s.w*0.15, -s.h*0.1, s.w*0.08, 0.05)
	s.beam(s.w*0.62, -s.h*0.1, s.w*0.12, 0.035)
}

// beam draws one skewed parallelogram from above the top edge down past the
// bottom, filled with a linear gradient across its width.
func (s *scene) beam(x, y, width, alpha float64) {
	// fixed skew: the beam leans right by 35% of its height
	skew := s.h * 1.2 * 0.35
	x0, y0 := x, y
	x1, y1 := x+skew, y+s.h*1.2

	grad := gg.NewLinearGradient(x0, y0, x0+width, y0)
	grad.AddColorStop(0, HexToRGBA(s.accent, 0))
	grad.AddColorStop(0.5, HexToRGBA(s.accent, alpha))
	grad.AddColorStop(1, HexToRGBA(s.accent, 0))
	s.dc.SetFillStyle(grad)

	s.dc.MoveTo(x0, y0)
	s.dc.LineTo(x0+width, y0)
	s.dc.LineTo(x1+width, y1)
	s.dc.LineTo(x1, y1)
	s.dc.ClosePath()
	s.dc.Fill()
}

// noise adds per-pixel dither of +/- intensity, the same delta on all
// three channels, for a filmic texture. Works directly on the RGBA
// backing store.
func (s *scene) noise(intensity int) {
	rgba, ok := s.dc.Image().(*image.RGBA)
	if !ok {
		return
	}
	span := intensity*2 + 1
	pix := rgba.Pix
	for i := 0; i < len(pix); i += 4 {
		d := s.rng.Intn(span) - intensity
		pix[i] = clampByte(int(pix[i]) + d)
		pix[i+1] = clampByte(int(pix[i+1]) + d)
		pix[i+2] = clampByte(int(pix[i+2]) + d)
	}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

package card

import (
	"image/color"

	"github.com/disintegration/imaging"
)

// drawFooter renders the brand strip along the bottom edge. It runs for
// every template. The logo is skipped when its bitmap never resolved.
func (s *scene) drawFooter() {
	margin := s.w * 0.06
	baseY := s.h - s.w*0.055
	logoR := s.w * 0.02

	x := margin
	if logo := s.image(BrandLogoRef); logo != nil {
		d := int(logoR * 2)
		fitted := imaging.Fill(logo, d, d, imaging.Center, imaging.Lanczos)
		s.dc.Push()
		s.dc.DrawCircle(x+logoR, baseY-logoR*0.4, logoR)
		s.dc.Clip()
		s.dc.DrawImageAnchored(fitted, int(x+logoR), int(baseY-logoR*0.4), 0.5, 0.5)
		s.dc.ResetClip()
		s.dc.Pop()
		x += logoR*2 + s.w*0.012
	}

	name := textStyle{
		font:     FontMono,
		size:     s.w * 0.02,
		tracking: 0.18,
		color:    color.NRGBA{R: 0xf0, G: 0xf4, B: 0xfb, A: 0xff},
	}
	s.drawTracked(BrandName, x, baseY, AlignLeft, name)
	s.drawLabel(BrandTagline, x, baseY+s.w*0.021, AlignLeft, 0.65)

	s.drawLabel(BrandSite, s.w-margin, baseY, AlignRight, 0.85)

	if s.data.ShowDisclaimer {
		st := textStyle{
			font:  FontDisplay,
			size:  s.w * 0.011,
			color: color.NRGBA{R: 0x6b, G: 0x74, B: 0x8a, A: 0xff},
		}
		s.drawTracked(BrandDisclaimer, s.w/2, s.h-s.w*0.014, AlignCenter, st)
	}
}

package card

import (
	"math"

	"github.com/fogleman/gg"
)

// gridAlpha maps a 0-100 opacity to draw alpha with a visibility floor:
// a grid that is enabled never disappears entirely.
func gridAlpha(opacity float64) float64 {
	return math.Max(0.1, clamp(opacity, 0, 100)/100)
}

// clampDensity folds any density value onto the defined tiers; unknown
// values are treated as low.
func clampDensity(d int) int {
	if d < 1 || d > 3 {
		return 1
	}
	return d
}

// drawGrid renders the selected grid variant. GridNone and unrecognized
// styles contribute no draw calls.
func (s *scene) drawGrid() {
	g := s.data.Grid
	alpha := gridAlpha(g.Opacity)
	d := clampDensity(g.Density)

	switch g.Style {
	case GridPerspective:
		s.gridPerspective(alpha, d)
	case GridIsometric:
		s.gridIsometric(alpha, d)
	case GridHorizontal:
		s.gridHorizontal(alpha, d)
	case GridRadial:
		s.gridRadial(alpha, d)
	case GridHex:
		s.gridHex(alpha, d)
	}
}

// gridPerspective draws a receding floor: horizontal lines bunching toward
// a horizon at 45% height via a quadratic ease, rays from the vanishing
// point, and a horizon glow.
func (s *scene) gridPerspective(alpha float64, density int) {
	lines := []int{6, 10, 14}[density-1]
	rays := []int{7, 11, 15}[density-1]
	horizon := s.h * 0.45
	lw := s.w * 0.0012

	s.dc.SetLineWidth(lw)
	for i := 0; i <= lines; i++ {
		t := float64(i) / float64(lines)
		eased := t * t
		y := horizon + (s.h-horizon)*eased
		s.dc.SetColor(HexToRGBA(s.accent, alpha*(0.2+0.5*t)))
		s.dc.DrawLine(0, y, s.w, y)
		s.dc.Stroke()
	}

	// rays from the vanishing point fan out across the floor
	vx := s.w / 2
	for i := 0; i <= rays; i++ {
		t := float64(i) / float64(rays)
		ex := lerp(-s.w*0.6, s.w*1.6, t)
		s.dc.SetColor(HexToRGBA(s.accent, alpha*0.35))
		s.dc.DrawLine(vx, horizon, ex, s.h)
		s.dc.Stroke()
	}

	glow := gg.NewLinearGradient(0, horizon-s.h*0.05, 0, horizon+s.h*0.05)
	glow.AddColorStop(0, HexToRGBA(s.accent, 0))
	glow.AddColorStop(0.5, HexToRGBA(s.accent, alpha*0.4))
	glow.AddColorStop(1, HexToRGBA(s.accent, 0))
	s.dc.SetFillStyle(glow)
	s.dc.DrawRectangle(0, horizon-s.h*0.05, s.w, s.h*0.1)
	s.dc.Fill()
}

// gridIsometric draws two families of parallel +/-30 degree lines whose
// alpha fades away from the center, plus a center glow.
func (s *scene) gridIsometric(alpha float64, density int) {
	n := []int{8, 12, 18}[density-1]
	slope := math.Tan(gg.Radians(30))
	span := s.h + s.w*slope
	s.dc.SetLineWidth(s.w * 0.001)

	for i := -n; i <= n; i++ {
		fade := 1 - math.Abs(float64(i))/float64(n+1)
		c := s.h/2 + float64(i)/float64(n)*span/2
		s.dc.SetColor(HexToRGBA(s.accent, alpha*0.5*fade))
		// rising family
		s.dc.DrawLine(0, c, s.w, c-s.w*slope)
		s.dc.Stroke()
		// falling family
		s.dc.DrawLine(0, c-s.w*slope, s.w, c)
		s.dc.Stroke()
	}

	s.glowAt(s.w/2, s.h/2, s.w*0.3, HexToRGBA(s.accent, 1), alpha*0.25)
}

// gridHorizontal draws symmetric horizontal lines fading outward from a
// bold accent centerline, with a glow band on the centerline.
func (s *scene) gridHorizontal(alpha float64, density int) {
	n := []int{5, 8, 12}[density-1]
	mid := s.h / 2
	step := s.h / 2 / float64(n+1)

	s.dc.SetLineWidth(s.w * 0.002)
	s.dc.SetColor(HexToRGBA(s.accent, alpha))
	s.dc.DrawLine(0, mid, s.w, mid)
	s.dc.Stroke()

	s.dc.SetLineWidth(s.w * 0.001)
	for i := 1; i <= n; i++ {
		fade := 1 - float64(i)/float64(n+1)
		s.dc.SetColor(HexToRGBA(s.accent, alpha*0.6*fade))
		s.dc.DrawLine(0, mid-float64(i)*step, s.w, mid-float64(i)*step)
		s.dc.Stroke()
		s.dc.DrawLine(0, mid+float64(i)*step, s.w, mid+float64(i)*step)
		s.dc.Stroke()
	}

	band := gg.NewLinearGradient(0, mid-s.h*0.04, 0, mid+s.h*0.04)
	band.AddColorStop(0, HexToRGBA(s.accent, 0))
	band.AddColorStop(0.5, HexToRGBA(s.accent, alpha*0.35))
	band.AddColorStop(1, HexToRGBA(s.accent, 0))
	s.dc.SetFillStyle(band)
	s.dc.DrawRectangle(0, mid-s.h*0.04, s.w, s.h*0.08)
	s.dc.Fill()
}

// gridRadial draws concentric circles whose alpha grows outward plus evenly
// spaced rays from the center, and a center glow.
func (s *scene) gridRadial(alpha float64, density int) {
	circles := []int{4, 6, 9}[density-1]
	rays := []int{8, 12, 16}[density-1]
	cx, cy := s.w/2, s.h/2
	maxR := math.Max(s.w, s.h) * 0.75

	s.dc.SetLineWidth(s.w * 0.001)
	for i := 1; i <= circles; i++ {
		t := float64(i) / float64(circles)
		s.dc.SetColor(HexToRGBA(s.accent, alpha*(0.2+0.6*t)))
		s.dc.DrawCircle(cx, cy, maxR*t)
		s.dc.Stroke()
	}

	for i := 0; i < rays; i++ {
		a := float64(i) / float64(rays) * 2 * math.Pi
		s.dc.SetColor(HexToRGBA(s.accent, alpha*0.3))
		s.dc.DrawLine(cx, cy, cx+math.Cos(a)*maxR, cy+math.Sin(a)*maxR)
		s.dc.Stroke()
	}

	s.glowAt(cx, cy, s.w*0.25, HexToRGBA(s.accent, 1), alpha*0.3)
}

// gridHex tiles a pointy-top hexagon lattice, fading by distance from the
// center and skipping hexagons beyond a radius cutoff.
func (s *scene) gridHex(alpha float64, density int) {
	size := s.w / []float64{6, 9, 13}[density-1]
	cutoff := math.Max(s.w, s.h) * 0.62
	cx, cy := s.w/2, s.h/2

	hexW := size * math.Sqrt(3)
	hexV := size * 1.5
	cols := int(s.w/hexW) + 3
	rows := int(s.h/hexV) + 3

	s.dc.SetLineWidth(s.w * 0.001)
	for row := -1; row < rows; row++ {
		for col := -1; col < cols; col++ {
			x := float64(col) * hexW
			if row%2 != 0 {
				x += hexW / 2
			}
			y := float64(row) * hexV
			dist := math.Hypot(x-cx, y-cy)
			if dist > cutoff {
				continue
			}
			fade := 1 - dist/cutoff
			s.dc.SetColor(HexToRGBA(s.accent, alpha*0.55*fade))
			s.strokeHex(x, y, size)
		}
	}
}

// strokeHex outlines one pointy-top hexagon centered at (x, y).
func (s *scene) strokeHex(x, y, size float64) {
	for i := 0; i <= 6; i++ {
		a := math.Pi/6 + float64(i)/6*2*math.Pi
		px := x + size*math.Cos(a)
		py := y + size*math.Sin(a)
		if i == 0 {
			s.dc.MoveTo(px, py)
		} else {
			s.dc.LineTo(px, py)
		}
	}
	s.dc.ClosePath()
	s.dc.Stroke()
}

package card

import (
	"image/color"
	"strconv"
)

// HexToRGBA parses #RGB or #RRGGBB and applies alpha in [0,1].
// Unparseable input yields opaque-ish white at the requested alpha so a bad
// color degrades visibly rather than failing the render.
func HexToRGBA(hex string, alpha float64) color.NRGBA {
	r, g, b, ok := parseHex(hex)
	if !ok {
		r, g, b = 0xff, 0xff, 0xff
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp(alpha, 0, 1)*255 + 0.5)}
}

func parseHex(hex string) (r, g, b uint8, ok bool) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

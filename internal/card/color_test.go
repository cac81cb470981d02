package card

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGBARoundTrip(t *testing.T) {
	cases := []struct {
		hex     string
		r, g, b uint8
	}{
		{"#00E8C6", 0x00, 0xE8, 0xC6},
		{"#ffffff", 0xff, 0xff, 0xff},
		{"#000000", 0x00, 0x00, 0x00},
		{"#627EEA", 0x62, 0x7E, 0xEA},
	}
	for _, tc := range cases {
		t.Run(tc.hex, func(t *testing.T) {
			c := HexToRGBA(tc.hex, 0.5)
			assert.Equal(t, tc.r, c.R)
			assert.Equal(t, tc.g, c.G)
			assert.Equal(t, tc.b, c.B)
			assert.Equal(t, uint8(128), c.A)

			// formatting the channels back reproduces the input
			round := fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
			assert.True(t, strings.EqualFold(tc.hex, round))
		})
	}
}

func TestHexToRGBAShortForm(t *testing.T) {
	c := HexToRGBA("#fa0", 1)
	assert.Equal(t, uint8(0xff), c.R)
	assert.Equal(t, uint8(0xaa), c.G)
	assert.Equal(t, uint8(0x00), c.B)
	assert.Equal(t, uint8(0xff), c.A)
}

func TestHexToRGBAInvalidDegrades(t *testing.T) {
	// bad input falls back to white rather than failing the render
	c := HexToRGBA("not-a-color", 1)
	require.Equal(t, uint8(0xff), c.R)
	require.Equal(t, uint8(0xff), c.G)
	require.Equal(t, uint8(0xff), c.B)
}

func TestHexToRGBAAlphaClamped(t *testing.T) {
	assert.Equal(t, uint8(0xff), HexToRGBA("#123456", 4).A)
	assert.Equal(t, uint8(0), HexToRGBA("#123456", -1).A)
}

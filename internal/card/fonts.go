package card

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontKind selects between the two fixed families: display text uses the
// regular/bold faces, kickers, CTAs, badges and the footer use mono.
type FontKind int

const (
	FontDisplay FontKind = iota
	FontDisplayBold
	FontMono
)

// FontSet holds the parsed families and caches sized faces. Safe for
// concurrent renders.
type FontSet struct {
	display *opentype.Font
	bold    *opentype.Font
	mono    *opentype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

type faceKey struct {
	kind FontKind
	size int // tenths of a point
}

// LoadFonts parses the embedded Go families.
func LoadFonts() (*FontSet, error) {
	display, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse display font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	mono, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse mono font: %w", err)
	}
	return &FontSet{display: display, bold: bold, mono: mono, faces: map[faceKey]font.Face{}}, nil
}

// Face returns a cached face at the given point size.
func (fs *FontSet) Face(kind FontKind, size float64) font.Face {
	key := faceKey{kind: kind, size: int(size * 10)}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	if f, ok := fs.faces[key]; ok {
		return f
	}

	src := fs.display
	switch kind {
	case FontDisplayBold:
		src = fs.bold
	case FontMono:
		src = fs.mono
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		// embedded fonts parse at load time; a face failure here would be a
		// programming error, fall back to whatever the library gives us
		face, _ = opentype.NewFace(src, &opentype.FaceOptions{Size: 12, DPI: 72})
	}
	fs.faces[key] = face
	return face
}

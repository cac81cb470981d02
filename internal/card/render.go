package card

import (
	"image"
	"math/rand"
	"time"

	"github.com/fogleman/gg"
)

// Renderer draws social cards. It is cheap to construct per request: the
// font set and image map are shared read-only state, the only per-render
// state is the noise source.
type Renderer struct {
	fonts  *FontSet
	images map[string]image.Image
	seed   int64
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithNoiseSeed fixes the noise source so renders are reproducible.
func WithNoiseSeed(seed int64) Option {
	return func(r *Renderer) { r.seed = seed }
}

// NewRenderer builds a renderer over a resolved image map. Entries may be
// nil (failed loads); the drawing code falls back per element.
func NewRenderer(fonts *FontSet, images map[string]image.Image, opts ...Option) *Renderer {
	r := &Renderer{fonts: fonts, images: images}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render composes one card. The pass is fully synchronous; all asset
// resolution happened before via assets.Loader. Missing fields, tokens,
// logos, or an unknown template never fail a render.
func (r *Renderer) Render(data TemplateData) image.Image {
	size := SizeFor(data.Size)
	dc := gg.NewContext(size.Width, size.Height)
	if r.fonts == nil {
		// no usable drawing context without faces; return the blank surface
		return dc.Image()
	}

	seed := r.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &scene{
		dc:     dc,
		w:      float64(size.Width),
		h:      float64(size.Height),
		data:   data,
		accent: data.accent(),
		fonts:  r.fonts,
		images: r.images,
		rng:    rand.New(rand.NewSource(seed)),
	}

	s.drawBackground()
	s.dispatch()
	s.drawFooter()
	return dc.Image()
}

// scene carries the per-render drawing state. Every layer hangs off it so
// the draw routines stay free of globals.
type scene struct {
	dc     *gg.Context
	w, h   float64
	data   TemplateData
	accent string
	fonts  *FontSet
	images map[string]image.Image
	rng    *rand.Rand
}

// image looks up a resolved bitmap by logo reference; nil means the load
// failed or was never requested.
func (s *scene) image(ref string) image.Image {
	if ref == "" || s.images == nil {
		return nil
	}
	return s.images[ref]
}

package card

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
)

// EncodePNG encodes the rendered surface to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURL encodes the surface as a data:image/png;base64 URL for inline
// embedding.
func DataURL(img image.Image) (string, error) {
	b, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(b), nil
}

// Filename builds a download name for a rendered card.
func Filename(data TemplateData) string {
	tpl := string(data.Template)
	if tpl == "" {
		tpl = "card"
	}
	size := data.Size
	if _, ok := Sizes[size]; !ok {
		size = "square"
	}
	return fmt.Sprintf("digiko-%s-%s.png", tpl, size)
}

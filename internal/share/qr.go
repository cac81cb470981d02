// Package share generates QR codes for trade and share links published next
// to rendered cards.
package share

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	minSize = 64
	maxSize = 1024
)

// QRPNG returns PNG bytes of a QR code for the given text. Size is clamped
// to a sane pixel range.
func QRPNG(text string, size int) ([]byte, error) {
	if size < minSize {
		size = minSize
	}
	if size > maxSize {
		size = maxSize
	}
	b, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return b, nil
}

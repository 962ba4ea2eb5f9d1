//go:build !cgo

package imaging

import (
	"errors"
	"image"
	"io"
)

// The WebP encoder is a cgo binding; without cgo variants are unavailable.
const webpAvailable = false

func encodeWebP(io.Writer, image.Image, float32) error {
	return errors.New("webp encoding requires cgo")
}

//go:build cgo

package imaging

import (
	"image"
	"io"

	"github.com/chai2010/webp"
)

const webpAvailable = true

func encodeWebP(w io.Writer, img image.Image, quality float32) error {
	return webp.Encode(w, img, &webp.Options{Quality: quality})
}

// Package imaging produces the resized variants published next to each catalog image.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"

	dimaging "github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// Thumbnail variant: cropped to fill exactly, encoded as JPEG.
const (
	ThumbWidth   = 300
	ThumbHeight  = 200
	ThumbQuality = 75
)

// Medium variant: scaled to fit inside the box, encoded as WebP.
const (
	MedWidth   = 1200
	MedHeight  = 800
	MedQuality = 80
)

// AllowedMIME lists the accepted source MIME types.
var AllowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// VariantFunc writes the thumbnail and medium variants of the image at src.
type VariantFunc func(src, thumbPath, medPath string) error

// NewVariants returns the variant generator, or nil when this build cannot
// encode WebP.
func NewVariants() VariantFunc {
	if !webpAvailable {
		return nil
	}
	return GenerateVariants
}

// GenerateVariants decodes src once and writes both variants. A failure on one
// variant does not prevent the other from being written.
func GenerateVariants(src, thumbPath, medPath string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}

	var errs []error
	if err := writeFile(thumbPath, func(w io.Writer) error {
		return jpeg.Encode(w, Thumbnail(img), &jpeg.Options{Quality: ThumbQuality})
	}); err != nil {
		errs = append(errs, fmt.Errorf("writing thumbnail: %w", err))
	}
	if err := writeFile(medPath, func(w io.Writer) error {
		return encodeWebP(w, Fit(img, MedWidth, MedHeight), MedQuality)
	}); err != nil {
		errs = append(errs, fmt.Errorf("writing medium: %w", err))
	}
	return errors.Join(errs...)
}

// Decode reads image data, validates the format by sniffing bytes and decodes it.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading image data: %w", err)
	}

	detected := http.DetectContentType(data)
	if !AllowedMIME[detected] {
		return nil, fmt.Errorf("unsupported image format: %s", detected)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// Thumbnail scales img to cover ThumbWidth×ThumbHeight and crops the overflow
// around the centre.
func Thumbnail(img image.Image) image.Image {
	return dimaging.Fill(img, ThumbWidth, ThumbHeight, dimaging.Center, dimaging.Lanczos)
}

// Fit resizes the image so it fits inside maxW×maxH, preserving aspect ratio.
// Uses high-quality Catmull-Rom interpolation.
// Returns the original image if already within bounds.
func Fit(img image.Image, maxW, maxH int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxW && h <= maxH {
		return img
	}

	scale := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	newW := max(int(float64(w)*scale), 1)
	newH := max(int(float64(h)*scale), 1)

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// writeFile creates path and fills it with encode. A partially written file is removed.
func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func init() {
	image.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "\x89PNG", png.Decode, png.DecodeConfig)
	image.RegisterFormat("gif", "GIF8?a", gif.Decode, gif.DecodeConfig)
	image.RegisterFormat("webp", "RIFF????WEBPVP8", webp.Decode, webp.DecodeConfig)
}

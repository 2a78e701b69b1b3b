// Package image decodes and encodes the raster images exchanged with the
// editor, inserted pictures and exported canvases, and pools the scratch
// pixel buffers the editor works in.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"

	"github.com/anthonynsimon/bild/clone"
	"github.com/h2non/filetype"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the data is not an image type
	// with a registered decoder.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// decodable lists the MIME types that have a registered decoder.
var decodable = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/bmp":  true,
	"image/tiff": true,
	"image/webp": true,
}

// Sniff returns the MIME type of encoded image data.
// Only the header bytes are inspected; the data is not decoded.
func Sniff(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyData
	}
	kind, err := filetype.Image(data)
	if err != nil || kind == filetype.Unknown {
		return "", ErrUnsupportedFormat
	}
	if !decodable[kind.MIME.Value] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind.MIME.Value)
	}
	return kind.MIME.Value, nil
}

// Decode decodes encoded image data into an *image.RGBA with its origin
// at (0, 0). The format is detected from content.
func Decode(data []byte) (*image.RGBA, error) {
	mime, err := Sniff(data)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image: decode %s: %w", mime, err)
	}
	return Normalize(img), nil
}

// Normalize converts img to *image.RGBA with bounds starting at the origin.
// The result never aliases img's pixels.
func Normalize(img image.Image) *image.RGBA {
	rgba := clone.AsRGBA(img)
	if rgba.Rect.Min == (image.Point{}) && rgba != img {
		return rgba
	}
	out := image.NewRGBA(image.Rect(0, 0, rgba.Rect.Dx(), rgba.Rect.Dy()))
	draw.Copy(out, image.Point{}, rgba, rgba.Rect, draw.Src, nil)
	return out
}

// EncodePNG encodes img as PNG to the given writer.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

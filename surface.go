package ggpaint

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/draw"

	"github.com/gogpu/ggpaint/internal/fill"
	intImage "github.com/gogpu/ggpaint/internal/image"
)

// Surface is the single persistent pixel buffer the user sees as the canvas.
// Pixels are premultiplied RGBA, 4 bytes per pixel, origin at (0, 0).
// The dimensions are fixed for the lifetime of the surface.
//
// Surface implements draw.Image, so it can be handed directly to brush
// renderers and to golang.org/x/image/draw.
type Surface struct {
	img *image.RGBA
}

// NewSurface creates a fully transparent surface.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// Width returns the width of the surface.
func (s *Surface) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the height of the surface.
func (s *Surface) Height() int {
	return s.img.Rect.Dy()
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Rect
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.img.RGBAAt(x, y)
}

// Set implements the draw.Image interface.
func (s *Surface) Set(x, y int, c color.Color) {
	s.img.Set(x, y, c)
}

// RGBAAt returns the premultiplied color of a single pixel.
// Out-of-bounds coordinates return Transparent.
func (s *Surface) RGBAAt(x, y int) color.RGBA {
	return s.img.RGBAAt(x, y)
}

// Image returns the backing image. Writes through it mutate the surface.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Pix returns the raw pixel data.
func (s *Surface) Pix() []uint8 {
	return s.img.Pix
}

// Clear fills the entire surface with a color.
func (s *Surface) Clear(c color.Color) {
	p := toRGBA(c)
	pix := s.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = p.R
		pix[i+1] = p.G
		pix[i+2] = p.B
		pix[i+3] = p.A
	}
}

// Snapshot returns an immutable copy of the current pixels.
func (s *Surface) Snapshot() *Snapshot {
	pix := make([]uint8, len(s.img.Pix))
	copy(pix, s.img.Pix)
	return &Snapshot{width: s.Width(), height: s.Height(), pix: pix}
}

// Restore replaces every pixel with the contents of snap.
// The copy is all-or-nothing: on a size mismatch nothing is written.
func (s *Surface) Restore(snap *Snapshot) error {
	if snap.width != s.Width() || snap.height != s.Height() {
		return fmt.Errorf("%w: snapshot %dx%d, surface %dx%d",
			ErrSizeMismatch, snap.width, snap.height, s.Width(), s.Height())
	}
	copy(s.img.Pix, snap.pix)
	return nil
}

// Copy returns the pixels inside r as a new image with its origin at (0, 0).
// r is clipped to the surface; an empty intersection yields nil.
func (s *Surface) Copy(r image.Rectangle) *image.RGBA {
	r = r.Intersect(s.img.Rect)
	if r.Empty() {
		return nil
	}
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Copy(out, image.Point{}, s.img, r, draw.Src, nil)
	return out
}

// Erase makes every pixel inside r fully transparent.
func (s *Surface) Erase(r image.Rectangle) {
	draw.Draw(s.img, r, image.Transparent, image.Point{}, draw.Src)
}

// CanFill reports whether FloodFill(x, y, c) would change any pixel.
func (s *Surface) CanFill(x, y int, c color.Color) bool {
	target, ok := s.fillBuffer(s.img.Pix).Target(x, y)
	return ok && target != rgbaBytes(toRGBA(c))
}

// FloodFill replaces the 4-connected region of pixels exactly equal to the
// pixel at (x, y) with c. It is a no-op when (x, y) is outside the surface
// or already has color c. The fill runs on a private copy of the buffer,
// which is written back in one step.
func (s *Surface) FloodFill(x, y int, c color.Color) bool {
	work := intImage.GetBuffer(len(s.img.Pix))
	defer intImage.PutBuffer(work)
	copy(work, s.img.Pix)
	if !fill.Scanline(s.fillBuffer(work), x, y, rgbaBytes(toRGBA(c))) {
		return false
	}
	copy(s.img.Pix, work)
	return true
}

func (s *Surface) fillBuffer(pix []uint8) fill.Buffer {
	return fill.Buffer{
		Pix:    pix,
		Stride: s.img.Stride,
		Width:  s.Width(),
		Height: s.Height(),
	}
}

// EncodePNG writes the surface as a PNG image.
func (s *Surface) EncodePNG(w io.Writer) error {
	return intImage.EncodePNG(w, s.img)
}

func rgbaBytes(c color.RGBA) [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}

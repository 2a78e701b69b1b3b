package ggpaint

import (
	"bytes"
	"image"
)

// Snapshot is an immutable full copy of a surface's pixels at one instant.
// Snapshots back both undo/redo and the overlay's base-under-layer image.
type Snapshot struct {
	width  int
	height int
	pix    []uint8
}

// Width returns the width of the captured surface.
func (s *Snapshot) Width() int { return s.width }

// Height returns the height of the captured surface.
func (s *Snapshot) Height() int { return s.height }

// Size returns the number of pixel bytes held by the snapshot.
func (s *Snapshot) Size() int { return len(s.pix) }

// Equal reports whether two snapshots hold identical pixels.
func (s *Snapshot) Equal(other *Snapshot) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.width == other.width && s.height == other.height &&
		bytes.Equal(s.pix, other.pix)
}

// Image returns a copy of the snapshot as an *image.RGBA.
func (s *Snapshot) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.pix)
	return img
}

package ggpaint

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// DragRect tracks the rectangle swept by a single pointer drag. It is
// used for both selection and crop gestures and is never persisted.
type DragRect struct {
	start, end Point
	active     bool
}

// Begin starts a drag at p.
func (d *DragRect) Begin(p Point) {
	d.start, d.end = p, p
	d.active = true
}

// Update moves the free corner to p.
func (d *DragRect) Update(p Point) {
	if d.active {
		d.end = p
	}
}

// Active reports whether a drag is in progress.
func (d *DragRect) Active() bool { return d.active }

// Rect returns the swept rectangle, normalized so that its size is
// non-negative whichever way the pointer moved.
func (d *DragRect) Rect() image.Rectangle {
	return image.Rect(
		int(math.Round(d.start.X)), int(math.Round(d.start.Y)),
		int(math.Round(d.end.X)), int(math.Round(d.end.Y)),
	)
}

// End finishes the drag and returns its rectangle. It reports false when
// no drag was in progress.
func (d *DragRect) End() (image.Rectangle, bool) {
	if !d.active {
		return image.Rectangle{}, false
	}
	r := d.Rect()
	d.Reset()
	return r, true
}

// Reset abandons the drag.
func (d *DragRect) Reset() {
	*d = DragRect{}
}

// CutToLayer moves the pixels inside r into a new floating layer: the
// region is copied, erased to transparent on the surface, the erased
// surface becomes the overlay base and the copy floats at the same place.
// An existing floating layer is committed first. It reports false for a
// selection with no area inside the surface.
func CutToLayer(s *Surface, o *Overlay, h *History, r image.Rectangle) bool {
	r = r.Intersect(s.Bounds())
	if r.Dx()*r.Dy() < 1 {
		return false
	}

	o.Commit(s, h)
	if err := h.SnapshotBeforeChange(s); err != nil {
		Logger().Warn("ggpaint: selection without undo step", "err", err)
	}

	img := s.Copy(r)
	s.Erase(r)
	o.Clear()
	if err := o.Set(s, NewLayer(img, float64(r.Min.X), float64(r.Min.Y))); err != nil {
		Logger().Warn("ggpaint: selection recomposite failed", "err", err)
	}
	Logger().Debug("ggpaint: selection floated", "rect", r)
	return true
}

// snapEps absorbs floating-point noise when snapping crop edges.
const snapEps = 1e-9

// CropLayer cuts l down to its intersection with r, in surface
// coordinates. The result sits at the intersection's origin with angle 0.
// A rotated layer yields ErrRotatedCrop; an empty intersection yields a
// nil layer and no error.
func CropLayer(l Layer, r image.Rectangle) (*Layer, error) {
	if l.Angle != 0 {
		return nil, ErrRotatedCrop
	}

	// Snap inwards to whole pixels so the result never leaves the
	// intersection, whatever the layer's fractional placement.
	x0 := math.Ceil(math.Max(float64(r.Min.X), l.X) - snapEps)
	y0 := math.Ceil(math.Max(float64(r.Min.Y), l.Y) - snapEps)
	x1 := math.Floor(math.Min(float64(r.Max.X), l.X+l.W) + snapEps)
	y1 := math.Floor(math.Min(float64(r.Max.Y), l.Y+l.H) + snapEps)
	w := int(x1 - x0)
	h := int(y1 - y0)
	if w < 1 || h < 1 {
		return nil, nil
	}

	// Map the intersection back into the layer image's pixel space.
	b := l.Image.Bounds()
	sx := float64(b.Dx()) / l.W
	sy := float64(b.Dy()) / l.H
	src := image.Rect(
		b.Min.X+int(math.Round((x0-l.X)*sx)), b.Min.Y+int(math.Round((y0-l.Y)*sy)),
		b.Min.X+int(math.Round((x1-l.X)*sx)), b.Min.Y+int(math.Round((y1-l.Y)*sy)),
	).Intersect(b)
	if src.Empty() {
		return nil, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if src.Dx() == w && src.Dy() == h {
		draw.Copy(dst, image.Point{}, l.Image, src, draw.Src, nil)
	} else {
		draw.BiLinear.Scale(dst, dst.Bounds(), l.Image, src, draw.Src, nil)
	}

	return &Layer{
		Image:    dst,
		Geometry: Geometry{X: x0, Y: y0, W: float64(w), H: float64(h)},
	}, nil
}

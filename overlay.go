package ggpaint

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Geometry places a floating layer on the surface: (X, Y) is the top-left
// corner and (W, H) the extent before rotation, in surface coordinates.
// Angle is a rotation in radians about the layer's own center.
type Geometry struct {
	X, Y, W, H float64
	Angle      float64
}

// Center returns the geometric center of the layer.
func (g Geometry) Center() Point {
	return Pt(g.X+g.W/2, g.Y+g.H/2)
}

// Matrix maps pixel coordinates of an iw×ih image onto the surface:
// the image is scaled to (W, H), rotated about its center and placed so its
// unrotated top-left corner sits at (X, Y).
func (g Geometry) Matrix(iw, ih int) Matrix {
	c := g.Center()
	return Translate(c.X, c.Y).
		Multiply(Rotate(g.Angle)).
		Multiply(Scale(g.W/float64(iw), g.H/float64(ih))).
		Multiply(Translate(-float64(iw)/2, -float64(ih)/2))
}

// Local converts a surface point into the layer's unrotated frame, where
// the layer occupies [X, X+W] x [Y, Y+H].
func (g Geometry) Local(p Point) Point {
	c := g.Center()
	return RotateAt(g.Angle, c.X, c.Y).Invert().TransformPoint(p)
}

// Layer is the floating overlay: an image with its own placement.
type Layer struct {
	Image *image.RGBA
	Geometry
}

// NewLayer creates a layer showing img unscaled with its top-left at (x, y).
func NewLayer(img *image.RGBA, x, y float64) *Layer {
	b := img.Bounds()
	return &Layer{
		Image:    img,
		Geometry: Geometry{X: x, Y: y, W: float64(b.Dx()), H: float64(b.Dy())},
	}
}

// draw composites the layer over dst.
func (l *Layer) draw(dst *image.RGBA) {
	b := l.Image.Bounds()
	if b.Empty() || l.W <= 0 || l.H <= 0 {
		return
	}
	m := l.Matrix(b.Dx(), b.Dy())
	if m.IsIntegerTranslation() {
		draw.Copy(dst, image.Pt(int(m.C), int(m.F)), l.Image, b, draw.Over, nil)
		return
	}
	draw.BiLinear.Transform(dst, m.Aff3(), l.Image, b, draw.Over, nil)
}

// editState is either idleState or editingState. A floating layer never
// exists without the snapshot of what lies beneath it.
type editState interface {
	isEditState()
}

type idleState struct{}

type editingState struct {
	base  *Snapshot
	layer *Layer
}

func (idleState) isEditState()    {}
func (editingState) isEditState() {}

// Overlay owns the optional floating layer and the base snapshot it is
// composited onto. The visible surface is always base + layer; every
// recomposite starts again from base, so repeated calls never accumulate.
type Overlay struct {
	state editState
}

// NewOverlay returns an overlay with no floating layer.
func NewOverlay() *Overlay {
	return &Overlay{state: idleState{}}
}

// Active reports whether a floating layer exists.
func (o *Overlay) Active() bool {
	_, ok := o.state.(editingState)
	return ok
}

// Layer returns a copy of the floating layer.
func (o *Overlay) Layer() (Layer, bool) {
	st, ok := o.state.(editingState)
	if !ok {
		return Layer{}, false
	}
	return *st.layer, true
}

// Base returns the snapshot beneath the floating layer, or nil when idle.
func (o *Overlay) Base() *Snapshot {
	if st, ok := o.state.(editingState); ok {
		return st.base
	}
	return nil
}

// Set installs layer as the floating layer and recomposites s. While an
// edit is already in progress the existing base is kept and the previous
// layer is replaced; otherwise the current surface becomes the base.
func (o *Overlay) Set(s *Surface, layer *Layer) error {
	base := o.Base()
	if base == nil {
		base = s.Snapshot()
	}
	o.state = editingState{base: base, layer: layer}
	Logger().Debug("ggpaint: overlay set",
		"x", layer.X, "y", layer.Y, "w", layer.W, "h", layer.H)
	return o.Recomposite(s)
}

// SetBase replaces the snapshot beneath the floating layer.
func (o *Overlay) SetBase(base *Snapshot) error {
	st, ok := o.state.(editingState)
	if !ok {
		return ErrNoOverlay
	}
	st.base = base
	o.state = st
	return nil
}

// SetGeometry moves the floating layer and recomposites s.
func (o *Overlay) SetGeometry(s *Surface, g Geometry) error {
	st, ok := o.state.(editingState)
	if !ok {
		return ErrNoOverlay
	}
	g.W = math.Max(g.W, 1)
	g.H = math.Max(g.H, 1)
	st.layer.Geometry = g
	return o.Recomposite(s)
}

// Recomposite redraws s as base + transformed layer. It does nothing when
// idle.
func (o *Overlay) Recomposite(s *Surface) error {
	st, ok := o.state.(editingState)
	if !ok {
		return nil
	}
	if err := s.Restore(st.base); err != nil {
		return err
	}
	st.layer.draw(s.Image())
	return nil
}

// Commit flattens the floating layer into s and returns to idle. It
// reports false when there is no layer. The history snapshot is
// best-effort: if it cannot be taken the commit still happens.
func (o *Overlay) Commit(s *Surface, h *History) bool {
	if !o.Active() {
		return false
	}
	if err := h.SnapshotBeforeChange(s); err != nil {
		Logger().Warn("ggpaint: commit without undo step", "err", err)
	}
	if err := o.Recomposite(s); err != nil {
		Logger().Warn("ggpaint: commit recomposite failed", "err", err)
	}
	o.state = idleState{}
	Logger().Debug("ggpaint: overlay committed")
	return true
}

// Clear discards the floating layer and its base without compositing.
func (o *Overlay) Clear() {
	o.state = idleState{}
}

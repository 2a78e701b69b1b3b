package ggpaint

import (
	"image/color"

	"golang.org/x/image/draw"
)

// StrokeParams are the brush settings read from the UI at gesture time.
type StrokeParams struct {
	// Size is the brush diameter in surface units.
	Size float64

	// Color is the paint color.
	Color color.Color

	// Opacity scales the color's alpha, from 0.0 to 1.0.
	Opacity float64
}

// DefaultStrokeParams returns a 4-unit opaque black brush.
func DefaultStrokeParams() StrokeParams {
	return StrokeParams{Size: 4, Color: Black, Opacity: 1}
}

// Brush renders one stroke segment from one point to another. A press
// without movement is a segment with from == to.
//
// Brushes are stateless; the editor takes the undo snapshot once per
// gesture before the first call.
type Brush interface {
	Stroke(dst draw.Image, from, to Point, p StrokeParams)
}

// BrushFunc adapts an ordinary function to the Brush interface.
type BrushFunc func(dst draw.Image, from, to Point, p StrokeParams)

// Stroke calls f(dst, from, to, p).
func (f BrushFunc) Stroke(dst draw.Image, from, to Point, p StrokeParams) {
	f(dst, from, to, p)
}

// ShapeRenderer stamps a shape spanning the drag from one corner to the
// opposite one.
type ShapeRenderer interface {
	Shape(dst draw.Image, from, to Point, p StrokeParams)
}

// ShapeFunc adapts an ordinary function to the ShapeRenderer interface.
type ShapeFunc func(dst draw.Image, from, to Point, p StrokeParams)

// Shape calls f(dst, from, to, p).
func (f ShapeFunc) Shape(dst draw.Image, from, to Point, p StrokeParams) {
	f(dst, from, to, p)
}

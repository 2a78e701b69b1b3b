// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/ggpaint"
)

// Rectangle stamps an axis-aligned rectangle spanning the drag. The outline
// is Size units wide; Filled paints the interior instead.
type Rectangle struct {
	Filled bool
}

// Shape implements ggpaint.ShapeRenderer.
func (s Rectangle) Shape(dst draw.Image, from, to ggpaint.Point, p ggpaint.StrokeParams) {
	x0, x1 := math.Min(from.X, to.X), math.Max(from.X, to.X)
	y0, y1 := math.Min(from.Y, to.Y), math.Max(from.Y, to.Y)
	half := p.Size / 2

	stamp(dst, bounds(half+1, from, to), p, func(x, y float64) float64 {
		// Signed distance to the rectangle, negative inside.
		dx := math.Max(x0-x, x-x1)
		dy := math.Max(y0-y, y-y1)
		d := math.Max(dx, dy)
		if d > 0 && dx > 0 && dy > 0 {
			d = math.Hypot(dx, dy)
		}
		if s.Filled {
			return edge(d)
		}
		return edge(math.Abs(d) - half)
	})
}

// Ellipse stamps the ellipse inscribed in the drag rectangle. The outline
// is Size units wide; Filled paints the interior instead.
type Ellipse struct {
	Filled bool
}

// Shape implements ggpaint.ShapeRenderer.
func (s Ellipse) Shape(dst draw.Image, from, to ggpaint.Point, p ggpaint.StrokeParams) {
	c := from.Lerp(to, 0.5)
	rx := math.Abs(to.X-from.X) / 2
	ry := math.Abs(to.Y-from.Y) / 2
	if rx == 0 || ry == 0 {
		return
	}
	half := p.Size / 2

	stamp(dst, bounds(half+1, from, to), p, func(x, y float64) float64 {
		// Approximate signed distance: scale the normalized radius error
		// by the smaller semi-axis.
		nx, ny := (x-c.X)/rx, (y-c.Y)/ry
		d := (math.Hypot(nx, ny) - 1) * math.Min(rx, ry)
		if s.Filled {
			return edge(d)
		}
		return edge(math.Abs(d) - half)
	})
}

func stamp(dst draw.Image, area image.Rectangle, p ggpaint.StrokeParams, cov coverage) {
	area = area.Intersect(dst.Bounds())
	mask := buildMask(area, p.Opacity, cov)
	if mask == nil {
		return
	}
	c := p.Color
	if c == nil {
		c = ggpaint.Black
	}
	draw.DrawMask(dst, area, image.NewUniform(c), image.Point{}, mask, area.Min, draw.Over)
}

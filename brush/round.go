// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/ggpaint"
)

// Round paints a round-capped line Size units wide.
type Round struct{}

// Stroke implements ggpaint.Brush.
func (Round) Stroke(dst draw.Image, from, to ggpaint.Point, p ggpaint.StrokeParams) {
	c := p.Color
	if c == nil {
		c = ggpaint.Black
	}
	capsule(dst, from, to, p, image.NewUniform(c), draw.Over)
}

// Eraser clears a round-capped line Size units wide back to transparent.
type Eraser struct{}

// Stroke implements ggpaint.Brush.
func (Eraser) Stroke(dst draw.Image, from, to ggpaint.Point, p ggpaint.StrokeParams) {
	capsule(dst, from, to, p, image.NewUniform(color.Transparent), draw.Src)
}

func capsule(dst draw.Image, from, to ggpaint.Point, p ggpaint.StrokeParams, src image.Image, op draw.Op) {
	r := p.Size / 2
	if r <= 0 {
		return
	}
	area := bounds(r+1, from, to).Intersect(dst.Bounds())
	mask := buildMask(area, p.Opacity, func(x, y float64) float64 {
		return edge(segmentDistance(x, y, from, to) - r)
	})
	if mask == nil {
		return
	}
	draw.DrawMask(dst, area, src, image.Point{}, mask, area.Min, op)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import (
	"image"
	"math"

	"github.com/gogpu/ggpaint"
)

// coverage maps a pixel center to its coverage in [0, 1].
type coverage func(x, y float64) float64

// buildMask evaluates cov over r, scaled by opacity. It returns nil when
// nothing is covered.
func buildMask(r image.Rectangle, opacity float64, cov coverage) *image.Alpha {
	if r.Empty() || opacity <= 0 {
		return nil
	}
	opacity = math.Min(opacity, 1)
	m := image.NewAlpha(r)
	covered := false
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := cov(float64(x)+0.5, float64(y)+0.5)
			if c <= 0 {
				continue
			}
			a := uint8(math.Min(c, 1)*opacity*255 + 0.5)
			if a == 0 {
				continue
			}
			m.Pix[m.PixOffset(x, y)] = a
			covered = true
		}
	}
	if !covered {
		return nil
	}
	return m
}

// edge turns a signed distance (negative inside) into 1-pixel antialiased
// coverage.
func edge(d float64) float64 {
	return math.Max(0, math.Min(1, 0.5-d))
}

// segmentDistance returns the distance from (x, y) to the segment a-b.
func segmentDistance(x, y float64, a, b ggpaint.Point) float64 {
	p := ggpaint.Pt(x, y)
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 == 0 {
		return p.Sub(a).Length()
	}
	t := (p.Sub(a).X*ab.X + p.Sub(a).Y*ab.Y) / l2
	t = math.Max(0, math.Min(1, t))
	return p.Sub(a.Add(ab.Mul(t))).Length()
}

// bounds returns the pixel rectangle covering the points padded by pad.
func bounds(pad float64, pts ...ggpaint.Point) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return image.Rect(
		int(math.Floor(minX-pad)), int(math.Floor(minY-pad)),
		int(math.Ceil(maxX+pad)), int(math.Ceil(maxY+pad)),
	)
}

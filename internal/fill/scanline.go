// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fill implements seed fills over packed RGBA pixel buffers.
package fill

// Buffer is a packed 4-bytes-per-pixel buffer.
// Stride is the distance in bytes between vertically adjacent pixels.
type Buffer struct {
	Pix    []uint8
	Stride int
	Width  int
	Height int
}

type seed struct{ x, y int }

func (b Buffer) offset(x, y int) int {
	return y*b.Stride + x*4
}

func (b Buffer) matches(x, y int, c [4]uint8) bool {
	i := b.offset(x, y)
	p := b.Pix[i : i+4 : i+4]
	return p[0] == c[0] && p[1] == c[1] && p[2] == c[2] && p[3] == c[3]
}

func (b Buffer) set(x, y int, c [4]uint8) {
	i := b.offset(x, y)
	copy(b.Pix[i:i+4], c[:])
}

// Target returns the colour at (x, y) and whether the point is in bounds.
func (b Buffer) Target(x, y int) ([4]uint8, bool) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return [4]uint8{}, false
	}
	i := b.offset(x, y)
	return [4]uint8{b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]}, true
}

// Scanline replaces the 4-connected region of pixels equal to the colour at
// (x, y) with c. It reports whether any pixel changed; a seed out of bounds
// or already equal to c is a no-op.
//
// Columns are walked vertically: each popped seed climbs to the top of its
// run, then the run is painted downwards. The reachLeft and reachRight
// flags record whether the neighbouring column is inside a matching run,
// so each contiguous neighbour run contributes a single seed.
func Scanline(b Buffer, x, y int, c [4]uint8) bool {
	target, ok := b.Target(x, y)
	if !ok || target == c {
		return false
	}

	stack := []seed{{x, y}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		px, py := s.x, s.y
		if !b.matches(px, py, target) {
			continue
		}
		for py > 0 && b.matches(px, py-1, target) {
			py--
		}

		reachLeft, reachRight := false, false
		for py < b.Height && b.matches(px, py, target) {
			b.set(px, py, c)

			if px > 0 {
				if b.matches(px-1, py, target) {
					if !reachLeft {
						stack = append(stack, seed{px - 1, py})
						reachLeft = true
					}
				} else {
					reachLeft = false
				}
			}
			if px < b.Width-1 {
				if b.matches(px+1, py, target) {
					if !reachRight {
						stack = append(stack, seed{px + 1, py})
						reachRight = true
					}
				} else {
					reachRight = false
				}
			}
			py++
		}
	}
	return true
}

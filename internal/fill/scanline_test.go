// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fill

import (
	"bytes"
	"testing"
)

var (
	white = [4]uint8{255, 255, 255, 255}
	black = [4]uint8{0, 0, 0, 255}
	red   = [4]uint8{255, 0, 0, 255}
)

func newBuffer(w, h int, c [4]uint8) Buffer {
	b := Buffer{Pix: make([]uint8, w*h*4), Stride: w * 4, Width: w, Height: h}
	for i := 0; i < len(b.Pix); i += 4 {
		copy(b.Pix[i:i+4], c[:])
	}
	return b
}

// drawBox outlines the rectangle [x0,x1]x[y0,y1] (inclusive) with c.
func drawBox(b Buffer, x0, y0, x1, y1 int, c [4]uint8) {
	for x := x0; x <= x1; x++ {
		b.set(x, y0, c)
		b.set(x, y1, c)
	}
	for y := y0; y <= y1; y++ {
		b.set(x0, y, c)
		b.set(x1, y, c)
	}
}

func at(b Buffer, x, y int) [4]uint8 {
	c, _ := b.Target(x, y)
	return c
}

func TestScanline_NoOp(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		c    [4]uint8
	}{
		{"same colour", 2, 2, white},
		{"left of buffer", -1, 2, red},
		{"below buffer", 2, 8, red},
		{"right edge", 8, 0, red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBuffer(8, 8, white)
			before := append([]uint8(nil), b.Pix...)
			if Scanline(b, tt.x, tt.y, tt.c) {
				t.Error("Scanline() = true, want false")
			}
			if !bytes.Equal(before, b.Pix) {
				t.Error("buffer changed on no-op fill")
			}
		})
	}
}

func TestScanline_EnclosedRegion(t *testing.T) {
	b := newBuffer(20, 20, white)
	drawBox(b, 5, 5, 14, 14, black)

	if !Scanline(b, 10, 10, red) {
		t.Fatal("Scanline() = false, want true")
	}

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			var want [4]uint8
			switch {
			case x > 5 && x < 14 && y > 5 && y < 14:
				want = red
			case (x == 5 || x == 14) && y >= 5 && y <= 14,
				(y == 5 || y == 14) && x >= 5 && x <= 14:
				want = black
			default:
				want = white
			}
			if got := at(b, x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestScanline_ConcaveShape(t *testing.T) {
	// A U-shaped wall: the fill has to travel down one arm and up the other.
	b := newBuffer(9, 9, white)
	for y := 0; y < 7; y++ {
		b.set(4, y, black)
	}

	Scanline(b, 0, 0, red)

	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			want := red
			if x == 4 && y < 7 {
				want = black
			}
			if got := at(b, x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestScanline_DiagonalNotConnected(t *testing.T) {
	b := newBuffer(3, 3, black)
	b.set(0, 0, white)
	b.set(1, 1, white)

	Scanline(b, 0, 0, red)

	if got := at(b, 0, 0); got != red {
		t.Errorf("seed pixel = %v, want red", got)
	}
	if got := at(b, 1, 1); got != white {
		t.Errorf("diagonal pixel = %v, want white (fill is 4-connected)", got)
	}
}

func TestScanline_ExactMatchOnly(t *testing.T) {
	b := newBuffer(4, 1, white)
	b.set(2, 0, [4]uint8{254, 255, 255, 255})

	Scanline(b, 0, 0, red)

	if got := at(b, 1, 0); got != red {
		t.Errorf("pixel (1,0) = %v, want red", got)
	}
	if got := at(b, 2, 0); got != [4]uint8{254, 255, 255, 255} {
		t.Errorf("near-match pixel changed to %v", got)
	}
	if got := at(b, 3, 0); got != white {
		t.Errorf("pixel past the barrier = %v, want white", got)
	}
}

func TestScanline_Stride(t *testing.T) {
	// 3x2 image with 4 bytes of row padding.
	b := Buffer{Pix: make([]uint8, 2*16), Stride: 16, Width: 3, Height: 2}
	Scanline(b, 1, 1, red)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := at(b, x, y); got != red {
				t.Errorf("pixel (%d,%d) = %v, want red", x, y, got)
			}
		}
		pad := b.Pix[y*16+12 : y*16+16]
		if !bytes.Equal(pad, make([]uint8, 4)) {
			t.Errorf("row %d padding written: %v", y, pad)
		}
	}
}

func BenchmarkScanline(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buf := newBuffer(512, 512, white)
		Scanline(buf, 256, 256, red)
	}
}

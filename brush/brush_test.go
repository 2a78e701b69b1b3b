// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/ggpaint"
)

var red = color.RGBA{R: 255, A: 255}

func canvas(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img
}

func params(size float64) ggpaint.StrokeParams {
	return ggpaint.StrokeParams{Size: size, Color: red, Opacity: 1}
}

func TestRound_Dot(t *testing.T) {
	img := canvas(20, 20)
	Round{}.Stroke(img, ggpaint.Pt(10, 10), ggpaint.Pt(10, 10), params(6))

	if got := img.RGBAAt(10, 10); got != red {
		t.Errorf("center = %v, want %v", got, red)
	}
	if got := img.RGBAAt(1, 1); got != ggpaint.White {
		t.Errorf("far pixel = %v, want white", got)
	}
}

func TestRound_Segment(t *testing.T) {
	img := canvas(40, 10)
	Round{}.Stroke(img, ggpaint.Pt(5, 5), ggpaint.Pt(35, 5), params(4))

	for x := 5; x < 35; x++ {
		if got := img.RGBAAt(x, 5); got != red {
			t.Fatalf("pixel (%d,5) = %v, want %v", x, got, red)
		}
	}
	if got := img.RGBAAt(20, 0); got != ggpaint.White {
		t.Errorf("pixel above the line = %v, want white", got)
	}
}

func TestRound_ZeroOpacity(t *testing.T) {
	img := canvas(10, 10)
	p := params(6)
	p.Opacity = 0
	Round{}.Stroke(img, ggpaint.Pt(5, 5), ggpaint.Pt(5, 5), p)

	if got := img.RGBAAt(5, 5); got != ggpaint.White {
		t.Errorf("pixel = %v, want untouched white", got)
	}
}

func TestRound_ClipsToDestination(t *testing.T) {
	img := canvas(10, 10)
	Round{}.Stroke(img, ggpaint.Pt(-20, -20), ggpaint.Pt(0, 0), params(8))

	if got := img.RGBAAt(0, 0); got != red {
		t.Errorf("corner = %v, want %v", got, red)
	}
}

func TestEraser(t *testing.T) {
	img := canvas(20, 20)
	Eraser{}.Stroke(img, ggpaint.Pt(10, 10), ggpaint.Pt(10, 10), params(6))

	if got := img.RGBAAt(10, 10); got != ggpaint.Transparent {
		t.Errorf("erased pixel = %v, want transparent", got)
	}
	if got := img.RGBAAt(0, 0); got != ggpaint.White {
		t.Errorf("far pixel = %v, want white", got)
	}
}

func TestRectangle(t *testing.T) {
	tests := []struct {
		name     string
		filled   bool
		interior color.RGBA
	}{
		{"outline", false, ggpaint.White},
		{"filled", true, red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := canvas(30, 30)
			Rectangle{Filled: tt.filled}.Shape(img, ggpaint.Pt(5, 5), ggpaint.Pt(25, 25), params(2))

			if got := img.RGBAAt(15, 15); got != tt.interior {
				t.Errorf("interior = %v, want %v", got, tt.interior)
			}
			if got := img.RGBAAt(15, 5); got.R != 255 || got.G == 255 {
				t.Errorf("top edge = %v, want red-ish", got)
			}
			if got := img.RGBAAt(28, 28); got != ggpaint.White {
				t.Errorf("outside = %v, want white", got)
			}
		})
	}
}

func TestEllipse(t *testing.T) {
	img := canvas(40, 20)
	Ellipse{Filled: true}.Shape(img, ggpaint.Pt(0, 0), ggpaint.Pt(40, 20), params(1))

	if got := img.RGBAAt(20, 10); got != red {
		t.Errorf("center = %v, want %v", got, red)
	}
	if got := img.RGBAAt(0, 0); got != ggpaint.White {
		t.Errorf("bounding-box corner = %v, want white", got)
	}
}

func TestEllipse_Degenerate(t *testing.T) {
	img := canvas(10, 10)
	Ellipse{}.Shape(img, ggpaint.Pt(2, 2), ggpaint.Pt(2, 8), params(2))

	for i := 0; i < len(img.Pix); i++ {
		if img.Pix[i] != 255 {
			t.Fatal("zero-width ellipse painted pixels")
		}
	}
}

package ggpaint

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff0000", color.RGBA{R: 255, A: 255}},
		{"00ff00", color.RGBA{G: 255, A: 255}},
		{"#fff", White},
		{"#000", Black},
		{" #0000ff ", color.RGBA{B: 255, A: 255}},
		{"#ffffff00", Transparent},
		{"#ff000080", color.RGBA{R: 128, A: 128}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#gggggg", "#ff0000zz"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) error = nil, want error", in)
		}
	}
}

func TestWithOpacity(t *testing.T) {
	tests := []struct {
		name    string
		opacity float64
		want    color.RGBA
	}{
		{"opaque", 1, color.RGBA{R: 200, A: 255}},
		{"clear", 0, Transparent},
		{"clamped", 3, color.RGBA{R: 200, A: 255}},
		{"negative", -1, Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithOpacity(color.RGBA{R: 200, A: 255}, tt.opacity); got != tt.want {
				t.Errorf("WithOpacity(%v) = %v, want %v", tt.opacity, got, tt.want)
			}
		})
	}
}

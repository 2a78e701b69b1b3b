package ggpaint

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Common colors. Surface pixels are premultiplied, so these are color.RGBA.
var (
	Transparent = color.RGBA{}
	Black       = color.RGBA{A: 255}
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// ParseColor parses a hex color. Supported forms: "#RGB", "#RRGGBB" and
// "#RRGGBBAA"; the leading '#' is optional.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	alpha := uint8(255)
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("ggpaint: parse color %q: %w", s, err)
		}
		alpha = uint8(a)
		hex = hex[:6]
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("ggpaint: parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return toRGBA(color.NRGBA{R: r, G: g, B: b, A: alpha}), nil
}

// WithOpacity returns c with its alpha scaled by opacity (clamped to [0, 1]).
func WithOpacity(c color.Color, opacity float64) color.RGBA {
	opacity = clamp01(opacity)
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*opacity + 0.5)
	return toRGBA(n)
}

// toRGBA converts any color to the surface's premultiplied representation.
func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package styles

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	black = "#000000"
	white = "#ffffff"
)

// ContrastRatio returns the WCAG contrast ratio between two hex colors, or 0
// if either does not parse.
func ContrastRatio(a, b string) float64 {
	ca, err := colorful.Hex(a)
	if err != nil {
		return 0
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return 0
	}
	la, lb := luminance(ca), luminance(cb)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// ReadableOn picks black or white, whichever contrasts more with background.
func ReadableOn(background string) string {
	if ContrastRatio(background, black) >= ContrastRatio(background, white) {
		return black
	}
	return white
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*clamp(r) + 0.7152*clamp(g) + 0.0722*clamp(b)
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

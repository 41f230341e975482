package trace

import (
	"image/color"
	"math"
)

var black = color.RGBA{0, 0, 0, 255}

// scaleColor multiplies each channel by f, clamps to [0,255] and truncates.
func scaleColor(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(math.Max(0, math.Min(255, float64(c.R)*f))),
		G: uint8(math.Max(0, math.Min(255, float64(c.G)*f))),
		B: uint8(math.Max(0, math.Min(255, float64(c.B)*f))),
		A: 255,
	}
}

// addColor is a saturating per-channel sum.
func addColor(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: addChannel(a.R, b.R),
		G: addChannel(a.G, b.G),
		B: addChannel(a.B, b.B),
		A: 255,
	}
}

func addChannel(a, b uint8) uint8 {
	s := int(a) + int(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// unitColor converts channels in [0,1] to 8 bits, rounding to nearest.
func unitColor(r, g, b float64) color.RGBA {
	return color.RGBA{R: unitChannel(r), G: unitChannel(g), B: unitChannel(b), A: 255}
}

func unitChannel(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

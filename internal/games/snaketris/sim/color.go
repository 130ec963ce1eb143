package sim

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

func luminance(c colorful.Color) float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// Brighten scales c so its luminance rises by amount. Channels may exceed 1;
// Hex clamps on the way out.
func Brighten(c colorful.Color, amount float64) colorful.Color {
	l := luminance(c)
	if l == 0 {
		return c
	}
	ratio := (l + amount) / l
	return colorful.Color{R: c.R * ratio, G: c.G * ratio, B: c.B * ratio}
}

// Desaturate pulls every channel toward the channel mean by factor d in [0, 1].
func Desaturate(c colorful.Color, d float64) colorful.Color {
	avg := (c.R + c.G + c.B) / 3
	return colorful.Color{
		R: c.R + (avg-c.R)*d,
		G: c.G + (avg-c.G)*d,
		B: c.B + (avg-c.B)*d,
	}.Clamped()
}

// BrightColor draws a random color, lifting dark draws so every channel is
// at least 0.3.
func BrightColor(rng *rand.Rand) colorful.Color {
	c := colorful.Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
	if luminance(c) < 0.5 {
		c.R = max(c.R, 0.3)
		c.G = max(c.G, 0.3)
		c.B = max(c.B, 0.3)
	}
	return c
}

// Hex formats c as "#rrggbb", clamping out-of-range channels.
func Hex(c colorful.Color) string {
	return c.Clamped().Hex()
}

// ParseColor parses a "#rrggbb" string, returning fallback if it is malformed.
func ParseColor(s string, fallback colorful.Color) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return fallback
	}
	return c
}

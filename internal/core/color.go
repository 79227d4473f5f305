package core

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color is a linear RGB triple with components in [0, 1].
type Color struct {
	R, G, B float32
}

// Hex parses "#rrggbb" or "rrggbb".
func Hex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{
		R: float32((v>>16)&0xff) / 255,
		G: float32((v>>8)&0xff) / 255,
		B: float32(v&0xff) / 255,
	}, nil
}

// MustHex is Hex for package-level defaults.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String formats the color as #rrggbb.
func (c Color) String() string {
	r, g, b := to8(c.R), to8(c.G), to8(c.B)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Clamped returns the color with every component limited to [0, 1] and
// reports whether anything changed. NaN components become 0.
func (c Color) Clamped() (Color, bool) {
	out := Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
	return out, out != c
}

// Mix blends c toward other by weight w in [0, 1].
func (c Color) Mix(other Color, w float32) Color {
	if w <= 0 {
		return c
	}
	if w >= 1 {
		return other
	}
	inv := 1 - w
	return Color{
		R: c.R*inv + other.R*w,
		G: c.G*inv + other.G*w,
		B: c.B*inv + other.B*w,
	}
}

// RGBA converts to an opaque 8-bit color.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 255}
}

func to8(v float32) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float32) float32 {
	if math.IsNaN(float64(v)) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Smoothstep is the Hermite step between edge0 and edge1.
func Smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

package core

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexRoundTrip(t *testing.T) {
	c, err := Hex("#66a8ff")
	require.NoError(t, err)
	assert.Equal(t, "#66a8ff", c.String())
	assert.Equal(t, color.RGBA{R: 0x66, G: 0xa8, B: 0xff, A: 0xff}, c.RGBA())

	_, err = Hex("#abc")
	assert.Error(t, err)
	_, err = Hex("zzzzzz")
	assert.Error(t, err)
	assert.Panics(t, func() { MustHex("nope") })
}

func TestColorClampAndMix(t *testing.T) {
	c, changed := Color{R: 1.5, G: float32(math.NaN()), B: 0.25}.Clamped()
	assert.True(t, changed)
	assert.Equal(t, Color{R: 1, G: 0, B: 0.25}, c)

	_, changed = Color{R: 0.2, G: 0.3, B: 0.4}.Clamped()
	assert.False(t, changed)

	a := Color{R: 0.1, G: 0.2, B: 0.3}
	b := Color{R: 0.9, G: 0.7, B: 0.5}
	assert.Equal(t, a, a.Mix(b, 0))
	assert.Equal(t, b, a.Mix(b, 1))
	assert.Equal(t, b, a.Mix(b, 2))
	assert.InDelta(t, 0.5, a.Mix(b, 0.5).R, 1e-6)
}

func TestSmoothstep(t *testing.T) {
	assert.Equal(t, 0.0, Smoothstep(0, 1, -1))
	assert.Equal(t, 1.0, Smoothstep(0, 1, 2))
	assert.Equal(t, 0.5, Smoothstep(-0.3, 0.3, 0))
	assert.Equal(t, 1.0, Smoothstep(1, 1, 1))
	assert.Equal(t, 0.0, Smoothstep(1, 1, 0.5))
}

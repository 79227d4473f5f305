package terrain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCompositor() Compositor {
	cfg := DefaultConfig()
	return Compositor{Palette: cfg.Palette, Fog: cfg.Fog, Blend: cfg.BandBlend}
}

func TestBandsAtExtremes(t *testing.T) {
	c := testCompositor()
	assert.Equal(t, c.Palette.WaterDeep, c.Shade(-3, 0, 0, 0))
	assert.Equal(t, c.Palette.Snow, c.Shade(2, 0, 0, 0))
	assert.Equal(t, c.Palette.Grass, c.Shade(0.2, 0, 0, 0))
	assert.Equal(t, c.Palette.Rock, c.Shade(0.2, 0.6, 0, 0))
}

func TestBandsHaveNoHardCutoffs(t *testing.T) {
	c := testCompositor()
	for _, edge := range []float64{sandLine, grassLine, snowLine} {
		below := c.Shade(edge-1e-4, 0, 0, 0)
		above := c.Shade(edge+1e-4, 0, 0, 0)
		assert.InDelta(t, below.R, above.R, 0.02, "edge %v", edge)
		assert.InDelta(t, below.G, above.G, 0.02, "edge %v", edge)
		assert.InDelta(t, below.B, above.B, 0.02, "edge %v", edge)
	}
}

func TestSnowJitterNeedsBasis(t *testing.T) {
	c := testCompositor()
	c.Jitter = 0.1
	assert.Equal(t, c.Shade(0.45, 0, 3, 4), testCompositor().Shade(0.45, 0, 3, 4))
}

func TestExponentialFog(t *testing.T) {
	c := testCompositor()
	c.Fog.Density = 0.1
	assert.Equal(t, 0.0, c.FogFactor(0))
	assert.InDelta(t, 1-math.Exp(-1), c.FogFactor(10), 1e-12)
	prev := 0.0
	for d := 1.0; d < 40; d += 3 {
		f := c.FogFactor(d)
		assert.Greater(t, f, prev)
		prev = f
	}
	assert.Equal(t, c.Fog.Color, c.ApplyFog(c.Palette.Grass, 1e6))
	assert.Equal(t, c.Palette.Grass, c.ApplyFog(c.Palette.Grass, 0))
}

func TestLinearFog(t *testing.T) {
	c := testCompositor()
	c.Fog.Density = 0
	c.Fog.Near = 5
	c.Fog.Far = 15
	assert.Equal(t, 0.0, c.FogFactor(2))
	assert.Equal(t, 0.5, c.FogFactor(10))
	assert.Equal(t, 1.0, c.FogFactor(40))

	c.Fog.Far = 5
	assert.Equal(t, 0.0, c.FogFactor(4))
	assert.Equal(t, 1.0, c.FogFactor(5))
}

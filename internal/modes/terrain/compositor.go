package terrain

import (
	"math"

	"terramorph/internal/core"
	"terramorph/internal/noise"
)

// Band thresholds, in height units, and the slope above which rock shows.
const (
	surfaceWaterLow  = -1.0
	surfaceWaterHigh = -0.1
	sandLine         = -0.1
	grassLine        = -0.06
	rockSlope        = 0.2
	snowLine         = 0.45
	snowFrequency    = 15.0
)

// Compositor maps height and slope to a band color and applies fog. It holds
// no mutable state.
type Compositor struct {
	Palette Palette
	Fog     Fog
	Blend   float64
	Jitter  float64
	Basis   noise.Basis
}

// Shade returns the blended band color for a vertex at domain coordinate
// (x, z) with the given height and slope.
func (c Compositor) Shade(height, slope, x, z float64) core.Color {
	b := c.Blend
	col := c.Palette.WaterDeep
	col = col.Mix(c.Palette.WaterSurface, float32(core.Smoothstep(surfaceWaterLow, surfaceWaterHigh, height)))
	col = col.Mix(c.Palette.Sand, float32(core.Smoothstep(sandLine-b, sandLine+b, height)))

	grass := core.Smoothstep(grassLine-b, grassLine+b, height)
	col = col.Mix(c.Palette.Grass, float32(grass))

	rock := core.Smoothstep(rockSlope-b, rockSlope+b, slope) * grass
	col = col.Mix(c.Palette.Rock, float32(rock))

	threshold := snowLine
	if c.Basis != nil && c.Jitter != 0 {
		threshold += c.Basis.Eval3(x*snowFrequency, z*snowFrequency, 0) * c.Jitter
	}
	col = col.Mix(c.Palette.Snow, float32(core.Smoothstep(threshold-b, threshold+b, height)))
	return col
}

// FogFactor returns how much of the fog color replaces the surface color at
// the given view distance, in [0, 1].
func (c Compositor) FogFactor(distance float64) float64 {
	if c.Fog.Density > 0 {
		d := c.Fog.Density * distance
		return 1 - math.Exp(-d*d)
	}
	if c.Fog.Far <= c.Fog.Near {
		if distance >= c.Fog.Far {
			return 1
		}
		return 0
	}
	f := (distance - c.Fog.Near) / (c.Fog.Far - c.Fog.Near)
	return math.Max(0, math.Min(1, f))
}

// ApplyFog blends col toward the fog color for the given view distance.
func (c Compositor) ApplyFog(col core.Color, distance float64) core.Color {
	return col.Mix(c.Fog.Color, float32(c.FogFactor(distance)))
}

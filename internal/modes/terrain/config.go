package terrain

import (
	"strconv"

	"terramorph/internal/core"
	"terramorph/internal/noise"
)

// Palette holds the six band colors.
type Palette struct {
	WaterDeep    core.Color
	WaterSurface core.Color
	Sand         core.Color
	Grass        core.Color
	Rock         core.Color
	Snow         core.Color
}

// Fog controls distance fog. A positive Density selects exponential-squared
// fog; otherwise fog ramps linearly between Near and Far.
type Fog struct {
	Color   core.Color
	Near    float64
	Far     float64
	Density float64
}

// Config controls the terrain mode.
type Config struct {
	Segments int
	Size     float64
	Speed    float64

	Basis string
	Seed  int64
	Noise noise.Params

	Palette    Palette
	Fog        Fog
	BandBlend  float64
	SnowJitter float64

	// LightDir points from the light toward the scene; the depth mirror
	// measures depth along it.
	LightDir [3]float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Segments: 100,
		Size:     10,
		Speed:    0.05,
		Basis:    noise.BasisSimplex,
		Seed:     1337,
		Noise:    noise.DefaultParams(),
		Palette: Palette{
			WaterDeep:    core.MustHex("#002b3d"),
			WaterSurface: core.MustHex("#66a8ff"),
			Sand:         core.MustHex("#ffe894"),
			Grass:        core.MustHex("#85d534"),
			Rock:         core.MustHex("#bfbd8d"),
			Snow:         core.MustHex("#ffffff"),
		},
		Fog: Fog{
			Color:   core.MustHex("#b9d5ff"),
			Near:    6,
			Far:     20,
			Density: 0.06,
		},
		BandBlend:  0.02,
		SnowJitter: 0.1,
		LightDir:   [3]float64{-0.45, -0.8, -0.4},
	}
}

var controls = core.ControlTable{
	{Key: "position_frequency", Label: "Position frequency", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 5, HasMin: true, HasMax: true},
	{Key: "strength", Label: "Strength", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 10, HasMin: true, HasMax: true},
	{Key: "warp_frequency", Label: "Warp frequency", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 20, HasMin: true, HasMax: true},
	{Key: "warp_strength", Label: "Warp strength", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 5, HasMin: true, HasMax: true},
	{Key: "octaves", Label: "Octaves", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 8, HasMin: true, HasMax: true},
	{Key: "exponent", Label: "Exponent", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.5, Max: 4, HasMin: true, HasMax: true},
	{Key: "time_scale", Label: "Time scale", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 5, HasMin: true, HasMax: true},
	{Key: "speed", Label: "Move speed", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "segments", Label: "Segments", Type: core.ParamTypeInt, Step: 10, Min: 2, Max: core.MaxPlaneSegments, HasMin: true, HasMax: true},
	{Key: "size", Label: "Size", Type: core.ParamTypeFloat, Step: 1, Min: 1, Max: 100, HasMin: true, HasMax: true},
	{Key: "fog_density", Label: "Fog density", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "fog_near", Label: "Fog near", Type: core.ParamTypeFloat, Step: 0.5, Min: 0, Max: 1000, HasMin: true, HasMax: true},
	{Key: "fog_far", Label: "Fog far", Type: core.ParamTypeFloat, Step: 0.5, Min: 0, Max: 1000, HasMin: true, HasMax: true},
	{Key: "band_blend", Label: "Band blend", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 0.5, HasMin: true, HasMax: true},
	{Key: "snow_jitter", Label: "Snow jitter", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
}

var colorKeys = []string{
	"color_water_deep", "color_water_surface", "color_sand",
	"color_grass", "color_rock", "color_snow", "fog_color",
}

// colorRef returns a pointer to the palette entry for key.
func (c *Config) colorRef(key string) *core.Color {
	switch key {
	case "color_water_deep":
		return &c.Palette.WaterDeep
	case "color_water_surface":
		return &c.Palette.WaterSurface
	case "color_sand":
		return &c.Palette.Sand
	case "color_grass":
		return &c.Palette.Grass
	case "color_rock":
		return &c.Palette.Rock
	case "color_snow":
		return &c.Palette.Snow
	case "fog_color":
		return &c.Fog.Color
	}
	return nil
}

// floatRef returns a pointer to the float field for key.
func (c *Config) floatRef(key string) *float64 {
	switch key {
	case "position_frequency":
		return &c.Noise.PositionFrequency
	case "strength":
		return &c.Noise.Strength
	case "warp_frequency":
		return &c.Noise.WarpFrequency
	case "warp_strength":
		return &c.Noise.WarpStrength
	case "exponent":
		return &c.Noise.Exponent
	case "time_scale":
		return &c.Noise.TimeScale
	case "speed":
		return &c.Speed
	case "size":
		return &c.Size
	case "fog_density":
		return &c.Fog.Density
	case "fog_near":
		return &c.Fog.Near
	case "fog_far":
		return &c.Fog.Far
	case "band_blend":
		return &c.BandBlend
	case "snow_jitter":
		return &c.SnowJitter
	}
	return nil
}

// intRef returns a pointer to the integer field for key.
func (c *Config) intRef(key string) *int {
	switch key {
	case "octaves":
		return &c.Noise.Octaves
	case "segments":
		return &c.Segments
	}
	return nil
}

// Sanitize clamps every field to its documented bounds.
func (c *Config) Sanitize(s *core.Sanitizer) {
	s.Controls = controls
	for _, ctrl := range controls {
		if f := c.floatRef(ctrl.Key); f != nil {
			s.Float(ctrl.Key, f)
		}
		if i := c.intRef(ctrl.Key); i != nil {
			s.Int(ctrl.Key, i)
		}
	}
	s.Order("fog_far", c.Fog.Near, &c.Fog.Far)
	for _, key := range colorKeys {
		s.Color(key, c.colorRef(key))
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values are ignored; range checks happen in Sanitize.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	for key, v := range cfg {
		if f := c.floatRef(key); f != nil {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*f = parsed
			}
			continue
		}
		if i := c.intRef(key); i != nil {
			if parsed, err := strconv.Atoi(v); err == nil {
				*i = parsed
			}
			continue
		}
		if col := c.colorRef(key); col != nil {
			if parsed, err := core.Hex(v); err == nil {
				*col = parsed
			}
			continue
		}
		switch key {
		case "basis":
			c.Basis = v
		case "seed":
			if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
				c.Seed = parsed
			}
		}
	}
	return c
}

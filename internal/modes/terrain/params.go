package terrain

import (
	"strconv"

	"terramorph/internal/core"
)

// Parameters reports the current tunables grouped for display.
func (e *Engine) Parameters() core.ParameterSnapshot {
	c := e.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Mesh",
			Params: []core.Parameter{
				core.IntParam("segments", "Segments", c.Segments),
				core.FloatParam("size", "Size", c.Size),
				core.FloatParam("speed", "Move speed", c.Speed),
				core.StringParam("basis", "Noise basis", c.Basis),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(c.Seed, 10)},
			},
		},
		{
			Name: "Noise",
			Params: []core.Parameter{
				core.FloatParam("position_frequency", "Position frequency", c.Noise.PositionFrequency),
				core.FloatParam("strength", "Strength", c.Noise.Strength),
				core.FloatParam("warp_frequency", "Warp frequency", c.Noise.WarpFrequency),
				core.FloatParam("warp_strength", "Warp strength", c.Noise.WarpStrength),
				core.IntParam("octaves", "Octaves", c.Noise.Octaves),
				core.FloatParam("exponent", "Exponent", c.Noise.Exponent),
				core.FloatParam("time_scale", "Time scale", c.Noise.TimeScale),
			},
		},
		{
			Name: "Bands",
			Params: []core.Parameter{
				core.ColorParam("color_water_deep", "Water deep", c.Palette.WaterDeep),
				core.ColorParam("color_water_surface", "Water surface", c.Palette.WaterSurface),
				core.ColorParam("color_sand", "Sand", c.Palette.Sand),
				core.ColorParam("color_grass", "Grass", c.Palette.Grass),
				core.ColorParam("color_rock", "Rock", c.Palette.Rock),
				core.ColorParam("color_snow", "Snow", c.Palette.Snow),
				core.FloatParam("band_blend", "Band blend", c.BandBlend),
				core.FloatParam("snow_jitter", "Snow jitter", c.SnowJitter),
			},
		},
		{
			Name: "Fog",
			Params: []core.Parameter{
				core.ColorParam("fog_color", "Fog color", c.Fog.Color),
				core.FloatParam("fog_near", "Fog near", c.Fog.Near),
				core.FloatParam("fog_far", "Fog far", c.Fog.Far),
				core.FloatParam("fog_density", "Fog density", c.Fog.Density),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable controls with their bounds.
func (e *Engine) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(controls))
	copy(out, controls)
	return out
}

// SetFloatParameter updates one float tunable, clamping it to its bounds.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	next := e.cfg
	f := next.floatRef(key)
	if f == nil {
		return false
	}
	*f = value
	return e.Configure(next)
}

// SetIntParameter updates one integer tunable, clamping it to its bounds.
func (e *Engine) SetIntParameter(key string, value int) bool {
	next := e.cfg
	i := next.intRef(key)
	if i == nil {
		return false
	}
	*i = value
	return e.Configure(next)
}

// SetColorParameter updates one palette or fog color.
func (e *Engine) SetColorParameter(key string, value core.Color) bool {
	next := e.cfg
	c := next.colorRef(key)
	if c == nil {
		return false
	}
	*c = value
	return e.Configure(next)
}

package morph

import (
	"strconv"

	"terramorph/internal/core"
)

// Parameters reports the current tunables and driver state.
func (e *Engine) Parameters() core.ParameterSnapshot {
	c := e.cfg
	state := []core.Parameter{
		core.StringParam("easing", "Easing", c.Easing),
		{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(c.Seed, 10)},
	}
	if e.driver != nil {
		state = append(state,
			core.IntParam("source", "Source", e.driver.Source()),
			core.IntParam("target", "Target", e.driver.Target()),
			core.FloatParam("progress", "Progress", e.driver.Progress()),
			core.StringParam("state", "State", e.driver.State().String()),
		)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Morph", Params: state},
		{
			Name: "Particles",
			Params: []core.Parameter{
				core.FloatParam("point_size", "Point size", c.PointSize),
				core.FloatParam("size_min", "Size min", c.SizeMin),
				core.FloatParam("size_max", "Size max", c.SizeMax),
				core.FloatParam("noise_frequency", "Color noise frequency", c.NoiseFrequency),
				core.ColorParam("color_a", "Color A", c.ColorA),
				core.ColorParam("color_b", "Color B", c.ColorB),
			},
		},
		{
			Name: "Pointer",
			Params: []core.Parameter{
				core.FloatParam("influence_radius", "Influence radius", c.InfluenceRadius),
				core.FloatParam("ray_threshold", "Ray threshold", c.RayThreshold),
				core.FloatParam("velocity_gain", "Velocity gain", c.VelocityGain),
				core.FloatParam("max_displacement", "Max displacement", c.MaxDisplacement),
				core.FloatParam("decay", "Decay", c.Decay),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable float controls.
func (e *Engine) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, 0, len(controls))
	for _, c := range controls {
		if c.Type == core.ParamTypeFloat {
			out = append(out, c)
		}
	}
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

// SetIntParameter maps "target" onto RequestMorph so steppers can cycle
// shapes.
func (e *Engine) SetIntParameter(key string, value int) bool {
	if key != "target" {
		return false
	}
	return e.RequestMorph(value)
}

// SetColorParameter updates one of the two particle colors.
func (e *Engine) SetColorParameter(key string, value core.Color) bool {
	next := e.cfg
	c := next.colorRef(key)
	if c == nil {
		return false
	}
	*c = value
	return e.Configure(next)
}

package morph

import (
	"strconv"

	"terramorph/internal/core"
)

// Config controls the morph mode.
type Config struct {
	Seed          int64
	InitialTarget int
	Easing        string

	PointSize float64
	SizeMin   float64
	SizeMax   float64

	InfluenceRadius float64
	RayThreshold    float64
	VelocityGain    float64
	MaxDisplacement float64
	Decay           float64

	NoiseFrequency float64
	ColorA         core.Color
	ColorB         core.Color
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:            1337,
		InitialTarget:   0,
		Easing:          "linear",
		PointSize:       3,
		SizeMin:         0.5,
		SizeMax:         1.5,
		InfluenceRadius: 0.6,
		RayThreshold:    0.1,
		VelocityGain:    30,
		MaxDisplacement: 0.8,
		Decay:           0.95,
		NoiseFrequency:  0.2,
		ColorA:          core.MustHex("#ff7300"),
		ColorB:          core.MustHex("#0091ff"),
	}
}

var controls = core.ControlTable{
	{Key: "initial_target", Label: "Initial target", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: MaxTargets - 1, HasMin: true, HasMax: true},
	{Key: "point_size", Label: "Point size", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, Max: 20, HasMin: true, HasMax: true},
	{Key: "size_min", Label: "Size min", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.05, Max: 10, HasMin: true, HasMax: true},
	{Key: "size_max", Label: "Size max", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.05, Max: 10, HasMin: true, HasMax: true},
	{Key: "influence_radius", Label: "Influence radius", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.01, Max: 10, HasMin: true, HasMax: true},
	{Key: "ray_threshold", Label: "Ray threshold", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.001, Max: 1, HasMin: true, HasMax: true},
	{Key: "velocity_gain", Label: "Velocity gain", Type: core.ParamTypeFloat, Step: 1, Min: 0, Max: 200, HasMin: true, HasMax: true},
	{Key: "max_displacement", Label: "Max displacement", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 5, HasMin: true, HasMax: true},
	{Key: "decay", Label: "Decay", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 0.999, HasMin: true, HasMax: true},
	{Key: "noise_frequency", Label: "Color noise frequency", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 5, HasMin: true, HasMax: true},
}

func (c *Config) floatRef(key string) *float64 {
	switch key {
	case "point_size":
		return &c.PointSize
	case "size_min":
		return &c.SizeMin
	case "size_max":
		return &c.SizeMax
	case "influence_radius":
		return &c.InfluenceRadius
	case "ray_threshold":
		return &c.RayThreshold
	case "velocity_gain":
		return &c.VelocityGain
	case "max_displacement":
		return &c.MaxDisplacement
	case "decay":
		return &c.Decay
	case "noise_frequency":
		return &c.NoiseFrequency
	}
	return nil
}

func (c *Config) colorRef(key string) *core.Color {
	switch key {
	case "color_a":
		return &c.ColorA
	case "color_b":
		return &c.ColorB
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
	}
	s.Int("initial_target", &c.InitialTarget)
	s.Order("size_max", c.SizeMin, &c.SizeMax)
	s.Color("color_a", &c.ColorA)
	s.Color("color_b", &c.ColorB)
	if c.Easing != "linear" && c.Easing != "smooth" {
		s.Replace("easing", c.Easing, "linear")
		c.Easing = "linear"
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
		if col := c.colorRef(key); col != nil {
			if parsed, err := core.Hex(v); err == nil {
				*col = parsed
			}
			continue
		}
		switch key {
		case "initial_target":
			if parsed, err := strconv.Atoi(v); err == nil {
				c.InitialTarget = parsed
			}
		case "easing":
			c.Easing = v
		case "seed":
			if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
				c.Seed = parsed
			}
		}
	}
	return c
}

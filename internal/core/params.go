package core

import (
	"math"
	"strconv"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeColor denotes #rrggbb color parameters.
	ParamTypeColor ParamType = "color"
	// ParamTypeString denotes free-form enumerations such as easing names.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single tunable value exposed by a mode.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of tunables exposed by a mode.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an adjustable parameter with its documented
// bounds. The same table drives HUD steppers and configuration clamping.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// Clamp limits v to the control's bounds and reports whether it changed.
// NaN is replaced by the lower bound, or zero when there is none.
func (c ParameterControl) Clamp(v float64) (float64, bool) {
	if math.IsNaN(v) {
		if c.HasMin {
			return c.Min, true
		}
		return 0, true
	}
	if c.HasMin && v < c.Min {
		return c.Min, true
	}
	if c.HasMax && v > c.Max {
		return c.Max, true
	}
	return v, false
}

// ControlTable indexes controls by key.
type ControlTable []ParameterControl

// Find returns the control registered under key.
func (t ControlTable) Find(key string) (ParameterControl, bool) {
	for _, c := range t {
		if c.Key == key {
			return c, true
		}
	}
	return ParameterControl{}, false
}

// ParameterProvider exposes the current parameter values.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// ColorParameterSetter allows updates to color parameters.
type ColorParameterSetter interface {
	SetColorParameter(key string, value Color) bool
}

// IntParam formats an integer parameter.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

// FloatParam formats a floating point parameter.
func FloatParam(key, label string, value float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

// ColorParam formats a color parameter.
func ColorParam(key, label string, value Color) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeColor, Value: value.String()}
}

// StringParam formats an enumerated string parameter.
func StringParam(key, label, value string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeString, Value: value}
}

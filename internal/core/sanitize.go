package core

import (
	"log/slog"

	"terramorph/internal/metrics"
)

// Sanitizer clamps configuration values to a control table's bounds,
// logging and counting every adjustment. Clamping never fails.
type Sanitizer struct {
	Controls ControlTable
	Log      *slog.Logger
	Metrics  *metrics.Recorder

	Clamped int
}

// Float clamps *v to the bounds registered under key.
func (s *Sanitizer) Float(key string, v *float64) {
	ctrl, ok := s.Controls.Find(key)
	if !ok {
		return
	}
	out, changed := ctrl.Clamp(*v)
	if changed {
		s.report(key, *v, out)
		*v = out
	}
}

// Int clamps *v to the bounds registered under key.
func (s *Sanitizer) Int(key string, v *int) {
	ctrl, ok := s.Controls.Find(key)
	if !ok {
		return
	}
	out, changed := ctrl.Clamp(float64(*v))
	if changed {
		s.report(key, *v, int(out))
		*v = int(out)
	}
}

// Color limits every component of *c to [0, 1].
func (s *Sanitizer) Color(key string, c *Color) {
	out, changed := c.Clamped()
	if changed {
		s.report(key, *c, out)
		*c = out
	}
}

// Order raises *hi to lo when the pair is inverted.
func (s *Sanitizer) Order(key string, lo float64, hi *float64) {
	if *hi < lo {
		s.report(key, *hi, lo)
		*hi = lo
	}
}

// Replace records that a value outside its documented domain was swapped
// for a default.
func (s *Sanitizer) Replace(key string, from, to any) {
	s.report(key, from, to)
}

func (s *Sanitizer) report(key string, from, to any) {
	s.Clamped++
	if s.Log != nil {
		s.Log.Warn("parameter out of range, clamped", "key", key, "value", from, "clamped", to)
	}
	s.Metrics.Clamped(key)
}

package morph

import "strings"

// MorphDuration is the fixed length of one transition in milliseconds.
const MorphDuration = 2000.0

// State is the interpolation driver's phase.
type State uint8

const (
	Idle State = iota
	Transitioning
)

func (s State) String() string {
	if s == Transitioning {
		return "transitioning"
	}
	return "idle"
}

// Easing maps linear time in [0, 1] to progress in [0, 1] with f(0)=0 and
// f(1)=1.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// Smooth is the cubic Hermite ease-in-out.
func Smooth(t float64) float64 { return t * t * (3 - 2*t) }

// EasingByName resolves "linear" or "smooth"; anything else is linear.
func EasingByName(name string) Easing {
	if strings.EqualFold(name, "smooth") {
		return Smooth
	}
	return Linear
}

// Driver animates progress between a source and a target shape index.
type Driver struct {
	Duration float64
	Easing   Easing

	source   int
	target   int
	progress float64
	state    State
	startMS  float64
}

// NewDriver returns an idle driver resting on shape index initial.
func NewDriver(initial int, easing Easing) *Driver {
	if easing == nil {
		easing = Linear
	}
	return &Driver{Duration: MorphDuration, Easing: easing, source: initial, target: initial}
}

// Request starts a transition toward index at time nowMS. Asking for the
// active target while progress is 0 is a no-op and returns false. A request
// during a transition restarts progress at 0 from the previously requested
// target.
func (d *Driver) Request(index int, nowMS float64) bool {
	if index == d.target && d.progress == 0 {
		return false
	}
	d.source = d.target
	d.target = index
	d.progress = 0
	d.state = Transitioning
	d.startMS = nowMS
	return true
}

// Update advances progress to time nowMS and reports whether the transition
// completed during this call. On completion the target becomes the source
// and progress resets to 0.
func (d *Driver) Update(nowMS float64) bool {
	if d.state != Transitioning {
		return false
	}
	raw := 1.0
	if d.Duration > 0 {
		raw = (nowMS - d.startMS) / d.Duration
	}
	if raw < 0 {
		raw = 0
	}
	if raw >= 1 {
		d.source = d.target
		d.progress = 0
		d.state = Idle
		return true
	}
	d.progress = d.Easing(raw)
	return false
}

// Cancel abandons an in-flight transition, leaving the shape at its target.
func (d *Driver) Cancel() {
	if d.state == Transitioning {
		d.source = d.target
	}
	d.progress = 0
	d.state = Idle
}

// Source returns the shape index being morphed from.
func (d *Driver) Source() int { return d.source }

// Target returns the active shape index.
func (d *Driver) Target() int { return d.target }

// Progress returns the eased progress in [0, 1).
func (d *Driver) Progress() float64 { return d.progress }

// State returns the current phase.
func (d *Driver) State() State { return d.state }

package core

import (
	"log/slog"
	"sort"

	"terramorph/internal/metrics"
)

// Viewport describes the drawable surface the host renders into.
type Viewport struct {
	W          int
	H          int
	PixelRatio float64
}

// Aspect returns the width/height ratio, falling back to 1 for degenerate sizes.
func (v Viewport) Aspect() float32 {
	if v.W <= 0 || v.H <= 0 {
		return 1
	}
	return float32(v.W) / float32(v.H)
}

// Frame is the per-frame context handed to a mode by the host.
type Frame struct {
	ElapsedMS float64
	DeltaMS   float64
	Viewport  Viewport
	Camera    *Camera
}

// Seconds returns the elapsed time in seconds.
func (f Frame) Seconds() float64 { return f.ElapsedMS / 1000 }

// Resources bundles everything a mode needs at construction time. The host
// only invokes a factory once all of these are ready.
type Resources struct {
	Logger  *slog.Logger
	Input   *InputQueue
	Metrics *metrics.Recorder
	Seed    int64
	Options map[string]string
	Targets []PointBuffer
}

// Log returns the configured logger or the process default.
func (r Resources) Log() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

// Mode is a hot-swappable generative mode driven by the host frame loop.
type Mode interface {
	Name() string
	Advance(frame Frame)
	Teardown()
}

// Factory constructs a Mode from the supplied resources.
type Factory func(res Resources) (Mode, error)

var modes = map[string]Factory{}

// Register adds a mode factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	modes[name] = f
}

// Modes exposes the registry of available mode factories.
func Modes() map[string]Factory {
	return modes
}

// ModeNames returns the registered names in stable order.
func ModeNames() []string {
	names := make([]string, 0, len(modes))
	for name := range modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

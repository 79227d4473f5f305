package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"terramorph/internal/config"
	"terramorph/internal/core"
	"terramorph/internal/metrics"
)

// HostOptions carries everything a Host hands to mode factories.
type HostOptions struct {
	Logger        *slog.Logger
	Metrics       *metrics.Recorder
	Seed          int64
	SeedExplicit  bool
	Config        config.Document
	Overrides     Overrides
	Targets       []core.PointBuffer
	Viewport      core.Viewport
	QueueCapacity int
	Now           func() time.Time
}

// Host owns the active mode, the input queue and the frame clock. Exactly
// one mode is live at a time; switching tears the old one down first.
type Host struct {
	opts  HostOptions
	log   *slog.Logger
	input *core.InputQueue
	clock *core.FrameClock

	mode     core.Mode
	camera   *core.Camera
	viewport core.Viewport
	lastMS   float64
	frames   int
}

// NewHost prepares a host without starting any mode.
func NewHost(opts HostOptions) *Host {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	h := &Host{
		opts:     opts,
		log:      log,
		input:    core.NewInputQueue(opts.QueueCapacity),
		clock:    core.NewFrameClock(opts.Now),
		viewport: opts.Viewport,
	}
	h.input.OnDrop(opts.Metrics.InputDropped)
	return h
}

// Input returns the queue platform callbacks push into.
func (h *Host) Input() *core.InputQueue { return h.input }

// Mode returns the active mode, or nil.
func (h *Host) Mode() core.Mode { return h.mode }

// Camera returns the camera handed to the active mode.
func (h *Host) Camera() *core.Camera { return h.camera }

// Viewport returns the current drawable size.
func (h *Host) Viewport() core.Viewport { return h.viewport }

// Frames reports how many frames the active mode has advanced.
func (h *Host) Frames() int { return h.frames }

// Resize updates the viewport and the camera aspect.
func (h *Host) Resize(w, hgt int, ratio float64) {
	h.viewport = core.Viewport{W: w, H: hgt, PixelRatio: ratio}
	if h.camera != nil {
		h.camera.Aspect = h.viewport.Aspect()
	}
}

// Switch tears down the active mode and constructs name in its place. On
// failure no mode is active.
func (h *Host) Switch(name string) error {
	factory, ok := core.Modes()[name]
	if !ok {
		return fmt.Errorf("mode %q: %w", name, core.ErrUnknownMode)
	}
	if h.mode != nil {
		h.mode.Teardown()
		h.mode = nil
	}
	// events queued for the old mode are discarded.
	h.input.Drain()

	seed := h.opts.Seed
	// a seed given on the command line beats the file's.
	if h.opts.Config.HasSeed && !h.opts.SeedExplicit {
		seed = h.opts.Config.Seed
	}
	res := core.Resources{
		Logger:  h.log,
		Input:   h.input,
		Metrics: h.opts.Metrics,
		Seed:    seed,
		Options: h.opts.Config.For(name, h.opts.Overrides[name]),
		Targets: h.opts.Targets,
	}
	mode, err := factory(res)
	if err != nil {
		return fmt.Errorf("construct %s: %w", name, err)
	}
	h.mode = mode
	h.camera = CameraFor(name, h.viewport.Aspect())
	h.clock.Reset()
	h.lastMS = 0
	h.frames = 0
	h.opts.Metrics.ModeSwitched(name)
	h.log.Info("mode active", "mode", name)
	return nil
}

// Next switches to the registered mode after the active one, wrapping.
func (h *Host) Next() error {
	names := core.ModeNames()
	if len(names) == 0 {
		return core.ErrUnknownMode
	}
	next := names[0]
	if h.mode != nil {
		for i, n := range names {
			if n == h.mode.Name() {
				next = names[(i+1)%len(names)]
				break
			}
		}
	}
	return h.Switch(next)
}

// Tick samples the frame clock and advances one frame.
func (h *Host) Tick() core.Frame {
	elapsed, _ := h.clock.Tick()
	return h.Frame(elapsed)
}

// Frame drains queued input into the active mode and advances it to
// elapsedMS. Elapsed time never runs backwards.
func (h *Host) Frame(elapsedMS float64) core.Frame {
	if elapsedMS < h.lastMS {
		elapsedMS = h.lastMS
	}
	frame := core.Frame{
		ElapsedMS: elapsedMS,
		DeltaMS:   elapsedMS - h.lastMS,
		Viewport:      h.viewport,
		Camera:    h.camera,
	}
	h.lastMS = elapsedMS
	h.input.Drain()
	if h.mode == nil {
		return frame
	}
	h.mode.Advance(frame)
	h.frames++
	return frame
}

// Close tears down the active mode.
func (h *Host) Close() {
	if h.mode != nil {
		h.mode.Teardown()
		h.mode = nil
	}
}

// CameraFor returns the default viewpoint for a mode.
func CameraFor(name string, aspect float32) *core.Camera {
	switch name {
	case "terrain":
		return core.NewCamera(mgl32.Vec3{0, 4, 8}, mgl32.Vec3{0, -0.5, 0}, aspect)
	default:
		return core.NewCamera(mgl32.Vec3{0, 0, 9}, mgl32.Vec3{}, aspect)
	}
}

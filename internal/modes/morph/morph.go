package morph

import (
	"fmt"
	"log/slog"
	"time"

	"terramorph/internal/core"
	"terramorph/internal/metrics"
	"terramorph/internal/noise"
	"terramorph/pkg/rng"
)

// Name is the registry key of the morph mode.
const Name = "morph"

// Engine is the morph mode: a particle cloud interpolating between shape
// targets, pushed around by the pointer and relaxing back by decay.
type Engine struct {
	cfg     Config
	log     *slog.Logger
	metrics *metrics.Recorder
	rng     *rng.RNG

	particles *ParticleSet
	driver    *Driver
	pointer   Pointer
	basis     noise.Basis
	colors    []float32

	camera *core.Camera
	lastMS float64

	unsubscribe func()
	frames      int
	torn        bool
}

// New builds a morph engine. Targets come from res.Targets, or the built-in
// shapes when none are supplied. Malformed targets abort construction.
func New(res core.Resources) (*Engine, error) {
	cfg := FromMap(res.Options)
	if _, ok := res.Options["seed"]; !ok && res.Seed != 0 {
		cfg.Seed = res.Seed
	}
	e := &Engine{log: res.Log().With("mode", Name), metrics: res.Metrics}
	s := &core.Sanitizer{Log: e.log, Metrics: e.metrics}
	cfg.Sanitize(s)
	e.rng = rng.New(cfg.Seed)

	raw := res.Targets
	if len(raw) == 0 {
		raw = DefaultTargets(e.rng)
	}
	targets, count, err := Normalize(raw, e.rng)
	if err != nil {
		return nil, fmt.Errorf("morph targets: %w", err)
	}
	if cfg.InitialTarget >= len(targets) {
		s.Replace("initial_target", cfg.InitialTarget, 0)
		cfg.InitialTarget = 0
	}

	e.particles = NewParticleSet(targets, count, float32(cfg.SizeMin), float32(cfg.SizeMax), e.rng)
	e.driver = NewDriver(cfg.InitialTarget, EasingByName(cfg.Easing))
	e.particles.Compose(cfg.InitialTarget, cfg.InitialTarget, 0)
	e.basis = noise.NewSimplex(cfg.Seed)
	e.colors = make([]float32, 3*count)
	e.cfg = cfg
	e.paint()

	if res.Input != nil {
		e.unsubscribe = res.Input.Subscribe(e.handle)
	}
	e.log.Info("morph constructed", "targets", len(targets), "particles", count, "seed", cfg.Seed)
	return e, nil
}

// Name returns the mode identifier.
func (e *Engine) Name() string { return Name }

// Config returns the active, sanitized configuration.
func (e *Engine) Config() Config { return e.cfg }

// Configure replaces the tunables. Seed and initial target only apply at
// construction. It reports false after teardown.
func (e *Engine) Configure(cfg Config) bool {
	if e.torn {
		return false
	}
	cfg.Sanitize(&core.Sanitizer{Log: e.log, Metrics: e.metrics})
	cfg.Seed = e.cfg.Seed
	cfg.InitialTarget = e.cfg.InitialTarget
	if cfg.SizeMin != e.cfg.SizeMin || cfg.SizeMax != e.cfg.SizeMax {
		sizes := e.particles.Sizes()
		for i := range sizes {
			sizes[i] = e.rng.Float32Range(float32(cfg.SizeMin), float32(cfg.SizeMax))
		}
	}
	e.driver.Easing = EasingByName(cfg.Easing)
	e.cfg = cfg
	return true
}

func (e *Engine) influence() Influence {
	return Influence{
		Radius:          float32(e.cfg.InfluenceRadius),
		RayThreshold:    float32(e.cfg.RayThreshold),
		VelocityGain:    float32(e.cfg.VelocityGain),
		MaxDisplacement: float32(e.cfg.MaxDisplacement),
	}
}

func (e *Engine) handle(ev core.Event) {
	if e.torn {
		return
	}
	switch ev.Kind {
	case core.EventPointerMove:
		e.PointerMoved(ev.X, ev.Y)
	case core.EventSelectTarget:
		e.RequestMorph(ev.Index)
	}
}

// PointerMoved records a pointer position in NDC and, when a camera is known,
// casts a ray into the cloud and displaces particles around the hit. It
// returns the number of particles affected.
func (e *Engine) PointerMoved(x, y float32) int {
	if e.torn {
		return 0
	}
	e.pointer.Move(x, y)
	if e.camera == nil {
		return 0
	}
	inf := e.influence()
	ray := e.camera.RayFromNDC(x, y)
	hit, ok := NearestHit(ray, e.particles.Positions(), inf.RayThreshold)
	e.metrics.Influence(ok)
	if !ok {
		e.log.Debug("pointer ray missed", "x", x, "y", y)
		return 0
	}
	dir := Direction(e.camera, e.pointer.VX, e.pointer.VY)
	mag := inf.Magnitude(e.pointer.Speed())
	return inf.Apply(ray, hit, e.particles.Positions(), e.particles.Displacement(), dir, mag)
}

// RequestMorph starts a transition toward target index. Out-of-range
// indices are ignored with a warning. A started transition clears the
// displacement field.
func (e *Engine) RequestMorph(index int) bool {
	if e.torn {
		return false
	}
	if index < 0 || index >= len(e.particles.Targets()) {
		e.log.Warn("morph target out of range", "index", index, "targets", len(e.particles.Targets()))
		return false
	}
	if !e.driver.Request(index, e.lastMS) {
		return false
	}
	e.particles.ClearDisplacement()
	e.metrics.MorphRequested()
	e.log.Debug("morph requested", "from", e.driver.Source(), "to", index)
	return true
}

// Advance moves the interpolation forward, relaxes the displacement field
// and recomputes positions and colors.
func (e *Engine) Advance(frame core.Frame) {
	if e.torn {
		return
	}
	start := time.Now()
	if frame.Camera != nil {
		e.camera = frame.Camera
	}
	e.lastMS = frame.ElapsedMS

	if e.driver.Update(frame.ElapsedMS) {
		e.log.Debug("morph complete", "target", e.driver.Target())
	}
	Decay(e.particles.Displacement(), float32(e.cfg.Decay))
	e.particles.Compose(e.driver.Source(), e.driver.Target(), float32(e.driver.Progress()))
	e.paint()

	e.frames++
	e.metrics.Frame(Name, time.Since(start).Seconds())
}

func (e *Engine) paint() {
	freq := e.cfg.NoiseFrequency
	for i, p := range e.particles.Positions() {
		n := e.basis.Eval3(float64(p[0])*freq, float64(p[1])*freq, float64(p[2])*freq)
		col := e.cfg.ColorA.Mix(e.cfg.ColorB, float32(core.Smoothstep(-0.3, 0.3, n)))
		e.colors[3*i] = col.R
		e.colors[3*i+1] = col.G
		e.colors[3*i+2] = col.B
	}
}

// Particles exposes the particle buffers.
func (e *Engine) Particles() *ParticleSet { return e.particles }

// Driver exposes the interpolation driver.
func (e *Engine) Driver() *Driver { return e.driver }

// Pointer returns the last pointer sample.
func (e *Engine) Pointer() Pointer { return e.pointer }

// Colors exposes packed per-particle rgb colors.
func (e *Engine) Colors() []float32 { return e.colors }

// Frames reports how many frames have been advanced.
func (e *Engine) Frames() int { return e.frames }

// Teardown cancels any transition, detaches input and releases buffers. It
// is idempotent and safe mid-morph.
func (e *Engine) Teardown() {
	if e.torn {
		return
	}
	e.torn = true
	e.driver.Cancel()
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
	e.particles.Release()
	e.colors = nil
	e.camera = nil
	e.log.Info("morph torn down", "frames", e.frames)
}

func init() {
	core.Register(Name, func(res core.Resources) (core.Mode, error) {
		return New(res)
	})
}

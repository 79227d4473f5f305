package terrain

import (
	"log/slog"
	"math"
	"time"

	"terramorph/internal/core"
	"terramorph/internal/metrics"
	"terramorph/internal/noise"
)

// Name is the registry key of the terrain mode.
const Name = "terrain"

// Engine is the terrain mode: a scrolling, domain-warped heightfield with
// band coloring, fog and a depth mirror.
type Engine struct {
	cfg     Config
	log     *slog.Logger
	metrics *metrics.Recorder

	basis    noise.Basis
	mesh     *core.PlaneMesh
	movement Movement
	surface  *Surface
	mirror   *DepthMirror
	colors   []float32

	unsubscribe func()
	frames      int
	torn        bool
}

// New builds a terrain engine from resources. Options are parsed with
// FromMap and clamped to their bounds.
func New(res core.Resources) (*Engine, error) {
	cfg := FromMap(res.Options)
	if _, ok := res.Options["seed"]; !ok && res.Seed != 0 {
		cfg.Seed = res.Seed
	}
	e := &Engine{log: res.Log().With("mode", Name), metrics: res.Metrics}
	e.apply(cfg)
	if res.Input != nil {
		e.unsubscribe = res.Input.Subscribe(e.handle)
	}
	e.log.Info("terrain constructed",
		"segments", e.cfg.Segments, "vertices", e.mesh.VertexCount(), "basis", e.cfg.Basis, "seed", e.cfg.Seed)
	return e, nil
}

// Name returns the mode identifier.
func (e *Engine) Name() string { return Name }

// Configure replaces the configuration. Out-of-range values are clamped and
// logged; the new values take effect on the next Advance. It reports false
// after teardown.
func (e *Engine) Configure(cfg Config) bool {
	if e.torn {
		return false
	}
	e.apply(cfg)
	return true
}

// Config returns the active, sanitized configuration.
func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) apply(cfg Config) {
	s := &core.Sanitizer{Log: e.log, Metrics: e.metrics}
	cfg.Sanitize(s)

	if e.basis == nil || cfg.Basis != e.cfg.Basis || cfg.Seed != e.cfg.Seed {
		basis, err := noise.NewBasis(cfg.Basis, cfg.Seed)
		if err != nil {
			e.log.Warn("falling back to simplex noise", "err", err)
			e.metrics.Clamped("basis")
			cfg.Basis = noise.BasisSimplex
			basis = noise.NewSimplex(cfg.Seed)
		}
		e.basis = basis
	}
	if e.mesh == nil || cfg.Segments != e.cfg.Segments || float32(cfg.Size) != e.mesh.Size {
		e.mesh = core.NewPlaneMesh(float32(cfg.Size), cfg.Segments)
		e.surface = NewSurface(e.mesh)
		e.mirror = NewDepthMirror(e.mesh, cfg.LightDir)
		e.colors = make([]float32, 3*e.mesh.VertexCount())
	}
	e.mirror.SetLight(cfg.LightDir)
	e.movement.Speed = cfg.Speed
	e.cfg = cfg
}

// Field returns the height function for the current configuration.
func (e *Engine) Field() noise.Field {
	return noise.NewField(e.basis, e.cfg.Noise)
}

func (e *Engine) compositor() Compositor {
	return Compositor{
		Palette: e.cfg.Palette,
		Fog:     e.cfg.Fog,
		Blend:   e.cfg.BandBlend,
		Jitter:  e.cfg.SnowJitter,
		Basis:   e.basis,
	}
}

func (e *Engine) handle(ev core.Event) {
	switch ev.Kind {
	case core.EventKeyDown:
		e.movement.Set(ev.Key, true)
	case core.EventKeyUp:
		e.movement.Set(ev.Key, false)
	}
}

// Advance scrolls the domain by the held intents and re-evaluates the
// surface, its colors and the depth mirror.
func (e *Engine) Advance(frame core.Frame) {
	if e.torn {
		return
	}
	start := time.Now()

	e.movement.Step()
	t := frame.Seconds()
	field := e.Field()
	offX, offZ := e.movement.OffsetX, e.movement.OffsetZ

	e.surface.Update(field, offX, offZ, t)
	e.mirror.Update(field, offX, offZ, t)
	e.shade(frame.Camera, offX, offZ)

	e.frames++
	e.metrics.Frame(Name, time.Since(start).Seconds())
}

func (e *Engine) shade(cam *core.Camera, offX, offZ float64) {
	comp := e.compositor()
	heights := e.surface.Heights()
	slopes := e.surface.Slopes()
	pos := e.surface.Positions()
	for i := range heights {
		x, z := e.mesh.XZ(i)
		col := comp.Shade(heights[i], slopes[i], float64(x)+offX, float64(z)+offZ)
		if cam != nil {
			dx := float64(pos[3*i] - cam.Position[0])
			dy := float64(pos[3*i+1] - cam.Position[1])
			dz := float64(pos[3*i+2] - cam.Position[2])
			col = comp.ApplyFog(col, math.Sqrt(dx*dx+dy*dy+dz*dz))
		}
		e.colors[3*i] = col.R
		e.colors[3*i+1] = col.G
		e.colors[3*i+2] = col.B
	}
}

// Movement exposes the scroll controller.
func (e *Engine) Movement() *Movement { return &e.movement }

// Offset returns the shared domain offset.
func (e *Engine) Offset() (float64, float64) { return e.movement.OffsetX, e.movement.OffsetZ }

// Mesh exposes the fixed plane mesh.
func (e *Engine) Mesh() *core.PlaneMesh { return e.mesh }

// Surface exposes the visible heightfield.
func (e *Engine) Surface() *Surface { return e.surface }

// DepthMirror exposes the shadow-depth evaluator.
func (e *Engine) DepthMirror() *DepthMirror { return e.mirror }

// DepthGrid returns the depth mirror's values, their range and the grid side
// length. It returns nil after teardown.
func (e *Engine) DepthGrid() ([]float32, float32, float32, int) {
	if e.mirror == nil {
		return nil, 0, 0, 0
	}
	lo, hi := e.mirror.Range()
	return e.mirror.Depths(), lo, hi, e.mesh.Segments + 1
}

// HeightGrid returns the visible heights and the grid side length.
func (e *Engine) HeightGrid() ([]float64, int) {
	if e.surface == nil {
		return nil, 0
	}
	return e.surface.Heights(), e.mesh.Segments + 1
}

// Colors exposes packed per-vertex rgb colors after band blending and fog.
func (e *Engine) Colors() []float32 { return e.colors }

// Frames reports how many frames have been advanced.
func (e *Engine) Frames() int { return e.frames }

// Teardown detaches input listeners and releases buffers. It is idempotent.
func (e *Engine) Teardown() {
	if e.torn {
		return
	}
	e.torn = true
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
	e.surface = nil
	e.mirror = nil
	e.colors = nil
	e.mesh = nil
	e.log.Info("terrain torn down", "frames", e.frames)
}

func init() {
	core.Register(Name, func(res core.Resources) (core.Mode, error) {
		return New(res)
	})
}

package app

import (
	"bytes"
	"flag"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terramorph/internal/config"
	"terramorph/internal/core"
	"terramorph/internal/metrics"
	"terramorph/internal/modes/morph"
	"terramorph/internal/modes/terrain"
)

func newTestHost(t *testing.T) *Host {
	t.Helper()
	h := NewHost(HostOptions{
		Metrics:   metrics.New(),
		Seed:      5,
		Overrides: Overrides{"terrain": {"segments": "8", "speed": "0.05"}},
		Targets:   []core.PointBuffer{morph.Sphere(32, 1), morph.Helix(16, 1, 1, 1)},
		Viewport:  core.Viewport{W: 800, H: 400, PixelRatio: 1},
	})
	t.Cleanup(h.Close)
	return h
}

func TestSwitchUnknownMode(t *testing.T) {
	h := newTestHost(t)
	assert.ErrorIs(t, h.Switch("plasma"), core.ErrUnknownMode)
	assert.Nil(t, h.Mode())
	assert.NotPanics(t, func() { h.Frame(16) })
}

func TestFrameDrainsInputBeforeAdvance(t *testing.T) {
	h := newTestHost(t)
	require.NoError(t, h.Switch(terrain.Name))
	eng := h.Mode().(*terrain.Engine)
	assert.Equal(t, 81, eng.Mesh().VertexCount())
	assert.Equal(t, int64(5), eng.Config().Seed)

	h.Input().Push(core.Event{Kind: core.EventKeyDown, Key: core.KeyForward})
	for i := 1; i <= 10; i++ {
		f := h.Frame(float64(i) * 16)
		assert.Equal(t, 16.0, f.DeltaMS)
		assert.Same(t, h.Camera(), f.Camera)
	}
	_, z := eng.Offset()
	assert.InDelta(t, 0.5, z, 1e-9)
	assert.Equal(t, 10, h.Frames())
	assert.Equal(t, float32(2), h.Camera().Aspect)
}

func TestFrameTimeIsMonotonic(t *testing.T) {
	h := newTestHost(t)
	h.Frame(100)
	f := h.Frame(50)
	assert.Equal(t, 100.0, f.ElapsedMS)
	assert.Equal(t, 0.0, f.DeltaMS)
}

func TestSwitchTearsDownPrevious(t *testing.T) {
	h := newTestHost(t)
	require.NoError(t, h.Switch(terrain.Name))
	old := h.Mode().(*terrain.Engine)
	h.Frame(16)

	require.NoError(t, h.Next())
	assert.Equal(t, morph.Name, h.Mode().Name())
	assert.Nil(t, old.Surface())
	assert.Zero(t, h.Frames())

	h.Input().Push(core.Event{Kind: core.EventSelectTarget, Index: 1})
	h.Frame(0)
	m := h.Mode().(*morph.Engine)
	assert.Equal(t, morph.Transitioning, m.Driver().State())
	h.Frame(2000)
	assert.Equal(t, morph.Idle, m.Driver().State())
	assert.Equal(t, 1, m.Driver().Target())

	require.NoError(t, h.Next())
	assert.Equal(t, terrain.Name, h.Mode().Name())
	assert.Zero(t, m.Particles().Len())
}

func TestSwitchDropsStaleInput(t *testing.T) {
	h := newTestHost(t)
	h.Input().Push(core.Event{Kind: core.EventKeyDown, Key: core.KeyRight})
	require.NoError(t, h.Switch(terrain.Name))
	h.Frame(16)
	x, _ := h.Mode().(*terrain.Engine).Offset()
	assert.Equal(t, 0.0, x)
}

func TestConfigFileSeedAndOptions(t *testing.T) {
	doc, err := config.Parse([]byte("seed: 77\nterrain:\n  segments: 4\n  speed: 0.3\n"))
	require.NoError(t, err)
	h := NewHost(HostOptions{Config: doc, Overrides: Overrides{"terrain": {"speed": "0.1"}}})
	defer h.Close()
	require.NoError(t, h.Switch(terrain.Name))
	cfg := h.Mode().(*terrain.Engine).Config()
	assert.Equal(t, int64(77), cfg.Seed)
	assert.Equal(t, 4, cfg.Segments)
	assert.Equal(t, 0.1, cfg.Speed)
}

func TestExplicitSeedFlagBeatsConfigFile(t *testing.T) {
	doc, err := config.Parse([]byte("seed: 77\nterrain:\n  segments: 4\n"))
	require.NoError(t, err)

	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-seed", "7"}))
	require.True(t, Explicit(fs, "seed"))
	assert.False(t, Explicit(fs, "mode"))

	h := NewHost(HostOptions{Seed: cfg.Seed, SeedExplicit: Explicit(fs, "seed"), Config: doc})
	defer h.Close()
	require.NoError(t, h.Switch(terrain.Name))
	assert.Equal(t, int64(7), h.Mode().(*terrain.Engine).Config().Seed)
}

func TestTickUsesClock(t *testing.T) {
	now := time.Unix(100, 0)
	h := NewHost(HostOptions{Now: func() time.Time { return now }})
	assert.Equal(t, 0.0, h.Tick().ElapsedMS)
	now = now.Add(40 * time.Millisecond)
	assert.Equal(t, 40.0, h.Tick().ElapsedMS)
}

func TestResizeUpdatesAspect(t *testing.T) {
	h := newTestHost(t)
	require.NoError(t, h.Switch(morph.Name))
	h.Resize(300, 300, 2)
	assert.Equal(t, float32(1), h.Camera().Aspect)
	assert.Equal(t, 2.0, h.Viewport().PixelRatio)
}

func TestCameraFor(t *testing.T) {
	cam := CameraFor(morph.Name, 1)
	assert.Equal(t, mgl32.Vec3{0, 0, 9}, cam.Position)
	assert.Greater(t, CameraFor(terrain.Name, 1).Position[1], float32(0))
}

func TestFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{
		"-mode", "morph", "-seed", "9", "-set", "morph.easing=smooth", "-set", "terrain.speed=0.1", "-log-level", "debug",
	}))
	assert.Equal(t, "morph", cfg.Mode)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, "smooth", cfg.Sets["morph"]["easing"])
	assert.Equal(t, "0.1", cfg.Sets["terrain"]["speed"])
	assert.Equal(t, "morph.easing=smooth,terrain.speed=0.1", cfg.Sets.String())

	assert.Error(t, fs.Parse([]string{"-set", "speed=1"}))

	var buf bytes.Buffer
	log, err := cfg.Logger(&buf)
	require.NoError(t, err)
	log.Debug("hello")
	assert.Contains(t, buf.String(), "hello")

	cfg.LogLevel = "loud"
	_, err = cfg.Logger(&buf)
	assert.Error(t, err)
}

package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControlClamp(t *testing.T) {
	c := ParameterControl{Key: "k", Min: 0, Max: 2, HasMin: true, HasMax: true}
	v, changed := c.Clamp(1)
	assert.False(t, changed)
	assert.Equal(t, 1.0, v)

	v, changed = c.Clamp(-3)
	assert.True(t, changed)
	assert.Equal(t, 0.0, v)

	v, _ = c.Clamp(9)
	assert.Equal(t, 2.0, v)

	v, changed = c.Clamp(math.NaN())
	assert.True(t, changed)
	assert.Equal(t, 0.0, v)

	open := ParameterControl{Key: "free"}
	v, changed = open.Clamp(-1e9)
	assert.False(t, changed)
	assert.Equal(t, -1e9, v)
}

func TestSanitizerReports(t *testing.T) {
	s := &Sanitizer{Controls: ControlTable{
		{Key: "f", Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "i", Min: 1, Max: 8, HasMin: true, HasMax: true},
	}}
	f := 4.0
	i := 0
	hi := 0.5
	col := Color{R: -1}
	s.Float("f", &f)
	s.Float("unknown", &f)
	s.Int("i", &i)
	s.Order("hi", 0.75, &hi)
	s.Color("c", &col)
	s.Replace("e", "x", "y")

	assert.Equal(t, 5, s.Clamped)
	assert.Equal(t, 1.0, f)
	assert.Equal(t, 1, i)
	assert.Equal(t, 0.75, hi)
	assert.Equal(t, Color{}, col)
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{IntParam("n", "N", 3)}},
		{Name: "b", Params: []Parameter{FloatParam("x", "X", 0.25), ColorParam("c", "C", MustHex("#ff0000"))}},
	}}
	p, ok := snap.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, "0.25", p.Value)
	p, _ = snap.Lookup("c")
	assert.Equal(t, "#ff0000", p.Value)
	_, ok = snap.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistry(t *testing.T) {
	Register("", nil)
	Register("test-mode", func(Resources) (Mode, error) { return nil, nil })
	_, ok := Modes()["test-mode"]
	assert.True(t, ok)
	assert.Contains(t, ModeNames(), "test-mode")
	delete(modes, "test-mode")
}

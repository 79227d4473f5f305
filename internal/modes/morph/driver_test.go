package morph

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terramorph/internal/core"
	"terramorph/pkg/rng"
)

func TestNormalizePadsToLargestCount(t *testing.T) {
	small := core.PointsFromVecs("small", []mgl32.Vec3{{1, 0, 0}, {2, 0, 0}, {3, 0, 0}})
	large := core.PointsFromVecs("large", []mgl32.Vec3{{0, 1, 0}, {0, 2, 0}, {0, 3, 0}, {0, 4, 0}, {0, 5, 0}})

	targets, count, err := Normalize([]core.PointBuffer{small, large}, rng.New(7))
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	require.Len(t, targets, 2)

	for _, tg := range targets {
		assert.Len(t, tg.Points, count)
	}
	assert.Equal(t, "small", targets[0].Name)
	for i := 0; i < small.Count(); i++ {
		assert.Equal(t, small.At(i), targets[0].Points[i])
	}
	for _, p := range targets[0].Points[small.Count():] {
		assert.Contains(t, []mgl32.Vec3{small.At(0), small.At(1), small.At(2)}, p)
	}
	for i := 0; i < large.Count(); i++ {
		assert.Equal(t, large.At(i), targets[1].Points[i])
	}
}

func TestNormalizeRejectsMalformedTargets(t *testing.T) {
	r := rng.New(1)

	_, _, err := Normalize(nil, r)
	assert.ErrorIs(t, err, core.ErrAssetShapeMismatch)

	_, _, err = Normalize([]core.PointBuffer{{Name: "empty"}}, r)
	assert.ErrorIs(t, err, core.ErrAssetShapeMismatch)

	_, _, err = Normalize([]core.PointBuffer{{Name: "ragged", Positions: []float32{1, 2, 3, 4}}}, r)
	assert.ErrorIs(t, err, core.ErrAssetShapeMismatch)

	many := make([]core.PointBuffer, MaxTargets+1)
	for i := range many {
		many[i] = core.PointBuffer{Name: "p", Positions: []float32{0, 0, 0}}
	}
	_, _, err = Normalize(many, r)
	assert.ErrorIs(t, err, core.ErrTooManyTargets)
}

func TestLerpEndpointsAreExact(t *testing.T) {
	a := mgl32.Vec3{1.1, 2.3, -0.7}
	b := mgl32.Vec3{5, -6.25, 7.3}
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	mid := Lerp(a, b, 0.5)
	assert.InDelta(t, 3.05, mid[0], 1e-6)
}

func TestDriverCompletesAfterDuration(t *testing.T) {
	d := NewDriver(0, Linear)
	assert.Equal(t, Idle, d.State())
	require.True(t, d.Request(1, 0))
	assert.Equal(t, Transitioning, d.State())

	assert.False(t, d.Update(1000))
	assert.InDelta(t, 0.5, d.Progress(), 1e-12)
	assert.Equal(t, 0, d.Source())
	assert.Equal(t, 1, d.Target())

	assert.True(t, d.Update(2000))
	assert.Equal(t, Idle, d.State())
	assert.Equal(t, 1, d.Source())
	assert.Equal(t, 1, d.Target())
	assert.Equal(t, 0.0, d.Progress())

	assert.False(t, d.Update(5000))
}

func TestDriverRequestIsIdempotentAtRest(t *testing.T) {
	d := NewDriver(2, nil)
	assert.False(t, d.Request(2, 0))
	assert.Equal(t, Idle, d.State())

	require.True(t, d.Request(3, 0))
	// progress is still 0, so repeating the request changes nothing.
	assert.False(t, d.Request(3, 10))
	assert.Equal(t, 2, d.Source())
}

func TestDriverRestartsFromPreviousTarget(t *testing.T) {
	d := NewDriver(0, Linear)
	d.Request(1, 0)
	d.Update(500)
	assert.InDelta(t, 0.25, d.Progress(), 1e-12)

	require.True(t, d.Request(2, 500))
	assert.Equal(t, 1, d.Source())
	assert.Equal(t, 2, d.Target())
	assert.Equal(t, 0.0, d.Progress())

	d.Update(1500)
	assert.InDelta(t, 0.5, d.Progress(), 1e-12)
	assert.True(t, d.Update(2500))
	assert.Equal(t, 2, d.Source())
}

func TestDriverCancel(t *testing.T) {
	d := NewDriver(0, Smooth)
	d.Request(4, 0)
	d.Update(700)
	d.Cancel()
	assert.Equal(t, Idle, d.State())
	assert.Equal(t, 4, d.Source())
	assert.Equal(t, 0.0, d.Progress())
}

func TestEasings(t *testing.T) {
	for name, f := range map[string]Easing{"linear": Linear, "smooth": Smooth} {
		assert.Equal(t, 0.0, f(0), name)
		assert.Equal(t, 1.0, f(1), name)
	}
	assert.Equal(t, 0.5, Smooth(0.5))
	assert.InDelta(t, 0.104, Smooth(0.2), 1e-12)
	assert.Equal(t, 0.3, EasingByName("bogus")(0.3))
	assert.Equal(t, Smooth(0.3), EasingByName("SMOOTH")(0.3))
}

func TestDecayIsGeometric(t *testing.T) {
	field := []mgl32.Vec3{{1, -2, 4}, {0, 0, 0}}
	const k = 0.95
	for i := 0; i < 30; i++ {
		Decay(field, k)
	}
	want := math.Pow(k, 30)
	assert.InDelta(t, want, float64(field[0][0]), 1e-5)
	assert.InDelta(t, -2*want, float64(field[0][1]), 1e-5)
	assert.InDelta(t, 4*want, float64(field[0][2]), 1e-5)
	assert.Equal(t, mgl32.Vec3{}, field[1])
	assert.False(t, Settled(field))

	for i := 0; i < 400; i++ {
		Decay(field, 0.9)
	}
	assert.True(t, Settled(field))
}

func TestFalloff(t *testing.T) {
	// 0.5 from the hit and 0.5 from the ray line: the ray term is 0.5/0.3,
	// so the point term is the minimum.
	combined, strength := Falloff(0.5, 0.5, 1)
	assert.InDelta(t, 0.5, combined, 1e-6)
	assert.InDelta(t, 0.25, strength, 1e-6)

	// on the ray line the ray term is zero and wins regardless of the
	// distance to the hit.
	combined, strength = Falloff(0.5, 0, 1)
	assert.Equal(t, float32(0), combined)
	assert.Equal(t, float32(1), strength)

	_, strength = Falloff(2, 2, 1)
	assert.Equal(t, float32(0), strength)
	_, strength = Falloff(0, 0, 0)
	assert.Equal(t, float32(0), strength)
}

func TestNearestHit(t *testing.T) {
	ray := core.Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}
	points := []mgl32.Vec3{
		{0, 0, 0},
		{0.05, 0, 3},
		{0, 0, 6},
		{1, 1, 4},
	}
	hit, ok := NearestHit(ray, points, 0.1)
	require.True(t, ok)
	assert.InDelta(t, 0, hit[0], 1e-6)
	assert.InDelta(t, 3, hit[2], 1e-6)

	_, ok = NearestHit(ray, []mgl32.Vec3{{1, 0, 0}, {0, 0, 9}}, 0.1)
	assert.False(t, ok)
}

func TestPointerVelocity(t *testing.T) {
	var p Pointer
	p.Move(0.1, 0.2)
	assert.Equal(t, float32(0), p.VX)
	assert.Equal(t, float32(0), p.VY)

	p.Move(0.4, 0.6)
	assert.InDelta(t, 0.3, p.VX, 1e-6)
	assert.InDelta(t, 0.4, p.VY, 1e-6)
	assert.InDelta(t, 0.5, p.Speed(), 1e-6)
}

func TestMagnitudeIsCapped(t *testing.T) {
	f := Influence{VelocityGain: 30, MaxDisplacement: 0.8}
	assert.InDelta(t, 0.3, f.Magnitude(0.01), 1e-6)
	assert.Equal(t, float32(0.8), f.Magnitude(1))
	assert.Equal(t, float32(0), f.Magnitude(0))
}

func TestApplyOnlyTouchesNearbyParticles(t *testing.T) {
	f := Influence{Radius: 1}
	ray := core.Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}
	points := []mgl32.Vec3{{0, 0, 0}, {0.5, 0, 0}, {4, 4, 0}}
	disp := make([]mgl32.Vec3, len(points))

	n := f.Apply(ray, mgl32.Vec3{}, points, disp, mgl32.Vec3{0, 1, 0}, 2)
	assert.Equal(t, 2, n)
	assert.InDelta(t, 2, disp[0][1], 1e-6)
	assert.InDelta(t, 0.5, disp[1][1], 1e-6)
	assert.Equal(t, mgl32.Vec3{}, disp[2])

	assert.Zero(t, f.Apply(ray, mgl32.Vec3{}, points, disp, mgl32.Vec3{}, 2))
}

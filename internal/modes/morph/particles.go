package morph

import (
	"github.com/go-gl/mathgl/mgl32"

	"terramorph/pkg/rng"
)

// ParticleSet holds the normalized targets and the per-particle state that
// changes every frame. Its length is fixed at construction.
type ParticleSet struct {
	targets      []Target
	sizes        []float32
	displacement []mgl32.Vec3
	positions    []mgl32.Vec3
}

// NewParticleSet allocates state for count particles over targets, drawing a
// random size in [sizeMin, sizeMax) for each.
func NewParticleSet(targets []Target, count int, sizeMin, sizeMax float32, r *rng.RNG) *ParticleSet {
	p := &ParticleSet{
		targets:      targets,
		sizes:        make([]float32, count),
		displacement: make([]mgl32.Vec3, count),
		positions:    make([]mgl32.Vec3, count),
	}
	for i := range p.sizes {
		p.sizes[i] = r.Float32Range(sizeMin, sizeMax)
	}
	if len(targets) > 0 {
		copy(p.positions, targets[0].Points)
	}
	return p
}

// Len returns the particle count.
func (p *ParticleSet) Len() int { return len(p.positions) }

// Targets exposes the normalized morph targets.
func (p *ParticleSet) Targets() []Target { return p.targets }

// Sizes exposes the per-particle size multipliers.
func (p *ParticleSet) Sizes() []float32 { return p.sizes }

// Displacement exposes the per-particle displacement field.
func (p *ParticleSet) Displacement() []mgl32.Vec3 { return p.displacement }

// Positions exposes the positions computed by the last Compose.
func (p *ParticleSet) Positions() []mgl32.Vec3 { return p.positions }

// Lerp blends a toward b: a*(1-t) + b*t. It returns a exactly at t=0 and b
// exactly at t=1.
func Lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	inv := 1 - t
	return mgl32.Vec3{
		a[0]*inv + b[0]*t,
		a[1]*inv + b[1]*t,
		a[2]*inv + b[2]*t,
	}
}

// Compose writes lerp(source[i], target[i], progress) + displacement[i] for
// every particle.
func (p *ParticleSet) Compose(source, target int, progress float32) {
	src := p.targets[source].Points
	dst := p.targets[target].Points
	for i := range p.positions {
		p.positions[i] = Lerp(src[i], dst[i], progress).Add(p.displacement[i])
	}
}

// ClearDisplacement zeroes the displacement field.
func (p *ParticleSet) ClearDisplacement() {
	for i := range p.displacement {
		p.displacement[i] = mgl32.Vec3{}
	}
}

// Release drops all buffers.
func (p *ParticleSet) Release() {
	p.targets = nil
	p.sizes = nil
	p.displacement = nil
	p.positions = nil
}

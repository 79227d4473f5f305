package morph

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"terramorph/internal/core"
)

// rayRadiusScale narrows the ray-distance term relative to the point term.
const rayRadiusScale = 0.3

// Pointer tracks the last two pointer positions in NDC and their difference.
type Pointer struct {
	X, Y         float32
	PrevX, PrevY float32
	VX, VY       float32
	seen         bool
}

// Move records a new pointer position. Velocity is recomputed from the
// previous position on every call; the first call yields zero velocity.
func (p *Pointer) Move(x, y float32) {
	if !p.seen {
		p.PrevX, p.PrevY = x, y
		p.seen = true
	} else {
		p.PrevX, p.PrevY = p.X, p.Y
	}
	p.X, p.Y = x, y
	p.VX, p.VY = p.X-p.PrevX, p.Y-p.PrevY
}

// Speed returns the length of the velocity vector.
func (p *Pointer) Speed() float32 {
	return float32(math.Hypot(float64(p.VX), float64(p.VY)))
}

// Influence parameterizes the pointer's effect on nearby particles.
type Influence struct {
	Radius          float32
	RayThreshold    float32
	VelocityGain    float32
	MaxDisplacement float32
}

// NearestHit returns the intersection of ray with the point cloud: among
// points within threshold of the ray line and in front of the origin, the
// one closest along the ray. The returned point lies on the ray.
func NearestHit(ray core.Ray, points []mgl32.Vec3, threshold float32) (mgl32.Vec3, bool) {
	best := float32(math.Inf(1))
	found := false
	for _, p := range points {
		t := ray.ClosestT(p)
		if t < 0 || t >= best {
			continue
		}
		if p.Sub(ray.At(t)).Len() > threshold {
			continue
		}
		best = t
		found = true
	}
	if !found {
		return mgl32.Vec3{}, false
	}
	return ray.At(best), true
}

// Falloff combines the distance to the hit point and the distance to the
// ray line into one normalized value and returns it with the quadratic
// strength factor, which is zero when combined >= 1.
func Falloff(distPoint, distRay, radius float32) (combined, strength float32) {
	if radius <= 0 {
		return 1, 0
	}
	combined = distPoint / radius
	if r := distRay / (radius * rayRadiusScale); r < combined {
		combined = r
	}
	if combined >= 1 {
		return combined, 0
	}
	s := 1 - combined
	return combined, s * s
}

// Magnitude converts pointer speed into a displacement magnitude, capped at
// MaxDisplacement.
func (f Influence) Magnitude(speed float32) float32 {
	m := speed * f.VelocityGain
	if m > f.MaxDisplacement {
		return f.MaxDisplacement
	}
	return m
}

// Direction rotates a screen-space velocity into world space using the
// camera's right and up axes. Zero velocity yields the zero vector.
func Direction(cam *core.Camera, vx, vy float32) mgl32.Vec3 {
	if vx == 0 && vy == 0 {
		return mgl32.Vec3{}
	}
	return cam.Right().Mul(vx).Add(cam.UpAxis().Mul(vy)).Normalize()
}

// Apply adds displacement to every particle near hit or near the ray and
// returns how many particles were affected.
func (f Influence) Apply(ray core.Ray, hit mgl32.Vec3, points, displacement []mgl32.Vec3, dir mgl32.Vec3, magnitude float32) int {
	if magnitude == 0 || dir.Len() == 0 {
		return 0
	}
	affected := 0
	for i, p := range points {
		_, strength := Falloff(p.Sub(hit).Len(), ray.DistanceToLine(p), f.Radius)
		if strength == 0 {
			continue
		}
		displacement[i] = displacement[i].Add(dir.Mul(strength * magnitude))
		affected++
	}
	return affected
}

package morph

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"terramorph/internal/core"
	"terramorph/pkg/rng"
)

// Sphere places n points evenly on a sphere using the golden-angle spiral.
func Sphere(n int, radius float32) core.PointBuffer {
	pts := make([]mgl32.Vec3, n)
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := range pts {
		y := 1 - 2*(float64(i)+0.5)/float64(n)
		r := math.Sqrt(1 - y*y)
		theta := golden * float64(i)
		pts[i] = mgl32.Vec3{
			float32(math.Cos(theta)*r) * radius,
			float32(y) * radius,
			float32(math.Sin(theta)*r) * radius,
		}
	}
	return core.PointsFromVecs("sphere", pts)
}

// Torus scatters n points on a torus around the y axis.
func Torus(n int, major, minor float32, r *rng.RNG) core.PointBuffer {
	pts := make([]mgl32.Vec3, n)
	for i := range pts {
		u := r.Float64() * 2 * math.Pi
		v := r.Float64() * 2 * math.Pi
		ring := float64(major) + float64(minor)*math.Cos(v)
		pts[i] = mgl32.Vec3{
			float32(ring * math.Cos(u)),
			float32(float64(minor) * math.Sin(v)),
			float32(ring * math.Sin(u)),
		}
	}
	return core.PointsFromVecs("torus", pts)
}

// Cube scatters n points over the faces of an axis-aligned cube.
func Cube(n int, size float32, r *rng.RNG) core.PointBuffer {
	pts := make([]mgl32.Vec3, n)
	half := size / 2
	for i := range pts {
		a := r.Float32Range(-half, half)
		b := r.Float32Range(-half, half)
		side := half
		if r.IntN(2) == 0 {
			side = -half
		}
		switch r.IntN(3) {
		case 0:
			pts[i] = mgl32.Vec3{side, a, b}
		case 1:
			pts[i] = mgl32.Vec3{a, side, b}
		default:
			pts[i] = mgl32.Vec3{a, b, side}
		}
	}
	return core.PointsFromVecs("cube", pts)
}

// Helix spaces n points along a vertical helix.
func Helix(n int, radius, height float32, turns float64) core.PointBuffer {
	pts := make([]mgl32.Vec3, n)
	for i := range pts {
		t := float64(i) / float64(max(n-1, 1))
		a := t * turns * 2 * math.Pi
		pts[i] = mgl32.Vec3{
			radius * float32(math.Cos(a)),
			height * float32(t-0.5),
			radius * float32(math.Sin(a)),
		}
	}
	return core.PointsFromVecs("helix", pts)
}

// Plane lays n points on a jittered square grid in the xz plane.
func Plane(n int, size float32, r *rng.RNG) core.PointBuffer {
	pts := make([]mgl32.Vec3, n)
	side := int(math.Ceil(math.Sqrt(float64(n))))
	step := size / float32(max(side-1, 1))
	half := size / 2
	for i := range pts {
		col, row := i%side, i/side
		pts[i] = mgl32.Vec3{
			-half + float32(col)*step + r.Float32Range(-0.01, 0.01),
			0,
			-half + float32(row)*step + r.Float32Range(-0.01, 0.01),
		}
	}
	return core.PointsFromVecs("plane", pts)
}

// DefaultTargets builds the stock shape set. The counts differ on purpose
// so normalization pads every shape but the sphere.
func DefaultTargets(r *rng.RNG) []core.PointBuffer {
	return []core.PointBuffer{
		Sphere(6000, 2),
		Torus(4500, 1.8, 0.6, r),
		Cube(3600, 3, r),
		Helix(2400, 1.5, 4, 6),
		Plane(1600, 4, r),
	}
}

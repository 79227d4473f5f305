package terrain

import (
	"math"

	"terramorph/internal/core"
	"terramorph/internal/noise"
)

// DepthMirror re-evaluates the same height function as the visible surface
// on its own buffers and projects the result onto the light direction, giving
// shadow-map consumers geometry that matches the rendered surface exactly.
type DepthMirror struct {
	mesh  *core.PlaneMesh
	light [3]float64

	heights []float64
	depths  []float32
	min     float32
	max     float32
}

// NewDepthMirror allocates a mirror for mesh lit along lightDir.
func NewDepthMirror(mesh *core.PlaneMesh, lightDir [3]float64) *DepthMirror {
	n := mesh.VertexCount()
	return &DepthMirror{
		mesh:    mesh,
		light:   normalize3(lightDir),
		heights: make([]float64, n),
		depths:  make([]float32, n),
	}
}

// SetLight changes the light direction used for depth.
func (d *DepthMirror) SetLight(dir [3]float64) { d.light = normalize3(dir) }

// Update evaluates heights and light-space depth for every vertex.
func (d *DepthMirror) Update(field noise.Field, offsetX, offsetZ, t float64) {
	n := d.mesh.VertexCount()
	d.min = float32(math.Inf(1))
	d.max = float32(math.Inf(-1))
	for i := 0; i < n; i++ {
		x, z := d.mesh.XZ(i)
		h := field.Height(float64(x)+offsetX, float64(z)+offsetZ, t)
		d.heights[i] = h
		depth := float32(float64(x)*d.light[0] + h*d.light[1] + float64(z)*d.light[2])
		d.depths[i] = depth
		if depth < d.min {
			d.min = depth
		}
		if depth > d.max {
			d.max = depth
		}
	}
}

// Heights exposes the mirror's own height buffer.
func (d *DepthMirror) Heights() []float64 { return d.heights }

// Depths exposes the per-vertex light-space depths.
func (d *DepthMirror) Depths() []float32 { return d.depths }

// Range returns the min and max depth of the last update.
func (d *DepthMirror) Range() (float32, float32) { return d.min, d.max }

func normalize3(v [3]float64) [3]float64 {
	l := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l == 0 {
		return [3]float64{0, -1, 0}
	}
	return [3]float64{v[0] / l, v[1] / l, v[2] / l}
}

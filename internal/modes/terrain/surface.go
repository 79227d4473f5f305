package terrain

import (
	"terramorph/internal/core"
	"terramorph/internal/noise"
)

// Surface is the visible heightfield: one vertex per mesh grid point, with
// heights sampled at the vertex xz plus the shared scroll offset.
type Surface struct {
	mesh *core.PlaneMesh

	heights   []float64
	positions []float32
	normals   []float32
	slopes    []float64
}

// NewSurface allocates buffers for mesh.
func NewSurface(mesh *core.PlaneMesh) *Surface {
	n := mesh.VertexCount()
	s := &Surface{
		mesh:      mesh,
		heights:   make([]float64, n),
		positions: make([]float32, 3*n),
		normals:   make([]float32, 3*n),
		slopes:    make([]float64, n),
	}
	for i := 0; i < n; i++ {
		x, z := mesh.XZ(i)
		s.positions[3*i] = x
		s.positions[3*i+2] = z
		s.normals[3*i+1] = 1
	}
	return s
}

// NormalShift is the central-difference half width used for vertex normals.
const NormalShift = 0.01

// Update re-evaluates every vertex height and normal for the given offset
// and time. Normals come from the field itself, not from neighbouring
// vertices, so border vertices are treated like interior ones.
func (s *Surface) Update(field noise.Field, offsetX, offsetZ, t float64) {
	n := s.mesh.VertexCount()
	for i := 0; i < n; i++ {
		x, z := s.mesh.XZ(i)
		wx, wz := float64(x)+offsetX, float64(z)+offsetZ
		h := field.Height(wx, wz, t)
		s.heights[i] = h
		s.positions[3*i+1] = float32(h)

		nrm := field.Normal(wx, wz, t, NormalShift)
		s.normals[3*i] = float32(nrm[0])
		s.normals[3*i+1] = float32(nrm[1])
		s.normals[3*i+2] = float32(nrm[2])
		s.slopes[i] = noise.Slope(nrm)
	}
}

// Heights exposes the per-vertex heights of the last update.
func (s *Surface) Heights() []float64 { return s.heights }

// Positions exposes packed xyz vertex positions.
func (s *Surface) Positions() []float32 { return s.positions }

// Normals exposes packed xyz vertex normals.
func (s *Surface) Normals() []float32 { return s.normals }

// Slopes exposes per-vertex slope (1 - normal.y).
func (s *Surface) Slopes() []float64 { return s.slopes }

package core

// PlaneMesh stores a regular grid of vertices on the y=0 plane, centred on
// the origin, in row-major order along +z.
type PlaneMesh struct {
	Segments int
	Size     float32

	base    []float32
	indices []uint16
}

// MaxPlaneSegments keeps the vertex count addressable with 16-bit indices.
const MaxPlaneSegments = 250

// NewPlaneMesh allocates a size×size plane split into segments×segments quads.
func NewPlaneMesh(size float32, segments int) *PlaneMesh {
	if segments <= 0 {
		segments = 1
	}
	if segments > MaxPlaneSegments {
		segments = MaxPlaneSegments
	}
	if size <= 0 {
		size = 1
	}
	m := &PlaneMesh{Segments: segments, Size: size}
	stride := segments + 1
	m.base = make([]float32, 2*stride*stride)
	step := size / float32(segments)
	half := size / 2
	for row := 0; row < stride; row++ {
		for col := 0; col < stride; col++ {
			i := m.Index(col, row)
			m.base[2*i] = -half + float32(col)*step
			m.base[2*i+1] = -half + float32(row)*step
		}
	}
	m.indices = make([]uint16, 0, segments*segments*6)
	for row := 0; row < segments; row++ {
		for col := 0; col < segments; col++ {
			a := uint16(m.Index(col, row))
			b := uint16(m.Index(col+1, row))
			c := uint16(m.Index(col, row+1))
			d := uint16(m.Index(col+1, row+1))
			m.indices = append(m.indices, a, c, b, b, c, d)
		}
	}
	return m
}

// VertexCount returns the number of vertices.
func (m *PlaneMesh) VertexCount() int { return len(m.base) / 2 }

// Index returns the vertex index for grid coordinates (col, row).
func (m *PlaneMesh) Index(col, row int) int { return row*(m.Segments+1) + col }

// XZ returns the fixed world-space xz position of vertex i.
func (m *PlaneMesh) XZ(i int) (float32, float32) { return m.base[2*i], m.base[2*i+1] }

// Indices exposes the triangle list.
func (m *PlaneMesh) Indices() []uint16 { return m.indices }

package render

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"terramorph/internal/core"
)

// Projected is a vertex mapped to screen pixels. Depth is NDC z, larger is
// farther. Scale is the perspective size factor 1/w.
type Projected struct {
	X, Y    float32
	Depth   float32
	Scale   float32
	Visible bool
}

// Projector maps world points to a w×h pixel surface through a camera.
type Projector struct {
	vp   mgl32.Mat4
	w, h float32
}

// NewProjector captures the camera's view-projection for one frame.
func NewProjector(cam *core.Camera, w, h int) Projector {
	return Projector{vp: cam.ViewProjection(), w: float32(w), h: float32(h)}
}

// Point projects a single world position.
func (p Projector) Point(v mgl32.Vec3) Projected {
	ndc, inv, ok := core.ProjectNDC(p.vp, v)
	if !ok {
		return Projected{}
	}
	nx, ny, nz := ndc[0], ndc[1], ndc[2]
	return Projected{
		X:       (nx + 1) / 2 * p.w,
		Y:       (1 - ny) / 2 * p.h,
		Depth:   nz,
		Scale:   inv,
		Visible: nz >= -1 && nz <= 1,
	}
}

// Packed projects tightly packed xyz triples into out, reusing its storage.
func (p Projector) Packed(positions []float32, out []Projected) []Projected {
	n := len(positions) / 3
	out = resize(out, n)
	for i := 0; i < n; i++ {
		out[i] = p.Point(mgl32.Vec3{positions[3*i], positions[3*i+1], positions[3*i+2]})
	}
	return out
}

// Vecs projects a slice of vectors into out, reusing its storage.
func (p Projector) Vecs(points []mgl32.Vec3, out []Projected) []Projected {
	out = resize(out, len(points))
	for i, v := range points {
		out[i] = p.Point(v)
	}
	return out
}

// BackToFront returns the triangles of indices whose vertices are all
// visible, ordered farthest first by mean depth.
func BackToFront(indices []uint16, proj []Projected, out []uint16) []uint16 {
	type tri struct {
		depth   float32
		a, b, c uint16
	}
	tris := make([]tri, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		pa, pb, pc := proj[a], proj[b], proj[c]
		if !pa.Visible || !pb.Visible || !pc.Visible {
			continue
		}
		tris = append(tris, tri{depth: (pa.Depth + pb.Depth + pc.Depth) / 3, a: a, b: b, c: c})
	}
	sort.SliceStable(tris, func(i, j int) bool { return tris[i].depth > tris[j].depth })
	out = out[:0]
	for _, t := range tris {
		out = append(out, t.a, t.b, t.c)
	}
	return out
}

// PointOrder returns the indices of visible points, farthest first.
func PointOrder(proj []Projected, out []int) []int {
	out = out[:0]
	for i, p := range proj {
		if p.Visible {
			out = append(out, i)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return proj[out[i]].Depth > proj[out[j]].Depth })
	return out
}

func resize(s []Projected, n int) []Projected {
	if cap(s) < n {
		return make([]Projected, n)
	}
	return s[:n]
}

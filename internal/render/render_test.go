package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terramorph/internal/core"
)

func TestFillColorRGBA(t *testing.T) {
	buf := make([]byte, 8)
	FillColorRGBA(buf, []float32{1, 0, 0.5, -1, 2, 0})
	assert.Equal(t, []byte{255, 0, 128, 255, 0, 255, 0, 255}, buf)
}

func TestFillDepthRGBA(t *testing.T) {
	buf := make([]byte, 12)
	FillDepthRGBA(buf, []float32{0, 5, 10}, 0, 10)
	assert.Equal(t, byte(255), buf[0])
	assert.Equal(t, byte(128), buf[4])
	assert.Equal(t, byte(0), buf[8])
	assert.Equal(t, byte(255), buf[11])

	FillDepthRGBA(buf, []float32{3, 3, 3}, 3, 3)
	assert.Equal(t, byte(128), buf[0])
}

func TestFillElevationRGBA(t *testing.T) {
	buf := make([]byte, 8)
	FillElevationRGBA(buf, []float64{-1, 1})
	assert.Equal(t, []byte{20, 40, 90, 255}, buf[:4])
	assert.Equal(t, []byte{245, 245, 245, 255}, buf[4:])

	flat := make([]byte, 4)
	FillElevationRGBA(flat, []float64{0.3})
	assert.Equal(t, byte(20), flat[0])
	assert.NotPanics(t, func() { FillElevationRGBA(nil, nil) })
}

func TestImages(t *testing.T) {
	img := ColorImage([]float32{1, 1, 1, 0, 0, 0}, 2, 1)
	assert.Equal(t, uint8(255), img.RGBAAt(0, 0).R)
	assert.Equal(t, uint8(0), img.RGBAAt(1, 0).R)

	d := DepthImage([]float32{0, 1, 2, 3}, 0, 3, 2, 2)
	assert.Equal(t, uint8(255), d.RGBAAt(0, 0).G)
	assert.Equal(t, uint8(0), d.RGBAAt(1, 1).G)
}

func TestProjectorCentersTarget(t *testing.T) {
	cam := core.NewCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, 2)
	p := NewProjector(cam, 200, 100)
	c := p.Point(mgl32.Vec3{})
	require.True(t, c.Visible)
	assert.InDelta(t, 100, c.X, 1e-3)
	assert.InDelta(t, 50, c.Y, 1e-3)
	assert.InDelta(t, 0.2, c.Scale, 1e-5)

	up := p.Point(mgl32.Vec3{0, 1, 0})
	assert.Less(t, up.Y, c.Y)
	ndc, inv, ok := core.ProjectNDC(cam.ViewProjection(), mgl32.Vec3{0, 1, 0})
	require.True(t, ok)
	assert.InDelta(t, (1-ndc[1])/2*100, up.Y, 1e-4)
	assert.Equal(t, ndc[2], up.Depth)
	assert.Equal(t, inv, up.Scale)

	behind := p.Point(mgl32.Vec3{0, 0, 10})
	assert.False(t, behind.Visible)
}

func TestBackToFrontOrdersByDepth(t *testing.T) {
	proj := []Projected{
		{Depth: 0.1, Visible: true},
		{Depth: 0.1, Visible: true},
		{Depth: 0.1, Visible: true},
		{Depth: 0.9, Visible: true},
		{Depth: 0.9, Visible: true},
		{Depth: 0.9, Visible: true},
		{Depth: 0.5},
	}
	idx := []uint16{0, 1, 2, 3, 4, 5, 0, 1, 6}
	out := BackToFront(idx, proj, nil)
	assert.Equal(t, []uint16{3, 4, 5, 0, 1, 2}, out)

	order := PointOrder(proj, nil)
	assert.Equal(t, []int{3, 4, 5, 0, 1, 2}, order)
}

func TestPackedMatchesVecs(t *testing.T) {
	cam := core.NewCamera(mgl32.Vec3{1, 2, 6}, mgl32.Vec3{}, 1)
	p := NewProjector(cam, 64, 64)
	pts := []mgl32.Vec3{{0, 0, 0}, {0.5, -0.5, 1}}
	a := p.Vecs(pts, nil)
	b := p.Packed(core.PointsFromVecs("p", pts).Positions, make([]Projected, 8))
	assert.Equal(t, a, b)
}

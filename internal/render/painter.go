//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"terramorph/internal/core"
)

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// MeshPainter draws a vertex-colored triangle mesh, sorted back to front.
type MeshPainter struct {
	proj  []Projected
	order []uint16
	verts []ebiten.Vertex
}

// Draw projects positions through cam and fills every visible triangle with
// its interpolated vertex colors.
func (mp *MeshPainter) Draw(dst *ebiten.Image, cam *core.Camera, positions, colors []float32, indices []uint16) {
	if cam == nil || len(positions) == 0 || len(colors) != len(positions) {
		return
	}
	b := dst.Bounds()
	mp.proj = NewProjector(cam, b.Dx(), b.Dy()).Packed(positions, mp.proj)
	mp.order = BackToFront(indices, mp.proj, mp.order)

	if cap(mp.verts) < len(mp.proj) {
		mp.verts = make([]ebiten.Vertex, len(mp.proj))
	}
	mp.verts = mp.verts[:len(mp.proj)]
	for i, p := range mp.proj {
		mp.verts[i] = ebiten.Vertex{
			DstX: p.X, DstY: p.Y,
			SrcX: 1, SrcY: 1,
			ColorR: colors[3*i], ColorG: colors[3*i+1], ColorB: colors[3*i+2], ColorA: 1,
		}
	}
	op := &ebiten.DrawTrianglesOptions{}
	dst.DrawTriangles(mp.verts, mp.order, whiteSubImage, op)
}

// PointPainter draws a particle cloud as filled circles, farthest first.
type PointPainter struct {
	proj  []Projected
	order []int
}

// Draw renders points sized by pointSize*sizes[i] with perspective falloff.
func (pp *PointPainter) Draw(dst *ebiten.Image, cam *core.Camera, points []mgl32.Vec3, sizes, colors []float32, pointSize float32) {
	if cam == nil || len(points) == 0 {
		return
	}
	b := dst.Bounds()
	pp.proj = NewProjector(cam, b.Dx(), b.Dy()).Vecs(points, pp.proj)
	pp.order = PointOrder(pp.proj, pp.order)
	for _, i := range pp.order {
		p := pp.proj[i]
		r := pointSize * sizes[i] * p.Scale * float32(b.Dy()) / 40
		if r < 0.5 {
			r = 0.5
		}
		col := color.RGBA{R: unit8(colors[3*i]), G: unit8(colors[3*i+1]), B: unit8(colors[3*i+2]), A: 255}
		vector.DrawFilledCircle(dst, p.X, p.Y, r, col, true)
	}
}

// GridPainter uploads a per-vertex grid into an image and blits it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// BlitDepth draws depths as grayscale at (x, y) scaled to side pixels.
func (gp *GridPainter) BlitDepth(dst *ebiten.Image, depths []float32, lo, hi float32, x, y, side float64) {
	if len(depths) != gp.w*gp.h {
		return
	}
	FillDepthRGBA(gp.buf, depths, lo, hi)
	gp.blit(dst, x, y, side)
}

// BlitElevation draws heights through the elevation ramp.
func (gp *GridPainter) BlitElevation(dst *ebiten.Image, heights []float64, x, y, side float64) {
	if len(heights) != gp.w*gp.h {
		return
	}
	FillElevationRGBA(gp.buf, heights)
	gp.blit(dst, x, y, side)
}

func (gp *GridPainter) blit(dst *ebiten.Image, x, y, side float64) {
	gp.img.WritePixels(gp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(side/float64(gp.w), side/float64(gp.h))
	op.GeoM.Translate(x, y)
	dst.DrawImage(gp.img, op)
}

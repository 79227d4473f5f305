//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"terramorph/internal/core"
	"terramorph/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type depthGridProvider interface {
	DepthGrid() ([]float32, float32, float32, int)
}

type heightGridProvider interface {
	HeightGrid() ([]float64, int)
}

// Stats is the per-frame information shown by the stats overlay.
type Stats struct {
	Mode    string
	TPS     float64
	FPS     float64
	Frames  int
	Dropped uint64
}

// Overlay draws optional inspection views on top of the scene: the light
// depth mirror (V), the elevation map (E) and a stats line (I).
type Overlay struct {
	mode      core.Mode
	showDepth bool
	showElev  bool
	showStats bool

	depth *render.GridPainter
	elev  *render.GridPainter
}

// NewOverlay constructs an overlay for mode with stats visible.
func NewOverlay(mode core.Mode) *Overlay {
	return &Overlay{mode: mode, showStats: true}
}

// Rebind points the overlay at a new mode, keeping toggle state.
func (o *Overlay) Rebind(mode core.Mode) {
	o.mode = mode
	o.depth = nil
	o.elev = nil
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		o.showDepth = !o.showDepth
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		o.showElev = !o.showElev
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.showStats = !o.showStats
	}
}

// Draw renders the enabled views onto the scene area of width sceneW.
func (o *Overlay) Draw(screen *ebiten.Image, sceneW int, stats Stats) {
	const inset = 8.0
	side := float64(sceneW) / 4
	x := float64(sceneW) - side - inset
	y := inset

	if o.showDepth {
		if p, ok := o.mode.(depthGridProvider); ok {
			depths, lo, hi, n := p.DepthGrid()
			if n > 0 {
				o.depth = ensureGrid(o.depth, n)
				o.depth.BlitDepth(screen, depths, lo, hi, x, y, side)
				frame(screen, x, y, side)
				y += side + inset
			}
		}
	}
	if o.showElev {
		if p, ok := o.mode.(heightGridProvider); ok {
			heights, n := p.HeightGrid()
			if n > 0 {
				o.elev = ensureGrid(o.elev, n)
				o.elev.BlitElevation(screen, heights, x, y, side)
				frame(screen, x, y, side)
			}
		}
	}
	if o.showStats {
		line := fmt.Sprintf("%s  tps %.0f  fps %.0f  frame %d  dropped %d", stats.Mode, stats.TPS, stats.FPS, stats.Frames, stats.Dropped)
		if p, ok := o.mode.(core.ParameterProvider); ok {
			if st, ok := p.Parameters().Lookup("state"); ok {
				line += "  morph " + st.Value
			}
		}
		vector.DrawFilledRect(screen, 0, 0, float32(len(line)*7+12), 20, color.RGBA{A: 160}, false)
		text.Draw(screen, line, basicfont.Face7x13, 6, 14, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
}

func ensureGrid(gp *render.GridPainter, n int) *render.GridPainter {
	if gp != nil {
		if w, _ := gp.Size(); w == n {
			return gp
		}
	}
	return render.NewGridPainter(n, n)
}

func frame(screen *ebiten.Image, x, y, side float64) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(side), float32(side), 1, color.RGBA{R: 200, G: 200, B: 210, A: 255}, false)
}

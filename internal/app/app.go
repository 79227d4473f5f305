//go:build ebiten

package app

import (
	"image"
	"image/color"

	"terramorph/internal/core"
	"terramorph/internal/modes/morph"
	"terramorph/internal/modes/terrain"
	"terramorph/internal/render"
	"terramorph/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var background = color.RGBA{R: 12, G: 14, B: 20, A: 255}

var movementKeys = map[ebiten.Key]core.Key{
	ebiten.KeyW:          core.KeyForward,
	ebiten.KeyArrowUp:    core.KeyForward,
	ebiten.KeyS:          core.KeyBackward,
	ebiten.KeyArrowDown:  core.KeyBackward,
	ebiten.KeyA:          core.KeyLeft,
	ebiten.KeyArrowLeft:  core.KeyLeft,
	ebiten.KeyD:          core.KeyRight,
	ebiten.KeyArrowRight: core.KeyRight,
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
}

// Game adapts a Host to the ebiten.Game interface.
type Game struct {
	host    *Host
	hud     *ui.HUD
	overlay *ui.Overlay

	mesh   render.MeshPainter
	points render.PointPainter

	hudWidth     int
	sceneW       int
	sceneH       int
	paused       bool
	lastX, lastY int
}

// New constructs a Game around host, which must already have a mode.
func New(host *Host, width, height, hudWidth int) *Game {
	g := &Game{host: host, hudWidth: hudWidth, sceneW: width, sceneH: height, lastX: -1, lastY: -1}
	g.host.Resize(width, height, ebiten.DeviceScaleFactor())
	g.rebind()
	return g
}

func (g *Game) rebind() {
	g.hud = ui.NewHUD(g.host.Mode(), g.hudWidth)
	if g.overlay == nil {
		g.overlay = ui.NewOverlay(g.host.Mode())
		return
	}
	g.overlay.Rebind(g.host.Mode())
}

// Update translates platform input into queued events and advances the host.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.host.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if err := g.host.Next(); err != nil {
			return err
		}
		g.rebind()
	}
	g.queueInput()

	g.overlay.Update()
	g.hud.Update(g.sceneW)

	if !g.paused {
		g.host.Tick()
	}
	return nil
}

func (g *Game) queueInput() {
	q := g.host.Input()
	for key, dir := range movementKeys {
		if inpututil.IsKeyJustPressed(key) {
			q.Push(core.Event{Kind: core.EventKeyDown, Key: dir})
		}
		if inpututil.IsKeyJustReleased(key) {
			q.Push(core.Event{Kind: core.EventKeyUp, Key: dir})
		}
	}
	for i, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			q.Push(core.Event{Kind: core.EventSelectTarget, Index: i})
		}
	}
	x, y := ebiten.CursorPosition()
	if x == g.lastX && y == g.lastY {
		return
	}
	g.lastX, g.lastY = x, y
	if x < 0 || y < 0 || x >= g.sceneW || y >= g.sceneH {
		return
	}
	q.Push(core.Event{
		Kind: core.EventPointerMove,
		X:    2*float32(x)/float32(g.sceneW) - 1,
		Y:    1 - 2*float32(y)/float32(g.sceneH),
	})
}

// Draw renders the active mode, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	scene := screen.SubImage(image.Rect(0, 0, g.sceneW, g.sceneH)).(*ebiten.Image)
	cam := g.host.Camera()

	switch m := g.host.Mode().(type) {
	case *terrain.Engine:
		s := m.Surface()
		if s != nil {
			g.mesh.Draw(scene, cam, s.Positions(), m.Colors(), m.Mesh().Indices())
		}
	case *morph.Engine:
		p := m.Particles()
		g.points.Draw(scene, cam, p.Positions(), p.Sizes(), m.Colors(), float32(m.Config().PointSize))
	}

	name := ""
	if m := g.host.Mode(); m != nil {
		name = m.Name()
	}
	g.overlay.Draw(screen, g.sceneW, ui.Stats{
		Mode:    name,
		TPS:     ebiten.ActualTPS(),
		FPS:     ebiten.ActualFPS(),
		Frames:  g.host.Frames(),
		Dropped: g.host.Input().Dropped(),
	})
	g.hud.Draw(screen, g.sceneW, g.sceneH)
}

// Layout returns the logical screen size: the scene plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sceneW + g.hud.Width(), g.sceneH
}

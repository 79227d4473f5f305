//go:build !ebiten

package app

import "errors"

var errNoGUI = errors.New("app: the GUI requires building with the 'ebiten' tag")

// Game stands in for the ebiten adapter in headless builds. Host works
// without it.
type Game struct{}

// New panics: there is no window to drive without the ebiten tag.
func New(*Host, int, int, int) *Game {
	panic(errNoGUI)
}

// Update reports that the GUI is unavailable.
func (g *Game) Update() error { return errNoGUI }

// Draw does nothing in headless builds.
func (g *Game) Draw(any) {}

// Layout returns zeros in headless builds.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }

//go:build !ebiten

package ui

import "terramorph/internal/core"

// Stats mirrors the GUI overlay's frame information.
type Stats struct {
	Mode    string
	TPS     float64
	FPS     float64
	Frames  int
	Dropped uint64
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Mode) *Overlay { return &Overlay{} }

// Rebind is a no-op in headless builds.
func (o *Overlay) Rebind(core.Mode) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, int, Stats) {}

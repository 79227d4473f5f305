package terrain

import "terramorph/internal/core"

// Intents records which of the four movement directions are held.
type Intents struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Movement scrolls the sampled domain. The mesh itself never moves; only the
// shared offset does, and the offset is unbounded.
type Movement struct {
	Intents Intents
	Speed   float64

	OffsetX float64
	OffsetZ float64
}

// Set updates one intent from a key event.
func (m *Movement) Set(key core.Key, down bool) {
	switch key {
	case core.KeyForward:
		m.Intents.Forward = down
	case core.KeyBackward:
		m.Intents.Backward = down
	case core.KeyLeft:
		m.Intents.Left = down
	case core.KeyRight:
		m.Intents.Right = down
	}
}

// Step advances the offset by Speed per active intent. Forward is +z and
// right is +x.
func (m *Movement) Step() {
	if m.Intents.Forward {
		m.OffsetZ += m.Speed
	}
	if m.Intents.Backward {
		m.OffsetZ -= m.Speed
	}
	if m.Intents.Right {
		m.OffsetX += m.Speed
	}
	if m.Intents.Left {
		m.OffsetX -= m.Speed
	}
}

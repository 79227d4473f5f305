package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// PointBuffer is a raw named point cloud with tightly packed xyz triples.
type PointBuffer struct {
	Name      string
	Positions []float32
}

// Count returns the number of points in the buffer.
func (b PointBuffer) Count() int { return len(b.Positions) / 3 }

// Validate reports ErrAssetShapeMismatch when the buffer holds no points or
// its length is not a multiple of three.
func (b PointBuffer) Validate() error {
	if len(b.Positions) == 0 {
		return fmt.Errorf("target %q has no points: %w", b.Name, ErrAssetShapeMismatch)
	}
	if len(b.Positions)%3 != 0 {
		return fmt.Errorf("target %q has %d floats, not a multiple of 3: %w", b.Name, len(b.Positions), ErrAssetShapeMismatch)
	}
	return nil
}

// At returns point i as a vector.
func (b PointBuffer) At(i int) mgl32.Vec3 {
	base := i * 3
	return mgl32.Vec3{b.Positions[base], b.Positions[base+1], b.Positions[base+2]}
}

// PointsFromVecs packs vectors into a PointBuffer.
func PointsFromVecs(name string, pts []mgl32.Vec3) PointBuffer {
	buf := make([]float32, 0, len(pts)*3)
	for _, p := range pts {
		buf = append(buf, p[0], p[1], p[2])
	}
	return PointBuffer{Name: name, Positions: buf}
}

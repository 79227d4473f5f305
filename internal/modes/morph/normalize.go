package morph

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"terramorph/internal/core"
	"terramorph/pkg/rng"
)

// MaxTargets bounds the number of morph targets a particle set carries.
const MaxTargets = 8

// Target is a named reference shape padded to the shared particle count.
// It is immutable after normalization.
type Target struct {
	Name   string
	Points []mgl32.Vec3
}

// Normalize validates the raw buffers and pads each one to the largest point
// count by resampling uniformly random points of the same buffer, with
// replacement. Native points keep their original order.
func Normalize(raw []core.PointBuffer, r *rng.RNG) ([]Target, int, error) {
	if len(raw) == 0 {
		return nil, 0, fmt.Errorf("no morph targets: %w", core.ErrAssetShapeMismatch)
	}
	if len(raw) > MaxTargets {
		return nil, 0, fmt.Errorf("%d targets, at most %d supported: %w", len(raw), MaxTargets, core.ErrTooManyTargets)
	}
	maxCount := 0
	for _, buf := range raw {
		if err := buf.Validate(); err != nil {
			return nil, 0, err
		}
		if n := buf.Count(); n > maxCount {
			maxCount = n
		}
	}

	out := make([]Target, len(raw))
	for ti, buf := range raw {
		native := buf.Count()
		pts := make([]mgl32.Vec3, maxCount)
		for i := 0; i < native; i++ {
			pts[i] = buf.At(i)
		}
		for i := native; i < maxCount; i++ {
			pts[i] = buf.At(r.IntN(native))
		}
		out[ti] = Target{Name: buf.Name, Points: pts}
	}
	return out, maxCount, nil
}

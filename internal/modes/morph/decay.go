package morph

import "github.com/go-gl/mathgl/mgl32"

// DecayEpsilon is the magnitude below which a displacement counts as settled
// for comparisons. Decay itself never snaps values to zero.
const DecayEpsilon = 1e-6

// Decay multiplies every component of every displacement vector by k.
func Decay(field []mgl32.Vec3, k float32) {
	for i := range field {
		field[i] = mgl32.Vec3{field[i][0] * k, field[i][1] * k, field[i][2] * k}
	}
}

// Settled reports whether every displacement is within DecayEpsilon of zero.
func Settled(field []mgl32.Vec3) bool {
	for _, d := range field {
		if d.Len() > DecayEpsilon {
			return false
		}
	}
	return true
}

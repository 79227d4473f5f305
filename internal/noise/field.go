package noise

import "math"

// Params are the tunables of the height function. Frequencies and strengths
// are expected to be non-negative; callers clamp before building a Field.
type Params struct {
	PositionFrequency float64
	Strength          float64
	WarpFrequency     float64
	WarpStrength      float64
	Octaves           int
	Exponent          float64
	TimeScale         float64
}

// DefaultParams returns the stock landscape settings.
func DefaultParams() Params {
	return Params{
		PositionFrequency: 0.2,
		Strength:          2,
		WarpFrequency:     5,
		WarpStrength:      0.5,
		Octaves:           3,
		Exponent:          2,
		TimeScale:         0,
	}
}

// Field is a pure height function over the xz domain. Two Fields built from
// the same basis and params return identical results for identical inputs.
type Field struct {
	Basis  Basis
	Params Params
}

// NewField binds a basis to a parameter set.
func NewField(basis Basis, params Params) Field {
	return Field{Basis: basis, Params: params}
}

// Warp perturbs the domain coordinate with one low-frequency sample. A zero
// warp strength returns the input unchanged.
func (f Field) Warp(x, z, t float64) (float64, float64) {
	if f.Params.WarpStrength == 0 {
		return x, z
	}
	freq := f.Params.PositionFrequency * f.Params.WarpFrequency
	w := f.Basis.Eval3(x*freq, z*freq, t*f.Params.TimeScale) * f.Params.WarpStrength
	return x + w, z + w
}

// Primary samples the fractal sum at an already-warped coordinate and
// shapes it into a height.
func (f Field) Primary(x, z, t float64) float64 {
	if f.Params.Strength == 0 {
		return 0
	}
	octaves := f.Params.Octaves
	if octaves < 1 {
		octaves = 1
	}
	tt := t * f.Params.TimeScale
	freq := f.Params.PositionFrequency
	scale := 1.0
	e := 0.0
	for k := 0; k < octaves; k++ {
		e += f.Basis.Eval3(x*freq*scale, z*freq*scale, tt) / scale
		scale *= 2
	}
	return shape(e, f.Params.Exponent) * f.Params.Strength
}

// Height evaluates the warped height at domain coordinate (x, z) and time t
// in seconds.
func (f Field) Height(x, z, t float64) float64 {
	wx, wz := f.Warp(x, z, t)
	return f.Primary(wx, wz, t)
}

// Normal estimates the unit surface normal at (x, z) with central
// differences of width 2*shift.
func (f Field) Normal(x, z, t, shift float64) [3]float64 {
	if shift <= 0 {
		shift = 0.01
	}
	dx := (f.Height(x+shift, z, t) - f.Height(x-shift, z, t)) / (2 * shift)
	dz := (f.Height(x, z+shift, t) - f.Height(x, z-shift, t)) / (2 * shift)
	return normalize(-dx, 1, -dz)
}

// Slope returns 1 - normal.y, zero on flat ground.
func Slope(normal [3]float64) float64 {
	return 1 - normal[1]
}

func shape(e, exponent float64) float64 {
	if exponent == 1 || e == 0 {
		return e
	}
	mag := math.Pow(math.Abs(e), exponent)
	if e < 0 {
		return -mag
	}
	return mag
}

func normalize(x, y, z float64) [3]float64 {
	l := math.Sqrt(x*x + y*y + z*z)
	if l == 0 {
		return [3]float64{0, 1, 0}
	}
	return [3]float64{x / l, y / l, z / l}
}

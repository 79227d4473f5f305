// Package noise evaluates the domain-warped fractal heightfield shared by
// the visible terrain surface and its depth mirror.
package noise

import (
	"fmt"
	"strings"

	perlin "github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Basis is a coherent 3D noise source returning values roughly in [-1, 1].
// Implementations must be deterministic and free of mutable state.
type Basis interface {
	Eval3(x, y, z float64) float64
}

type simplexBasis struct {
	n opensimplex.Noise
}

// NewSimplex returns an OpenSimplex basis seeded with seed.
func NewSimplex(seed int64) Basis {
	return simplexBasis{n: opensimplex.New(seed)}
}

func (b simplexBasis) Eval3(x, y, z float64) float64 { return b.n.Eval3(x, y, z) }

type perlinBasis struct {
	p *perlin.Perlin
}

// NewPerlin returns a single-octave Perlin basis seeded with seed.
func NewPerlin(seed int64) Basis {
	return perlinBasis{p: perlin.NewPerlin(2, 2, 1, seed)}
}

func (b perlinBasis) Eval3(x, y, z float64) float64 { return b.p.Noise3D(x, y, z) }

// Basis names accepted by NewBasis.
const (
	BasisSimplex = "simplex"
	BasisPerlin  = "perlin"
)

// NewBasis constructs the basis registered under name.
func NewBasis(name string, seed int64) (Basis, error) {
	switch strings.ToLower(name) {
	case "", BasisSimplex:
		return NewSimplex(seed), nil
	case BasisPerlin:
		return NewPerlin(seed), nil
	default:
		return nil, fmt.Errorf("unknown noise basis %q", name)
	}
}

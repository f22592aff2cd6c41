package common

import (
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
)

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v
// has no length.
func NormalizeOrZero(v cp.Vector) cp.Vector {
	l := v.Length()
	if l == 0 || math.IsNaN(l) {
		return cp.Vector{}
	}
	return v.Mult(1 / l)
}

// InsideUnitCircle returns a uniformly distributed point in the unit disc.
func InsideUnitCircle(r *rand.Rand) cp.Vector {
	angle := r.Float64() * 2 * math.Pi
	dist := math.Sqrt(r.Float64())
	return cp.Vector{X: math.Cos(angle) * dist, Y: math.Sin(angle) * dist}
}

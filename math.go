package secular

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// coincidentε is the relative tolerance under which two semi-major axes are
// considered equal.
const coincidentε = 1e-12

// Alpha returns the ratio of the smaller to the larger semi-major axis, so
// that 0 < α ≤ 1.
func Alpha(a1, a2 float64) float64 {
	return math.Min(a1/a2, a2/a1)
}

// coincident returns whether both semi-major axes are the same.
func coincident(a1, a2 float64) bool {
	return scalar.EqualWithinRel(a1, a2, coincidentε)
}

// finite returns whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

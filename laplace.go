package secular

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mathext"
)

const (
	// laplaceNodes is the number of Gauss-Legendre nodes used on [0, π].
	laplaceNodes = 2048
	// seriesα is the α below which b^(1)_3/2 is evaluated from its power series,
	// where the elliptic form loses precision to cancellation.
	seriesα = 1e-3
)

// LaplaceCoefficient returns the Laplace coefficient
//
//	b_s^(j)(α) = 1/π ∫_0^2π cos(jψ) / (1 - 2α cos ψ + α²)^s dψ
//
// by Gauss-Legendre quadrature. The integrand is even in ψ, so only [0, π] is
// evaluated. α must be in [0, 1); the integral diverges at α = 1 for s ≥ 1/2.
func LaplaceCoefficient(j, s, α float64) float64 {
	if α < 0 || α >= 1 || math.IsNaN(α) {
		return math.NaN()
	}
	integrand := func(ψ float64) float64 {
		return math.Cos(j*ψ) / math.Pow(1-2*α*math.Cos(ψ)+α*α, s)
	}
	return 2 / math.Pi * quad.Fixed(integrand, 0, math.Pi, laplaceNodes, quad.Legendre{}, 0)
}

// LaplaceB32One returns b_3/2^(1)(α) from the complete elliptic integrals of
// the first and second kind:
//
//	b = 4/π [(1+α²) E(α²) - (1-α²) K(α²)] / (α (1-α²)²)
//
// It returns +Inf at α = 1 and NaN outside [0, 1].
func LaplaceB32One(α float64) float64 {
	switch {
	case α < 0 || α > 1 || math.IsNaN(α):
		return math.NaN()
	case α == 1:
		return math.Inf(1)
	case α < seriesα:
		α2 := α * α
		return 3 * α * (1 + α2*(15./8+α2*175./64))
	}
	m := α * α
	K := mathext.CompleteK(m)
	E := mathext.CompleteE(m)
	return 4 / math.Pi * ((1+m)*E - (1-m)*K) / (α * (1 - m) * (1 - m))
}

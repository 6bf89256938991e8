package secular

import (
	"fmt"
	"math"
)

// Timescales holds the secular and diffusion timescales of a test particle, in years.
type Timescales struct {
	Secular     float64 // NaN when the geometry is degenerate
	Diffusion   float64
	Alpha       float64
	OrbitsCross bool // Planet and particle radial extents overlap
}

// SecularDefined returns whether the secular timescale could be computed.
func (t Timescales) SecularDefined() bool {
	return !math.IsNaN(t.Secular)
}

// String implements the Stringer interface.
func (t Timescales) String() string {
	sec := "undefined"
	if t.SecularDefined() {
		sec = fmt.Sprintf("%.2e yr", t.Secular)
	}
	return fmt.Sprintf("secular=%s diffusion=%.2e yr α=%.4f", sec, t.Diffusion, t.Alpha)
}

// SecularTimescale returns the time in years for the planet to drive a full
// secular precession cycle of the test particle. An internal perturber uses
// Eq. 17 of Pearce & Wyatt (2014), an external one Eq. 6 of Pearce et al. (2021):
//
//	t_sec = 4 T_p / μ · α^-5/2 / b_3/2^(1)(α)    (a_p ≤ a_t)
//	t_sec = 4 T_p / μ · α^-1/2 / b_3/2^(1)(α)    (a_p > a_t)
//
// An error wrapping ErrDegenerateGeometry is returned with NaN if both
// semi-major axes coincide.
func SecularTimescale(s System) (float64, error) {
	if err := s.Validate(); err != nil {
		return math.NaN(), err
	}
	return secularTimescale(s)
}

func secularTimescale(s System) (float64, error) {
	if s.Degenerate() {
		return math.NaN(), fmt.Errorf("%w (a = %g au)", ErrDegenerateGeometry, s.Particle.Orbit.A)
	}
	μ := s.MassRatio()
	α := s.Alpha()
	Tp := s.Planet.Orbit.Period(s.Star.Mass)
	b := LaplaceB32One(α)
	exp := -0.5
	if s.Internal() {
		exp = -2.5
	}
	return 4 * Tp / μ * math.Pow(α, exp) / b, nil
}

// DiffusionTimescale returns the time in years for the test particle's orbit
// to diffuse through scattering by the planet, Eq. 18 of Pearce & Wyatt (2014):
//
//	t_diff = 0.01 T_p α^1/2 μ^-2
func DiffusionTimescale(s System) (float64, error) {
	if err := s.Validate(); err != nil {
		return math.NaN(), err
	}
	return diffusionTimescale(s), nil
}

func diffusionTimescale(s System) float64 {
	μ := s.MassRatio()
	Tp := s.Planet.Orbit.Period(s.Star.Mass)
	return 0.01 * Tp * math.Sqrt(s.Alpha()) / (μ * μ)
}

// Compute validates the system and returns both timescales. On degenerate
// geometry, the diffusion timescale is still returned alongside an error
// wrapping ErrDegenerateGeometry and a NaN secular timescale.
func Compute(s System) (Timescales, error) {
	if err := s.Validate(); err != nil {
		return Timescales{Secular: math.NaN(), Diffusion: math.NaN()}, err
	}
	t := Timescales{
		Diffusion:   diffusionTimescale(s),
		Alpha:       s.Alpha(),
		OrbitsCross: s.Planet.Orbit.Crosses(s.Particle.Orbit),
	}
	var err error
	t.Secular, err = secularTimescale(s)
	return t, err
}

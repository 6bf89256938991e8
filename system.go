package secular

import "fmt"

// System is a star, a single perturbing planet and a test particle.
type System struct {
	Star     Star
	Planet   Planet
	Particle Particle
}

// DefaultSystem returns a Jupiter-mass planet at 5.2 au around a solar-mass
// star, perturbing a test particle at 6 au. Both orbits are circular.
func DefaultSystem() System {
	return System{
		Star:     Sun,
		Planet:   Jupiter,
		Particle: Particle{Orbit: NewOrbit(6, 0)},
	}
}

// Validate returns a *ParameterError for the first non-physical value.
func (s System) Validate() error {
	if err := positive("star mass", s.Star.Mass); err != nil {
		return err
	}
	if err := positive("planet mass", s.Planet.Mass); err != nil {
		return err
	}
	if _, err := s.Planet.Unit.Solar(); err != nil {
		return fmt.Errorf("%w: planet mass unit: %s", ErrInvalidParameter, err)
	}
	if err := validOrbit("planet", s.Planet.Orbit); err != nil {
		return err
	}
	return validOrbit("particle", s.Particle.Orbit)
}

// MassRatio returns the planet to star mass ratio.
func (s System) MassRatio() float64 {
	mp, _ := s.Planet.SolarMass()
	return mp / s.Star.Mass
}

// Alpha returns the semi-major axis ratio of the planet and particle, in (0, 1].
func (s System) Alpha() float64 {
	return Alpha(s.Planet.Orbit.A, s.Particle.Orbit.A)
}

// Internal returns whether the planet orbits inside the particle.
func (s System) Internal() bool {
	return s.Planet.Orbit.A <= s.Particle.Orbit.A
}

// Degenerate returns whether the planet and particle share a semi-major axis.
func (s System) Degenerate() bool {
	return coincident(s.Planet.Orbit.A, s.Particle.Orbit.A)
}

// WithParticleAt returns a copy of this system with the particle moved to a au.
func (s System) WithParticleAt(a float64) System {
	s.Particle.Orbit.A = a
	return s
}

func positive(name string, v float64) error {
	if !finite(v) {
		return &ParameterError{name, v, "must be finite"}
	}
	if v <= 0 {
		return &ParameterError{name, v, "must be strictly positive"}
	}
	return nil
}

func validOrbit(body string, o Orbit) error {
	if err := positive(body+" semi-major axis", o.A); err != nil {
		return err
	}
	if !finite(o.E) || o.E < 0 || o.E >= 1 {
		return &ParameterError{body + " eccentricity", o.E, "must be in [0, 1)"}
	}
	return nil
}

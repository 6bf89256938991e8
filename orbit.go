package secular

import (
	"fmt"
	"math"
)

// Orbit defines the shape of a heliocentric orbit. A is the semi-major axis in
// au and E the eccentricity.
type Orbit struct {
	A float64
	E float64
}

// NewOrbit returns a new orbit from its semi-major axis (au) and eccentricity.
func NewOrbit(a, e float64) Orbit {
	return Orbit{A: a, E: e}
}

// SemiParameter returns the semi-latus rectum.
func (o Orbit) SemiParameter() float64 {
	return o.A * (1 - o.E*o.E)
}

// Apoapsis returns the apoapsis.
func (o Orbit) Apoapsis() float64 {
	return o.A * (1 + o.E)
}

// Periapsis returns the periapsis.
func (o Orbit) Periapsis() float64 {
	return o.A * (1 - o.E)
}

// Period returns the period of this orbit in years around a star of mStar
// solar masses. The orbiting body's own mass is neglected.
func (o Orbit) Period(mStar float64) float64 {
	return OrbitalPeriod(o.A, mStar)
}

// Crosses returns whether the radial extents of both orbits overlap.
func (o Orbit) Crosses(b Orbit) bool {
	return o.Periapsis() <= b.Apoapsis() && b.Periapsis() <= o.Apoapsis()
}

// String implements the Stringer interface.
func (o Orbit) String() string {
	return fmt.Sprintf("a=%.4f au e=%.4f", o.A, o.E)
}

// OrbitalPeriod returns the period in years of a body at a au from a star of
// mStar solar masses, in units where G M_sun = 4π² au³/yr².
func OrbitalPeriod(a, mStar float64) float64 {
	n := math.Sqrt(math.Abs(4 * math.Pi * math.Pi * mStar / (a * a * a))) // Mean motion (rad/yr)
	return 2 * math.Pi / n
}

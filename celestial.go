package secular

import (
	"fmt"
	"strings"
)

const (
	// JupiterMass is one Jupiter mass in solar masses.
	JupiterMass = 9.55e-4
	// EarthMass is one Earth mass in solar masses.
	EarthMass = 3.003e-6
)

// MassUnit is the unit in which a planet mass is expressed.
type MassUnit string

// Supported planet mass units.
const (
	JupiterMasses MassUnit = "mjup"
	EarthMasses   MassUnit = "mearth"
	SolarMasses   MassUnit = "msun"
)

// Solar returns the number of solar masses in one of this unit.
func (u MassUnit) Solar() (float64, error) {
	switch MassUnit(strings.ToLower(string(u))) {
	case JupiterMasses, "":
		return JupiterMass, nil
	case EarthMasses:
		return EarthMass, nil
	case SolarMasses:
		return 1, nil
	default:
		return 0, fmt.Errorf("unknown mass unit '%s'", string(u))
	}
}

// Star is the central body. Mass is in solar masses.
type Star struct {
	Mass float64
}

// Planet is the perturber.
type Planet struct {
	Name  string
	Mass  float64  // In Unit
	Unit  MassUnit // Defaults to Jupiter masses
	Orbit Orbit
}

// SolarMass returns the planet mass in solar masses.
func (p Planet) SolarMass() (float64, error) {
	factor, err := p.Unit.Solar()
	if err != nil {
		return 0, err
	}
	return p.Mass * factor, nil
}

// String implements the Stringer interface.
func (p Planet) String() string {
	name := p.Name
	if name == "" {
		name = "planet"
	}
	unit := p.Unit
	if unit == "" {
		unit = JupiterMasses
	}
	return fmt.Sprintf("%s (%g %s, %s)", name, p.Mass, unit, p.Orbit)
}

// Particle is the massless body being perturbed.
type Particle struct {
	Orbit Orbit
}

// PlanetFromString returns the planet preset from its name.
func PlanetFromString(name string) (Planet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "earth":
		return Earth, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "neptune":
		return Neptune, nil
	default:
		return Planet{}, fmt.Errorf("undefined planet '%s'", name)
	}
}

/* Definitions */

// Sun is our closest star.
var Sun = Star{Mass: 1}

// Earth is home.
var Earth = Planet{"Earth", 1, EarthMasses, Orbit{A: 1.00000261, E: 0.01671123}}

// Jupiter is big. The circular orbit matches the usual secular benchmark.
var Jupiter = Planet{"Jupiter", 1, JupiterMasses, Orbit{A: 5.2, E: 0}}

// Saturn floats and that's really cool.
var Saturn = Planet{"Saturn", 0.2994, JupiterMasses, Orbit{A: 9.53667594, E: 0.05386179}}

// Uranus is no joke.
var Uranus = Planet{"Uranus", 0.0457, JupiterMasses, Orbit{A: 19.18916464, E: 0.04725744}}

// Neptune sculpts the Kuiper belt.
var Neptune = Planet{"Neptune", 0.0540, JupiterMasses, Orbit{A: 30.06992276, E: 0.00859048}}

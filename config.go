package secular

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"
)

//go:embed scenario.cue
var scenarioSchema string

// Scenario keys, as found in scenario files and bound to command line flags.
const (
	KeyStarMass     = "star.mass"
	KeyPlanetName   = "planet.name"
	KeyPlanetMass   = "planet.mass"
	KeyPlanetUnit   = "planet.unit"
	KeyPlanetA      = "planet.a"
	KeyPlanetE      = "planet.e"
	KeyParticleA    = "particle.a"
	KeyParticleE    = "particle.e"
	scenarioDefPath = "#Scenario"
)

// LoadScenario reads the TOML or YAML scenario at path and returns its system.
// Keys missing from the file keep the values of DefaultSystem.
func LoadScenario(path string) (System, error) {
	v := viper.New()
	if err := ReadScenario(v, path); err != nil {
		return System{}, err
	}
	return SystemFromViper(v)
}

// ReadScenario reads the scenario file at path into v and checks its shape.
// It must be called before any flag is bound to v.
func ReadScenario(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading scenario %s: %w", path, err)
	}
	if err := CheckScenario(v.AllSettings()); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// CheckScenario validates decoded scenario settings against the scenario schema.
func CheckScenario(settings map[string]any) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(scenarioSchema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling scenario schema: %w", err)
	}
	final := schema.LookupPath(cue.ParsePath(scenarioDefPath)).Unify(ctx.Encode(settings))
	if err := final.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	return nil
}

// SystemFromViper builds a system from DefaultSystem, overridden by the keys set
// in v. A planet name selects a preset, whose fields are in turn overridden by
// any explicit planet key.
func SystemFromViper(v *viper.Viper) (System, error) {
	sys := DefaultSystem()
	if v.IsSet(KeyPlanetName) {
		planet, err := PlanetFromString(v.GetString(KeyPlanetName))
		if err != nil {
			return System{}, err
		}
		sys.Planet = planet
	}
	setFloat(v, KeyStarMass, &sys.Star.Mass)
	setFloat(v, KeyPlanetMass, &sys.Planet.Mass)
	setFloat(v, KeyPlanetA, &sys.Planet.Orbit.A)
	setFloat(v, KeyPlanetE, &sys.Planet.Orbit.E)
	setFloat(v, KeyParticleA, &sys.Particle.Orbit.A)
	setFloat(v, KeyParticleE, &sys.Particle.Orbit.E)
	if v.IsSet(KeyPlanetUnit) {
		sys.Planet.Unit = MassUnit(v.GetString(KeyPlanetUnit))
	}
	return sys, nil
}

func setFloat(v *viper.Viper, key string, dst *float64) {
	if v.IsSet(key) {
		*dst = v.GetFloat64(key)
	}
}

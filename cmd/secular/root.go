package main

import (
	"fmt"
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/planetdebris/secular"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const scenarioEnv = "SECULAR_SCENARIO"

// systemFlags maps each system flag to its scenario key.
var systemFlags = []struct {
	name, key, usage string
	isString         bool
}{
	{"star-mass", secular.KeyStarMass, "star mass (solar masses)", false},
	{"planet", secular.KeyPlanetName, "planet preset (earth, jupiter, saturn, uranus, neptune)", true},
	{"planet-mass", secular.KeyPlanetMass, "planet mass, in --planet-unit", false},
	{"planet-unit", secular.KeyPlanetUnit, "planet mass unit (mjup, mearth, msun)", true},
	{"planet-a", secular.KeyPlanetA, "planet semi-major axis (au)", false},
	{"planet-e", secular.KeyPlanetE, "planet eccentricity", false},
	{"particle-a", secular.KeyParticleA, "test particle semi-major axis (au)", false},
	{"particle-e", secular.KeyParticleE, "test particle eccentricity", false},
}

// app carries what every command needs.
type app struct {
	stdout, stderr io.Writer
	scenario       string
	verbose        bool
	logger         log.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:   "secular",
		Short: "Secular and diffusion timescales of a test particle",
		Long: `secular computes the secular and diffusion timescales of a test particle
perturbed by a single planet (Pearce & Wyatt 2014, Sec. 5.4).

Without arguments, a Jupiter-mass planet at 5.2 au around a solar-mass star
perturbs a particle at 6 au. A scenario file (TOML or YAML) and flags
override these values, flags taking precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = newLogger(a.stderr, a.verbose)
		},
		RunE: a.runCompute,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.scenario, "scenario", "", "scenario TOML or YAML file (default $"+scenarioEnv+")")
	pf.BoolVar(&a.verbose, "verbose", false, "log configuration details")
	for _, f := range systemFlags {
		if f.isString {
			pf.String(f.name, "", f.usage)
		} else {
			pf.Float64(f.name, 0, f.usage)
		}
	}
	root.AddCommand(newComputeCmd(a), newProfileCmd(a))
	return root
}

// system returns the system from the defaults, scenario file and flags.
func (a *app) system(flags *pflag.FlagSet) (secular.System, error) {
	path, err := a.scenarioPath()
	if err != nil {
		return secular.System{}, err
	}
	v := viper.New()
	if path != "" {
		if err := secular.ReadScenario(v, path); err != nil {
			return secular.System{}, err
		}
		level.Debug(a.logger).Log("scenario", path)
	}
	for _, f := range systemFlags {
		flag := flags.Lookup(f.name)
		if flag == nil {
			return secular.System{}, fmt.Errorf("flag --%s not registered", f.name)
		}
		if err := v.BindPFlag(f.key, flag); err != nil {
			return secular.System{}, err
		}
	}
	sys, err := secular.SystemFromViper(v)
	if err != nil {
		return secular.System{}, err
	}
	level.Debug(a.logger).Log("star(Msun)", sys.Star.Mass, "planet", sys.Planet, "particle", sys.Particle.Orbit)
	return sys, nil
}

// scenarioPath returns the --scenario flag, or the file named by the environment.
func (a *app) scenarioPath() (string, error) {
	if a.scenario != "" {
		return a.scenario, nil
	}
	env := viper.New()
	if err := env.BindEnv("scenario", scenarioEnv); err != nil {
		return "", err
	}
	return env.GetString("scenario"), nil
}

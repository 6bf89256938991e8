package main

import (
	"errors"
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/planetdebris/secular"
	"github.com/spf13/cobra"
)

func newComputeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compute",
		Short: "Print the secular and diffusion timescales (default command)",
		Args:  cobra.NoArgs,
		RunE:  a.runCompute,
	}
}

func (a *app) runCompute(cmd *cobra.Command, args []string) error {
	sys, err := a.system(cmd.Flags())
	if err != nil {
		return err
	}
	ts, err := secular.Compute(sys)
	if err != nil && !errors.Is(err, secular.ErrDegenerateGeometry) {
		return err
	}
	if ts.OrbitsCross {
		level.Warn(a.logger).Log("msg", "orbits cross, secular theory may not apply", "planet", sys.Planet.Orbit, "particle", sys.Particle.Orbit)
	}
	if ts.SecularDefined() {
		fmt.Fprintf(a.stdout, "Secular time: %.2e yr\n", ts.Secular)
	} else {
		level.Warn(a.logger).Log("msg", "secular timescale undefined", "err", err)
		fmt.Fprintf(a.stdout, "Secular time: undefined (%s)\n", secular.ErrDegenerateGeometry)
	}
	fmt.Fprintf(a.stdout, "Diffusion time: %.2e yr\n", ts.Diffusion)
	level.Debug(a.logger).Log("alpha", ts.Alpha, "internal", sys.Internal(), "mass_ratio", sys.MassRatio())
	return nil
}

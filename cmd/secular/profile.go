package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/go-kit/log/level"
	"github.com/planetdebris/secular"
	"github.com/spf13/cobra"
)

func newProfileCmd(a *app) *cobra.Command {
	var (
		opts   secular.ProfileOptions
		format string
	)
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Print both timescales across a range of particle semi-major axes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := a.system(cmd.Flags())
			if err != nil {
				return err
			}
			points, err := secular.Profile(sys, opts)
			if err != nil {
				return err
			}
			level.Info(a.logger).Log("msg", "profile", "planet", sys.Planet, "points", len(points), "log", opts.Log)
			switch format {
			case "csv":
				return secular.WriteCSV(a.stdout, points)
			case "json":
				return secular.WriteJSON(a.stdout, points)
			case "text":
				return a.writeTable(points)
			default:
				return fmt.Errorf("unknown format %q (text, csv, json)", format)
			}
		},
	}
	f := cmd.Flags()
	f.Float64Var(&opts.From, "from", 1, "innermost particle semi-major axis (au)")
	f.Float64Var(&opts.To, "to", 50, "outermost particle semi-major axis (au)")
	f.IntVar(&opts.Points, "points", 20, "number of particle locations")
	f.BoolVar(&opts.Log, "log", false, "logarithmic spacing")
	f.StringVar(&format, "format", "text", "output format: text, csv or json")
	return cmd
}

func (a *app) writeTable(points []secular.ProfilePoint) error {
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "a (au)\tα\tsecular (yr)\tdiffusion (yr)")
	for _, pt := range points {
		sec := "undefined"
		if !math.IsNaN(pt.Secular) {
			sec = fmt.Sprintf("%.2e", pt.Secular)
		}
		fmt.Fprintf(tw, "%.3f\t%.4f\t%s\t%.2e\n", pt.A, pt.Alpha, sec, pt.Diffusion)
	}
	return tw.Flush()
}

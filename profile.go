package secular

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ProfileOptions define the particle semi-major axes of a radial profile.
type ProfileOptions struct {
	From, To float64 // au
	Points   int
	Log      bool // Logarithmic spacing
}

// ProfilePoint is one particle location of a radial profile.
type ProfilePoint struct {
	A          float64 // au
	Alpha      float64
	Secular    float64 // yr, NaN when Degenerate
	Diffusion  float64 // yr
	Degenerate bool
}

// Profile returns both timescales for particles spread between opts.From and
// opts.To, all other parameters being those of s. A particle sharing the
// planet's semi-major axis is kept with a NaN secular timescale.
func Profile(s System, opts ProfileOptions) ([]ProfilePoint, error) {
	if err := positive("profile start", opts.From); err != nil {
		return nil, err
	}
	if !finite(opts.To) || opts.To <= opts.From {
		return nil, &ParameterError{"profile end", opts.To, "must be finite and greater than the start"}
	}
	if opts.Points < 2 {
		return nil, &ParameterError{"profile points", float64(opts.Points), "must be at least 2"}
	}
	// Validate the rest of the system once, the particle axis is overwritten below.
	if err := s.WithParticleAt(opts.From).Validate(); err != nil {
		return nil, err
	}

	axes := make([]float64, opts.Points)
	if opts.Log {
		floats.LogSpan(axes, opts.From, opts.To)
	} else {
		floats.Span(axes, opts.From, opts.To)
	}

	points := make([]ProfilePoint, opts.Points)
	for i, a := range axes {
		sys := s.WithParticleAt(a)
		secular, err := secularTimescale(sys)
		if err != nil && !errors.Is(err, ErrDegenerateGeometry) {
			return nil, err
		}
		points[i] = ProfilePoint{
			A:          a,
			Alpha:      sys.Alpha(),
			Secular:    secular,
			Diffusion:  diffusionTimescale(sys),
			Degenerate: math.IsNaN(secular),
		}
	}
	return points, nil
}

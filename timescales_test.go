package secular

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestTimescalesReference(t *testing.T) {
	for _, c := range []struct {
		name               string
		sys                System
		secular, diffusion float64
	}{
		{"default", DefaultSystem(), 1892.8354632026371, 121038.71904983805},
		{"external", System{Sun, Jupiter, Particle{NewOrbit(4, 0)}}, 4450.281680024193, 114031.9618431512},
		{"kuiper", System{Sun, Planet{Mass: 1, Orbit: NewOrbit(30, 0)}, Particle{NewOrbit(100, 0)}}, 12994104.838764759, 986815.0544118857},
		{"heavy star", System{Star{2}, Planet{Mass: 0.5, Unit: JupiterMasses, Orbit: NewOrbit(10, 0)}, Particle{NewOrbit(50, 0)}}, 32330007.84014766, 1754337.8745100186},
	} {
		ts, err := Compute(c.sys)
		if err != nil {
			t.Fatalf("%s: %s", c.name, err)
		}
		if !scalar.EqualWithinRel(ts.Secular, c.secular, 1e-6) {
			t.Fatalf("%s: secular %f yr != %f yr", c.name, ts.Secular, c.secular)
		}
		if !scalar.EqualWithinRel(ts.Diffusion, c.diffusion, 1e-6) {
			t.Fatalf("%s: diffusion %f yr != %f yr", c.name, ts.Diffusion, c.diffusion)
		}
		sec, err := SecularTimescale(c.sys)
		if err != nil || sec != ts.Secular {
			t.Fatalf("%s: SecularTimescale %f (%v) != Compute %f", c.name, sec, err, ts.Secular)
		}
		diff, err := DiffusionTimescale(c.sys)
		if err != nil || diff != ts.Diffusion {
			t.Fatalf("%s: DiffusionTimescale %f (%v) != Compute %f", c.name, diff, err, ts.Diffusion)
		}
	}
}

func TestTimescalesString(t *testing.T) {
	ts, err := Compute(DefaultSystem())
	if err != nil {
		t.Fatal(err)
	}
	if exp := "secular=1.89e+03 yr diffusion=1.21e+05 yr α=0.8667"; ts.String() != exp {
		t.Fatalf("got %q, expected %q", ts.String(), exp)
	}
}

func TestTimescalesMassScaling(t *testing.T) {
	for _, aTest := range []float64{2, 4, 6, 50} {
		sys := DefaultSystem().WithParticleAt(aTest)
		heavy := sys
		heavy.Planet.Mass *= 2
		ts1, err := Compute(sys)
		if err != nil {
			t.Fatal(err)
		}
		ts2, err := Compute(heavy)
		if err != nil {
			t.Fatal(err)
		}
		if r := ts2.Secular / ts1.Secular; !scalar.EqualWithinRel(r, 0.5, 1e-12) {
			t.Fatalf("a=%f: secular ratio %f != 1/2", aTest, r)
		}
		if r := ts2.Diffusion / ts1.Diffusion; !scalar.EqualWithinRel(r, 0.25, 1e-12) {
			t.Fatalf("a=%f: diffusion ratio %f != 1/4", aTest, r)
		}
	}
}

func TestTimescalesUnits(t *testing.T) {
	jup, err := Compute(DefaultSystem())
	if err != nil {
		t.Fatal(err)
	}
	sys := DefaultSystem()
	sys.Planet.Mass = JupiterMass / EarthMass
	sys.Planet.Unit = EarthMasses
	earth, err := Compute(sys)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinRel(jup.Secular, earth.Secular, 1e-12) || !scalar.EqualWithinRel(jup.Diffusion, earth.Diffusion, 1e-12) {
		t.Fatalf("same mass in different units: %s vs %s", jup, earth)
	}
}

func TestTimescalesPositive(t *testing.T) {
	for _, mStar := range []float64{0.1, 1, 3} {
		for _, mPlt := range []float64{0.01, 1, 10} {
			for _, aTest := range []float64{0.5, 3, 5.1, 5.3, 10, 300} {
				sys := System{Star{mStar}, Planet{Mass: mPlt, Orbit: NewOrbit(5.2, 0.1)}, Particle{NewOrbit(aTest, 0.3)}}
				ts, err := Compute(sys)
				if err != nil {
					t.Fatalf("%+v: %s", sys, err)
				}
				for name, v := range map[string]float64{"secular": ts.Secular, "diffusion": ts.Diffusion} {
					if !finite(v) || v <= 0 {
						t.Fatalf("%+v: %s timescale %f", sys, name, v)
					}
				}
			}
		}
	}
}

func TestTimescalesIdempotent(t *testing.T) {
	sys := DefaultSystem()
	first, err := Compute(sys)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := Compute(sys)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("run %d: %+v != %+v", i, again, first)
		}
	}
}

func TestTimescalesDegenerate(t *testing.T) {
	sys := DefaultSystem().WithParticleAt(5.2)
	ts, err := Compute(sys)
	if !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("expected degenerate geometry, got %v", err)
	}
	if ts.SecularDefined() || !math.IsNaN(ts.Secular) {
		t.Fatalf("secular timescale should be undefined, got %f", ts.Secular)
	}
	// α = 1 for the diffusion timescale.
	if exp := 0.01 * math.Pow(5.2, 1.5) / (JupiterMass * JupiterMass); !scalar.EqualWithinRel(ts.Diffusion, exp, 1e-12) {
		t.Fatalf("diffusion %f != %f", ts.Diffusion, exp)
	}
	if !ts.OrbitsCross {
		t.Fatal("identical orbits cross")
	}
	if _, err := SecularTimescale(sys); !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("SecularTimescale: expected degenerate geometry, got %v", err)
	}
	if _, err := DiffusionTimescale(sys); err != nil {
		t.Fatalf("DiffusionTimescale: %s", err)
	}
	// Nearby but distinct orbits are fine.
	if _, err := Compute(DefaultSystem().WithParticleAt(5.2 * (1 + 1e-9))); err != nil {
		t.Fatal(err)
	}
}

func TestTimescalesInvalid(t *testing.T) {
	for _, c := range []struct {
		param  string
		mutate func(*System)
	}{
		{"star mass", func(s *System) { s.Star.Mass = 0 }},
		{"star mass", func(s *System) { s.Star.Mass = math.Inf(1) }},
		{"planet mass", func(s *System) { s.Planet.Mass = -1 }},
		{"planet mass", func(s *System) { s.Planet.Mass = math.NaN() }},
		{"planet semi-major axis", func(s *System) { s.Planet.Orbit.A = 0 }},
		{"particle semi-major axis", func(s *System) { s.Particle.Orbit.A = -6 }},
		{"planet eccentricity", func(s *System) { s.Planet.Orbit.E = 1 }},
		{"planet eccentricity", func(s *System) { s.Planet.Orbit.E = -0.1 }},
		{"particle eccentricity", func(s *System) { s.Particle.Orbit.E = 1.5 }},
	} {
		sys := DefaultSystem()
		c.mutate(&sys)
		_, err := Compute(sys)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("%s: expected invalid parameter, got %v", c.param, err)
		}
		var perr *ParameterError
		if !errors.As(err, &perr) || perr.Name != c.param {
			t.Fatalf("expected error on %s, got %v", c.param, err)
		}
		if _, err := SecularTimescale(sys); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("SecularTimescale accepted invalid %s", c.param)
		}
		if _, err := DiffusionTimescale(sys); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("DiffusionTimescale accepted invalid %s", c.param)
		}
	}

	sys := DefaultSystem()
	sys.Planet.Unit = "kg"
	if _, err := Compute(sys); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected invalid unit, got %v", err)
	}
}

func TestZeroEccentricityBoundary(t *testing.T) {
	sys := DefaultSystem()
	sys.Planet.Orbit.E = 0
	sys.Particle.Orbit.E = 0
	if err := sys.Validate(); err != nil {
		t.Fatalf("zero eccentricities rejected: %s", err)
	}
	sys.Particle.Orbit.E = math.Nextafter(1, 0)
	if err := sys.Validate(); err != nil {
		t.Fatalf("eccentricity just below 1 rejected: %s", err)
	}
}

package krill

import (
	"errors"
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestNewSystem(t *testing.T) {
	for _, exp := range []struct {
		sys System
		μ   float64
	}{
		{SunEarth, 3.0034805761789793e-06},
		{SunJupiter, 0.0009536838986096321},
	} {
		if !floats.EqualWithinRel(exp.sys.MassRatio(), exp.μ, 1e-12) {
			t.Fatalf("%s: μ=%g != %g", exp.sys, exp.sys.MassRatio(), exp.μ)
		}
	}
	if SunEarth.Name != "sun-earth" || !SunEarth.Primary.Equals(Sun) || !SunEarth.Secondary.Equals(Earth) {
		t.Fatalf("unexpected system %+v", SunEarth)
	}
	em, err := NewSystem(Earth, Moon)
	if err != nil {
		t.Fatal(err)
	}
	// The rounded Earth-Moon ratio is within 1e-5 of the one from the GMs.
	if !floats.EqualWithinAbs(em.MassRatio(), EarthMoon.MassRatio(), 1e-5) {
		t.Fatalf("μ=%f", em.MassRatio())
	}
	if _, err := NewSystem(Moon, Earth); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("heavier secondary should fail, got %v", err)
	}
	if _, err := NewSystem(Earth, CelestialObject{Name: "Void"}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("massless secondary should fail, got %v", err)
	}
}

func TestNewSystemFromMassRatio(t *testing.T) {
	for _, μ := range []float64{0, 1, -0.1, 1.5, math.NaN(), math.Inf(1)} {
		if _, err := NewSystemFromMassRatio("bad", μ); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("μ=%f should be invalid, got %v", μ, err)
		}
	}
	sys, err := NewSystemFromMassRatio("pluto-charon", 0.1085)
	if err != nil {
		t.Fatal(err)
	}
	if x, y := sys.PrimaryPosition(); x != -0.1085 || y != 0 {
		t.Fatalf("primary at (%f, %f)", x, y)
	}
	if x, y := sys.SecondaryPosition(); !floats.EqualWithinAbs(x, 0.8915, 1e-15) || y != 0 {
		t.Fatalf("secondary at (%f, %f)", x, y)
	}
	if sys.String() != "pluto-charon system (μ=0.1085)" {
		t.Fatalf("unexpected string %s", sys)
	}
}

func TestSystemFromString(t *testing.T) {
	for name, exp := range map[string]System{"earth-moon": EarthMoon, "Sun-Earth": SunEarth, "SUN-JUPITER": SunJupiter} {
		sys, err := SystemFromString(name)
		if err != nil {
			t.Fatalf("%s: %s", name, err)
		}
		if sys != exp {
			t.Fatalf("%s: got %s", name, sys)
		}
	}
	if _, err := SystemFromString("earth-mars"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

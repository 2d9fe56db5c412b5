package krill

import (
	"fmt"
	"math"
	"strings"
)

// System is a circular restricted three body system, fully described (once normalized) by the mass ratio
// of its secondary. A System is immutable and safe for concurrent use.
type System struct {
	Name               string
	Primary, Secondary CelestialObject // May be empty for a system built from its mass ratio only.
	μ                  float64
}

// NewSystem returns the system made of the two provided bodies, where μ = GM2/(GM1+GM2).
func NewSystem(primary, secondary CelestialObject) (System, error) {
	gm1, gm2 := primary.GM(), secondary.GM()
	if gm1 <= 0 || gm2 <= 0 {
		return System{}, fmt.Errorf("%w: %s and %s must both have a positive GM", ErrInvalidArgument, primary.Name, secondary.Name)
	}
	if gm2 > gm1 {
		return System{}, fmt.Errorf("%w: secondary %s is heavier than primary %s", ErrInvalidArgument, secondary.Name, primary.Name)
	}
	name := strings.ToLower(primary.Name + "-" + secondary.Name)
	sys, err := NewSystemFromMassRatio(name, gm2/(gm1+gm2))
	if err != nil {
		return System{}, err
	}
	sys.Primary = primary
	sys.Secondary = secondary
	return sys, nil
}

// NewSystemFromMassRatio returns a system only defined by its mass ratio, which must be in ]0;1[.
func NewSystemFromMassRatio(name string, μ float64) (System, error) {
	if math.IsNaN(μ) || μ <= 0 || μ >= 1 {
		return System{}, fmt.Errorf("%w: mass ratio %g of %s not in ]0;1[", ErrInvalidArgument, μ, name)
	}
	return System{Name: name, μ: μ}, nil
}

// MassRatio returns μ (which is unexported because it's a lowercase letter)
func (s System) MassRatio() float64 {
	return s.μ
}

// PrimaryPosition returns the position of the primary in the rotating frame.
func (s System) PrimaryPosition() (float64, float64) {
	return -s.μ, 0
}

// SecondaryPosition returns the position of the secondary in the rotating frame.
func (s System) SecondaryPosition() (float64, float64) {
	return 1 - s.μ, 0
}

// String implements the Stringer interface.
func (s System) String() string {
	return fmt.Sprintf("%s system (μ=%g)", s.Name, s.μ)
}

// SystemFromString returns one of the predefined systems from its name.
func SystemFromString(name string) (System, error) {
	switch strings.ToLower(name) {
	case "earth-moon":
		return EarthMoon, nil
	case "sun-earth":
		return SunEarth, nil
	case "sun-jupiter":
		return SunJupiter, nil
	default:
		return System{}, fmt.Errorf("%w: undefined system '%s'", ErrInvalidArgument, name)
	}
}

func mustNewSystem(primary, secondary CelestialObject) System {
	sys, err := NewSystem(primary, secondary)
	if err != nil {
		panic(err)
	}
	return sys
}

/* Definitions */

// EarthMoon is the Earth-Moon system with the rounded mass ratio used for the reference Jacobi constants.
var EarthMoon = System{"earth-moon", Earth, Moon, 0.012154}

// SunEarth is the Sun-Earth system (the Moon's mass is not lumped with the Earth's).
var SunEarth = mustNewSystem(Sun, Earth)

// SunJupiter is the Sun-Jupiter system.
var SunJupiter = mustNewSystem(Sun, Jupiter)

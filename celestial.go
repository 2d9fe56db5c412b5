package krill

import (
	"fmt"
	"strings"
)

// CelestialObject defines a celestial object which may act as a primary of a three body system.
type CelestialObject struct {
	Name   string
	Radius float64 // Mean radius in km
	μ      float64
}

// GM returns μ (which is unexported because it's a lowercase letter)
func (c CelestialObject) GM() float64 {
	return c.μ
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.μ == b.μ
}

// CelestialObjectFromString returns the object from its name
func CelestialObjectFromString(name string) (CelestialObject, error) {
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "earth":
		return Earth, nil
	case "moon":
		return Moon, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	default:
		return CelestialObject{}, fmt.Errorf("%w: undefined body '%s'", ErrInvalidArgument, name)
	}
}

/* Definitions */

// Sun is our closest star.
var Sun = CelestialObject{"Sun", 695700, 1.32712440017987e11}

// Earth is home.
var Earth = CelestialObject{"Earth", 6378.1363, 3.98600433e5}

// Moon is where the krill would go first.
var Moon = CelestialObject{"Moon", 1737.4, 4.902800066e3}

// Mars is the vacation place.
var Mars = CelestialObject{"Mars", 3396.19, 4.28283100e4}

// Jupiter is big.
var Jupiter = CelestialObject{"Jupiter", 71492.0, 1.266865361e8}

// Saturn floats and that's really cool.
var Saturn = CelestialObject{"Saturn", 60268.0, 3.7931208e7}

package krill

import (
	"fmt"
	"math"
)

// LibrationPoint is one of the five equilibrium points of the CR3BP.
type LibrationPoint uint8

const (
	// L1 is the collinear point between both primaries.
	L1 LibrationPoint = iota + 1
	// L2 is the collinear point beyond the secondary.
	L2
	// L3 is the collinear point beyond the primary.
	L3
	// L4 is the triangular point leading the secondary.
	L4
	// L5 is the triangular point trailing the secondary.
	L5
)

// LibrationPoints lists all the libration points, in order.
var LibrationPoints = [5]LibrationPoint{L1, L2, L3, L4, L5}

// String implements the Stringer interface.
func (l LibrationPoint) String() string {
	switch l {
	case L1, L2, L3, L4, L5:
		return fmt.Sprintf("L%d", uint8(l))
	default:
		return fmt.Sprintf("LibrationPoint(%d)", uint8(l))
	}
}

// LibrationPointFromString returns the libration point from its label, which must be one of "L1" to "L5".
func LibrationPointFromString(label string) (LibrationPoint, error) {
	switch label {
	case "L1":
		return L1, nil
	case "L2":
		return L2, nil
	case "L3":
		return L3, nil
	case "L4":
		return L4, nil
	case "L5":
		return L5, nil
	default:
		return 0, fmt.Errorf("%w: no point exists for argument '%s'", ErrInvalidArgument, label)
	}
}

// Position returns the approximate position of the provided libration point in the rotating frame.
// The collinear points use the first order expansion in (μ/3)^(1/3) (L1, L2) and in μ (L3).
func (s System) Position(pt LibrationPoint) (rx, ry float64, err error) {
	μ := s.μ
	switch pt {
	case L1:
		rx = 1 - math.Pow(μ/3, 1/3.)
	case L2:
		rx = (1 - μ) * (1 + math.Pow(μ/3, 1/3.))
	case L3:
		rx = -(1 - μ) * (1 + 17/12.*μ)
	case L4:
		rx = 1/2. - μ
		ry = sqrt3by2
	case L5:
		rx = 1/2. - μ
		ry = -sqrt3by2
	default:
		err = fmt.Errorf("%w: no point exists for argument %s", ErrInvalidArgument, pt)
	}
	return
}

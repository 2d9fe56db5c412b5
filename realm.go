package krill

import "fmt"

// Realm is the band of Jacobi integral values in which a trajectory lies, which determines which necks
// of the zero-velocity curves are open.
type Realm uint8

const (
	// RealmClosed is J > J(L1): the trajectory stays around the primary, around the secondary or outside both.
	RealmClosed Realm = iota + 1
	// RealmL1 is J(L2) < J <= J(L1): the L1 neck is open, allowing transit between both primaries.
	RealmL1
	// RealmL2 is J(L3) < J <= J(L2): the L2 neck is open too, allowing escape to the exterior realm.
	RealmL2
	// RealmL3 is J(L4) < J <= J(L3): the L3 neck is open and the forbidden region shrinks around L4 and L5.
	RealmL3
	// RealmOpen is J <= J(L4): the whole plane is accessible.
	RealmOpen
)

func (r Realm) String() string {
	switch r {
	case RealmClosed:
		return "closed"
	case RealmL1:
		return "L1 open"
	case RealmL2:
		return "L2 open"
	case RealmL3:
		return "L3 open"
	case RealmOpen:
		return "open"
	default:
		return fmt.Sprintf("Realm(%d)", uint8(r))
	}
}

// Thresholds returns the Jacobi integral at each libration point, in the order of LibrationPoints.
func (s System) Thresholds() (J [5]float64) {
	for i, pt := range LibrationPoints {
		// Cannot fail on a known libration point.
		J[i], _ = s.JacobiAtPoint(pt)
	}
	return
}

// Realm returns the realm of the provided Jacobi integral.
func (s System) Realm(J float64) Realm {
	thresholds := s.Thresholds()
	switch {
	case J > thresholds[0]:
		return RealmClosed
	case J > thresholds[1]:
		return RealmL1
	case J > thresholds[2]:
		return RealmL2
	case J > thresholds[3]:
		return RealmL3
	default:
		return RealmOpen
	}
}

// Accessible returns whether the position (rx, ry) lies within the Hill region of the Jacobi integral J,
// i.e. where the zero-velocity curve of J allows a non-negative squared speed 2Ω - J.
func (s System) Accessible(rx, ry, J float64) bool {
	return 2*s.Potential(rx, ry) >= J
}

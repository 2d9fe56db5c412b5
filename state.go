package krill

import (
	"fmt"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

// State is a planar state [rx, ry, vx, vy] in the rotating frame centered on the barycenter.
// Units are normalized (distance between the primaries and their mean motion are one) but not enforced.
type State [4]float64

// NewState returns a new State.
func NewState(rx, ry, vx, vy float64) State {
	return State{rx, ry, vx, vy}
}

// NewStateFromVector returns the State stored in a 4x1 vector.
func NewStateFromVector(v *mat64.Vector) (State, error) {
	if v == nil || v.Len() != 4 {
		return State{}, fmt.Errorf("%w: state must be a 4x1 vector", ErrInvalidArgument)
	}
	var s State
	for i := range s {
		s[i] = v.At(i, 0)
	}
	return s, nil
}

// Vector returns this state as a 4x1 vector.
func (s State) Vector() *mat64.Vector {
	return mat64.NewVector(4, []float64{s[0], s[1], s[2], s[3]})
}

// R returns the position [rx, ry].
func (s State) R() []float64 {
	return []float64{s[0], s[1]}
}

// V returns the velocity [vx, vy].
func (s State) V() []float64 {
	return []float64{s[2], s[3]}
}

// Speed returns the norm of the velocity in the rotating frame.
func (s State) Speed() float64 {
	return floats.Norm(s.V(), 2)
}

// Mirror returns the image of this state by the x-axis reflection, (rx, -ry, -vx, vy),
// which maps CR3BP trajectories onto CR3BP trajectories with the same Jacobi integral.
func (s State) Mirror() State {
	return State{s[0], -s[1], -s[2], s[3]}
}

// String implements the Stringer interface.
func (s State) String() string {
	return fmt.Sprintf("r=[%f %f] v=[%f %f]", s[0], s[1], s[2], s[3])
}

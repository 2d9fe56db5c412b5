// Package krill evaluates the Jacobi integral of the circular restricted three body problem (CR3BP)
// at the libration points and at arbitrary planar states of the rotating frame.
//
// Reference values for the Earth-Moon system (μ=0.012154):
//	J(L1) = 3.1885282305574663
//	J(L2) = 3.1730187952481117
//	J(L3) = 3.01215069525063
//	J(L4) = J(L5) = 2.987993719716
package krill

// Distances returns the distances from (rx, ry) to the primary, located at (-μ, 0), and to
// the secondary, located at (1-μ, 0).
func (s System) Distances(rx, ry float64) (r1, r2 float64) {
	r1 = dist(rx, ry, -s.μ, 0)
	r2 = dist(rx, ry, 1-s.μ, 0)
	return
}

// Potential returns the pseudo-potential Ω = (rx²+ry²)/2 + (1-μ)/r1 + μ/r2.
// It is infinite on either primary.
func (s System) Potential(rx, ry float64) float64 {
	r1, r2 := s.Distances(rx, ry)
	return (rx*rx+ry*ry)/2 + (1-s.μ)/r1 + s.μ/r2
}

// JacobiAtPoint returns the Jacobi integral at the provided libration point, where the velocity is null.
func (s System) JacobiAtPoint(pt LibrationPoint) (float64, error) {
	rx, ry, err := s.Position(pt)
	if err != nil {
		return 0, err
	}
	r1, r2 := s.Distances(rx, ry)
	return rx*rx + ry*ry + (2*(1-s.μ))/r1 + (2*s.μ)/r2, nil
}

// JacobiAtPointName is JacobiAtPoint for a point label such as "L1".
func (s System) JacobiAtPointName(label string) (float64, error) {
	pt, err := LibrationPointFromString(label)
	if err != nil {
		return 0, err
	}
	return s.JacobiAtPoint(pt)
}

// JacobiAtState returns the Jacobi integral J = 2Ω - (vx²+vy²)/2 of the provided state.
// The state is not validated: a state on either primary returns ±Inf or NaN.
func (s System) JacobiAtState(st State) float64 {
	return -(st[2]*st[2]+st[3]*st[3])/2 + 2*s.Potential(st[0], st[1])
}

// VelocityMagnitude returns (2Ω - J)² at the position of the provided state; its velocity is ignored.
// NOTE: this is the square of 2Ω - J, not the speed allowed by J.
func (s System) VelocityMagnitude(st State, J float64) float64 {
	δ := 2*s.Potential(st[0], st[1]) - J
	return δ * δ
}

package krill

import "github.com/gonum/floats"

// sqrt3by2 is √3/2, the ordinate of the triangular points.
const sqrt3by2 = 0.8660254037844386

// dist returns the planar distance between (x, y) and (x0, y0).
func dist(x, y, x0, y0 float64) float64 {
	return floats.Norm([]float64{x - x0, y - y0}, 2)
}

// Package ellipse fits an oriented ellipse around a set of 2D points.
//
// The ellipse is aligned with the principal components of the points
// (closed-form 2×2 eigen-decomposition, no linear-algebra dependency),
// padded, and then uniformly scaled so that every input point lies inside.
// It is not the minimum-area enclosing ellipse.
//
// Conventions:
//   - DX is the half-axis along the first principal axis, DY along the second.
//   - Angle is the direction of the first principal axis, in radians.
//   - A single point, or points that all coincide, give a circle of radius
//     MinAxis + Padding/2 with Angle 0.
//
//	f := ellipse.NewFitter(ellipse.WithPadding(0.3), ellipse.WithMinAxis(0.25))
//	shape, err := f.Fit([]orb.Point{{0, 0}, {2, 1}, {4, 2.2}})
package ellipse

// SPDX-License-Identifier: MIT
// Package: ringlink/ellipse
//
// fit.go — PCA-aligned bounding ellipse.
//
// Algorithm:
//  1. Validate: non-empty, finite coordinates.
//  2. If every point coincides with points[0] (singleton included), return
//     the circle DX = DY = MinAxis + Padding/2, Angle = 0 centered there.
//     Coincidence is relative to the coordinate magnitude, so it does not
//     depend on centroid rounding.
//  3. Sample covariance (÷ n−1) and its closed-form eigenpairs, principal first.
//  4. Project centered points on the principal frame → (x, y).
//  5. dx0, dy0 = max|x| + pad, max|y| + pad.
//  6. r = √((x/dx0)² + (y/dy0)²); scale = max(1, max r); a zero extent
//     contributes 0 (every projection on that axis is exactly 0).
//  7. dx, dy = dx0·scale, dy0·scale, each clamped below to MinAxis.
//  8. Angle = atan2(v₁.y, v₁.x).
//
// Guarantee: every input point p satisfies Shape.Radius(p) ≤ 1 up to
// floating-point rounding. The box with the per-axis maxima does not bound
// the inscribed ellipse at its corners; step 6 is what restores containment.
//
// Complexity: O(n) time, O(1) extra space.

package ellipse

import (
	"math"

	"github.com/paulmach/orb"
)

const methodFit = "Fit"

// coincidentTol is the largest offset from points[0], relative to
// max(1, |points[0]|∞), still treated as "all points coincide".
const coincidentTol = 1e-12

// Fitter computes bounding shapes with a fixed padding and minimum axis.
// The zero value is not usable; build one with NewFitter.
type Fitter struct {
	padding float64
	minAxis float64
}

// NewFitter returns a Fitter with DefaultPadding/DefaultMinAxis overridden by opts.
func NewFitter(opts ...Option) Fitter {
	f := Fitter{padding: DefaultPadding, minAxis: DefaultMinAxis}
	for _, opt := range opts {
		if opt != nil {
			opt(&f)
		}
	}

	return f
}

// Padding returns the configured margin.
func (f Fitter) Padding() float64 { return f.padding }

// MinAxis returns the configured minimum half-axis.
func (f Fitter) MinAxis() float64 { return f.minAxis }

// Fit is shorthand for NewFitter(opts...).Fit(points).
func Fit(points []orb.Point, opts ...Option) (Shape, error) {
	return NewFitter(opts...).Fit(points)
}

// Fit returns an ellipse that contains every point.
//
// Errors:
//   - ErrEmptyPoints if len(points) == 0.
//   - ErrNaNInf if any coordinate is not finite.
func (f Fitter) Fit(points []orb.Point) (Shape, error) {
	n := len(points)
	if n == 0 {
		return Shape{}, fitErrorf(methodFit, ErrEmptyPoints)
	}

	p0 := points[0]
	tol := coincidentTol * math.Max(1, math.Max(math.Abs(p0.X()), math.Abs(p0.Y())))
	var cx, cy float64
	coincident := true
	for _, p := range points {
		if !finite(p.X()) || !finite(p.Y()) {
			return Shape{}, fitErrorf(methodFit, ErrNaNInf)
		}
		if math.Abs(p.X()-p0.X()) > tol || math.Abs(p.Y()-p0.Y()) > tol {
			coincident = false
		}
		cx += p.X()
		cy += p.Y()
	}
	if n == 1 || coincident {
		return f.circle(p0), nil
	}
	cx /= float64(n)
	cy /= float64(n)
	center := orb.Point{cx, cy}

	var sxx, sxy, syy float64
	for _, p := range points {
		ux, uy := p.X()-cx, p.Y()-cy
		sxx += ux * ux
		sxy += ux * uy
		syy += uy * uy
	}
	inv := 1.0 / float64(n-1)
	principal, _ := symEigen2(sxx*inv, sxy*inv, syy*inv)

	angle := math.Atan2(principal.vy, principal.vx)
	sin, cos := math.Sincos(angle)

	var mx, my float64
	for _, p := range points {
		ux, uy := p.X()-cx, p.Y()-cy
		mx = math.Max(mx, math.Abs(ux*cos+uy*sin))
		my = math.Max(my, math.Abs(-ux*sin+uy*cos))
	}
	dx0, dy0 := mx+f.padding, my+f.padding

	var rmax float64
	for _, p := range points {
		ux, uy := p.X()-cx, p.Y()-cy
		r := math.Hypot(axisRatio(ux*cos+uy*sin, dx0), axisRatio(-ux*sin+uy*cos, dy0))
		rmax = math.Max(rmax, r)
	}
	scale := math.Max(1, rmax)

	return Shape{
		Center: center,
		DX:     math.Max(dx0*scale, f.minAxis),
		DY:     math.Max(dy0*scale, f.minAxis),
		Angle:  angle,
	}, nil
}

// circle is the fixed shape for a single point or a zero-variance set.
func (f Fitter) circle(center orb.Point) Shape {
	h := f.minAxis + f.padding/2

	return Shape{Center: center, DX: h, DY: h, Angle: 0}
}

// axisRatio returns v/extent, treating a zero extent as a zero term.
func axisRatio(v, extent float64) float64 {
	if extent == 0 {
		return 0
	}

	return v / extent
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

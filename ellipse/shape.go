// SPDX-License-Identifier: MIT

package ellipse

import (
	"math"

	"github.com/paulmach/orb"
)

// DefaultRingSegments is used by Ring when segments < 3.
const DefaultRingSegments = 64

// Shape is a rotated ellipse. DX is the half-axis along the first principal
// axis (the "width" axis at angle Angle from +x), DY the half-axis along the
// second. Both are strictly positive for shapes produced by Fit.
type Shape struct {
	Center orb.Point `json:"center"`
	DX     float64   `json:"dx"`
	DY     float64   `json:"dy"`
	Angle  float64   `json:"angle"`
}

// Local maps p into the ellipse frame: origin at Center, x along the first axis.
func (s Shape) Local(p orb.Point) orb.Point {
	sin, cos := math.Sincos(s.Angle)
	ux, uy := p.X()-s.Center.X(), p.Y()-s.Center.Y()

	return orb.Point{ux*cos + uy*sin, -ux*sin + uy*cos}
}

// Radius returns (x/DX)² + (y/DY)² for p in the local frame; ≤ 1 means inside.
func (s Shape) Radius(p orb.Point) float64 {
	l := s.Local(p)
	x, y := l.X()/s.DX, l.Y()/s.DY

	return x*x + y*y
}

// Contains reports whether p lies inside the ellipse, allowing tol of slack
// on the normalized radius.
func (s Shape) Contains(p orb.Point, tol float64) bool {
	return s.Radius(p) <= 1+tol
}

// Area returns π·DX·DY.
func (s Shape) Area() float64 {
	return math.Pi * s.DX * s.DY
}

// Bound returns the axis-aligned bounding box of the rotated ellipse.
func (s Shape) Bound() orb.Bound {
	sin, cos := math.Sincos(s.Angle)
	hw := math.Hypot(s.DX*cos, s.DY*sin)
	hh := math.Hypot(s.DX*sin, s.DY*cos)

	return orb.Bound{
		Min: orb.Point{s.Center.X() - hw, s.Center.Y() - hh},
		Max: orb.Point{s.Center.X() + hw, s.Center.Y() + hh},
	}
}

// Ring approximates the outline with a closed polygon whose vertices lie on
// the ellipse, counter-clockwise, first point repeated at the end.
func (s Shape) Ring(segments int) orb.Ring {
	if segments < 3 {
		segments = DefaultRingSegments
	}
	sin, cos := math.Sincos(s.Angle)
	r := make(orb.Ring, 0, segments+1)
	for k := 0; k < segments; k++ {
		ts, tc := math.Sincos(2 * math.Pi * float64(k) / float64(segments))
		x, y := s.DX*tc, s.DY*ts
		r = append(r, orb.Point{
			s.Center.X() + x*cos - y*sin,
			s.Center.Y() + x*sin + y*cos,
		})
	}
	r = append(r, r[0])

	return r
}

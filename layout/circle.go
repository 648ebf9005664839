// SPDX-License-Identifier: MIT
// Package: ringlink/layout
//
// circle.go — item centers evenly spaced on a circle.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewItems), radius > 0 and finite (else ErrBadRadius).
//   • Item k sits at angle 2πk/n, counter-clockwise from +x, so ring
//     adjacency k → k+1 matches spatial adjacency.
//
// Complexity: O(n) time and space.

package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// DefaultRadius is the circle radius used by the CLI when none is configured.
const DefaultRadius = 3.0

const (
	methodCircle     = "Circle"
	methodAlongOrder = "AlongOrder"
)

var (
	// ErrTooFewItems indicates n < 1.
	ErrTooFewItems = errors.New("layout: need at least one item")

	// ErrBadRadius indicates a non-positive or non-finite radius.
	ErrBadRadius = errors.New("layout: radius must be positive and finite")

	// ErrBadOrder indicates an order that is not a permutation of 0..n-1.
	ErrBadOrder = errors.New("layout: order is not a permutation")
)

// Circle returns n points on a circle of the given radius centered at the origin.
func Circle(n int, radius float64) ([]orb.Point, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodCircle, n, ErrTooFewItems)
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%s: radius=%g: %w", methodCircle, radius, ErrBadRadius)
	}
	pts := make([]orb.Point, n)
	for k := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(k) / float64(n))
		pts[k] = orb.Point{radius * cos, radius * sin}
	}

	return pts, nil
}

// AlongOrder places items on the circle in ring order: item order[k] sits
// at angle 2πk/n. The result is indexed by item. order must be a
// permutation of 0..n-1 (else ErrBadOrder).
func AlongOrder(order []int, radius float64) ([]orb.Point, error) {
	slots, err := Circle(len(order), radius)
	if err != nil {
		return nil, err
	}
	out := make([]orb.Point, len(order))
	seen := make([]bool, len(order))
	for k, item := range order {
		if item < 0 || item >= len(order) || seen[item] {
			return nil, fmt.Errorf("%s: item %d: %w", methodAlongOrder, item, ErrBadOrder)
		}
		seen[item] = true
		out[item] = slots[k]
	}

	return out, nil
}

// SPDX-License-Identifier: MIT
// Package: ringlink/ellipse
//
// eigen.go — closed-form eigen-decomposition of a 2×2 symmetric matrix.
//
// A 2×2 symmetric matrix is diagonalized by exactly one Jacobi rotation, so
// the iterative sweep of a general solver collapses to a single step:
//
//	θ = (c − a) / (2b)
//	t = sgn(θ) / (|θ| + √(θ²+1))      (sgn(0) = +1)
//	cos = 1/√(t²+1), sin = t·cos
//	λ₁ = a − t·b with vector ( cos, −sin)
//	λ₂ = c + t·b with vector ( sin,  cos)
//
// Pairs are returned in descending eigenvalue order (principal axis first).

package ellipse

import "math"

// offDiagTol below which the matrix is treated as already diagonal.
const offDiagTol = 1e-300

// eigenPair is one eigenvalue with its unit eigenvector.
type eigenPair struct {
	value float64
	vx    float64
	vy    float64
}

// symEigen2 decomposes [[a, b], [b, c]].
func symEigen2(a, b, c float64) (first, second eigenPair) {
	if math.Abs(b) <= offDiagTol {
		first = eigenPair{value: a, vx: 1, vy: 0}
		second = eigenPair{value: c, vx: 0, vy: 1}
	} else {
		theta := (c - a) / (2 * b)
		t := 1.0 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
		if theta < 0 {
			t = -t
		}
		cs := 1.0 / math.Sqrt(t*t+1)
		sn := t * cs
		first = eigenPair{value: a - t*b, vx: cs, vy: -sn}
		second = eigenPair{value: c + t*b, vx: sn, vy: cs}
	}
	if second.value > first.value {
		first, second = second, first
	}

	return first, second
}

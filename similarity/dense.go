// SPDX-License-Identifier: MIT

// Package similarity - Dense storage (row-major) for pairwise item similarity.
//
// Purpose:
//   - Hold an immutable n×n similarity table with the index formula i*n + j.
//   - Validate once at construction: square, finite, off-diagonal in (0,1],
//     symmetric within epsilon. Accessors never re-validate.
//   - Return errors from the public accessor instead of panicking.
//
// Complexity quicksheet:
//   - New: O(n²) copy + validation; At: O(1); Random: O(n²).

package similarity

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

const (
	ctxNew    = "New"
	ctxAt     = "Dense.At"
	ctxRandom = "Random"
)

// Matrix is the read-only view consumed by the linkage engine.
type Matrix interface {
	// N returns the number of items (rows == cols).
	N() int

	// At returns S[i,j] or ErrOutOfRange.
	At(i, j int) (float64, error)
}

// Dense is an immutable row-major n×n similarity matrix.
type Dense struct {
	n    int
	data []float64
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// New copies rows into a validated Dense matrix.
//
// Contract:
//   - len(rows) ≥ 1 and every row has len == len(rows) (ErrBadShape / ErrNonSquare).
//   - every entry finite (ErrNaNInf).
//   - off-diagonal entries in (0,1] (ErrOutOfDomain); the diagonal is unused by scoring.
//   - |S[i,j] − S[j,i]| ≤ eps (ErrAsymmetry).
func New(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	n := len(rows)
	if n == 0 {
		return nil, similarityErrorf(ctxNew, ErrBadShape)
	}
	d := &Dense{n: n, data: make([]float64, n*n)}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, similarityErrorf(ctxNew, ErrNonSquare)
		}
		for j = 0; j < n; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, cellErrorf(ctxNew, i, j, ErrNaNInf)
			}
			if i != j && (v <= 0 || v > 1) {
				return nil, cellErrorf(ctxNew, i, j, ErrOutOfDomain)
			}
			d.data[i*n+j] = v
		}
	}

	// Upper triangle only.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(d.data[i*n+j]-d.data[j*n+i]) > o.eps {
				return nil, cellErrorf(ctxNew, i, j, ErrAsymmetry)
			}
		}
	}

	return d, nil
}

// Random draws a symmetric similarity matrix: entries uniform in [low,high),
// symmetrized as (S+Sᵀ)/2, diagonal fixed to 1.
// The same seed always yields the same matrix.
func Random(n int, opts ...Option) (*Dense, error) {
	if n < 1 {
		return nil, similarityErrorf(ctxRandom, ErrBadShape)
	}
	o := gatherOptions(opts...)
	rng := rand.New(rand.NewSource(o.seed))

	raw := make([]float64, n*n)
	span := o.high - o.low
	for k := range raw {
		raw[k] = o.low + span*rng.Float64()
	}

	d := &Dense{n: n, data: make([]float64, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		d.data[i*n+i] = 1
		for j = i + 1; j < n; j++ {
			v := (raw[i*n+j] + raw[j*n+i]) / 2
			d.data[i*n+j] = v
			d.data[j*n+i] = v
		}
	}

	return d, nil
}

// N returns the number of items.
func (d *Dense) N() int { return d.n }

// At returns S[i,j].
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, cellErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.data[i*d.n+j], nil
}

// Rows returns a deep copy of the matrix as nested slices.
func (d *Dense) Rows() [][]float64 {
	out := make([][]float64, d.n)
	for i := range out {
		out[i] = make([]float64, d.n)
		copy(out[i], d.data[i*d.n:(i+1)*d.n])
	}

	return out
}

// String implements fmt.Stringer for debugging.
func (d *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < d.n; i++ {
		sb.WriteString("[")
		for j := 0; j < d.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", d.data[i*d.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

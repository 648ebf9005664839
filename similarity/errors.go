// SPDX-License-Identifier: MIT
// Package similarity: sentinel error set.
// All constructors and accessors return these sentinels (optionally wrapped
// with method context via %w). Callers match with errors.Is.

package similarity

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when the row set is empty or ragged.
	ErrBadShape = errors.New("similarity: invalid shape")

	// ErrNonSquare signals that the input rows do not form an n×n matrix.
	ErrNonSquare = errors.New("similarity: matrix is not square")

	// ErrAsymmetry signals |S[i,j] − S[j,i]| > epsilon for some pair.
	ErrAsymmetry = errors.New("similarity: matrix is not symmetric within eps")

	// ErrOutOfDomain signals an off-diagonal value outside (0,1].
	ErrOutOfDomain = errors.New("similarity: value outside (0,1]")

	// ErrNaNInf signals a NaN or ±Inf entry.
	ErrNaNInf = errors.New("similarity: NaN or Inf encountered")

	// ErrOutOfRange indicates that a row or column index is outside [0,n).
	ErrOutOfRange = errors.New("similarity: index out of range")
)

// similarityErrorf attaches a method tag to a sentinel.
func similarityErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// cellErrorf attaches a method tag and coordinates to a sentinel.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, row, col, err)
}

// SPDX-License-Identifier: MIT
// Package ellipse: sentinel error set.
// Fit returns these sentinels wrapped with method context; match with errors.Is.
// Degenerate (zero-variance) input is NOT an error: it falls back to a circle.

package ellipse

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPoints is returned when Fit receives no points.
	ErrEmptyPoints = errors.New("ellipse: empty point set")

	// ErrNaNInf is returned when a point has a NaN or ±Inf coordinate.
	ErrNaNInf = errors.New("ellipse: NaN or Inf coordinate")
)

func fitErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

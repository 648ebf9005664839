// SPDX-License-Identifier: MIT
// Package: ringlink/linkage
//
// errors.go — sentinel errors for the linkage engine.
//
// Error policy:
//   • Precondition violations (bad threshold, bad order, size mismatch) are
//     returned as these sentinels, wrapped with method context via %w.
//   • Bookkeeping corruption discovered during a merge step is a programming
//     defect and panics; it is never returned or silently repaired.
//   • Zero-variance clusters are not errors (the fitter falls back to a circle).

package linkage

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that New received a nil similarity matrix.
	ErrNilMatrix = errors.New("linkage: nil similarity matrix")

	// ErrInvalidOrder indicates that the initial order is not a permutation of 0..n-1.
	ErrInvalidOrder = errors.New("linkage: order is not a permutation of item indices")

	// ErrDimensionMismatch indicates len(points) != n.
	ErrDimensionMismatch = errors.New("linkage: dimension mismatch")

	// ErrInvalidThreshold indicates minClusterCount < 1.
	ErrInvalidThreshold = errors.New("linkage: minClusterCount must be >= 1")

	// ErrOrderMismatch indicates the circular order length differs from the live cluster count.
	ErrOrderMismatch = errors.New("linkage: circular order does not match live clusters")

	// ErrAlreadyRun indicates Run was called on an engine that already merged.
	ErrAlreadyRun = errors.New("linkage: engine already run")

	// ErrEmptyCluster indicates Score was given a cluster without members.
	ErrEmptyCluster = errors.New("linkage: empty cluster")
)

func linkageErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

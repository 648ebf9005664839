// SPDX-License-Identifier: MIT
// Package: ringlink/ring
//
// errors.go — sentinel errors for the ring package.
// Callers MUST use errors.Is(err, ErrX); messages carry context via %w.

package ring

import "errors"

// ErrEmpty indicates that New was called without ids.
var ErrEmpty = errors.New("ring: no ids")

// ErrDuplicateID indicates an id that is already live in the ring.
var ErrDuplicateID = errors.New("ring: duplicate id")

// ErrUnknownID indicates an id that is not live in the ring.
var ErrUnknownID = errors.New("ring: unknown id")

// SPDX-License-Identifier: MIT
// Package: ringlink/ellipse
//
// options.go — functional options for the fitter.
//
// Contract (strict):
//   • Options are functional (type Option func(*Fitter)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Fit itself MUST NOT panic.
//   • No hidden globals; padding and minimum axis live on the Fitter value.

package ellipse

import "math"

const (
	// DefaultPadding is added to both half-extents before the scale correction.
	DefaultPadding = 0.30

	// DefaultMinAxis is the lower bound enforced on each half-axis.
	DefaultMinAxis = 0.25
)

// Option customizes a Fitter.
type Option func(*Fitter)

// WithPadding sets the margin added to the per-axis maxima. Panics if
// p is negative or not finite.
func WithPadding(p float64) Option {
	if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		panic("ellipse: WithPadding(p<0 or non-finite)")
	}
	return func(f *Fitter) {
		f.padding = p
	}
}

// WithMinAxis sets the minimum half-axis length. Panics unless m > 0 and finite.
func WithMinAxis(m float64) Option {
	if !(m > 0) || math.IsInf(m, 0) {
		panic("ellipse: WithMinAxis(m<=0 or non-finite)")
	}
	return func(f *Fitter) {
		f.minAxis = m
	}
}

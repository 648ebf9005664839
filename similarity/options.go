// SPDX-License-Identifier: MIT

// Package similarity: functional configuration for matrix construction
// and the seeded random generator.
//
// Design goals:
//   - Deterministic behavior: no global state, seed 0 maps to a fixed seed.
//   - Safe by construction: WithX constructors panic on nonsensical values;
//     New/Random never panic.
package similarity

// Numeric policy defaults.
const (
	// DefaultEpsilon is the symmetry tolerance used by New.
	DefaultEpsilon = 1e-9

	// DefaultLow is the inclusive lower bound of generated similarities.
	DefaultLow = 0.2

	// DefaultHigh is the exclusive upper bound of generated similarities.
	DefaultHigh = 1.0

	// DefaultSeed replaces a zero seed so that Random is reproducible by default.
	DefaultSeed int64 = 1
)

// Option customizes construction by mutating an Options value.
type Option func(*Options)

// Options holds the resolved construction policy.
type Options struct {
	eps  float64
	low  float64
	high float64
	seed int64
}

// WithEpsilon sets the symmetry tolerance. Panics if eps < 0.
func WithEpsilon(eps float64) Option {
	if eps < 0 {
		panic("similarity: WithEpsilon(eps<0)")
	}
	return func(o *Options) {
		o.eps = eps
	}
}

// WithBounds sets the generator interval [low, high).
// Panics unless 0 < low < high <= 1.
func WithBounds(low, high float64) Option {
	if !(low > 0 && low < high && high <= 1) {
		panic("similarity: WithBounds requires 0 < low < high <= 1")
	}
	return func(o *Options) {
		o.low, o.high = low, high
	}
}

// WithSeed fixes the generator seed. Zero selects DefaultSeed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
	}
}

// gatherOptions resolves defaults and applies fns in order.
func gatherOptions(fns ...Option) Options {
	o := Options{
		eps:  DefaultEpsilon,
		low:  DefaultLow,
		high: DefaultHigh,
		seed: DefaultSeed,
	}
	for _, fn := range fns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.seed == 0 {
		o.seed = DefaultSeed
	}

	return o
}

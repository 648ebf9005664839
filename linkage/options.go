// SPDX-License-Identifier: MIT
// Package: ringlink/linkage
//
// options.go — functional options for New.
// Option constructors panic on nonsense (nil logger); New never panics.

package linkage

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/ringlink/ellipse"
)

// Option customizes an Engine.
type Option func(*config)

type config struct {
	fitter ellipse.Fitter
	log    *zap.Logger
}

func defaultConfig() config {
	return config{
		fitter: ellipse.NewFitter(),
		log:    zap.NewNop(),
	}
}

// WithFitter configures the bounding-shape fitter (padding, minimum axis).
func WithFitter(opts ...ellipse.Option) Option {
	f := ellipse.NewFitter(opts...)
	return func(c *config) {
		c.fitter = f
	}
}

// WithLogger attaches a logger; merge steps are logged at Debug level.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("linkage: WithLogger(nil)")
	}
	return func(c *config) {
		c.log = l
	}
}

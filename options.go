// Package bst file: options.go
package bst

import "github.com/rs/zerolog"

type options struct {
	logger zerolog.Logger
}

// Option configures a Tree or one of the containers built on it.
type Option func(*options)

// WithLogger attaches a logger. Trees log at debug level only; the default is zerolog.Nop().
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

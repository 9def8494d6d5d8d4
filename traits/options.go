// SPDX-License-Identifier: MIT

package traits

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlinalg/element"
)

const (
	// DefaultHeterogeneousComplex mirrors the element-layer default.
	DefaultHeterogeneousComplex = element.DefaultHeterogeneousComplex

	// DefaultCache enables memoisation of Resolve results.
	DefaultCache = true
)

// Option configures a Resolver.
type Option func(*Options)

// Options holds the effective resolver configuration.
type Options struct {
	logger               zerolog.Logger
	heterogeneousComplex bool
	cache                bool
}

// WithLogger routes resolver diagnostics (bypassed customizations, cache
// misses) to l. The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithHeterogeneousComplex lets the default element rule promote complex
// operands with different component types.
func WithHeterogeneousComplex() Option {
	return func(o *Options) { o.heterogeneousComplex = true }
}

// WithHomogeneousComplex restores the default complex restriction.
func WithHomogeneousComplex() Option {
	return func(o *Options) { o.heterogeneousComplex = false }
}

// WithCache enables the resolution cache.
func WithCache() Option {
	return func(o *Options) { o.cache = true }
}

// WithoutCache disables the resolution cache.
func WithoutCache() Option {
	return func(o *Options) { o.cache = false }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		logger:               zerolog.Nop(),
		heterogeneousComplex: DefaultHeterogeneousComplex,
		cache:                DefaultCache,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// promoteOptions translates resolver options to the element layer.
func (o Options) promoteOptions() []element.Option {
	if o.heterogeneousComplex {
		return []element.Option{element.WithHeterogeneousComplex()}
	}

	return nil
}

// SPDX-License-Identifier: MIT

package linalg

import (
	"github.com/katalvlaran/lvlinalg/engine"
	"github.com/katalvlaran/lvlinalg/traits"
)

// DefaultLayout is the storage order of matrices built without WithLayout.
const DefaultLayout = engine.DefaultLayout

const (
	panicResolverNil = "linalg: WithResolver(nil)"
	panicLayout      = "linalg: WithLayout: unknown layout"
)

// Option configures object construction.
type Option func(*Options)

// Options holds the effective construction settings.
type Options struct {
	policy   any
	layout   engine.Layout
	resolver *traits.Resolver
}

// WithPolicy attaches an operation policy. A nil policy means traits.Default.
func WithPolicy(p any) Option {
	return func(o *Options) {
		if p == nil {
			p = traits.Default{}
		}
		o.policy = p
	}
}

// WithLayout selects the storage order of constructed matrices.
// Panics on an unknown layout value.
func WithLayout(l engine.Layout) Option {
	if l != engine.RowMajor && l != engine.ColumnMajor {
		panic(panicLayout)
	}

	return func(o *Options) { o.layout = l }
}

// WithResolver routes resolution through r instead of the default resolver.
// Panics on nil.
func WithResolver(r *traits.Resolver) Option {
	if r == nil {
		panic(panicResolverNil)
	}

	return func(o *Options) { o.resolver = r }
}

func gatherOptions(opts ...Option) Options {
	o := Options{policy: traits.Default{}, layout: DefaultLayout}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// SPDX-License-Identifier: MIT

package engine

// DefaultLayout is the storage order of engines created without WithLayout.
const DefaultLayout = RowMajor

const panicLayoutInvalid = "engine: WithLayout: unknown layout"

// Option configures engine type construction.
type Option func(*Options)

// Options holds the effective engine configuration.
type Options struct {
	layout Layout
}

// WithLayout selects the storage order of fixed and dynamic matrix engines.
// Panics on an unknown layout value (programmer error).
func WithLayout(l Layout) Option {
	if l != RowMajor && l != ColumnMajor {
		panic(panicLayoutInvalid)
	}

	return func(o *Options) { o.layout = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{layout: DefaultLayout}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

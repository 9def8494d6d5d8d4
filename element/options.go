// SPDX-License-Identifier: MIT

package element

// DefaultHeterogeneousComplex keeps complex operands homogeneous: a
// complex64∘complex128 pair is rejected by the default promotion rule.
const DefaultHeterogeneousComplex = false

// Option configures the default promotion rule.
type Option func(*Options)

// Options holds the effective promotion configuration.
type Options struct {
	heterogeneousComplex bool
}

// WithHeterogeneousComplex lifts the homogeneous-complex restriction so that
// complex(T1)∘complex(T2) promotes to complex(promote(T1, T2)).
func WithHeterogeneousComplex() Option {
	return func(o *Options) { o.heterogeneousComplex = true }
}

// WithHomogeneousComplex restores the default restriction.
func WithHomogeneousComplex() Option {
	return func(o *Options) { o.heterogeneousComplex = false }
}

// HeterogeneousComplex reports the configured flag.
func (o Options) HeterogeneousComplex() bool { return o.heterogeneousComplex }

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(opts ...Option) Options {
	o := Options{heterogeneousComplex: DefaultHeterogeneousComplex}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// SPDX-License-Identifier: MIT

package traits

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/katalvlaran/lvlinalg/element"
)

// Resolver runs the three promotion layers and memoises full resolutions.
// A Resolver is safe for concurrent use.
type Resolver struct {
	opts  Options
	cache sync.Map // cacheKey -> *Resolution
}

// NewResolver builds a Resolver from opts.
func NewResolver(opts ...Option) *Resolver {
	return &Resolver{opts: gatherOptions(opts...)}
}

var defaultResolver = NewResolver()

// DefaultResolver returns the process-wide resolver used by the package-level
// functions (no logging, homogeneous complex, cache on).
func DefaultResolver() *Resolver { return defaultResolver }

// inspect probes pt on p and logs malformed points.
func (r *Resolver) inspect(p any, pt point) probe {
	pr := inspect(p, pt)
	if !pr.valid() {
		r.bypass(p, pt, pr.reason)
	}

	return pr
}

// bypass records that a customization was ignored in favour of the default.
func (r *Resolver) bypass(p any, pt point, reason string) {
	r.opts.logger.Debug().
		Str("policy", fmt.Sprintf("%T", p)).
		Str("point", pt.name()).
		Str("reason", reason).
		Msg("customization bypassed, using default rule")
}

// cacheKey identifies one resolution. Only policies held by value can be part
// of a key: a pointer, map, channel or interface inside the policy could be
// mutated behind the cache.
type cacheKey struct {
	policy reflect.Type
	value  any
	op     element.Op
	left   ObjectType
	right  ObjectType
}

func (r *Resolver) keyOf(p any, op element.Op, left, right ObjectType) (cacheKey, bool) {
	if !r.opts.cache {
		return cacheKey{}, false
	}
	if p == nil {
		p = Default{}
	}
	if !heldByValue(reflect.TypeOf(p)) {
		return cacheKey{}, false
	}

	return cacheKey{policy: reflect.TypeOf(p), value: p, op: op, left: left, right: right}, true
}

// heldByValue reports whether values of t compare by content and reach no
// shared mutable state.
func heldByValue(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return heldByValue(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !heldByValue(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (r *Resolver) cached(key cacheKey) (*Resolution, bool) {
	v, ok := r.cache.Load(key)
	if !ok {
		return nil, false
	}
	res := *v.(*Resolution)

	return &res, true
}

func (r *Resolver) store(key cacheKey, res *Resolution) {
	r.opts.logger.Debug().
		Str("resolution", res.String()).
		Msg("resolution cached")
	cp := *res
	r.cache.Store(key, &cp)
}

// Cached returns the number of memoised resolutions.
func (r *Resolver) Cached() int {
	n := 0
	r.cache.Range(func(_, _ any) bool {
		n++
		return true
	})

	return n
}

// Reset drops every memoised resolution.
func (r *Resolver) Reset() { r.cache.Clear() }

// SPDX-License-Identifier: MIT
// Package element: the element-type registry.
//
// Purpose:
//   - Single source of truth for "which Go types may be matrix elements".
//   - Built-in numeric types are registered at package initialisation.
//   - User-defined arithmetic-like types (e.g. `type Celsius float64`) are
//     admitted explicitly through Register / RegisterComplex.
//
// Concurrency:
//   - Registration and lookup are guarded by a RWMutex; descriptors are
//     immutable once published.

package element

import (
	"reflect"
	"sort"
	"sync"
)

var (
	regMu    sync.RWMutex
	byGo     = make(map[reflect.Type]Type)
	byName   = make(map[string]Type)
	builtins = make(map[Kind]Type)
)

// Built-in element types.
var (
	Int8       = mustBuiltin(registerReal[int8]("int8", true))
	Int16      = mustBuiltin(registerReal[int16]("int16", true))
	Int32      = mustBuiltin(registerReal[int32]("int32", true))
	Int64      = mustBuiltin(registerReal[int64]("int64", true))
	Int        = mustBuiltin(registerReal[int]("int", true))
	Uint8      = mustBuiltin(registerReal[uint8]("uint8", true))
	Uint16     = mustBuiltin(registerReal[uint16]("uint16", true))
	Uint32     = mustBuiltin(registerReal[uint32]("uint32", true))
	Uint64     = mustBuiltin(registerReal[uint64]("uint64", true))
	Uint       = mustBuiltin(registerReal[uint]("uint", true))
	Float32    = mustBuiltin(registerReal[float32]("float32", true))
	Float64    = mustBuiltin(registerReal[float64]("float64", true))
	Complex64  = mustBuiltin(registerComplex[complex64]("complex64", true))
	Complex128 = mustBuiltin(registerComplex[complex128]("complex128", true))
)

func mustBuiltin(t Type, err error) Type {
	if err != nil {
		panic(err)
	}

	return t
}

// Register admits a user-defined arithmetic type as a matrix element.
// An empty name defaults to the Go type's string form. Registering the same
// Go type twice returns the existing descriptor.
//
// Errors:
//   - ErrDuplicateName when name is already bound to another Go type.
func Register[T Real](name string) (Type, error) {
	return registerReal[T](name, false)
}

// RegisterComplex admits a user-defined complex type as a matrix element.
func RegisterComplex[T Complex](name string) (Type, error) {
	return registerComplex[T](name, false)
}

// MustRegister is like Register but panics on error. Intended for package
// level variable initialisation.
func MustRegister[T Real](name string) Type {
	t, err := Register[T](name)
	if err != nil {
		panic(err)
	}

	return t
}

func registerReal[T Real](name string, builtin bool) (Type, error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()

	return publish(rt, name, builtin, func(t Type) func(int) Buffer {
		return func(n int) Buffer { return &realBuffer[T]{t: t, data: make([]T, n)} }
	})
}

func registerComplex[T Complex](name string, builtin bool) (Type, error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()

	return publish(rt, name, builtin, func(t Type) func(int) Buffer {
		return func(n int) Buffer { return &complexBuffer[T]{t: t, data: make([]T, n)} }
	})
}

// publish interns a descriptor for rt under name.
func publish(rt reflect.Type, name string, builtin bool, factory func(Type) func(int) Buffer) (Type, error) {
	if name == "" {
		name = rt.String()
	}

	regMu.Lock()
	defer regMu.Unlock()

	if t, ok := byGo[rt]; ok {
		return t, nil
	}
	if _, taken := byName[name]; taken {
		return Type{}, elementErrorf("Register("+name+")", ErrDuplicateName)
	}

	d := &descriptor{name: name, kind: kindOf(rt.Kind()), rt: rt, builtin: builtin}
	t := Type{d: d}
	d.newBuffer = factory(t)

	byGo[rt] = t
	byName[name] = t
	if builtin {
		builtins[d.kind] = t
	}

	return t, nil
}

// Of returns the descriptor registered for T, or the zero Type when T has not
// been registered (IsMatrixElement then reports false).
func Of[T Number]() Type {
	rt := reflect.TypeOf((*T)(nil)).Elem()

	regMu.RLock()
	defer regMu.RUnlock()

	return byGo[rt]
}

// Lookup returns the descriptor registered under name.
func Lookup(name string) (Type, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	t, ok := byName[name]

	return t, ok
}

// BuiltinOf returns the predeclared element type of kind k (zero when k is Invalid).
func BuiltinOf(k Kind) Type {
	regMu.RLock()
	defer regMu.RUnlock()

	return builtins[k]
}

// Registered lists every registered element name in lexicographic order.
func Registered() []string {
	regMu.RLock()
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	regMu.RUnlock()
	sort.Strings(names)

	return names
}

// typeOfReflect returns the registered Type for rt, falling back to the
// built-in type of the same kind for unregistered derived types.
func typeOfReflect(rt reflect.Type) Type {
	regMu.RLock()
	t, ok := byGo[rt]
	regMu.RUnlock()
	if ok {
		return t
	}

	return BuiltinOf(kindOf(rt.Kind()))
}

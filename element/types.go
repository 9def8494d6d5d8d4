// SPDX-License-Identifier: MIT

// Package element: kinds, generic constraints and the Type descriptor.
package element

import (
	"reflect"
	"strconv"
)

// Signed is satisfied by signed integer types and types derived from them.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Unsigned is satisfied by unsigned integer types and types derived from them.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Float is satisfied by floating-point types and types derived from them.
type Float interface {
	~float32 | ~float64
}

// Real is the arithmetic (non-complex) part of the element universe.
type Real interface {
	Signed | Unsigned | Float
}

// Complex is satisfied by complex types and types derived from them.
type Complex interface {
	~complex64 | ~complex128
}

// Number is every Go type that may be registered as a matrix element.
type Number interface {
	Real | Complex
}

// Kind is the machine representation class of an element type.
type Kind uint8

// Element kinds. Invalid is the zero Kind.
const (
	Invalid Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindInt
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUint
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128

	numKinds
)

var kindNames = [numKinds]string{
	Invalid:        "invalid",
	KindInt8:       "int8",
	KindInt16:      "int16",
	KindInt32:      "int32",
	KindInt64:      "int64",
	KindInt:        "int",
	KindUint8:      "uint8",
	KindUint16:     "uint16",
	KindUint32:     "uint32",
	KindUint64:     "uint64",
	KindUint:       "uint",
	KindFloat32:    "float32",
	KindFloat64:    "float64",
	KindComplex64:  "complex64",
	KindComplex128: "complex128",
}

// String returns the Go spelling of the kind.
func (k Kind) String() string {
	if k >= numKinds {
		return kindNames[Invalid]
	}

	return kindNames[k]
}

// Valid reports whether k names a real element kind.
func (k Kind) Valid() bool { return k > Invalid && k < numKinds }

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool { return k >= KindInt8 && k <= KindInt }

// IsUnsigned reports whether k is an unsigned integer kind.
func (k Kind) IsUnsigned() bool { return k >= KindUint8 && k <= KindUint }

// IsInteger reports whether k is any integer kind.
func (k Kind) IsInteger() bool { return k.IsSigned() || k.IsUnsigned() }

// IsFloat reports whether k is float32 or float64.
func (k Kind) IsFloat() bool { return k == KindFloat32 || k == KindFloat64 }

// IsComplex reports whether k is complex64 or complex128.
func (k Kind) IsComplex() bool { return k == KindComplex64 || k == KindComplex128 }

// Bits returns the storage width in bits. Int and Uint follow the platform.
// For complex kinds it is the width of one component.
func (k Kind) Bits() int {
	switch k {
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32, KindComplex64:
		return 32
	case KindInt64, KindUint64, KindFloat64, KindComplex128:
		return 64
	case KindInt, KindUint:
		return strconv.IntSize
	default:
		return 0
	}
}

// kindOf maps a reflect.Kind onto an element Kind (Invalid when unsupported).
func kindOf(rk reflect.Kind) Kind {
	switch rk {
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Int:
		return KindInt
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Uint:
		return KindUint
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Complex64:
		return KindComplex64
	case reflect.Complex128:
		return KindComplex128
	default:
		return Invalid
	}
}

// Type describes one registered element type.
//   - Comparable with ==; the zero Type is "not an element".
//   - Two distinct Go types of the same Kind (float64 and a user-defined
//     `type Celsius float64`) are distinct Types.
type Type struct {
	d *descriptor
}

// descriptor is the interned payload behind a Type.
type descriptor struct {
	name      string
	kind      Kind
	rt        reflect.Type
	builtin   bool
	newBuffer func(n int) Buffer
}

// Name returns the registered name ("" for the zero Type).
func (t Type) Name() string {
	if t.d == nil {
		return ""
	}

	return t.d.name
}

// String implements fmt.Stringer.
func (t Type) String() string {
	if t.d == nil {
		return "<nil>"
	}

	return t.d.name
}

// Kind returns the representation class (Invalid for the zero Type).
func (t Type) Kind() Kind {
	if t.d == nil {
		return Invalid
	}

	return t.d.kind
}

// IsZero reports whether t is the zero Type.
func (t Type) IsZero() bool { return t.d == nil }

// IsBuiltin reports whether t is one of the predeclared Go numeric types.
func (t Type) IsBuiltin() bool { return t.d != nil && t.d.builtin }

// GoType returns the reflect.Type the descriptor was registered from.
func (t Type) GoType() reflect.Type {
	if t.d == nil {
		return nil
	}

	return t.d.rt
}

// Builtin returns the predeclared type sharing t's Kind.
func (t Type) Builtin() Type {
	return BuiltinOf(t.Kind())
}

// Component returns the component type of a complex type (float32 for
// complex64, float64 for complex128) and t itself otherwise.
func (t Type) Component() Type {
	switch t.Kind() {
	case KindComplex64:
		return Float32
	case KindComplex128:
		return Float64
	default:
		return t
	}
}

// IsMatrixElement reports whether t may be stored in an engine: a registered
// arithmetic type, or a registered complex type over one.
func IsMatrixElement(t Type) bool {
	return t.d != nil && t.d.kind.Valid() && t.d.newBuffer != nil
}

// ValidateElement returns ErrNotMatrixElement unless IsMatrixElement(t).
func ValidateElement(t Type) error {
	if !IsMatrixElement(t) {
		return elementErrorf("ValidateElement("+t.String()+")", ErrNotMatrixElement)
	}

	return nil
}

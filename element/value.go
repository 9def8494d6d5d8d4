// SPDX-License-Identifier: MIT
// Package element: Value, a scalar tagged with its element Type.
//
// Representation:
//   - signed integers live in i, unsigned in u, floats in f, complex in c.
//   - every Value is normalised to its type's width on construction, so a
//     float32 Value never carries more precision than a float32.

package element

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Value is an element of a registered Type. The zero Value has the zero Type.
type Value struct {
	t Type
	i int64
	u uint64
	f float64
	c complex128
}

// ValueOf wraps x. Unregistered derived types are tagged with the built-in
// type of the same kind.
func ValueOf[T Number](x T) Value {
	rv := reflect.ValueOf(x)
	t := typeOfReflect(rv.Type())
	k := t.Kind()
	switch {
	case k.IsSigned():
		return Value{t: t, i: rv.Int()}
	case k.IsUnsigned():
		return Value{t: t, u: rv.Uint()}
	case k.IsFloat():
		return Value{t: t, f: rv.Float()}
	default:
		return Value{t: t, c: rv.Complex()}
	}
}

// Zero returns the additive identity of t.
func Zero(t Type) Value { return Value{t: t} }

// Type returns the element type of v.
func (v Value) Type() Type { return v.t }

// Int64 returns v as int64 (truncating floats, dropping imaginary parts).
func (v Value) Int64() int64 {
	k := v.t.Kind()
	switch {
	case k.IsSigned():
		return v.i
	case k.IsUnsigned():
		return int64(v.u)
	case k.IsFloat():
		return int64(v.f)
	default:
		return int64(real(v.c))
	}
}

// Uint64 returns v as uint64.
func (v Value) Uint64() uint64 {
	k := v.t.Kind()
	switch {
	case k.IsSigned():
		return uint64(v.i)
	case k.IsUnsigned():
		return v.u
	case k.IsFloat():
		return uint64(v.f)
	default:
		return uint64(real(v.c))
	}
}

// Float64 returns v as float64 (real part for complex values).
func (v Value) Float64() float64 {
	k := v.t.Kind()
	switch {
	case k.IsSigned():
		return float64(v.i)
	case k.IsUnsigned():
		return float64(v.u)
	case k.IsFloat():
		return v.f
	default:
		return real(v.c)
	}
}

// Complex128 returns v as complex128.
func (v Value) Complex128() complex128 {
	if v.t.Kind().IsComplex() {
		return v.c
	}

	return complex(v.Float64(), 0)
}

// IsZero reports whether v equals the additive identity of its type.
func (v Value) IsZero() bool {
	return v.i == 0 && v.u == 0 && v.f == 0 && v.c == 0
}

// Equal reports whether v and o have the same type and the same value.
func (v Value) Equal(o Value) bool {
	return v.t == o.t && v.i == o.i && v.u == o.u && v.c == o.c &&
		(v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f)))
}

// Convert returns v represented in type to, wrapped or rounded to its width.
//
// Errors:
//   - ErrNotMatrixElement when to is not an element type.
//   - ErrLossyConversion when a complex value with non-zero imaginary part
//     is converted to a real type.
func (v Value) Convert(to Type) (Value, error) {
	if !IsMatrixElement(to) {
		return Value{}, elementErrorf("Convert", ErrNotMatrixElement)
	}
	if v.t == to {
		return v, nil
	}
	from := v.t.Kind()
	if from.IsComplex() && !to.Kind().IsComplex() && imag(v.c) != 0 {
		return Value{}, elementErrorf("Convert("+v.t.String()+"->"+to.String()+")", ErrLossyConversion)
	}

	k := to.Kind()
	out := Value{t: to}
	switch {
	case k.IsSigned():
		out.i = v.Int64()
	case k.IsUnsigned():
		out.u = v.Uint64()
	case k.IsFloat():
		out.f = v.Float64()
	default:
		out.c = v.Complex128()
	}

	return out.normalize(), nil
}

// As converts v to the registered type of T and returns it as a T.
func As[T Number](v Value) (T, error) {
	var zero T
	rt := reflect.TypeOf(zero)
	to := typeOfReflect(rt)
	cv, err := v.Convert(to)
	if err != nil {
		return zero, err
	}

	rv := reflect.New(rt).Elem()
	k := to.Kind()
	switch {
	case k.IsSigned():
		rv.SetInt(cv.i)
	case k.IsUnsigned():
		rv.SetUint(cv.u)
	case k.IsFloat():
		rv.SetFloat(cv.f)
	default:
		rv.SetComplex(cv.c)
	}

	return rv.Interface().(T), nil
}

// normalize wraps integers and rounds floats to the width of v's type.
func (v Value) normalize() Value {
	switch v.t.Kind() {
	case KindInt8:
		v.i = int64(int8(v.i))
	case KindInt16:
		v.i = int64(int16(v.i))
	case KindInt32:
		v.i = int64(int32(v.i))
	case KindInt:
		v.i = int64(int(v.i))
	case KindUint8:
		v.u = uint64(uint8(v.u))
	case KindUint16:
		v.u = uint64(uint16(v.u))
	case KindUint32:
		v.u = uint64(uint32(v.u))
	case KindUint:
		v.u = uint64(uint(v.u))
	case KindFloat32:
		v.f = float64(float32(v.f))
	case KindComplex64:
		v.c = complex128(complex64(v.c))
	}

	return v
}

// String formats v the way fmt formats the underlying Go value.
func (v Value) String() string {
	k := v.t.Kind()
	switch {
	case k.IsSigned():
		return strconv.FormatInt(v.i, 10)
	case k.IsUnsigned():
		return strconv.FormatUint(v.u, 10)
	case k == KindFloat32:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case k == KindFloat64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case k == KindComplex64:
		return fmt.Sprint(complex64(v.c))
	case k == KindComplex128:
		return fmt.Sprint(v.c)
	default:
		return "<invalid>"
	}
}

// SPDX-License-Identifier: MIT

package linalg

import (
	"github.com/katalvlaran/lvlinalg/element"
	"github.com/katalvlaran/lvlinalg/traits"
)

// Operand is implemented by *Matrix, *Vector and Scalar. The set is closed.
type Operand interface {
	ObjectType() traits.ObjectType
	String() string

	payload() traits.Operand
	operandPolicy() any
	operandResolver() *traits.Resolver
}

// Compile-time conformance.
var (
	_ Operand = (*Matrix)(nil)
	_ Operand = (*Vector)(nil)
	_ Operand = Scalar{}
)

// Scalar is a single element value carrying a policy.
type Scalar struct {
	v      element.Value
	policy any
}

// ScalarOf wraps x with the Default policy.
func ScalarOf[T element.Number](x T) Scalar {
	return Scalar{v: element.ValueOf(x), policy: traits.Default{}}
}

// NewScalar wraps v under policy p (nil means Default).
func NewScalar(v element.Value, p any) Scalar {
	if p == nil {
		p = traits.Default{}
	}

	return Scalar{v: v, policy: p}
}

// Value returns the wrapped element value.
func (s Scalar) Value() element.Value { return s.v }

// Policy returns the operation policy.
func (s Scalar) Policy() any { return s.policy }

// ObjectType returns scalar<T> under the scalar's policy. A scalar whose
// value type is not a matrix element yields a zero ObjectType, which the
// resolver rejects.
func (s Scalar) ObjectType() traits.ObjectType {
	t, err := traits.ScalarTypeOf(s.v.Type(), s.policy)
	if err != nil {
		return traits.ObjectType{}
	}

	return t
}

// String renders the value.
func (s Scalar) String() string { return s.v.String() }

func (s Scalar) payload() traits.Operand { return traits.ScalarOperand(s.v) }
func (s Scalar) operandPolicy() any { return s.policy }
func (s Scalar) operandResolver() *traits.Resolver { return nil }

// isNil reports a nil *Matrix or *Vector hidden in an Operand.
func isNil(o Operand) bool {
	switch x := o.(type) {
	case nil:
		return true
	case *Matrix:
		return x == nil || x.eng == nil
	case *Vector:
		return x == nil || x.eng == nil
	default:
		return false
	}
}

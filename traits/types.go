// SPDX-License-Identifier: MIT

package traits

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/lvlinalg/element"
	"github.com/katalvlaran/lvlinalg/engine"
)

// ObjectKind is the math-object rank of an operand.
type ObjectKind uint8

// Object kinds.
const (
	ScalarObject ObjectKind = iota + 1
	VectorObject
	MatrixObject
)

// String implements fmt.Stringer.
func (k ObjectKind) String() string {
	switch k {
	case ScalarObject:
		return "scalar"
	case VectorObject:
		return "vector"
	case MatrixObject:
		return "matrix"
	default:
		return "invalid"
	}
}

func kindOfCategory(c engine.Category) ObjectKind {
	switch c {
	case engine.CategoryScalar:
		return ScalarObject
	case engine.CategoryVector:
		return VectorObject
	case engine.CategoryMatrix:
		return MatrixObject
	default:
		return 0
	}
}

// ObjectType is the type of a math object: an engine type paired with the
// operation policy type.
type ObjectType struct {
	Kind   ObjectKind
	Engine engine.Type
	Policy reflect.Type
}

// TypeOf builds the ObjectType for engine type e under policy p. The kind is
// taken from the engine category.
func TypeOf(e engine.Type, p any) ObjectType {
	return ObjectType{Kind: kindOfCategory(e.Category()), Engine: e, Policy: PolicyType(p)}
}

// ScalarTypeOf builds the ObjectType of a scalar operand of element type t.
func ScalarTypeOf(t element.Type, p any) (ObjectType, error) {
	e, err := engine.ScalarType(t)
	if err != nil {
		return ObjectType{}, err
	}

	return TypeOf(e, p), nil
}

// Element returns the element type of the object.
func (t ObjectType) Element() element.Type { return t.Engine.Element() }

// IsZero reports whether t is the zero ObjectType.
func (t ObjectType) IsZero() bool { return t.Kind == 0 && t.Engine.IsZero() }

// Validate checks that the kind agrees with the engine category.
func (t ObjectType) Validate() error {
	if t.Engine.IsZero() || t.Kind == 0 || kindOfCategory(t.Engine.Category()) != t.Kind {
		return ErrInvalidObject
	}

	return nil
}

// String renders "matrix<fixed<float32,2,3>>"; non-default policies are
// appended after '@'.
func (t ObjectType) String() string {
	s := t.Kind.String() + "<" + t.Engine.String() + ">"
	if t.Policy != nil && t.Policy != defaultPolicyType {
		s += "@" + t.Policy.String()
	}

	return s
}

// Operand is the run-time payload of one side of an operation. Exactly one
// of Scalar, Vector, Matrix is meaningful, as selected by Kind.
type Operand struct {
	Kind   ObjectKind
	Scalar element.Value
	Vector engine.Vector
	Matrix engine.Matrix
}

// ScalarOperand wraps a scalar value.
func ScalarOperand(v element.Value) Operand { return Operand{Kind: ScalarObject, Scalar: v} }

// VectorOperand wraps a vector engine.
func VectorOperand(v engine.Vector) Operand { return Operand{Kind: VectorObject, Vector: v} }

// MatrixOperand wraps a matrix engine.
func MatrixOperand(m engine.Matrix) Operand { return Operand{Kind: MatrixObject, Matrix: m} }

// EngineType returns the engine type of the payload (scalar<T> for scalars).
func (o Operand) EngineType() engine.Type {
	switch o.Kind {
	case ScalarObject:
		t, _ := engine.ScalarType(o.Scalar.Type())
		return t
	case VectorObject:
		if o.Vector != nil {
			return o.Vector.Type()
		}
	case MatrixObject:
		if o.Matrix != nil {
			return o.Matrix.Type()
		}
	}

	return engine.Type{}
}

// ApplyFunc performs a resolved operation. For negation right is the zero
// Operand.
type ApplyFunc func(left, right Operand) (Operand, error)

// Customized records which layers used a policy customization.
type Customized struct {
	Element    bool
	Engine     bool
	Arithmetic bool
}

// Resolution is the result triple of an operation together with its
// implementation. Resolutions are immutable and safe for concurrent use.
type Resolution struct {
	Op      element.Op
	Left    ObjectType
	Right   ObjectType // zero for negation
	Element element.Type
	Engine  engine.Type
	Result  ObjectType
	Custom  Customized

	apply ApplyFunc
}

// Apply runs the resolved operation on run-time operands.
//
// Errors: ErrOperandMismatch when an operand's kind differs from the
// resolved one; ErrDimensionMismatch for incompatible run-time shapes;
// ErrDivideByZero for integer division by zero.
func (r *Resolution) Apply(left, right Operand) (Operand, error) {
	if left.Kind != r.Left.Kind || (!r.Op.Unary() && right.Kind != r.Right.Kind) {
		return Operand{}, traitsErrorf("Resolution.Apply("+r.Op.String()+")", ErrOperandMismatch)
	}

	return r.apply(left, right)
}

// String renders "matrix<A> + matrix<B> -> matrix<C>".
func (r *Resolution) String() string {
	if r.Op.Unary() {
		return fmt.Sprintf("-%s -> %s", r.Left, r.Result)
	}

	return fmt.Sprintf("%s %s %s -> %s", r.Left, r.Op, r.Right, r.Result)
}

// SPDX-License-Identifier: MIT
// Package linalg: operators.
//
// Every operator follows the same pipeline:
//  1. select the governing policy (traits.SelectPolicy);
//  2. resolve the operation on the operand object types (cached);
//  3. run the resolved implementation on the operand engines.
//
// Steps 1-2 fail before any allocation. Step 3 reports ErrDimensionMismatch
// for incompatible run-time shapes of dynamic operands and never returns a
// partial result. The Must* variants panic instead of returning an error.

package linalg

import (
	"github.com/katalvlaran/lvlinalg/element"
	"github.com/katalvlaran/lvlinalg/traits"
)

// ResultOf answers the type-level question for op on a and b without running
// the operation. For OpNeg b is ignored and may be nil.
func ResultOf(op element.Op, a, b Operand) (*traits.Resolution, error) {
	res, _, _, err := resolve(op, a, b)

	return res, err
}

// Apply resolves and runs op on a and b. For OpNeg b is ignored and may be
// nil. The result is a *Matrix, *Vector or Scalar carrying the selected
// policy.
func Apply(op element.Op, a, b Operand) (Operand, error) {
	res, p, r, err := resolve(op, a, b)
	if err != nil {
		return nil, err
	}
	var rhs traits.Operand
	if !op.Unary() {
		rhs = b.payload()
	}
	out, err := res.Apply(a.payload(), rhs)
	if err != nil {
		return nil, linalgErrorf(op.Name(), err)
	}

	return wrap(out, p, r)
}

func resolve(op element.Op, a, b Operand) (*traits.Resolution, any, *traits.Resolver, error) {
	tag := op.Name()
	if isNil(a) || (!op.Unary() && isNil(b)) {
		return nil, nil, nil, linalgErrorf(tag, ErrNilObject)
	}

	if op.Unary() {
		r := pickResolver(a, nil)
		res, err := resolverOf(r).ResolveUnary(a.operandPolicy(), op, a.ObjectType())
		if err != nil {
			return nil, nil, nil, linalgErrorf(tag, err)
		}
		return res, a.operandPolicy(), r, nil
	}

	p, err := traits.SelectPolicy(a.operandPolicy(), b.operandPolicy())
	if err != nil {
		return nil, nil, nil, linalgErrorf(tag, err)
	}
	r := pickResolver(a, b)
	res, err := resolverOf(r).Resolve(p, op, a.ObjectType(), b.ObjectType())
	if err != nil {
		return nil, nil, nil, linalgErrorf(tag, err)
	}

	return res, p, r, nil
}

// pickResolver prefers the left operand's resolver, then the right one's.
// A nil result stands for the default resolver.
func pickResolver(a, b Operand) *traits.Resolver {
	if r := a.operandResolver(); r != nil {
		return r
	}
	if b != nil {
		return b.operandResolver()
	}

	return nil
}

func resolverOf(r *traits.Resolver) *traits.Resolver {
	if r == nil {
		return traits.DefaultResolver()
	}

	return r
}

func wrap(out traits.Operand, p any, r *traits.Resolver) (Operand, error) {
	switch out.Kind {
	case traits.MatrixObject:
		if out.Matrix != nil {
			return &Matrix{eng: out.Matrix, policy: p, res: r}, nil
		}
	case traits.VectorObject:
		if out.Vector != nil {
			return &Vector{eng: out.Vector, policy: p, res: r}, nil
		}
	case traits.ScalarObject:
		return Scalar{v: out.Scalar, policy: p}, nil
	}

	return nil, linalgErrorf("Apply", ErrResultKind)
}

func asMatrix(o Operand, err error) (*Matrix, error) {
	if err != nil {
		return nil, err
	}
	m, ok := o.(*Matrix)
	if !ok {
		return nil, linalgErrorf("want matrix, got "+o.ObjectType().Kind.String(), ErrResultKind)
	}

	return m, nil
}

func asVector(o Operand, err error) (*Vector, error) {
	if err != nil {
		return nil, err
	}
	v, ok := o.(*Vector)
	if !ok {
		return nil, linalgErrorf("want vector, got "+o.ObjectType().Kind.String(), ErrResultKind)
	}

	return v, nil
}

// ---------- matrix operators ----------

// Add returns a + b.
func Add(a, b *Matrix) (*Matrix, error) { return asMatrix(Apply(element.OpAdd, a, b)) }

// Sub returns a - b.
func Sub(a, b *Matrix) (*Matrix, error) { return asMatrix(Apply(element.OpSub, a, b)) }

// Neg returns -a.
func Neg(a *Matrix) (*Matrix, error) { return asMatrix(Apply(element.OpNeg, a, nil)) }

// Mul returns the matrix product a·b.
//
// Errors: ErrDimensionMismatch when a.Cols() != b.Rows() (statically for two
// fixed operands, at run time otherwise).
func Mul(a, b *Matrix) (*Matrix, error) { return asMatrix(Apply(element.OpMul, a, b)) }

// MulVec returns the matrix-vector product a·v.
func MulVec(a *Matrix, v *Vector) (*Vector, error) { return asVector(Apply(element.OpMul, a, v)) }

// VecMul returns the vector-matrix product v·a.
func VecMul(v *Vector, a *Matrix) (*Vector, error) { return asVector(Apply(element.OpMul, v, a)) }

// Scale returns a·s.
func Scale(a *Matrix, s Scalar) (*Matrix, error) { return asMatrix(Apply(element.OpMul, a, s)) }

// ScaleLeft returns s·a.
func ScaleLeft(s Scalar, a *Matrix) (*Matrix, error) { return asMatrix(Apply(element.OpMul, s, a)) }

// Div returns a / s.
//
// Errors: ErrDivideByZero for a zero integer divisor.
func Div(a *Matrix, s Scalar) (*Matrix, error) { return asMatrix(Apply(element.OpDiv, a, s)) }

// ---------- vector operators ----------

// AddVec returns x + y.
func AddVec(x, y *Vector) (*Vector, error) { return asVector(Apply(element.OpAdd, x, y)) }

// SubVec returns x - y.
func SubVec(x, y *Vector) (*Vector, error) { return asVector(Apply(element.OpSub, x, y)) }

// NegVec returns -x.
func NegVec(x *Vector) (*Vector, error) { return asVector(Apply(element.OpNeg, x, nil)) }

// ScaleVec returns x·s.
func ScaleVec(x *Vector, s Scalar) (*Vector, error) { return asVector(Apply(element.OpMul, x, s)) }

// DivVec returns x / s.
func DivVec(x *Vector, s Scalar) (*Vector, error) { return asVector(Apply(element.OpDiv, x, s)) }

// Dot returns the inner product of x and y, accumulated in the element type
// the multiplication would promote to under the selected policy.
//
// Errors: ErrNilObject, ErrPolicyConflict, ErrDimensionMismatch, plus
// element-promotion errors.
func Dot(x, y *Vector) (Scalar, error) {
	if isNil(x) || isNil(y) {
		return Scalar{}, linalgErrorf("Dot", ErrNilObject)
	}
	p, err := traits.SelectPolicy(x.policy, y.policy)
	if err != nil {
		return Scalar{}, linalgErrorf("Dot", err)
	}
	elem, err := resolverOf(pickResolver(x, y)).ElementType(p, element.OpMul, x.Element(), y.Element())
	if err != nil {
		return Scalar{}, linalgErrorf("Dot", err)
	}
	s, err := traits.Dot(x.eng, y.eng, elem)
	if err != nil {
		return Scalar{}, linalgErrorf("Dot", err)
	}

	return Scalar{v: s, policy: p}, nil
}

// ---------- panicking variants ----------

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}

// MustAdd is Add that panics on error.
func MustAdd(a, b *Matrix) *Matrix { return must(Add(a, b)) }

// MustSub is Sub that panics on error.
func MustSub(a, b *Matrix) *Matrix { return must(Sub(a, b)) }

// MustNeg is Neg that panics on error.
func MustNeg(a *Matrix) *Matrix { return must(Neg(a)) }

// MustMul is Mul that panics on error, including a run-time inner-dimension
// mismatch of dynamic operands.
func MustMul(a, b *Matrix) *Matrix { return must(Mul(a, b)) }

// MustMulVec is MulVec that panics on error.
func MustMulVec(a *Matrix, v *Vector) *Vector { return must(MulVec(a, v)) }

// MustVecMul is VecMul that panics on error.
func MustVecMul(v *Vector, a *Matrix) *Vector { return must(VecMul(v, a)) }

// MustScale is Scale that panics on error.
func MustScale(a *Matrix, s Scalar) *Matrix { return must(Scale(a, s)) }

// MustDiv is Div that panics on error.
func MustDiv(a *Matrix, s Scalar) *Matrix { return must(Div(a, s)) }

// MustAddVec is AddVec that panics on error.
func MustAddVec(x, y *Vector) *Vector { return must(AddVec(x, y)) }

// MustDot is Dot that panics on error.
func MustDot(x, y *Vector) Scalar { return must(Dot(x, y)) }

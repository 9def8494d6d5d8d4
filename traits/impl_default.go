// SPDX-License-Identifier: MIT
// Package traits: default kernels.
//
// Contract:
//   - Shapes are checked before the result is allocated; a mismatch returns
//     ErrDimensionMismatch and no partial result.
//   - Loops run i→j (→k) so results are reproducible.
//   - Scalar arithmetic happens in the resolved element type; products
//     accumulate left to right with no compensation.
//
// Complexity:
//   - elementwise/scale/negate: O(r*c); matmul: O(r*k*c); matvec/vecmat: O(r*c).

package traits

import (
	"github.com/katalvlaran/lvlinalg/element"
	"github.com/katalvlaran/lvlinalg/engine"
)

// defaultApply selects the default kernel for op on the given operand kinds.
//
// Dispatch order: negation, element-wise +/-, scalar scaling (either side),
// then the three product shapes. Operand kinds were validated by the engine
// layer, so the fallthrough case is vector*matrix.
func defaultApply(op element.Op, lk, rk ObjectKind, result engine.Type) ApplyFunc {
	switch {
	case op == element.OpNeg:
		return func(a, _ Operand) (Operand, error) { return negate(a, result) }
	case op == element.OpAdd || op == element.OpSub:
		if lk == VectorObject {
			return func(a, b Operand) (Operand, error) { return vectorElementwise(op, a.Vector, b.Vector, result) }
		}
		return func(a, b Operand) (Operand, error) { return matrixElementwise(op, a.Matrix, b.Matrix, result) }
	case lk == ScalarObject:
		return func(a, b Operand) (Operand, error) { return scale(op, a.Scalar, b, result, true) }
	case rk == ScalarObject:
		return func(a, b Operand) (Operand, error) { return scale(op, b.Scalar, a, result, false) }
	case lk == MatrixObject && rk == MatrixObject:
		return func(a, b Operand) (Operand, error) { return matMul(a.Matrix, b.Matrix, result) }
	case lk == MatrixObject:
		return func(a, b Operand) (Operand, error) { return matVec(a.Matrix, b.Vector, result) }
	default:
		return func(a, b Operand) (Operand, error) { return vecMat(a.Vector, b.Matrix, result) }
	}
}

// matrixElementwise computes a op b cell by cell.
//
// Inputs: two same-shape matrix engines and the resolved result type.
// Errors: ErrNilEngine, ErrDimensionMismatch, element conversion errors.
// Complexity: O(r*c) time, one r×c allocation.
func matrixElementwise(op element.Op, a, b engine.Matrix, result engine.Type) (Operand, error) {
	tag := op.Name()
	// 1) Run-time shapes must agree before anything is allocated.
	if err := engine.ValidateBinarySameShape(a, b); err != nil {
		return Operand{}, traitsErrorf(tag, err)
	}
	dst, err := engine.New(result, a.Rows(), a.Cols())
	if err != nil {
		return Operand{}, traitsErrorf(tag, err)
	}
	// 2) Combine in the result element type, row by row.
	elem := result.Element()
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			x, err := a.At(i, j)
			if err != nil {
				return Operand{}, traitsErrorf(tag, err)
			}
			y, err := b.At(i, j)
			if err != nil {
				return Operand{}, traitsErrorf(tag, err)
			}
			z, err := element.Apply(op, x, y, elem)
			if err != nil {
				return Operand{}, traitsErrorf(tag, err)
			}
			if err = dst.Set(i, j, z); err != nil {
				return Operand{}, traitsErrorf(tag, err)
			}
		}
	}

	return MatrixOperand(dst), nil
}

// vectorElementwise computes a op b entry by entry.
//
// Inputs: two equal-length vector engines and the resolved result type.
// Complexity: O(n).
func vectorElementwise(op element.Op, a, b engine.Vector, result engine.Type) (Operand, error) {
	tag := op.Name()
	if err := engine.ValidateSameLen(a, b); err != nil {
		return Operand{}, traitsErrorf(tag, err)
	}
	dst, err := engine.NewVector(result, a.Len())
	if err != nil {
		return Operand{}, traitsErrorf(tag, err)
	}
	elem := result.Element()
	for i := 0; i < a.Len(); i++ {
		x, err := a.AtIndex(i)
		if err != nil {
			return Operand{}, traitsErrorf(tag, err)
		}
		y, err := b.AtIndex(i)
		if err != nil {
			return Operand{}, traitsErrorf(tag, err)
		}
		z, err := element.Apply(op, x, y, elem)
		if err != nil {
			return Operand{}, traitsErrorf(tag, err)
		}
		if err = dst.SetIndex(i, z); err != nil {
			return Operand{}, traitsErrorf(tag, err)
		}
	}

	return VectorOperand(dst), nil
}

// scale applies s op x (scalarLeft) or x op s to every entry of x.
func scale(op element.Op, s element.Value, x Operand, result engine.Type, scalarLeft bool) (Operand, error) {
	tag := op.Name()
	elem := result.Element()
	f := func(v element.Value) (element.Value, error) {
		if scalarLeft {
			return element.Apply(op, s, v, elem)
		}
		return element.Apply(op, v, s, elem)
	}

	switch x.Kind {
	case MatrixObject:
		m := x.Matrix
		if err := engine.ValidateNotNil(m); err != nil {
			return Operand{}, traitsErrorf(tag, err)
		}
		dst, err := engine.New(result, m.Rows(), m.Cols())
		if err != nil {
			return Operand{}, traitsErrorf(tag, err)
		}
		for i := 0; i < m.Rows(); i++ {
			for j := 0; j < m.Cols(); j++ {
				v, err := m.At(i, j)
				if err != nil {
					return Operand{}, traitsErrorf(tag, err)
				}
				if v, err = f(v); err != nil {
					return Operand{}, traitsErrorf(tag, err)
				}
				if err = dst.Set(i, j, v); err != nil {
					return Operand{}, traitsErrorf(tag, err)
				}
			}
		}
		return MatrixOperand(dst), nil

	case VectorObject:
		vec := x.Vector
		if err := engine.ValidateVectorNotNil(vec); err != nil {
			return Operand{}, traitsErrorf(tag, err)
		}
		dst, err := engine.NewVector(result, vec.Len())
		if err != nil {
			return Operand{}, traitsErrorf(tag, err)
		}
		for i := 0; i < vec.Len(); i++ {
			v, err := vec.AtIndex(i)
			if err != nil {
				return Operand{}, traitsErrorf(tag, err)
			}
			if v, err = f(v); err != nil {
				return Operand{}, traitsErrorf(tag, err)
			}
			if err = dst.SetIndex(i, v); err != nil {
				return Operand{}, traitsErrorf(tag, err)
			}
		}
		return VectorOperand(dst), nil

	default:
		return Operand{}, traitsErrorf(tag, ErrIncompatibleOperands)
	}
}

// negate flips the sign of every entry in the result element type.
func negate(a Operand, result engine.Type) (Operand, error) {
	const tag = "Negation"
	elem := result.Element()
	switch a.Kind {
	case ScalarObject:
		v, err := element.Negate(a.Scalar, elem)
		if err != nil {
			return Operand{}, traitsErrorf(tag, err)
		}
		return ScalarOperand(v), nil

	case VectorObject:
		if err := engine.ValidateVectorNotNil(a.Vector); err != nil {
			return Operand{}, traitsErrorf(tag, err)
		}
		dst, err := engine.NewVector(result, a.Vector.Len())
		if err != nil {
			return Operand{}, traitsErrorf(tag, err)
		}
		for i := 0; i < a.Vector.Len(); i++ {
			v, err := a.Vector.AtIndex(i)
			if err != nil {
				return Operand{}, traitsErrorf(tag, err)
			}
			if v, err = element.Negate(v, elem); err != nil {
				return Operand{}, traitsErrorf(tag, err)
			}
			if err = dst.SetIndex(i, v); err != nil {
				return Operand{}, traitsErrorf(tag, err)
			}
		}
		return VectorOperand(dst), nil

	default:
		m := a.Matrix
		if err := engine.ValidateNotNil(m); err != nil {
			return Operand{}, traitsErrorf(tag, err)
		}
		dst, err := engine.New(result, m.Rows(), m.Cols())
		if err != nil {
			return Operand{}, traitsErrorf(tag, err)
		}
		for i := 0; i < m.Rows(); i++ {
			for j := 0; j < m.Cols(); j++ {
				v, err := m.At(i, j)
				if err != nil {
					return Operand{}, traitsErrorf(tag, err)
				}
				if v, err = element.Negate(v, elem); err != nil {
					return Operand{}, traitsErrorf(tag, err)
				}
				if err = dst.Set(i, j, v); err != nil {
					return Operand{}, traitsErrorf(tag, err)
				}
			}
		}
		return MatrixOperand(dst), nil
	}
}

// dot accumulates Σ x(k)*y(k) in elem, left to right.
//
// Implementation: every product and partial sum is rounded to elem, so
// integer results wrap and float results carry no compensation.
// Complexity: O(n).
func dot(n int, x, y func(k int) (element.Value, error), elem element.Type) (element.Value, error) {
	acc := element.Zero(elem)
	for k := 0; k < n; k++ {
		a, err := x(k)
		if err != nil {
			return element.Value{}, err
		}
		b, err := y(k)
		if err != nil {
			return element.Value{}, err
		}
		p, err := element.Apply(element.OpMul, a, b, elem)
		if err != nil {
			return element.Value{}, err
		}
		if acc, err = element.Apply(element.OpAdd, acc, p, elem); err != nil {
			return element.Value{}, err
		}
	}

	return acc, nil
}

// matMul computes the r×c product of a (r×k) and b (k×c).
//
// Inputs: conformable matrix engines and the resolved result type.
// Errors: ErrNilEngine, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(r*k*c) time, one r×c allocation.
func matMul(a, b engine.Matrix, result engine.Type) (Operand, error) {
	const tag = "Multiplication"
	// 1) Inner dimensions must agree.
	if err := engine.ValidateMulCompatible(a, b); err != nil {
		return Operand{}, traitsErrorf(tag, err)
	}
	dst, err := engine.New(result, a.Rows(), b.Cols())
	if err != nil {
		return Operand{}, traitsErrorf(tag, err)
	}
	// 2) Each cell is row i of a dotted with column j of b.
	elem := result.Element()
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			s, err := dot(a.Cols(),
				func(k int) (element.Value, error) { return a.At(i, k) },
				func(k int) (element.Value, error) { return b.At(k, j) },
				elem)
			if err != nil {
				return Operand{}, traitsErrorf(tag, err)
			}
			if err = dst.Set(i, j, s); err != nil {
				return Operand{}, traitsErrorf(tag, err)
			}
		}
	}

	return MatrixOperand(dst), nil
}

// matVec computes a·v for an r×c matrix and a length-c vector.
//
// Errors: ErrNilEngine, ErrDimensionMismatch (v.Len != a.Cols).
// Complexity: O(r*c).
func matVec(a engine.Matrix, v engine.Vector, result engine.Type) (Operand, error) {
	const tag = "Multiplication"
	if err := engine.ValidateNotNil(a); err != nil {
		return Operand{}, traitsErrorf(tag, err)
	}
	if err := engine.ValidateVecLen(v, a.Cols()); err != nil {
		return Operand{}, traitsErrorf(tag, err)
	}
	dst, err := engine.NewVector(result, a.Rows())
	if err != nil {
		return Operand{}, traitsErrorf(tag, err)
	}
	elem := result.Element()
	for i := 0; i < a.Rows(); i++ {
		s, err := dot(a.Cols(),
			func(k int) (element.Value, error) { return a.At(i, k) },
			v.AtIndex,
			elem)
		if err != nil {
			return Operand{}, traitsErrorf(tag, err)
		}
		if err = dst.SetIndex(i, s); err != nil {
			return Operand{}, traitsErrorf(tag, err)
		}
	}

	return VectorOperand(dst), nil
}

// vecMat computes v·b for a length-r vector and an r×c matrix.
//
// Errors: ErrNilEngine, ErrDimensionMismatch (v.Len != b.Rows).
// Complexity: O(r*c).
func vecMat(v engine.Vector, b engine.Matrix, result engine.Type) (Operand, error) {
	const tag = "Multiplication"
	if err := engine.ValidateNotNil(b); err != nil {
		return Operand{}, traitsErrorf(tag, err)
	}
	if err := engine.ValidateVecLen(v, b.Rows()); err != nil {
		return Operand{}, traitsErrorf(tag, err)
	}
	dst, err := engine.NewVector(result, b.Cols())
	if err != nil {
		return Operand{}, traitsErrorf(tag, err)
	}
	elem := result.Element()
	for j := 0; j < b.Cols(); j++ {
		s, err := dot(b.Rows(),
			v.AtIndex,
			func(k int) (element.Value, error) { return b.At(k, j) },
			elem)
		if err != nil {
			return Operand{}, traitsErrorf(tag, err)
		}
		if err = dst.SetIndex(j, s); err != nil {
			return Operand{}, traitsErrorf(tag, err)
		}
	}

	return VectorOperand(dst), nil
}

// Dot computes the inner product of two equal-length vectors in element
// type elem.
//
// Inputs: vector engines of any element types; entries are converted to
// elem before multiplying.
// Returns: Σ x[k]*y[k], or the zero of elem for empty vectors.
// Errors: ErrDimensionMismatch, ErrNilEngine.
// Complexity: O(n), no allocation beyond the result value.
func Dot(x, y engine.Vector, elem element.Type) (element.Value, error) {
	// Length check first; dot assumes equal lengths.
	if err := engine.ValidateSameLen(x, y); err != nil {
		return element.Value{}, traitsErrorf("Dot", err)
	}
	s, err := dot(x.Len(), x.AtIndex, y.AtIndex, elem)
	if err != nil {
		return element.Value{}, traitsErrorf("Dot", err)
	}

	return s, nil
}

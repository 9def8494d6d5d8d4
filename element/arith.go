// SPDX-License-Identifier: MIT
// Package element: scalar arithmetic in a target type.
//
// Both operands are first converted to the target type, then combined with
// Go's native operator for that kind and normalised to the target width.
// This keeps every intermediate in the promoted type, so an accumulation in
// float32 rounds like a float32 accumulation would.

package element

// Apply computes a op b in type to.
//
// Errors:
//   - ErrUnknownOp for OpNeg or an invalid op (use Negate for negation).
//   - ErrNotMatrixElement / ErrLossyConversion from conversion.
//   - ErrDivideByZero for integer division by zero.
func Apply(op Op, a, b Value, to Type) (Value, error) {
	if !op.Valid() || op.Unary() {
		return Value{}, elementErrorf("Apply", ErrUnknownOp)
	}
	ca, err := a.Convert(to)
	if err != nil {
		return Value{}, err
	}
	cb, err := b.Convert(to)
	if err != nil {
		return Value{}, err
	}

	out := Value{t: to}
	k := to.Kind()
	switch {
	case k.IsSigned():
		if op == OpDiv && cb.i == 0 {
			return Value{}, elementErrorf("Apply("+op.String()+")", ErrDivideByZero)
		}
		out.i = applySigned(op, ca.i, cb.i)
	case k.IsUnsigned():
		if op == OpDiv && cb.u == 0 {
			return Value{}, elementErrorf("Apply("+op.String()+")", ErrDivideByZero)
		}
		out.u = applyUnsigned(op, ca.u, cb.u)
	case k.IsFloat():
		out.f = applyFloat(op, ca.f, cb.f)
	default:
		out.c = applyComplex(op, ca.c, cb.c)
	}

	return out.normalize(), nil
}

// Negate computes -a in type to.
func Negate(a Value, to Type) (Value, error) {
	ca, err := a.Convert(to)
	if err != nil {
		return Value{}, err
	}

	out := Value{t: to}
	k := to.Kind()
	switch {
	case k.IsSigned():
		out.i = -ca.i
	case k.IsUnsigned():
		out.u = -ca.u
	case k.IsFloat():
		out.f = -ca.f
	default:
		out.c = -ca.c
	}

	return out.normalize(), nil
}

func applySigned(op Op, a, b int64) int64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	default:
		return a / b
	}
}

func applyUnsigned(op Op, a, b uint64) uint64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	default:
		return a / b
	}
}

func applyFloat(op Op, a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	default:
		return a / b
	}
}

func applyComplex(op Op, a, b complex128) complex128 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	default:
		return a / b
	}
}

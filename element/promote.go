// SPDX-License-Identifier: MIT
// Package element: the built-in promotion rule.
//
// Rule (no customization in play):
//   - identical types promote to themselves (derived types are preserved).
//   - float beats integer; the wider float wins.
//   - same-signedness integers: the wider wins.
//   - mixed signedness: the unsigned operand if it is at least as wide as the
//     signed one, otherwise the signed operand.
//   - equal width, distinct types: the built-in of that kind (int64 over int).
//   - complex(T1)∘complex(T2) → complex(promote(T1,T2)); T1 must equal T2
//     unless WithHeterogeneousComplex is set.
//   - complex(T1)∘T2 → complex(promote(T1,T2)).
//   - negation returns the operand type.
//
// Determinism:
//   - Pure function of descriptors. Commutative for +, -, *, /.

package element

// Promote computes the default result element type of t1 op t2.
// For OpNeg, t2 is ignored.
//
// Errors:
//   - ErrUnknownOp, ErrNotMatrixElement, ErrHeterogeneousComplex.
func Promote(op Op, t1, t2 Type, opts ...Option) (Type, error) {
	if !op.Valid() {
		return Type{}, elementErrorf("Promote", ErrUnknownOp)
	}
	if op.Unary() {
		return PromoteUnary(op, t1)
	}
	if err := ValidateElement(t1); err != nil {
		return Type{}, elementErrorf("Promote", err)
	}
	if err := ValidateElement(t2); err != nil {
		return Type{}, elementErrorf("Promote", err)
	}
	if t1 == t2 {
		return t1, nil
	}

	o := gatherOptions(opts...)
	k1, k2 := t1.Kind(), t2.Kind()
	if k1.IsComplex() || k2.IsComplex() {
		return promoteComplex(t1, t2, o)
	}

	return promoteReal(t1, t2), nil
}

// PromoteUnary computes the default result element type of op t.
func PromoteUnary(op Op, t Type) (Type, error) {
	if !op.Unary() {
		return Type{}, elementErrorf("PromoteUnary", ErrUnknownOp)
	}
	if err := ValidateElement(t); err != nil {
		return Type{}, elementErrorf("PromoteUnary", err)
	}

	return t, nil
}

func promoteComplex(t1, t2 Type, o Options) (Type, error) {
	c1, c2 := t1.Component(), t2.Component()
	if t1.Kind().IsComplex() && t2.Kind().IsComplex() && c1 != c2 && !o.heterogeneousComplex {
		return Type{}, elementErrorf("Promote("+t1.String()+","+t2.String()+")", ErrHeterogeneousComplex)
	}
	// A derived complex type paired with its own component type keeps its identity.
	if t1.Kind().IsComplex() && c1 == t2 {
		return t1, nil
	}
	if t2.Kind().IsComplex() && c2 == t1 {
		return t2, nil
	}

	return complexOf(promoteReal(c1, c2)), nil
}

// complexOf maps a float component type onto its complex type.
func complexOf(t Type) Type {
	if t.Kind() == KindFloat32 {
		return Complex64
	}

	return Complex128
}

func promoteReal(t1, t2 Type) Type {
	if t1 == t2 {
		return t1
	}
	k1, k2 := t1.Kind(), t2.Kind()
	switch {
	case k1.IsFloat() && k2.IsFloat():
		return wider(t1, t2)
	case k1.IsFloat():
		return t1
	case k2.IsFloat():
		return t2
	case k1.IsSigned() == k2.IsSigned():
		return wider(t1, t2)
	}

	// Mixed signedness.
	u, s := t1, t2
	if k1.IsSigned() {
		u, s = t2, t1
	}
	if u.Kind().Bits() >= s.Kind().Bits() {
		return u
	}

	return s
}

// wider returns the operand with more bits; ties resolve to a built-in type,
// preferring the explicitly sized kind.
func wider(t1, t2 Type) Type {
	b1, b2 := t1.Kind().Bits(), t2.Kind().Bits()
	switch {
	case b1 > b2:
		return t1
	case b2 > b1:
		return t2
	}
	k1, k2 := t1.Kind(), t2.Kind()
	if k1 == k2 {
		return t1.Builtin()
	}
	if k1 == KindInt || k1 == KindUint {
		return t2.Builtin()
	}

	return t1.Builtin()
}

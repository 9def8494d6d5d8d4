// SPDX-License-Identifier: MIT

package traits

import (
	"reflect"

	"github.com/katalvlaran/lvlinalg/element"
)

// Resolve computes the full resolution of left op right under policy p: the
// result element, engine and object types plus the implementation.
//
// A well-formed <Op>ArithmeticTraits customization is used verbatim;
// otherwise the engine and element layers are composed and a default kernel
// is chosen. Successful resolutions are memoised for policies held by value
// (no pointers, maps, channels, funcs or interfaces inside).
//
// Errors: ErrUnknownOp (including OpNeg, see ResolveUnary), ErrInvalidObject,
// ErrIncompatibleOperands, ErrDimensionMismatch, ErrHeterogeneousComplex.
func (r *Resolver) Resolve(p any, op element.Op, left, right ObjectType) (*Resolution, error) {
	if !op.Valid() || op.Unary() {
		return nil, traitsErrorf("Resolve", ErrUnknownOp)
	}

	return r.resolve(p, op, left, right)
}

// ResolveUnary is Resolve for negation.
func (r *Resolver) ResolveUnary(p any, op element.Op, operand ObjectType) (*Resolution, error) {
	if !op.Unary() {
		return nil, traitsErrorf("ResolveUnary", ErrUnknownOp)
	}

	return r.resolve(p, op, operand, ObjectType{})
}

func (r *Resolver) resolve(p any, op element.Op, left, right ObjectType) (*Resolution, error) {
	if err := left.Validate(); err != nil {
		return nil, traitsErrorf("Resolve: left", err)
	}
	if !op.Unary() {
		if err := right.Validate(); err != nil {
			return nil, traitsErrorf("Resolve: right", err)
		}
	}

	key, cacheable := r.keyOf(p, op, left, right)
	if cacheable {
		if res, ok := r.cached(key); ok {
			return res, nil
		}
	}

	res, err := r.compute(p, op, left, right)
	if err != nil {
		return nil, err
	}
	if cacheable {
		r.store(key, res)
	}

	return res, nil
}

func (r *Resolver) compute(p any, op element.Op, left, right ObjectType) (*Resolution, error) {
	pt := point{op: op, layer: layerArithmetic}
	if pr := r.inspect(p, pt); pr.usable() {
		res, err := r.customArithmetic(p, pt, pr, left, right)
		if err != nil || res != nil {
			return res, err
		}
	}

	eng, custom, err := r.engineType(p, op, left.Engine, right.Engine)
	if err != nil {
		return nil, err
	}
	result := TypeOf(eng, p)

	return &Resolution{
		Op:      op,
		Left:    left,
		Right:   right,
		Element: eng.Element(),
		Engine:  eng,
		Result:  result,
		Custom:  custom,
		apply:   defaultApply(op, left.Kind, right.Kind, eng),
	}, nil
}

// customArithmetic calls a usable arithmetic point. A nil Resolution with a
// nil error means "no opinion".
func (r *Resolver) customArithmetic(p any, pt point, pr probe, left, right ObjectType) (*Resolution, error) {
	args := []reflect.Value{reflect.ValueOf(left)}
	if !pt.op.Unary() {
		args = append(args, reflect.ValueOf(right))
	}
	out, err := pr.call(args...)
	if err != nil {
		return nil, traitsErrorf(pt.name(), err)
	}
	rv, ok := memberValue(out, memberResultType)
	if !ok {
		return nil, nil
	}
	av, ok := memberValue(out, memberApply)
	if !ok {
		return nil, nil
	}
	rt := rv.Interface().(ObjectType)
	apply := av.Interface().(ApplyFunc)
	switch {
	case rt.IsZero() || apply == nil:
		return nil, nil
	case rt.Validate() != nil:
		r.bypass(p, pt, "ResultType "+rt.String()+" is not a valid object type")
		return nil, nil
	case !rt.Engine.Traits().Owning:
		r.bypass(p, pt, "ResultType "+rt.String()+" does not own its storage")
		return nil, nil
	}

	return &Resolution{
		Op:      pt.op,
		Left:    left,
		Right:   right,
		Element: rt.Element(),
		Engine:  rt.Engine,
		Result:  rt,
		Custom:  Customized{Arithmetic: true},
		apply:   apply,
	}, nil
}

// Resolve runs the arithmetic layer on the default resolver.
func Resolve(p any, op element.Op, left, right ObjectType) (*Resolution, error) {
	return defaultResolver.Resolve(p, op, left, right)
}

// ResolveUnary runs the arithmetic layer for negation on the default resolver.
func ResolveUnary(p any, op element.Op, operand ObjectType) (*Resolution, error) {
	return defaultResolver.ResolveUnary(p, op, operand)
}

// AdditionArithmetic is Resolve for OpAdd.
func AdditionArithmetic(p any, left, right ObjectType) (*Resolution, error) {
	return defaultResolver.Resolve(p, element.OpAdd, left, right)
}

// SubtractionArithmetic is Resolve for OpSub.
func SubtractionArithmetic(p any, left, right ObjectType) (*Resolution, error) {
	return defaultResolver.Resolve(p, element.OpSub, left, right)
}

// MultiplicationArithmetic is Resolve for OpMul.
func MultiplicationArithmetic(p any, left, right ObjectType) (*Resolution, error) {
	return defaultResolver.Resolve(p, element.OpMul, left, right)
}

// DivisionArithmetic is Resolve for OpDiv.
func DivisionArithmetic(p any, left, right ObjectType) (*Resolution, error) {
	return defaultResolver.Resolve(p, element.OpDiv, left, right)
}

// NegationArithmetic is ResolveUnary for OpNeg.
func NegationArithmetic(p any, operand ObjectType) (*Resolution, error) {
	return defaultResolver.ResolveUnary(p, element.OpNeg, operand)
}

// SPDX-License-Identifier: MIT

package traits

import (
	"reflect"

	"github.com/katalvlaran/lvlinalg/element"
)

// ElementType computes the result element type of t1 op t2 under policy p.
// A well-formed <Op>ElementTraits customization wins; otherwise the default
// promotion rule applies. For OpNeg t2 is ignored.
//
// Inputs: any policy value (nil means Default), a valid operator and
// matrix element types.
// Returns: the result element type. A customization answering with the zero
// Type has no opinion; one answering with a non-element is bypassed.
// Complexity: O(1) after the first inspection of a policy point.
//
// Errors: ErrUnknownOp, ErrNotMatrixElement, ErrHeterogeneousComplex, or an
// error returned by the customization itself.
func (r *Resolver) ElementType(p any, op element.Op, t1, t2 element.Type) (element.Type, error) {
	t, _, err := r.elementType(p, op, t1, t2)

	return t, err
}

func (r *Resolver) elementType(p any, op element.Op, t1, t2 element.Type) (element.Type, bool, error) {
	// 1) Reject requests no policy could answer.
	if !op.Valid() {
		return element.Type{}, false, traitsErrorf("ElementType", ErrUnknownOp)
	}
	if err := element.ValidateElement(t1); err != nil {
		return element.Type{}, false, traitsErrorf("ElementType", err)
	}
	if !op.Unary() {
		if err := element.ValidateElement(t2); err != nil {
			return element.Type{}, false, traitsErrorf("ElementType", err)
		}
	}

	// 2) A usable customization is consulted first.
	pt := point{op: op, layer: layerElement}
	if pr := r.inspect(p, pt); pr.usable() {
		args := []reflect.Value{reflect.ValueOf(t1)}
		if !op.Unary() {
			args = append(args, reflect.ValueOf(t2))
		}
		out, err := pr.call(args...)
		if err != nil {
			return element.Type{}, false, traitsErrorf(pt.name(), err)
		}
		if mv, ok := memberValue(out, memberElementType); ok {
			et := mv.Interface().(element.Type)
			switch {
			case et.IsZero():
				// no opinion
			case !element.IsMatrixElement(et):
				r.bypass(p, pt, "ElementType is not a matrix element")
			default:
				return et, true, nil
			}
		}
	}

	// 3) Default promotion.
	var (
		t   element.Type
		err error
	)
	if op.Unary() {
		t, err = element.PromoteUnary(op, t1)
	} else {
		t, err = element.Promote(op, t1, t2, r.opts.promoteOptions()...)
	}
	if err != nil {
		return element.Type{}, false, traitsErrorf("ElementType", err)
	}

	return t, false, nil
}

// ElementType runs the element layer on the default resolver.
func ElementType(p any, op element.Op, t1, t2 element.Type) (element.Type, error) {
	return defaultResolver.ElementType(p, op, t1, t2)
}

// AdditionElement is ElementType for OpAdd.
func AdditionElement(p any, t1, t2 element.Type) (element.Type, error) {
	return defaultResolver.ElementType(p, element.OpAdd, t1, t2)
}

// SubtractionElement is ElementType for OpSub.
func SubtractionElement(p any, t1, t2 element.Type) (element.Type, error) {
	return defaultResolver.ElementType(p, element.OpSub, t1, t2)
}

// MultiplicationElement is ElementType for OpMul.
func MultiplicationElement(p any, t1, t2 element.Type) (element.Type, error) {
	return defaultResolver.ElementType(p, element.OpMul, t1, t2)
}

// DivisionElement is ElementType for OpDiv.
func DivisionElement(p any, t1, t2 element.Type) (element.Type, error) {
	return defaultResolver.ElementType(p, element.OpDiv, t1, t2)
}

// NegationElement is ElementType for OpNeg.
func NegationElement(p any, t element.Type) (element.Type, error) {
	return defaultResolver.ElementType(p, element.OpNeg, t, element.Type{})
}

// SPDX-License-Identifier: MIT
// Package traits: the engine-promotion layer.
//
// Default rule, applied to view-unwrapped (Effective) shapes:
//   - add/sub: same category; both fixed → shapes must match → fixed result;
//     otherwise dynamic.
//   - mul: scalar∘X and X∘scalar keep X's shape; M(R,K)·M(K,C) → fixed(R,C)
//     when both are fixed, else dynamic; M·v → vector of R; v·M → vector of C;
//     v·v is rejected.
//   - div: X/scalar only.
//   - neg: the operand's shape.
//   - results always own their storage; column-major only when every matrix
//     operand is effectively column-major.

package traits

import (
	"reflect"

	"github.com/katalvlaran/lvlinalg/element"
	"github.com/katalvlaran/lvlinalg/engine"
)

// EngineType computes the result engine type of e1 op e2 under policy p.
// For OpNeg e2 is ignored.
//
// Inputs: any policy value (nil means Default), a valid operator and
// non-zero engine types.
// Returns: an owning engine type. A well-formed <Op>EngineTraits answer wins
// unless it is zero (no opinion) or a view (bypassed); otherwise the element
// layer of the same policy feeds the default shape rule.
// Complexity: O(1).
//
// Errors: ErrUnknownOp, ErrInvalidObject, ErrIncompatibleOperands,
// ErrDimensionMismatch (statically known shapes disagree), plus element-layer
// errors.
func (r *Resolver) EngineType(p any, op element.Op, e1, e2 engine.Type) (engine.Type, error) {
	t, _, err := r.engineType(p, op, e1, e2)

	return t, err
}

func (r *Resolver) engineType(p any, op element.Op, e1, e2 engine.Type) (engine.Type, Customized, error) {
	// 1) Reject requests no policy could answer.
	if !op.Valid() {
		return engine.Type{}, Customized{}, traitsErrorf("EngineType", ErrUnknownOp)
	}
	if e1.IsZero() || (!op.Unary() && e2.IsZero()) {
		return engine.Type{}, Customized{}, traitsErrorf("EngineType", ErrInvalidObject)
	}

	// 2) A usable customization is consulted first.
	pt := point{op: op, layer: layerEngine}
	if pr := r.inspect(p, pt); pr.usable() {
		args := []reflect.Value{reflect.ValueOf(e1)}
		if !op.Unary() {
			args = append(args, reflect.ValueOf(e2))
		}
		out, err := pr.call(args...)
		if err != nil {
			return engine.Type{}, Customized{}, traitsErrorf(pt.name(), err)
		}
		if mv, ok := memberValue(out, memberEngineType); ok {
			et := mv.Interface().(engine.Type)
			switch {
			case et.IsZero():
				// no opinion
			case !et.Traits().Owning:
				r.bypass(p, pt, "EngineType "+et.String()+" does not own its storage")
			default:
				return et, Customized{Engine: true}, nil
			}
		}
	}

	// 3) Element layer, then the default shape rule.
	elem, custom, err := r.elementType(p, op, e1.Element(), e2.Element())
	if err != nil {
		return engine.Type{}, Customized{}, err
	}
	t, err := defaultEngine(op, e1, e2, elem)
	if err != nil {
		return engine.Type{}, Customized{}, traitsErrorf("EngineType("+e1.String()+" "+op.String()+" "+e2.String()+")", err)
	}

	return t, Customized{Element: custom}, nil
}

func defaultEngine(op element.Op, e1, e2 engine.Type, elem element.Type) (engine.Type, error) {
	s1 := e1.Effective()
	if op.Unary() {
		return shapeType(s1, elem, s1.Layout)
	}
	s2 := e2.Effective()
	layout := resultLayout(s1, s2)

	switch op {
	case element.OpAdd, element.OpSub:
		if s1.Category != s2.Category || s1.Category == engine.CategoryScalar {
			return engine.Type{}, ErrIncompatibleOperands
		}
		if !s1.Fixed || !s2.Fixed {
			return dynamicType(s1.Category, elem, layout)
		}
		if s1.Rows != s2.Rows || s1.Cols != s2.Cols || s1.Len != s2.Len {
			return engine.Type{}, ErrDimensionMismatch
		}
		return shapeType(s1, elem, layout)

	case element.OpMul:
		return multiplyEngine(s1, s2, elem, layout)

	case element.OpDiv:
		if s2.Category != engine.CategoryScalar || s1.Category == engine.CategoryScalar {
			return engine.Type{}, ErrIncompatibleOperands
		}
		return shapeType(s1, elem, s1.Layout)
	}

	return engine.Type{}, ErrUnknownOp
}

func multiplyEngine(s1, s2 engine.Shape, elem element.Type, layout engine.Layout) (engine.Type, error) {
	const (
		scalar = engine.CategoryScalar
		vector = engine.CategoryVector
		matrix = engine.CategoryMatrix
	)
	fixed := s1.Fixed && s2.Fixed

	switch c1, c2 := s1.Category, s2.Category; {
	case c1 == scalar && c2 == scalar:
		return engine.Type{}, ErrIncompatibleOperands
	case c1 == scalar:
		return shapeType(s2, elem, s2.Layout)
	case c2 == scalar:
		return shapeType(s1, elem, s1.Layout)

	case c1 == matrix && c2 == matrix:
		if !fixed {
			return engine.DynamicType(elem, engine.WithLayout(layout))
		}
		if s1.Cols != s2.Rows {
			return engine.Type{}, ErrDimensionMismatch
		}
		return engine.FixedType(elem, s1.Rows, s2.Cols, engine.WithLayout(layout))

	case c1 == matrix && c2 == vector:
		if !fixed {
			return engine.DynamicVectorType(elem)
		}
		if s1.Cols != s2.Len {
			return engine.Type{}, ErrDimensionMismatch
		}
		return engine.FixedVectorType(elem, s1.Rows)

	case c1 == vector && c2 == matrix:
		if !fixed {
			return engine.DynamicVectorType(elem)
		}
		if s1.Len != s2.Rows {
			return engine.Type{}, ErrDimensionMismatch
		}
		return engine.FixedVectorType(elem, s2.Cols)

	default:
		return engine.Type{}, ErrIncompatibleOperands
	}
}

// resultLayout is column-major only when every matrix operand is.
func resultLayout(shapes ...engine.Shape) engine.Layout {
	seen := false
	for _, s := range shapes {
		if s.Category != engine.CategoryMatrix {
			continue
		}
		if s.Layout != engine.ColumnMajor {
			return engine.RowMajor
		}
		seen = true
	}
	if seen {
		return engine.ColumnMajor
	}

	return engine.RowMajor
}

// shapeType builds an owning engine type with shape s.
func shapeType(s engine.Shape, elem element.Type, layout engine.Layout) (engine.Type, error) {
	switch s.Category {
	case engine.CategoryScalar:
		return engine.ScalarType(elem)
	case engine.CategoryVector:
		if s.Fixed {
			return engine.FixedVectorType(elem, s.Len)
		}
		return engine.DynamicVectorType(elem)
	case engine.CategoryMatrix:
		if s.Fixed {
			return engine.FixedType(elem, s.Rows, s.Cols, engine.WithLayout(layout))
		}
		return engine.DynamicType(elem, engine.WithLayout(layout))
	default:
		return engine.Type{}, ErrInvalidObject
	}
}

func dynamicType(c engine.Category, elem element.Type, layout engine.Layout) (engine.Type, error) {
	if c == engine.CategoryVector {
		return engine.DynamicVectorType(elem)
	}

	return engine.DynamicType(elem, engine.WithLayout(layout))
}

// EngineType runs the engine layer on the default resolver.
func EngineType(p any, op element.Op, e1, e2 engine.Type) (engine.Type, error) {
	return defaultResolver.EngineType(p, op, e1, e2)
}

// AdditionEngine is EngineType for OpAdd.
func AdditionEngine(p any, e1, e2 engine.Type) (engine.Type, error) {
	return defaultResolver.EngineType(p, element.OpAdd, e1, e2)
}

// SubtractionEngine is EngineType for OpSub.
func SubtractionEngine(p any, e1, e2 engine.Type) (engine.Type, error) {
	return defaultResolver.EngineType(p, element.OpSub, e1, e2)
}

// MultiplicationEngine is EngineType for OpMul.
func MultiplicationEngine(p any, e1, e2 engine.Type) (engine.Type, error) {
	return defaultResolver.EngineType(p, element.OpMul, e1, e2)
}

// DivisionEngine is EngineType for OpDiv.
func DivisionEngine(p any, e1, e2 engine.Type) (engine.Type, error) {
	return defaultResolver.EngineType(p, element.OpDiv, e1, e2)
}

// NegationEngine is EngineType for OpNeg.
func NegationEngine(p any, e engine.Type) (engine.Type, error) {
	return defaultResolver.EngineType(p, element.OpNeg, e, engine.Type{})
}

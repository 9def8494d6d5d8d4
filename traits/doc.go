// SPDX-License-Identifier: MIT

// Package traits resolves the result type and implementation of arithmetic
// on math objects, consulting user policies before built-in rules.
//
// Resolution runs in three layers, each of which a policy may customize per
// operator (Addition, Subtraction, Multiplication, Division, Negation):
//
//   - element layer: result element type of a scalar operation
//     (ElementType, AdditionElement, ...);
//   - engine layer: result storage engine type (EngineType, AdditionEngine, ...);
//   - arithmetic layer: result object type plus the callable performing the
//     operation (Resolve, ResolveUnary, AdditionArithmetic, ...).
//
// A policy is any Go value. Default declares nothing and gets the built-in
// rules everywhere. A customization point is a method or a func-typed field
// named "<Op><Layer>Traits":
//
//	type WidenFloat struct{}
//
//	type widened struct{ ElementType element.Type }
//
//	func (WidenFloat) AdditionElementTraits(a, b element.Type) widened {
//		if a == element.Float32 && b == element.Float32 {
//			return widened{element.Float64}
//		}
//		return widened{} // zero member: use the default rule
//	}
//
// Malformed points (wrong arity, parameter types or result members) are
// detected by ValidElementTraits / ValidEngineTraits / ValidArithmeticTraits,
// logged at debug level and bypassed: resolution proceeds exactly as if the
// policy declared nothing.
//
// Errors that a statically typed language would report at compile time
// (heterogeneous complex operands, fixed shapes that disagree, undefined
// operand combinations) are returned by the resolution functions before any
// storage is allocated. Run-time shape mismatches of dynamic operands are
// returned by Resolution.Apply as ErrDimensionMismatch.
package traits

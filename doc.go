// SPDX-License-Identifier: MIT

// Package lvlinalg resolves the result types of dense linear-algebra
// arithmetic and runs the operations on matrices and vectors.
//
// The module is organised in layers:
//
//	element/       element types (built-in and user-registered), Value,
//	                default element promotion
//	engine/        storage engines: fixed, dynamic, vectors, and non-owning
//	                transpose/submatrix/row/column views; engine type parsing
//	traits/        operation policies, customization-point validation and the
//	                element/engine/arithmetic resolution layers with caching
//	linalg/        Matrix, Vector and Scalar objects with +, -, unary -, *, /
//	                and gonum interop
//	cmd/lvlinalg/  CLI answering type-level queries (resolve, batch, elements)
//	examples/      runnable demos
//
// A policy customizes any layer for any operator by declaring a method or a
// func-typed field named "<Op><Layer>Traits"; everything it leaves out falls
// back to the built-in rules. See package traits for the protocol.
package lvlinalg

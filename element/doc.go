// SPDX-License-Identifier: MIT

// Package element describes the scalar types a matrix or vector may store.
//
// What:
//
//   - Kind / Type: runtime descriptors of element types. Built-in Go numeric
//     types are pre-registered (Int8 … Complex128); user-defined
//     arithmetic-like types join through Register / RegisterComplex.
//   - IsMatrixElement: the admission predicate every engine checks.
//   - Value: a scalar tagged with its Type, convertible between types.
//   - Buffer: typed contiguous storage backing the owning engines.
//   - Promote: the built-in promotion rule (usual arithmetic conversions plus
//     the homogeneous-complex rule) used when a policy supplies no override.
//   - Apply / Negate: scalar arithmetic carried out in a target type.
//
// Why:
//
//   - Go generics cannot compute a result type from two operand types, so the
//     promotion protocol works on descriptors. Descriptors are comparable and
//     cheap, which lets the traits package memoize every resolution.
//
// Determinism:
//
//   - Promotion is a pure function of descriptors and options. It never looks
//     at element values.
//
// Errors:
//
//   - ErrNotMatrixElement      type not registered (zero Type)
//   - ErrHeterogeneousComplex  complex operands with different component types
//   - ErrDivideByZero          integer division by zero
//   - ErrLossyConversion       complex value with non-zero imaginary part stored as real
package element

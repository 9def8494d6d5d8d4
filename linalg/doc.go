// SPDX-License-Identifier: MIT

// Package linalg provides Matrix, Vector and Scalar math objects and the
// arithmetic operators on them.
//
// A math object pairs a storage engine (package engine) with an operation
// policy. Operators select the governing policy of their operands, resolve
// the result element type, engine type and implementation through package
// traits, and run it:
//
//	a, _ := linalg.NewFixed([][]float32{{1, 2, 3}, {4, 5, 6}})
//	b, _ := linalg.NewFixed([][]float64{{1, 1, 1}, {1, 1, 1}})
//	c, _ := linalg.Add(a, b) // fixed<float64,2,3>
//
// Type-level failures (incompatible operands, conflicting policies, fixed
// shapes that disagree) are reported before anything is allocated.
// Run-time shape mismatches of dynamic operands are reported as
// ErrDimensionMismatch; the Must* variants panic instead.
//
// T, Sub, Row and Column return objects backed by views that borrow the
// storage of their source. Views are read-through and write-through, and
// are invalidated by resizing the source.
package linalg

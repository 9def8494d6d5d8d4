// SPDX-License-Identifier: MIT
// Package element: sentinel error set.
// Every message is prefixed with "element: ..."; callers match with errors.Is.

package element

import (
	"errors"
	"fmt"
)

var (
	// ErrNotMatrixElement indicates a type that is neither a registered
	// arithmetic type nor a registered complex type over one.
	ErrNotMatrixElement = errors.New("element: not a matrix element type")

	// ErrHeterogeneousComplex is returned by the default promotion rule when two
	// complex operands have different component types and heterogeneous complex
	// arithmetic has not been enabled.
	ErrHeterogeneousComplex = errors.New("element: heterogeneous complex operands")

	// ErrUnknownOp indicates an operator outside {add, sub, mul, div, neg}.
	ErrUnknownOp = errors.New("element: unknown operator")

	// ErrDivideByZero signals integer division by zero.
	ErrDivideByZero = errors.New("element: integer division by zero")

	// ErrLossyConversion signals storing a complex value with a non-zero
	// imaginary part into a real element type.
	ErrLossyConversion = errors.New("element: lossy conversion")

	// ErrDuplicateName is returned when a registration reuses a name already
	// bound to a different Go type.
	ErrDuplicateName = errors.New("element: duplicate element name")
)

// elementErrorf wraps err with an operation tag, preserving it for errors.Is.
func elementErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

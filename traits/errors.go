// SPDX-License-Identifier: MIT
// Package traits: sentinel error set.
// Every message is prefixed with "traits: ..."; callers match with errors.Is.
// Sentinels owned by lower layers are re-exported so that a single import
// covers every resolution failure.

package traits

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlinalg/element"
	"github.com/katalvlaran/lvlinalg/engine"
)

var (
	// ErrPolicyConflict indicates two operands carrying different non-default
	// operation policies.
	ErrPolicyConflict = errors.New("traits: conflicting operation policies")

	// ErrIncompatibleOperands indicates an operand combination the operator does
	// not define (vector·vector, matrix+vector, scalar/matrix, ...).
	ErrIncompatibleOperands = errors.New("traits: incompatible operands")

	// ErrInvalidObject indicates an ObjectType whose kind disagrees with its
	// engine category, or a zero engine type.
	ErrInvalidObject = errors.New("traits: invalid object type")

	// ErrOperandMismatch indicates run-time operands that do not match the
	// object types a Resolution was computed for.
	ErrOperandMismatch = errors.New("traits: operand does not match resolution")
)

// Re-exported lower-layer sentinels.
var (
	ErrNotMatrixElement     = element.ErrNotMatrixElement
	ErrHeterogeneousComplex = element.ErrHeterogeneousComplex
	ErrUnknownOp            = element.ErrUnknownOp
	ErrDivideByZero         = element.ErrDivideByZero
	ErrDimensionMismatch    = engine.ErrDimensionMismatch
)

// traitsErrorf wraps err with a resolution tag.
func traitsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

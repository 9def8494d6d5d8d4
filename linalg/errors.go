// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// Every message is prefixed with "linalg: ..."; callers match with errors.Is.
// Lower-layer sentinels are re-exported so one import covers every failure.

package linalg

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlinalg/element"
	"github.com/katalvlaran/lvlinalg/engine"
	"github.com/katalvlaran/lvlinalg/traits"
)

var (
	// ErrNilObject indicates a nil *Matrix or *Vector operand.
	ErrNilObject = errors.New("linalg: nil object")

	// ErrRagged indicates input rows of unequal length.
	ErrRagged = errors.New("linalg: ragged rows")

	// ErrEmpty indicates an empty input where a non-empty one is required.
	ErrEmpty = errors.New("linalg: empty input")

	// ErrResultKind indicates an operation whose result is not the object kind
	// the typed operator returns (possible with custom arithmetic policies).
	ErrResultKind = errors.New("linalg: unexpected result kind")
)

// Re-exported lower-layer sentinels.
var (
	ErrNotMatrixElement     = element.ErrNotMatrixElement
	ErrHeterogeneousComplex = element.ErrHeterogeneousComplex
	ErrDivideByZero         = element.ErrDivideByZero
	ErrLossyConversion      = element.ErrLossyConversion
	ErrDimensionMismatch    = engine.ErrDimensionMismatch
	ErrOutOfRange           = engine.ErrOutOfRange
	ErrReadOnly             = engine.ErrReadOnly
	ErrIncompatibleEngine   = engine.ErrIncompatibleEngine
	ErrPolicyConflict       = traits.ErrPolicyConflict
	ErrIncompatibleOperands = traits.ErrIncompatibleOperands
)

// linalgErrorf wraps err with an operation tag.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

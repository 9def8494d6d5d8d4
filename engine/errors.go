// SPDX-License-Identifier: MIT
// Package engine: sentinel error set.
// Every message is prefixed with "engine: ..."; callers match with errors.Is.
// Public accessors (At/Set/Resize) return these sentinels and never panic on
// user-triggered conditions.

package engine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlinalg/element"
)

var (
	// ErrInvalidDimensions indicates a non-positive static dimension or a
	// negative run-time dimension.
	ErrInvalidDimensions = errors.New("engine: invalid dimensions")

	// ErrOutOfRange indicates an index outside the engine bounds.
	ErrOutOfRange = errors.New("engine: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// or run-time dimensions that contradict a fixed engine type.
	ErrDimensionMismatch = errors.New("engine: dimension mismatch")

	// ErrIncompatibleEngine indicates an engine of the wrong kind or category
	// for the requested construction (e.g. a transpose of a vector).
	ErrIncompatibleEngine = errors.New("engine: incompatible engine kind")

	// ErrReadOnly is returned when writing through a view whose base engine
	// is not mutable.
	ErrReadOnly = errors.New("engine: engine is read-only")

	// ErrNilEngine indicates a nil engine argument.
	ErrNilEngine = errors.New("engine: nil engine")

	// ErrParse indicates a malformed engine type string.
	ErrParse = errors.New("engine: cannot parse engine type")
)

// ErrNotMatrixElement is the element package sentinel, re-exported so that
// engine callers need a single import for errors.Is checks.
var ErrNotMatrixElement = element.ErrNotMatrixElement

// engineErrorf wraps err with a constructor or method tag.
func engineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// accessErrorf wraps err with a method tag and the offending coordinates.
func accessErrorf(kind Kind, method string, i, j int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", kind, method, i, j, err)
}

// SPDX-License-Identifier: MIT
// Package: engine
//
// Purpose:
//   - Provide a single source of truth for run-time shape checks.
//   - Keep kernels minimal by delegating nil/shape checks here.
//
// Determinism & Performance:
//   - All checks are pure and deterministic.
//   - All checks are O(1) and allocate nothing on success.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → Shape).
//   - Each validator states what it checks and what it assumes.

package engine

// validatorErrorf wraps an underlying error with the given validator tag.
// Every validator reports through it so tags stay uniform.
func validatorErrorf(tag string, err error) error {
	return engineErrorf(tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Inputs: Matrix engine.
// Returns: nil, or ErrNilEngine wrapped with the validator tag.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// A nil interface and a typed nil both fail here.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilEngine)
	}

	return nil
}

// ValidateVectorNotNil ensures the vector reference is non-nil.
//
// Inputs: Vector engine.
// Returns: nil or wrapped ErrNilEngine.
// Complexity: O(1).
func ValidateVectorNotNil(v Vector) error {
	if v == nil {
		return validatorErrorf("ValidateVectorNotNil", ErrNilEngine)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal run-time dimensions.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Inputs: two Matrix engines.
// Returns: nil or wrapped ErrDimensionMismatch, tagged Rows or Columns.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	// Rows first, so the tag names the first disagreeing dimension.
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape runs NotNil on both operands, then SameShape.
//
// Inputs: two Matrix engines (element-wise + and - operands).
// Errors: ErrNilEngine, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	// 1) Nil guards, left operand first.
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	// 2) Shape agreement.
	return ValidateSameShape(a, b)
}

// ValidateMulCompatible ensures a.Cols == b.Rows.
//
// Inputs: left and right factors of a matrix product.
// Errors: ErrNilEngine, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	// Inner dimensions must agree; outer ones are free.
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameLen ensures two vectors have equal length.
//
// Inputs: two Vector engines (element-wise ops and Dot).
// Errors: ErrNilEngine, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameLen(a, b Vector) error {
	if err := ValidateVectorNotNil(a); err != nil {
		return err
	}
	if err := ValidateVectorNotNil(b); err != nil {
		return err
	}
	if a.Len() != b.Len() {
		return validatorErrorf("ValidateSameLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length equals n (MatVec-like routines).
//
// Inputs: Vector engine and the expected length (usually the matrix Cols).
// Errors: ErrNilEngine, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecLen(v Vector, n int) error {
	if err := ValidateVectorNotNil(v); err != nil {
		return err
	}
	if v.Len() != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateShape ensures the run-time dimensions of m agree with the static
// dimensions of its type.
//
// Implementation: reads the Effective shape, so views over fixed engines
// are checked against their transposed or sliced extents. DynamicDim
// entries accept any run-time size.
// Inputs: Matrix engine.
// Errors: ErrNilEngine, ErrDimensionMismatch tagged Rows or Columns.
// Complexity: O(1).
func ValidateShape(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	s := m.Type().Effective()
	// Only static dimensions constrain the run-time ones.
	if s.Rows != DynamicDim && s.Rows != m.Rows() {
		return validatorErrorf("ValidateShape: Rows", ErrDimensionMismatch)
	}
	if s.Cols != DynamicDim && s.Cols != m.Cols() {
		return validatorErrorf("ValidateShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// SPDX-License-Identifier: MIT

// Package engine - non-owning views.
//
// Purpose:
//   - Re-index an existing engine without copying: transpose, rectangular
//     window, single row, single column.
//   - Writes forward to the base engine when it is mutable, else ErrReadOnly.
//
// Complexity quicksheet:
//   - constructors and At/Set: O(1); no allocations beyond the view header.
package engine

import (
	"github.com/katalvlaran/lvlinalg/element"
)

var (
	_ MutableMatrix = (*TransposeView)(nil)
	_ MutableMatrix = (*SubmatrixView)(nil)
	_ MutableVector = (*RowView)(nil)
	_ MutableVector = (*ColumnView)(nil)
)

// TransposeView presents base with rows and columns swapped.
type TransposeView struct {
	typ  Type
	base Matrix
}

// Transpose returns a transposed view of base.
func Transpose(base Matrix) (*TransposeView, error) {
	if base == nil {
		return nil, engineErrorf("Transpose", ErrNilEngine)
	}
	t, err := TransposeType(base.Type())
	if err != nil {
		return nil, err
	}

	return &TransposeView{typ: t, base: base}, nil
}

// Type returns transpose<base>.
func (v *TransposeView) Type() Type { return v.typ }

// Rows equals the base column count.
func (v *TransposeView) Rows() int { return v.base.Cols() }

// Cols equals the base row count.
func (v *TransposeView) Cols() int { return v.base.Rows() }

// At reads base element (j, i).
func (v *TransposeView) At(i, j int) (element.Value, error) {
	if i < 0 || i >= v.Rows() || j < 0 || j >= v.Cols() {
		return element.Value{}, accessErrorf(KindTranspose, "At", i, j, ErrOutOfRange)
	}

	return v.base.At(j, i)
}

// Set writes base element (j, i).
func (v *TransposeView) Set(i, j int, x element.Value) error {
	if i < 0 || i >= v.Rows() || j < 0 || j >= v.Cols() {
		return accessErrorf(KindTranspose, "Set", i, j, ErrOutOfRange)
	}
	mb, ok := v.base.(MutableMatrix)
	if !ok {
		return accessErrorf(KindTranspose, "Set", i, j, ErrReadOnly)
	}

	return mb.Set(j, i, x)
}

// Base returns the wrapped engine.
func (v *TransposeView) Base() Matrix { return v.base }

// String renders the view row by row.
func (v *TransposeView) String() string { return Format(v) }

// SubmatrixView is a rows×cols window over base starting at (r0, c0).
type SubmatrixView struct {
	typ        Type
	base       Matrix
	r0, c0     int
	rows, cols int
}

// Submatrix returns a window view. The window must lie within base.
//
// Errors: ErrNilEngine, ErrInvalidDimensions (negative extent),
// ErrOutOfRange (window exceeds base).
func Submatrix(base Matrix, r0, c0, rows, cols int) (*SubmatrixView, error) {
	if base == nil {
		return nil, engineErrorf("Submatrix", ErrNilEngine)
	}
	if rows < 0 || cols < 0 {
		return nil, engineErrorf("Submatrix", ErrInvalidDimensions)
	}
	if r0 < 0 || c0 < 0 || r0+rows > base.Rows() || c0+cols > base.Cols() {
		return nil, engineErrorf("Submatrix", ErrOutOfRange)
	}
	t, err := SubmatrixType(base.Type())
	if err != nil {
		return nil, err
	}

	return &SubmatrixView{typ: t, base: base, r0: r0, c0: c0, rows: rows, cols: cols}, nil
}

// Type returns submatrix<base>.
func (v *SubmatrixView) Type() Type { return v.typ }

// Rows returns the window height.
func (v *SubmatrixView) Rows() int { return v.rows }

// Cols returns the window width.
func (v *SubmatrixView) Cols() int { return v.cols }

// At reads base element (r0+i, c0+j).
func (v *SubmatrixView) At(i, j int) (element.Value, error) {
	if i < 0 || i >= v.rows || j < 0 || j >= v.cols {
		return element.Value{}, accessErrorf(KindSubmatrix, "At", i, j, ErrOutOfRange)
	}

	return v.base.At(v.r0+i, v.c0+j)
}

// Set writes base element (r0+i, c0+j).
func (v *SubmatrixView) Set(i, j int, x element.Value) error {
	if i < 0 || i >= v.rows || j < 0 || j >= v.cols {
		return accessErrorf(KindSubmatrix, "Set", i, j, ErrOutOfRange)
	}
	mb, ok := v.base.(MutableMatrix)
	if !ok {
		return accessErrorf(KindSubmatrix, "Set", i, j, ErrReadOnly)
	}

	return mb.Set(v.r0+i, v.c0+j, x)
}

// Base returns the wrapped engine.
func (v *SubmatrixView) Base() Matrix { return v.base }

// String renders the window row by row.
func (v *SubmatrixView) String() string { return Format(v) }

// RowView presents row i of base as a vector.
type RowView struct {
	typ  Type
	base Matrix
	row  int
}

// Row returns a view of row i.
func Row(base Matrix, i int) (*RowView, error) {
	if base == nil {
		return nil, engineErrorf("Row", ErrNilEngine)
	}
	if i < 0 || i >= base.Rows() {
		return nil, engineErrorf("Row", ErrOutOfRange)
	}
	t, err := RowType(base.Type())
	if err != nil {
		return nil, err
	}

	return &RowView{typ: t, base: base, row: i}, nil
}

// Type returns row<base>.
func (v *RowView) Type() Type { return v.typ }

// Len equals the base column count.
func (v *RowView) Len() int { return v.base.Cols() }

// AtIndex reads base element (row, k).
func (v *RowView) AtIndex(k int) (element.Value, error) {
	if k < 0 || k >= v.Len() {
		return element.Value{}, accessErrorf(KindRow, "AtIndex", k, 0, ErrOutOfRange)
	}

	return v.base.At(v.row, k)
}

// SetIndex writes base element (row, k).
func (v *RowView) SetIndex(k int, x element.Value) error {
	if k < 0 || k >= v.Len() {
		return accessErrorf(KindRow, "SetIndex", k, 0, ErrOutOfRange)
	}
	mb, ok := v.base.(MutableMatrix)
	if !ok {
		return accessErrorf(KindRow, "SetIndex", k, 0, ErrReadOnly)
	}

	return mb.Set(v.row, k, x)
}

// String renders the row.
func (v *RowView) String() string { return FormatVector(v) }

// ColumnView presents column j of base as a vector.
type ColumnView struct {
	typ  Type
	base Matrix
	col  int
}

// Column returns a view of column j.
func Column(base Matrix, j int) (*ColumnView, error) {
	if base == nil {
		return nil, engineErrorf("Column", ErrNilEngine)
	}
	if j < 0 || j >= base.Cols() {
		return nil, engineErrorf("Column", ErrOutOfRange)
	}
	t, err := ColumnType(base.Type())
	if err != nil {
		return nil, err
	}

	return &ColumnView{typ: t, base: base, col: j}, nil
}

// Type returns column<base>.
func (v *ColumnView) Type() Type { return v.typ }

// Len equals the base row count.
func (v *ColumnView) Len() int { return v.base.Rows() }

// AtIndex reads base element (k, col).
func (v *ColumnView) AtIndex(k int) (element.Value, error) {
	if k < 0 || k >= v.Len() {
		return element.Value{}, accessErrorf(KindColumn, "AtIndex", k, 0, ErrOutOfRange)
	}

	return v.base.At(k, v.col)
}

// SetIndex writes base element (k, col).
func (v *ColumnView) SetIndex(k int, x element.Value) error {
	if k < 0 || k >= v.Len() {
		return accessErrorf(KindColumn, "SetIndex", k, 0, ErrOutOfRange)
	}
	mb, ok := v.base.(MutableMatrix)
	if !ok {
		return accessErrorf(KindColumn, "SetIndex", k, 0, ErrReadOnly)
	}

	return mb.Set(k, v.col, x)
}

// String renders the column as a vector.
func (v *ColumnView) String() string { return FormatVector(v) }

// SPDX-License-Identifier: MIT

// Package engine - runtime engine interfaces and owning engines.
//
// Purpose:
//   - Provide flat, typed buffers with the explicit index formula
//     i*cols + j (row-major) or j*rows + i (column-major).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep loop orders fixed (i→j) so results are reproducible.
//
// Complexity quicksheet:
//   - New*: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Resize: O(r*c).
package engine

import (
	"github.com/katalvlaran/lvlinalg/element"
)

// Matrix is a read-only two-dimensional engine.
type Matrix interface {
	// Type returns the engine type descriptor.
	Type() Type
	// Rows returns the run-time row count.
	Rows() int
	// Cols returns the run-time column count.
	Cols() int
	// At returns element (i, j) or ErrOutOfRange.
	At(i, j int) (element.Value, error)
}

// MutableMatrix is a Matrix whose elements can be written.
type MutableMatrix interface {
	Matrix
	// Set converts v to the element type and stores it at (i, j).
	Set(i, j int, v element.Value) error
}

// ResizableMatrix is a MutableMatrix whose shape can change at run time.
type ResizableMatrix interface {
	MutableMatrix
	// Resize changes the shape, keeping the overlapping top-left block.
	Resize(rows, cols int) error
}

// Vector is a read-only one-dimensional engine.
type Vector interface {
	Type() Type
	Len() int
	AtIndex(i int) (element.Value, error)
}

// MutableVector is a Vector whose elements can be written.
type MutableVector interface {
	Vector
	SetIndex(i int, v element.Value) error
}

// ResizableVector is a MutableVector whose length can change at run time.
type ResizableVector interface {
	MutableVector
	Resize(n int) error
}

// Compile-time conformance.
var (
	_ MutableMatrix   = (*Fixed)(nil)
	_ ResizableMatrix = (*Dynamic)(nil)
	_ MutableVector   = (*FixedVector)(nil)
	_ ResizableVector = (*DynamicVector)(nil)
)

// ---------- shared dense storage ----------

// store is the flat buffer shared by Fixed and Dynamic.
type store struct {
	kind       Kind
	rows, cols int
	layout     Layout
	buf        element.Buffer
}

func newStore(kind Kind, elem element.Type, rows, cols int, layout Layout) (store, error) {
	buf, err := element.NewBuffer(elem, rows*cols)
	if err != nil {
		return store{}, err
	}

	return store{kind: kind, rows: rows, cols: cols, layout: layout, buf: buf}, nil
}

// Rows returns the row count. Complexity: O(1).
func (s *store) Rows() int { return s.rows }

// Cols returns the column count. Complexity: O(1).
func (s *store) Cols() int { return s.cols }

// offset bounds-checks (i, j) and maps it onto the flat buffer.
func (s *store) offset(i, j int) (int, error) {
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		return 0, ErrOutOfRange
	}
	if s.layout == ColumnMajor {
		return j*s.rows + i, nil
	}

	return i*s.cols + j, nil
}

// At returns element (i, j) or ErrOutOfRange.
func (s *store) At(i, j int) (element.Value, error) {
	off, err := s.offset(i, j)
	if err != nil {
		return element.Value{}, accessErrorf(s.kind, "At", i, j, err)
	}

	return s.buf.Load(off), nil
}

// Set stores v at (i, j) after converting it to the element type.
func (s *store) Set(i, j int, v element.Value) error {
	off, err := s.offset(i, j)
	if err != nil {
		return accessErrorf(s.kind, "Set", i, j, err)
	}
	if err = s.buf.Store(off, v); err != nil {
		return accessErrorf(s.kind, "Set", i, j, err)
	}

	return nil
}

func (s *store) clone() store {
	cp := *s
	cp.buf = s.buf.Clone()

	return cp
}

// ---------- Fixed ----------

// Fixed is a matrix engine whose shape is part of its type.
type Fixed struct {
	typ Type
	store
}

// NewFixed allocates a zeroed engine of fixed type t.
//
// Errors: ErrIncompatibleEngine when t is not a fixed matrix type.
func NewFixed(t Type) (*Fixed, error) {
	if t.Kind() != KindFixed {
		return nil, engineErrorf("NewFixed("+t.String()+")", ErrIncompatibleEngine)
	}
	s, err := newStore(KindFixed, t.Element(), t.d.rows, t.d.cols, t.d.layout)
	if err != nil {
		return nil, engineErrorf("NewFixed", err)
	}

	return &Fixed{typ: t, store: s}, nil
}

// Type returns the engine type.
func (m *Fixed) Type() Type { return m.typ }

// Clone returns a deep copy.
func (m *Fixed) Clone() *Fixed { return &Fixed{typ: m.typ, store: m.store.clone()} }

// String renders the matrix row by row.
func (m *Fixed) String() string { return Format(m) }

// ---------- Dynamic ----------

// Dynamic is a resizable, run-time sized matrix engine.
type Dynamic struct {
	typ Type
	store
}

// NewDynamic allocates a zeroed rows×cols engine of dynamic type t.
// Zero dimensions are allowed (an empty matrix awaiting Resize).
//
// Errors: ErrIncompatibleEngine, ErrInvalidDimensions (negative dimension).
func NewDynamic(t Type, rows, cols int) (*Dynamic, error) {
	if t.Kind() != KindDynamic {
		return nil, engineErrorf("NewDynamic("+t.String()+")", ErrIncompatibleEngine)
	}
	if rows < 0 || cols < 0 {
		return nil, engineErrorf("NewDynamic", ErrInvalidDimensions)
	}
	s, err := newStore(KindDynamic, t.Element(), rows, cols, t.d.layout)
	if err != nil {
		return nil, engineErrorf("NewDynamic", err)
	}

	return &Dynamic{typ: t, store: s}, nil
}

// Type returns the engine type.
func (m *Dynamic) Type() Type { return m.typ }

// Clone returns a deep copy.
func (m *Dynamic) Clone() *Dynamic { return &Dynamic{typ: m.typ, store: m.store.clone()} }

// String renders the matrix row by row.
func (m *Dynamic) String() string { return Format(m) }

// Resize changes the shape to rows×cols, keeping the overlapping top-left
// block and zeroing the rest.
// Complexity: O(rows*cols) when the shape changes, O(1) otherwise.
func (m *Dynamic) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return engineErrorf("Dynamic.Resize", ErrInvalidDimensions)
	}
	if rows == m.rows && cols == m.cols {
		return nil
	}
	next, err := newStore(KindDynamic, m.typ.Element(), rows, cols, m.layout)
	if err != nil {
		return engineErrorf("Dynamic.Resize", err)
	}
	keepR, keepC := min(rows, m.rows), min(cols, m.cols)
	for i := 0; i < keepR; i++ {
		for j := 0; j < keepC; j++ {
			src, _ := m.offset(i, j)
			dst, _ := next.offset(i, j)
			if err = next.buf.Store(dst, m.buf.Load(src)); err != nil {
				return engineErrorf("Dynamic.Resize", err)
			}
		}
	}
	m.store = next

	return nil
}

// ---------- vectors ----------

// vstore is the flat buffer shared by the vector engines.
type vstore struct {
	kind Kind
	buf  element.Buffer
}

// Len returns the element count.
func (s *vstore) Len() int { return s.buf.Len() }

// AtIndex returns element i or ErrOutOfRange.
func (s *vstore) AtIndex(i int) (element.Value, error) {
	if i < 0 || i >= s.buf.Len() {
		return element.Value{}, accessErrorf(s.kind, "AtIndex", i, 0, ErrOutOfRange)
	}

	return s.buf.Load(i), nil
}

// SetIndex stores v at i after conversion.
func (s *vstore) SetIndex(i int, v element.Value) error {
	if i < 0 || i >= s.buf.Len() {
		return accessErrorf(s.kind, "SetIndex", i, 0, ErrOutOfRange)
	}
	if err := s.buf.Store(i, v); err != nil {
		return accessErrorf(s.kind, "SetIndex", i, 0, err)
	}

	return nil
}

// FixedVector is a vector engine whose length is part of its type.
type FixedVector struct {
	typ Type
	vstore
}

// NewFixedVector allocates a zeroed vector of fixed vector type t.
func NewFixedVector(t Type) (*FixedVector, error) {
	if t.Kind() != KindFixedVector {
		return nil, engineErrorf("NewFixedVector("+t.String()+")", ErrIncompatibleEngine)
	}
	buf, err := element.NewBuffer(t.Element(), t.d.rows)
	if err != nil {
		return nil, engineErrorf("NewFixedVector", err)
	}

	return &FixedVector{typ: t, vstore: vstore{kind: KindFixedVector, buf: buf}}, nil
}

// Type returns the engine type.
func (v *FixedVector) Type() Type { return v.typ }

// Clone returns a deep copy.
func (v *FixedVector) Clone() *FixedVector {
	return &FixedVector{typ: v.typ, vstore: vstore{kind: v.kind, buf: v.buf.Clone()}}
}

// String renders the vector.
func (v *FixedVector) String() string { return FormatVector(v) }

// DynamicVector is a resizable vector engine.
type DynamicVector struct {
	typ Type
	vstore
}

// NewDynamicVector allocates a zeroed n-element vector of dynamic vector type t.
func NewDynamicVector(t Type, n int) (*DynamicVector, error) {
	if t.Kind() != KindDynamicVector {
		return nil, engineErrorf("NewDynamicVector("+t.String()+")", ErrIncompatibleEngine)
	}
	if n < 0 {
		return nil, engineErrorf("NewDynamicVector", ErrInvalidDimensions)
	}
	buf, err := element.NewBuffer(t.Element(), n)
	if err != nil {
		return nil, engineErrorf("NewDynamicVector", err)
	}

	return &DynamicVector{typ: t, vstore: vstore{kind: KindDynamicVector, buf: buf}}, nil
}

// Type returns the engine type.
func (v *DynamicVector) Type() Type { return v.typ }

// Clone returns a deep copy.
func (v *DynamicVector) Clone() *DynamicVector {
	return &DynamicVector{typ: v.typ, vstore: vstore{kind: v.kind, buf: v.buf.Clone()}}
}

// Resize changes the length, keeping the common prefix.
func (v *DynamicVector) Resize(n int) error {
	if n < 0 {
		return engineErrorf("DynamicVector.Resize", ErrInvalidDimensions)
	}
	v.buf.Resize(n)

	return nil
}

// String renders the vector.
func (v *DynamicVector) String() string { return FormatVector(v) }

// ---------- factories ----------

// New allocates an owning matrix engine of type t with the given run-time
// shape. For fixed types the shape must match the static one.
//
// Errors: ErrIncompatibleEngine (not an owning matrix type),
// ErrDimensionMismatch (fixed shape contradiction), ErrInvalidDimensions.
func New(t Type, rows, cols int) (MutableMatrix, error) {
	switch t.Kind() {
	case KindFixed:
		if rows != t.d.rows || cols != t.d.cols {
			return nil, engineErrorf("New("+t.String()+")", ErrDimensionMismatch)
		}
		return NewFixed(t)
	case KindDynamic:
		return NewDynamic(t, rows, cols)
	default:
		return nil, engineErrorf("New("+t.String()+")", ErrIncompatibleEngine)
	}
}

// NewVector allocates an owning vector engine of type t with length n.
func NewVector(t Type, n int) (MutableVector, error) {
	switch t.Kind() {
	case KindFixedVector:
		if n != t.d.rows {
			return nil, engineErrorf("NewVector("+t.String()+")", ErrDimensionMismatch)
		}
		return NewFixedVector(t)
	case KindDynamicVector:
		return NewDynamicVector(t, n)
	default:
		return nil, engineErrorf("NewVector("+t.String()+")", ErrIncompatibleEngine)
	}
}

// Materialize copies any matrix engine (views included) into a fresh owning
// engine of the same effective shape and element type.
func Materialize(src Matrix) (MutableMatrix, error) {
	if src == nil {
		return nil, engineErrorf("Materialize", ErrNilEngine)
	}
	t, err := src.Type().WithElement(src.Type().Element())
	if err != nil {
		return nil, engineErrorf("Materialize", err)
	}
	dst, err := New(t, src.Rows(), src.Cols())
	if err != nil {
		return nil, engineErrorf("Materialize", err)
	}
	if err = Copy(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}

// MaterializeVector copies any vector engine into a fresh owning engine.
func MaterializeVector(src Vector) (MutableVector, error) {
	if src == nil {
		return nil, engineErrorf("MaterializeVector", ErrNilEngine)
	}
	t, err := src.Type().WithElement(src.Type().Element())
	if err != nil {
		return nil, engineErrorf("MaterializeVector", err)
	}
	dst, err := NewVector(t, src.Len())
	if err != nil {
		return nil, engineErrorf("MaterializeVector", err)
	}
	for i := 0; i < src.Len(); i++ {
		v, e := src.AtIndex(i)
		if e != nil {
			return nil, engineErrorf("MaterializeVector", e)
		}
		if e = dst.SetIndex(i, v); e != nil {
			return nil, engineErrorf("MaterializeVector", e)
		}
	}

	return dst, nil
}

// Copy writes every element of src into dst (same shape required), in i→j order.
func Copy(dst MutableMatrix, src Matrix) error {
	if err := ValidateBinarySameShape(dst, src); err != nil {
		return engineErrorf("Copy", err)
	}
	for i := 0; i < src.Rows(); i++ {
		for j := 0; j < src.Cols(); j++ {
			v, err := src.At(i, j)
			if err != nil {
				return engineErrorf("Copy", err)
			}
			if err = dst.Set(i, j, v); err != nil {
				return engineErrorf("Copy", err)
			}
		}
	}

	return nil
}

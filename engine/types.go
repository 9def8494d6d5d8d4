// SPDX-License-Identifier: MIT

// Package engine - engine type descriptors and capability tags.
//
// Purpose:
//   - Describe a storage strategy as a value: kind, element type, static
//     dimensions, layout and (for views) the wrapped engine type.
//   - Intern descriptors so that == compares types and descriptors can key maps.
//   - Expose capability tags (Traits) and the view-unwrapped Effective shape,
//     which is all the promotion layer is allowed to look at.
//
// Complexity quicksheet:
//   - constructors: O(len(key)) for interning; Traits/Effective: O(view depth).
package engine

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/katalvlaran/lvlinalg/element"
)

// DynamicDim marks a dimension that is only known at run time.
const DynamicDim = -1

// Kind enumerates the engine strategies.
type Kind uint8

// Engine kinds. Invalid is the zero Kind.
const (
	Invalid Kind = iota
	KindFixed
	KindDynamic
	KindFixedVector
	KindDynamicVector
	KindTranspose
	KindSubmatrix
	KindRow
	KindColumn
	KindScalar
)

var kindNames = map[Kind]string{
	Invalid:           "invalid",
	KindFixed:         "fixed",
	KindDynamic:       "dynamic",
	KindFixedVector:   "fixed_vector",
	KindDynamicVector: "dynamic_vector",
	KindTranspose:     "transpose",
	KindSubmatrix:     "submatrix",
	KindRow:           "row",
	KindColumn:        "column",
	KindScalar:        "scalar",
}

// String returns the kind's name as used in type strings.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}

	return kindNames[Invalid]
}

// IsView reports whether k wraps another engine without owning storage.
func (k Kind) IsView() bool {
	return k == KindTranspose || k == KindSubmatrix || k == KindRow || k == KindColumn
}

// Layout is the storage order of a dense engine.
type Layout uint8

// Layouts.
const (
	RowMajor Layout = iota
	ColumnMajor
)

// Flip returns the opposite layout.
func (l Layout) Flip() Layout {
	if l == RowMajor {
		return ColumnMajor
	}

	return RowMajor
}

// String implements fmt.Stringer.
func (l Layout) String() string {
	if l == ColumnMajor {
		return "column-major"
	}

	return "row-major"
}

// Category is the mathematical rank an engine presents.
type Category uint8

// Categories.
const (
	CategoryScalar Category = iota + 1
	CategoryVector
	CategoryMatrix
)

// String implements fmt.Stringer.
func (c Category) String() string {
	switch c {
	case CategoryScalar:
		return "scalar"
	case CategoryVector:
		return "vector"
	case CategoryMatrix:
		return "matrix"
	default:
		return "invalid"
	}
}

// Traits is the capability set of an engine type.
type Traits struct {
	Resizable bool   // storage can change shape at run time
	FixedSize bool   // every dimension is known from the type alone
	Dense     bool   // every element is backed by storage
	Owning    bool   // the engine owns its storage (false for views)
	Vector    bool   // one-dimensional
	Scalar    bool   // a single value (operand role in scale/divide)
	Layout    Layout // storage order seen through the engine
}

// Shape is the view-unwrapped static shape of an engine type.
type Shape struct {
	Category Category
	Rows     int // matrices: static rows or DynamicDim
	Cols     int // matrices: static cols or DynamicDim
	Len      int // vectors: static length or DynamicDim
	Fixed    bool
	Layout   Layout
}

// Type is an interned engine type descriptor. The zero Type is invalid.
type Type struct {
	d *typeDesc
}

type typeDesc struct {
	key    string
	kind   Kind
	elem   element.Type
	rows   int
	cols   int
	layout Layout
	base   Type
}

var (
	internMu sync.Mutex
	interned = make(map[string]*typeDesc)
)

// intern returns the unique descriptor for d.key.
func intern(d typeDesc) Type {
	internMu.Lock()
	defer internMu.Unlock()
	if got, ok := interned[d.key]; ok {
		return Type{d: got}
	}
	p := &d
	interned[d.key] = p

	return Type{d: p}
}

// FixedType describes a rows×cols matrix with inline storage.
//
// Errors: ErrNotMatrixElement, ErrInvalidDimensions (rows or cols <= 0).
func FixedType(elem element.Type, rows, cols int, opts ...Option) (Type, error) {
	if err := element.ValidateElement(elem); err != nil {
		return Type{}, engineErrorf("FixedType", ErrNotMatrixElement)
	}
	if rows <= 0 || cols <= 0 {
		return Type{}, engineErrorf("FixedType", ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	key := "fixed<" + elem.Name() + "," + strconv.Itoa(rows) + "," + strconv.Itoa(cols) + layoutSuffix(o.layout) + ">"

	return intern(typeDesc{key: key, kind: KindFixed, elem: elem, rows: rows, cols: cols, layout: o.layout}), nil
}

// DynamicType describes a run-time sized, resizable matrix.
func DynamicType(elem element.Type, opts ...Option) (Type, error) {
	if err := element.ValidateElement(elem); err != nil {
		return Type{}, engineErrorf("DynamicType", ErrNotMatrixElement)
	}
	o := gatherOptions(opts...)
	key := "dynamic<" + elem.Name() + layoutSuffix(o.layout) + ">"

	return intern(typeDesc{key: key, kind: KindDynamic, elem: elem, rows: DynamicDim, cols: DynamicDim, layout: o.layout}), nil
}

// FixedVectorType describes an n-element vector with inline storage.
func FixedVectorType(elem element.Type, n int) (Type, error) {
	if err := element.ValidateElement(elem); err != nil {
		return Type{}, engineErrorf("FixedVectorType", ErrNotMatrixElement)
	}
	if n <= 0 {
		return Type{}, engineErrorf("FixedVectorType", ErrInvalidDimensions)
	}
	key := "fixed_vector<" + elem.Name() + "," + strconv.Itoa(n) + ">"

	return intern(typeDesc{key: key, kind: KindFixedVector, elem: elem, rows: n, cols: 1}), nil
}

// DynamicVectorType describes a run-time sized, resizable vector.
func DynamicVectorType(elem element.Type) (Type, error) {
	if err := element.ValidateElement(elem); err != nil {
		return Type{}, engineErrorf("DynamicVectorType", ErrNotMatrixElement)
	}
	key := "dynamic_vector<" + elem.Name() + ">"

	return intern(typeDesc{key: key, kind: KindDynamicVector, elem: elem, rows: DynamicDim, cols: 1}), nil
}

// ScalarType describes a scalar operand of element type elem. It only takes
// part in resolution (scale and divide); no engine of this kind is stored.
func ScalarType(elem element.Type) (Type, error) {
	if err := element.ValidateElement(elem); err != nil {
		return Type{}, engineErrorf("ScalarType", ErrNotMatrixElement)
	}

	return intern(typeDesc{key: "scalar<" + elem.Name() + ">", kind: KindScalar, elem: elem, rows: 1, cols: 1}), nil
}

// TransposeType describes a transposed view of a matrix engine type.
func TransposeType(base Type) (Type, error) {
	return viewType(KindTranspose, base)
}

// SubmatrixType describes a rectangular window over a matrix engine type.
func SubmatrixType(base Type) (Type, error) {
	return viewType(KindSubmatrix, base)
}

// RowType describes one row of a matrix engine type, seen as a vector.
func RowType(base Type) (Type, error) {
	return viewType(KindRow, base)
}

// ColumnType describes one column of a matrix engine type, seen as a vector.
func ColumnType(base Type) (Type, error) {
	return viewType(KindColumn, base)
}

func viewType(kind Kind, base Type) (Type, error) {
	if base.IsZero() || base.Category() != CategoryMatrix {
		return Type{}, engineErrorf(kind.String()+"Type", ErrIncompatibleEngine)
	}
	key := kind.String() + "<" + base.String() + ">"

	return intern(typeDesc{key: key, kind: kind, elem: base.Element(), rows: DynamicDim, cols: DynamicDim, base: base}), nil
}

func layoutSuffix(l Layout) string {
	if l == ColumnMajor {
		return ",col"
	}

	return ""
}

// IsZero reports whether t is the zero Type.
func (t Type) IsZero() bool { return t.d == nil }

// Kind returns the engine kind.
func (t Type) Kind() Kind {
	if t.d == nil {
		return Invalid
	}

	return t.d.kind
}

// Element returns the element type stored (or viewed) by the engine.
func (t Type) Element() element.Type {
	if t.d == nil {
		return element.Type{}
	}

	return t.d.elem
}

// Base returns the engine type wrapped by a view (zero for owning kinds).
func (t Type) Base() Type {
	if t.d == nil {
		return Type{}
	}

	return t.d.base
}

// IsView reports whether t is a non-owning view type.
func (t Type) IsView() bool { return t.Kind().IsView() }

// Category returns the mathematical rank of t.
func (t Type) Category() Category {
	switch t.Kind() {
	case KindFixed, KindDynamic, KindTranspose, KindSubmatrix:
		return CategoryMatrix
	case KindFixedVector, KindDynamicVector, KindRow, KindColumn:
		return CategoryVector
	case KindScalar:
		return CategoryScalar
	default:
		return 0
	}
}

// Rows returns the static row count, or DynamicDim. Views report the unwrapped shape.
func (t Type) Rows() int { return t.Effective().Rows }

// Cols returns the static column count, or DynamicDim.
func (t Type) Cols() int { return t.Effective().Cols }

// Len returns the static vector length, or DynamicDim.
func (t Type) Len() int { return t.Effective().Len }

// Layout returns the effective storage order.
func (t Type) Layout() Layout { return t.Effective().Layout }

// String renders the type in the form accepted by ParseType.
func (t Type) String() string {
	if t.d == nil {
		return "<nil>"
	}

	return t.d.key
}

// GoString implements fmt.GoStringer for readable test diffs.
func (t Type) GoString() string { return fmt.Sprintf("engine.Type(%s)", t.String()) }

// Traits returns the capability tags of t.
func (t Type) Traits() Traits {
	switch t.Kind() {
	case KindFixed:
		return Traits{FixedSize: true, Dense: true, Owning: true, Layout: t.d.layout}
	case KindDynamic:
		return Traits{Resizable: true, Dense: true, Owning: true, Layout: t.d.layout}
	case KindFixedVector:
		return Traits{FixedSize: true, Dense: true, Owning: true, Vector: true}
	case KindDynamicVector:
		return Traits{Resizable: true, Dense: true, Owning: true, Vector: true}
	case KindScalar:
		return Traits{FixedSize: true, Dense: true, Owning: true, Scalar: true}
	case KindTranspose:
		b := t.d.base.Traits()
		return Traits{FixedSize: b.FixedSize, Dense: b.Dense, Layout: b.Layout.Flip()}
	case KindSubmatrix:
		b := t.d.base.Traits()
		return Traits{Dense: b.Dense, Layout: b.Layout}
	case KindRow, KindColumn:
		b := t.d.base.Traits()
		return Traits{FixedSize: b.FixedSize, Dense: b.Dense, Vector: true, Layout: b.Layout}
	default:
		return Traits{}
	}
}

// Effective unwraps views: the shape, fixedness and layout an operation
// observes when it reads through t.
//   - transpose(fixed(R,C)) is fixed(C,R) with the flipped layout.
//   - a submatrix window is never fixed: its extent is chosen at run time.
//   - row(fixed(R,C)) is a fixed vector of length C; column(...) of length R.
func (t Type) Effective() Shape {
	switch t.Kind() {
	case KindFixed:
		return Shape{Category: CategoryMatrix, Rows: t.d.rows, Cols: t.d.cols, Fixed: true, Layout: t.d.layout}
	case KindDynamic:
		return Shape{Category: CategoryMatrix, Rows: DynamicDim, Cols: DynamicDim, Layout: t.d.layout}
	case KindFixedVector:
		return Shape{Category: CategoryVector, Len: t.d.rows, Fixed: true}
	case KindDynamicVector:
		return Shape{Category: CategoryVector, Len: DynamicDim}
	case KindScalar:
		return Shape{Category: CategoryScalar, Rows: 1, Cols: 1, Len: 1, Fixed: true}
	case KindTranspose:
		b := t.d.base.Effective()
		return Shape{Category: CategoryMatrix, Rows: b.Cols, Cols: b.Rows, Fixed: b.Fixed, Layout: b.Layout.Flip()}
	case KindSubmatrix:
		b := t.d.base.Effective()
		return Shape{Category: CategoryMatrix, Rows: DynamicDim, Cols: DynamicDim, Layout: b.Layout}
	case KindRow:
		b := t.d.base.Effective()
		return Shape{Category: CategoryVector, Len: b.Cols, Fixed: b.Fixed}
	case KindColumn:
		b := t.d.base.Effective()
		return Shape{Category: CategoryVector, Len: b.Rows, Fixed: b.Fixed}
	default:
		return Shape{}
	}
}

// WithElement returns an owning engine type of the same effective shape as t
// with a different element type. Views are materialised: the result of
// WithElement is never a view.
func (t Type) WithElement(elem element.Type) (Type, error) {
	s := t.Effective()
	switch s.Category {
	case CategoryScalar:
		return ScalarType(elem)
	case CategoryVector:
		if s.Fixed {
			return FixedVectorType(elem, s.Len)
		}
		return DynamicVectorType(elem)
	case CategoryMatrix:
		if s.Fixed {
			return FixedType(elem, s.Rows, s.Cols, WithLayout(s.Layout))
		}
		return DynamicType(elem, WithLayout(s.Layout))
	default:
		return Type{}, engineErrorf("WithElement", ErrIncompatibleEngine)
	}
}

// MustType panics if err is non-nil. Intended for static type declarations:
//
//	var f23 = engine.MustType(engine.FixedType(element.Float32, 2, 3))
func MustType(t Type, err error) Type {
	if err != nil {
		panic(err)
	}

	return t
}

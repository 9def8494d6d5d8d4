// SPDX-License-Identifier: MIT

package linalg

import (
	"github.com/katalvlaran/lvlinalg/element"
	"github.com/katalvlaran/lvlinalg/engine"
	"github.com/katalvlaran/lvlinalg/traits"
)

// Matrix pairs a matrix engine with an operation policy.
//
// A Matrix owns its engine unless the engine is a view (see T, Sub): a view
// borrows the storage of the object it was taken from and must not be used
// after that object's storage is resized.
type Matrix struct {
	eng    engine.Matrix
	policy any
	res    *traits.Resolver
}

// New builds a dynamic matrix from rows. Element type is that of T.
//
// Errors: ErrEmpty (no rows), ErrRagged, ErrNotMatrixElement.
func New[T element.Number](rows [][]T, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	r, c, err := dims(rows)
	if err != nil {
		return nil, linalgErrorf("New", err)
	}
	t, err := engine.DynamicType(element.Of[T](), engine.WithLayout(o.layout))
	if err != nil {
		return nil, linalgErrorf("New", err)
	}

	return fromRows(t, rows, r, c, o)
}

// NewFixed builds a fixed-size matrix whose static shape is that of rows.
func NewFixed[T element.Number](rows [][]T, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	r, c, err := dims(rows)
	if err != nil {
		return nil, linalgErrorf("NewFixed", err)
	}
	if c == 0 {
		return nil, linalgErrorf("NewFixed", ErrEmpty)
	}
	t, err := engine.FixedType(element.Of[T](), r, c, engine.WithLayout(o.layout))
	if err != nil {
		return nil, linalgErrorf("NewFixed", err)
	}

	return fromRows(t, rows, r, c, o)
}

// Zeros allocates a zero matrix of engine type t with the given run-time shape.
func Zeros(t engine.Type, rows, cols int, opts ...Option) (*Matrix, error) {
	eng, err := engine.New(t, rows, cols)
	if err != nil {
		return nil, linalgErrorf("Zeros", err)
	}

	return FromEngine(eng, opts...)
}

// FromEngine wraps an existing matrix engine without copying.
func FromEngine(eng engine.Matrix, opts ...Option) (*Matrix, error) {
	if eng == nil {
		return nil, linalgErrorf("FromEngine", engine.ErrNilEngine)
	}
	o := gatherOptions(opts...)

	return &Matrix{eng: eng, policy: o.policy, res: o.resolver}, nil
}

func dims[T any](rows [][]T) (int, int, error) {
	if len(rows) == 0 {
		return 0, 0, ErrEmpty
	}
	c := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != c {
			return 0, 0, ErrRagged
		}
	}

	return len(rows), c, nil
}

func fromRows[T element.Number](t engine.Type, rows [][]T, r, c int, o Options) (*Matrix, error) {
	eng, err := engine.New(t, r, c)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		for j, x := range rows[i] {
			if err = eng.Set(i, j, element.ValueOf(x)); err != nil {
				return nil, err
			}
		}
	}

	return &Matrix{eng: eng, policy: o.policy, res: o.resolver}, nil
}

// Engine returns the underlying engine.
func (m *Matrix) Engine() engine.Matrix { return m.eng }

// Policy returns the operation policy.
func (m *Matrix) Policy() any { return m.policy }

// ObjectType returns the math-object type used for resolution.
func (m *Matrix) ObjectType() traits.ObjectType { return traits.TypeOf(m.eng.Type(), m.policy) }

// Element returns the element type.
func (m *Matrix) Element() element.Type { return m.eng.Type().Element() }

// Rows returns the run-time row count.
func (m *Matrix) Rows() int { return m.eng.Rows() }

// Cols returns the run-time column count.
func (m *Matrix) Cols() int { return m.eng.Cols() }

// At returns element (i, j).
func (m *Matrix) At(i, j int) (element.Value, error) { return m.eng.At(i, j) }

// Set stores v at (i, j), converting it to the element type.
//
// Errors: ErrOutOfRange, ErrReadOnly, ErrLossyConversion.
func (m *Matrix) Set(i, j int, v element.Value) error {
	mm, ok := m.eng.(engine.MutableMatrix)
	if !ok {
		return linalgErrorf("Matrix.Set", ErrReadOnly)
	}

	return mm.Set(i, j, v)
}

// Resize changes the shape of a matrix backed by a resizable engine.
//
// Errors: ErrIncompatibleEngine for fixed engines and views.
func (m *Matrix) Resize(rows, cols int) error {
	rm, ok := m.eng.(engine.ResizableMatrix)
	if !ok {
		return linalgErrorf("Matrix.Resize("+m.eng.Type().String()+")", ErrIncompatibleEngine)
	}

	return rm.Resize(rows, cols)
}

// T returns a transposed view sharing storage with m.
func (m *Matrix) T() *Matrix {
	tv, err := engine.Transpose(m.eng)
	if err != nil {
		// m.eng is a non-nil matrix engine by construction.
		panic(err)
	}

	return &Matrix{eng: tv, policy: m.policy, res: m.res}
}

// Sub returns a rows×cols window starting at (r0, c0), sharing storage with m.
func (m *Matrix) Sub(r0, c0, rows, cols int) (*Matrix, error) {
	sv, err := engine.Submatrix(m.eng, r0, c0, rows, cols)
	if err != nil {
		return nil, linalgErrorf("Matrix.Sub", err)
	}

	return &Matrix{eng: sv, policy: m.policy, res: m.res}, nil
}

// Row returns row i as a vector view.
func (m *Matrix) Row(i int) (*Vector, error) {
	rv, err := engine.Row(m.eng, i)
	if err != nil {
		return nil, linalgErrorf("Matrix.Row", err)
	}

	return &Vector{eng: rv, policy: m.policy, res: m.res}, nil
}

// Column returns column j as a vector view.
func (m *Matrix) Column(j int) (*Vector, error) {
	cv, err := engine.Column(m.eng, j)
	if err != nil {
		return nil, linalgErrorf("Matrix.Column", err)
	}

	return &Vector{eng: cv, policy: m.policy, res: m.res}, nil
}

// Clone returns an owning deep copy (views are materialised).
func (m *Matrix) Clone() (*Matrix, error) {
	eng, err := engine.Materialize(m.eng)
	if err != nil {
		return nil, linalgErrorf("Matrix.Clone", err)
	}

	return &Matrix{eng: eng, policy: m.policy, res: m.res}, nil
}

// Float64s returns the entries as float64 (real part for complex elements).
func (m *Matrix) Float64s() [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, _ := m.eng.At(i, j)
			out[i][j] = v.Float64()
		}
	}

	return out
}

// String renders the matrix row by row.
func (m *Matrix) String() string { return engine.Format(m.eng) }

func (m *Matrix) payload() traits.Operand { return traits.MatrixOperand(m.eng) }
func (m *Matrix) operandPolicy() any { return m.policy }
func (m *Matrix) operandResolver() *traits.Resolver { return m.res }

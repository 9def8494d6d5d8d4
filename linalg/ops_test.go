// SPDX-License-Identifier: MIT

package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlinalg/element"
	"github.com/katalvlaran/lvlinalg/engine"
	"github.com/katalvlaran/lvlinalg/linalg"
	"github.com/katalvlaran/lvlinalg/traits"
)

type widened struct{ ElementType element.Type }

// widenFloat declares float32+float32 → float64 for addition.
type widenFloat struct{}

func (widenFloat) AdditionElementTraits(a, b element.Type) widened {
	if a == element.Float32 && b == element.Float32 {
		return widened{element.Float64}
	}

	return widened{}
}

// otherPolicy customizes nothing but is not Default.
type otherPolicy struct{}

type flatResult struct {
	ResultType traits.ObjectType
	Apply      traits.ApplyFunc
}

// flattenSum turns the sum of two matrices into a vector of row sums.
type flattenSum struct{}

func (p flattenSum) AdditionArithmeticTraits(l, _ traits.ObjectType) flatResult {
	vt := engine.MustType(engine.DynamicVectorType(l.Element()))
	return flatResult{
		ResultType: traits.TypeOf(vt, p),
		Apply: func(a, b traits.Operand) (traits.Operand, error) {
			v, err := engine.NewDynamicVector(vt, a.Matrix.Rows())
			if err != nil {
				return traits.Operand{}, err
			}
			for i := 0; i < a.Matrix.Rows(); i++ {
				s := 0.0
				for j := 0; j < a.Matrix.Cols(); j++ {
					x, _ := a.Matrix.At(i, j)
					y, _ := b.Matrix.At(i, j)
					s += x.Float64() + y.Float64()
				}
				if err = v.SetIndex(i, element.ValueOf(s)); err != nil {
					return traits.Operand{}, err
				}
			}
			return traits.VectorOperand(v), nil
		},
	}
}

func fixedType(elem element.Type, r, c int) engine.Type {
	return engine.MustType(engine.FixedType(elem, r, c))
}

func dynamicType(elem element.Type) engine.Type {
	return engine.MustType(engine.DynamicType(elem))
}

// grid builds an r×c literal with entries f(i, j).
func grid[T element.Number](r, c int, f func(i, j int) T) [][]T {
	out := make([][]T, r)
	for i := range out {
		out[i] = make([]T, c)
		for j := range out[i] {
			out[i][j] = f(i, j)
		}
	}

	return out
}

// OpsSuite runs the operators end to end.
type OpsSuite struct {
	suite.Suite
}

// TestScenarioFixedAdd: fixed<float32,2,3> + fixed<float64,2,3>.
func (s *OpsSuite) TestScenarioFixedAdd() {
	a, err := linalg.NewFixed([][]float32{{1, 2, 3}, {4, 5, 6}})
	s.Require().NoError(err)
	b, err := linalg.NewFixed([][]float64{{0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}})
	s.Require().NoError(err)

	c, err := linalg.Add(a, b)
	s.Require().NoError(err)
	s.Equal(fixedType(element.Float64, 2, 3), c.Engine().Type())
	s.Equal([][]float64{{1.5, 2.5, 3.5}, {4.5, 5.5, 6.5}}, c.Float64s())
}

// TestScenarioDynamicProduct: dynamic<float32>(3,4) * dynamic<float32>(4,5).
func (s *OpsSuite) TestScenarioDynamicProduct() {
	a, err := linalg.New(grid(3, 4, func(i, k int) float32 { return float32(i + k) }))
	s.Require().NoError(err)
	b, err := linalg.New(grid(4, 5, func(k, j int) float32 { return float32(k * j) }))
	s.Require().NoError(err)

	c, err := linalg.Mul(a, b)
	s.Require().NoError(err)
	s.Equal(dynamicType(element.Float32), c.Engine().Type())
	s.Equal(3, c.Rows())
	s.Equal(5, c.Cols())
	for i := 0; i < 3; i++ {
		for j := 0; j < 5; j++ {
			want := 0.0
			for k := 0; k < 4; k++ {
				want += float64(i+k) * float64(k*j)
			}
			s.Equal(want, c.Float64s()[i][j], "(%d,%d)", i, j)
		}
	}
}

// TestScenarioNegate: -fixed<float32,2,3>{{1,2,3},{4,5,6}}.
func (s *OpsSuite) TestScenarioNegate() {
	a, err := linalg.NewFixed([][]float32{{1, 2, 3}, {4, 5, 6}})
	s.Require().NoError(err)

	n, err := linalg.Neg(a)
	s.Require().NoError(err)
	s.Equal(a.Engine().Type(), n.Engine().Type())
	s.Equal("[-1, -2, -3]\n[-4, -5, -6]\n", n.String())
}

// TestScenarioCustomPolicy: float+float→double only under the policy.
func (s *OpsSuite) TestScenarioCustomPolicy() {
	rows := grid(3, 3, func(i, j int) float32 { return float32(i*3 + j) })

	a, err := linalg.NewFixed(rows)
	s.Require().NoError(err)
	def, err := linalg.Add(a, a)
	s.Require().NoError(err)
	s.Equal(fixedType(element.Float32, 3, 3), def.Engine().Type())

	pa, err := linalg.NewFixed(rows, linalg.WithPolicy(widenFloat{}))
	s.Require().NoError(err)
	pb, err := linalg.NewFixed(rows, linalg.WithPolicy(widenFloat{}))
	s.Require().NoError(err)
	got, err := linalg.Add(pa, pb)
	s.Require().NoError(err)
	s.Equal(fixedType(element.Float64, 3, 3), got.Engine().Type())
	s.Equal(widenFloat{}, got.Policy())
	s.Equal(def.Float64s(), got.Float64s())

	// One Default operand defers to the other side.
	mixed, err := linalg.Add(a, pb)
	s.Require().NoError(err)
	s.Equal(fixedType(element.Float64, 3, 3), mixed.Engine().Type())
}

// TestScenarioRuntimeMismatch: dynamic (3,4) * (5,6).
func (s *OpsSuite) TestScenarioRuntimeMismatch() {
	a, err := linalg.Zeros(dynamicType(element.Float32), 3, 4)
	s.Require().NoError(err)
	b, err := linalg.Zeros(dynamicType(element.Float32), 5, 6)
	s.Require().NoError(err)

	_, err = linalg.ResultOf(element.OpMul, a, b)
	s.Require().NoError(err, "dynamic shapes are unknown at resolution")

	c, err := linalg.Mul(a, b)
	s.ErrorIs(err, linalg.ErrDimensionMismatch)
	s.Nil(c)
	s.Panics(func() { linalg.MustMul(a, b) })
}

func (s *OpsSuite) TestFixedMismatchIsStatic() {
	a, err := linalg.NewFixed([][]float64{{1, 2, 3}, {4, 5, 6}})
	s.Require().NoError(err)
	b, err := linalg.NewFixed([][]float64{{1, 2}, {3, 4}})
	s.Require().NoError(err)

	_, err = linalg.ResultOf(element.OpAdd, a, b)
	s.ErrorIs(err, linalg.ErrDimensionMismatch)
	_, err = linalg.Mul(a, b)
	s.ErrorIs(err, linalg.ErrDimensionMismatch)

	p, err := linalg.Mul(b, a)
	s.Require().NoError(err)
	s.Equal(fixedType(element.Float64, 2, 3), p.Engine().Type())
	s.Equal([][]float64{{9, 12, 15}, {19, 26, 33}}, p.Float64s())
}

func (s *OpsSuite) TestDynamicWins() {
	f, err := linalg.NewFixed([][]int32{{1, 2}, {3, 4}})
	s.Require().NoError(err)
	d, err := linalg.New([][]int64{{10, 20}, {30, 40}})
	s.Require().NoError(err)

	c, err := linalg.Sub(d, f)
	s.Require().NoError(err)
	s.Equal(dynamicType(element.Int64), c.Engine().Type())
	s.Equal([][]float64{{9, 18}, {27, 36}}, c.Float64s())
}

func (s *OpsSuite) TestViews() {
	a, err := linalg.NewFixed([][]float64{{1, 2, 3}, {4, 5, 6}})
	s.Require().NoError(err)

	at := a.T()
	s.Equal(3, at.Rows())
	s.True(at.Engine().Type().IsView())

	// A·Aᵀ keeps the fixed shape through the view.
	g, err := linalg.Mul(a, at)
	s.Require().NoError(err)
	s.Equal(fixedType(element.Float64, 2, 2), g.Engine().Type())
	s.Equal([][]float64{{14, 32}, {32, 77}}, g.Float64s())

	// Submatrix results are dynamic.
	sub, err := a.Sub(0, 1, 2, 2)
	s.Require().NoError(err)
	sum, err := linalg.Add(sub, sub)
	s.Require().NoError(err)
	s.Equal(dynamicType(element.Float64), sum.Engine().Type())
	s.Equal([][]float64{{4, 6}, {10, 12}}, sum.Float64s())

	// Views write through to the source.
	row, err := a.Row(1)
	s.Require().NoError(err)
	s.Require().NoError(row.Set(0, element.ValueOf(40.0)))
	x, err := a.At(1, 0)
	s.Require().NoError(err)
	s.Equal(40.0, x.Float64())
	s.Require().NoError(at.Set(2, 0, element.ValueOf(30.0)))
	s.Equal([]float64{30, 6}, s.column(a, 2))

	_, err = a.Sub(1, 1, 2, 2)
	s.ErrorIs(err, linalg.ErrOutOfRange)

	// Clone detaches.
	cl, err := at.Clone()
	s.Require().NoError(err)
	s.False(cl.Engine().Type().IsView())
	s.Require().NoError(cl.Set(0, 0, element.ValueOf(-1.0)))
	x, err = a.At(0, 0)
	s.Require().NoError(err)
	s.Equal(1.0, x.Float64())
}

func (s *OpsSuite) column(m *linalg.Matrix, j int) []float64 {
	c, err := m.Column(j)
	s.Require().NoError(err)

	return c.Float64s()
}

func (s *OpsSuite) TestVectors() {
	a, err := linalg.NewFixed([][]float64{{1, 2, 3}, {4, 5, 6}})
	s.Require().NoError(err)
	v, err := linalg.NewFixedVector([]float64{1, 0, -1})
	s.Require().NoError(err)
	w, err := linalg.NewFixedVector([]float32{1, 1})
	s.Require().NoError(err)

	av, err := linalg.MulVec(a, v)
	s.Require().NoError(err)
	s.Equal(engine.MustType(engine.FixedVectorType(element.Float64, 2)), av.Engine().Type())
	s.Equal([]float64{-2, -2}, av.Float64s())

	wa, err := linalg.VecMul(w, a)
	s.Require().NoError(err)
	s.Equal([]float64{5, 7, 9}, wa.Float64s())

	sum, err := linalg.AddVec(av, w)
	s.Require().NoError(err)
	s.Equal([]float64{-1, -1}, sum.Float64s())
	diff, err := linalg.SubVec(av, w)
	s.Require().NoError(err)
	s.Equal([]float64{-3, -3}, diff.Float64s())
	neg, err := linalg.NegVec(av)
	s.Require().NoError(err)
	s.Equal("[2, 2]", neg.String())
	sc, err := linalg.ScaleVec(av, linalg.ScalarOf(0.5))
	s.Require().NoError(err)
	s.Equal([]float64{-1, -1}, sc.Float64s())
	dv, err := linalg.DivVec(av, linalg.ScalarOf(-2.0))
	s.Require().NoError(err)
	s.Equal([]float64{1, 1}, dv.Float64s())

	_, err = linalg.Apply(element.OpMul, v, v)
	s.ErrorIs(err, linalg.ErrIncompatibleOperands)

	d, err := linalg.Dot(v, v)
	s.Require().NoError(err)
	s.Equal(2.0, d.Value().Float64())
	s.Equal(element.Float64, d.Value().Type())

	_, err = linalg.Dot(v, w)
	s.ErrorIs(err, linalg.ErrDimensionMismatch)
}

func (s *OpsSuite) TestScalars() {
	a, err := linalg.NewFixed([][]float32{{1, 2}, {3, 4}})
	s.Require().NoError(err)

	l, err := linalg.ScaleLeft(linalg.ScalarOf(2.0), a)
	s.Require().NoError(err)
	s.Equal(fixedType(element.Float64, 2, 2), l.Engine().Type())
	s.Equal([][]float64{{2, 4}, {6, 8}}, l.Float64s())

	r, err := linalg.Scale(a, linalg.ScalarOf(float32(3)))
	s.Require().NoError(err)
	s.Equal(fixedType(element.Float32, 2, 2), r.Engine().Type())
	s.Equal([][]float64{{3, 6}, {9, 12}}, r.Float64s())

	i, err := linalg.New([][]int{{7, 8}})
	s.Require().NoError(err)
	q, err := linalg.Div(i, linalg.ScalarOf(2))
	s.Require().NoError(err)
	s.Equal([][]float64{{3, 4}}, q.Float64s())
	_, err = linalg.Div(i, linalg.ScalarOf(0))
	s.ErrorIs(err, linalg.ErrDivideByZero)

	_, err = linalg.Apply(element.OpDiv, linalg.ScalarOf(1.0), a)
	s.ErrorIs(err, linalg.ErrIncompatibleOperands)
	_, err = linalg.Apply(element.OpAdd, a, linalg.ScalarOf(1.0))
	s.ErrorIs(err, linalg.ErrIncompatibleOperands)
}

func (s *OpsSuite) TestComplex() {
	c64, err := linalg.New([][]complex64{{1 + 1i}})
	s.Require().NoError(err)
	c128, err := linalg.New([][]complex128{{2}})
	s.Require().NoError(err)

	_, err = linalg.Add(c64, c128)
	s.ErrorIs(err, linalg.ErrHeterogeneousComplex)

	r := traits.NewResolver(traits.WithHeterogeneousComplex())
	h, err := linalg.New([][]complex64{{1 + 1i}}, linalg.WithResolver(r))
	s.Require().NoError(err)
	sum, err := linalg.Add(h, c128)
	s.Require().NoError(err)
	s.Equal(element.Complex128, sum.Element())

	f, err := linalg.New([][]float64{{0.5}})
	s.Require().NoError(err)
	mixed, err := linalg.Mul(c64, f)
	s.Require().NoError(err)
	s.Equal(element.Complex128, mixed.Element())
}

func (s *OpsSuite) TestPolicies() {
	a, err := linalg.New([][]float32{{1}}, linalg.WithPolicy(widenFloat{}))
	s.Require().NoError(err)
	b, err := linalg.New([][]float32{{1}}, linalg.WithPolicy(otherPolicy{}))
	s.Require().NoError(err)

	_, err = linalg.Add(a, b)
	s.ErrorIs(err, linalg.ErrPolicyConflict)
	_, err = linalg.Dot(nil, nil)
	s.ErrorIs(err, linalg.ErrNilObject)
	_, err = linalg.Add(a, nil)
	s.ErrorIs(err, linalg.ErrNilObject)

	// Negation carries the operand's policy and its default rule.
	n, err := linalg.Neg(a)
	s.Require().NoError(err)
	s.Equal(widenFloat{}, n.Policy())
	s.Equal(element.Float32, n.Element())
}

func (s *OpsSuite) TestCustomArithmetic() {
	p := linalg.WithPolicy(flattenSum{})
	a, err := linalg.New([][]float64{{1, 2}, {3, 4}}, p)
	s.Require().NoError(err)
	b, err := linalg.New([][]float64{{1, 1}, {1, 1}}, p)
	s.Require().NoError(err)

	res, err := linalg.ResultOf(element.OpAdd, a, b)
	s.Require().NoError(err)
	s.True(res.Custom.Arithmetic)
	s.Equal(traits.VectorObject, res.Result.Kind)

	out, err := linalg.Apply(element.OpAdd, a, b)
	s.Require().NoError(err)
	v, ok := out.(*linalg.Vector)
	s.Require().True(ok)
	s.Equal([]float64{5, 9}, v.Float64s())

	_, err = linalg.Add(a, b)
	s.ErrorIs(err, linalg.ErrResultKind)
}

func (s *OpsSuite) TestLayoutAndResolver() {
	r := traits.NewResolver()
	col := []linalg.Option{linalg.WithLayout(engine.ColumnMajor), linalg.WithResolver(r)}
	a, err := linalg.New([][]float64{{1, 2}, {3, 4}}, col...)
	s.Require().NoError(err)
	b, err := linalg.New([][]float64{{1, 0}, {0, 1}}, col...)
	s.Require().NoError(err)

	c, err := linalg.Mul(a, b)
	s.Require().NoError(err)
	s.Equal(engine.ColumnMajor, c.Engine().Type().Layout())
	s.Equal([][]float64{{1, 2}, {3, 4}}, c.Float64s())
	s.Equal(1, r.Cached())

	row, err := linalg.New([][]float64{{1, 0}, {0, 1}})
	s.Require().NoError(err)
	mixed, err := linalg.Add(a, row)
	s.Require().NoError(err)
	s.Equal(engine.RowMajor, mixed.Engine().Type().Layout())
	s.Equal(2, r.Cached())

	s.Panics(func() { linalg.WithResolver(nil) })
	s.Panics(func() { linalg.WithLayout(engine.Layout(9)) })
}

func TestOpsSuite(t *testing.T) {
	suite.Run(t, new(OpsSuite))
}

func TestMustVariants(t *testing.T) {
	a, err := linalg.NewFixed([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	v, err := linalg.NewFixedVector([]float64{1, 1})
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{2, 4}, {6, 8}}, linalg.MustAdd(a, a).Float64s())
	assert.Equal(t, [][]float64{{0, 0}, {0, 0}}, linalg.MustSub(a, a).Float64s())
	assert.Equal(t, [][]float64{{-1, -2}, {-3, -4}}, linalg.MustNeg(a).Float64s())
	assert.Equal(t, [][]float64{{7, 10}, {15, 22}}, linalg.MustMul(a, a).Float64s())
	assert.Equal(t, []float64{3, 7}, linalg.MustMulVec(a, v).Float64s())
	assert.Equal(t, []float64{4, 6}, linalg.MustVecMul(v, a).Float64s())
	assert.Equal(t, [][]float64{{0.5, 1}, {1.5, 2}}, linalg.MustScale(a, linalg.ScalarOf(0.5)).Float64s())
	assert.Equal(t, [][]float64{{0.5, 1}, {1.5, 2}}, linalg.MustDiv(a, linalg.ScalarOf(2.0)).Float64s())
	assert.Equal(t, []float64{2, 2}, linalg.MustAddVec(v, v).Float64s())
	assert.Equal(t, 2.0, linalg.MustDot(v, v).Value().Float64())

	var nilM *linalg.Matrix
	assert.Panics(t, func() { linalg.MustNeg(nilM) })
}

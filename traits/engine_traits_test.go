// SPDX-License-Identifier: MIT

package traits_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/element"
	"github.com/katalvlaran/lvlinalg/engine"
	"github.com/katalvlaran/lvlinalg/traits"
)

// TestEngine_FixedShapePropagation covers fixed + fixed and fixed * fixed.
func TestEngine_FixedShapePropagation(t *testing.T) {
	got, err := traits.AdditionEngine(nil, fixed(element.Float32, 2, 3), fixed(element.Float64, 2, 3))
	require.NoError(t, err)
	require.Equal(t, fixed(element.Float64, 2, 3), got)

	got, err = traits.MultiplicationEngine(nil, fixed(element.Int, 2, 4), fixed(element.Int, 4, 5))
	require.NoError(t, err)
	require.Equal(t, fixed(element.Int, 2, 5), got)

	got, err = traits.NegationEngine(nil, fixed(element.Float32, 2, 3))
	require.NoError(t, err)
	require.Equal(t, fixed(element.Float32, 2, 3), got)
}

// TestEngine_FixedMismatch reports statically known shape errors.
func TestEngine_FixedMismatch(t *testing.T) {
	_, err := traits.AdditionEngine(nil, fixed(element.Float32, 2, 3), fixed(element.Float32, 3, 2))
	require.ErrorIs(t, err, traits.ErrDimensionMismatch)

	_, err = traits.SubtractionEngine(nil, fixed(element.Float32, 2, 3), fixed(element.Float32, 2, 4))
	require.ErrorIs(t, err, traits.ErrDimensionMismatch)

	_, err = traits.MultiplicationEngine(nil, fixed(element.Float32, 2, 3), fixed(element.Float32, 2, 3))
	require.ErrorIs(t, err, traits.ErrDimensionMismatch)
}

// TestEngine_DynamicWins checks fixed/dynamic mixing for all binary operators
// that accept two engine operands, in both orders.
func TestEngine_DynamicWins(t *testing.T) {
	f := fixed(element.Float32, 3, 3)
	d := dynamic(element.Float64)
	for _, op := range []element.Op{element.OpAdd, element.OpSub, element.OpMul} {
		ab, err := traits.EngineType(nil, op, f, d)
		require.NoError(t, err)
		ba, err := traits.EngineType(nil, op, d, f)
		require.NoError(t, err)
		require.Equal(t, d, ab, "%v", op)
		require.Equal(t, d, ba, "%v", op)
	}

	// Division takes a scalar on the right: its shape follows the matrix.
	s := engine.MustType(engine.ScalarType(element.Float64))
	got, err := traits.DivisionEngine(nil, d, s)
	require.NoError(t, err)
	require.Equal(t, d, got)
	got, err = traits.DivisionEngine(nil, f, s)
	require.NoError(t, err)
	require.Equal(t, fixed(element.Float64, 3, 3), got)

	// A submatrix window is never fixed.
	sub := engine.MustType(engine.SubmatrixType(f))
	got, err = traits.AdditionEngine(nil, sub, f)
	require.NoError(t, err)
	require.Equal(t, dynamic(element.Float32), got)
}

// TestEngine_ViewTransparency: transpose(fixed(3,2)) + fixed(2,3) promotes as
// fixed(2,3) + fixed(2,3).
func TestEngine_ViewTransparency(t *testing.T) {
	tv := engine.MustType(engine.TransposeType(fixed(element.Float32, 3, 2)))
	viaView, err := traits.AdditionEngine(nil, tv, fixed(element.Float64, 2, 3))
	require.NoError(t, err)
	direct, err := traits.AdditionEngine(nil, fixed(element.Float32, 2, 3), fixed(element.Float64, 2, 3))
	require.NoError(t, err)
	require.Equal(t, direct, viaView)
	assert.False(t, viaView.IsView())

	// Negating a transposed view keeps its effective (column-major) shape.
	neg, err := traits.NegationEngine(nil, tv)
	require.NoError(t, err)
	require.Equal(t, "fixed<float32,2,3,col>", neg.String())

	// Rows and columns of fixed matrices are fixed vectors.
	row := engine.MustType(engine.RowType(fixed(element.Float32, 2, 3)))
	col := engine.MustType(engine.ColumnType(fixed(element.Float32, 3, 2)))
	got, err := traits.AdditionEngine(nil, row, col)
	require.NoError(t, err)
	require.Equal(t, engine.MustType(engine.FixedVectorType(element.Float32, 3)), got)
}

// TestEngine_Products covers matrix·vector, vector·matrix and scaling.
func TestEngine_Products(t *testing.T) {
	m := fixed(element.Float64, 2, 3)
	v3 := engine.MustType(engine.FixedVectorType(element.Float32, 3))
	v2 := engine.MustType(engine.FixedVectorType(element.Float32, 2))
	dv := engine.MustType(engine.DynamicVectorType(element.Float32))
	s := engine.MustType(engine.ScalarType(element.Int))

	got, err := traits.MultiplicationEngine(nil, m, v3)
	require.NoError(t, err)
	require.Equal(t, engine.MustType(engine.FixedVectorType(element.Float64, 2)), got)

	got, err = traits.MultiplicationEngine(nil, v2, m)
	require.NoError(t, err)
	require.Equal(t, engine.MustType(engine.FixedVectorType(element.Float64, 3)), got)

	got, err = traits.MultiplicationEngine(nil, m, dv)
	require.NoError(t, err)
	require.Equal(t, engine.MustType(engine.DynamicVectorType(element.Float64)), got)

	_, err = traits.MultiplicationEngine(nil, m, v2)
	require.ErrorIs(t, err, traits.ErrDimensionMismatch)

	_, err = traits.MultiplicationEngine(nil, v3, v3)
	require.ErrorIs(t, err, traits.ErrIncompatibleOperands)

	got, err = traits.MultiplicationEngine(nil, s, m)
	require.NoError(t, err)
	require.Equal(t, m, got)
	got, err = traits.MultiplicationEngine(nil, v3, s)
	require.NoError(t, err)
	require.Equal(t, v3, got)
}

// TestEngine_IncompatibleOperands covers undefined combinations.
func TestEngine_IncompatibleOperands(t *testing.T) {
	m := fixed(element.Float64, 2, 2)
	v := engine.MustType(engine.FixedVectorType(element.Float64, 2))
	s := engine.MustType(engine.ScalarType(element.Float64))

	for _, tc := range []struct {
		op   element.Op
		a, b engine.Type
	}{
		{element.OpAdd, m, v},
		{element.OpSub, s, s},
		{element.OpDiv, s, m},
		{element.OpDiv, m, m},
		{element.OpMul, s, s},
	} {
		_, err := traits.EngineType(nil, tc.op, tc.a, tc.b)
		require.ErrorIs(t, err, traits.ErrIncompatibleOperands, "%v %v %v", tc.a, tc.op, tc.b)
	}

	_, err := traits.EngineType(nil, element.OpAdd, m, engine.Type{})
	require.ErrorIs(t, err, traits.ErrInvalidObject)
}

// TestEngine_Layout is column-major only when every matrix operand is.
func TestEngine_Layout(t *testing.T) {
	col := engine.MustType(engine.DynamicType(element.Float64, engine.WithLayout(engine.ColumnMajor)))
	row := dynamic(element.Float64)

	got, err := traits.AdditionEngine(nil, col, col)
	require.NoError(t, err)
	require.Equal(t, engine.ColumnMajor, got.Layout())

	got, err = traits.AdditionEngine(nil, col, row)
	require.NoError(t, err)
	require.Equal(t, engine.RowMajor, got.Layout())
}

// TestEngine_Customization covers override and the never-a-view rule.
func TestEngine_Customization(t *testing.T) {
	got, err := traits.MultiplicationEngine(dynamicProducts{}, fixed(element.Int, 2, 2), fixed(element.Int, 2, 2))
	require.NoError(t, err)
	require.Equal(t, dynamic(element.Float64), got)

	// A view result is bypassed: the default rule applies.
	got, err = traits.AdditionEngine(viewResults{}, fixed(element.Int, 2, 2), fixed(element.Int, 2, 2))
	require.NoError(t, err)
	require.Equal(t, fixed(element.Int, 2, 2), got)
	require.True(t, traits.HasEngineTraits(viewResults{}, element.OpAdd), "the shape is fine, the value is not")

	// The element layer of the same policy feeds the default engine rule.
	got, err = traits.AdditionEngine(widenFloat{}, fixed(element.Float32, 3, 3), fixed(element.Float32, 3, 3))
	require.NoError(t, err)
	require.Equal(t, fixed(element.Float64, 3, 3), got)
}

// TestEngine_MalformedBehavesAsDefault runs malformed engine customizations
// through both the engine layer and full resolution.
func TestEngine_MalformedBehavesAsDefault(t *testing.T) {
	cases := []struct {
		name   string
		policy any
		op     element.Op
	}{
		{"non-func field", engineTypedef{AdditionEngineTraits: dynamic(element.Float64)}, element.OpAdd},
		{"wrong arity", engineArity{}, element.OpMul},
		{"wrong parameters", engineParams{}, element.OpAdd},
		{"missing member", engineMember{}, element.OpMul},
	}
	a, b := fixed(element.Int32, 2, 2), fixed(element.Float32, 2, 2)
	ignoreResult := cmpopts.IgnoreFields(traits.Resolution{}, "Result")

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.False(t, traits.ValidEngineTraits(tc.policy, tc.op))
			require.True(t, traits.ValidElementTraits(tc.policy, tc.op))

			r := traits.NewResolver()
			want, err := r.EngineType(traits.Default{}, tc.op, a, b)
			require.NoError(t, err)
			got, err := r.EngineType(tc.policy, tc.op, a, b)
			require.NoError(t, err)
			require.Equal(t, want, got)

			wantRes, err := r.Resolve(traits.Default{}, tc.op, objectOf(a), objectOf(b))
			require.NoError(t, err)
			gotRes, err := r.Resolve(tc.policy, tc.op, objectOf(a), objectOf(b))
			require.NoError(t, err)
			if diff := cmp.Diff(wantRes, gotRes, cmpOpts, ignoreResult); diff != "" {
				t.Fatalf("resolution mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, wantRes.Result.Engine, gotRes.Result.Engine)
			assert.False(t, gotRes.Custom.Engine)
		})
	}
}

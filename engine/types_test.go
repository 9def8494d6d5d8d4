// SPDX-License-Identifier: MIT

// Package engine_test covers engine type descriptors: interning, capability
// tags, effective shapes and the textual round trip.
package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/element"
	"github.com/katalvlaran/lvlinalg/engine"
)

// TestTypes_Interned ensures equal descriptions yield == types.
func TestTypes_Interned(t *testing.T) {
	a := engine.MustType(engine.FixedType(element.Float32, 2, 3))
	b := engine.MustType(engine.FixedType(element.Float32, 2, 3))
	require.Equal(t, a, b)
	require.True(t, a == b)

	c := engine.MustType(engine.FixedType(element.Float32, 2, 3, engine.WithLayout(engine.ColumnMajor)))
	require.NotEqual(t, a, c) // layout is part of identity
	require.Equal(t, "fixed<float32,2,3,col>", c.String())
}

// TestTypes_Rejects covers invalid construction inputs.
func TestTypes_Rejects(t *testing.T) {
	_, err := engine.FixedType(element.Float32, 0, 3)
	require.ErrorIs(t, err, engine.ErrInvalidDimensions)

	_, err = engine.FixedVectorType(element.Int, -1)
	require.ErrorIs(t, err, engine.ErrInvalidDimensions)

	_, err = engine.DynamicType(element.Type{})
	require.ErrorIs(t, err, engine.ErrNotMatrixElement)

	vec := engine.MustType(engine.DynamicVectorType(element.Float64))
	_, err = engine.TransposeType(vec)
	require.ErrorIs(t, err, engine.ErrIncompatibleEngine)

	require.Panics(t, func() { engine.WithLayout(engine.Layout(9)) })
}

// TestTypes_TraitsAndEffective walks capability tags through views.
func TestTypes_TraitsAndEffective(t *testing.T) {
	f23 := engine.MustType(engine.FixedType(element.Float32, 2, 3))
	dyn := engine.MustType(engine.DynamicType(element.Float64))

	tr := f23.Traits()
	assert.True(t, tr.FixedSize)
	assert.True(t, tr.Owning)
	assert.False(t, tr.Resizable)

	assert.True(t, dyn.Traits().Resizable)
	assert.False(t, dyn.Traits().FixedSize)

	tv := engine.MustType(engine.TransposeType(f23))
	s := tv.Effective()
	assert.Equal(t, engine.CategoryMatrix, s.Category)
	assert.Equal(t, 3, s.Rows)
	assert.Equal(t, 2, s.Cols)
	assert.True(t, s.Fixed)
	assert.Equal(t, engine.ColumnMajor, s.Layout)
	assert.False(t, tv.Traits().Owning)
	assert.True(t, tv.IsView())

	sub := engine.MustType(engine.SubmatrixType(f23))
	assert.False(t, sub.Effective().Fixed)
	assert.Equal(t, engine.DynamicDim, sub.Rows())

	row := engine.MustType(engine.RowType(f23))
	assert.Equal(t, engine.CategoryVector, row.Category())
	assert.Equal(t, 3, row.Len())
	col := engine.MustType(engine.ColumnType(f23))
	assert.Equal(t, 2, col.Len())
}

// TestTypes_WithElement materialises views into owning types.
func TestTypes_WithElement(t *testing.T) {
	f23 := engine.MustType(engine.FixedType(element.Float32, 2, 3))
	tv := engine.MustType(engine.TransposeType(f23))

	got, err := tv.WithElement(element.Float64)
	require.NoError(t, err)
	require.Equal(t, "fixed<float64,3,2,col>", got.String())
	require.False(t, got.IsView())

	row := engine.MustType(engine.RowType(f23))
	rv, err := row.WithElement(element.Int)
	require.NoError(t, err)
	require.Equal(t, engine.MustType(engine.FixedVectorType(element.Int, 3)), rv)
}

// TestParseType_RoundTrip checks ParseType(t.String()) == t.
func TestParseType_RoundTrip(t *testing.T) {
	f23 := engine.MustType(engine.FixedType(element.Float32, 2, 3))
	types := []engine.Type{
		f23,
		engine.MustType(engine.FixedType(element.Complex128, 4, 4, engine.WithLayout(engine.ColumnMajor))),
		engine.MustType(engine.DynamicType(element.Int16)),
		engine.MustType(engine.FixedVectorType(element.Uint8, 7)),
		engine.MustType(engine.DynamicVectorType(element.Float64)),
		engine.MustType(engine.ScalarType(element.Float32)),
		engine.MustType(engine.TransposeType(f23)),
		engine.MustType(engine.RowType(engine.MustType(engine.TransposeType(f23)))),
	}
	for _, want := range types {
		got, err := engine.ParseType(want.String())
		require.NoError(t, err, want.String())
		require.Equal(t, want, got)
	}

	got, err := engine.ParseType(" fixed < float32 , 2 , 3 > ")
	require.NoError(t, err)
	require.Equal(t, f23, got)
}

// TestParseType_Errors covers malformed input.
func TestParseType_Errors(t *testing.T) {
	for _, in := range []string{"", "fixed", "fixed<float32,2>", "fixed<float32,a,3>", "matrix<float32>", "dynamic<float64>x", "dynamic<float64,diag>"} {
		_, err := engine.ParseType(in)
		require.ErrorIs(t, err, engine.ErrParse, in)
	}
	_, err := engine.ParseType("dynamic<quaternion>")
	require.ErrorIs(t, err, engine.ErrNotMatrixElement)

	_, err = engine.ParseType("transpose<dynamic_vector<int>>")
	require.ErrorIs(t, err, engine.ErrIncompatibleEngine)
}

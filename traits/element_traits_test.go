// SPDX-License-Identifier: MIT

package traits_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/element"
	"github.com/katalvlaran/lvlinalg/traits"
)

var sample = []element.Type{
	element.Int8, element.Int32, element.Int, element.Uint16, element.Uint64,
	element.Float32, element.Float64, element.Complex64, element.Complex128,
}

// TestElement_DefaultFallbackTotality compares every pair against the
// built-in rule for policies that declare nothing.
func TestElement_DefaultFallbackTotality(t *testing.T) {
	for _, p := range []any{nil, traits.Default{}, dynamicProducts{}} {
		for _, op := range []element.Op{element.OpAdd, element.OpSub, element.OpMul, element.OpDiv} {
			for _, a := range sample {
				for _, b := range sample {
					want, wantErr := element.Promote(op, a, b)
					got, err := traits.ElementType(p, op, a, b)
					if wantErr != nil {
						require.ErrorIs(t, err, traits.ErrHeterogeneousComplex)
						continue
					}
					require.NoError(t, err)
					require.Equal(t, want, got, "%T: %v %v %v", p, a, op, b)
				}
			}
		}
	}
}

// TestElement_Commutative checks promote(a,b) == promote(b,a) under Default.
func TestElement_Commutative(t *testing.T) {
	for _, op := range []element.Op{element.OpAdd, element.OpSub, element.OpMul} {
		for _, a := range sample {
			for _, b := range sample {
				ab, errAB := traits.ElementType(traits.Default{}, op, a, b)
				ba, errBA := traits.ElementType(traits.Default{}, op, b, a)
				require.Equal(t, errAB == nil, errBA == nil)
				require.Equal(t, ab, ba)
			}
		}
	}
}

// TestElement_OverridePrecedence ensures a valid customization wins.
func TestElement_OverridePrecedence(t *testing.T) {
	def, err := traits.AdditionElement(traits.Default{}, element.Float32, element.Float32)
	require.NoError(t, err)
	require.Equal(t, element.Float32, def)

	for _, p := range []any{widenFloat{}, newFieldPolicy()} {
		got, err := traits.AdditionElement(p, element.Float32, element.Float32)
		require.NoError(t, err)
		require.Equal(t, element.Float64, got, "%T", p)

		// The zero member defers to the default rule.
		got, err = traits.AdditionElement(p, element.Int8, element.Int16)
		require.NoError(t, err)
		require.Equal(t, element.Int16, got)

		// Other operators are untouched.
		got, err = traits.SubtractionElement(p, element.Float32, element.Float32)
		require.NoError(t, err)
		require.Equal(t, element.Float32, got)
	}

	got, err := traits.NegationElement(getterPolicy{}, element.Uint8)
	require.NoError(t, err)
	require.Equal(t, element.Int64, got)
	got, err = traits.NegationElement(getterPolicy{}, element.Float32)
	require.NoError(t, err)
	require.Equal(t, element.Float32, got)
}

// TestElement_MalformedBehavesAsDefault is the malformed-customization
// safety property, including the non-func field case.
func TestElement_MalformedBehavesAsDefault(t *testing.T) {
	var buf bytes.Buffer
	r := traits.NewResolver(traits.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	for name, p := range malformedPolicies() {
		got, err := r.ElementType(p, element.OpAdd, element.Float32, element.Float32)
		require.NoError(t, err, name)
		require.Equal(t, element.Float32, got, name)
	}
	require.Contains(t, buf.String(), "customization bypassed")
	require.Contains(t, buf.String(), "AdditionElementTraits")
}

// TestElement_CustomizationError propagates an explicit refusal.
func TestElement_CustomizationError(t *testing.T) {
	_, err := traits.DivisionElement(refusingPolicy{}, element.Float64, element.Float64)
	require.ErrorIs(t, err, errRefused)

	got, err := traits.MultiplicationElement(refusingPolicy{}, element.Float64, element.Float64)
	require.NoError(t, err)
	require.Equal(t, element.Float64, got)
}

// TestElement_HeterogeneousComplexOption lifts the restriction per resolver.
func TestElement_HeterogeneousComplexOption(t *testing.T) {
	_, err := traits.AdditionElement(nil, element.Complex64, element.Complex128)
	require.ErrorIs(t, err, traits.ErrHeterogeneousComplex)

	r := traits.NewResolver(traits.WithHeterogeneousComplex())
	got, err := r.ElementType(nil, element.OpAdd, element.Complex64, element.Complex128)
	require.NoError(t, err)
	require.Equal(t, element.Complex128, got)
}

// TestElement_Rejects covers invalid inputs.
func TestElement_Rejects(t *testing.T) {
	_, err := traits.ElementType(nil, element.Op(9), element.Float32, element.Float32)
	require.ErrorIs(t, err, traits.ErrUnknownOp)

	_, err = traits.AdditionElement(widenFloat{}, element.Type{}, element.Float32)
	require.ErrorIs(t, err, traits.ErrNotMatrixElement)
}

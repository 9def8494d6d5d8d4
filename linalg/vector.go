// SPDX-License-Identifier: MIT

package linalg

import (
	"github.com/katalvlaran/lvlinalg/element"
	"github.com/katalvlaran/lvlinalg/engine"
	"github.com/katalvlaran/lvlinalg/traits"
)

// Vector pairs a vector engine with an operation policy.
type Vector struct {
	eng    engine.Vector
	policy any
	res    *traits.Resolver
}

// NewVector builds a dynamic vector holding xs.
func NewVector[T element.Number](xs []T, opts ...Option) (*Vector, error) {
	t, err := engine.DynamicVectorType(element.Of[T]())
	if err != nil {
		return nil, linalgErrorf("NewVector", err)
	}

	return fromSlice(t, xs, opts)
}

// NewFixedVector builds a fixed-length vector holding xs.
func NewFixedVector[T element.Number](xs []T, opts ...Option) (*Vector, error) {
	if len(xs) == 0 {
		return nil, linalgErrorf("NewFixedVector", ErrEmpty)
	}
	t, err := engine.FixedVectorType(element.Of[T](), len(xs))
	if err != nil {
		return nil, linalgErrorf("NewFixedVector", err)
	}

	return fromSlice(t, xs, opts)
}

// VectorFromEngine wraps an existing vector engine without copying.
func VectorFromEngine(eng engine.Vector, opts ...Option) (*Vector, error) {
	if eng == nil {
		return nil, linalgErrorf("VectorFromEngine", engine.ErrNilEngine)
	}
	o := gatherOptions(opts...)

	return &Vector{eng: eng, policy: o.policy, res: o.resolver}, nil
}

func fromSlice[T element.Number](t engine.Type, xs []T, opts []Option) (*Vector, error) {
	o := gatherOptions(opts...)
	eng, err := engine.NewVector(t, len(xs))
	if err != nil {
		return nil, err
	}
	for i, x := range xs {
		if err = eng.SetIndex(i, element.ValueOf(x)); err != nil {
			return nil, err
		}
	}

	return &Vector{eng: eng, policy: o.policy, res: o.resolver}, nil
}

// Engine returns the underlying engine.
func (v *Vector) Engine() engine.Vector { return v.eng }

// Policy returns the operation policy.
func (v *Vector) Policy() any { return v.policy }

// ObjectType returns the math-object type used for resolution.
func (v *Vector) ObjectType() traits.ObjectType { return traits.TypeOf(v.eng.Type(), v.policy) }

// Element returns the element type.
func (v *Vector) Element() element.Type { return v.eng.Type().Element() }

// Len returns the run-time length.
func (v *Vector) Len() int { return v.eng.Len() }

// At returns element i.
func (v *Vector) At(i int) (element.Value, error) { return v.eng.AtIndex(i) }

// Set stores x at i.
//
// Errors: ErrOutOfRange, ErrReadOnly, ErrLossyConversion.
func (v *Vector) Set(i int, x element.Value) error {
	mv, ok := v.eng.(engine.MutableVector)
	if !ok {
		return linalgErrorf("Vector.Set", ErrReadOnly)
	}

	return mv.SetIndex(i, x)
}

// Resize changes the length of a dynamic vector.
func (v *Vector) Resize(n int) error {
	rv, ok := v.eng.(engine.ResizableVector)
	if !ok {
		return linalgErrorf("Vector.Resize("+v.eng.Type().String()+")", ErrIncompatibleEngine)
	}

	return rv.Resize(n)
}

// Clone returns an owning deep copy.
func (v *Vector) Clone() (*Vector, error) {
	eng, err := engine.MaterializeVector(v.eng)
	if err != nil {
		return nil, linalgErrorf("Vector.Clone", err)
	}

	return &Vector{eng: eng, policy: v.policy, res: v.res}, nil
}

// Float64s returns the entries as float64.
func (v *Vector) Float64s() []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		x, _ := v.eng.AtIndex(i)
		out[i] = x.Float64()
	}

	return out
}

// String renders "[a, b, c]".
func (v *Vector) String() string { return engine.FormatVector(v.eng) }

func (v *Vector) payload() traits.Operand { return traits.VectorOperand(v.eng) }
func (v *Vector) operandPolicy() any { return v.policy }
func (v *Vector) operandResolver() *traits.Resolver { return v.res }

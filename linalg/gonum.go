// SPDX-License-Identifier: MIT
// Package linalg: gonum interop.
//
// Gonum works in float64 only. Export converts every element to float64
// (ErrLossyConversion for complex values with an imaginary part); import
// always yields dynamic float64 objects.

package linalg

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlinalg/element"
	"github.com/katalvlaran/lvlinalg/engine"
)

// Gonum copies m into a new *mat.Dense.
//
// Errors: ErrEmpty (gonum forbids zero dimensions), ErrLossyConversion.
func (m *Matrix) Gonum() (*mat.Dense, error) {
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, linalgErrorf("Matrix.Gonum", ErrEmpty)
	}
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x, err := m.eng.At(i, j)
			if err != nil {
				return nil, linalgErrorf("Matrix.Gonum", err)
			}
			f, err := x.Convert(element.Float64)
			if err != nil {
				return nil, linalgErrorf("Matrix.Gonum", err)
			}
			data = append(data, f.Float64())
		}
	}

	return mat.NewDense(r, c, data), nil
}

// FromGonum copies any gonum matrix into a dynamic float64 Matrix.
func FromGonum(src mat.Matrix, opts ...Option) (*Matrix, error) {
	if src == nil {
		return nil, linalgErrorf("FromGonum", ErrNilObject)
	}
	o := gatherOptions(opts...)
	t, err := engine.DynamicType(element.Float64, engine.WithLayout(o.layout))
	if err != nil {
		return nil, linalgErrorf("FromGonum", err)
	}
	r, c := src.Dims()
	eng, err := engine.New(t, r, c)
	if err != nil {
		return nil, linalgErrorf("FromGonum", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = eng.Set(i, j, element.ValueOf(src.At(i, j))); err != nil {
				return nil, linalgErrorf("FromGonum", err)
			}
		}
	}

	return &Matrix{eng: eng, policy: o.policy, res: o.resolver}, nil
}

// Gonum copies v into a new *mat.VecDense.
func (v *Vector) Gonum() (*mat.VecDense, error) {
	n := v.Len()
	if n == 0 {
		return nil, linalgErrorf("Vector.Gonum", ErrEmpty)
	}
	data := make([]float64, n)
	for i := range data {
		x, err := v.eng.AtIndex(i)
		if err != nil {
			return nil, linalgErrorf("Vector.Gonum", err)
		}
		f, err := x.Convert(element.Float64)
		if err != nil {
			return nil, linalgErrorf("Vector.Gonum", err)
		}
		data[i] = f.Float64()
	}

	return mat.NewVecDense(n, data), nil
}

// FromGonumVec copies a gonum vector into a dynamic float64 Vector.
func FromGonumVec(src mat.Vector, opts ...Option) (*Vector, error) {
	if src == nil {
		return nil, linalgErrorf("FromGonumVec", ErrNilObject)
	}
	xs := make([]float64, src.Len())
	for i := range xs {
		xs[i] = src.AtVec(i)
	}

	return NewVector(xs, opts...)
}

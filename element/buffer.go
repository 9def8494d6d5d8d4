// SPDX-License-Identifier: MIT
// Package element: typed contiguous storage.
//
// Purpose:
//   - Give the owning engines one flat buffer per matrix, typed by the
//     registered element (a []float32 for float32, a []Celsius for Celsius).
//   - Keep conversions at the boundary: Load tags, Store converts.
//
// Notes:
//   - Indices are not bounds-checked here; engines validate before calling.

package element

// Buffer is a typed, resizable, flat element store.
type Buffer interface {
	// Type returns the element type held by the buffer.
	Type() Type
	// Len returns the number of elements.
	Len() int
	// Load returns element i.
	Load(i int) Value
	// Store converts v to the buffer type and writes it at i.
	Store(i int, v Value) error
	// Clone returns an independent copy.
	Clone() Buffer
	// Resize changes the length to n, keeping the common prefix and zeroing
	// any new tail.
	Resize(n int)
}

// NewBuffer allocates a zeroed buffer of n elements of type t.
//
// Errors:
//   - ErrNotMatrixElement when t is not a registered element type.
func NewBuffer(t Type, n int) (Buffer, error) {
	if !IsMatrixElement(t) {
		return nil, elementErrorf("NewBuffer("+t.String()+")", ErrNotMatrixElement)
	}
	if n < 0 {
		n = 0
	}

	return t.d.newBuffer(n), nil
}

// realBuffer stores integer or floating-point elements.
type realBuffer[T Real] struct {
	t    Type
	data []T
}

func (b *realBuffer[T]) Type() Type { return b.t }

func (b *realBuffer[T]) Len() int { return len(b.data) }

func (b *realBuffer[T]) Load(i int) Value {
	x := b.data[i]
	k := b.t.Kind()
	switch {
	case k.IsSigned():
		return Value{t: b.t, i: int64(x)}
	case k.IsUnsigned():
		return Value{t: b.t, u: uint64(x)}
	default:
		return Value{t: b.t, f: float64(x)}
	}
}

func (b *realBuffer[T]) Store(i int, v Value) error {
	cv, err := v.Convert(b.t)
	if err != nil {
		return err
	}
	k := b.t.Kind()
	switch {
	case k.IsSigned():
		b.data[i] = T(cv.i)
	case k.IsUnsigned():
		b.data[i] = T(cv.u)
	default:
		b.data[i] = T(cv.f)
	}

	return nil
}

func (b *realBuffer[T]) Clone() Buffer {
	cp := make([]T, len(b.data))
	copy(cp, b.data)

	return &realBuffer[T]{t: b.t, data: cp}
}

func (b *realBuffer[T]) Resize(n int) {
	b.data = resizeSlice(b.data, n)
}

// complexBuffer stores complex elements.
type complexBuffer[T Complex] struct {
	t    Type
	data []T
}

func (b *complexBuffer[T]) Type() Type { return b.t }

func (b *complexBuffer[T]) Len() int { return len(b.data) }

func (b *complexBuffer[T]) Load(i int) Value {
	return Value{t: b.t, c: complex128(b.data[i])}
}

func (b *complexBuffer[T]) Store(i int, v Value) error {
	cv, err := v.Convert(b.t)
	if err != nil {
		return err
	}
	b.data[i] = T(cv.c)

	return nil
}

func (b *complexBuffer[T]) Clone() Buffer {
	cp := make([]T, len(b.data))
	copy(cp, b.data)

	return &complexBuffer[T]{t: b.t, data: cp}
}

func (b *complexBuffer[T]) Resize(n int) {
	b.data = resizeSlice(b.data, n)
}

func resizeSlice[T Number](s []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n <= cap(s) {
		old := len(s)
		s = s[:n]
		var zero T
		for i := old; i < n; i++ {
			s[i] = zero
		}

		return s
	}
	grown := make([]T, n)
	copy(grown, s)

	return grown
}

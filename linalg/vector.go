// SPDX-License-Identifier: MIT

// Package linalg - Vector: fixed-length, owned, mutable 1-D container.
//
// Purpose:
//   - Safe indexed access (At/Set return ErrOutOfRange instead of panicking).
//   - Element-wise arithmetic that always allocates a fresh result.
//   - Explicit copy-in / copy-out at every boundary (VectorOf, ToSlice, Clone).
//
// Complexity quicksheet:
//   - NewVector/VectorOf/Clone/ToSlice: O(n); At/Set: O(1); Add/Sub/Dot/Scale: O(n).

package linalg

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/numerics/scalar"
)

// Vector is a fixed-length sequence of T that exclusively owns its storage.
// The length only changes through Resize, which reallocates.
type Vector[T scalar.Scalar] struct {
	data []T
}

// vectorErrorf wraps err with Vector method context and index.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// NewVector returns a zero-filled vector of length n.
// Errors: ErrInvalidDimensions when n < 0.
func NewVector[T scalar.Scalar](n int) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("NewVector(%d): %w", n, ErrInvalidDimensions)
	}

	return &Vector[T]{data: make([]T, n)}, nil
}

// VectorOf returns a vector holding a copy of values.
// Later changes to values never reach the vector and vice versa.
func VectorOf[T scalar.Scalar](values ...T) *Vector[T] {
	data := make([]T, len(values))
	copy(data, values)

	return &Vector[T]{data: data}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
// Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	if err := validateIndex(i, len(v.data)); err != nil {
		return scalar.Zero[T](), vectorErrorf("At", i, err)
	}

	return v.data[i], nil
}

// Set stores x at index i or returns ErrOutOfRange.
// Complexity: O(1).
func (v *Vector[T]) Set(i int, x T) error {
	if err := validateIndex(i, len(v.data)); err != nil {
		return vectorErrorf("Set", i, err)
	}
	v.data[i] = x

	return nil
}

// Clone returns an independent deep copy.
func (v *Vector[T]) Clone() *Vector[T] { return VectorOf(v.data...) }

// ToSlice returns a copy of the elements.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// ToSet returns the distinct elements as a set.
func (v *Vector[T]) ToSet() map[T]struct{} {
	out := make(map[T]struct{}, len(v.data))
	for _, x := range v.data {
		out[x] = struct{}{}
	}

	return out
}

// CopyTo copies every element into dst starting at dst[index].
// Errors: ErrOutOfRange when index is negative or dst is too short.
func (v *Vector[T]) CopyTo(dst []T, index int) error {
	if index < 0 || index+len(v.data) > len(dst) {
		return vectorErrorf(opCopyTo, index, ErrOutOfRange)
	}
	copy(dst[index:], v.data)

	return nil
}

// Fill writes x into every element in place.
func (v *Vector[T]) Fill(x T) {
	for i := range v.data {
		v.data[i] = x
	}
}

// Clear resets every element to zero in place.
func (v *Vector[T]) Clear() { v.Fill(scalar.Zero[T]()) }

// Resize reallocates the vector to length n.
// The first min(old, n) elements are kept, new slots are zero, and elements
// past n are dropped. Any slice previously obtained via ToSlice is unaffected.
// Errors: ErrInvalidDimensions when n < 0.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return vectorErrorf(opResize, n, ErrInvalidDimensions)
	}
	data := make([]T, n)
	copy(data, v.data)
	v.data = data

	return nil
}

// Equal reports identical length and elements.
func (v *Vector[T]) Equal(w *Vector[T]) bool {
	if w == nil || len(v.data) != len(w.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != w.data[i] {
			return false
		}
	}

	return true
}

// EqualApprox reports identical length and |v[i]-w[i]| <= eps for all i.
// A NaN element never matches; equal infinities do.
// The tolerance defaults to DefaultEpsilon; override with WithEpsilon.
func (v *Vector[T]) EqualApprox(w *Vector[T], opts ...Option) bool {
	if w == nil || len(v.data) != len(w.data) {
		return false
	}
	eps := gatherOptions(opts...).eps
	for i := range v.data {
		if !scalar.Within(v.data[i], w.data[i], eps) {
			return false
		}
	}

	return true
}

// String renders "[e0\te1\t...\ten]"; an empty vector renders "[ ]".
func (v *Vector[T]) String() string {
	if len(v.data) == 0 {
		return _fmtEmpty
	}
	var b strings.Builder
	b.WriteString("[")
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtCellSep)
		}
		b.WriteString(fmt.Sprintf("%v", x))
	}
	b.WriteString("]")

	return b.String()
}

// ---------- arithmetic ----------

// Add returns v + w.
// Errors: ErrNilOperand, ErrDimensionMismatch on unequal lengths.
// Complexity: O(n).
func (v *Vector[T]) Add(w *Vector[T]) (*Vector[T], error) {
	if err := v.checkSameLen(w); err != nil {
		return nil, linalgErrorf("Vector."+opAdd, err)
	}
	out := make([]T, len(v.data))
	for i := range out {
		out[i] = v.data[i] + w.data[i]
	}

	return &Vector[T]{data: out}, nil
}

// Sub returns v - w.
// Errors: ErrNilOperand, ErrDimensionMismatch on unequal lengths.
// Complexity: O(n).
func (v *Vector[T]) Sub(w *Vector[T]) (*Vector[T], error) {
	if err := v.checkSameLen(w); err != nil {
		return nil, linalgErrorf("Vector."+opSub, err)
	}
	out := make([]T, len(v.data))
	for i := range out {
		out[i] = v.data[i] - w.data[i]
	}

	return &Vector[T]{data: out}, nil
}

// Negate returns -v.
func (v *Vector[T]) Negate() *Vector[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = -x
	}

	return &Vector[T]{data: out}
}

// Scale returns k·v.
func (v *Vector[T]) Scale(k T) *Vector[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = k * x
	}

	return &Vector[T]{data: out}
}

// Div returns v / k element-wise.
// Errors: ErrDivisionByZero when k is zero, for every scalar kind; integer
// division by zero would otherwise panic and float division would yield ±Inf/NaN.
func (v *Vector[T]) Div(k T) (*Vector[T], error) {
	if scalar.IsZero(k) {
		return nil, linalgErrorf("Vector."+opDiv, ErrDivisionByZero)
	}
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = x / k
	}

	return &Vector[T]{data: out}, nil
}

// Dot returns Σ v[i]·w[i].
// Errors: ErrNilOperand, ErrDimensionMismatch on unequal lengths.
// float64 and float32 vectors take the vek SIMD path (see vector_float.go).
// Complexity: O(n).
func (v *Vector[T]) Dot(w *Vector[T]) (T, error) {
	if err := v.checkSameLen(w); err != nil {
		return scalar.Zero[T](), linalgErrorf("Vector."+opDot, err)
	}

	return dot(v.data, w.data), nil
}

// Scalar is the scalar (dot) product of a and b; it mirrors a.Dot(b).
func Scalar[T scalar.Scalar](a, b *Vector[T]) (T, error) {
	if a == nil {
		return scalar.Zero[T](), linalgErrorf("Vector."+opDot, ErrNilOperand)
	}

	return a.Dot(b)
}

func (v *Vector[T]) checkSameLen(w *Vector[T]) error {
	if w == nil {
		return ErrNilOperand
	}

	return validateLen(len(w.data), len(v.data))
}

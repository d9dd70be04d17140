// SPDX-License-Identifier: MIT
// Package linalg: search helpers on Vector.
//
// Predicate and equality searches work for every scalar (complex included).
// Order-based helpers (Sort, BinarySearch, CountPositive, CountNegative) are
// package functions constrained to scalar.Real, so they do not exist for
// complex vectors at compile time.

package linalg

import (
	"slices"

	"github.com/katalvlaran/numerics/scalar"
)

// Exists reports whether any element satisfies match.
func (v *Vector[T]) Exists(match func(T) bool) bool {
	return slices.ContainsFunc(v.data, match)
}

// Find returns the first element satisfying match.
func (v *Vector[T]) Find(match func(T) bool) (T, bool) {
	if i := slices.IndexFunc(v.data, match); i >= 0 {
		return v.data[i], true
	}

	return scalar.Zero[T](), false
}

// FindLast returns the last element satisfying match.
func (v *Vector[T]) FindLast(match func(T) bool) (T, bool) {
	if i := v.FindLastIndex(match); i >= 0 {
		return v.data[i], true
	}

	return scalar.Zero[T](), false
}

// FindIndex returns the index of the first element satisfying match, or -1.
func (v *Vector[T]) FindIndex(match func(T) bool) int {
	return slices.IndexFunc(v.data, match)
}

// FindLastIndex returns the index of the last element satisfying match, or -1.
func (v *Vector[T]) FindLastIndex(match func(T) bool) int {
	for i := len(v.data) - 1; i >= 0; i-- {
		if match(v.data[i]) {
			return i
		}
	}

	return -1
}

// FindAll returns a new vector with every element satisfying match, in order.
func (v *Vector[T]) FindAll(match func(T) bool) *Vector[T] {
	out := make([]T, 0, len(v.data))
	for _, x := range v.data {
		if match(x) {
			out = append(out, x)
		}
	}

	return &Vector[T]{data: out}
}

// IndexOf returns the index of the first element equal to x, or -1.
func (v *Vector[T]) IndexOf(x T) int { return slices.Index(v.data, x) }

// LastIndexOf returns the index of the last element equal to x, or -1.
func (v *Vector[T]) LastIndexOf(x T) int {
	for i := len(v.data) - 1; i >= 0; i-- {
		if v.data[i] == x {
			return i
		}
	}

	return -1
}

// ---------- ordered scalars only ----------

// Sort sorts v ascending in place.
// Complexity: O(n log n).
func Sort[T scalar.Real](v *Vector[T]) { slices.Sort(v.data) }

// BinarySearch looks for x in a vector sorted ascending.
// It returns the position where x is (found == true) or would be inserted.
// On unsorted input the position is unspecified.
// Complexity: O(log n).
func BinarySearch[T scalar.Real](v *Vector[T], x T) (pos int, found bool) {
	return slices.BinarySearch(v.data, x)
}

// CountPositive returns the number of elements strictly greater than zero.
func CountPositive[T scalar.Real](v *Vector[T]) int {
	var n int
	for _, x := range v.data {
		if x > 0 {
			n++
		}
	}

	return n
}

// CountNegative returns the number of elements strictly less than zero.
func CountNegative[T scalar.Real](v *Vector[T]) int {
	var n int
	for _, x := range v.data {
		if x < 0 {
			n++
		}
	}

	return n
}

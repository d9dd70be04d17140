// SPDX-License-Identifier: MIT

// Package linalg - complex-scalar mirror.
//
// The complex variants are the same generic containers instantiated with
// complex128; every algorithm (Laplace determinant, adjugate inverse, products)
// runs through the shared dense engine. Complex numbers are not ordered, so
// Sort, BinarySearch, CountPositive, CountNegative and Norm do not accept them
// (compile-time rejection via scalar.Real). ComplexNorm replaces Norm.

package linalg

import (
	"math"

	"github.com/katalvlaran/numerics/scalar"
)

// Complex aliases over complex128.
type (
	ComplexVector       = Vector[complex128]
	ComplexMatrix       = Matrix[complex128]
	SquareComplexMatrix = SquareMatrix[complex128]
)

// NewComplexVector returns a zero-filled complex vector of length n.
func NewComplexVector(n int) (*ComplexVector, error) { return NewVector[complex128](n) }

// NewComplexMatrix returns a zero-filled rows×cols complex matrix.
func NewComplexMatrix(rows, cols int) (*ComplexMatrix, error) {
	return NewMatrix[complex128](rows, cols)
}

// NewSquareComplexMatrix returns a zero-filled dim×dim complex matrix.
func NewSquareComplexMatrix(dim int) (*SquareComplexMatrix, error) {
	return NewSquareMatrix[complex128](dim)
}

// ComplexNorm returns sqrt(Σ re²+im²), computed on the components directly
// rather than through the complex dot product (which would not conjugate).
// Complexity: O(n).
func ComplexNorm[T scalar.Complex](v *Vector[T]) float64 {
	var s, re, im float64
	var z complex128
	for _, x := range v.data {
		z = complex128(x)
		re, im = real(z), imag(z)
		s += re*re + im*im
	}

	return math.Sqrt(s)
}

// realScalar lifts a real constant into a complex element type.
func realScalar[T scalar.Complex](k float64) T { return T(complex(k, 0)) }

// ScaleReal returns k·v for a real constant k.
func ScaleReal[T scalar.Complex](k float64, v *Vector[T]) *Vector[T] {
	return v.Scale(realScalar[T](k))
}

// DivReal returns v / k for a real constant k.
// Errors: ErrDivisionByZero when k == 0.
func DivReal[T scalar.Complex](v *Vector[T], k float64) (*Vector[T], error) {
	return v.Div(realScalar[T](k))
}

// ScaleRealMatrix returns k·m for a real constant k.
func ScaleRealMatrix[T scalar.Complex](k float64, m *Matrix[T]) *Matrix[T] {
	return m.Scale(realScalar[T](k))
}

// ScaleRealSquare returns k·s for a real constant k.
func ScaleRealSquare[T scalar.Complex](k float64, s *SquareMatrix[T]) *SquareMatrix[T] {
	return s.Scale(realScalar[T](k))
}

// SPDX-License-Identifier: MIT

// Package linalg - Matrix: rectangular dense matrix over any scalar.
//
// Purpose:
//   - Rectangular r×c container with safe accessors and deep-copy semantics.
//   - Arithmetic with exact shape checks (ErrDimensionMismatch).
//   - Laplace determinant, minors, adjugate and inverse when the shape is square.
//
// Behavior highlights:
//   - Determinant of a non-square or empty matrix is the zero sentinel (no error),
//     while Minor/Cofactor/Adjugate/Inverse/Pow return ErrNonSquare for the same
//     input. The divergence is intentional and kept.

package linalg

import (
	"fmt"

	"github.com/katalvlaran/numerics/scalar"
)

// Matrix is a rows×cols row-major matrix that exclusively owns its storage.
type Matrix[T scalar.Scalar] struct {
	d dense[T]
}

// matrixErrorf wraps err with Matrix method context and coordinates.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// NewMatrix returns a zero-filled rows×cols matrix. 0×0, 0×n and n×0 are legal.
// Errors: ErrInvalidDimensions on negative sizes.
// Complexity: O(rows*cols).
func NewMatrix[T scalar.Scalar](rows, cols int) (*Matrix[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, fmt.Errorf("NewMatrix(%d,%d): %w", rows, cols, err)
	}

	return &Matrix[T]{d: newDense[T](rows, cols)}, nil
}

// NewMatrixFrom deep-copies a rectangular 2-D slice.
// Errors: ErrBadShape on ragged rows.
func NewMatrixFrom[T scalar.Scalar](rows [][]T) (*Matrix[T], error) {
	d, err := denseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("NewMatrixFrom: %w", err)
	}

	return &Matrix[T]{d: d}, nil
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.d.r }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.d.c }

// Shape returns (Rows, Cols).
func (m *Matrix[T]) Shape() (rows, cols int) { return m.d.r, m.d.c }

// Len returns Rows*Cols.
func (m *Matrix[T]) Len() int { return len(m.d.data) }

// IsSquare reports Rows == Cols.
func (m *Matrix[T]) IsSquare() bool { return m.d.r == m.d.c }

// At returns element (i, j) or ErrOutOfRange.
func (m *Matrix[T]) At(i, j int) (T, error) {
	off, err := m.d.indexOf(i, j)
	if err != nil {
		return scalar.Zero[T](), matrixErrorf("At", i, j, err)
	}

	return m.d.data[off], nil
}

// Set stores x at (i, j) or returns ErrOutOfRange.
func (m *Matrix[T]) Set(i, j int, x T) error {
	off, err := m.d.indexOf(i, j)
	if err != nil {
		return matrixErrorf("Set", i, j, err)
	}
	m.d.data[off] = x

	return nil
}

// Clone returns an independent deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] { return &Matrix[T]{d: m.d.clone()} }

// ToRows returns a [][]T copy of the contents.
func (m *Matrix[T]) ToRows() [][]T { return m.d.toRows() }

// Fill writes x into every cell in place.
func (m *Matrix[T]) Fill(x T) { m.d.fill(x) }

// Clear resets every cell to zero in place.
func (m *Matrix[T]) Clear() { m.d.fill(scalar.Zero[T]()) }

// Transpose returns a new Cols×Rows matrix with [i,j] = m[j,i]; m is unchanged.
func (m *Matrix[T]) Transpose() *Matrix[T] { return &Matrix[T]{d: transpose(&m.d)} }

// Determinant returns det(m) by Laplace expansion along the first column.
// Non-square and empty matrices yield the zero sentinel instead of an error.
// Recomputed on every call. Complexity: O(n!), see MaxLaplaceDim.
func (m *Matrix[T]) Determinant() T { return determinant(&m.d) }

// Minor returns the (n−1)×(n−1) matrix with row i and column j removed.
// Errors: ErrNonSquare when Rows != Cols; ErrOutOfRange for invalid i or j.
// Complexity: O(n²).
func (m *Matrix[T]) Minor(i, j int) (*Matrix[T], error) {
	if err := validateSquare(&m.d); err != nil {
		return nil, matrixErrorf(opMinor, i, j, err)
	}
	if _, err := m.d.indexOf(i, j); err != nil {
		return nil, matrixErrorf(opMinor, i, j, err)
	}

	return &Matrix[T]{d: minor(&m.d, i, j)}, nil
}

// Cofactor returns (−1)^(i+j)·det(Minor(i,j)).
// Errors: ErrNonSquare, ErrOutOfRange.
func (m *Matrix[T]) Cofactor(i, j int) (T, error) {
	if err := validateSquare(&m.d); err != nil {
		return scalar.Zero[T](), matrixErrorf(opCofactor, i, j, err)
	}
	if _, err := m.d.indexOf(i, j); err != nil {
		return scalar.Zero[T](), matrixErrorf(opCofactor, i, j, err)
	}

	return cofactor(&m.d, i, j), nil
}

// Adjugate returns the transpose of the cofactor matrix.
// Errors: ErrNonSquare.
func (m *Matrix[T]) Adjugate() (*Matrix[T], error) {
	if err := validateSquare(&m.d); err != nil {
		return nil, linalgErrorf("Matrix."+opAdjugate, err)
	}

	return &Matrix[T]{d: adjugate(&m.d)}, nil
}

// Inverse returns m⁻¹ = (1/det)·adj(m).
// Implementation:
//   - Stage 1: require a square shape (ErrNonSquare).
//   - Stage 2: compute det; zero → ErrSingular.
//   - Stage 3: build the adjugate from n² cofactors and scale by 1/det.
//
// Errors: ErrNonSquare, ErrSingular (both wrap ErrStructural).
// Complexity: O(n²·(n−1)!), unsuitable beyond MaxLaplaceDim.
func (m *Matrix[T]) Inverse() (*Matrix[T], error) {
	if err := validateSquare(&m.d); err != nil {
		return nil, linalgErrorf("Matrix."+opInverse, err)
	}
	inv, err := inverse(&m.d)
	if err != nil {
		return nil, linalgErrorf("Matrix."+opInverse, err)
	}

	return &Matrix[T]{d: inv}, nil
}

// Add returns m + b. Errors: ErrNilOperand, ErrDimensionMismatch.
func (m *Matrix[T]) Add(b *Matrix[T]) (*Matrix[T], error) {
	if b == nil {
		return nil, linalgErrorf("Matrix."+opAdd, ErrNilOperand)
	}
	if err := validateSameShape(&m.d, &b.d); err != nil {
		return nil, linalgErrorf("Matrix."+opAdd, err)
	}

	return &Matrix[T]{d: addSub(&m.d, &b.d, false)}, nil
}

// Sub returns m - b. Errors: ErrNilOperand, ErrDimensionMismatch.
func (m *Matrix[T]) Sub(b *Matrix[T]) (*Matrix[T], error) {
	if b == nil {
		return nil, linalgErrorf("Matrix."+opSub, ErrNilOperand)
	}
	if err := validateSameShape(&m.d, &b.d); err != nil {
		return nil, linalgErrorf("Matrix."+opSub, err)
	}

	return &Matrix[T]{d: addSub(&m.d, &b.d, true)}, nil
}

// Negate returns -m.
func (m *Matrix[T]) Negate() *Matrix[T] { return &Matrix[T]{d: negate(&m.d)} }

// Scale returns k·m.
func (m *Matrix[T]) Scale(k T) *Matrix[T] { return &Matrix[T]{d: scale(k, &m.d)} }

// Mul returns the product m × b (Rows × b.Cols).
// Errors: ErrNilOperand, ErrDimensionMismatch when m.Cols != b.Rows.
// Complexity: O(r·n·c).
func (m *Matrix[T]) Mul(b *Matrix[T]) (*Matrix[T], error) {
	if b == nil {
		return nil, linalgErrorf("Matrix."+opMul, ErrNilOperand)
	}
	if err := validateMulCompatible(&m.d, &b.d); err != nil {
		return nil, fmt.Errorf("Matrix.%s: %dx%d × %dx%d: %w", opMul, m.d.r, m.d.c, b.d.r, b.d.c, err)
	}

	return &Matrix[T]{d: mul(&m.d, &b.d)}, nil
}

// MulVector returns m·v as a vector of length Rows.
// Errors: ErrNilOperand, ErrDimensionMismatch when v.Len() != Cols.
func (m *Matrix[T]) MulVector(v *Vector[T]) (*Vector[T], error) {
	if v == nil {
		return nil, linalgErrorf("Matrix."+opMulVector, ErrNilOperand)
	}
	if err := validateLen(len(v.data), m.d.c); err != nil {
		return nil, linalgErrorf("Matrix."+opMulVector, err)
	}

	return &Vector[T]{data: matVec(&m.d, v.data)}, nil
}

// Pow returns m^degree by repeated multiplication; Pow(1) is a copy of m.
// Errors: ErrNonSquare; ErrInvalidDegree when degree < 1.
// Complexity: O((degree−1)·n³).
func (m *Matrix[T]) Pow(degree int) (*Matrix[T], error) {
	if err := validateSquare(&m.d); err != nil {
		return nil, linalgErrorf("Matrix."+opPow, err)
	}
	if degree < 1 {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", opPow, degree, ErrInvalidDegree)
	}

	return &Matrix[T]{d: pow(&m.d, degree)}, nil
}

// ToSquare reinterprets m as a SquareMatrix (deep copy).
// Errors: ErrInvalidCast when Rows != Cols.
func (m *Matrix[T]) ToSquare() (*SquareMatrix[T], error) {
	if m.d.r != m.d.c {
		return nil, fmt.Errorf("Matrix.%s: %dx%d: %w", opToSquare, m.d.r, m.d.c, ErrInvalidCast)
	}

	return &SquareMatrix[T]{d: m.d.clone()}, nil
}

// Equal reports identical shape and elements.
func (m *Matrix[T]) Equal(b *Matrix[T]) bool { return b != nil && m.d.equal(&b.d) }

// EqualApprox reports identical shape and element distance within epsilon.
func (m *Matrix[T]) EqualApprox(b *Matrix[T], opts ...Option) bool {
	return b != nil && m.d.equalApprox(&b.d, gatherOptions(opts...).eps)
}

// String renders row-major, tab after each cell, newline after each row;
// an empty matrix renders "[ ]".
func (m *Matrix[T]) String() string { return m.d.String() }

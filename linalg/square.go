// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/numerics/scalar"
)

// SquareMatrix is an n×n matrix whose shape invariant is fixed at
// construction. Operations between two SquareMatrix values only need to agree
// on Dim; the "is it square" checks that Matrix performs never fail here.
type SquareMatrix[T scalar.Scalar] struct {
	d dense[T]
}

func squareErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("SquareMatrix.%s(%d,%d): %w", method, row, col, err)
}

// NewSquareMatrix returns a zero-filled dim×dim matrix.
// Errors: ErrInvalidDimensions when dim < 0.
func NewSquareMatrix[T scalar.Scalar](dim int) (*SquareMatrix[T], error) {
	if err := validateDims(dim, dim); err != nil {
		return nil, fmt.Errorf("NewSquareMatrix(%d): %w", dim, err)
	}

	return &SquareMatrix[T]{d: newDense[T](dim, dim)}, nil
}

// NewSquareMatrixFrom deep-copies an n×n 2-D slice.
// Errors: ErrBadShape on ragged rows; ErrNonSquare when rows != cols.
func NewSquareMatrixFrom[T scalar.Scalar](rows [][]T) (*SquareMatrix[T], error) {
	d, err := denseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("NewSquareMatrixFrom: %w", err)
	}
	if err = validateSquare(&d); err != nil {
		return nil, fmt.Errorf("NewSquareMatrixFrom: %dx%d: %w", d.r, d.c, err)
	}

	return &SquareMatrix[T]{d: d}, nil
}

// Identity returns the dim×dim identity matrix.
// Errors: ErrInvalidDimensions when dim < 0.
func Identity[T scalar.Scalar](dim int) (*SquareMatrix[T], error) {
	s, err := NewSquareMatrix[T](dim)
	if err != nil {
		return nil, err
	}
	one := scalar.One[T]()
	for i := 0; i < dim; i++ {
		s.d.data[i*dim+i] = one
	}

	return s, nil
}

// Dim returns n.
func (s *SquareMatrix[T]) Dim() int { return s.d.r }

// Rows returns n.
func (s *SquareMatrix[T]) Rows() int { return s.d.r }

// Cols returns n.
func (s *SquareMatrix[T]) Cols() int { return s.d.c }

// Len returns n².
func (s *SquareMatrix[T]) Len() int { return len(s.d.data) }

// At returns element (i, j) or ErrOutOfRange.
func (s *SquareMatrix[T]) At(i, j int) (T, error) {
	off, err := s.d.indexOf(i, j)
	if err != nil {
		return scalar.Zero[T](), squareErrorf("At", i, j, err)
	}

	return s.d.data[off], nil
}

// Set stores x at (i, j) or returns ErrOutOfRange.
func (s *SquareMatrix[T]) Set(i, j int, x T) error {
	off, err := s.d.indexOf(i, j)
	if err != nil {
		return squareErrorf("Set", i, j, err)
	}
	s.d.data[off] = x

	return nil
}

// Clone returns an independent deep copy.
func (s *SquareMatrix[T]) Clone() *SquareMatrix[T] { return &SquareMatrix[T]{d: s.d.clone()} }

// ToRows returns a [][]T copy of the contents.
func (s *SquareMatrix[T]) ToRows() [][]T { return s.d.toRows() }

// ToMatrix returns the same contents as a rectangular Matrix (deep copy).
func (s *SquareMatrix[T]) ToMatrix() *Matrix[T] { return &Matrix[T]{d: s.d.clone()} }

// Fill writes x into every cell in place.
func (s *SquareMatrix[T]) Fill(x T) { s.d.fill(x) }

// Clear resets every cell to zero in place.
func (s *SquareMatrix[T]) Clear() { s.d.fill(scalar.Zero[T]()) }

// Transpose returns sᵀ.
func (s *SquareMatrix[T]) Transpose() *SquareMatrix[T] {
	return &SquareMatrix[T]{d: transpose(&s.d)}
}

// Trace returns the sum of the main diagonal; zero for a 0×0 matrix.
func (s *SquareMatrix[T]) Trace() T { return trace(&s.d) }

// Determinant returns det(s) by Laplace expansion; zero for a 0×0 matrix.
// Complexity: O(n!).
func (s *SquareMatrix[T]) Determinant() T { return determinant(&s.d) }

// Minor returns s with row i and column j removed.
// Errors: ErrOutOfRange.
func (s *SquareMatrix[T]) Minor(i, j int) (*SquareMatrix[T], error) {
	if _, err := s.d.indexOf(i, j); err != nil {
		return nil, squareErrorf(opMinor, i, j, err)
	}

	return &SquareMatrix[T]{d: minor(&s.d, i, j)}, nil
}

// Cofactor returns (−1)^(i+j)·det(Minor(i,j)).
// Errors: ErrOutOfRange.
func (s *SquareMatrix[T]) Cofactor(i, j int) (T, error) {
	if _, err := s.d.indexOf(i, j); err != nil {
		return scalar.Zero[T](), squareErrorf(opCofactor, i, j, err)
	}

	return cofactor(&s.d, i, j), nil
}

// Adjugate returns the transpose of the cofactor matrix.
func (s *SquareMatrix[T]) Adjugate() *SquareMatrix[T] {
	return &SquareMatrix[T]{d: adjugate(&s.d)}
}

// Inverse returns s⁻¹ = (1/det)·adj(s).
// Errors: ErrSingular when det(s) is zero, including the 0×0 matrix.
// Complexity: O(n²·(n−1)!).
func (s *SquareMatrix[T]) Inverse() (*SquareMatrix[T], error) {
	inv, err := inverse(&s.d)
	if err != nil {
		return nil, linalgErrorf("SquareMatrix."+opInverse, err)
	}

	return &SquareMatrix[T]{d: inv}, nil
}

// Add returns s + b. Errors: ErrNilOperand, ErrDimensionMismatch.
func (s *SquareMatrix[T]) Add(b *SquareMatrix[T]) (*SquareMatrix[T], error) {
	if b == nil {
		return nil, linalgErrorf("SquareMatrix."+opAdd, ErrNilOperand)
	}

	return s.addSub(opAdd, &b.d, false)
}

// Sub returns s - b. Errors: ErrNilOperand, ErrDimensionMismatch.
func (s *SquareMatrix[T]) Sub(b *SquareMatrix[T]) (*SquareMatrix[T], error) {
	if b == nil {
		return nil, linalgErrorf("SquareMatrix."+opSub, ErrNilOperand)
	}

	return s.addSub(opSub, &b.d, true)
}

// AddMatrix returns s + m for an n×n rectangular m.
// Errors: ErrNilOperand, ErrDimensionMismatch.
func (s *SquareMatrix[T]) AddMatrix(m *Matrix[T]) (*SquareMatrix[T], error) {
	if m == nil {
		return nil, linalgErrorf("SquareMatrix.AddMatrix", ErrNilOperand)
	}

	return s.addSub("AddMatrix", &m.d, false)
}

// SubMatrix returns s - m for an n×n rectangular m.
// Errors: ErrNilOperand, ErrDimensionMismatch.
func (s *SquareMatrix[T]) SubMatrix(m *Matrix[T]) (*SquareMatrix[T], error) {
	if m == nil {
		return nil, linalgErrorf("SquareMatrix.SubMatrix", ErrNilOperand)
	}

	return s.addSub("SubMatrix", &m.d, true)
}

func (s *SquareMatrix[T]) addSub(op string, b *dense[T], subtract bool) (*SquareMatrix[T], error) {
	if err := validateSameShape(&s.d, b); err != nil {
		return nil, linalgErrorf("SquareMatrix."+op, err)
	}

	return &SquareMatrix[T]{d: addSub(&s.d, b, subtract)}, nil
}

// Negate returns -s.
func (s *SquareMatrix[T]) Negate() *SquareMatrix[T] { return &SquareMatrix[T]{d: negate(&s.d)} }

// Scale returns k·s.
func (s *SquareMatrix[T]) Scale(k T) *SquareMatrix[T] {
	return &SquareMatrix[T]{d: scale(k, &s.d)}
}

// Mul returns s × b. Errors: ErrNilOperand, ErrDimensionMismatch.
// Complexity: O(n³).
func (s *SquareMatrix[T]) Mul(b *SquareMatrix[T]) (*SquareMatrix[T], error) {
	if b == nil {
		return nil, linalgErrorf("SquareMatrix."+opMul, ErrNilOperand)
	}
	if err := validateMulCompatible(&s.d, &b.d); err != nil {
		return nil, fmt.Errorf("SquareMatrix.%s: %dx%d × %dx%d: %w", opMul, s.d.r, s.d.c, b.d.r, b.d.c, err)
	}

	return &SquareMatrix[T]{d: mul(&s.d, &b.d)}, nil
}

// MulMatrix returns s × m as an n×m.Cols rectangular matrix.
// Errors: ErrNilOperand, ErrDimensionMismatch when m.Rows != n.
func (s *SquareMatrix[T]) MulMatrix(m *Matrix[T]) (*Matrix[T], error) {
	if m == nil {
		return nil, linalgErrorf("SquareMatrix.MulMatrix", ErrNilOperand)
	}
	if err := validateMulCompatible(&s.d, &m.d); err != nil {
		return nil, fmt.Errorf("SquareMatrix.MulMatrix: %dx%d × %dx%d: %w", s.d.r, s.d.c, m.d.r, m.d.c, err)
	}

	return &Matrix[T]{d: mul(&s.d, &m.d)}, nil
}

// MulVector returns s·v.
// Errors: ErrNilOperand, ErrDimensionMismatch when v.Len() != n.
func (s *SquareMatrix[T]) MulVector(v *Vector[T]) (*Vector[T], error) {
	if v == nil {
		return nil, linalgErrorf("SquareMatrix."+opMulVector, ErrNilOperand)
	}
	if err := validateLen(len(v.data), s.d.c); err != nil {
		return nil, linalgErrorf("SquareMatrix."+opMulVector, err)
	}

	return &Vector[T]{data: matVec(&s.d, v.data)}, nil
}

// Pow returns s^degree; Pow(1) is a copy of s.
// Errors: ErrInvalidDegree when degree < 1.
func (s *SquareMatrix[T]) Pow(degree int) (*SquareMatrix[T], error) {
	if degree < 1 {
		return nil, fmt.Errorf("SquareMatrix.%s(%d): %w", opPow, degree, ErrInvalidDegree)
	}

	return &SquareMatrix[T]{d: pow(&s.d, degree)}, nil
}

// Equal reports identical dimension and elements.
func (s *SquareMatrix[T]) Equal(b *SquareMatrix[T]) bool { return b != nil && s.d.equal(&b.d) }

// EqualApprox reports identical dimension and element distance within epsilon.
func (s *SquareMatrix[T]) EqualApprox(b *SquareMatrix[T], opts ...Option) bool {
	return b != nil && s.d.equalApprox(&b.d, gatherOptions(opts...).eps)
}

// String renders like Matrix.String.
func (s *SquareMatrix[T]) String() string { return s.d.String() }

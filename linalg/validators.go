// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//  - Provide a single source of truth for shape, index and nil checks.
//  - Return plain sentinel errors (no wrapping) so call sites wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing.

package linalg

import "github.com/katalvlaran/numerics/scalar"

// validateDims rejects negative dimensions.
func validateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrInvalidDimensions
	}

	return nil
}

// validateIndex checks 0 ≤ i < n.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

// validateSameShape checks a and b have equal rows and columns.
// Assumes both are non-nil.
func validateSameShape[T scalar.Scalar](a, b *dense[T]) error {
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// validateMulCompatible checks the inner dimensions of a × b.
func validateMulCompatible[T scalar.Scalar](a, b *dense[T]) error {
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// validateSquare checks Rows == Cols.
func validateSquare[T scalar.Scalar](d *dense[T]) error {
	if d.r != d.c {
		return ErrNonSquare
	}

	return nil
}

// validateLen checks a vector length against the required size n.
func validateLen(got, n int) error {
	if got != n {
		return ErrDimensionMismatch
	}

	return nil
}

// validateRectangular checks that every row of a 2-D input has the same length.
// Returns the column count of the first row (0 for no rows).
func validateRectangular[T any](rows [][]T) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return 0, ErrBadShape
		}
	}

	return cols, nil
}

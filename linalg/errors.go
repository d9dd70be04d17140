// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the linalg
// package. Every operation returns one of these (possibly wrapped with call-site
// context) and tests match them via errors.Is. No operation panics on
// user-triggered error conditions.

package linalg

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linalg: ..." for easy grepping.
// Detection sites wrap with "<Type>.<Op>(args): %w"; callers use errors.Is.
//
// Structural taxonomy: ErrDimensionMismatch, ErrNonSquare, ErrSingular and
// ErrInvalidDegree all wrap ErrStructural, so a caller that only cares about
// "the shapes do not allow this operation" can test a single sentinel.

var (
	// ErrInvalidDimensions is returned when a requested length, row or column
	// count is negative. Zero is legal (empty containers).
	ErrInvalidDimensions = errors.New("linalg: dimensions must be >= 0")

	// ErrBadShape signals a ragged 2-D input (rows of differing lengths).
	ErrBadShape = errors.New("linalg: rows must have equal length")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrNilOperand indicates that a nil container was passed as an argument.
	ErrNilOperand = errors.New("linalg: nil operand")

	// ErrStructural is the umbrella for every shape/structure violation.
	ErrStructural = errors.New("linalg: structural error")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add of
	// different shapes, Mul where a.Cols != b.Rows, Dot of unequal lengths.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrStructural)

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrStructural)

	// ErrSingular is returned by Inverse when the determinant equals zero.
	ErrSingular = fmt.Errorf("%w: singular matrix", ErrStructural)

	// ErrInvalidDegree is returned by Pow when degree < 1.
	ErrInvalidDegree = fmt.Errorf("%w: degree must be >= 1", ErrStructural)

	// ErrInvalidCast is returned when a rectangular matrix is reinterpreted
	// as a square one but Rows != Cols.
	ErrInvalidCast = errors.New("linalg: invalid cast to square matrix")

	// ErrDivisionByZero is returned when a container is divided by the zero scalar.
	ErrDivisionByZero = errors.New("linalg: division by zero")
)

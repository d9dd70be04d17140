// SPDX-License-Identifier: MIT

// Package linalg provides dense vectors and matrices over a generic scalar.
//
// The package offers:
//
//   - Vector[T] with safe indexing, element-wise arithmetic, dot product,
//     search helpers and, for ordered scalars, Sort/BinarySearch/Norm.
//   - Matrix[T] (rectangular) and SquareMatrix[T] (shape fixed at construction)
//     sharing one row-major engine: transpose, products, powers, minors,
//     cofactors, adjugate, determinant and inverse.
//   - A complex mirror (ComplexVector, ComplexMatrix, SquareComplexMatrix) that
//     is the same code instantiated with complex128.
//
// Every result is a freshly allocated container; operands are never mutated
// except by the explicit in-place methods Set, Fill, Clear and Resize.
//
// Determinant uses Laplace expansion along the first column and Inverse uses
// the adjugate, so both are exact for integer and complex scalars but cost
// O(n!) and O(n²·(n−1)!) respectively. Keep inputs at or below MaxLaplaceDim.
//
// Errors are sentinels (ErrOutOfRange, ErrDimensionMismatch, ErrNonSquare,
// ErrSingular, ...) wrapped with call-site context; match them with errors.Is.
// A non-square Matrix has a zero Determinant rather than an error.
//
// Containers are not safe for concurrent mutation. Concurrent reads of a
// container nobody mutates are safe.
package linalg

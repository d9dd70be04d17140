// SPDX-License-Identifier: MIT

// Package numerics is a generic dense linear-algebra kernel for small systems:
// vectors, rectangular and square matrices over any integer, float or complex
// element type, with exact cofactor-expansion determinants and inverses.
//
// What is numerics?
//
//	A pure-Go library built on type parameters that brings together:
//		• Scalar constraints and helpers (zero, one, parse, distance)
//		• Vector: owned, bounds-checked, element-wise arithmetic, dot product
//		• Matrix / SquareMatrix: shape-checked +, −, ×, power, transpose
//		• Laplace determinant, minors, cofactors, adjugate, inverse
//		• Complex mirror: complex128 aliases, scaling by a real constant
//		• YAML/JSON matrix documents and a finite-element mesh consumer
//
// Packages:
//
//	scalar/  Scalar, Real and Complex constraints plus value helpers
//	linalg/  Vector, Matrix, SquareMatrix, complex aliases, sentinel errors
//	codec/   matrix/square/vector YAML documents (decode and encode)
//	mesh/    nodes, edges, elements, boundaries; element area and volume
//
// The numerics command (cmd/numerics) runs det, inv, transpose, mul, pow,
// norm, equal and mesh reports on documents from the shell.
//
// Quick example:
//
//	    ┌ 1 2 ┐
//	A = └ 3 4 ┘      det(A) = −2,   A⁻¹ = ┌ −2    1   ┐
//	                                      └ 1.5  −0.5 ┘
//
//	go get github.com/katalvlaran/numerics
package numerics

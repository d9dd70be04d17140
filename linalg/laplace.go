// SPDX-License-Identifier: MIT

// Package linalg - cofactor (Laplace) expansion kernels.
//
// Purpose:
//   - Determinant by recursive expansion along the first column.
//   - Minor extraction by index remapping into a freshly owned buffer.
//   - Inverse as (1/det)·adj(A), adj(A) = transpose of the cofactor matrix.
//
// Complexity:
//   - determinant: O(n!) time, O(n²) live memory per recursion level.
//   - adjugate / inverse: n² determinants of (n−1)×(n−1) minors, O(n²·(n−1)!).
//   - Practical only for small n (see MaxLaplaceDim). No decomposition-based
//     shortcut is taken: expansion uses only +, −, ×, so integer and complex
//     scalars get exact results without any division.

package linalg

import "github.com/katalvlaran/numerics/scalar"

// minor returns the (r−1)×(c−1) engine with row `row` and column `col` removed.
// Implementation:
//   - Stage 1: allocate the result.
//   - Stage 2: walk the source in row-major order skipping the removed row/col.
//
// Indices must be validated by the caller.
// Complexity: O(r*c).
func minor[T scalar.Scalar](a *dense[T], row, col int) dense[T] {
	res := newDense[T](a.r-1, a.c-1)
	var i, j, k, base int
	for i = 0; i < a.r; i++ {
		if i == row {
			continue
		}
		base = i * a.c
		for j = 0; j < a.c; j++ {
			if j == col {
				continue
			}
			res.data[k] = a.data[base+j]
			k++
		}
	}

	return res
}

// determinant evaluates det(a) by Laplace expansion along column 0.
// Behavior:
//   - non-square or dim < 1 → additive identity (sentinel, not an error).
//   - dim == 1 → the single element.
//   - dim == 2 → ad − bc.
//   - dim > 2  → Σ_i (−1)^i · a[i,0] · det(minor(i,0)), sign starting at +1.
//
// The value is recomputed on every call; nothing is cached.
func determinant[T scalar.Scalar](a *dense[T]) T {
	n := a.r
	if a.r != a.c || n < 1 {
		return scalar.Zero[T]()
	}
	switch n {
	case 1:
		return a.data[0]
	case 2:
		return a.data[0]*a.data[3] - a.data[2]*a.data[1]
	}

	var det T
	sign := scalar.One[T]()
	var m dense[T]
	for i := 0; i < n; i++ {
		m = minor(a, i, 0)
		det += sign * a.data[i*n] * determinant(&m)
		sign = -sign
	}

	return det
}

// cofactor returns (−1)^(i+j) · det(minor(i,j)) for a square engine.
func cofactor[T scalar.Scalar](a *dense[T], i, j int) T {
	m := minor(a, i, j)
	c := determinant(&m)
	if (i+j)%2 != 0 {
		return -c
	}

	return c
}

// adjugate returns the transpose of the cofactor matrix.
// The 1×1 case is defined as [[1]] so that A·adj(A) = det(A)·I holds; the
// generic formula would use det of a 0×0 minor, which is the zero sentinel.
// Complexity: O(n²·(n−1)!).
func adjugate[T scalar.Scalar](a *dense[T]) dense[T] {
	n := a.r
	adj := newDense[T](n, n)
	if n == 1 {
		adj.data[0] = scalar.One[T]()

		return adj
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			adj.data[j*n+i] = cofactor(a, i, j) // transposed write
		}
	}

	return adj
}

// inverse returns (1/det)·adj(a) or ErrSingular when det == 0.
// The scaling uses T's own division, so integer scalars truncate 1/det.
func inverse[T scalar.Scalar](a *dense[T]) (dense[T], error) {
	det := determinant(a)
	if scalar.IsZero(det) {
		return dense[T]{}, ErrSingular
	}
	adj := adjugate(a)

	return scale(scalar.One[T]()/det, &adj), nil
}

// trace returns Σ a[i,i] for a square engine.
func trace[T scalar.Scalar](a *dense[T]) T {
	var s T
	for i := 0; i < a.r; i++ {
		s += a.data[i*a.c+i]
	}

	return s
}

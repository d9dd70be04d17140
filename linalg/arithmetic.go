// SPDX-License-Identifier: MIT
// Package linalg: element-wise and product kernels of the dense engine.
//
// Purpose:
//   - Implement add/sub/negate/scale/transpose/mul/matvec/pow once for every scalar.
//   - Operands are never mutated; each kernel allocates exactly one result.
//
// Notes:
//   - Kernels assume validated inputs; the exported wrappers in matrix.go and
//     square.go validate via validators.go and wrap with linalgErrorf.

package linalg

import (
	"fmt"

	"github.com/katalvlaran/numerics/scalar"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opMulVector = "MulVector"
	opMinor     = "Minor"
	opCofactor  = "Cofactor"
	opAdjugate  = "Adjugate"
	opInverse   = "Inverse"
	opPow       = "Pow"
	opDot       = "Dot"
	opDiv       = "Div"
	opResize    = "Resize"
	opCopyTo    = "CopyTo"
	opToSquare  = "ToSquare"
)

// linalgErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + b (or a - b when subtract is set).
// Inputs must have identical shapes (validated by the caller).
// Complexity: O(r*c) time and memory.
func addSub[T scalar.Scalar](a, b *dense[T], subtract bool) dense[T] {
	res := newDense[T](a.r, a.c)
	if subtract {
		for i := range res.data {
			res.data[i] = a.data[i] - b.data[i]
		}

		return res
	}
	for i := range res.data {
		res.data[i] = a.data[i] + b.data[i]
	}

	return res
}

// scale computes out = k * a.
func scale[T scalar.Scalar](k T, a *dense[T]) dense[T] {
	res := newDense[T](a.r, a.c)
	for i, v := range a.data {
		res.data[i] = k * v
	}

	return res
}

// negate computes out = -a.
func negate[T scalar.Scalar](a *dense[T]) dense[T] {
	res := newDense[T](a.r, a.c)
	for i, v := range a.data {
		res.data[i] = -v
	}

	return res
}

// transpose returns aᵀ (c×r) with res[j,i] = a[i,j].
// Complexity: O(r*c).
func transpose[T scalar.Scalar](a *dense[T]) dense[T] {
	res := newDense[T](a.c, a.r)
	var i, j, base int
	for i = 0; i < a.r; i++ {
		base = i * a.c
		for j = 0; j < a.c; j++ {
			res.data[j*a.r+i] = a.data[base+j]
		}
	}

	return res
}

// mul performs the standard product a × b (a.c == b.r validated by the caller).
// Implementation:
//   - i→k→j loop order over row-major strides. Zero a[i,k] entries are not
//     skipped: 0·Inf and 0·NaN must still reach the sum.
//
// Complexity: O(r*n*c) time, O(r*c) memory.
func mul[T scalar.Scalar](a, b *dense[T]) dense[T] {
	res := newDense[T](a.r, b.c)
	var i, j, k int
	var av T
	var rowA, rowB, rowR int
	for i = 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowA+k]
			rowB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res
}

// matVec computes y = a·x for len(x) == a.c (validated by the caller).
// Complexity: O(r*c).
func matVec[T scalar.Scalar](a *dense[T], x []T) []T {
	y := make([]T, a.r)
	var i, j, base int
	var sum T
	for i = 0; i < a.r; i++ {
		base = i * a.c
		sum = scalar.Zero[T]()
		for j = 0; j < a.c; j++ {
			sum += a.data[base+j] * x[j]
		}
		y[i] = sum
	}

	return y
}

// pow raises a square engine to degree ≥ 1 by repeated multiplication.
// pow(a, 1) is a copy of a.
// Complexity: O((degree-1)·n³).
func pow[T scalar.Scalar](a *dense[T], degree int) dense[T] {
	res := a.clone()
	for d := 1; d < degree; d++ {
		res = mul(&res, a)
	}

	return res
}

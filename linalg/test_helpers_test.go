// SPDX-License-Identifier: MIT
// Package linalg_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for the dense engine.
//   - Bridge float64 matrices to gonum/mat, used as an independent oracle.

package linalg_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numerics/linalg"
	"github.com/katalvlaran/numerics/scalar"
	"gonum.org/v1/gonum/mat"
)

// MustMatrix BUILDS a Matrix from rows or fails the test.
// Implementation:
//   - Stage 1: linalg.NewMatrixFrom(rows).
//   - Stage 2: t.Fatalf on error.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func MustMatrix[T scalar.Scalar](tb testing.TB, rows [][]T) *linalg.Matrix[T] {
	tb.Helper()
	m, err := linalg.NewMatrixFrom(rows)
	if err != nil {
		tb.Fatalf("NewMatrixFrom: %v", err)
	}

	return m
}

// MustSquare BUILDS a SquareMatrix from rows or fails the test.
func MustSquare[T scalar.Scalar](tb testing.TB, rows [][]T) *linalg.SquareMatrix[T] {
	tb.Helper()
	s, err := linalg.NewSquareMatrixFrom(rows)
	if err != nil {
		tb.Fatalf("NewSquareMatrixFrom: %v", err)
	}

	return s
}

// MustIdentity returns I_n or fails the test.
func MustIdentity[T scalar.Scalar](tb testing.TB, n int) *linalg.SquareMatrix[T] {
	tb.Helper()
	id, err := linalg.Identity[T](n)
	if err != nil {
		tb.Fatalf("Identity(%d): %v", n, err)
	}

	return id
}

// MustAt reads (i,j) or fails the test.
func MustAt[T scalar.Scalar](tb testing.TB, m *linalg.Matrix[T], i, j int) T {
	tb.Helper()
	x, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return x
}

// randomRows returns an n×n float64 fixture with entries in U(-1,1) plus
// n on the main diagonal. Diagonal dominance keeps it well conditioned.
// Deterministic for a fixed seed.
func randomRows(n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	var i, j int // loop iterators
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			rows[i][j] = rng.Float64()*2 - 1
		}
		rows[i][i] += float64(n)
	}

	return rows
}

// toGonum copies rows into a *mat.Dense.
func toGonum(rows [][]float64) *mat.Dense {
	r := len(rows)
	c := len(rows[0])
	flat := make([]float64, 0, r*c)
	for _, row := range rows {
		flat = append(flat, row...)
	}

	return mat.NewDense(r, c, flat)
}

// SPDX-License-Identifier: MIT

// Package linalg - dense storage (row-major) shared by Matrix and SquareMatrix.
//
// Purpose:
//   - Provide one cache-friendly row-major buffer with the index formula i*cols + j.
//   - Keep every algorithm (transpose, products, Laplace expansion) in one engine
//     so the rectangular, square and complex variants never drift apart.
//   - Guarantee ownership: every constructor and kernel allocates a fresh buffer;
//     no two containers ever share storage.
//
// Complexity quicksheet:
//   - newDense: O(r*c) zero-init; at/set: O(1); clone: O(r*c); minor: O(r*c).

package linalg

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/numerics/scalar"
)

// ---------- Formatting literals ----------
const (
	_fmtEmpty   = "[ ]"
	_fmtCellSep = "\t"
	_fmtRowEnd  = "\n"
)

// dense is the row-major engine behind Matrix and SquareMatrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data holds exactly r*c elements (offset = i*c + j).
type dense[T scalar.Scalar] struct {
	r, c int
	data []T
}

// newDense allocates a zero-filled r×c engine. Callers validate dimensions.
func newDense[T scalar.Scalar](rows, cols int) dense[T] {
	return dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// denseFromRows deep-copies a rectangular [][]T.
// Implementation:
//   - Stage 1: validate every row has the same length (ErrBadShape otherwise).
//   - Stage 2: allocate and copy row by row.
//
// A nil or empty input yields a legal 0×0 engine.
// Complexity: O(r*c).
func denseFromRows[T scalar.Scalar](rows [][]T) (dense[T], error) {
	cols, err := validateRectangular(rows)
	if err != nil {
		return dense[T]{}, err
	}
	d := newDense[T](len(rows), cols)
	for i := range rows {
		copy(d.data[i*cols:(i+1)*cols], rows[i])
	}

	return d, nil
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (d *dense[T]) indexOf(row, col int) (int, error) {
	if err := validateIndex(row, d.r); err != nil {
		return 0, err
	}
	if err := validateIndex(col, d.c); err != nil {
		return 0, err
	}

	return row*d.c + col, nil
}

// clone returns an independent copy of the engine.
func (d *dense[T]) clone() dense[T] {
	cp := make([]T, len(d.data))
	copy(cp, d.data)

	return dense[T]{r: d.r, c: d.c, data: cp}
}

// toRows materializes a [][]T copy (the canonical interchange format).
func (d *dense[T]) toRows() [][]T {
	out := make([][]T, d.r)
	for i := 0; i < d.r; i++ {
		row := make([]T, d.c)
		copy(row, d.data[i*d.c:(i+1)*d.c])
		out[i] = row
	}

	return out
}

// fill writes x into every cell.
func (d *dense[T]) fill(x T) {
	for i := range d.data {
		d.data[i] = x
	}
}

// equal reports exact element-wise equality and identical shape.
func (d *dense[T]) equal(o *dense[T]) bool {
	if d.r != o.r || d.c != o.c {
		return false
	}
	for i := range d.data {
		if d.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// equalApprox reports shape equality and |d[i]-o[i]| <= eps for every cell.
func (d *dense[T]) equalApprox(o *dense[T], eps float64) bool {
	if d.r != o.r || d.c != o.c {
		return false
	}
	for i := range d.data {
		if !scalar.Within(d.data[i], o.data[i], eps) {
			return false
		}
	}

	return true
}

// String renders rows with tab-separated cells; each cell is followed by a tab
// and each row by a newline. Empty engines render as "[ ]".
// Complexity: O(r*c).
func (d *dense[T]) String() string {
	if len(d.data) == 0 {
		return _fmtEmpty
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			b.WriteString(fmt.Sprintf("%v", d.data[base+j]))
			b.WriteString(_fmtCellSep)
		}
		b.WriteString(_fmtRowEnd)
	}

	return b.String()
}

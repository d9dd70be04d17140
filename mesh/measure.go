// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numerics/linalg"
	"github.com/katalvlaran/numerics/scalar"
)

// measurable reports whether element i is a simplex of the grid dimension:
// a triangle in 2-D or a tetrahedron in 3-D.
func (g *Grid[T]) measurable(i int) bool {
	n := len(g.elems[i].Nodes)

	return (g.dim == 2 && n == 3) || (g.dim == 3 && n == 4)
}

// simplexMatrix builds the homogeneous coordinate matrix of element i,
// one row [1, x, y(, z)] per node.
// Errors: linalg.ErrNonSquare when element i is not a simplex of the grid
// dimension (callers check measurable first).
func (g *Grid[T]) simplexMatrix(i int) (*linalg.SquareMatrix[T], error) {
	el := g.elems[i]
	rows := make([][]T, len(el.Nodes))
	for r, ni := range el.Nodes {
		rows[r] = append([]T{scalar.One[T]()}, g.nodes[ni].Coords()...)
	}
	s, err := linalg.NewSquareMatrixFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("elem %d: %w", i, err)
	}

	return s, nil
}

func (g *Grid[T]) signedDet(i int) (T, error) {
	s, err := g.simplexMatrix(i)
	if err != nil {
		return scalar.Zero[T](), err
	}

	return s.Determinant(), nil
}

// SignedMeasure returns the oriented area (2-D) or volume (3-D) of element i:
// det/2 for triangles and det/6 for tetrahedra. Positive for counter-clockwise
// triangles and right-handed tetrahedra.
// Errors: ErrElemIndex, ErrUnsupportedElement.
func (g *Grid[T]) SignedMeasure(i int) (float64, error) {
	if i < 0 || i >= len(g.elems) {
		return 0, fmt.Errorf("elem %d: %w", i, ErrElemIndex)
	}
	if !g.measurable(i) {
		return 0, fmt.Errorf("elem %d (%d nodes, %d-D): %w", i, len(g.elems[i].Nodes), g.dim, ErrUnsupportedElement)
	}
	k := 2.0
	if g.dim == 3 {
		k = 6
	}

	det, err := g.signedDet(i)
	if err != nil {
		return 0, err
	}

	return float64(det) / k, nil
}

// Measure returns |SignedMeasure(i)|.
func (g *Grid[T]) Measure(i int) (float64, error) {
	m, err := g.SignedMeasure(i)
	if err != nil {
		return 0, err
	}

	return math.Abs(m), nil
}

// TotalMeasure sums Measure over every element.
// Errors: ErrUnsupportedElement if any element has no measure.
func (g *Grid[T]) TotalMeasure() (float64, error) {
	var sum float64
	for i := range g.elems {
		m, err := g.Measure(i)
		if err != nil {
			return 0, err
		}
		sum += m
	}

	return sum, nil
}

// Centroid returns the arithmetic mean of the element's node coordinates.
// Errors: ErrElemIndex.
func (g *Grid[T]) Centroid(i int) (*linalg.Vector[float64], error) {
	if i < 0 || i >= len(g.elems) {
		return nil, fmt.Errorf("elem %d: %w", i, ErrElemIndex)
	}
	acc, err := linalg.NewVector[float64](g.dim)
	if err != nil {
		return nil, err
	}
	coords := make([]float64, g.dim)
	for _, ni := range g.elems[i].Nodes {
		for c, x := range g.nodes[ni].Coords() {
			coords[c] = float64(x)
		}
		if acc, err = acc.Add(linalg.VectorOf(coords...)); err != nil {
			return nil, err
		}
	}

	return acc.Div(float64(len(g.elems[i].Nodes)))
}

// SPDX-License-Identifier: MIT

package mesh

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/numerics/linalg"
	"github.com/katalvlaran/numerics/scalar"
)

// Sentinel errors for mesh operations.
var (
	// ErrEmptyGrid indicates a grid with no nodes.
	ErrEmptyGrid = errors.New("mesh: grid must have at least one node")
	// ErrNodeDimension indicates a node that is neither 2-D nor 3-D, or a grid
	// mixing 2-D and 3-D nodes.
	ErrNodeDimension = errors.New("mesh: nodes must all have 2 or all have 3 coordinates")
	// ErrNodeIndex indicates a reference to a node outside the grid.
	ErrNodeIndex = errors.New("mesh: node index out of range")
	// ErrEdgeIndex indicates a reference to an edge outside the grid.
	ErrEdgeIndex = errors.New("mesh: edge index out of range")
	// ErrElemIndex indicates a requested element index is out of range.
	ErrElemIndex = errors.New("mesh: element index out of range")
	// ErrEmptyElement indicates an element without nodes.
	ErrEmptyElement = errors.New("mesh: element must reference at least one node")
	// ErrBadBound indicates a boundary that names neither an edge nor nodes.
	ErrBadBound = errors.New("mesh: boundary must reference an edge or a node list")
	// ErrUnsupportedElement indicates an element shape without a measure
	// (only 2-D triangles and 3-D tetrahedra have one).
	ErrUnsupportedElement = errors.New("mesh: element shape has no measure")
	// ErrDegenerate indicates a triangle or tetrahedron of zero measure.
	ErrDegenerate = errors.New("mesh: degenerate element")
)

// Node is a mesh point with 2 or 3 coordinates. Z is zero for 2-D nodes.
type Node[T scalar.Real] struct {
	X, Y, Z T
	Dim     int // 2 or 3
}

// Node2 returns a 2-D node.
func Node2[T scalar.Real](x, y T) Node[T] { return Node[T]{X: x, Y: y, Dim: 2} }

// Node3 returns a 3-D node.
func Node3[T scalar.Real](x, y, z T) Node[T] { return Node[T]{X: x, Y: y, Z: z, Dim: 3} }

// Coords returns the coordinates as a fresh slice of length Dim.
func (n Node[T]) Coords() []T {
	if n.Dim == 3 {
		return []T{n.X, n.Y, n.Z}
	}

	return []T{n.X, n.Y}
}

// Vector returns the coordinates as a linalg vector.
func (n Node[T]) Vector() *linalg.Vector[T] { return linalg.VectorOf(n.Coords()...) }

// String renders "x\ty" or "x\ty\tz".
func (n Node[T]) String() string { return joinTab(n.Coords()) }

// Edge joins two nodes by index.
type Edge struct {
	Begin, End int
}

// String renders "begin\tend".
func (e Edge) String() string { return fmt.Sprintf("%d\t%d", e.Begin, e.End) }

// Elem is a finite element: node indices and, optionally, edge indices.
type Elem struct {
	Nodes []int
	Edges []int
}

// String renders node indices on one line and, when present, edge indices on
// a second line.
func (e Elem) String() string {
	s := joinTab(e.Nodes)
	if len(e.Edges) == 0 {
		return s
	}

	return s + "\n" + joinTab(e.Edges)
}

// Bound is a boundary condition attached either to one edge or to a list of
// nodes. Num numbers the boundary, Side the side it lies on, Value carries the
// condition value.
type Bound[T scalar.Real] struct {
	Num, Side int
	Value     T
	OnEdge    bool
	Edge      int   // valid when OnEdge
	Nodes     []int // valid when !OnEdge
}

// BoundOnEdge returns a boundary attached to edge.
func BoundOnEdge[T scalar.Real](num, side int, value T, edge int) Bound[T] {
	return Bound[T]{Num: num, Side: side, Value: value, OnEdge: true, Edge: edge}
}

// BoundOnNodes returns a boundary attached to a copy of nodes.
func BoundOnNodes[T scalar.Real](num, side int, value T, nodes ...int) Bound[T] {
	cp := make([]int, len(nodes))
	copy(cp, nodes)

	return Bound[T]{Num: num, Side: side, Value: value, Nodes: cp}
}

// String renders "num\tside\tvalue\tedge" for edge bounds and
// "num\tside\tvalue\t\tn0\tn1..." for node bounds.
func (b Bound[T]) String() string {
	head := fmt.Sprintf("%d\t%d\t%v\t", b.Num, b.Side, b.Value)
	if b.OnEdge {
		return head + fmt.Sprint(b.Edge)
	}

	return head + "\t" + joinTab(b.Nodes)
}

// GridOptions contains tunable parameters for grid validation.
type GridOptions struct {
	// AllowDegenerate accepts triangles and tetrahedra of zero measure.
	AllowDegenerate bool
}

// DefaultGridOptions returns GridOptions with AllowDegenerate=false.
func DefaultGridOptions() GridOptions {
	return GridOptions{AllowDegenerate: false}
}

func joinTab[E any](xs []E) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}

	return strings.Join(parts, "\t")
}

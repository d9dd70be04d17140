// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"

	"github.com/katalvlaran/numerics/scalar"
)

// Grid is an immutable mesh. Edges are optional; Dim is 2 or 3 for every node.
type Grid[T scalar.Real] struct {
	nodes  []Node[T]
	elems  []Elem
	edges  []Edge
	bounds []Bound[T]
	dim    int
	opts   GridOptions
}

// NewGrid validates and deep-copies the records into a Grid.
// Implementation:
//   - Stage 1: nodes must be non-empty and share one dimension (2 or 3).
//   - Stage 2: edges, elements and bounds must reference existing records.
//   - Stage 3: unless opts.AllowDegenerate, triangles/tetrahedra must have
//     non-zero measure.
//
// edges may be nil. Returns ErrEmptyGrid, ErrNodeDimension, ErrNodeIndex,
// ErrEdgeIndex, ErrEmptyElement, ErrBadBound or ErrDegenerate.
// Complexity: O(N + Σ|elem| + Σ|bound|).
func NewGrid[T scalar.Real](nodes []Node[T], elems []Elem, edges []Edge, bounds []Bound[T], opts GridOptions) (*Grid[T], error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyGrid
	}
	dim := nodes[0].Dim
	for i, n := range nodes {
		if (n.Dim != 2 && n.Dim != 3) || n.Dim != dim {
			return nil, fmt.Errorf("node %d: %w", i, ErrNodeDimension)
		}
	}
	g := &Grid[T]{
		nodes: append([]Node[T](nil), nodes...),
		edges: append([]Edge(nil), edges...),
		dim:   dim,
		opts:  opts,
	}
	for i, e := range g.edges {
		if !g.hasNode(e.Begin) || !g.hasNode(e.End) {
			return nil, fmt.Errorf("edge %d: %w", i, ErrNodeIndex)
		}
	}
	// Deep copy to prevent external mutation
	g.elems = make([]Elem, len(elems))
	for i, el := range elems {
		if err := g.checkElem(el); err != nil {
			return nil, fmt.Errorf("elem %d: %w", i, err)
		}
		g.elems[i] = Elem{
			Nodes: append([]int(nil), el.Nodes...),
			Edges: append([]int(nil), el.Edges...),
		}
	}
	g.bounds = make([]Bound[T], len(bounds))
	for i, b := range bounds {
		if err := g.checkBound(b); err != nil {
			return nil, fmt.Errorf("bound %d: %w", i, err)
		}
		b.Nodes = append([]int(nil), b.Nodes...)
		g.bounds[i] = b
	}
	if !opts.AllowDegenerate {
		if err := g.checkDegenerate(); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func (g *Grid[T]) hasNode(i int) bool { return i >= 0 && i < len(g.nodes) }

func (g *Grid[T]) hasEdge(i int) bool { return i >= 0 && i < len(g.edges) }

func (g *Grid[T]) checkElem(el Elem) error {
	if len(el.Nodes) == 0 {
		return ErrEmptyElement
	}
	for _, n := range el.Nodes {
		if !g.hasNode(n) {
			return ErrNodeIndex
		}
	}
	for _, e := range el.Edges {
		if !g.hasEdge(e) {
			return ErrEdgeIndex
		}
	}

	return nil
}

func (g *Grid[T]) checkBound(b Bound[T]) error {
	if b.OnEdge {
		if !g.hasEdge(b.Edge) {
			return ErrEdgeIndex
		}

		return nil
	}
	if len(b.Nodes) == 0 {
		return ErrBadBound
	}
	for _, n := range b.Nodes {
		if !g.hasNode(n) {
			return ErrNodeIndex
		}
	}

	return nil
}

func (g *Grid[T]) checkDegenerate() error {
	for i := range g.elems {
		if !g.measurable(i) {
			continue
		}
		det, err := g.signedDet(i)
		if err != nil {
			return err
		}
		if scalar.IsZero(det) {
			return fmt.Errorf("elem %d: %w", i, ErrDegenerate)
		}
	}

	return nil
}

// Options returns the options the grid was built with.
func (g *Grid[T]) Options() GridOptions { return g.opts }

// Dim returns the node dimension (2 or 3).
func (g *Grid[T]) Dim() int { return g.dim }

// CountNode returns the number of nodes.
func (g *Grid[T]) CountNode() int { return len(g.nodes) }

// CountElem returns the number of elements.
func (g *Grid[T]) CountElem() int { return len(g.elems) }

// CountEdge returns the number of edges (0 for a grid built without edges).
func (g *Grid[T]) CountEdge() int { return len(g.edges) }

// CountBound returns the number of boundaries.
func (g *Grid[T]) CountBound() int { return len(g.bounds) }

// Node returns node i.
func (g *Grid[T]) Node(i int) (Node[T], error) {
	if !g.hasNode(i) {
		return Node[T]{}, ErrNodeIndex
	}

	return g.nodes[i], nil
}

// Edge returns edge i.
func (g *Grid[T]) Edge(i int) (Edge, error) {
	if !g.hasEdge(i) {
		return Edge{}, ErrEdgeIndex
	}

	return g.edges[i], nil
}

// Elem returns a copy of element i.
func (g *Grid[T]) Elem(i int) (Elem, error) {
	if i < 0 || i >= len(g.elems) {
		return Elem{}, ErrElemIndex
	}
	el := g.elems[i]

	return Elem{Nodes: append([]int(nil), el.Nodes...), Edges: append([]int(nil), el.Edges...)}, nil
}

// Nodes returns a copy of all nodes.
func (g *Grid[T]) Nodes() []Node[T] { return append([]Node[T](nil), g.nodes...) }

// Bounds returns a copy of all boundaries.
func (g *Grid[T]) Bounds() []Bound[T] {
	out := make([]Bound[T], len(g.bounds))
	for i, b := range g.bounds {
		b.Nodes = append([]int(nil), b.Nodes...)
		out[i] = b
	}

	return out
}

// BoundNodes resolves boundary b to node indices: the two ends of its edge or
// its node list.
func (g *Grid[T]) BoundNodes(b int) ([]int, error) {
	if b < 0 || b >= len(g.bounds) {
		return nil, fmt.Errorf("bound %d: %w", b, ErrBadBound)
	}
	bd := g.bounds[b]
	if bd.OnEdge {
		e := g.edges[bd.Edge]

		return []int{e.Begin, e.End}, nil
	}

	return append([]int(nil), bd.Nodes...), nil
}

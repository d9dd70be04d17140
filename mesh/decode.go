// SPDX-License-Identifier: MIT

package mesh

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/numerics/scalar"
	"gopkg.in/yaml.v3"
)

// document is the YAML form of a grid:
//
//	nodes: [[0, 0], [1, 0], [0, 1]]
//	edges: [[0, 1], [1, 2], [2, 0]]
//	elems:
//	  - {nodes: [0, 1, 2], edges: [0, 1, 2]}
//	bounds:
//	  - {num: 1, side: 0, value: 0, edge: 0}
//	  - {num: 2, side: 1, value: 1.5, nodes: [1, 2]}
type document[T scalar.Real] struct {
	Nodes  [][]T         `yaml:"nodes"`
	Edges  [][2]int      `yaml:"edges,omitempty"`
	Elems  []elemDoc     `yaml:"elems"`
	Bounds []boundDoc[T] `yaml:"bounds,omitempty"`
}

type elemDoc struct {
	Nodes []int `yaml:"nodes"`
	Edges []int `yaml:"edges,omitempty"`
}

type boundDoc[T scalar.Real] struct {
	Num   int   `yaml:"num"`
	Side  int   `yaml:"side"`
	Value T     `yaml:"value"`
	Edge  *int  `yaml:"edge,omitempty"`
	Nodes []int `yaml:"nodes,omitempty"`
}

// Decode reads one YAML mesh document from r and builds a validated Grid.
// A boundary with both edge and nodes set is rejected with ErrBadBound.
func Decode[T scalar.Real](r io.Reader, opts GridOptions) (*Grid[T], error) {
	var doc document[T]
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyGrid
		}

		return nil, fmt.Errorf("mesh: decode: %w", err)
	}

	nodes := make([]Node[T], len(doc.Nodes))
	for i, c := range doc.Nodes {
		switch len(c) {
		case 2:
			nodes[i] = Node2(c[0], c[1])
		case 3:
			nodes[i] = Node3(c[0], c[1], c[2])
		default:
			return nil, fmt.Errorf("node %d: %d coordinates: %w", i, len(c), ErrNodeDimension)
		}
	}
	edges := make([]Edge, len(doc.Edges))
	for i, e := range doc.Edges {
		edges[i] = Edge{Begin: e[0], End: e[1]}
	}
	elems := make([]Elem, len(doc.Elems))
	for i, e := range doc.Elems {
		elems[i] = Elem{Nodes: e.Nodes, Edges: e.Edges}
	}
	bounds := make([]Bound[T], len(doc.Bounds))
	for i, b := range doc.Bounds {
		switch {
		case b.Edge != nil && len(b.Nodes) > 0:
			return nil, fmt.Errorf("bound %d: both edge and nodes: %w", i, ErrBadBound)
		case b.Edge != nil:
			bounds[i] = BoundOnEdge(b.Num, b.Side, b.Value, *b.Edge)
		default:
			bounds[i] = BoundOnNodes(b.Num, b.Side, b.Value, b.Nodes...)
		}
	}

	return NewGrid(nodes, elems, edges, bounds, opts)
}

// ReadFile decodes the mesh document at path.
func ReadFile[T scalar.Real](path string, opts GridOptions) (*Grid[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}
	defer f.Close()

	g, err := Decode[T](f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

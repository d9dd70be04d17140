// SPDX-License-Identifier: MIT
package mesh_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/numerics/mesh"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Fixtures
//----------------------------------------------------------------------------//

// unitSquare returns two counter-clockwise triangles covering [0,1]².
func unitSquare(t *testing.T) *mesh.Grid[float64] {
	t.Helper()
	nodes := []mesh.Node[float64]{
		mesh.Node2(0.0, 0.0), mesh.Node2(1.0, 0.0), mesh.Node2(1.0, 1.0), mesh.Node2(0.0, 1.0),
	}
	edges := []mesh.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}}
	elems := []mesh.Elem{
		{Nodes: []int{0, 1, 2}, Edges: []int{0, 1, 4}},
		{Nodes: []int{0, 2, 3}, Edges: []int{4, 2, 3}},
	}
	bounds := []mesh.Bound[float64]{
		mesh.BoundOnEdge(1, 0, 0.0, 0),
		mesh.BoundOnNodes(2, 1, 1.5, 2, 3),
	}
	g, err := mesh.NewGrid(nodes, elems, edges, bounds, mesh.DefaultGridOptions())
	require.NoError(t, err)

	return g
}

//----------------------------------------------------------------------------//
// NewGrid
//----------------------------------------------------------------------------//

func TestNewGrid_Errors(t *testing.T) {
	tri := []mesh.Node[int]{mesh.Node2(0, 0), mesh.Node2(1, 0), mesh.Node2(0, 1)}
	opts := mesh.DefaultGridOptions()
	cases := []struct {
		name   string
		nodes  []mesh.Node[int]
		elems  []mesh.Elem
		edges  []mesh.Edge
		bounds []mesh.Bound[int]
		err    error
	}{
		{"Empty", nil, nil, nil, nil, mesh.ErrEmptyGrid},
		{"MixedDim", []mesh.Node[int]{mesh.Node2(0, 0), mesh.Node3(0, 0, 1)}, nil, nil, nil, mesh.ErrNodeDimension},
		{"BadDim", []mesh.Node[int]{{X: 1, Dim: 1}}, nil, nil, nil, mesh.ErrNodeDimension},
		{"EdgeNode", tri, nil, []mesh.Edge{{0, 3}}, nil, mesh.ErrNodeIndex},
		{"ElemNode", tri, []mesh.Elem{{Nodes: []int{0, 1, 5}}}, nil, nil, mesh.ErrNodeIndex},
		{"ElemEdge", tri, []mesh.Elem{{Nodes: []int{0, 1, 2}, Edges: []int{0}}}, nil, nil, mesh.ErrEdgeIndex},
		{"ElemEmpty", tri, []mesh.Elem{{}}, nil, nil, mesh.ErrEmptyElement},
		{"BoundEdge", tri, nil, nil, []mesh.Bound[int]{mesh.BoundOnEdge(1, 0, 0, 2)}, mesh.ErrEdgeIndex},
		{"BoundEmpty", tri, nil, nil, []mesh.Bound[int]{mesh.BoundOnNodes(1, 0, 0)}, mesh.ErrBadBound},
		{"BoundNode", tri, nil, nil, []mesh.Bound[int]{mesh.BoundOnNodes(1, 0, 0, 9)}, mesh.ErrNodeIndex},
		{"Degenerate", []mesh.Node[int]{mesh.Node2(0, 0), mesh.Node2(1, 1), mesh.Node2(2, 2)},
			[]mesh.Elem{{Nodes: []int{0, 1, 2}}}, nil, nil, mesh.ErrDegenerate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mesh.NewGrid(tc.nodes, tc.elems, tc.edges, tc.bounds, opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid error = %v; want %v", err, tc.err)
			}
		})
	}
}

func TestNewGrid_AllowDegenerate(t *testing.T) {
	nodes := []mesh.Node[int]{mesh.Node2(0, 0), mesh.Node2(1, 1), mesh.Node2(2, 2)}
	g, err := mesh.NewGrid(nodes, []mesh.Elem{{Nodes: []int{0, 1, 2}}}, nil, nil, mesh.GridOptions{AllowDegenerate: true})
	require.NoError(t, err)
	require.True(t, g.Options().AllowDegenerate)
	m, err := g.Measure(0)
	require.NoError(t, err)
	require.Zero(t, m)

	g, err = mesh.NewGrid(nodes, nil, nil, nil, mesh.DefaultGridOptions())
	require.NoError(t, err)
	require.Equal(t, mesh.DefaultGridOptions(), g.Options())
}

func TestGridCopiesInput(t *testing.T) {
	nodes := []mesh.Node[int]{mesh.Node2(0, 0), mesh.Node2(2, 0), mesh.Node2(0, 2)}
	elems := []mesh.Elem{{Nodes: []int{0, 1, 2}}}
	g, err := mesh.NewGrid(nodes, elems, nil, nil, mesh.DefaultGridOptions())
	require.NoError(t, err)

	nodes[1] = mesh.Node2(9, 9)
	elems[0].Nodes[2] = 1
	n, err := g.Node(1)
	require.NoError(t, err)
	require.Equal(t, mesh.Node2(2, 0), n)
	el, err := g.Elem(0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, el.Nodes)
}

func TestGridAccessors(t *testing.T) {
	g := unitSquare(t)
	require.Equal(t, 2, g.Dim())
	require.Equal(t, 4, g.CountNode())
	require.Equal(t, 2, g.CountElem())
	require.Equal(t, 5, g.CountEdge())
	require.Equal(t, 2, g.CountBound())
	require.Len(t, g.Nodes(), 4)

	e, err := g.Edge(4)
	require.NoError(t, err)
	require.Equal(t, mesh.Edge{Begin: 0, End: 2}, e)

	_, err = g.Node(4)
	require.ErrorIs(t, err, mesh.ErrNodeIndex)
	_, err = g.Edge(-1)
	require.ErrorIs(t, err, mesh.ErrEdgeIndex)
	_, err = g.Elem(2)
	require.ErrorIs(t, err, mesh.ErrElemIndex)

	nodes, err := g.BoundNodes(0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, nodes)
	nodes, err = g.BoundNodes(1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, nodes)
	_, err = g.BoundNodes(2)
	require.ErrorIs(t, err, mesh.ErrBadBound)

	bs := g.Bounds()
	require.True(t, bs[0].OnEdge)
	require.Equal(t, 1.5, bs[1].Value)
}

func TestRecordStrings(t *testing.T) {
	require.Equal(t, "1\t2", mesh.Node2(1, 2).String())
	require.Equal(t, "1\t2\t3", mesh.Node3(1, 2, 3).String())
	require.Equal(t, "0\t1", mesh.Edge{Begin: 0, End: 1}.String())
	require.Equal(t, "0\t1\t2", mesh.Elem{Nodes: []int{0, 1, 2}}.String())
	require.Equal(t, "0\t1\t2\n3\t4", mesh.Elem{Nodes: []int{0, 1, 2}, Edges: []int{3, 4}}.String())
	require.Equal(t, "1\t0\t2.5\t7", mesh.BoundOnEdge(1, 0, 2.5, 7).String())
	require.Equal(t, "2\t1\t0\t\t3\t4", mesh.BoundOnNodes(2, 1, 0, 3, 4).String())
	require.Equal(t, []int{1, 2, 3}, mesh.Node3(1, 2, 3).Vector().ToSlice())
}

//----------------------------------------------------------------------------//
// Measures
//----------------------------------------------------------------------------//

func TestMeasure2D(t *testing.T) {
	g := unitSquare(t)
	for i := 0; i < g.CountElem(); i++ {
		m, err := g.SignedMeasure(i)
		require.NoError(t, err)
		require.InDelta(t, 0.5, m, 1e-12)
	}
	total, err := g.TotalMeasure()
	require.NoError(t, err)
	require.InDelta(t, 1.0, total, 1e-12)

	c, err := g.Centroid(0)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2.0 / 3, 1.0 / 3}, c.ToSlice(), 1e-12)

	_, err = g.Measure(5)
	require.ErrorIs(t, err, mesh.ErrElemIndex)
	_, err = g.Centroid(-1)
	require.ErrorIs(t, err, mesh.ErrElemIndex)
}

func TestMeasureOrientation(t *testing.T) {
	nodes := []mesh.Node[int]{mesh.Node2(0, 0), mesh.Node2(4, 0), mesh.Node2(0, 3)}
	g, err := mesh.NewGrid(nodes, []mesh.Elem{{Nodes: []int{0, 2, 1}}}, nil, nil, mesh.DefaultGridOptions())
	require.NoError(t, err)

	s, err := g.SignedMeasure(0)
	require.NoError(t, err)
	require.Equal(t, -6.0, s) // clockwise
	m, err := g.Measure(0)
	require.NoError(t, err)
	require.Equal(t, 6.0, m)
}

func TestMeasure3D(t *testing.T) {
	nodes := []mesh.Node[float64]{
		mesh.Node3(0.0, 0.0, 0.0), mesh.Node3(1.0, 0.0, 0.0),
		mesh.Node3(0.0, 1.0, 0.0), mesh.Node3(0.0, 0.0, 1.0),
	}
	g, err := mesh.NewGrid(nodes, []mesh.Elem{{Nodes: []int{0, 1, 2, 3}}}, nil, nil, mesh.DefaultGridOptions())
	require.NoError(t, err)

	v, err := g.Measure(0)
	require.NoError(t, err)
	require.InDelta(t, 1.0/6, v, 1e-12)

	c, err := g.Centroid(0)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.25, 0.25, 0.25}, c.ToSlice(), 1e-12)
}

func TestMeasureUnsupported(t *testing.T) {
	g := unitSquare(t)
	quad, err := mesh.NewGrid(g.Nodes(), []mesh.Elem{{Nodes: []int{0, 1, 2, 3}}}, nil, nil, mesh.DefaultGridOptions())
	require.NoError(t, err)

	_, err = quad.Measure(0)
	require.ErrorIs(t, err, mesh.ErrUnsupportedElement)
	_, err = quad.TotalMeasure()
	require.ErrorIs(t, err, mesh.ErrUnsupportedElement)
}

//----------------------------------------------------------------------------//
// Components
//----------------------------------------------------------------------------//

func TestConnectedComponents(t *testing.T) {
	nodes := []mesh.Node[int]{
		mesh.Node2(0, 0), mesh.Node2(1, 0), mesh.Node2(0, 1), mesh.Node2(1, 1),
		mesh.Node2(5, 5), mesh.Node2(6, 5), mesh.Node2(5, 6),
	}
	elems := []mesh.Elem{
		{Nodes: []int{4, 5, 6}},
		{Nodes: []int{0, 1, 2}},
		{Nodes: []int{1, 3, 2}},
	}
	g, err := mesh.NewGrid(nodes, elems, nil, nil, mesh.DefaultGridOptions())
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}, {1, 2}}, g.ConnectedComponents())

	single := unitSquare(t)
	require.Equal(t, [][]int{{0, 1}}, single.ConnectedComponents())
}

//----------------------------------------------------------------------------//
// Decode
//----------------------------------------------------------------------------//

const squareMesh = `
nodes: [[0, 0], [1, 0], [1, 1], [0, 1]]
edges: [[0, 1], [1, 2], [2, 3], [3, 0], [0, 2]]
elems:
  - {nodes: [0, 1, 2], edges: [0, 1, 4]}
  - {nodes: [0, 2, 3]}
bounds:
  - {num: 1, side: 0, value: 0, edge: 0}
  - {num: 2, side: 1, value: 1.5, nodes: [2, 3]}
`

func TestDecode(t *testing.T) {
	g, err := mesh.Decode[float64](strings.NewReader(squareMesh), mesh.DefaultGridOptions())
	require.NoError(t, err)
	require.Equal(t, 4, g.CountNode())
	require.Equal(t, 5, g.CountEdge())
	total, err := g.TotalMeasure()
	require.NoError(t, err)
	require.InDelta(t, 1.0, total, 1e-12)

	bs := g.Bounds()
	require.True(t, bs[0].OnEdge)
	require.False(t, bs[1].OnEdge)
	require.Equal(t, []int{2, 3}, bs[1].Nodes)
}

func TestDecode_Errors(t *testing.T) {
	opts := mesh.DefaultGridOptions()
	_, err := mesh.Decode[float64](strings.NewReader(""), opts)
	require.ErrorIs(t, err, mesh.ErrEmptyGrid)

	_, err = mesh.Decode[float64](strings.NewReader("nodes: [[0, 0, 0, 0]]\n"), opts)
	require.ErrorIs(t, err, mesh.ErrNodeDimension)

	both := "nodes: [[0, 0], [1, 0]]\nedges: [[0, 1]]\nbounds:\n  - {num: 1, side: 0, value: 0, edge: 0, nodes: [0]}\n"
	_, err = mesh.Decode[float64](strings.NewReader(both), opts)
	require.ErrorIs(t, err, mesh.ErrBadBound)

	_, err = mesh.Decode[float64](strings.NewReader("nodes: {bad"), opts)
	require.Error(t, err)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mesh.yaml")
	require.NoError(t, os.WriteFile(path, []byte(squareMesh), 0o600))

	g, err := mesh.ReadFile[float64](path, mesh.DefaultGridOptions())
	require.NoError(t, err)
	require.Equal(t, 2, g.CountElem())

	_, err = mesh.ReadFile[float64](path+".missing", mesh.DefaultGridOptions())
	require.ErrorIs(t, err, os.ErrNotExist)
}

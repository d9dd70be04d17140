// SPDX-License-Identifier: MIT
package mesh_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/numerics/mesh"
)

// stripGrid triangulates an n×1 strip of unit squares (2n triangles).
func stripGrid(b *testing.B, n int) *mesh.Grid[float64] {
	b.Helper()
	nodes := make([]mesh.Node[float64], 0, 2*(n+1))
	for x := 0; x <= n; x++ {
		nodes = append(nodes, mesh.Node2(float64(x), 0), mesh.Node2(float64(x), 1))
	}
	elems := make([]mesh.Elem, 0, 2*n)
	for x := 0; x < n; x++ {
		bl, tl, br, tr := 2*x, 2*x+1, 2*x+2, 2*x+3
		elems = append(elems, mesh.Elem{Nodes: []int{bl, br, tr}}, mesh.Elem{Nodes: []int{bl, tr, tl}})
	}
	g, err := mesh.NewGrid(nodes, elems, nil, nil, mesh.DefaultGridOptions())
	if err != nil {
		b.Fatal(err)
	}

	return g
}

var sinkTotal float64

func BenchmarkTotalMeasure(b *testing.B) {
	for _, n := range []int{100, 1000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := stripGrid(b, n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				total, err := g.TotalMeasure()
				if err != nil {
					b.Fatal(err)
				}
				sinkTotal = total
			}
		})
	}
}

func BenchmarkConnectedComponents(b *testing.B) {
	g := stripGrid(b, 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}

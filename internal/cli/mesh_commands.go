// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numerics/internal/render"
	"github.com/katalvlaran/numerics/mesh"
)

func newMeshCommand() *cobra.Command {
	var allowDegenerate bool

	cmd := &cobra.Command{
		Use:   "mesh",
		Short: "Finite-element mesh reports",
	}
	cmd.PersistentFlags().BoolVar(&allowDegenerate, "allow-degenerate", false,
		"Accept simplex elements with zero measure")

	load := func(cmd *cobra.Command, path string) (*mesh.Grid[float64], error) {
		opts := mesh.DefaultGridOptions()
		opts.AllowDegenerate = allowDegenerate
		g, err := mesh.ReadFile[float64](path, opts)
		if err != nil {
			return nil, err
		}
		GetLogger(cmd.Context()).Debug("mesh loaded", "file", path, "dim", g.Dim(),
			"nodes", g.CountNode(), "elems", g.CountElem(), "edges", g.CountEdge(), "bounds", g.CountBound())

		return g, nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "measure FILE",
		Short: "Area (2-D) or volume (3-D) of every simplex element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(cmd, args[0])
			if err != nil {
				return err
			}

			return runMeasure(cmd, g)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "components FILE",
		Short: "Groups of elements connected through shared nodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(cmd, args[0])
			if err != nil {
				return err
			}
			r, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			comps := g.ConnectedComponents()
			rows := make([][]string, len(comps))
			for i, c := range comps {
				rows[i] = []string{strconv.Itoa(i), joinInts(c)}
			}

			return r.Records([]string{"component", "elems"}, rows)
		},
	})

	return cmd
}

// runMeasure lists every element with its measure; elements that are not
// simplices of the mesh dimension are reported with "-" and skipped in the total.
func runMeasure(cmd *cobra.Command, g *mesh.Grid[float64]) error {
	logger := GetLogger(cmd.Context())
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	prec := GetConfig(cmd.Context()).Precision

	rows := make([][]string, 0, g.CountElem()+1)
	var total float64
	for i := 0; i < g.CountElem(); i++ {
		el, err := g.Elem(i)
		if err != nil {
			return err
		}
		cell := "-"
		m, err := g.Measure(i)
		switch {
		case err == nil:
			cell = render.Cell(m, prec)
			total += m
		case errors.Is(err, mesh.ErrUnsupportedElement):
			logger.Info("element has no measure", "elem", i, "nodes", len(el.Nodes))
		default:
			return err
		}
		rows = append(rows, []string{strconv.Itoa(i), joinInts(el.Nodes), cell})
	}
	rows = append(rows, []string{"total", "", render.Cell(total, prec)})

	return r.Records([]string{"elem", "nodes", "measure"}, rows)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, " ")
}

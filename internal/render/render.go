// SPDX-License-Identifier: MIT

// Package render writes CLI results as a table, plain text or a YAML document.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/numerics/codec"
	"github.com/katalvlaran/numerics/linalg"
	"github.com/katalvlaran/numerics/scalar"
)

// Output formats.
const (
	FormatTable = "table"
	FormatPlain = "plain"
	FormatYAML  = "yaml"
)

// ErrFormat is returned for an unknown output format.
var ErrFormat = errors.New("render: unknown output format")

// Renderer holds the destination and the formatting choices.
type Renderer struct {
	w         io.Writer
	format    string
	precision int
}

// New returns a Renderer. precision < 0 prints the shortest exact form of
// floating-point cells; otherwise it is the number of significant digits.
func New(w io.Writer, format string, precision int) (*Renderer, error) {
	switch format {
	case FormatTable, FormatPlain, FormatYAML:
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}

	return &Renderer{w: w, format: format, precision: precision}, nil
}

// Format returns the selected output format.
func (r *Renderer) Format() string { return r.format }

type rowSource[T scalar.Scalar] interface {
	ToRows() [][]T
}

// Matrix writes a matrix. kind tags the YAML document (matrix or square).
func Matrix[T scalar.Scalar](r *Renderer, kind codec.Kind, m rowSource[T]) error {
	rows := m.ToRows()
	switch r.format {
	case FormatYAML:
		return codec.EncodeMatrix[T](r.w, kind, m)
	case FormatPlain:
		for _, row := range rows {
			if _, err := fmt.Fprintln(r.w, strings.Join(cells(row, r.precision), "\t")); err != nil {
				return err
			}
		}

		return nil
	}

	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	t := newTable(r.w)
	header := make(table.Row, cols+1)
	header[0] = ""
	for j := 0; j < cols; j++ {
		header[j+1] = j
	}
	t.AppendHeader(header)
	for i, row := range rows {
		out := make(table.Row, 0, cols+1)
		out = append(out, i)
		for _, c := range cells(row, r.precision) {
			out = append(out, c)
		}
		t.AppendRow(out)
	}
	t.Render()

	return nil
}

// Vector writes a vector; the table form lists one element per row.
func Vector[T scalar.Scalar](r *Renderer, v *linalg.Vector[T]) error {
	xs := v.ToSlice()
	switch r.format {
	case FormatYAML:
		return codec.EncodeVector(r.w, v)
	case FormatPlain:
		_, err := fmt.Fprintln(r.w, strings.Join(cells(xs, r.precision), "\t"))

		return err
	}

	t := newTable(r.w)
	t.AppendHeader(table.Row{"i", "value"})
	for i, c := range cells(xs, r.precision) {
		t.AppendRow(table.Row{i, c})
	}
	t.Render()

	return nil
}

// Scalar writes a single labelled value.
func Scalar[T scalar.Scalar](r *Renderer, label string, x T) error {
	switch r.format {
	case FormatYAML:
		return codec.EncodeScalar(r.w, x)
	case FormatPlain:
		_, err := fmt.Fprintln(r.w, Cell(x, r.precision))

		return err
	}

	t := newTable(r.w)
	t.AppendHeader(table.Row{label})
	t.AppendRow(table.Row{Cell(x, r.precision)})
	t.Render()

	return nil
}

// Records writes a generic header + rows listing (mesh reports and the like).
// The YAML form is a sequence of mappings keyed by header.
func (r *Renderer) Records(header []string, rows [][]string) error {
	switch r.format {
	case FormatYAML:
		return writeRecordsYAML(r.w, header, rows)
	case FormatPlain:
		for _, row := range rows {
			if _, err := fmt.Fprintln(r.w, strings.Join(row, "\t")); err != nil {
				return err
			}
		}

		return nil
	}

	t := newTable(r.w)
	h := make(table.Row, len(header))
	for i, s := range header {
		h[i] = s
	}
	t.AppendHeader(h)
	for _, row := range rows {
		out := make(table.Row, len(row))
		for i, s := range row {
			out[i] = s
		}
		t.AppendRow(out)
	}
	t.Render()

	return nil
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	return t
}

func cells[T scalar.Scalar](xs []T, precision int) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = Cell(x, precision)
	}

	return out
}

// Cell formats one value. Floating-point and complex values honour precision
// (significant digits, -1 for shortest); other scalars use scalar.Format.
func Cell[T scalar.Scalar](x T, precision int) string {
	switch v := any(x).(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', precision, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', precision, 32)
	case complex128:
		return strconv.FormatComplex(v, 'g', precision, 128)
	case complex64:
		return strconv.FormatComplex(complex128(v), 'g', precision, 64)
	}

	return scalar.Format(x)
}

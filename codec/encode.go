// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"io"

	"github.com/katalvlaran/numerics/linalg"
	"github.com/katalvlaran/numerics/scalar"
	"gopkg.in/yaml.v3"
)

const tagStr = "!!str"

// matrixLike is satisfied by *linalg.Matrix and *linalg.SquareMatrix.
type matrixLike[T scalar.Scalar] interface {
	ToRows() [][]T
}

// EncodeMatrix writes m as a matrix document (square when kind is KindSquare).
// Rows are emitted in flow style, one per line.
func EncodeMatrix[T scalar.Scalar](w io.Writer, kind Kind, m matrixLike[T]) error {
	rows := m.ToRows()
	rowsNode := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range rows {
		rowsNode.Content = append(rowsNode.Content, cellSeq(row))
	}

	return writeDoc(w, kind, scalar.TypeName[T](), "rows", rowsNode)
}

// EncodeVector writes v as a vector document.
func EncodeVector[T scalar.Scalar](w io.Writer, v *linalg.Vector[T]) error {
	return writeDoc(w, KindVector, scalar.TypeName[T](), "values", cellSeq(v.ToSlice()))
}

// EncodeScalar writes a single value as a plain YAML scalar document.
func EncodeScalar[T scalar.Scalar](w io.Writer, x T) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(cellNode(x)); err != nil {
		return fmt.Errorf("codec: encode: %w", err)
	}

	return enc.Close()
}

func writeDoc(w io.Writer, kind Kind, typeName, key string, body *yaml.Node) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	doc.Content = []*yaml.Node{
		plain("kind"), plain(string(kind)),
		plain("scalar"), plain(typeName),
		plain(key), body,
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("codec: encode: %w", err)
	}

	return enc.Close()
}

func plain(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagStr, Value: s}
}

func cellSeq[T scalar.Scalar](xs []T) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, x := range xs {
		n.Content = append(n.Content, cellNode(x))
	}

	return n
}

// cellNode renders x as an untagged plain scalar. Integers and floats resolve
// to YAML numbers; complex values ("(1+2i)") and NaN/Inf resolve to strings,
// which Read accepts because cells are parsed per element type.
func cellNode[T scalar.Scalar](x T) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Value: scalar.Format(x)}
	if scalar.KindOf[T]() == scalar.KindComplex {
		n.Tag = tagStr
	}

	return n
}

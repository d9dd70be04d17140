// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/numerics/linalg"
	"github.com/katalvlaran/numerics/scalar"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for codec operations.
var (
	// ErrKind indicates the document kind does not fit the requested container.
	ErrKind = errors.New("codec: document kind does not match")
	// ErrEmptyDocument indicates the input holds no YAML document.
	ErrEmptyDocument = errors.New("codec: empty document")
)

// Kind is the container kind stored in a document.
type Kind string

// Document kinds.
const (
	KindMatrix Kind = "matrix"
	KindSquare Kind = "square"
	KindVector Kind = "vector"
)

// Document is the on-disk form. Cells stay literal until the caller picks T.
type Document struct {
	Kind   Kind       `yaml:"kind"`
	Scalar string     `yaml:"scalar,omitempty"`
	Rows   [][]string `yaml:"rows,omitempty"`
	Values []string   `yaml:"values,omitempty"`
}

// Read decodes the first YAML document from r.
// Errors: ErrEmptyDocument on empty input; yaml syntax errors wrapped.
func Read(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}

		return nil, fmt.Errorf("codec: decode: %w", err)
	}
	if doc.Kind == "" {
		doc.Kind = inferKind(&doc)
	}

	return &doc, nil
}

// ReadFile opens path and decodes it with Read.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	defer f.Close()

	doc, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// inferKind fills a missing kind from the populated field.
func inferKind(doc *Document) Kind {
	if doc.Values != nil && doc.Rows == nil {
		return KindVector
	}

	return KindMatrix
}

// parseRows converts literal rows into [][]T, reporting the first bad cell.
func parseRows[T scalar.Scalar](rows [][]string) ([][]T, error) {
	out := make([][]T, len(rows))
	var i, j int // loop iterators
	for i = 0; i < len(rows); i++ {
		out[i] = make([]T, len(rows[i]))
		for j = 0; j < len(rows[i]); j++ {
			x, err := scalar.Parse[T](rows[i][j])
			if err != nil {
				return nil, fmt.Errorf("codec: cell (%d,%d): %w", i, j, err)
			}
			out[i][j] = x
		}
	}

	return out, nil
}

// Matrix builds a Matrix[T] from a matrix or square document.
// Errors: ErrKind for vector documents; scalar.ErrParse; linalg.ErrBadShape.
func Matrix[T scalar.Scalar](doc *Document) (*linalg.Matrix[T], error) {
	if doc.Kind != KindMatrix && doc.Kind != KindSquare {
		return nil, fmt.Errorf("%w: want matrix, got %q", ErrKind, doc.Kind)
	}
	rows, err := parseRows[T](doc.Rows)
	if err != nil {
		return nil, err
	}

	return linalg.NewMatrixFrom(rows)
}

// Square builds a SquareMatrix[T]. A matrix document is accepted when its
// shape is square.
// Errors: ErrKind, scalar.ErrParse, linalg.ErrBadShape, linalg.ErrNonSquare.
func Square[T scalar.Scalar](doc *Document) (*linalg.SquareMatrix[T], error) {
	if doc.Kind != KindMatrix && doc.Kind != KindSquare {
		return nil, fmt.Errorf("%w: want square, got %q", ErrKind, doc.Kind)
	}
	rows, err := parseRows[T](doc.Rows)
	if err != nil {
		return nil, err
	}

	return linalg.NewSquareMatrixFrom(rows)
}

// Vector builds a Vector[T] from a vector document.
// Errors: ErrKind, scalar.ErrParse.
func Vector[T scalar.Scalar](doc *Document) (*linalg.Vector[T], error) {
	if doc.Kind != KindVector {
		return nil, fmt.Errorf("%w: want vector, got %q", ErrKind, doc.Kind)
	}
	vals := make([]T, len(doc.Values))
	for i, lit := range doc.Values {
		x, err := scalar.Parse[T](lit)
		if err != nil {
			return nil, fmt.Errorf("codec: value %d: %w", i, err)
		}
		vals[i] = x
	}

	return linalg.VectorOf(vals...), nil
}

// DecodeMatrix reads a document from r and builds a Matrix[T].
func DecodeMatrix[T scalar.Scalar](r io.Reader) (*linalg.Matrix[T], error) {
	doc, err := Read(r)
	if err != nil {
		return nil, err
	}

	return Matrix[T](doc)
}

// DecodeSquare reads a document from r and builds a SquareMatrix[T].
func DecodeSquare[T scalar.Scalar](r io.Reader) (*linalg.SquareMatrix[T], error) {
	doc, err := Read(r)
	if err != nil {
		return nil, err
	}

	return Square[T](doc)
}

// DecodeVector reads a document from r and builds a Vector[T].
func DecodeVector[T scalar.Scalar](r io.Reader) (*linalg.Vector[T], error) {
	doc, err := Read(r)
	if err != nil {
		return nil, err
	}

	return Vector[T](doc)
}

// ReadMatrixFile loads a Matrix[T] from a YAML file.
func ReadMatrixFile[T scalar.Scalar](path string) (*linalg.Matrix[T], error) {
	doc, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Matrix[T](doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

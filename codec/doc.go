// SPDX-License-Identifier: MIT

// Package codec reads and writes vectors and matrices as YAML documents.
//
// A document names its kind and lists its cells as literals:
//
//	kind: matrix        # matrix | square | vector
//	scalar: float64     # informational
//	rows:
//	  - [1, 2]
//	  - [3, 4]
//
// Vectors use `values: [1, 2, 3]` instead of rows. Cells are parsed with
// scalar.Parse for the element type chosen by the caller, so the same file
// can be loaded as int64, float64 or complex128 ("1+2i"). JSON input is
// accepted since JSON is a subset of YAML.
package codec

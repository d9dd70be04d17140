// SPDX-License-Identifier: MIT

// Package mesh stores finite-element grids as plain records and measures
// their elements with linalg determinants.
//
// What:
//
//   - Node (2-D or 3-D point), Edge (node pair), Elem (node and optional edge
//     references), Bound (boundary condition on an edge or a node list).
//   - Grid validates references on construction and is immutable afterwards.
//   - Measure/SignedMeasure: triangle area and tetrahedron volume from the
//     determinant of the homogeneous coordinate matrix.
//   - ConnectedComponents: groups of elements that share nodes.
//   - Decode/ReadFile: YAML mesh documents.
//
// Complexity:
//
//   - NewGrid:             O(N + Σ|elem| + Σ|bound|), plus one 3×3 or 4×4
//     determinant per measurable element.
//   - Measure:             O(1) (fixed-size Laplace expansion).
//   - ConnectedComponents: O(E + Σ|elem|), Memory: O(N + E).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNodeDimension: bad node set.
//   - ErrNodeIndex, ErrEdgeIndex, ErrEmptyElement, ErrBadBound: dangling references.
//   - ErrElemIndex: requested element out of range.
//   - ErrUnsupportedElement: element shape has no measure.
//   - ErrDegenerate: zero-measure element while AllowDegenerate is false.
package mesh

// SPDX-License-Identifier: MIT

// Package scalar defines the numeric element types accepted by the linalg
// containers and the handful of helpers every generic kernel needs.
//
// What:
//
//   - Scalar: every built-in integer, float and complex type (and named types
//     over them). All of them support + - * / unary minus and ==.
//   - Real: the ordered subset (integers and floats). Sorting, searching and
//     the float64 norm are only defined for Real.
//   - Complex: complex64 / complex128 (no total order).
//   - Zero / One / IsZero: additive and multiplicative identities.
//   - Parse / Format: textual interchange used by codec and the CLI.
//   - Abs: magnitude as float64 for tolerance checks.
//
// Constraints are built on golang.org/x/exp/constraints.
package scalar

// SPDX-License-Identifier: MIT

package linalg

import (
	"math"

	"github.com/katalvlaran/numerics/scalar"
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// dot computes Σ a[i]·b[i] for equal-length slices.
// []float64 and []float32 are routed to vek (AVX2/NEON when the CPU has it,
// unrolled pure Go otherwise); every other scalar uses the generic loop.
// Named float types (type Meters float64) take the generic loop.
func dot[T scalar.Scalar](a, b []T) T {
	if len(a) == 0 {
		return scalar.Zero[T]()
	}
	switch x := any(a).(type) {
	case []float64:
		return any(vek.Dot(x, any(b).([]float64))).(T)
	case []float32:
		return any(vek32.Dot(x, any(b).([]float32))).(T)
	}
	var s T
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// Norm returns the Euclidean norm sqrt(v·v) as float64.
// Only ordered (real) scalars qualify; complex vectors use ComplexNorm.
// Integer vectors accumulate v·v in T before the conversion, so very large
// integer entries can overflow exactly as the dot product would.
// Complexity: O(n).
func Norm[T scalar.Real](v *Vector[T]) float64 {
	if len(v.data) == 0 {
		return 0
	}
	switch x := any(v.data).(type) {
	case []float64:
		return vek.Norm(x)
	case []float32:
		return float64(vek32.Norm(x))
	}

	return math.Sqrt(float64(dot(v.data, v.data)))
}

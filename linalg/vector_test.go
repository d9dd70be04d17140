// SPDX-License-Identifier: MIT
// Package linalg_test contains unit tests for Vector.
package linalg_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numerics/linalg"
	"github.com/stretchr/testify/require"
)

// TestNewVectorInvalidLength ensures negative lengths are rejected and zero is legal.
func TestNewVectorInvalidLength(t *testing.T) {
	_, err := linalg.NewVector[float64](-1)
	require.ErrorIs(t, err, linalg.ErrInvalidDimensions)
	require.Contains(t, err.Error(), "NewVector(-1)")

	v, err := linalg.NewVector[float64](0)
	require.NoError(t, err)
	require.Equal(t, 0, v.Len())
	require.Equal(t, "[ ]", v.String())
}

// TestVectorAtSet validates bounds checks and round-trip of Set/At.
func TestVectorAtSet(t *testing.T) {
	v, err := linalg.NewVector[int](3)
	require.NoError(t, err)

	require.NoError(t, v.Set(2, 7))
	x, err := v.At(2)
	require.NoError(t, err)
	require.Equal(t, 7, x)

	_, err = v.At(3)
	require.ErrorIs(t, err, linalg.ErrOutOfRange)
	require.ErrorIs(t, v.Set(-1, 0), linalg.ErrOutOfRange)
}

// TestVectorOfCopiesInput ensures construction and extraction never alias.
func TestVectorOfCopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	v := linalg.VectorOf(src...)
	src[0] = 100 // mutate the source after construction
	x, _ := v.At(0)
	require.Equal(t, 1, x)

	out := v.ToSlice()
	out[1] = 200 // mutate the extracted copy
	x, _ = v.At(1)
	require.Equal(t, 2, x)
}

// TestVectorCloneNoAliasing verifies a mutated clone leaves the original intact.
func TestVectorCloneNoAliasing(t *testing.T) {
	v := linalg.VectorOf(1.5, 2.5)
	c := v.Clone()
	require.True(t, v.Equal(c))

	require.NoError(t, c.Set(0, 9))
	x, _ := v.At(0)
	require.Equal(t, 1.5, x)
	require.False(t, v.Equal(c))
}

// TestVectorAddSubRoundTrip checks a + b - b == a.
func TestVectorAddSubRoundTrip(t *testing.T) {
	t.Run("int exact", func(t *testing.T) {
		a := linalg.VectorOf(3, -4, 5)
		b := linalg.VectorOf(10, 20, -30)
		sum, err := a.Add(b)
		require.NoError(t, err)
		back, err := sum.Sub(b)
		require.NoError(t, err)
		require.True(t, back.Equal(a))
	})
	t.Run("float within epsilon", func(t *testing.T) {
		a := linalg.VectorOf(0.1, 0.2, 0.3)
		b := linalg.VectorOf(1e3, -7.77, 1.0/3)
		sum, err := a.Add(b)
		require.NoError(t, err)
		back, err := sum.Sub(b)
		require.NoError(t, err)
		require.True(t, back.EqualApprox(a))
	})
}

// TestVectorLengthMismatch ensures binary ops report a structural error.
func TestVectorLengthMismatch(t *testing.T) {
	a := linalg.VectorOf(1, 2)
	b := linalg.VectorOf(1, 2, 3)

	_, err := a.Add(b)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	require.ErrorIs(t, err, linalg.ErrStructural)

	_, err = a.Sub(b)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	_, err = a.Dot(b)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	_, err = a.Add(nil)
	require.ErrorIs(t, err, linalg.ErrNilOperand)
}

// TestVectorScaleNegateDiv covers the scalar operators.
func TestVectorScaleNegateDiv(t *testing.T) {
	v := linalg.VectorOf(4, -6)
	require.Equal(t, []int{8, -12}, v.Scale(2).ToSlice())
	require.Equal(t, []int{-4, 6}, v.Negate().ToSlice())

	q, err := v.Div(2)
	require.NoError(t, err)
	require.Equal(t, []int{2, -3}, q.ToSlice())

	_, err = v.Div(0)
	require.ErrorIs(t, err, linalg.ErrDivisionByZero)

	// operands are untouched
	require.Equal(t, []int{4, -6}, v.ToSlice())
}

// TestVectorDot covers the generic loop and the float fast paths.
func TestVectorDot(t *testing.T) {
	d, err := linalg.VectorOf(1, 2, 3).Dot(linalg.VectorOf(4, 5, 6))
	require.NoError(t, err)
	require.Equal(t, 32, d)

	f, err := linalg.Scalar(linalg.VectorOf(1.0, 2.0, 3.0), linalg.VectorOf(4.0, 5.0, 6.0))
	require.NoError(t, err)
	require.InDelta(t, 32.0, f, 1e-12)

	g, err := linalg.VectorOf[float32](1, 2).Dot(linalg.VectorOf[float32](3, 4))
	require.NoError(t, err)
	require.InDelta(t, float32(11), g, 1e-6)

	type meters float64
	m, err := linalg.VectorOf[meters](2, 3).Dot(linalg.VectorOf[meters](4, 5))
	require.NoError(t, err)
	require.Equal(t, meters(23), m)

	z, err := linalg.VectorOf[float64]().Dot(linalg.VectorOf[float64]())
	require.NoError(t, err)
	require.Zero(t, z)
}

// TestNorm checks sqrt(v·v) for integer and float scalars.
func TestNorm(t *testing.T) {
	require.InDelta(t, 5.0, linalg.Norm(linalg.VectorOf(3, 4)), 1e-12)
	require.InDelta(t, 5.0, linalg.Norm(linalg.VectorOf(3.0, 4.0)), 1e-12)
	require.InDelta(t, 13.0, linalg.Norm(linalg.VectorOf[float32](5, 12)), 1e-5)
	require.Zero(t, linalg.Norm(linalg.VectorOf[float64]()))
}

// TestVectorFillClearResize covers the in-place mutators.
func TestVectorFillClearResize(t *testing.T) {
	v := linalg.VectorOf(1, 2, 3)
	v.Fill(7)
	require.Equal(t, []int{7, 7, 7}, v.ToSlice())
	v.Clear()
	require.Equal(t, []int{0, 0, 0}, v.ToSlice())

	w := linalg.VectorOf(1, 2, 3)
	require.NoError(t, w.Resize(5))
	require.Equal(t, []int{1, 2, 3, 0, 0}, w.ToSlice())
	require.NoError(t, w.Resize(2))
	require.Equal(t, []int{1, 2}, w.ToSlice())
	require.ErrorIs(t, w.Resize(-1), linalg.ErrInvalidDimensions)
}

// TestVectorCopyToAndSet covers explicit extraction helpers.
func TestVectorCopyToAndSet(t *testing.T) {
	v := linalg.VectorOf(1, 2, 3)
	dst := make([]int, 4)
	require.NoError(t, v.CopyTo(dst, 1))
	require.Equal(t, []int{0, 1, 2, 3}, dst)
	require.ErrorIs(t, v.CopyTo(dst, 2), linalg.ErrOutOfRange)
	require.ErrorIs(t, v.CopyTo(dst, -1), linalg.ErrOutOfRange)

	set := linalg.VectorOf(1, 2, 1, 3, 2).ToSet()
	require.Len(t, set, 3)
	require.Contains(t, set, 3)
}

// TestVectorSearch covers predicate and equality searches.
func TestVectorSearch(t *testing.T) {
	v := linalg.VectorOf(1, 3, 5, 3)
	gt2 := func(x int) bool { return x > 2 }
	none := func(x int) bool { return x > 100 }

	require.True(t, v.Exists(gt2))
	require.False(t, v.Exists(none))

	x, ok := v.Find(gt2)
	require.True(t, ok)
	require.Equal(t, 3, x)
	_, ok = v.Find(none)
	require.False(t, ok)

	x, ok = v.FindLast(func(x int) bool { return x > 4 })
	require.True(t, ok)
	require.Equal(t, 5, x)

	require.Equal(t, 1, v.FindIndex(gt2))
	require.Equal(t, 3, v.FindLastIndex(gt2))
	require.Equal(t, -1, v.FindIndex(none))
	require.Equal(t, []int{3, 5, 3}, v.FindAll(gt2).ToSlice())

	require.Equal(t, 1, v.IndexOf(3))
	require.Equal(t, 3, v.LastIndexOf(3))
	require.Equal(t, -1, v.IndexOf(42))
}

// TestSortBinarySearchCounts covers the order-based helpers.
func TestSortBinarySearchCounts(t *testing.T) {
	v := linalg.VectorOf(5, -1, 3, 0, 2)
	require.Equal(t, 3, linalg.CountPositive(v))
	require.Equal(t, 1, linalg.CountNegative(v))

	linalg.Sort(v)
	require.Equal(t, []int{-1, 0, 2, 3, 5}, v.ToSlice())

	pos, found := linalg.BinarySearch(v, 3)
	require.True(t, found)
	require.Equal(t, 3, pos)

	pos, found = linalg.BinarySearch(v, 4)
	require.False(t, found)
	require.Equal(t, 4, pos)
}

// TestVectorEqualApprox covers tolerance handling and option validation.
func TestVectorEqualApprox(t *testing.T) {
	a := linalg.VectorOf(1.0, 2.0)
	b := linalg.VectorOf(1.05, 2.0)
	require.False(t, a.EqualApprox(b))
	require.True(t, a.EqualApprox(b, linalg.WithEpsilon(0.1)))
	require.False(t, a.EqualApprox(linalg.VectorOf(1.0)))
	require.False(t, a.EqualApprox(nil))

	// unsigned distance must not wrap around
	require.False(t, linalg.VectorOf[uint](1).EqualApprox(linalg.VectorOf[uint](2)))

	require.Panics(t, func() { linalg.WithEpsilon(-1) })
	require.Equal(t, linalg.DefaultEpsilon, linalg.NewOptions().Epsilon())
}

// TestVectorEqualApproxSpecialValues covers NaN, infinities and integer extremes.
func TestVectorEqualApproxSpecialValues(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	loose := linalg.WithEpsilon(1e9)
	tests := []struct {
		name string
		a, b *linalg.Vector[float64]
		want bool
	}{
		{"nan vs finite", linalg.VectorOf(nan, 2), linalg.VectorOf(1.0, 2), false},
		{"finite vs nan", linalg.VectorOf(1.0, 2), linalg.VectorOf(nan, 2), false},
		{"nan vs nan", linalg.VectorOf(nan), linalg.VectorOf(nan), false},
		{"same infinity", linalg.VectorOf(inf, -inf), linalg.VectorOf(inf, -inf), true},
		{"opposite infinities", linalg.VectorOf(inf), linalg.VectorOf(-inf), false},
		{"inf vs finite", linalg.VectorOf(inf), linalg.VectorOf(1e300), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.a.EqualApprox(tc.b, loose))
		})
	}

	// signed distance must not wrap around either
	require.False(t, linalg.VectorOf[int8](127).EqualApprox(linalg.VectorOf[int8](-128), linalg.WithEpsilon(2)))
	require.True(t, linalg.VectorOf[int8](-128).EqualApprox(linalg.VectorOf[int8](-127), linalg.WithEpsilon(1)))
}

// TestVectorString checks the tab-separated rendering.
func TestVectorString(t *testing.T) {
	require.Equal(t, "[1\t2\t3]", linalg.VectorOf(1, 2, 3).String())
	require.Equal(t, "[ ]", linalg.VectorOf[int]().String())
}

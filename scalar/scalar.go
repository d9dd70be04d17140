// SPDX-License-Identifier: MIT

package scalar

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrParse is returned when a literal cannot be parsed into the requested scalar type.
var ErrParse = errors.New("scalar: cannot parse literal")

// Scalar is the element constraint of every linalg container.
type Scalar interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Real is the totally ordered subset of Scalar.
type Real interface {
	constraints.Integer | constraints.Float
}

// Complex is the unordered complex subset of Scalar.
type Complex interface {
	constraints.Complex
}

// Kind names the underlying numeric kind of a scalar type.
type Kind string

// Kinds reported by KindOf.
const (
	KindInt     Kind = "int"
	KindUint    Kind = "uint"
	KindFloat   Kind = "float"
	KindComplex Kind = "complex"
)

// Zero returns the additive identity of T.
func Zero[T Scalar]() T {
	var z T

	return z
}

// One returns the multiplicative identity of T.
func One[T Scalar]() T { return T(1) }

// IsZero reports whether x equals the additive identity.
func IsZero[T Scalar](x T) bool { return x == Zero[T]() }

// KindOf reports the underlying numeric kind of T.
// Named types resolve to the kind of their underlying type.
func KindOf[T Scalar]() Kind {
	var z T
	switch reflect.TypeOf(z).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindUint
	case reflect.Float32, reflect.Float64:
		return KindFloat
	default:
		return KindComplex
	}
}

// TypeName returns the Go type name of T ("float64", "pkg.Meters").
func TypeName[T Scalar]() string {
	var z T

	return reflect.TypeOf(z).String()
}

// Abs returns the magnitude of x as float64: |x| for integers and floats,
// the modulus for complex values.
// Complexity: O(1).
func Abs[T Scalar](x T) float64 {
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return math.Abs(float64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return math.Abs(v.Float())
	default:
		return cmplx.Abs(v.Complex())
	}
}

// Parse converts a literal into T according to T's kind.
// Implementation:
//   - Stage 1: trim spaces; pick the strconv parser matching T's kind and bit size.
//   - Stage 2: store through reflection so named types (e.g. type Meters float64) work.
//
// Complex literals follow strconv.ParseComplex ("1+2i", "(1+2i)", "3i", "2").
// Errors: ErrParse wrapped with the literal and the strconv cause.
func Parse[T Scalar](s string) (T, error) {
	var out T
	lit := strings.TrimSpace(s)
	dst := reflect.ValueOf(&out).Elem()
	bits := dst.Type().Bits()

	var err error
	switch dst.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int64
		if n, err = strconv.ParseInt(lit, 10, bits); err == nil {
			dst.SetInt(n)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		var n uint64
		if n, err = strconv.ParseUint(lit, 10, bits); err == nil {
			dst.SetUint(n)
		}
	case reflect.Float32, reflect.Float64:
		var f float64
		if f, err = strconv.ParseFloat(lit, bits); err == nil {
			dst.SetFloat(f)
		}
	default:
		var c complex128
		if c, err = strconv.ParseComplex(lit, bits); err == nil {
			dst.SetComplex(c)
		}
	}
	if err != nil {
		return Zero[T](), fmt.Errorf("%w %q: %v", ErrParse, s, err)
	}

	return out, nil
}

// Format renders x with the %v verb; complex values print as (a+bi).
func Format[T Scalar](x T) string { return fmt.Sprintf("%v", x) }

// Distance returns |a-b| as float64. Integer operands are widened before the
// subtraction, so neither signed nor unsigned types wrap.
// NaN operands, or equal infinities, yield NaN.
// Complexity: O(1).
func Distance[T Scalar](a, b T) float64 {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return math.Abs(float64(va.Int()) - float64(vb.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		ua, ub := va.Uint(), vb.Uint()
		if ua >= ub {
			return float64(ua - ub)
		}

		return float64(ub - ua)
	default:
		return Abs(a - b)
	}
}

// Within reports a == b or Distance(a, b) <= eps.
// A NaN distance never counts as within, so NaN matches nothing (itself
// included) while equal infinities match through the exact comparison.
func Within[T Scalar](a, b T, eps float64) bool {
	if a == b {
		return true
	}
	d := Distance(a, b)

	return !math.IsNaN(d) && d <= eps
}

// SPDX-License-Identifier: MIT

package scalar

import "math"

// Zero returns the additive identity of T.
func Zero[T Scalar]() T { return 0 }

// One returns the multiplicative identity of T.
func One[T Scalar]() T { return 1 }

// IsFloat reports whether T is a floating-point type.
// Integer division truncates 1/2 to zero; float division does not.
func IsFloat[T Scalar]() bool {
	one, two := T(1), T(2)
	return one/two != 0
}

// IsSigned reports whether T can represent negative values
// (signed integers and floats).
func IsSigned[T Scalar]() bool {
	var zero T
	return zero-1 < zero
}

// Rem returns the truncated remainder a - b*trunc(a/b), the sign of the
// result following a.
//
// Integer types use the % operator and fault (panic) when b == 0.
// Float types use math.Mod and yield NaN when b == 0.
func Rem[T Scalar](a, b T) T {
	if IsFloat[T]() {
		return T(math.Mod(float64(a), float64(b)))
	}
	if IsSigned[T]() {
		return T(int64(a) % int64(b))
	}

	return T(uint64(a) % uint64(b))
}

// Abs returns |x|. Unsigned values are returned unchanged.
func Abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// IsFinite reports whether x is neither NaN nor ±Inf.
// Integer values are always finite.
func IsFinite[T Scalar](x T) bool {
	if !IsFloat[T]() {
		return true
	}
	f := float64(x)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Near reports whether a and b are equal within the tolerance configured by
// opts (DefaultEpsilon, absolute, when no option is given).
func Near[T Scalar](a, b T, opts ...Option) bool {
	return Close(a, b, gatherOptions(opts...))
}

// Close is Near with an already resolved Options value. Callers comparing
// many components resolve the options once and call Close in the loop.
//
// Behavior highlights:
//   - Exactly equal values (including equal infinities) are always close.
//   - NaN is never close to anything.
//   - Relative mode scales eps by max(1, |a|, |b|).
//   - Integers are compared on their exact difference, so values beyond
//     2^53 stay distinct at eps = 0.
func Close[T Scalar](a, b T, o Options) bool {
	if a == b {
		return true
	}
	if !IsFloat[T]() {
		return intClose(a, b, o)
	}
	fa, fb := float64(a), float64(b)
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return false
	}
	tol := o.eps
	if o.relative {
		tol *= math.Max(1, math.Max(math.Abs(fa), math.Abs(fb)))
	}

	return math.Abs(fa-fb) <= tol
}

// intClose compares integers a != b. The difference is taken modulo 2^64,
// which is exact for any pair of 64-bit values.
func intClose[T Scalar](a, b T, o Options) bool {
	if o.eps == 0 {
		return false
	}
	hi, lo := a, b
	if hi < lo {
		hi, lo = lo, hi
	}
	d := uint64(hi) - uint64(lo)
	tol := o.eps
	if o.relative {
		tol *= math.Max(1, math.Max(math.Abs(float64(a)), math.Abs(float64(b))))
	}

	return float64(d) <= tol
}

package scmath

import (
	"math"

	"github.com/cwbudde/algo-scalar/internal/sctypes"
)

// Cast32 converts n to float32, reporting whether the value is representable.
// The cast fails only for finite values beyond the float32 finite range;
// NaN and infinities are representable and pass through unchanged.
func Cast32[N sctypes.Number](n N) (float32, bool) {
	f := float64(n)
	if !math.IsNaN(f) && !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
		return 0, false
	}

	return float32(f), true
}

// Cast64 converts n to float64, reporting whether the value is representable.
// Every native integer and floating-point value fits in the float64 range,
// so the cast always succeeds; the ok result keeps the signature symmetric
// with Cast32.
func Cast64[N sctypes.Number](n N) (float64, bool) {
	return float64(n), true
}

// PowInt raises x to the integer power n by repeated squaring.
// PowInt(x, 0) is 1 for every x, including zero and NaN.
// Negative exponents are computed as the reciprocal of the positive power.
func PowInt[T sctypes.Float](x T, n int) T {
	if n < 0 {
		return 1 / PowInt(x, -n)
	}

	result := T(1)
	for n > 0 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
		n >>= 1
	}

	return result
}

package algoscalar

import "github.com/cwbudde/algo-scalar/internal/scmath"

// The cast constructors accept any native integer or floating-point source
// and report whether the value is representable in the target type. A cast
// fails only when the source is finite but outside the target's finite
// range; NaN and infinities are representable and convert unchanged.
// Integer sources beyond 2^53 round to the nearest representable float,
// which still counts as representable.

// NewReal32 casts n to a Real32.
func NewReal32[N Number](n N) (Real32, bool) {
	f, ok := scmath.Cast32(n)
	return Real32(f), ok
}

// NewReal64 casts n to a Real64.
func NewReal64[N Number](n N) (Real64, bool) {
	f, ok := scmath.Cast64(n)
	return Real64(f), ok
}

// NewComplex64 builds a Complex64 from real and imaginary parts.
func NewComplex64[N Number](re, im N) (Complex64, bool) {
	r, okRe := scmath.Cast32(re)
	i, okIm := scmath.Cast32(im)

	return Complex64(complex(r, i)), okRe && okIm
}

// NewComplex128 builds a Complex128 from real and imaginary parts.
func NewComplex128[N Number](re, im N) (Complex128, bool) {
	r, okRe := scmath.Cast64(re)
	i, okIm := scmath.Cast64(im)

	return Complex128(complex(r, i)), okRe && okIm
}

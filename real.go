package algoscalar

// Real refines Scalar for real-valued instantiations. It adds a total
// order and the IEEE-754 limit and constant catalogue for the type's bit
// width. All catalogue methods use the receiver as a type token and return
// link-time constants, exact for the width: Real32 values are the IEEE-754
// binary32 roundings, Real64 values the binary64 roundings.
type Real[R, C any] interface {
	Scalar[R, R, C]

	// Compare returns -1, 0 or +1 ordering the receiver against x.
	// The order is total: NaN compares before any other value, and
	// -0 equals +0.
	Compare(x R) int

	// Digits is the number of significant decimal digits.
	Digits() int
	// Eps is the machine epsilon, the difference between 1 and the next
	// larger representable value.
	Eps() R
	Inf() R
	NegInf() R
	// MantissaDigits is the number of significand bits, including the
	// implicit leading bit.
	MantissaDigits() int
	// Max is the largest finite value.
	Max() R
	// Min is the smallest finite value, -Max.
	Min() R
	Max10Exp() int
	MaxExp() int
	Min10Exp() int
	MinExp() int
	// MinPositive is the smallest positive normal value.
	MinPositive() R
	NaN() R
	// Radix is the base of the floating-point representation.
	Radix() int

	E() R
	Pi() R
	Sqrt2() R
	Ln2() R
	Ln10() R
	Log2E() R
	Log10E() R
	// InvPi is 1/π.
	InvPi() R
	// TwoOverPi is 2/π.
	TwoOverPi() R
	// TwoOverSqrtPi is 2/√π.
	TwoOverSqrtPi() R
	// InvSqrt2 is 1/√2.
	InvSqrt2() R
	PiOver2() R
	PiOver3() R
	PiOver4() R
	PiOver6() R
	PiOver8() R
}

var (
	_ Real[Real32, Complex64]  = Real32(0)
	_ Real[Real64, Complex128] = Real64(0)
)

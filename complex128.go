package algoscalar

import (
	"math/cmplx"
	"strconv"

	"golang.org/x/exp/rand"
)

// Complex128 adapts complex128 to the Scalar contract. Its real peer is
// Real64 and its complex peer is itself.
type Complex128 complex128

func (v Complex128) String() string {
	return strconv.FormatComplex(complex128(v), 'g', -1, 128)
}

func (v Complex128) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Complex128) UnmarshalText(text []byte) error {
	c, err := strconv.ParseComplex(string(text), 128)
	if err != nil {
		return err
	}

	*v = Complex128(c)

	return nil
}

func (Complex128) FromFloat(f float64) (Complex128, bool) {
	return Complex128(complex(f, 0)), true
}

func (Complex128) Real(re float64) (Real64, bool) {
	var token Real64
	return token.Real(re)
}

func (Complex128) Complex(re, im float64) (Complex128, bool) {
	var token Real64
	return token.Complex(re, im)
}

func (Complex128) FromReal(re Real64) Complex128 {
	return Complex128(complex(float64(re), 0))
}

func (Complex128) Zero() Complex128 { return 0 }
func (Complex128) One() Complex128 { return 1 }

// Rand draws both components uniformly from [0, 1).
func (Complex128) Rand(rng *rand.Rand) Complex128 {
	return Complex128(complex(rng.Float64(), rng.Float64()))
}

func (v Complex128) Re() Real64 { return Real64(real(v)) }
func (v Complex128) Im() Real64 { return Real64(imag(v)) }

func (v Complex128) AsComplex() Complex128 { return v }

func (v Complex128) Conj() Complex128 {
	return Complex128(cmplx.Conj(complex128(v)))
}

func (v Complex128) Abs() Real64 {
	return Real64(cmplx.Abs(complex128(v)))
}

func (v Complex128) AbsSq() Real64 {
	return Real64(real(v)*real(v) + imag(v)*imag(v))
}

func (v Complex128) Add(x Complex128) Complex128 { return v + x }
func (v Complex128) Sub(x Complex128) Complex128 { return v - x }
func (v Complex128) Mul(x Complex128) Complex128 { return v * x }
func (v Complex128) Div(x Complex128) Complex128 { return v / x }
func (v Complex128) Neg() Complex128 { return -v }

func (v Complex128) AddReal(re Real64) Complex128 { return v + re.AsComplex() }
func (v Complex128) SubReal(re Real64) Complex128 { return v - re.AsComplex() }
func (v Complex128) MulReal(re Real64) Complex128 { return v * re.AsComplex() }
func (v Complex128) DivReal(re Real64) Complex128 { return v / re.AsComplex() }

func (v Complex128) AddComplex(c Complex128) Complex128 { return v + c }
func (v Complex128) SubComplex(c Complex128) Complex128 { return v - c }
func (v Complex128) MulComplex(c Complex128) Complex128 { return v * c }
func (v Complex128) DivComplex(c Complex128) Complex128 { return v / c }

func (v Complex128) Pow(n Complex128) Complex128 { return v.PowComplex(n) }

// PowInt delegates to PowReal, matching the real-exponent evaluation of
// integer powers on the complex path.
func (v Complex128) PowInt(n int) Complex128 { return v.PowReal(Real64(n)) }

func (v Complex128) PowReal(n Real64) Complex128 {
	return Complex128(cmplx.Pow(complex128(v), complex(float64(n), 0)))
}

func (v Complex128) PowComplex(n Complex128) Complex128 {
	return Complex128(cmplx.Pow(complex128(v), complex128(n)))
}

func (v Complex128) Sqrt() Complex128 { return Complex128(cmplx.Sqrt(complex128(v))) }
func (v Complex128) Exp() Complex128 { return Complex128(cmplx.Exp(complex128(v))) }
func (v Complex128) Log() Complex128 { return Complex128(cmplx.Log(complex128(v))) }
func (v Complex128) Sin() Complex128 { return Complex128(cmplx.Sin(complex128(v))) }
func (v Complex128) Cos() Complex128 { return Complex128(cmplx.Cos(complex128(v))) }
func (v Complex128) Tan() Complex128 { return Complex128(cmplx.Tan(complex128(v))) }
func (v Complex128) Asin() Complex128 { return Complex128(cmplx.Asin(complex128(v))) }
func (v Complex128) Acos() Complex128 { return Complex128(cmplx.Acos(complex128(v))) }
func (v Complex128) Atan() Complex128 { return Complex128(cmplx.Atan(complex128(v))) }
func (v Complex128) Sinh() Complex128 { return Complex128(cmplx.Sinh(complex128(v))) }
func (v Complex128) Cosh() Complex128 { return Complex128(cmplx.Cosh(complex128(v))) }
func (v Complex128) Tanh() Complex128 { return Complex128(cmplx.Tanh(complex128(v))) }
func (v Complex128) Asinh() Complex128 { return Complex128(cmplx.Asinh(complex128(v))) }
func (v Complex128) Acosh() Complex128 { return Complex128(cmplx.Acosh(complex128(v))) }
func (v Complex128) Atanh() Complex128 { return Complex128(cmplx.Atanh(complex128(v))) }

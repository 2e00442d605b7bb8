package algoscalar

import (
	"math/cmplx"
	"strconv"

	"github.com/chewxy/math32"
	"golang.org/x/exp/rand"
)

// Complex64 adapts complex64 to the Scalar contract. Its real peer is
// Real32 and its complex peer is itself. Analytic functions delegate to
// math/cmplx, converting to complex128 at the boundary and rounding the
// result back to binary32 components; Abs and AbsSq stay in float32.
type Complex64 complex64

func (v Complex64) String() string {
	return strconv.FormatComplex(complex128(v), 'g', -1, 64)
}

func (v Complex64) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Complex64) UnmarshalText(text []byte) error {
	c, err := strconv.ParseComplex(string(text), 64)
	if err != nil {
		return err
	}

	*v = Complex64(c)

	return nil
}

func (Complex64) FromFloat(f float64) (Complex64, bool) {
	var token Real32

	r, ok := token.Real(f)

	return r.AsComplex(), ok
}

func (Complex64) Real(re float64) (Real32, bool) {
	var token Real32
	return token.Real(re)
}

func (Complex64) Complex(re, im float64) (Complex64, bool) {
	var token Real32
	return token.Complex(re, im)
}

func (Complex64) FromReal(re Real32) Complex64 {
	return Complex64(complex(float32(re), 0))
}

func (Complex64) Zero() Complex64 { return 0 }
func (Complex64) One() Complex64 { return 1 }

// Rand draws both components uniformly from [0, 1).
func (Complex64) Rand(rng *rand.Rand) Complex64 {
	return Complex64(complex(rng.Float32(), rng.Float32()))
}

func (v Complex64) Re() Real32 { return Real32(real(v)) }
func (v Complex64) Im() Real32 { return Real32(imag(v)) }

func (v Complex64) AsComplex() Complex64 { return v }

func (v Complex64) Conj() Complex64 {
	return Complex64(complex(real(v), -imag(v)))
}

func (v Complex64) Abs() Real32 {
	return Real32(math32.Hypot(real(v), imag(v)))
}

func (v Complex64) AbsSq() Real32 {
	return Real32(real(v)*real(v) + imag(v)*imag(v))
}

func (v Complex64) Add(x Complex64) Complex64 { return v + x }
func (v Complex64) Sub(x Complex64) Complex64 { return v - x }
func (v Complex64) Mul(x Complex64) Complex64 { return v * x }
func (v Complex64) Div(x Complex64) Complex64 { return v / x }
func (v Complex64) Neg() Complex64 { return -v }

func (v Complex64) AddReal(re Real32) Complex64 { return v + re.AsComplex() }
func (v Complex64) SubReal(re Real32) Complex64 { return v - re.AsComplex() }
func (v Complex64) MulReal(re Real32) Complex64 { return v * re.AsComplex() }
func (v Complex64) DivReal(re Real32) Complex64 { return v / re.AsComplex() }

func (v Complex64) AddComplex(c Complex64) Complex64 { return v + c }
func (v Complex64) SubComplex(c Complex64) Complex64 { return v - c }
func (v Complex64) MulComplex(c Complex64) Complex64 { return v * c }
func (v Complex64) DivComplex(c Complex64) Complex64 { return v / c }

func (v Complex64) Pow(n Complex64) Complex64 { return v.PowComplex(n) }

// PowInt delegates to PowReal, matching the real-exponent evaluation of
// integer powers on the complex path.
func (v Complex64) PowInt(n int) Complex64 { return v.PowReal(Real32(n)) }

func (v Complex64) PowReal(n Real32) Complex64 {
	return Complex64(cmplx.Pow(complex128(v), complex(float64(n), 0)))
}

func (v Complex64) PowComplex(n Complex64) Complex64 {
	return Complex64(cmplx.Pow(complex128(v), complex128(n)))
}

func (v Complex64) Sqrt() Complex64 { return Complex64(cmplx.Sqrt(complex128(v))) }
func (v Complex64) Exp() Complex64 { return Complex64(cmplx.Exp(complex128(v))) }
func (v Complex64) Log() Complex64 { return Complex64(cmplx.Log(complex128(v))) }
func (v Complex64) Sin() Complex64 { return Complex64(cmplx.Sin(complex128(v))) }
func (v Complex64) Cos() Complex64 { return Complex64(cmplx.Cos(complex128(v))) }
func (v Complex64) Tan() Complex64 { return Complex64(cmplx.Tan(complex128(v))) }
func (v Complex64) Asin() Complex64 { return Complex64(cmplx.Asin(complex128(v))) }
func (v Complex64) Acos() Complex64 { return Complex64(cmplx.Acos(complex128(v))) }
func (v Complex64) Atan() Complex64 { return Complex64(cmplx.Atan(complex128(v))) }
func (v Complex64) Sinh() Complex64 { return Complex64(cmplx.Sinh(complex128(v))) }
func (v Complex64) Cosh() Complex64 { return Complex64(cmplx.Cosh(complex128(v))) }
func (v Complex64) Tanh() Complex64 { return Complex64(cmplx.Tanh(complex128(v))) }
func (v Complex64) Asinh() Complex64 { return Complex64(cmplx.Asinh(complex128(v))) }
func (v Complex64) Acosh() Complex64 { return Complex64(cmplx.Acosh(complex128(v))) }
func (v Complex64) Atanh() Complex64 { return Complex64(cmplx.Atanh(complex128(v))) }

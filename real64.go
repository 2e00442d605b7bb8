package algoscalar

import (
	"cmp"
	"math"
	"strconv"

	"golang.org/x/exp/rand"

	"github.com/cwbudde/algo-scalar/internal/scmath"
)

// Real64 adapts float64 to the Scalar and Real contracts. Its real peer is
// itself and its complex peer is Complex128.
type Real64 float64

func (v Real64) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

func (v Real64) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Real64) UnmarshalText(text []byte) error {
	f, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		return err
	}

	*v = Real64(f)

	return nil
}

func (Real64) FromFloat(f float64) (Real64, bool) {
	r, ok := scmath.Cast64(f)
	return Real64(r), ok
}

func (Real64) Real(re float64) (Real64, bool) {
	r, ok := scmath.Cast64(re)
	return Real64(r), ok
}

func (Real64) Complex(re, im float64) (Complex128, bool) {
	return Complex128(complex(re, im)), true
}

func (Real64) FromReal(re Real64) Real64 { return re }

func (Real64) Zero() Real64 { return 0 }
func (Real64) One() Real64 { return 1 }

func (Real64) Rand(rng *rand.Rand) Real64 {
	return Real64(rng.Float64())
}

func (v Real64) Re() Real64 { return v }
func (Real64) Im() Real64 { return 0 }

func (v Real64) AsComplex() Complex128 {
	return Complex128(complex(float64(v), 0))
}

func (v Real64) Conj() Real64 { return v }

func (v Real64) Abs() Real64 { return Real64(math.Abs(float64(v))) }
func (v Real64) AbsSq() Real64 { return v * v }

func (v Real64) Add(x Real64) Real64 { return v + x }
func (v Real64) Sub(x Real64) Real64 { return v - x }
func (v Real64) Mul(x Real64) Real64 { return v * x }
func (v Real64) Div(x Real64) Real64 { return v / x }
func (v Real64) Neg() Real64 { return -v }

func (v Real64) AddReal(re Real64) Real64 { return v + re }
func (v Real64) SubReal(re Real64) Real64 { return v - re }
func (v Real64) MulReal(re Real64) Real64 { return v * re }
func (v Real64) DivReal(re Real64) Real64 { return v / re }

func (v Real64) AddComplex(c Complex128) Complex128 { return v.AsComplex() + c }
func (v Real64) SubComplex(c Complex128) Complex128 { return v.AsComplex() - c }
func (v Real64) MulComplex(c Complex128) Complex128 { return v.AsComplex() * c }
func (v Real64) DivComplex(c Complex128) Complex128 { return v.AsComplex() / c }

func (v Real64) Pow(n Real64) Real64 {
	return Real64(math.Pow(float64(v), float64(n)))
}

func (v Real64) PowInt(n int) Real64 { return scmath.PowInt(v, n) }

func (v Real64) PowReal(n Real64) Real64 { return v.Pow(n) }

func (v Real64) PowComplex(n Complex128) Complex128 {
	return v.AsComplex().PowComplex(n)
}

func (v Real64) Sqrt() Real64 { return Real64(math.Sqrt(float64(v))) }
func (v Real64) Exp() Real64 { return Real64(math.Exp(float64(v))) }
func (v Real64) Log() Real64 { return Real64(math.Log(float64(v))) }
func (v Real64) Sin() Real64 { return Real64(math.Sin(float64(v))) }
func (v Real64) Cos() Real64 { return Real64(math.Cos(float64(v))) }
func (v Real64) Tan() Real64 { return Real64(math.Tan(float64(v))) }
func (v Real64) Asin() Real64 { return Real64(math.Asin(float64(v))) }
func (v Real64) Acos() Real64 { return Real64(math.Acos(float64(v))) }
func (v Real64) Atan() Real64 { return Real64(math.Atan(float64(v))) }
func (v Real64) Sinh() Real64 { return Real64(math.Sinh(float64(v))) }
func (v Real64) Cosh() Real64 { return Real64(math.Cosh(float64(v))) }
func (v Real64) Tanh() Real64 { return Real64(math.Tanh(float64(v))) }
func (v Real64) Asinh() Real64 { return Real64(math.Asinh(float64(v))) }
func (v Real64) Acosh() Real64 { return Real64(math.Acosh(float64(v))) }
func (v Real64) Atanh() Real64 { return Real64(math.Atanh(float64(v))) }

func (v Real64) Compare(x Real64) int { return cmp.Compare(v, x) }

// IEEE-754 binary64 limits.

func (Real64) Digits() int { return 15 }
func (Real64) Eps() Real64 { return 0x1p-52 }
func (Real64) Inf() Real64 { return Real64(math.Inf(1)) }
func (Real64) NegInf() Real64 { return Real64(math.Inf(-1)) }
func (Real64) MantissaDigits() int { return 53 }
func (Real64) Max() Real64 { return math.MaxFloat64 }
func (Real64) Min() Real64 { return -math.MaxFloat64 }
func (Real64) Max10Exp() int { return 308 }
func (Real64) MaxExp() int { return 1024 }
func (Real64) Min10Exp() int { return -307 }
func (Real64) MinExp() int { return -1021 }
func (Real64) MinPositive() Real64 { return 0x1p-1022 }
func (Real64) NaN() Real64 { return Real64(math.NaN()) }
func (Real64) Radix() int { return 2 }

// Mathematical constants, rounded to binary64 at the conversion.

func (Real64) E() Real64 { return math.E }
func (Real64) Pi() Real64 { return math.Pi }
func (Real64) Sqrt2() Real64 { return math.Sqrt2 }
func (Real64) Ln2() Real64 { return math.Ln2 }
func (Real64) Ln10() Real64 { return math.Ln10 }
func (Real64) Log2E() Real64 { return math.Log2E }
func (Real64) Log10E() Real64 { return math.Log10E }
func (Real64) InvPi() Real64 { return 1 / math.Pi }
func (Real64) TwoOverPi() Real64 { return 2 / math.Pi }
func (Real64) TwoOverSqrtPi() Real64 { return 2 / math.SqrtPi }
func (Real64) InvSqrt2() Real64 { return 1 / math.Sqrt2 }
func (Real64) PiOver2() Real64 { return math.Pi / 2 }
func (Real64) PiOver3() Real64 { return math.Pi / 3 }
func (Real64) PiOver4() Real64 { return math.Pi / 4 }
func (Real64) PiOver6() Real64 { return math.Pi / 6 }
func (Real64) PiOver8() Real64 { return math.Pi / 8 }

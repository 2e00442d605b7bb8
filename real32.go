package algoscalar

import (
	"cmp"
	"math"
	"strconv"

	"github.com/chewxy/math32"
	"golang.org/x/exp/rand"

	"github.com/cwbudde/algo-scalar/internal/scmath"
)

// Real32 adapts float32 to the Scalar and Real contracts. Its real peer is
// itself and its complex peer is Complex64. Transcendental functions
// delegate to the float32-native math32 library, so results carry binary32
// rounding rather than a double-rounded float64 detour.
type Real32 float32

func (v Real32) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func (v Real32) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Real32) UnmarshalText(text []byte) error {
	f, err := strconv.ParseFloat(string(text), 32)
	if err != nil {
		return err
	}

	*v = Real32(f)

	return nil
}

func (Real32) FromFloat(f float64) (Real32, bool) {
	r, ok := scmath.Cast32(f)
	return Real32(r), ok
}

func (Real32) Real(re float64) (Real32, bool) {
	r, ok := scmath.Cast32(re)
	return Real32(r), ok
}

func (Real32) Complex(re, im float64) (Complex64, bool) {
	r, okRe := scmath.Cast32(re)
	i, okIm := scmath.Cast32(im)

	return Complex64(complex(r, i)), okRe && okIm
}

func (Real32) FromReal(re Real32) Real32 { return re }

func (Real32) Zero() Real32 { return 0 }
func (Real32) One() Real32 { return 1 }

func (Real32) Rand(rng *rand.Rand) Real32 {
	return Real32(rng.Float32())
}

func (v Real32) Re() Real32 { return v }
func (Real32) Im() Real32 { return 0 }

func (v Real32) AsComplex() Complex64 {
	return Complex64(complex(float32(v), 0))
}

func (v Real32) Conj() Real32 { return v }

func (v Real32) Abs() Real32 { return Real32(math32.Abs(float32(v))) }
func (v Real32) AbsSq() Real32 { return v * v }

func (v Real32) Add(x Real32) Real32 { return v + x }
func (v Real32) Sub(x Real32) Real32 { return v - x }
func (v Real32) Mul(x Real32) Real32 { return v * x }
func (v Real32) Div(x Real32) Real32 { return v / x }
func (v Real32) Neg() Real32 { return -v }

func (v Real32) AddReal(re Real32) Real32 { return v + re }
func (v Real32) SubReal(re Real32) Real32 { return v - re }
func (v Real32) MulReal(re Real32) Real32 { return v * re }
func (v Real32) DivReal(re Real32) Real32 { return v / re }

func (v Real32) AddComplex(c Complex64) Complex64 { return v.AsComplex() + c }
func (v Real32) SubComplex(c Complex64) Complex64 { return v.AsComplex() - c }
func (v Real32) MulComplex(c Complex64) Complex64 { return v.AsComplex() * c }
func (v Real32) DivComplex(c Complex64) Complex64 { return v.AsComplex() / c }

func (v Real32) Pow(n Real32) Real32 {
	return Real32(math32.Pow(float32(v), float32(n)))
}

func (v Real32) PowInt(n int) Real32 { return scmath.PowInt(v, n) }

func (v Real32) PowReal(n Real32) Real32 { return v.Pow(n) }

func (v Real32) PowComplex(n Complex64) Complex64 {
	return v.AsComplex().PowComplex(n)
}

func (v Real32) Sqrt() Real32 { return Real32(math32.Sqrt(float32(v))) }
func (v Real32) Exp() Real32 { return Real32(math32.Exp(float32(v))) }
func (v Real32) Log() Real32 { return Real32(math32.Log(float32(v))) }
func (v Real32) Sin() Real32 { return Real32(math32.Sin(float32(v))) }
func (v Real32) Cos() Real32 { return Real32(math32.Cos(float32(v))) }
func (v Real32) Tan() Real32 { return Real32(math32.Tan(float32(v))) }
func (v Real32) Asin() Real32 { return Real32(math32.Asin(float32(v))) }
func (v Real32) Acos() Real32 { return Real32(math32.Acos(float32(v))) }
func (v Real32) Atan() Real32 { return Real32(math32.Atan(float32(v))) }
func (v Real32) Sinh() Real32 { return Real32(math32.Sinh(float32(v))) }
func (v Real32) Cosh() Real32 { return Real32(math32.Cosh(float32(v))) }
func (v Real32) Tanh() Real32 { return Real32(math32.Tanh(float32(v))) }
func (v Real32) Asinh() Real32 { return Real32(math32.Asinh(float32(v))) }
func (v Real32) Acosh() Real32 { return Real32(math32.Acosh(float32(v))) }
func (v Real32) Atanh() Real32 { return Real32(math32.Atanh(float32(v))) }

func (v Real32) Compare(x Real32) int { return cmp.Compare(v, x) }

// IEEE-754 binary32 limits.

func (Real32) Digits() int { return 6 }
func (Real32) Eps() Real32 { return 0x1p-23 }
func (Real32) Inf() Real32 { return Real32(math32.Inf(1)) }
func (Real32) NegInf() Real32 { return Real32(math32.Inf(-1)) }
func (Real32) MantissaDigits() int { return 24 }
func (Real32) Max() Real32 { return math.MaxFloat32 }
func (Real32) Min() Real32 { return -math.MaxFloat32 }
func (Real32) Max10Exp() int { return 38 }
func (Real32) MaxExp() int { return 128 }
func (Real32) Min10Exp() int { return -37 }
func (Real32) MinExp() int { return -125 }
func (Real32) MinPositive() Real32 { return 0x1p-126 }
func (Real32) NaN() Real32 { return Real32(math32.NaN()) }
func (Real32) Radix() int { return 2 }

// Mathematical constants, taken from the untyped stdlib math constants so
// each is rounded exactly once, at the conversion to binary32. The math32
// constants are typed float32 and its derived ones carry an extra rounding
// step, so they are not usable here.

func (Real32) E() Real32 { return math.E }
func (Real32) Pi() Real32 { return math.Pi }
func (Real32) Sqrt2() Real32 { return math.Sqrt2 }
func (Real32) Ln2() Real32 { return math.Ln2 }
func (Real32) Ln10() Real32 { return math.Ln10 }
func (Real32) Log2E() Real32 { return math.Log2E }
func (Real32) Log10E() Real32 { return math.Log10E }
func (Real32) InvPi() Real32 { return 1 / math.Pi }
func (Real32) TwoOverPi() Real32 { return 2 / math.Pi }
func (Real32) TwoOverSqrtPi() Real32 { return 2 / math.SqrtPi }
func (Real32) InvSqrt2() Real32 { return 1 / math.Sqrt2 }
func (Real32) PiOver2() Real32 { return math.Pi / 2 }
func (Real32) PiOver3() Real32 { return math.Pi / 3 }
func (Real32) PiOver4() Real32 { return math.Pi / 4 }
func (Real32) PiOver6() Real32 { return math.Pi / 6 }
func (Real32) PiOver8() Real32 { return math.Pi / 8 }

package algoscalar

import (
	"encoding"
	"fmt"

	"golang.org/x/exp/rand"
)

// Scalar is the capability contract shared by all supported scalar types.
//
// The type parameters encode the peer relationships: S is the implementing
// type itself, R its real peer and C its complex peer. For a real scalar
// R == S; for a complex scalar C == S. Generic algorithms are written
// against this interface:
//
//	func Norm2[S Scalar[S, R, C], R Real[R, C], C any](xs []S) R {
//		var sum R
//		sum = sum.Zero()
//		for _, x := range xs {
//			sum = sum.Add(x.AbsSq())
//		}
//		return sum.Sqrt()
//	}
//
// Constructor methods (FromFloat, Real, Complex, FromReal, Zero, One, Rand)
// use the receiver only as a type token; its value is ignored, so they may
// be called on the zero value of S.
//
// Every operation is a pure function of its receiver and arguments. Domain
// and range issues produce IEEE-754 special values (NaN, ±Inf) rather than
// panics. The cast constructors are the only fallible operations: they
// report false when the source is finite but outside the target's finite
// range.
type Scalar[S, R, C any] interface {
	fmt.Stringer
	encoding.TextMarshaler

	// FromFloat casts v to the scalar type, reporting representability.
	FromFloat(v float64) (S, bool)
	// Real casts re to the real peer type, reporting representability.
	Real(re float64) (R, bool)
	// Complex builds a complex peer value from real and imaginary parts,
	// reporting representability.
	Complex(re, im float64) (C, bool)
	// FromReal lifts a real peer value to the scalar type with a zero
	// imaginary part.
	FromReal(re R) S

	Zero() S
	One() S

	// Rand draws a value uniformly distributed in [0, 1) per component
	// from the caller-supplied generator. The generator is borrowed for
	// the duration of the call and never retained.
	Rand(rng *rand.Rand) S

	// Re returns the real part.
	Re() R
	// Im returns the imaginary part, which is zero for real scalars.
	Im() R
	// AsComplex returns the value in the complex peer representation.
	AsComplex() C
	// Conj returns the complex conjugate, the identity for real scalars.
	Conj() S

	// Abs returns the absolute value.
	Abs() R
	// AbsSq returns the squared absolute value: self·self for real
	// scalars, re²+im² for complex ones. It avoids the square root that
	// Abs needs on the complex path.
	AbsSq() R

	Add(S) S
	Sub(S) S
	Mul(S) S
	Div(S) S
	Neg() S

	// Real-peer arithmetic stays in the scalar's own type.
	AddReal(R) S
	SubReal(R) S
	MulReal(R) S
	DivReal(R) S

	// Complex-peer arithmetic always promotes to the complex peer type.
	AddComplex(C) C
	SubComplex(C) C
	MulComplex(C) C
	DivComplex(C) C

	// Pow raises the value to a same-type power.
	Pow(S) S
	// PowInt raises the value to an integer power with
	// repeated-multiplication semantics; PowInt(0) is One for every
	// finite receiver, including zero.
	PowInt(int) S
	// PowReal raises the value to a real-peer power.
	PowReal(R) S
	// PowComplex raises the value to a complex-peer power. Real bases are
	// promoted to complex first, so the result is always complex.
	PowComplex(C) C

	Sqrt() S
	Exp() S
	Log() S
	Sin() S
	Cos() S
	Tan() S
	Asin() S
	Acos() S
	Atan() S
	Sinh() S
	Cosh() S
	Tanh() S
	Asinh() S
	Acosh() S
	Atanh() S
}

// Peer relationships are width-preserving and closed over the four adapters.
var (
	_ Scalar[Real32, Real32, Complex64]      = Real32(0)
	_ Scalar[Real64, Real64, Complex128]     = Real64(0)
	_ Scalar[Complex64, Real32, Complex64]   = Complex64(0)
	_ Scalar[Complex128, Real64, Complex128] = Complex128(0)

	_ encoding.TextUnmarshaler = (*Real32)(nil)
	_ encoding.TextUnmarshaler = (*Real64)(nil)
	_ encoding.TextUnmarshaler = (*Complex64)(nil)
	_ encoding.TextUnmarshaler = (*Complex128)(nil)
)

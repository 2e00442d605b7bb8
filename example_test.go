package algoscalar

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// addOne works for any scalar type without knowing whether it is real or
// complex.
func addOne[S Scalar[S, R, C], R any, C any](a S) S {
	return a.Add(a.One())
}

// lerp interpolates between two scalars with a real-peer parameter.
func lerp[S Scalar[S, R, C], R any, C any](a, b S, t R) S {
	return a.Add(b.Sub(a).MulReal(t))
}

func ExampleScalar() {
	fmt.Println(addOne[Real64, Real64, Complex128](1.5))
	fmt.Println(addOne[Complex64, Real32, Complex64](Complex64(complex(1, 1))))
	// Output:
	// 2.5
	// (2+1i)
}

func ExampleScalar_mixedArithmetic() {
	// Combining a real scalar with a complex peer promotes to complex.
	a := Real32(2)
	fmt.Println(a.AddComplex(Complex64(complex(1, 3))))
	// Output: (3+3i)
}

func ExampleScalar_lerp() {
	mid := lerp[Complex128, Real64, Complex128](0, Complex128(complex(2, 2)), 0.5)
	fmt.Println(mid)
	// Output: (1+1i)
}

func ExampleScalar_rand() {
	rng := rand.New(rand.NewSource(1))

	var token Complex128

	v := token.Rand(rng)
	fmt.Println(v.Re() >= 0 && v.Re() < 1, v.Im() >= 0 && v.Im() < 1)
	// Output: true true
}

func ExampleReal() {
	var r Real64

	fmt.Println(r.Pi())
	fmt.Println(r.Eps())
	// Output:
	// 3.141592653589793
	// 2.220446049250313e-16
}

func ExampleNewReal32() {
	if v, ok := NewReal32(uint32(2)); ok {
		fmt.Println(v)
	}

	if _, ok := NewReal32(1e300); !ok {
		fmt.Println("not representable")
	}
	// Output:
	// 2
	// not representable
}

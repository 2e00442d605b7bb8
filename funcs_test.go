package algoscalar

import "testing"

func TestSum(t *testing.T) {
	t.Parallel()

	if got := Sum[Real64, Real64, Complex128]([]Real64{1, 2, 3}); got != 6 {
		t.Errorf("Sum(1, 2, 3) = %v, want 6", got)
	}

	if got := Sum[Real64, Real64, Complex128](nil); got != 0 {
		t.Errorf("Sum() = %v, want 0", got)
	}

	want := Complex64(complex(3, 3))
	if got := Sum[Complex64, Real32, Complex64]([]Complex64{1, complex(2, 3)}); got != want {
		t.Errorf("Sum(1, 2+3i) = %v, want %v", got, want)
	}
}

func TestProd(t *testing.T) {
	t.Parallel()

	if got := Prod[Real32, Real32, Complex64]([]Real32{2, 3, 4}); got != 24 {
		t.Errorf("Prod(2, 3, 4) = %v, want 24", got)
	}

	if got := Prod[Complex128, Real64, Complex128](nil); got != 1 {
		t.Errorf("Prod() = %v, want 1", got)
	}

	// i·i = -1, exact in both widths.
	if got := Prod[Complex128, Real64, Complex128]([]Complex128{1i, 1i}); got != -1 {
		t.Errorf("Prod(i, i) = %v, want -1", got)
	}
}

// norm2 is a generic consumer of the contract, the kind of algorithm the
// interfaces exist for.
func norm2[S Scalar[S, R, C], R Real[R, C], C any](xs []S) R {
	var token R

	sum := token.Zero()
	for _, x := range xs {
		sum = sum.Add(x.AbsSq())
	}

	return sum.Sqrt()
}

func TestGenericNorm2(t *testing.T) {
	t.Parallel()

	if got := norm2[Real64, Real64, Complex128]([]Real64{3, 4}); got != 5 {
		t.Errorf("norm2(3, 4) = %v, want 5", got)
	}

	got := norm2[Complex128, Real64, Complex128]([]Complex128{3 + 4i})
	if got != 5 {
		t.Errorf("norm2(3+4i) = %v, want 5", got)
	}
}

package scmath

import (
	"math"
	"testing"
)

func TestPowInt(t *testing.T) {
	t.Parallel()

	cases := []struct {
		x    float64
		n    int
		want float64
	}{
		{2, 10, 1024},
		{2, 0, 1},
		{0, 0, 1},
		{0, 3, 0},
		{2, -2, 0.25},
		{-2, 3, -8},
		{-2, 2, 4},
		{1.5, 1, 1.5},
	}
	for _, tc := range cases {
		if got := PowInt(tc.x, tc.n); got != tc.want {
			t.Errorf("PowInt(%v, %d) = %v, want %v", tc.x, tc.n, got, tc.want)
		}
	}

	if got := PowInt(float32(2), 10); got != 1024 {
		t.Errorf("PowInt(float32(2), 10) = %v, want 1024", got)
	}

	if got := PowInt(float32(10), -1); got != 0.1 {
		t.Errorf("PowInt(float32(10), -1) = %v, want 0.1", got)
	}
}

func TestPowIntMatchesPow(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{0.5, 1.25, 3} {
		for _, n := range []int{1, 2, 5, 9, -3} {
			got := PowInt(x, n)

			want := math.Pow(x, float64(n))
			if diff := math.Abs(got - want); diff > 1e-12*math.Abs(want) {
				t.Errorf("PowInt(%v, %d) = %v, want %v", x, n, got, want)
			}
		}
	}
}

func TestCast32(t *testing.T) {
	t.Parallel()

	if got, ok := Cast32(int64(1) << 40); !ok || got != float32(1)*(1<<40) {
		t.Errorf("Cast32(2^40) = (%v, %v), want (2^40, true)", got, ok)
	}

	if _, ok := Cast32(1e300); ok {
		t.Error("Cast32(1e300) reported representable")
	}

	if _, ok := Cast32(math.Nextafter(math.MaxFloat32, math.MaxFloat64)); ok {
		t.Error("Cast32(just above MaxFloat32) reported representable")
	}

	if got, ok := Cast32(float64(math.MaxFloat32)); !ok || got != math.MaxFloat32 {
		t.Errorf("Cast32(MaxFloat32) = (%v, %v), want (MaxFloat32, true)", got, ok)
	}

	if got, ok := Cast32(math.Inf(-1)); !ok || !math.IsInf(float64(got), -1) {
		t.Errorf("Cast32(-Inf) = (%v, %v), want (-Inf, true)", got, ok)
	}

	if got, ok := Cast32(math.NaN()); !ok || !math.IsNaN(float64(got)) {
		t.Errorf("Cast32(NaN) = (%v, %v), want (NaN, true)", got, ok)
	}
}

func TestCast64(t *testing.T) {
	t.Parallel()

	if got, ok := Cast64(uint64(1) << 60); !ok || got != float64(uint64(1)<<60) {
		t.Errorf("Cast64(2^60) = (%v, %v), want (2^60, true)", got, ok)
	}

	if got, ok := Cast64(-1.5); !ok || got != -1.5 {
		t.Errorf("Cast64(-1.5) = (%v, %v), want (-1.5, true)", got, ok)
	}
}

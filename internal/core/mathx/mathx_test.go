package mathx

import (
	"math"
	"testing"
)

func TestFMAMatchesProduct(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float64
	}{
		{"unit scale", 0.730967787376657, 10, 10},
		{"gaussian shape", 2, 0.24053641567148587, -1},
		{"negative span", 0.99, -3.5, 2.25},
		{"tiny", 0x1p-30, 0x1p-30, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FMA(tt.x, tt.y, tt.z)
			want := tt.x*tt.y + tt.z
			if diff := math.Abs(got - want); diff > 1e-15*math.Abs(want)+1e-300 {
				t.Fatalf("FMA(%v, %v, %v) = %v, want within rounding of %v", tt.x, tt.y, tt.z, got, want)
			}
		})
	}
}

func TestFMAByTwoIsExact(t *testing.T) {
	// fma(2, d, -1) must equal 2*d - 1 exactly: doubling is exact, so
	// both expressions round once. The Gaussian transform depends on
	// this identity.
	for _, d := range []float64{0, 0.25, 0.730967787376657, 0.9999999999999999} {
		if got, want := FMA(2, d, -1), 2*d-1; got != want {
			t.Fatalf("FMA(2, %v, -1) = %v, want %v", d, got, want)
		}
	}
}

func TestLnSpecialValues(t *testing.T) {
	if got := Ln(math.NaN()); !math.IsNaN(got) {
		t.Fatalf("Ln(NaN) = %v, want NaN", got)
	}
	if got := Ln(math.Inf(1)); !math.IsInf(got, 1) {
		t.Fatalf("Ln(+Inf) = %v, want +Inf", got)
	}
	if got := Ln(math.Inf(-1)); !math.IsNaN(got) {
		t.Fatalf("Ln(-Inf) = %v, want NaN", got)
	}
	if got := Ln(-1); !math.IsNaN(got) {
		t.Fatalf("Ln(-1) = %v, want NaN", got)
	}
	if got := Ln(0); !math.IsInf(got, -1) {
		t.Fatalf("Ln(0) = %v, want -Inf", got)
	}
	if got := Ln(math.Copysign(0, -1)); !math.IsInf(got, -1) {
		t.Fatalf("Ln(-0) = %v, want -Inf", got)
	}
}

func TestLnMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for x := 1e-6; x < 4; x *= 1.001 {
		got := Ln(x)
		if got < prev {
			t.Fatalf("Ln not monotonic at %v: %v < %v", x, got, prev)
		}
		prev = got
	}
}

func TestSqrtSpecialValues(t *testing.T) {
	if got := Sqrt(math.NaN()); !math.IsNaN(got) {
		t.Fatalf("Sqrt(NaN) = %v, want NaN", got)
	}
	if got := Sqrt(-1); !math.IsNaN(got) {
		t.Fatalf("Sqrt(-1) = %v, want NaN", got)
	}
	if got := Sqrt(math.Inf(1)); !math.IsInf(got, 1) {
		t.Fatalf("Sqrt(+Inf) = %v, want +Inf", got)
	}
	if got := Sqrt(0); got != 0 || math.Signbit(got) {
		t.Fatalf("Sqrt(0) = %v, want +0", got)
	}
	neg := Sqrt(math.Copysign(0, -1))
	if neg != 0 || !math.Signbit(neg) {
		t.Fatalf("Sqrt(-0) = %v, want -0", neg)
	}
}

func TestSqrtAccuracy(t *testing.T) {
	for _, x := range []float64{1e-8, 0.25, 0.5, 1, 2, 123.456, 1e12} {
		got := Sqrt(x)
		if rel := math.Abs(got*got-x) / x; rel > 1e-12 {
			t.Fatalf("Sqrt(%v) = %v, squared error %v", x, got, rel)
		}
	}
}

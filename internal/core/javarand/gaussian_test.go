package javarand

import (
	"math"
	"testing"
)

func TestNextGaussianKnownValues(t *testing.T) {
	// Values computed from the reference recurrence; compared with
	// tolerance because the transform depends on the compiled math
	// strategy's Ln and Sqrt in the last bits.
	tests := []struct {
		name string
		seed int64
		want []float64
	}{
		{"seed 0", 0, []float64{0.8025330637390305, -0.9015460884175122, 2.080920790428163, 0.7637707684364894}},
		{"seed 42", 42, []float64{1.141905315473055, 0.919407948982788, -0.9498666368908959, -1.1069902863993377}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := WithSeed(tt.seed)
			for i, w := range tt.want {
				got := r.NextGaussian()
				if math.Abs(got-w) > 1e-12 {
					t.Fatalf("draw %d: got %v, want about %v", i, got, w)
				}
			}
		})
	}
}

func TestNextGaussianCachesPair(t *testing.T) {
	r := WithSeed(0)

	first := r.NextGaussian()
	after := r.State()

	second := r.NextGaussian()
	if got := r.State(); got.Seed != after.Seed {
		t.Fatal("second draw of a pair advanced the generator")
	}
	if after.PendingGaussian == nil {
		t.Fatal("expected a pending value after the first draw")
	}
	if *after.PendingGaussian != second {
		t.Fatalf("pending value %v was not the second draw %v", *after.PendingGaussian, second)
	}
	if first == second {
		t.Fatal("pair halves should differ")
	}
}

func TestNextGaussianPairConsumesTwoUnitDraws(t *testing.T) {
	// Seed 0 accepts the first polar sample, so one pair costs exactly
	// two NextFloat64-equivalent advances.
	r := WithSeed(0)
	r.NextGaussian()
	r.NextGaussian()

	shadow := WithSeed(0)
	shadow.NextFloat64()
	shadow.NextFloat64()

	if r.State().Seed != shadow.State().Seed {
		t.Fatal("a gaussian pair should consume exactly two unit draws")
	}
}

func TestNextGaussianDeterministic(t *testing.T) {
	a := WithSeed(-1)
	b := WithSeed(-1)
	for i := 0; i < 100; i++ {
		if av, bv := a.NextGaussian(), b.NextGaussian(); av != bv {
			t.Fatalf("draw %d diverged (%v vs %v)", i, av, bv)
		}
	}
}

func TestNextGaussianDistribution(t *testing.T) {
	r := WithSeed(2024)
	const n = 200000

	var sum, sumSq float64
	for i := 0; i < n; i++ {
		v := r.NextGaussian()
		sum += v
		sumSq += v * v
	}

	mean := sum / n
	variance := sumSq/n - mean*mean
	if math.Abs(mean) > 0.01 {
		t.Fatalf("mean %v too far from 0", mean)
	}
	if math.Abs(variance-1) > 0.02 {
		t.Fatalf("variance %v too far from 1", variance)
	}
}

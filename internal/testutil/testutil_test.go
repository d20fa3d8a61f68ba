package testutil

import (
	"math"
	"math/rand"
	"testing"
)

func TestHarmonicZeroMean(t *testing.T) {
	data := Harmonic(16, 3, 1, 2.5)
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	if math.Abs(sum) > 1e-9 {
		t.Fatalf("harmonic field mean = %v, want 0", sum/float64(len(data)))
	}
}

func TestHarmonicAmplitude(t *testing.T) {
	data := Harmonic(8, 0, 0, 3)
	for i, v := range data {
		if v != 3 {
			t.Fatalf("index %d: got %v, want 3", i, v)
		}
	}
}

func TestSmoothFieldDeterministic(t *testing.T) {
	a := SmoothField(rand.New(rand.NewSource(1)), 16)
	b := SmoothField(rand.New(rand.NewSource(1)), 16)
	RequireSliceNearlyEqual(t, a, b, 0)
	RequireFinite(t, a)
}

func TestRequireIncreasing(t *testing.T) {
	RequireIncreasing(t, []float64{1, 2, 3})
}

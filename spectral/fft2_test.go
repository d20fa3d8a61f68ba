package spectral

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-geomag/internal/testutil"
)

func TestPlan2Validation(t *testing.T) {
	if _, err := NewPlan2(1, 8); err == nil {
		t.Fatalf("expected error for 1-column plan")
	}

	p, err := NewPlan2(4, 4)
	if err != nil {
		t.Fatalf("NewPlan2 error: %v", err)
	}
	if err := p.Forward(make([]complex128, 16), make([]float64, 15)); err == nil {
		t.Fatalf("expected error for short src")
	}
	if err := p.Forward(make([]complex128, 15), make([]float64, 16)); err == nil {
		t.Fatalf("expected error for short dst")
	}
}

func TestPlan2ConstantGrid(t *testing.T) {
	nx, ny := 8, 8
	p, err := NewPlan2(nx, ny)
	if err != nil {
		t.Fatalf("NewPlan2 error: %v", err)
	}

	src := make([]float64, nx*ny)
	for i := range src {
		src[i] = 2
	}
	dst := make([]complex128, nx*ny)
	if err := p.Forward(dst, src); err != nil {
		t.Fatalf("Forward error: %v", err)
	}

	// All energy at DC for a constant grid.
	want := 2.0 * float64(nx*ny)
	if math.Abs(real(dst[0])-want) > 1e-9 || math.Abs(imag(dst[0])) > 1e-9 {
		t.Fatalf("DC bin: got %v, want %v", dst[0], want)
	}
	for i := 1; i < len(dst); i++ {
		if math.Abs(real(dst[i])) > 1e-9 || math.Abs(imag(dst[i])) > 1e-9 {
			t.Fatalf("bin %d not ~0: %v", i, dst[i])
		}
	}
}

func TestPlan2RoundTrip(t *testing.T) {
	nx, ny := 16, 12
	p, err := NewPlan2(nx, ny)
	if err != nil {
		t.Fatalf("NewPlan2 error: %v", err)
	}

	rng := rand.New(rand.NewSource(42))
	src := make([]float64, nx*ny)
	for i := range src {
		src[i] = rng.NormFloat64()
	}

	spec := make([]complex128, nx*ny)
	if err := p.Forward(spec, src); err != nil {
		t.Fatalf("Forward error: %v", err)
	}
	back := make([]float64, nx*ny)
	if err := p.Inverse(back, spec); err != nil {
		t.Fatalf("Inverse error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, back, src, 1e-9)
}

func TestWavenumbers(t *testing.T) {
	k := Wavenumbers(4, 1)
	want := []float64{0, math.Pi / 2, -math.Pi, -math.Pi / 2}
	testutil.RequireSliceNearlyEqual(t, k, want, 1e-12)

	k = Wavenumbers(5, 2)
	want = []float64{0, math.Pi / 5, 2 * math.Pi / 5, -2 * math.Pi / 5, -math.Pi / 5}
	testutil.RequireSliceNearlyEqual(t, k, want, 1e-12)
}

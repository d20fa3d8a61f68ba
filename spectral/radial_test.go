package spectral

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-geomag/grid"
	"github.com/cwbudde/algo-geomag/internal/testutil"
	"github.com/cwbudde/algo-geomag/taper"
)

// monoGrid returns a square grid over cells of dx metres holding a cosine
// with m whole cycles along x.
func monoGrid(t *testing.T, n, m int, dx float64) *grid.Grid {
	t.Helper()
	g, err := grid.New(testutil.Harmonic(n, m, 0, 1), n, n, 0, float64(n-1)*dx, 0, float64(n-1)*dx)
	if err != nil {
		t.Fatalf("grid.New error: %v", err)
	}
	return g
}

func TestRadialRejectsRectangular(t *testing.T) {
	g, err := grid.New(make([]float64, 8*4), 8, 4, 0, 7000, 0, 3000)
	if err != nil {
		t.Fatalf("grid.New error: %v", err)
	}
	if _, _, _, err := Radial(g); err == nil {
		t.Fatalf("expected error for non-square subgrid")
	}
}

func TestRadialShape(t *testing.T) {
	g := monoGrid(t, 32, 4, 1000)

	k, phi, sigma, err := Radial(g)
	if err != nil {
		t.Fatalf("Radial error: %v", err)
	}
	if len(k) == 0 || len(k) != len(phi) || len(k) != len(sigma) {
		t.Fatalf("inconsistent output lengths: %d %d %d", len(k), len(phi), len(sigma))
	}

	testutil.RequireIncreasing(t, k)
	testutil.RequireFinite(t, k)
	testutil.RequireFinite(t, phi)
	testutil.RequireFinite(t, sigma)
	for i, v := range sigma {
		if v < 0 {
			t.Fatalf("sigma[%d] negative: %v", i, v)
		}
	}
	if k[0] <= 0 {
		t.Fatalf("DC must be excluded: k[0]=%v", k[0])
	}
}

func TestRadialLocatesMonochromaticPeak(t *testing.T) {
	n, m := 32, 4
	g := monoGrid(t, n, m, 1000)

	// dx=1000 m -> 1 km cells; the cosine sits at 2*pi*m/n rad/km.
	k0 := 2 * math.Pi * float64(m) / float64(n)

	k, phi, _, err := Radial(g, WithTaper(taper.TypeRectangular))
	if err != nil {
		t.Fatalf("Radial error: %v", err)
	}

	peak := 0
	for i := range phi {
		if phi[i] > phi[peak] {
			peak = i
		}
	}

	dk := 2 * math.Pi / float64(n-1)
	if math.Abs(k[peak]-k0) > dk {
		t.Fatalf("peak at k=%v, want within %v of %v", k[peak], dk, k0)
	}
}

func TestRadialDetrendOption(t *testing.T) {
	// A strong linear ramp leaks energy across all wavenumbers; detrending
	// must reduce total low-wavenumber power.
	n := 32
	data := testutil.Harmonic(n, 4, 0, 1)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			data[j*n+i] += 50 * float64(i)
		}
	}
	g, err := grid.New(data, n, n, 0, float64(n-1)*1000, 0, float64(n-1)*1000)
	if err != nil {
		t.Fatalf("grid.New error: %v", err)
	}

	_, raw, _, err := Radial(g)
	if err != nil {
		t.Fatalf("Radial error: %v", err)
	}
	_, det, _, err := Radial(g, WithDetrend())
	if err != nil {
		t.Fatalf("Radial detrend error: %v", err)
	}

	if det[0] >= raw[0] {
		t.Fatalf("detrending must reduce lowest-bin power: raw=%v detrended=%v", raw[0], det[0])
	}
}

func TestAzimuthalSectorSeparation(t *testing.T) {
	n, m := 32, 4
	g := monoGrid(t, n, m, 1000)

	k, theta, phi, err := Azimuthal(g, 4, WithTaper(taper.TypeRectangular))
	if err != nil {
		t.Fatalf("Azimuthal error: %v", err)
	}
	if len(theta) != 4 || len(phi) != 4 {
		t.Fatalf("sector count mismatch: %d %d", len(theta), len(phi))
	}
	for s := range phi {
		if len(phi[s]) != len(k) {
			t.Fatalf("sector %d length %d, want %d", s, len(phi[s]), len(k))
		}
	}

	// Energy travels along x (azimuth 0): the peak bin of sector 0 must
	// exceed the same bin in the perpendicular sector.
	k0 := 2 * math.Pi * float64(m) / float64(n)
	peak := 0
	for i := range k {
		if math.Abs(k[i]-k0) < math.Abs(k[peak]-k0) {
			peak = i
		}
	}

	s0 := phi[0][peak]
	s90 := phi[len(phi)/2][peak]
	if math.IsNaN(s0) {
		t.Fatalf("sector 0 peak bin empty")
	}
	if !math.IsNaN(s90) && s0 <= s90 {
		t.Fatalf("expected x-aligned energy: sector0=%v sector90=%v", s0, s90)
	}
}

func TestAnnulusStatsSpread(t *testing.T) {
	// Two samples in the first annulus with log powers ln 16 and ln 64:
	// sigma is the annulus standard deviation ln 2, not the standard error.
	kk := []float64{1.0, 1.2, 1.5, 3.0}
	logPower := []float64{math.Log(16), math.Log(64), math.Inf(-1), 5}

	k, phi, sigma := annulusStats(kk, logPower, 1.0, 2)

	testutil.RequireSliceNearlyEqual(t, k, []float64{1.1, 3}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, phi, []float64{math.Log(32), 5}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, sigma, []float64{math.Ln2, 0}, 1e-12)
}

func TestAzimuthalFirstAnnulusEdge(t *testing.T) {
	// The axis fundamentals at 2*pi/n sit below the annulus width
	// 2*pi/(n-1); they must not leak into the first annulus.
	n := 32
	rng := rand.New(rand.NewSource(7))
	g, err := grid.New(testutil.SmoothField(rng, n), n, n, 0, float64(n-1)*1000, 0, float64(n-1)*1000)
	if err != nil {
		t.Fatalf("grid.New error: %v", err)
	}

	kAz, _, _, err := Azimuthal(g, 4)
	if err != nil {
		t.Fatalf("Azimuthal error: %v", err)
	}
	dk := 2 * math.Pi / float64(n-1)
	if kAz[0] < dk-1e-12 {
		t.Fatalf("first annulus mean k=%v below annulus edge %v", kAz[0], dk)
	}

	kRad, _, _, err := Radial(g)
	if err != nil {
		t.Fatalf("Radial error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, kAz, kRad, 1e-12)
}

func TestAzimuthalValidation(t *testing.T) {
	g := monoGrid(t, 16, 2, 1000)
	if _, _, _, err := Azimuthal(g, 0); err == nil {
		t.Fatalf("expected error for zero sectors")
	}
}

func TestSummarize(t *testing.T) {
	k := []float64{1, 2, 3, 4}
	phi := []float64{10, 8, 6, 4}

	s := Summarize(k, phi)
	if s.Bins != 4 || s.KMin != 1 || s.KMax != 4 {
		t.Fatalf("unexpected summary bounds: %+v", s)
	}
	if s.PhiMax != 10 || s.KAtMax != 1 || s.PhiMin != 4 || s.KAtMin != 4 {
		t.Fatalf("unexpected extrema: %+v", s)
	}
	testutil.RequireNearlyEqual(t, s.Mean, 7, 1e-12)
	testutil.RequireNearlyEqual(t, s.Slope, -2, 1e-12)

	empty := Summarize(nil, nil)
	if !math.IsNaN(empty.PhiMax) {
		t.Fatalf("empty summary must carry NaN extrema")
	}
}

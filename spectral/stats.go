package spectral

import "math"

// Summary holds descriptive statistics of a radial log-power spectrum.
type Summary struct {
	Bins   int
	KMin   float64 // lowest binned wavenumber (rad/km)
	KMax   float64 // highest binned wavenumber (rad/km)
	PhiMax float64 // maximum log power
	KAtMax float64
	PhiMin float64 // minimum log power
	KAtMin float64
	Mean   float64 // mean log power
	Slope  float64 // least-squares d(phi)/dk over all bins
}

// Summarize computes descriptive statistics for a (k, phi) radial spectrum.
// Both slices must have equal length; an empty spectrum yields a zero
// Summary with NaN extrema.
func Summarize(k, phi []float64) Summary {
	n := len(phi)
	if n == 0 || len(k) != n {
		return Summary{
			PhiMax: math.NaN(), PhiMin: math.NaN(),
			KAtMax: math.NaN(), KAtMin: math.NaN(),
			Mean: math.NaN(), Slope: math.NaN(),
		}
	}

	s := Summary{
		Bins: n,
		KMin: k[0], KMax: k[n-1],
		PhiMax: phi[0], KAtMax: k[0],
		PhiMin: phi[0], KAtMin: k[0],
	}

	var sumK, sumP, sumKK, sumKP float64
	for i := 0; i < n; i++ {
		v := phi[i]
		sumP += v
		sumK += k[i]
		sumKK += k[i] * k[i]
		sumKP += k[i] * v
		if v > s.PhiMax {
			s.PhiMax = v
			s.KAtMax = k[i]
		}
		if v < s.PhiMin {
			s.PhiMin = v
			s.KAtMin = k[i]
		}
	}
	s.Mean = sumP / float64(n)

	det := float64(n)*sumKK - sumK*sumK
	if det != 0 {
		s.Slope = (float64(n)*sumKP - sumK*sumP) / det
	} else {
		s.Slope = math.NaN()
	}
	return s
}

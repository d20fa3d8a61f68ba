package testutil

import (
	"math"
	"math/rand"
)

// SmoothField returns an n-by-n row-major field built from a small set of
// random-phase cosines with red amplitude decay. It stands in for a
// magnetic-anomaly window in plumbing tests where only a plausibly smooth,
// zero-mean input is needed.
func SmoothField(rng *rand.Rand, n int) []float64 {
	const modes = 12

	data := make([]float64, n*n)
	for m := 1; m <= modes; m++ {
		amp := 1.0 / float64(m)
		kx := 2 * math.Pi * float64(rng.Intn(n/2)+1) / float64(n)
		ky := 2 * math.Pi * float64(rng.Intn(n/2)+1) / float64(n)
		phase := rng.Float64() * 2 * math.Pi
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				data[j*n+i] += amp * math.Cos(kx*float64(i)+ky*float64(j)+phase)
			}
		}
	}
	return data
}

// Harmonic returns an n-by-n row-major cosine field with mx and my whole
// cycles across the x and y axes.
func Harmonic(n, mx, my int, amp float64) []float64 {
	data := make([]float64, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			arg := 2 * math.Pi * (float64(mx*i) + float64(my*j)) / float64(n)
			data[j*n+i] = amp * math.Cos(arg)
		}
	}
	return data
}

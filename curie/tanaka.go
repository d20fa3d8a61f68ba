package curie

import "math"

// TanakaResult holds the depths recovered by the centroid method with their
// one-sigma uncertainties, all in km.
type TanakaResult struct {
	Zt    float64 // depth to the top of the magnetic layer
	ZtErr float64
	Z0    float64 // centroid depth of the magnetic layer
	Z0Err float64
	Zb    float64 // depth to the base, Zb = 2*Z0 - Zt
	ZbErr float64
}

// Tanaka1999 estimates magnetic layer depths from a radial log-power
// spectrum by the centroid method of Tanaka, Okubo and Matsubayashi (1999).
//
// The depth to the top follows from the slope of ln(sqrt(P)) over the
// high-wavenumber band topBand, and the centroid depth from the slope of
// ln(sqrt(P)/k) over the low-wavenumber band centroidBand; both bands are
// inclusive [kmin, kmax] in rad/km and need at least three spectrum bins.
// phi is natural log power as produced by spectral.Radial.
func Tanaka1999(k, phi []float64, topBand, centroidBand [2]float64) (TanakaResult, error) {
	if len(k) != len(phi) {
		return TanakaResult{}, errSpectrumDims
	}
	if err := validateBand(topBand); err != nil {
		return TanakaResult{}, err
	}
	if err := validateBand(centroidBand); err != nil {
		return TanakaResult{}, err
	}

	kt, yt := bandValues(k, phi, topBand, false)
	if len(kt) < 3 {
		return TanakaResult{}, errBandTooNarrow
	}
	kc, yc := bandValues(k, phi, centroidBand, true)
	if len(kc) < 3 {
		return TanakaResult{}, errBandTooNarrow
	}

	st, et := fitSlope(kt, yt)
	sc, ec := fitSlope(kc, yc)

	res := TanakaResult{
		Zt:    -st,
		ZtErr: et,
		Z0:    -sc,
		Z0Err: ec,
	}
	res.Zb = 2*res.Z0 - res.Zt
	res.ZbErr = math.Sqrt(4*res.Z0Err*res.Z0Err + res.ZtErr*res.ZtErr)
	return res, nil
}

// bandValues extracts ln(sqrt(P)) over a wavenumber band, dividing out k
// first for the centroid branch.
func bandValues(k, phi []float64, band [2]float64, centroid bool) (kb, yb []float64) {
	for i := range k {
		if k[i] < band[0] || k[i] > band[1] {
			continue
		}
		y := 0.5 * phi[i]
		if centroid {
			y -= math.Log(k[i])
		}
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		kb = append(kb, k[i])
		yb = append(yb, y)
	}
	return kb, yb
}

// fitSlope returns the least-squares slope of y against x and its standard
// error estimated from the residuals. Callers guarantee len(x) >= 3.
func fitSlope(x, y []float64) (slope, stderr float64) {
	n := float64(len(x))

	var sx, sy float64
	for i := range x {
		sx += x[i]
		sy += y[i]
	}
	mx, my := sx/n, sy/n

	var sxx, sxy float64
	for i := range x {
		dx := x[i] - mx
		sxx += dx * dx
		sxy += dx * (y[i] - my)
	}
	slope = sxy / sxx

	intercept := my - slope*mx
	var ss float64
	for i := range x {
		r := y[i] - (intercept + slope*x[i])
		ss += r * r
	}
	stderr = math.Sqrt(ss / (n - 2) / sxx)
	return slope, stderr
}

package spectral

import (
	"math"

	"github.com/cwbudde/algo-geomag/grid"
	"github.com/cwbudde/algo-geomag/taper"
)

// MetresPerKilometre converts metric cell spacing to the rad/km wavenumber
// convention used throughout Curie-depth analysis.
const MetresPerKilometre = 1000.0

// Option configures spectral estimation.
type Option func(*config)

type config struct {
	taperType  taper.Type
	taperAlpha float64
	hasAlpha   bool
	detrend    bool
}

func defaultSpectralConfig() config {
	return config{taperType: taper.TypeHann}
}

// WithTaper selects the taper window applied before the FFT. Default Hann.
func WithTaper(t taper.Type) Option {
	return func(c *config) {
		c.taperType = t
	}
}

// WithTaperAlpha sets the shape parameter for parametric tapers.
func WithTaperAlpha(v float64) Option {
	return func(c *config) {
		if v >= 0 {
			c.taperAlpha = v
			c.hasAlpha = true
		}
	}
}

// WithDetrend removes the best-fit plane before tapering instead of only
// the mean.
func WithDetrend() Option {
	return func(c *config) {
		c.detrend = true
	}
}

// Radial computes the azimuthally averaged log-power spectrum of a square
// subgrid.
//
// The grid is demeaned (or detrended), tapered, transformed, and its log
// power 2*ln|F| binned into annuli of width equal to the fundamental
// wavenumber 2*pi/L. For each annulus the function reports the mean
// wavenumber k (rad/km), the mean log power phi, and the standard
// deviation sigma of the log power across the annulus samples. Power is
// normalized by the taper power gain so
// spectra from different tapers are comparable; the additive constant is
// absorbed by the model's C parameter.
func Radial(g *grid.Grid, opts ...Option) (k, phi, sigma []float64, err error) {
	cfg := defaultSpectralConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := g.Nx()
	if g.Ny() != n {
		return nil, nil, nil, errNotSquare
	}

	logPower, kk, err := windowedLogPower(g, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	dxKm := g.Dx() / MetresPerKilometre
	dk := 2 * math.Pi / (float64(n-1) * dxKm)

	nbins := n/2 - 1
	if nbins < 1 {
		nbins = 1
	}

	k, phi, sigma = annulusStats(kk, logPower, dk, nbins)
	return k, phi, sigma, nil
}

// annulusStats bins radial samples into annuli [dk*(b+1), dk*(b+2)] and
// returns the per-annulus mean wavenumber, mean log power, and standard
// deviation of log power. Non-finite samples and empty annuli are skipped.
func annulusStats(kk, logPower []float64, dk float64, nbins int) (k, phi, sigma []float64) {
	k = make([]float64, 0, nbins)
	phi = make([]float64, 0, nbins)
	sigma = make([]float64, 0, nbins)

	for b := 0; b < nbins; b++ {
		klo := dk * float64(b+1)
		khi := klo + dk

		var sumK, sumP, sumP2 float64
		var cnt int
		for i, kv := range kk {
			if kv < klo || kv > khi {
				continue
			}
			p := logPower[i]
			if math.IsInf(p, 0) || math.IsNaN(p) {
				continue
			}
			sumK += kv
			sumP += p
			sumP2 += p * p
			cnt++
		}
		if cnt == 0 {
			continue
		}

		mean := sumP / float64(cnt)
		variance := sumP2/float64(cnt) - mean*mean
		if variance < 0 {
			variance = 0
		}

		k = append(k, sumK/float64(cnt))
		phi = append(phi, mean)
		sigma = append(sigma, math.Sqrt(variance))
	}
	return k, phi, sigma
}

// Azimuthal computes sector-averaged log-power spectra.
//
// The half-plane of spectral azimuths [0, pi) is split into the given number
// of sectors. The returned theta slice holds sector-centre azimuths in
// radians and phi[s] the per-annulus mean log power for sector s, aligned
// with the returned k bins. Annuli with no samples in a sector hold NaN.
func Azimuthal(g *grid.Grid, sectors int, opts ...Option) (k []float64, theta []float64, phi [][]float64, err error) {
	if err := validateSectors(sectors); err != nil {
		return nil, nil, nil, err
	}

	cfg := defaultSpectralConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := g.Nx()
	if g.Ny() != n {
		return nil, nil, nil, errNotSquare
	}

	logPower, kk, err := windowedLogPower(g, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	dxKm := g.Dx() / MetresPerKilometre
	kx := Wavenumbers(n, dxKm)
	ky := Wavenumbers(n, dxKm)

	dk := 2 * math.Pi / (float64(n-1) * dxKm)
	nbins := n/2 - 1
	if nbins < 1 {
		nbins = 1
	}
	dtheta := math.Pi / float64(sectors)

	theta = make([]float64, sectors)
	for s := range theta {
		theta[s] = (float64(s) + 0.5) * dtheta
	}

	sums := make([][]float64, sectors)
	counts := make([][]int, sectors)
	for s := range sums {
		sums[s] = make([]float64, nbins)
		counts[s] = make([]int, nbins)
	}
	kSum := make([]float64, nbins)
	kCnt := make([]int, nbins)

	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			kv := math.Hypot(kx[i], ky[j])
			if kv < dk {
				continue
			}
			b := int(kv/dk) - 1
			if b >= nbins {
				continue
			}

			az := math.Atan2(ky[j], kx[i])
			if az < 0 {
				az += math.Pi
			}
			if az >= math.Pi {
				az -= math.Pi
			}
			s := int(az / dtheta)
			if s >= sectors {
				s = sectors - 1
			}

			p := logPower[j*n+i]
			if math.IsInf(p, 0) || math.IsNaN(p) {
				continue
			}
			sums[s][b] += p
			counts[s][b]++
			kSum[b] += kv
			kCnt[b]++
		}
	}

	k = make([]float64, 0, nbins)
	keep := make([]int, 0, nbins)
	for b := 0; b < nbins; b++ {
		if kCnt[b] == 0 {
			continue
		}
		k = append(k, kSum[b]/float64(kCnt[b]))
		keep = append(keep, b)
	}

	phi = make([][]float64, sectors)
	for s := 0; s < sectors; s++ {
		phi[s] = make([]float64, len(keep))
		for out, b := range keep {
			if counts[s][b] == 0 {
				phi[s][out] = math.NaN()
				continue
			}
			phi[s][out] = sums[s][b] / float64(counts[s][b])
		}
	}
	return k, theta, phi, nil
}

// windowedLogPower demeans, tapers, and transforms the subgrid, returning
// row-major 2*ln|F| normalized by the taper power gain, plus the matching
// radial wavenumber of each FFT sample in rad/km.
func windowedLogPower(g *grid.Grid, cfg config) (logPower, kk []float64, err error) {
	n := g.Nx()

	var data []float64
	if cfg.detrend {
		data = g.Detrend().Data()
	} else {
		data = g.Data()
		mean := g.Mean()
		for i := range data {
			data[i] -= mean
		}
	}

	taperOpts := []taper.Option(nil)
	if cfg.hasAlpha {
		taperOpts = append(taperOpts, taper.WithAlpha(cfg.taperAlpha))
	}
	if err := taper.Apply2D(cfg.taperType, data, n, n, taperOpts...); err != nil {
		return nil, nil, err
	}
	powerGain, err := taper.PowerGain2D(cfg.taperType, n, n, taperOpts...)
	if err != nil {
		return nil, nil, err
	}

	plan, err := NewPlan2(n, n)
	if err != nil {
		return nil, nil, err
	}
	spec := make([]complex128, n*n)
	if err := plan.Forward(spec, data); err != nil {
		return nil, nil, err
	}

	logGain := math.Log(powerGain)
	logPower = make([]float64, n*n)
	for i, c := range spec {
		re, im := real(c), imag(c)
		p := re*re + im*im
		if p <= 0 {
			logPower[i] = math.Inf(-1)
			continue
		}
		logPower[i] = math.Log(p) - logGain
	}

	dxKm := g.Dx() / MetresPerKilometre
	kx := Wavenumbers(n, dxKm)
	ky := Wavenumbers(n, dxKm)
	kk = make([]float64, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			kk[j*n+i] = math.Hypot(kx[i], ky[j])
		}
	}
	return logPower, kk, nil
}

package curie

import (
	"math"
	"math/rand"

	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"

	"github.com/cwbudde/algo-geomag/spectral"
)

// MetropolisHastings samples the posterior of the model parameters for one
// window using a random-walk Metropolis-Hastings chain.
//
// The chain starts at start and proposes steps drawn from independent
// normals scaled per parameter by scale (non-positive components default
// to 1). During burn-in only improvements are accepted, with the misfit
// tempered by a factor of 1000, which walks the chain toward the posterior
// mode before sampling begins. Start the chain near the solution; C is
// well approximated by the mean of the radial spectrum.
func (f *Fitter) MetropolisHastings(window, xc, yc float64, nsim, burnin int, start, scale Params) ([]Params, error) {
	if err := validateSims(nsim); err != nil {
		return nil, err
	}
	if burnin < 0 {
		burnin = 0
	}

	sub, err := f.g.Subgrid(window, xc, yc)
	if err != nil {
		return nil, err
	}
	k, phi, sigma, err := spectral.Radial(sub, f.specOpts...)
	if err != nil {
		return nil, err
	}
	return f.sampleSpectrum(k, phi, sigma, nsim, burnin, start, scale)
}

// SampleSpectrum runs the Metropolis-Hastings chain directly on an observed
// radial spectrum.
func (f *Fitter) SampleSpectrum(k, phi, sigma []float64, nsim, burnin int, start, scale Params) ([]Params, error) {
	if err := validateSims(nsim); err != nil {
		return nil, err
	}
	if burnin < 0 {
		burnin = 0
	}
	if len(k) != len(phi) || len(k) != len(sigma) {
		return nil, errSpectrumDims
	}
	if len(k) < int(nParams) {
		return nil, errNoSpectrum
	}
	return f.sampleSpectrum(k, phi, sigma, nsim, burnin, start, scale)
}

func (f *Fitter) sampleSpectrum(k, phi, sigma []float64, nsim, burnin int, start, scale Params) ([]Params, error) {
	sc := [nParams]float64{scale.Beta, scale.Zt, scale.Dz, scale.C}
	for i := range sc {
		if sc[i] <= 0 {
			sc[i] = 1
		}
	}

	rng := rand.New(mrg63k3a.New())
	rng.Seed(f.seed)

	x0 := start
	step := func() Params {
		return Params{
			Beta: x0.Beta + rng.NormFloat64()*sc[Beta],
			Zt:   x0.Zt + rng.NormFloat64()*sc[Zt],
			Dz:   x0.Dz + rng.NormFloat64()*sc[Dz],
			C:    x0.C + rng.NormFloat64()*sc[C],
		}
	}

	// Burn-in: tempered hill climb toward the MAP estimate.
	for i := 0; i < burnin; i++ {
		x1 := step()
		p0 := math.Exp(-f.misfit(x0, k, phi, sigma) / 1000)
		p1 := math.Exp(-f.misfit(x1, k, phi, sigma) / 1000)
		if p1 > p0 {
			x0 = x1
		}
	}

	samples := make([]Params, nsim)
	for i := 0; i < nsim; i++ {
		x1 := step()
		p0 := math.Exp(-f.misfit(x0, k, phi, sigma))
		p1 := math.Exp(-f.misfit(x1, k, phi, sigma))
		if p0 < 1e-99 {
			p0 = 1e-99
		}

		p := math.Min(p1/p0, 1)
		if rng.Float64() <= p {
			x0 = x1
		}
		samples[i] = x0
	}
	return samples, nil
}

// MeanStd reduces a parameter sample set to its per-parameter mean and
// standard deviation.
func MeanStd(samples []Params) (mean, std Params) {
	n := float64(len(samples))
	if n == 0 {
		return Params{}, Params{}
	}

	var sum, sum2 [nParams]float64
	for _, s := range samples {
		vals := [nParams]float64{s.Beta, s.Zt, s.Dz, s.C}
		for i, v := range vals {
			sum[i] += v
			sum2[i] += v * v
		}
	}

	var m, sd [nParams]float64
	for i := range sum {
		m[i] = sum[i] / n
		variance := sum2[i]/n - m[i]*m[i]
		if variance < 0 {
			variance = 0
		}
		sd[i] = math.Sqrt(variance)
	}

	mean = Params{Beta: m[Beta], Zt: m[Zt], Dz: m[Dz], C: m[C]}
	std = Params{Beta: sd[Beta], Zt: sd[Zt], Dz: sd[Dz], C: sd[C]}
	return mean, std
}

package curie

import (
	"math"
	"math/rand"

	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"

	"github.com/cwbudde/algo-geomag/spectral"
)

// Sensitivity measures how the fitted parameters respond to uncertainty in
// the priors and in the observed spectrum.
//
// Each realization perturbs the mean of every priored parameter by a Latin
// hypercube draw from its own normal prior and resamples the observed log
// power within its per-bin standard deviation, then refits. The spread of the
// returned sample set is the sensitivity of the solution; reduce it with
// MeanStd. At least one prior must be set.
func (f *Fitter) Sensitivity(window, xc, yc float64, nsim int) ([]Params, error) {
	if err := validateSims(nsim); err != nil {
		return nil, err
	}

	sub, err := f.g.Subgrid(window, xc, yc)
	if err != nil {
		return nil, err
	}
	k, phi, sigma, err := spectral.Radial(sub, f.specOpts...)
	if err != nil {
		return nil, err
	}
	return f.sensitivitySpectrum(k, phi, sigma, nsim)
}

// SensitivitySpectrum runs the sensitivity analysis directly on an observed
// radial spectrum.
func (f *Fitter) SensitivitySpectrum(k, phi, sigma []float64, nsim int) ([]Params, error) {
	if err := validateSims(nsim); err != nil {
		return nil, err
	}
	if len(k) != len(phi) || len(k) != len(sigma) {
		return nil, errSpectrumDims
	}
	if len(k) < int(nParams) {
		return nil, errNoSpectrum
	}
	return f.sensitivitySpectrum(k, phi, sigma, nsim)
}

func (f *Fitter) sensitivitySpectrum(k, phi, sigma []float64, nsim int) ([]Params, error) {
	var priored []ParamName
	for i, prior := range f.priors {
		if prior != nil {
			priored = append(priored, ParamName(i))
		}
	}
	if len(priored) == 0 {
		return nil, errNoPriors
	}

	rng := rand.New(mrg63k3a.New())
	rng.Seed(f.seed)

	sp := smpln.NewLHC(rng, nsim, len(priored), false)

	samples := make([]Params, nsim)
	rPhi := make([]float64, len(phi))
	for s := 0; s < nsim; s++ {
		// Perturbed priors for this realization; the Fitter's own priors
		// stay untouched.
		fc := *f
		for j, name := range priored {
			u := sp.U[j][s]
			if u < 1e-9 {
				u = 1e-9
			} else if u > 1-1e-9 {
				u = 1 - 1e-9
			}
			prior := f.priors[name]
			fc.priors[name] = &Prior{
				Mean:  prior.Mean + prior.Sigma*math.Sqrt2*math.Erfinv(2*u-1),
				Sigma: prior.Sigma,
			}
		}

		for i := range phi {
			rPhi[i] = phi[i] + rng.NormFloat64()*sigma[i]
		}

		res, err := fc.fitSpectrumSeeded(k, rPhi, sigma, f.seed+int64(s)+1)
		if err != nil {
			return nil, err
		}
		samples[s] = res.Params
	}
	return samples, nil
}

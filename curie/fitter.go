package curie

import (
	"math"
	"math/rand"
	"runtime"

	"github.com/maseology/glbopt"
	"github.com/maseology/mmaths"
	"github.com/maseology/objfunc"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"

	"github.com/cwbudde/algo-geomag/grid"
	"github.com/cwbudde/algo-geomag/spectral"
)

// ParamName indexes the four model parameters.
type ParamName int

const (
	Beta ParamName = iota
	Zt
	Dz
	C
	nParams
)

// String returns the conventional parameter symbol.
func (p ParamName) String() string {
	switch p {
	case Beta:
		return "beta"
	case Zt:
		return "zt"
	case Dz:
		return "dz"
	case C:
		return "C"
	default:
		return "unknown"
	}
}

// Prior is a normal prior on one model parameter.
type Prior struct {
	Mean  float64
	Sigma float64
}

// bigMisfit replaces non-finite misfits so invalid parameter regions read
// as uniformly bad to the optimizer.
const bigMisfit = 1e99

// sigmaFloor bounds spectrum uncertainties away from zero; single-sample
// annuli report a zero standard deviation that would otherwise blow up
// the misfit weights.
const sigmaFloor = 1e-3

// Result holds one fitted window.
type Result struct {
	Params
	Centroid grid.Point
	Misfit   float64 // objective value at the optimum
	RMSE     float64 // root-mean-square residual of log power
	NSE      float64 // Nash-Sutcliffe efficiency of the fitted spectrum
	Bins     int     // spectrum bins used
}

// Fitter estimates Bouligand model parameters from windows of a
// magnetic-anomaly grid.
//
// A Fitter is safe for concurrent Optimize calls once configured; priors
// and bounds must not be modified while fits are running.
type Fitter struct {
	g         *grid.Grid
	bounds    [nParams][2]float64
	priors    [nParams]*Prior
	specOpts  []spectral.Option
	seed      int64
	complexes int
}

// FitOption configures a Fitter.
type FitOption func(*Fitter)

// WithSeed fixes the optimizer RNG seed for reproducible fits.
func WithSeed(seed int64) FitOption {
	return func(f *Fitter) {
		f.seed = seed
	}
}

// WithSpectralOptions forwards options to the radial spectrum estimation.
func WithSpectralOptions(opts ...spectral.Option) FitOption {
	return func(f *Fitter) {
		f.specOpts = append(f.specOpts, opts...)
	}
}

// WithComplexes sets the number of shuffled complexes used by the SCE
// search. Defaults to GOMAXPROCS.
func WithComplexes(n int) FitOption {
	return func(f *Fitter) {
		if n > 0 {
			f.complexes = n
		}
	}
}

// NewFitter creates a Fitter over g with default bounds
// (beta in [0,10], zt in [0,10] km, dz in [0,100] km, C in [-30,30]).
func NewFitter(g *grid.Grid, opts ...FitOption) *Fitter {
	f := &Fitter{
		g: g,
		bounds: [nParams][2]float64{
			Beta: {0, 10},
			Zt:   {0, 10},
			Dz:   {0, 100},
			C:    {-30, 30},
		},
		seed:      1,
		complexes: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// SetBounds replaces the search bounds of one parameter.
func (f *Fitter) SetBounds(p ParamName, lo, hi float64) error {
	if err := validateParam(p); err != nil {
		return err
	}
	if err := validateBounds(lo, hi); err != nil {
		return err
	}
	f.bounds[p] = [2]float64{lo, hi}
	return nil
}

// SetPrior places a normal prior on one parameter.
func (f *Fitter) SetPrior(p ParamName, mean, sigma float64) error {
	if err := validateParam(p); err != nil {
		return err
	}
	if err := validatePrior(sigma); err != nil {
		return err
	}
	f.priors[p] = &Prior{Mean: mean, Sigma: sigma}
	return nil
}

// ResetPriors removes all priors.
func (f *Fitter) ResetPriors() {
	for i := range f.priors {
		f.priors[i] = nil
	}
}

// Optimize fits the model to the square window of side window metres
// centred on (xc, yc).
func (f *Fitter) Optimize(window, xc, yc float64) (Result, error) {
	return f.optimizeSeeded(window, xc, yc, f.seed)
}

func (f *Fitter) optimizeSeeded(window, xc, yc float64, seed int64) (Result, error) {
	sub, err := f.g.Subgrid(window, xc, yc)
	if err != nil {
		return Result{}, err
	}
	k, phi, sigma, err := spectral.Radial(sub, f.specOpts...)
	if err != nil {
		return Result{}, err
	}

	res, err := f.fitSpectrumSeeded(k, phi, sigma, seed)
	if err != nil {
		return Result{}, err
	}
	res.Centroid = grid.Point{X: xc, Y: yc}
	return res, nil
}

// FitSpectrum fits the model directly to an observed radial spectrum.
//
// Unlike gradient descent from a starting point, the shuffled-complex
// search explores the full bounded parameter space, so no initial guess is
// required; priors are the way to steer the solution.
func (f *Fitter) FitSpectrum(k, phi, sigma []float64) (Result, error) {
	return f.fitSpectrumSeeded(k, phi, sigma, f.seed)
}

func (f *Fitter) fitSpectrumSeeded(k, phi, sigma []float64, seed int64) (Result, error) {
	if len(k) != len(phi) || len(k) != len(sigma) {
		return Result{}, errSpectrumDims
	}
	if len(k) < int(nParams) {
		return Result{}, errNoSpectrum
	}

	rng := rand.New(mrg63k3a.New())
	rng.Seed(seed)

	gen := func(u []float64) float64 {
		return f.misfit(f.fromUnit(u), k, phi, sigma)
	}
	u, _ := glbopt.SCE(f.complexes, int(nParams), rng, gen, true)

	p := f.fromUnit(u)
	syn := Spectrum(k, p)
	res := Result{
		Params: p,
		Misfit: f.misfit(p, k, phi, sigma),
		RMSE:   objfunc.RMSE(phi, syn),
		NSE:    objfunc.NSE(phi, syn),
		Bins:   len(k),
	}
	return res, nil
}

// fromUnit maps a unit-hypercube sample to bounded parameter space.
func (f *Fitter) fromUnit(u []float64) Params {
	return Params{
		Beta: mmaths.LinearTransform(f.bounds[Beta][0], f.bounds[Beta][1], u[Beta]),
		Zt:   mmaths.LinearTransform(f.bounds[Zt][0], f.bounds[Zt][1], u[Zt]),
		Dz:   mmaths.LinearTransform(f.bounds[Dz][0], f.bounds[Dz][1], u[Dz]),
		C:    mmaths.LinearTransform(f.bounds[C][0], f.bounds[C][1], u[C]),
	}
}

// misfit is the weighted data misfit plus prior misfit. Non-finite model
// values map to bigMisfit.
func (f *Fitter) misfit(p Params, k, phi, sigma []float64) float64 {
	m := 0.0
	for i := range k {
		s := sigma[i]
		if s < sigmaFloor {
			s = sigmaFloor
		}
		r := (Bouligand2009(k[i], p) - phi[i]) / s
		m += 0.5 * r * r
	}
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return bigMisfit
	}
	return m + f.priorMisfit(p)
}

func (f *Fitter) priorMisfit(p Params) float64 {
	vals := [nParams]float64{p.Beta, p.Zt, p.Dz, p.C}

	m := 0.0
	for i, prior := range f.priors {
		if prior == nil {
			continue
		}
		r := (vals[i] - prior.Mean) / prior.Sigma
		m += 0.5 * r * r
	}
	return m
}

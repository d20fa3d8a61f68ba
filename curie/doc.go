// Package curie estimates Curie depth from radial power spectra of
// magnetic-anomaly windows.
//
// The package implements the Bouligand et al. (2009) analytic spectrum of a
// fractally magnetized layer and fits its four parameters (beta, zt, dz, C)
// to observed radial spectra by bounded global minimization, optionally
// constrained by normal priors. Posterior uncertainty is available through
// a Metropolis-Hastings sampler and a prior-perturbing sensitivity
// analysis. The Tanaka et al. (1999) centroid method is provided as an
// independent spectral-slope estimator.
//
// Depths are in kilometres and wavenumbers in rad/km throughout.
package curie

// Package spectral computes 2D Fourier power spectra of gridded data.
//
// The package provides a row-column 2D FFT plan over the algo-fft backend,
// angular-wavenumber helpers, and the azimuthally averaged (radial) and
// sector-averaged (azimuthal) log-power spectra used for Curie-depth
// analysis. Wavenumbers are reported in rad/km for grids with metric cell
// spacing.
package spectral

// Package taper provides window functions for tapering gridded data prior
// to spectral estimation.
//
// Tapers are generated in 1D and applied to 2D grids as the outer product
// of a row and a column window, which is the conventional treatment for
// windowed power spectra of potential-field grids.
package taper

// Package transform provides wavenumber-domain filters for magnetic-anomaly
// grids: upward continuation and reduction to the pole. Both operate on the
// full 2D spectrum of a grid and return a new grid with the same extent.
package transform

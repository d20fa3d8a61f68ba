// Package grid provides uniformly spaced magnetic-anomaly rasters.
//
// A Grid carries row-major float64 samples together with a metric extent.
// It supports square subgrid extraction around a centroid, centroid
// lattices for moving-window analyses, plane detrending, and a plain-text
// interchange format.
package grid

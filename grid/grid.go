package grid

import (
	"fmt"
	"math"
)

// spacingTol is the relative tolerance used when checking that x and y cell
// sizes agree. Radial spectra assume square cells.
const spacingTol = 1e-6

// Grid is a node-registered raster of magnetic-anomaly values over a
// rectangular metric extent. Values are stored row-major: the sample at
// column i, row j is data[j*nx+i], with row 0 at ymin.
type Grid struct {
	data                   []float64
	nx, ny                 int
	xmin, xmax, ymin, ymax float64
	dx, dy                 float64
}

// Point is a centroid location in grid coordinates.
type Point struct {
	X, Y float64
}

// New builds a Grid from row-major data and its extent.
//
// The data slice is copied. Cell spacing is derived from the extent and must
// match between the two axes within a small relative tolerance.
func New(data []float64, nx, ny int, xmin, xmax, ymin, ymax float64) (*Grid, error) {
	if err := validateDims(nx, ny); err != nil {
		return nil, err
	}
	if err := validateExtent(xmin, xmax, ymin, ymax); err != nil {
		return nil, err
	}
	if len(data) != nx*ny {
		return nil, fmt.Errorf("grid data length %d does not match %dx%d", len(data), nx, ny)
	}
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errNonFinite
		}
	}

	dx := (xmax - xmin) / float64(nx-1)
	dy := (ymax - ymin) / float64(ny-1)
	if math.Abs(dx-dy) > spacingTol*math.Max(dx, dy) {
		return nil, errSpacingNonUnif
	}

	g := &Grid{
		data: append([]float64(nil), data...),
		nx:   nx, ny: ny,
		xmin: xmin, xmax: xmax, ymin: ymin, ymax: ymax,
		dx: dx, dy: dy,
	}
	return g, nil
}

// Nx returns the number of columns.
func (g *Grid) Nx() int { return g.nx }

// Ny returns the number of rows.
func (g *Grid) Ny() int { return g.ny }

// Dx returns the cell spacing in metres.
func (g *Grid) Dx() float64 { return g.dx }

// Extent returns (xmin, xmax, ymin, ymax) in metres.
func (g *Grid) Extent() (xmin, xmax, ymin, ymax float64) {
	return g.xmin, g.xmax, g.ymin, g.ymax
}

// Value returns the sample at column i, row j.
func (g *Grid) Value(i, j int) float64 { return g.data[j*g.nx+i] }

// Data returns a copy of the row-major sample values.
func (g *Grid) Data() []float64 { return append([]float64(nil), g.data...) }

// Mean returns the arithmetic mean of all samples.
func (g *Grid) Mean() float64 {
	sum := 0.0
	for _, v := range g.data {
		sum += v
	}
	return sum / float64(len(g.data))
}

// Subgrid extracts the square window of side length window metres centred on
// (xc, yc). The returned Grid owns its own data and carries the extent of the
// extracted nodes.
func (g *Grid) Subgrid(window, xc, yc float64) (*Grid, error) {
	if err := validateWindow(window, g.dx); err != nil {
		return nil, err
	}

	n := int(math.Round(window / g.dx))
	ic := int(math.Round((xc - g.xmin) / g.dx))
	jc := int(math.Round((yc - g.ymin) / g.dy))
	i0 := ic - n/2
	j0 := jc - n/2
	if i0 < 0 || j0 < 0 || i0+n > g.nx || j0+n > g.ny {
		return nil, fmt.Errorf("window %f at (%f, %f) falls outside grid extent", window, xc, yc)
	}

	data := make([]float64, n*n)
	for j := 0; j < n; j++ {
		src := g.data[(j0+j)*g.nx+i0 : (j0+j)*g.nx+i0+n]
		copy(data[j*n:(j+1)*n], src)
	}

	sub := &Grid{
		data: data,
		nx:   n, ny: n,
		xmin: g.xmin + float64(i0)*g.dx,
		xmax: g.xmin + float64(i0+n-1)*g.dx,
		ymin: g.ymin + float64(j0)*g.dy,
		ymax: g.ymin + float64(j0+n-1)*g.dy,
		dx:   g.dx, dy: g.dy,
	}
	return sub, nil
}

// Centroids returns the lattice of window centres, stepped by spacing metres,
// covering the interior region where a full window of side window fits.
// Points are ordered row by row, from ymin to ymax.
func (g *Grid) Centroids(window, spacing float64) ([]Point, error) {
	if err := validateWindow(window, g.dx); err != nil {
		return nil, err
	}
	if spacing <= 0 {
		return nil, fmt.Errorf("centroid spacing must be > 0: %f", spacing)
	}

	xlo, xhi := g.xmin+window/2, g.xmax-window/2
	ylo, yhi := g.ymin+window/2, g.ymax-window/2
	if xlo > xhi || ylo > yhi {
		return nil, fmt.Errorf("window %f exceeds grid extent", window)
	}

	// Step by index; accumulating coordinates drifts on large metric
	// extents and can drop the last row or column.
	const stepTol = 1e-9
	nxc := int(math.Floor((xhi-xlo)/spacing+stepTol)) + 1
	nyc := int(math.Floor((yhi-ylo)/spacing+stepTol)) + 1

	pts := make([]Point, 0, nxc*nyc)
	for iy := 0; iy < nyc; iy++ {
		y := ylo + float64(iy)*spacing
		for ix := 0; ix < nxc; ix++ {
			pts = append(pts, Point{X: xlo + float64(ix)*spacing, Y: y})
		}
	}
	return pts, nil
}

// Detrend returns a copy of the grid with the best-fit plane removed.
func (g *Grid) Detrend() *Grid {
	a, b, c := g.fitPlane()

	out := &Grid{
		data: make([]float64, len(g.data)),
		nx:   g.nx, ny: g.ny,
		xmin: g.xmin, xmax: g.xmax, ymin: g.ymin, ymax: g.ymax,
		dx: g.dx, dy: g.dy,
	}
	for j := 0; j < g.ny; j++ {
		y := float64(j)
		for i := 0; i < g.nx; i++ {
			x := float64(i)
			out.data[j*g.nx+i] = g.data[j*g.nx+i] - (a + b*x + c*y)
		}
	}
	return out
}

// fitPlane solves the least-squares plane z = a + b*i + c*j over cell indices.
func (g *Grid) fitPlane() (a, b, c float64) {
	var n, sx, sy, sxx, syy, sxy, sz, sxz, syz float64
	for j := 0; j < g.ny; j++ {
		y := float64(j)
		for i := 0; i < g.nx; i++ {
			x := float64(i)
			z := g.data[j*g.nx+i]
			n++
			sx += x
			sy += y
			sxx += x * x
			syy += y * y
			sxy += x * y
			sz += z
			sxz += x * z
			syz += y * z
		}
	}

	// Normal equations, solved by Cramer's rule.
	det := n*(sxx*syy-sxy*sxy) - sx*(sx*syy-sxy*sy) + sy*(sx*sxy-sxx*sy)
	if det == 0 {
		return g.Mean(), 0, 0
	}
	a = (sz*(sxx*syy-sxy*sxy) - sx*(sxz*syy-sxy*syz) + sy*(sxz*sxy-sxx*syz)) / det
	b = (n*(sxz*syy-sxy*syz) - sz*(sx*syy-sxy*sy) + sy*(sx*syz-sxz*sy)) / det
	c = (n*(sxx*syz-sxz*sxy) - sx*(sx*syz-sxz*sy) + sz*(sx*sxy-sxx*sy)) / det
	return a, b, c
}

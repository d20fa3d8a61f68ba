package transform

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-geomag/grid"
	"github.com/cwbudde/algo-geomag/spectral"
)

// minThetaAmp floors the reduction-to-pole operator amplitude. Near the
// magnetic equator the operator blows up along the declination direction;
// the floor keeps the filter bounded at the cost of under-correcting those
// wavenumbers.
const minThetaAmp = 0.05

// UpwardContinue returns g continued upward by height metres, attenuating
// each wavenumber by exp(-|k| h). The grid mean (the DC bin) is preserved.
func UpwardContinue(g *grid.Grid, height float64) (*grid.Grid, error) {
	if height < 0 {
		return nil, errNegativeHeight
	}

	return filter(g, func(kx, ky float64) complex128 {
		kh := math.Hypot(kx, ky)
		return complex(math.Exp(-kh*height), 0)
	})
}

// ReduceToPole transforms g as if the inducing field and magnetization were
// vertical, removing the anomaly skew caused by an inclined field.
// Inclination and declination are in degrees, declination east of north.
//
// The operator is singular for horizontal fields; its amplitude is floored
// near the singularity, so results at inclinations close to zero are
// stabilized rather than exact.
func ReduceToPole(g *grid.Grid, incDeg, decDeg float64) (*grid.Grid, error) {
	if err := validateInclination(incDeg); err != nil {
		return nil, err
	}

	inc := incDeg * math.Pi / 180
	dec := decDeg * math.Pi / 180

	// Direction cosines of the field: east, north, down.
	l := math.Cos(inc) * math.Sin(dec)
	m := math.Cos(inc) * math.Cos(dec)
	n := math.Sin(inc)

	return filter(g, func(kx, ky float64) complex128 {
		kh := math.Hypot(kx, ky)
		if kh == 0 {
			return 1
		}
		theta := complex(n, (l*kx+m*ky)/kh)
		theta2 := theta * theta
		if amp := cmplx.Abs(theta2); amp < minThetaAmp {
			if amp == 0 {
				theta2 = complex(minThetaAmp, 0)
			} else {
				theta2 *= complex(minThetaAmp/amp, 0)
			}
		}
		return 1 / theta2
	})
}

// filter applies a wavenumber-domain transfer function to g and returns the
// filtered grid.
func filter(g *grid.Grid, h func(kx, ky float64) complex128) (*grid.Grid, error) {
	nx, ny := g.Nx(), g.Ny()

	plan, err := spectral.NewPlan2(nx, ny)
	if err != nil {
		return nil, err
	}

	spec := make([]complex128, nx*ny)
	if err := plan.Forward(spec, g.Data()); err != nil {
		return nil, err
	}

	kx := spectral.Wavenumbers(nx, g.Dx())
	ky := spectral.Wavenumbers(ny, g.Dx())
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			spec[j*nx+i] *= h(kx[i], ky[j])
		}
	}

	out := make([]float64, nx*ny)
	if err := plan.Inverse(out, spec); err != nil {
		return nil, err
	}

	xmin, xmax, ymin, ymax := g.Extent()
	return grid.New(out, nx, ny, xmin, xmax, ymin, ymax)
}

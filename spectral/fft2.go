package spectral

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
)

// Plan2 is a row-column 2D FFT plan for nx-by-ny row-major grids.
//
// A Plan2 owns scratch buffers and is not safe for concurrent use; create
// one plan per goroutine.
type Plan2 struct {
	nx, ny int
	px     *algofft.Plan[complex128]
	py     *algofft.Plan[complex128]
	col    []complex128
}

// NewPlan2 creates a 2D FFT plan for nx-by-ny grids.
func NewPlan2(nx, ny int) (*Plan2, error) {
	if err := validatePlanDims(nx, ny); err != nil {
		return nil, err
	}

	px, err := algofft.NewPlan64(nx)
	if err != nil {
		return nil, fmt.Errorf("fft2: row plan: %w", err)
	}
	py, err := algofft.NewPlan64(ny)
	if err != nil {
		return nil, fmt.Errorf("fft2: column plan: %w", err)
	}

	return &Plan2{
		nx: nx, ny: ny,
		px: px, py: py,
		col: make([]complex128, ny),
	}, nil
}

// Nx returns the plan width.
func (p *Plan2) Nx() int { return p.nx }

// Ny returns the plan height.
func (p *Plan2) Ny() int { return p.ny }

// Forward computes the 2D DFT of real row-major src into dst.
func (p *Plan2) Forward(dst []complex128, src []float64) error {
	if err := validateBuffer("src", len(src), p.nx*p.ny); err != nil {
		return err
	}
	if err := validateBuffer("dst", len(dst), p.nx*p.ny); err != nil {
		return err
	}

	for i, v := range src {
		dst[i] = complex(v, 0)
	}

	for j := 0; j < p.ny; j++ {
		row := dst[j*p.nx : (j+1)*p.nx]
		if err := p.px.Forward(row, row); err != nil {
			return fmt.Errorf("fft2: row %d: %w", j, err)
		}
	}

	for i := 0; i < p.nx; i++ {
		for j := 0; j < p.ny; j++ {
			p.col[j] = dst[j*p.nx+i]
		}
		if err := p.py.Forward(p.col, p.col); err != nil {
			return fmt.Errorf("fft2: column %d: %w", i, err)
		}
		for j := 0; j < p.ny; j++ {
			dst[j*p.nx+i] = p.col[j]
		}
	}
	return nil
}

// Inverse computes the inverse 2D DFT of src and writes the real parts into
// dst. The algo-fft inverse is normalized, so Forward followed by Inverse
// reproduces the input.
func (p *Plan2) Inverse(dst []float64, src []complex128) error {
	if err := validateBuffer("src", len(src), p.nx*p.ny); err != nil {
		return err
	}
	if err := validateBuffer("dst", len(dst), p.nx*p.ny); err != nil {
		return err
	}

	work := make([]complex128, len(src))
	copy(work, src)

	for i := 0; i < p.nx; i++ {
		for j := 0; j < p.ny; j++ {
			p.col[j] = work[j*p.nx+i]
		}
		if err := p.py.Inverse(p.col, p.col); err != nil {
			return fmt.Errorf("fft2: column %d: %w", i, err)
		}
		for j := 0; j < p.ny; j++ {
			work[j*p.nx+i] = p.col[j]
		}
	}

	for j := 0; j < p.ny; j++ {
		row := work[j*p.nx : (j+1)*p.nx]
		if err := p.px.Inverse(row, row); err != nil {
			return fmt.Errorf("fft2: row %d: %w", j, err)
		}
	}

	for i, v := range work {
		dst[i] = real(v)
	}
	return nil
}

// Wavenumbers returns the angular wavenumbers of an n-point DFT with sample
// spacing d, in FFT bin order: k[i] = 2*pi*i/(n*d) for the first half, with
// negative frequencies following.
func Wavenumbers(n int, d float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		f := float64(i)
		if i > (n-1)/2 {
			f = float64(i - n)
		}
		out[i] = 2 * math.Pi * f / (float64(n) * d)
	}
	return out
}

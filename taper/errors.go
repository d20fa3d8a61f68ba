package taper

import (
	"errors"
	"fmt"
)

var (
	errEmptyCoeffs      = errors.New("taper coefficients must not be empty")
	errZeroCoherentGain = errors.New("taper coherent gain is zero")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("taper size must be > 0: %d", size)
	}
	return nil
}

func validateGrid(n, nx, ny int) error {
	if nx <= 0 || ny <= 0 {
		return fmt.Errorf("taper grid dimensions must be > 0: %dx%d", nx, ny)
	}
	if n != nx*ny {
		return fmt.Errorf("taper data length %d does not match %dx%d", n, nx, ny)
	}
	return nil
}

package spectral

import (
	"errors"
	"fmt"
)

var errNotSquare = errors.New("spectral estimation requires a square subgrid")

func validatePlanDims(nx, ny int) error {
	if nx < 2 || ny < 2 {
		return fmt.Errorf("fft2 dimensions must be at least 2x2: %dx%d", nx, ny)
	}
	return nil
}

func validateBuffer(name string, got, want int) error {
	if got != want {
		return fmt.Errorf("fft2 %s length %d does not match plan size %d", name, got, want)
	}
	return nil
}

func validateSectors(n int) error {
	if n <= 0 {
		return fmt.Errorf("azimuthal sector count must be > 0: %d", n)
	}
	return nil
}

package grid

import (
	"errors"
	"fmt"
)

var (
	errNonFinite      = errors.New("grid values must be finite")
	errSpacingNonUnif = errors.New("grid spacing must be uniform in x and y")
)

func validateDims(nx, ny int) error {
	if nx < 2 || ny < 2 {
		return fmt.Errorf("grid dimensions must be at least 2x2: %dx%d", nx, ny)
	}
	return nil
}

func validateExtent(xmin, xmax, ymin, ymax float64) error {
	if !(xmax > xmin) {
		return fmt.Errorf("grid x extent must be increasing: [%f, %f]", xmin, xmax)
	}
	if !(ymax > ymin) {
		return fmt.Errorf("grid y extent must be increasing: [%f, %f]", ymin, ymax)
	}
	return nil
}

func validateWindow(window, dx float64) error {
	if window <= 0 {
		return fmt.Errorf("window size must be > 0: %f", window)
	}
	if window < 2*dx {
		return fmt.Errorf("window %f spans fewer than 2 cells at spacing %f", window, dx)
	}
	return nil
}

package transform

import (
	"errors"
	"fmt"
)

var errNegativeHeight = errors.New("continuation height must be >= 0")

func validateInclination(incDeg float64) error {
	if incDeg < -90 || incDeg > 90 {
		return fmt.Errorf("inclination must lie in [-90, 90] degrees: %f", incDeg)
	}
	return nil
}

package curie

import (
	"errors"
	"fmt"
)

var (
	errNoSpectrum    = errors.New("spectrum must hold at least 4 bins to constrain 4 parameters")
	errSpectrumDims  = errors.New("k, phi, and sigma must have equal lengths")
	errNoPriors      = errors.New("sensitivity analysis needs at least one prior")
	errBandTooNarrow = errors.New("wavenumber band covers fewer than 3 spectrum bins")
)

func validateParam(p ParamName) error {
	if p < Beta || p >= nParams {
		return fmt.Errorf("unknown parameter index %d", p)
	}
	return nil
}

func validatePrior(sigma float64) error {
	if sigma <= 0 {
		return fmt.Errorf("prior sigma must be > 0: %f", sigma)
	}
	return nil
}

func validateBounds(lo, hi float64) error {
	if !(hi > lo) {
		return fmt.Errorf("bounds must be increasing: [%f, %f]", lo, hi)
	}
	return nil
}

func validateBand(band [2]float64) error {
	if !(band[1] > band[0]) || band[0] < 0 {
		return fmt.Errorf("wavenumber band must be increasing and non-negative: [%f, %f]", band[0], band[1])
	}
	return nil
}

func validateSims(nsim int) error {
	if nsim <= 0 {
		return fmt.Errorf("simulation count must be > 0: %d", nsim)
	}
	return nil
}

package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-geomag/curie"
	"github.com/cwbudde/algo-geomag/spectral"
	"github.com/cwbudde/algo-geomag/taper"
)

// jobConfig is the YAML job file driving a curiefit run.
type jobConfig struct {
	Grid    string  `yaml:"grid"`    // path to the anomaly grid
	Window  float64 `yaml:"window"`  // window side length [m]
	Spacing float64 `yaml:"spacing"` // centroid spacing [m]; defaults to window/2
	Output  string  `yaml:"output"`  // CSV results path

	Taper      string  `yaml:"taper"` // hann, hamming, blackman, tukey, kaiser, rectangular
	TaperAlpha float64 `yaml:"taper_alpha"`
	Detrend    bool    `yaml:"detrend"`

	Seed      int64 `yaml:"seed"`
	Workers   int   `yaml:"workers"`
	Complexes int   `yaml:"complexes"`

	Priors map[string]priorConfig `yaml:"priors"`
	Bounds map[string]boundConfig `yaml:"bounds"`
}

type priorConfig struct {
	Mean  float64 `yaml:"mean"`
	Sigma float64 `yaml:"sigma"`
}

type boundConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func loadConfig(path string) (*jobConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &jobConfig{
		Taper:   "hann",
		Output:  "curie_results.csv",
		Seed:    1,
		Detrend: true,
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Spacing == 0 {
		cfg.Spacing = cfg.Window / 2
	}
	return cfg, nil
}

func (c *jobConfig) validate() error {
	if c.Grid == "" {
		return fmt.Errorf("grid path is required")
	}
	if c.Window <= 0 {
		return fmt.Errorf("window must be > 0: %f", c.Window)
	}
	if c.Spacing < 0 {
		return fmt.Errorf("spacing must be >= 0: %f", c.Spacing)
	}
	if _, err := parseTaper(c.Taper); err != nil {
		return err
	}
	for name := range c.Priors {
		if _, err := parseParam(name); err != nil {
			return err
		}
	}
	for name := range c.Bounds {
		if _, err := parseParam(name); err != nil {
			return err
		}
	}
	return nil
}

func parseTaper(name string) (taper.Type, error) {
	switch strings.ToLower(name) {
	case "rectangular", "none":
		return taper.TypeRectangular, nil
	case "hann", "":
		return taper.TypeHann, nil
	case "hamming":
		return taper.TypeHamming, nil
	case "blackman":
		return taper.TypeBlackman, nil
	case "tukey":
		return taper.TypeTukey, nil
	case "kaiser":
		return taper.TypeKaiser, nil
	default:
		return 0, fmt.Errorf("unknown taper %q", name)
	}
}

func parseParam(name string) (curie.ParamName, error) {
	switch strings.ToLower(name) {
	case "beta":
		return curie.Beta, nil
	case "zt":
		return curie.Zt, nil
	case "dz":
		return curie.Dz, nil
	case "c":
		return curie.C, nil
	default:
		return 0, fmt.Errorf("unknown parameter %q", name)
	}
}

// spectralOptions translates the job file into radial spectrum options.
func (c *jobConfig) spectralOptions() []spectral.Option {
	t, _ := parseTaper(c.Taper)
	opts := []spectral.Option{spectral.WithTaper(t)}
	if c.TaperAlpha > 0 {
		opts = append(opts, spectral.WithTaperAlpha(c.TaperAlpha))
	}
	if c.Detrend {
		opts = append(opts, spectral.WithDetrend())
	}
	return opts
}

// fitOptions translates the job file into Fitter options.
func (c *jobConfig) fitOptions() []curie.FitOption {
	opts := []curie.FitOption{
		curie.WithSeed(c.Seed),
		curie.WithSpectralOptions(c.spectralOptions()...),
	}
	if c.Complexes > 0 {
		opts = append(opts, curie.WithComplexes(c.Complexes))
	}
	return opts
}

// configureFitter applies the job file's priors and bounds.
func (c *jobConfig) configureFitter(f *curie.Fitter) error {
	for name, p := range c.Priors {
		param, err := parseParam(name)
		if err != nil {
			return err
		}
		if err := f.SetPrior(param, p.Mean, p.Sigma); err != nil {
			return fmt.Errorf("prior %s: %w", name, err)
		}
	}
	for name, b := range c.Bounds {
		param, err := parseParam(name)
		if err != nil {
			return err
		}
		if err := f.SetBounds(param, b.Min, b.Max); err != nil {
			return fmt.Errorf("bounds %s: %w", name, err)
		}
	}
	return nil
}

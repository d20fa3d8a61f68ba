package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/cwbudde/algo-geomag/curie"
	"github.com/cwbudde/algo-geomag/taper"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	fp := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(fp, []byte(body), 0o644))
	return fp
}

func TestLoadConfigDefaults(t *testing.T) {
	fp := writeConfig(t, `
grid: anomaly.txt
window: 100000
`)
	cfg, err := loadConfig(fp)
	require.NoError(t, err)

	assert.Equal(t, "anomaly.txt", cfg.Grid)
	assert.Equal(t, 100000.0, cfg.Window)
	assert.Equal(t, 50000.0, cfg.Spacing, "spacing defaults to half the window")
	assert.Equal(t, "hann", cfg.Taper)
	assert.Equal(t, "curie_results.csv", cfg.Output)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.True(t, cfg.Detrend)
}

func TestLoadConfigFull(t *testing.T) {
	fp := writeConfig(t, `
grid: emag2.txt
window: 200000
spacing: 100000
output: out.csv
taper: tukey
taper_alpha: 0.25
detrend: false
seed: 99
workers: 4
complexes: 8
priors:
  beta: {mean: 3.0, sigma: 1.0}
  zt: {mean: 0.5, sigma: 0.5}
bounds:
  dz: {min: 0, max: 60}
`)
	cfg, err := loadConfig(fp)
	require.NoError(t, err)

	assert.Equal(t, "tukey", cfg.Taper)
	assert.Equal(t, 0.25, cfg.TaperAlpha)
	assert.False(t, cfg.Detrend)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Len(t, cfg.Priors, 2)
	assert.Equal(t, 3.0, cfg.Priors["beta"].Mean)
	assert.Equal(t, 60.0, cfg.Bounds["dz"].Max)

	f := curie.NewFitter(nil, cfg.fitOptions()...)
	require.NoError(t, cfg.configureFitter(f))
}

func TestLoadConfigValidation(t *testing.T) {
	cases := map[string]string{
		"missing grid": `
window: 100000
`,
		"bad window": `
grid: g.txt
window: -5
`,
		"bad taper": `
grid: g.txt
window: 100000
taper: welch
`,
		"bad prior name": `
grid: g.txt
window: 100000
priors:
  depth: {mean: 1, sigma: 1}
`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseTaper(t *testing.T) {
	tt, err := parseTaper("Blackman")
	require.NoError(t, err)
	assert.Equal(t, taper.TypeBlackman, tt)

	tt, err = parseTaper("none")
	require.NoError(t, err)
	assert.Equal(t, taper.TypeRectangular, tt)

	_, err = parseTaper("flat-top")
	assert.Error(t, err)
}

func TestParseParam(t *testing.T) {
	p, err := parseParam("C")
	require.NoError(t, err)
	assert.Equal(t, curie.C, p)

	_, err = parseParam("gamma")
	assert.Error(t, err)
}

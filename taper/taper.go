package taper

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a taper window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeTukey
	TypeKaiser
)

// String returns the lower-case window name.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	case TypeTukey:
		return "tukey"
	case TypeKaiser:
		return "kaiser"
	default:
		return "unknown"
	}
}

// Option configures taper generation.
type Option func(*config)

type config struct {
	alpha    float64
	periodic bool
}

func defaultConfig() config {
	return config{alpha: defaultAlpha}
}

const defaultAlpha = 0.5

// WithAlpha configures the shape parameter for parametric tapers
// (Tukey alpha in [0,1], Kaiser beta >= 0).
func WithAlpha(v float64) Option {
	return func(c *config) {
		if v >= 0 {
			c.alpha = v
		}
	}
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Cosine-sum coefficients, a_k applied as sum a_k cos(k*2*pi*x).
var (
	hannCoeffs     = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

// Generate returns 1D taper coefficients of the given length.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	for i := range out {
		x := samplePosition(i, length, cfg.periodic)
		out[i] = evalTaper(t, x, cfg)
	}
	return out
}

// Apply2D multiplies the row-major nx-by-ny data in place by the outer
// product of a row taper (length nx) and a column taper (length ny).
func Apply2D(t Type, data []float64, nx, ny int, opts ...Option) error {
	if err := validateGrid(len(data), nx, ny); err != nil {
		return err
	}
	if t == TypeRectangular {
		return nil
	}

	wx := Generate(t, nx, opts...)
	wy := Generate(t, ny, opts...)

	row := make([]float64, nx)
	for j := 0; j < ny; j++ {
		vecmath.ScaleBlock(row, wx, wy[j])
		vecmath.MulBlockInPlace(data[j*nx:(j+1)*nx], row)
	}
	return nil
}

// CoherentGain returns the mean of the coefficients.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}
	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}
	return sum / float64(len(coeffs)), nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a taper.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0
	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}
	if sum == 0 {
		return 0, errZeroCoherentGain
	}
	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// PowerGain2D returns the sum of squared outer-product coefficients for an
// nx-by-ny taper. Radial spectra divide windowed power by this factor so
// spectra from different tapers are comparable.
func PowerGain2D(t Type, nx, ny int, opts ...Option) (float64, error) {
	if err := validateLength(nx); err != nil {
		return 0, err
	}
	if err := validateLength(ny); err != nil {
		return 0, err
	}
	if t == TypeRectangular {
		return float64(nx * ny), nil
	}

	wx := Generate(t, nx, opts...)
	wy := Generate(t, ny, opts...)

	sx := 0.0
	for _, v := range wx {
		sx += v * v
	}
	sy := 0.0
	for _, v := range wy {
		sy += v * v
	}
	return sx * sy, nil
}

func evalTaper(t Type, x float64, cfg config) float64 {
	if x < 0 {
		x = 0
	}
	if x > 1 {
		x = 1
	}

	switch t {
	case TypeRectangular:
		return 1
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	case TypeTukey:
		return tukeyAt(x, cfg.alpha)
	case TypeKaiser:
		return kaiserAt(x, cfg.alpha)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}
	return sum
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}
	return float64(n) / den
}

func tukeyAt(x, alpha float64) float64 {
	if alpha <= 0 {
		return 1
	}
	if alpha >= 1 {
		return cosineFromCoeffs(x, hannCoeffs)
	}

	a := alpha / 2
	switch {
	case x < a:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-1)))
	case x <= 1-a:
		return 1
	default:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-2/alpha+1)))
	}
}

func kaiserAt(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	term := math.Sqrt(math.Max(0, 1-r*r))
	return besselI0(beta*term) / besselI0(beta)
}

// besselI0 returns a numerical approximation of the modified Bessel function I0.
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y
		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax
	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}

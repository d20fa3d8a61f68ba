package curie

import "math"

// Params holds the four parameters of the Bouligand et al. (2009) radial
// spectrum model.
type Params struct {
	Beta float64 // fractal exponent of crustal magnetization
	Zt   float64 // depth to the top of the magnetic layer [km]
	Dz   float64 // magnetic layer thickness [km]
	C    float64 // field constant [log power]
}

// CurieDepth returns the depth to the base of the magnetic layer [km].
func (p Params) CurieDepth() float64 { return p.Zt + p.Dz }

// Bouligand2009 evaluates the analytic radial log-power spectrum of a layer
// with fractal magnetization at wavenumber kh (rad/km):
//
//	Phi(kh) = C - 2*kh*zt - (beta-1)*ln(kh) - kh*dz
//	        + ln( sqrt(pi)/Gamma(1+beta/2) * ( cosh(kh*dz)/2*Gamma((1+beta)/2)
//	              - K_v(kh*dz)*(kh*dz/2)^v ) ),  v = (1+beta)/2
//
// Parameter combinations outside the model's domain (kh <= 0, dz <= 0, or
// arguments that overflow) yield NaN or Inf; callers fitting the model must
// map those to a large misfit rather than propagate them.
func Bouligand2009(kh float64, p Params) float64 {
	khdz := kh * p.Dz
	v := 0.5 * (1 + p.Beta)

	phi := p.C - 2*kh*p.Zt - (p.Beta-1)*math.Log(kh) - khdz

	a := math.Sqrt(math.Pi) / math.Gamma(1+0.5*p.Beta) *
		(0.5*math.Cosh(khdz)*math.Gamma(v) - besselK(v, khdz)*math.Pow(0.5*khdz, v))
	return phi + math.Log(a)
}

// Spectrum evaluates Bouligand2009 over a wavenumber slice.
func Spectrum(kh []float64, p Params) []float64 {
	out := make([]float64, len(kh))
	for i, k := range kh {
		out[i] = Bouligand2009(k, p)
	}
	return out
}

// besselK returns the modified Bessel function of the second kind K_v(x)
// for real order v and x > 0, evaluated through the integral representation
//
//	K_v(x) = \int_0^inf exp(-x*cosh(t)) * cosh(v*t) dt
//
// by composite Simpson quadrature. K is even in v. Non-positive x returns
// NaN, matching the function's domain.
func besselK(v, x float64) float64 {
	if math.IsNaN(v) || math.IsNaN(x) || x <= 0 {
		return math.NaN()
	}
	v = math.Abs(v)

	// Extend the upper limit until the integrand has underflowed.
	tmax := 1.0
	for x*math.Cosh(tmax)-v*tmax < 746 {
		tmax *= 1.25
		if tmax > 700 {
			break
		}
	}

	const steps = 2048
	h := tmax / steps

	f := func(t float64) float64 {
		e := -x*math.Cosh(t) + logCosh(v*t)
		if e < -745 {
			return 0
		}
		return math.Exp(e)
	}

	sum := f(0) + f(tmax)
	for i := 1; i < steps; i++ {
		w := 4.0
		if i%2 == 0 {
			w = 2.0
		}
		sum += w * f(float64(i)*h)
	}
	return sum * h / 3
}

// logCosh returns ln(cosh(u)) without overflowing for large u.
func logCosh(u float64) float64 {
	u = math.Abs(u)
	if u > 350 {
		return u - math.Ln2
	}
	return u + math.Log1p(math.Exp(-2*u)) - math.Ln2
}

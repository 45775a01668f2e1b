package diagnostics

import (
	"fmt"
	"math"

	"github.com/ts-lab/stosim/internal/stochastic"
)

// LjungBoxResult holds the portmanteau test statistic and its chi-square
// p-value. A small p-value rejects the null of no autocorrelation up to
// the tested lag.
type LjungBoxResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int
}

// LjungBox tests a series for autocorrelation up to the given lag. fitdf
// is the number of fitted model parameters to subtract from the degrees of
// freedom (0 for a raw simulated path, p+q for ARMA residuals).
func LjungBox(s stochastic.Series, lags, fitdf int) (*LjungBoxResult, error) {
	n := len(s)
	if lags < 1 {
		return nil, fmt.Errorf("%w: lags must be at least 1, got %d", stochastic.ErrInvalidParameter, lags)
	}
	if lags >= n {
		return nil, fmt.Errorf("%w: lags %d must be smaller than series length %d", stochastic.ErrInvalidParameter, lags, n)
	}

	acf, err := ACF(s, lags)
	if err != nil {
		return nil, err
	}

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += (acf[k] * acf[k]) / float64(n-k)
	}
	q *= float64(n * (n + 2))

	dof := lags - fitdf
	if dof < 1 {
		dof = 1
	}

	return &LjungBoxResult{
		Statistic: q,
		PValue:    1 - chiSquaredCDF(q, dof),
		Lags:      lags,
		DOF:       dof,
	}, nil
}

// chiSquaredCDF is the CDF of the chi-square distribution with k degrees
// of freedom: the regularized lower incomplete gamma P(k/2, x/2).
func chiSquaredCDF(x float64, k int) float64 {
	if x <= 0 {
		return 0
	}
	return regularizedGammaP(float64(k)/2, x/2)
}

// regularizedGammaP computes P(a, x) using the series expansion for
// x < a+1 and the continued fraction otherwise (Numerical Recipes 6.2).
func regularizedGammaP(a, x float64) float64 {
	if x < a+1 {
		return gammaSeries(a, x)
	}
	return 1 - gammaContinuedFraction(a, x)
}

func gammaSeries(a, x float64) float64 {
	const (
		maxIter = 200
		eps     = 1e-12
	)

	lg, _ := math.Lgamma(a)
	ap := a
	del := 1.0 / a
	sum := del
	for i := 0; i < maxIter; i++ {
		ap++
		del *= x / ap
		sum += del
		if math.Abs(del) < math.Abs(sum)*eps {
			break
		}
	}
	return sum * math.Exp(-x+a*math.Log(x)-lg)
}

func gammaContinuedFraction(a, x float64) float64 {
	const (
		maxIter = 200
		eps     = 1e-12
		fpmin   = 1e-30
	)

	lg, _ := math.Lgamma(a)
	b := x + 1 - a
	c := 1 / fpmin
	d := 1 / b
	h := d
	for i := 1; i <= maxIter; i++ {
		an := -float64(i) * (float64(i) - a)
		b += 2
		d = an*d + b
		if math.Abs(d) < fpmin {
			d = fpmin
		}
		c = b + an/c
		if math.Abs(c) < fpmin {
			c = fpmin
		}
		d = 1 / d
		del := d * c
		h *= del
		if math.Abs(del-1) < eps {
			break
		}
	}
	return math.Exp(-x+a*math.Log(x)-lg) * h
}

package process

import (
	"fmt"
	"math"

	"github.com/ts-lab/stosim/internal/stochastic"
)

// AR1 implements a first-order autoregression
//
//	y[t] = c + phi*y[t-1] + eps[t]
//
// started at the stationary mean c/(1-phi) plus the first innovation.
// Weak stationarity requires |phi| < 1; with Strict unset the simulator
// still runs for |phi| >= 1 and produces the non-stationary path.
type AR1 struct {
	Const  float64
	Phi    float64
	Sigma  float64
	Strict bool
}

func NewAR1() *AR1 {
	return &AR1{Const: 1.0, Phi: 0.5, Sigma: 0.2}
}

func (p *AR1) Name() string { return "ar1" }

func (p *AR1) Simulate(n int, seed int64) (*stochastic.Result, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: length must be at least 1, got %d", stochastic.ErrInvalidParameter, n)
	}
	if p.Strict && math.Abs(p.Phi) >= 1 {
		return nil, fmt.Errorf("%w: |phi| must be < 1 for a stationary AR(1), got %g", stochastic.ErrInvalidParameter, p.Phi)
	}

	eps, err := stochastic.Normal(seed, n, 0, p.Sigma)
	if err != nil {
		return nil, err
	}

	y := make(stochastic.Series, n)
	if p.Phi == 1 {
		// No stationary mean exists; start from the intercept.
		y[0] = p.Const + eps[0]
	} else {
		y[0] = p.Const/(1-p.Phi) + eps[0]
	}
	for t := 1; t < n; t++ {
		y[t] = p.Const + p.Phi*y[t-1] + eps[t]
	}

	return &stochastic.Result{Path: y}, nil
}

func (p *AR1) Params() map[string]float64 {
	return map[string]float64{"const": p.Const, "phi": p.Phi, "sigma": p.Sigma}
}

func (p *AR1) SetParam(name string, value float64) error {
	switch name {
	case "const":
		p.Const = value
	case "phi":
		p.Phi = value
	case "sigma":
		p.Sigma = value
	default:
		return fmt.Errorf("%w: unknown parameter %q", stochastic.ErrInvalidParameter, name)
	}
	return nil
}

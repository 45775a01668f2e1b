package process

import (
	"fmt"
	"math"

	"github.com/ts-lab/stosim/internal/stochastic"
)

// BurnIn is the number of warm-up steps simulated and discarded before
// sampling a GARCH path, so the variance recursion reaches its stationary
// distribution before the returned sample begins.
const BurnIn = 500

// GARCH11 couples an AR(1) mean equation with a GARCH(1,1) conditional
// variance:
//
//	v[t] = omega + beta*v[t-1] + alpha*a[t-1]^2
//	a[t] = sqrt(v[t]) * x[t],   x ~ N(0,1)
//	y[t] = c + phi*y[t-1] + a[t]
//
// The variance recursion is started at its unconditional value
// omega/(1-alpha-beta), which requires alpha+beta < 1. With Strict set
// (the default) violating that precondition is an error; otherwise the
// recursion starts at omega and produces the divergent path.
type GARCH11 struct {
	MeanConst float64 // c   (phi0)
	MeanPhi   float64 // phi (phi1)
	Omega     float64 // alpha0
	Alpha     float64 // alpha1, weight on the squared lagged innovation
	Beta      float64 // beta1, weight on the lagged variance
	Strict    bool
}

func NewGARCH11() *GARCH11 {
	return &GARCH11{
		MeanConst: 1.0,
		MeanPhi:   0.5,
		Omega:     0.02,
		Alpha:     0.3,
		Beta:      0.6,
		Strict:    true,
	}
}

func (p *GARCH11) Name() string { return "garch11" }

func (p *GARCH11) Simulate(n int, seed int64) (*stochastic.Result, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: length must be at least 1, got %d", stochastic.ErrInvalidParameter, n)
	}
	if p.Omega <= 0 || p.Alpha < 0 || p.Beta < 0 {
		return nil, fmt.Errorf("%w: variance coefficients must satisfy omega > 0, alpha >= 0, beta >= 0",
			stochastic.ErrInvalidParameter)
	}

	persistence := p.Alpha + p.Beta
	var v0 float64
	switch {
	case persistence < 1:
		v0 = p.Omega / (1 - persistence)
	case p.Strict:
		return nil, fmt.Errorf("%w: alpha+beta = %g", stochastic.ErrNonStationaryVariance, persistence)
	default:
		// No unconditional variance exists; seed the recursion with omega.
		v0 = p.Omega
	}

	total := n + BurnIn
	x, err := stochastic.Normal(seed, total, 0, 1)
	if err != nil {
		return nil, err
	}

	v := make(stochastic.Series, total)
	a := make(stochastic.Series, total)
	y := make(stochastic.Series, total)

	v[0] = v0
	a[0] = math.Sqrt(v[0]) * x[0]
	if p.MeanPhi == 1 {
		y[0] = p.MeanConst + a[0]
	} else {
		y[0] = p.MeanConst/(1-p.MeanPhi) + a[0]
	}

	for t := 1; t < total; t++ {
		v[t] = p.Omega + p.Beta*v[t-1] + p.Alpha*a[t-1]*a[t-1]
		a[t] = math.Sqrt(v[t]) * x[t]
		y[t] = p.MeanConst + p.MeanPhi*y[t-1] + a[t]
	}

	return &stochastic.Result{
		Path:     y[BurnIn:].Clone(),
		Variance: v[BurnIn:].Clone(),
	}, nil
}

func (p *GARCH11) Params() map[string]float64 {
	return map[string]float64{
		"const": p.MeanConst,
		"phi":   p.MeanPhi,
		"omega": p.Omega,
		"alpha": p.Alpha,
		"beta":  p.Beta,
	}
}

func (p *GARCH11) SetParam(name string, value float64) error {
	switch name {
	case "const":
		p.MeanConst = value
	case "phi":
		p.MeanPhi = value
	case "omega":
		p.Omega = value
	case "alpha":
		p.Alpha = value
	case "beta":
		p.Beta = value
	default:
		return fmt.Errorf("%w: unknown parameter %q", stochastic.ErrInvalidParameter, name)
	}
	return nil
}

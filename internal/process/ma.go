package process

import (
	"fmt"

	"github.com/ts-lab/stosim/internal/stochastic"
)

// MA1 implements a first-order moving average
//
//	y[t] = c + eps[t] + theta*eps[t-1]
//
// The first observation has no lagged innovation available, so y[0] is
// c + eps[0]: the missing eps[-1] is treated as absent, not zero-padded.
type MA1 struct {
	Const float64
	Theta float64
	Sigma float64
}

func NewMA1() *MA1 {
	return &MA1{Const: 0.0, Theta: 0.5, Sigma: 1.0}
}

func (p *MA1) Name() string { return "ma1" }

func (p *MA1) Simulate(n int, seed int64) (*stochastic.Result, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: length must be at least 1, got %d", stochastic.ErrInvalidParameter, n)
	}

	eps, err := stochastic.Normal(seed, n, 0, p.Sigma)
	if err != nil {
		return nil, err
	}

	y := make(stochastic.Series, n)
	y[0] = p.Const + eps[0]
	for t := 1; t < n; t++ {
		y[t] = p.Const + eps[t] + p.Theta*eps[t-1]
	}

	return &stochastic.Result{Path: y}, nil
}

func (p *MA1) Params() map[string]float64 {
	return map[string]float64{"const": p.Const, "theta": p.Theta, "sigma": p.Sigma}
}

func (p *MA1) SetParam(name string, value float64) error {
	switch name {
	case "const":
		p.Const = value
	case "theta":
		p.Theta = value
	case "sigma":
		p.Sigma = value
	default:
		return fmt.Errorf("%w: unknown parameter %q", stochastic.ErrInvalidParameter, name)
	}
	return nil
}

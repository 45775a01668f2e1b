package process

import (
	"fmt"

	"github.com/ts-lab/stosim/internal/stochastic"
)

// RandomWalk implements the unit-root special case of AR1 (phi=1, c=0):
//
//	y[0] = eps[0]
//	y[t] = y[t-1] + eps[t]
//
// The path equals the cumulative sum of its noise draws and is always
// non-stationary.
type RandomWalk struct {
	Sigma float64
}

func NewRandomWalk() *RandomWalk {
	return &RandomWalk{Sigma: 1.0}
}

func (p *RandomWalk) Name() string { return "randomwalk" }

func (p *RandomWalk) Simulate(n int, seed int64) (*stochastic.Result, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: length must be at least 1, got %d", stochastic.ErrInvalidParameter, n)
	}

	eps, err := stochastic.Normal(seed, n, 0, p.Sigma)
	if err != nil {
		return nil, err
	}

	y := make(stochastic.Series, n)
	y[0] = eps[0]
	for t := 1; t < n; t++ {
		y[t] = y[t-1] + eps[t]
	}

	return &stochastic.Result{Path: y}, nil
}

func (p *RandomWalk) Params() map[string]float64 {
	return map[string]float64{"sigma": p.Sigma}
}

func (p *RandomWalk) SetParam(name string, value float64) error {
	switch name {
	case "sigma":
		p.Sigma = value
	default:
		return fmt.Errorf("%w: unknown parameter %q", stochastic.ErrInvalidParameter, name)
	}
	return nil
}

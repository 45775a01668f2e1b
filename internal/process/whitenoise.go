package process

import (
	"fmt"

	"github.com/ts-lab/stosim/internal/stochastic"
)

// WhiteNoise produces i.i.d. Normal(0, Sigma^2) draws. Degenerate case of
// the other simulators: no recursion.
type WhiteNoise struct {
	Sigma float64
}

func NewWhiteNoise() *WhiteNoise {
	return &WhiteNoise{Sigma: 1.0}
}

func (p *WhiteNoise) Name() string { return "whitenoise" }

func (p *WhiteNoise) Simulate(n int, seed int64) (*stochastic.Result, error) {
	eps, err := stochastic.Normal(seed, n, 0, p.Sigma)
	if err != nil {
		return nil, err
	}
	return &stochastic.Result{Path: eps}, nil
}

func (p *WhiteNoise) Params() map[string]float64 {
	return map[string]float64{"sigma": p.Sigma}
}

func (p *WhiteNoise) SetParam(name string, value float64) error {
	switch name {
	case "sigma":
		p.Sigma = value
	default:
		return fmt.Errorf("%w: unknown parameter %q", stochastic.ErrInvalidParameter, name)
	}
	return nil
}

package experiment

import (
	"context"
	"fmt"

	"github.com/ts-lab/stosim/internal/process"
	"github.com/ts-lab/stosim/internal/stochastic"
)

type Config struct {
	Process string
	N       int
	Seed    int64
	Params  map[string]float64
	// Strict toggles stationarity-precondition enforcement; nil keeps
	// each process's own default (AR1 lenient, GARCH11 strict).
	Strict *bool
}

type Result struct {
	Path     stochastic.Series
	Variance stochastic.Series
	Metrics  map[string]float64
}

type Experiment struct {
	cfg     Config
	proc    stochastic.Process
	metrics []stochastic.Metric
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(proc stochastic.Process, ms []stochastic.Metric) error {
	if e.cfg.Params != nil {
		tunable, ok := proc.(stochastic.Configurable)
		if !ok {
			return fmt.Errorf("process %s does not accept parameters", proc.Name())
		}
		for name, value := range e.cfg.Params {
			if err := tunable.SetParam(name, value); err != nil {
				return err
			}
		}
	}

	if e.cfg.Strict != nil {
		switch p := proc.(type) {
		case *process.AR1:
			p.Strict = *e.cfg.Strict
		case *process.GARCH11:
			p.Strict = *e.cfg.Strict
		}
	}

	e.proc = proc
	e.metrics = ms
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.proc == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := e.proc.Simulate(e.cfg.N, e.cfg.Seed)
	if err != nil {
		return nil, err
	}

	for _, m := range e.metrics {
		m.Reset()
	}
	for _, v := range result.Path {
		for _, m := range e.metrics {
			m.Observe(v)
		}
	}

	out := &Result{
		Path:     result.Path,
		Variance: result.Variance,
		Metrics:  make(map[string]float64),
	}
	for _, m := range e.metrics {
		out.Metrics[m.Name()] = m.Value()
	}

	return out, nil
}

// RunEnsemble simulates independent replications of the configured
// process, seeding replication i with Seed+i.
func (e *Experiment) RunEnsemble(ctx context.Context, replications int) ([]*stochastic.Result, error) {
	if e.proc == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	if replications < 1 {
		return nil, fmt.Errorf("%w: replications must be at least 1, got %d", stochastic.ErrInvalidParameter, replications)
	}

	ens := stochastic.NewEnsemble(e.proc, replications, e.cfg.Seed)
	return ens.Run(ctx, e.cfg.N)
}

package experiment

import (
	"fmt"
	"sort"

	"github.com/ts-lab/stosim/internal/metrics"
	"github.com/ts-lab/stosim/internal/process"
	"github.com/ts-lab/stosim/internal/stochastic"
)

type Registry struct {
	processes map[string]func() stochastic.Process
}

func NewRegistry() *Registry {
	r := &Registry{
		processes: make(map[string]func() stochastic.Process),
	}

	r.processes["whitenoise"] = func() stochastic.Process { return process.NewWhiteNoise() }
	r.processes["ar1"] = func() stochastic.Process { return process.NewAR1() }
	r.processes["ma1"] = func() stochastic.Process { return process.NewMA1() }
	r.processes["randomwalk"] = func() stochastic.Process { return process.NewRandomWalk() }
	r.processes["garch11"] = func() stochastic.Process { return process.NewGARCH11() }

	return r
}

func (r *Registry) GetProcess(name string) (stochastic.Process, error) {
	fn, ok := r.processes[name]
	if !ok {
		return nil, fmt.Errorf("unknown process: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListProcesses() []string {
	names := make([]string, 0, len(r.processes))
	for name := range r.processes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics(name string) []stochastic.Metric {
	ms := []stochastic.Metric{
		metrics.NewSampleMean(),
		metrics.NewSampleVariance(),
	}
	if name == "garch11" {
		ms = append(ms, metrics.NewExcessKurtosis())
	}
	return ms
}

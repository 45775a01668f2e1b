package stochastic

// Process is a recursive generator producing a sample path of length n.
// Implementations are pure given (n, seed): identical arguments reproduce
// the identical result.
type Process interface {
	Name() string
	Simulate(n int, seed int64) (*Result, error)
}

// Configurable exposes runtime-adjustable process parameters.
type Configurable interface {
	Params() map[string]float64
	SetParam(name string, value float64) error
}

// Metric accumulates a summary statistic over path observations.
type Metric interface {
	Name() string
	Observe(v float64)
	Value() float64
	Reset()
}

// Result holds a realized sample path. Variance is the conditional variance
// path for heteroskedastic processes (GARCH) and nil otherwise.
type Result struct {
	Path     Series
	Variance Series
}

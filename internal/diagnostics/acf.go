package diagnostics

import (
	"fmt"
	"math"

	"github.com/ts-lab/stosim/internal/stochastic"
)

// ACF returns the empirical autocorrelation function of the series for
// lags 0..maxLag: the lag-k sample autocovariance normalized by the sample
// variance. acf[0] is 1 by definition.
func ACF(s stochastic.Series, maxLag int) ([]float64, error) {
	n := len(s)
	if maxLag < 0 {
		return nil, fmt.Errorf("%w: maxlag must be non-negative, got %d", stochastic.ErrInvalidParameter, maxLag)
	}
	if maxLag >= n {
		return nil, fmt.Errorf("%w: maxlag %d must be smaller than series length %d", stochastic.ErrInvalidParameter, maxLag, n)
	}

	mean := s.Mean()
	variance := 0.0
	for _, v := range s {
		diff := v - mean
		variance += diff * diff
	}
	if variance == 0 {
		return nil, fmt.Errorf("%w: series is constant", stochastic.ErrInvalidParameter)
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (s[i] - mean) * (s[i-k] - mean)
		}
		acf[k] = sum / variance
	}

	return acf, nil
}

// Table pairs lags with their correlation values plus the 95% confidence
// bound +-1.96/sqrt(n) used to judge significance.
type Table struct {
	Lags      []int
	Values    []float64
	ConfBound float64
}

func ACFWithConfidence(s stochastic.Series, maxLag int) (*Table, error) {
	acf, err := ACF(s, maxLag)
	if err != nil {
		return nil, err
	}
	return newTable(acf, len(s)), nil
}

func PACFWithConfidence(s stochastic.Series, maxLag int) (*Table, error) {
	pacf, err := PACF(s, maxLag)
	if err != nil {
		return nil, err
	}
	return newTable(pacf, len(s)), nil
}

func newTable(values []float64, n int) *Table {
	lags := make([]int, len(values))
	for i := range lags {
		lags[i] = i
	}
	return &Table{
		Lags:      lags,
		Values:    values,
		ConfBound: 1.96 / math.Sqrt(float64(n)),
	}
}

// SignificantLags returns the lags (excluding lag 0) whose values exceed
// the confidence bound in absolute value.
func SignificantLags(values []float64, confBound float64) []int {
	var significant []int
	for i := 1; i < len(values); i++ {
		if math.Abs(values[i]) > confBound {
			significant = append(significant, i)
		}
	}
	return significant
}

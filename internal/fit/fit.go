// Package fit defines the boundary to an external ARIMA/GARCH estimator.
//
// Simulated paths are handed to a maximum-likelihood (or conditional
// sum-of-squares) optimizer that lives outside this module; this package
// only fixes the shape of that exchange: a flat real-valued series in, an
// order specification and method tag alongside, fitted coefficients with
// standard errors and goodness-of-fit scores back.
package fit

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ts-lab/stosim/internal/stochastic"
)

// Method tags the estimation routine requested from the external fitter.
type Method string

const (
	MaximumLikelihood Method = "ml"
	ConditionalSS     Method = "css"
)

// Order is an ARIMA(p, d, q) order specification.
type Order struct {
	P int `json:"p"` // autoregressive terms
	D int `json:"d"` // differencing order
	Q int `json:"q"` // moving-average terms
}

// Coefficient is a fitted value with its standard error.
type Coefficient struct {
	Value  float64 `json:"value"`
	StdErr float64 `json:"stderr"`
}

// Result holds the external estimator's output for one fitted model.
type Result struct {
	Order     Order         `json:"order"`
	Method    Method        `json:"method"`
	AR        []Coefficient `json:"ar,omitempty"`
	MA        []Coefficient `json:"ma,omitempty"`
	Intercept Coefficient   `json:"intercept"`
	LogLik    float64       `json:"loglik"`
	AIC       float64       `json:"aic"`
}

// Request is one estimation job handed to the external fitter.
type Request struct {
	Path   stochastic.Series `json:"path"`
	Order  Order             `json:"order"`
	Method Method            `json:"method"`
}

func NewRequest(path stochastic.Series, order Order, method Method) (*Request, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty path", stochastic.ErrInvalidParameter)
	}
	if order.P < 0 || order.D < 0 || order.Q < 0 {
		return nil, fmt.Errorf("%w: negative order (%d,%d,%d)", stochastic.ErrInvalidParameter, order.P, order.D, order.Q)
	}
	if method != MaximumLikelihood && method != ConditionalSS {
		return nil, fmt.Errorf("%w: unknown method %q", stochastic.ErrInvalidParameter, method)
	}
	return &Request{Path: path, Order: order, Method: method}, nil
}

// Write serializes the request for the external estimator.
func (r *Request) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// ReadResult parses the external estimator's reply.
func ReadResult(r io.Reader) (*Result, error) {
	var res Result
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Fitter estimates model coefficients from a realized sample path.
type Fitter interface {
	Fit(path stochastic.Series, order Order, method Method) (*Result, error)
}

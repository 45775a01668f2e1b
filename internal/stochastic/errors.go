package stochastic

import "errors"

// Domain errors for simulation and diagnostics operations.
var (
	// ErrInvalidParameter indicates a bad length, negative scale, or an
	// out-of-range lag.
	ErrInvalidParameter = errors.New("stochastic: invalid parameter")

	// ErrNonStationaryVariance indicates GARCH variance-recursion
	// coefficients that violate the stability precondition alpha+beta < 1.
	ErrNonStationaryVariance = errors.New("stochastic: variance recursion is non-stationary")
)

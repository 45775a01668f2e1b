// Package process provides univariate stochastic process simulators.
//
// Each simulator implements the [stochastic.Process] interface, producing
// a reproducible sample path from a seed:
//
//   - [WhiteNoise]: i.i.d. Gaussian draws, no recursion
//   - [AR1]: first-order autoregression with stationary-mean start
//   - [MA1]: first-order moving average
//   - [RandomWalk]: unit-root process, the cumulative sum of its noise
//   - [GARCH11]: AR(1) mean equation with GARCH(1,1) conditional variance
//
// All simulators also implement [stochastic.Configurable] for runtime
// parameter adjustment.
//
// # Stationarity
//
// Simulators run for non-stationary parameter values and simply produce the
// divergent path; set Strict to turn the stationarity precondition into an
// error instead:
//
//	ar := process.NewAR1()
//	ar.Phi, ar.Strict = 1.2, true
//	_, err := ar.Simulate(500, 1) // stochastic.ErrInvalidParameter
package process

// Package stochastic provides core primitives for simulating univariate
// stochastic processes.
//
// The package defines the fundamental types shared by all simulators:
//
//   - [Series]: realized sample path (fixed length, value semantics)
//   - [NormalSource]: seeded Gaussian innovation stream
//   - [Process]: interface for recursive process generators
//   - [Ensemble]: parallel independent replications of a process
//
// # Example
//
//	proc := process.NewAR1()
//	result, _ := proc.Simulate(500, 42)
//	acf, _ := diagnostics.ACF(result.Path, 20)
//
// # Reproducibility
//
// Every simulation call owns its own [NormalSource], seeded at call entry.
// Identical seed and parameters reproduce the identical sample path, and
// concurrent calls never share generator state.
package stochastic

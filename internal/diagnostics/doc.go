// Package diagnostics provides autocorrelation analysis for identifying
// process order from a simulated sample path.
//
//   - [ACF]: empirical autocorrelation function, lags 0..maxLag
//   - [PACF]: partial autocorrelation via the Durbin-Levinson recursion
//   - [PACFOLS]: partial autocorrelation by direct per-lag least squares
//   - [LjungBox]: portmanteau test that a series is white noise
//
// An AR(p) process shows a PACF cutoff after lag p; an MA(q) process shows
// an ACF cutoff after lag q. [ACFWithConfidence] attaches the usual
// +-1.96/sqrt(n) bounds for judging which lags are significant.
package diagnostics

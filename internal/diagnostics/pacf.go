package diagnostics

import (
	"fmt"
	"math"

	"github.com/ts-lab/stosim/internal/stochastic"
)

// PACF returns the partial autocorrelation function for lags 0..maxLag
// using the Durbin-Levinson recursion. pacf[0] is 1 by convention; pacf[k]
// is the incremental contribution of the k-th lag beyond a (k-1)-order
// autoregression.
func PACF(s stochastic.Series, maxLag int) ([]float64, error) {
	if maxLag < 1 {
		return nil, fmt.Errorf("%w: maxlag must be at least 1, got %d", stochastic.ErrInvalidParameter, maxLag)
	}

	acf, err := ACF(s, maxLag)
	if err != nil {
		return nil, err
	}

	pacf := make([]float64, maxLag+1)
	pacf[0] = 1.0

	phi := make([][]float64, maxLag+1)
	for i := range phi {
		phi[i] = make([]float64, maxLag+1)
	}

	phi[1][1] = acf[1]
	pacf[1] = acf[1]

	for k := 2; k <= maxLag; k++ {
		num := acf[k]
		den := 1.0
		for j := 1; j < k; j++ {
			num -= phi[k-1][j] * acf[k-j]
			den -= phi[k-1][j] * acf[j]
		}

		if den == 0 {
			pacf[k] = 0
			continue
		}

		phi[k][k] = num / den
		pacf[k] = phi[k][k]

		for j := 1; j < k; j++ {
			phi[k][j] = phi[k-1][j] - phi[k][k]*phi[k-1][k-j]
		}
	}

	return pacf, nil
}

// PACFOLS computes the partial autocorrelation function by its defining
// construction: for each lag k it fits an ordinary-least-squares
// autoregression of y[t] on y[t-1..t-k] (with intercept) and reports the
// coefficient of y[t-k]. Slower than [PACF] but matches the definition
// directly.
func PACFOLS(s stochastic.Series, maxLag int) ([]float64, error) {
	n := len(s)
	if maxLag < 1 {
		return nil, fmt.Errorf("%w: maxlag must be at least 1, got %d", stochastic.ErrInvalidParameter, maxLag)
	}
	if maxLag >= n {
		return nil, fmt.Errorf("%w: maxlag %d must be smaller than series length %d", stochastic.ErrInvalidParameter, maxLag, n)
	}

	pacf := make([]float64, maxLag+1)
	pacf[0] = 1.0

	for k := 1; k <= maxLag; k++ {
		coeffs, err := olsLagged(s, k)
		if err != nil {
			return nil, err
		}
		pacf[k] = coeffs[k]
	}

	return pacf, nil
}

// olsLagged regresses s[t] on an intercept and the k lagged values,
// returning [intercept, b1, ..., bk] via the normal equations.
func olsLagged(s stochastic.Series, k int) ([]float64, error) {
	n := len(s)
	rows := n - k
	dim := k + 1

	// Accumulate X'X and X'y without materializing the design matrix.
	xtx := make([][]float64, dim)
	for i := range xtx {
		xtx[i] = make([]float64, dim)
	}
	xty := make([]float64, dim)

	for t := k; t < n; t++ {
		row := make([]float64, dim)
		row[0] = 1
		for j := 1; j <= k; j++ {
			row[j] = s[t-j]
		}
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				xtx[i][j] += row[i] * row[j]
			}
			xty[i] += row[i] * s[t]
		}
	}

	if rows <= dim {
		return nil, fmt.Errorf("%w: %d observations cannot identify %d coefficients", stochastic.ErrInvalidParameter, rows, dim)
	}

	return solveLinear(xtx, xty)
}

// solveLinear solves Ax = b by Gaussian elimination with partial pivoting.
// A and b are modified in place.
func solveLinear(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, fmt.Errorf("%w: singular regression matrix", stochastic.ErrInvalidParameter)
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for r := col + 1; r < n; r++ {
			factor := a[r][col] / a[col][col]
			for c := col; c < n; c++ {
				a[r][c] -= factor * a[col][c]
			}
			b[r] -= factor * b[col]
		}
	}

	x := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		sum := b[r]
		for c := r + 1; c < n; c++ {
			sum -= a[r][c] * x[c]
		}
		x[r] = sum / a[r][r]
	}

	return x, nil
}

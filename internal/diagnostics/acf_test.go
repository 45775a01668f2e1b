package diagnostics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ts-lab/stosim/internal/diagnostics"
	"github.com/ts-lab/stosim/internal/process"
	"github.com/ts-lab/stosim/internal/stochastic"
)

// ar2Path simulates y[t] = phi1*y[t-1] + phi2*y[t-2] + eps[t].
func ar2Path(phi1, phi2 float64, n int, seed int64) stochastic.Series {
	eps, err := stochastic.Normal(seed, n, 0, 1)
	Expect(err).NotTo(HaveOccurred())

	y := make(stochastic.Series, n)
	y[0] = eps[0]
	y[1] = phi1*y[0] + eps[1]
	for t := 2; t < n; t++ {
		y[t] = phi1*y[t-1] + phi2*y[t-2] + eps[t]
	}
	return y
}

var _ = Describe("ACF", func() {
	It("is exactly 1 at lag 0", func() {
		ar := process.NewAR1()
		result, err := ar.Simulate(500, 42)
		Expect(err).NotTo(HaveOccurred())

		acf, err := diagnostics.ACF(result.Path, 20)
		Expect(err).NotTo(HaveOccurred())
		Expect(acf[0]).To(Equal(1.0))
	})

	It("stays within [-1, 1]", func() {
		wn := process.NewWhiteNoise()
		result, err := wn.Simulate(1000, 7)
		Expect(err).NotTo(HaveOccurred())

		acf, err := diagnostics.ACF(result.Path, 50)
		Expect(err).NotTo(HaveOccurred())
		for _, v := range acf {
			Expect(math.Abs(v)).To(BeNumerically("<=", 1.0))
		}
	})

	It("decays geometrically for a persistent AR(1)", func() {
		ar := process.NewAR1()
		ar.Phi = 0.8
		result, err := ar.Simulate(5000, 11)
		Expect(err).NotTo(HaveOccurred())

		acf, err := diagnostics.ACF(result.Path, 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(acf[1]).To(BeNumerically(">", 0.6))
		Expect(acf[1]).To(BeNumerically(">", acf[2]))
		Expect(acf[2]).To(BeNumerically(">", acf[3]))
	})

	It("leaves white noise mostly inside the confidence bounds", func() {
		violations := 0
		const seeds, lags = 10, 20
		for seed := int64(0); seed < seeds; seed++ {
			wn := process.NewWhiteNoise()
			result, err := wn.Simulate(1000, seed)
			Expect(err).NotTo(HaveOccurred())

			table, err := diagnostics.ACFWithConfidence(result.Path, lags)
			Expect(err).NotTo(HaveOccurred())
			violations += len(diagnostics.SignificantLags(table.Values, table.ConfBound))
		}
		// 5% of seeds*lags tests should flag, on average.
		Expect(violations).To(BeNumerically("<", seeds*lags/5))
	})

	It("rejects an out-of-range maxlag", func() {
		s := stochastic.Series{1, 2, 3, 4}
		_, err := diagnostics.ACF(s, 4)
		Expect(err).To(MatchError(stochastic.ErrInvalidParameter))

		_, err = diagnostics.ACF(s, -1)
		Expect(err).To(MatchError(stochastic.ErrInvalidParameter))
	})

	It("rejects a constant series", func() {
		s := stochastic.Series{3, 3, 3, 3, 3}
		_, err := diagnostics.ACF(s, 2)
		Expect(err).To(MatchError(stochastic.ErrInvalidParameter))
	})
})

var _ = Describe("PACF", func() {
	It("recovers the coefficient of an AR(1) at lag 1", func() {
		ar := process.NewAR1()
		ar.Phi = 0.7
		ar.Sigma = 1.0
		result, err := ar.Simulate(5000, 3)
		Expect(err).NotTo(HaveOccurred())

		pacf, err := diagnostics.PACF(result.Path, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(pacf[0]).To(Equal(1.0))
		Expect(pacf[1]).To(BeNumerically("~", 0.7, 0.1))
	})

	It("cuts off after lag p for an AR(p) process", func() {
		const seeds = 20
		insideAfterCutoff := 0
		total := 0
		for seed := int64(0); seed < seeds; seed++ {
			y := ar2Path(0.5, 0.3, 2000, seed)

			table, err := diagnostics.PACFWithConfidence(y, 8)
			Expect(err).NotTo(HaveOccurred())

			// Lag 2 must be significant on every path.
			Expect(math.Abs(table.Values[2])).To(BeNumerically(">", table.ConfBound))

			for lag := 3; lag <= 8; lag++ {
				total++
				if math.Abs(table.Values[lag]) <= table.ConfBound {
					insideAfterCutoff++
				}
			}
		}
		// 95% bounds: the overwhelming majority of post-cutoff lags sit inside.
		Expect(insideAfterCutoff).To(BeNumerically(">=", total*8/10))
	})

	It("agrees with the direct least-squares construction", func() {
		ar := process.NewAR1()
		ar.Phi = 0.6
		ar.Sigma = 1.0
		result, err := ar.Simulate(3000, 17)
		Expect(err).NotTo(HaveOccurred())

		dl, err := diagnostics.PACF(result.Path, 6)
		Expect(err).NotTo(HaveOccurred())
		ols, err := diagnostics.PACFOLS(result.Path, 6)
		Expect(err).NotTo(HaveOccurred())

		for lag := 1; lag <= 6; lag++ {
			Expect(dl[lag]).To(BeNumerically("~", ols[lag], 0.05))
		}
	})

	It("rejects maxlag below 1", func() {
		s := stochastic.Series{1, 2, 1, 2, 1}
		_, err := diagnostics.PACF(s, 0)
		Expect(err).To(MatchError(stochastic.ErrInvalidParameter))

		_, err = diagnostics.PACFOLS(s, 0)
		Expect(err).To(MatchError(stochastic.ErrInvalidParameter))
	})
})

var _ = Describe("LjungBox", func() {
	It("rarely rejects white noise", func() {
		rejections := 0
		const seeds = 10
		for seed := int64(0); seed < seeds; seed++ {
			wn := process.NewWhiteNoise()
			result, err := wn.Simulate(1000, seed)
			Expect(err).NotTo(HaveOccurred())

			lb, err := diagnostics.LjungBox(result.Path, 10, 0)
			Expect(err).NotTo(HaveOccurred())
			if lb.PValue < 0.05 {
				rejections++
			}
		}
		Expect(rejections).To(BeNumerically("<=", 3))
	})

	It("rejects a persistent AR(1)", func() {
		ar := process.NewAR1()
		ar.Phi = 0.8
		result, err := ar.Simulate(500, 5)
		Expect(err).NotTo(HaveOccurred())

		lb, err := diagnostics.LjungBox(result.Path, 10, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(lb.PValue).To(BeNumerically("<", 0.01))
	})

	It("rejects out-of-range lags", func() {
		s := stochastic.Series{1, 2, 3}
		_, err := diagnostics.LjungBox(s, 5, 0)
		Expect(err).To(MatchError(stochastic.ErrInvalidParameter))
	})
})

package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/ts-lab/stosim/internal/diagnostics"
)

const barWidth = 40

// Correlogram renders an ACF/PACF table as horizontal lag bars around
// a zero axis, with lags outside the confidence band highlighted.
func Correlogram(title string, table *diagnostics.Table) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	half := barWidth / 2
	for i, lag := range table.Lags {
		v := table.Values[i]
		if v > 1 {
			v = 1
		}
		if v < -1 {
			v = -1
		}

		n := int(math.Round(math.Abs(v) * float64(half)))
		var bar string
		if v >= 0 {
			bar = strings.Repeat(" ", half) + "│" + strings.Repeat("█", n) + strings.Repeat(" ", half-n)
		} else {
			bar = strings.Repeat(" ", half-n) + strings.Repeat("█", n) + "│" + strings.Repeat(" ", half)
		}

		style := insideBoundStyle
		if lag > 0 && math.Abs(table.Values[i]) > table.ConfBound {
			style = significantStyle
		}

		b.WriteString(fmt.Sprintf("%4d  %s  %s\n", lag, style.Render(bar), style.Render(fmt.Sprintf("%+.4f", table.Values[i]))))
	}

	b.WriteString(boundStyle.Render(fmt.Sprintf("95%% confidence bound: ±%.4f", table.ConfBound)))
	b.WriteString("\n")

	return b.String()
}

// LjungBoxReport formats a portmanteau test result.
func LjungBoxReport(res *diagnostics.LjungBoxResult) string {
	verdict := "no evidence against white noise"
	if res.PValue < 0.05 {
		verdict = "reject white noise at the 5% level"
	}
	return fmt.Sprintf("Ljung-Box Q(%d) = %.4f  df=%d  p=%.4f  (%s)",
		res.Lags, res.Statistic, res.DOF, res.PValue, verdict)
}

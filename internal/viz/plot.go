package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/ts-lab/stosim/internal/stochastic"
)

const (
	plotWidth  = 80
	plotHeight = 15
)

// PlotPath renders a simulated path as an ASCII line chart.
func PlotPath(path stochastic.Series, caption string) string {
	if len(path) == 0 {
		return ""
	}
	return asciigraph.Plot(path,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotVariance renders a conditional-variance path below its caption.
func PlotVariance(variance stochastic.Series) string {
	if len(variance) == 0 {
		return ""
	}
	return asciigraph.Plot(variance,
		asciigraph.Height(10),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("conditional variance"),
	)
}

// ComparePlot overlays paths from several runs on one chart.
func ComparePlot(paths []stochastic.Series, labels []string) string {
	if len(paths) == 0 {
		return ""
	}
	data := make([][]float64, len(paths))
	for i, p := range paths {
		data[i] = p
	}
	caption := ""
	for i, l := range labels {
		if i > 0 {
			caption += " vs "
		}
		caption += l
	}
	return asciigraph.PlotMany(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red, asciigraph.Green, asciigraph.Yellow),
	)
}

// Summary formats a one-line stats summary for a path.
func Summary(path stochastic.Series) string {
	return fmt.Sprintf("n=%d  mean=%.4f  var=%.4f  min=%.4f  max=%.4f",
		len(path), path.Mean(), path.Variance(), path.Min(), path.Max())
}

package eda

import (
	"fmt"
	"image/color"

	"github.com/sartorproj/goeda/figure"
	"github.com/sartorproj/goeda/stats"
	"github.com/sartorproj/goeda/timeseries"
)

var black = color.Black

func seriesFigure(name, title string, size Size) (*figure.Figure, *figure.Panel) {
	fig := figure.New(name, title, size.Width, size.Height)
	panel := fig.AddPanel(figure.Panel{TimeAxis: true, Grid: true, Legend: true})
	return fig, panel
}

func originalFigure(s *timeseries.Series, cfg *Config) *figure.Figure {
	fig, panel := seriesFigure("original", "Original Time Series", cfg.SeriesSize)
	panel.Add(figure.SeriesTrace(s.Name, s, figure.Blue, figure.Line))
	return fig
}

func resampledFigure(s *timeseries.Series, freq string, cfg *Config) *figure.Figure {
	fig, panel := seriesFigure("resampled", fmt.Sprintf("Resampled (%s) Time Series", freq), cfg.SeriesSize)
	panel.Add(figure.SeriesTrace(s.Name, s, figure.Blue, figure.Line))
	return fig
}

func rollingFigure(resampled, mean, std *timeseries.Series, cfg *Config) *figure.Figure {
	fig, panel := seriesFigure("rolling", "Rolling Mean & Standard Deviation", cfg.SeriesSize)
	panel.Add(figure.SeriesTrace("Resampled", resampled, figure.Blue, figure.Line))
	panel.Add(figure.SeriesTrace(fmt.Sprintf("Rolling Mean (%d)", cfg.Window), mean, figure.Orange, figure.Line))
	panel.Add(figure.SeriesTrace(fmt.Sprintf("Rolling Std (%d)", cfg.Window), std, figure.Green, figure.Line))
	return fig
}

// decompositionFigure stacks observed, trend, seasonal and residual panels.
// Residuals are drawn as points around a zero line.
func decompositionFigure(d *stats.DecompositionResult, cfg *Config) *figure.Figure {
	size := cfg.DecompositionSize
	fig := figure.New("decomposition", "Decomposition", size.Width, size.Height)

	components := []struct {
		label  string
		series *timeseries.Series
	}{
		{"Observed", d.Original},
		{"Trend", d.Trend},
		{"Seasonal", d.Seasonal},
		{"Residual", d.Residual},
	}

	for i, c := range components {
		panel := fig.AddPanel(figure.Panel{YLabel: c.label, TimeAxis: true, Grid: true})
		if i == 0 {
			panel.Title = d.Original.Name
		}
		if c.label != "Residual" {
			panel.Add(figure.SeriesTrace(c.label, c.series, figure.Blue, figure.Line))
			continue
		}

		trace := figure.SeriesTrace(c.label, c.series, figure.Blue, figure.Points)
		if n := len(trace.X); n > 0 {
			center := 0.0
			if d.Type == "multiplicative" {
				center = 1
			}
			panel.Add(figure.HLine("", center, trace.X[0], trace.X[n-1], black, figure.Line))
		}
		panel.Add(trace)
	}
	return fig
}

// autocorrelationFigure draws the autocorrelation line with solid 95% and
// dashed 99% bands.
func autocorrelationFigure(acf *stats.AutocorrelationResult, cfg *Config) *figure.Figure {
	size := cfg.AutocorrelationSize
	fig := figure.New("autocorrelation", "Autocorrelation Plot", size.Width, size.Height)
	panel := fig.AddPanel(figure.Panel{XLabel: "Lag", YLabel: "Autocorrelation", Grid: true})

	lo, hi := 1.0, float64(len(acf.Lags))
	panel.Add(figure.HLine("", acf.Conf99, lo, hi, figure.Gray, figure.Dashed))
	panel.Add(figure.HLine("", acf.Conf95, lo, hi, figure.Gray, figure.Line))
	panel.Add(figure.HLine("", 0, lo, hi, black, figure.Line))
	panel.Add(figure.HLine("", -acf.Conf95, lo, hi, figure.Gray, figure.Line))
	panel.Add(figure.HLine("", -acf.Conf99, lo, hi, figure.Gray, figure.Dashed))

	x := make([]float64, len(acf.Lags))
	for i, lag := range acf.Lags {
		x[i] = float64(lag)
	}
	panel.Add(figure.Trace{X: x, Y: acf.Values, Color: figure.Blue, Style: figure.Line})
	return fig
}

// lagFigure scatters y(t) against y(t + lag).
func lagFigure(s *timeseries.Series, cfg *Config) *figure.Figure {
	size := cfg.LagPlotSize
	lag := cfg.Lag
	fig := figure.New("lag", fmt.Sprintf("Lag Plot (lag=%d)", lag), size.Width, size.Height)
	panel := fig.AddPanel(figure.Panel{
		XLabel: "y(t)",
		YLabel: fmt.Sprintf("y(t + %d)", lag),
		Grid:   true,
	})

	lagged := s.Lag(lag)
	current := s.Slice(lag, s.Len())
	if lagged.Len() == 0 {
		current = lagged
	}
	panel.Add(figure.Trace{X: lagged.Values, Y: current.Values, Color: figure.Blue, Style: figure.Points})
	return fig
}

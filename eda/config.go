package eda

import "github.com/sartorproj/goeda/stats"

// Size is a figure size in inches.
type Size struct {
	Width  float64
	Height float64
}

// Config holds the tunables of an exploration run.
type Config struct {
	Frequency    string            // Resample frequency when none is given (default: "D")
	Window       int               // Rolling window length (default: 30)
	Lag          int               // Lag of the lag plot (default: 1)
	Model        string            // Decomposition model: "additive" or "multiplicative"
	ADF          *stats.ADFOptions // Stationarity test options
	LjungBoxLags int               // Lags of the residual Ljung-Box test (default: 10)
	FigureDir    string            // Where Explore writes PNGs; empty means a new temporary directory

	SeriesSize          Size // Original, resampled and rolling figures
	DecompositionSize   Size
	AutocorrelationSize Size
	LagPlotSize         Size
}

// DefaultConfig returns the default exploration configuration.
func DefaultConfig() *Config {
	return &Config{
		Frequency:           "D",
		Window:              30,
		Lag:                 1,
		Model:               "additive",
		ADF:                 stats.DefaultADFOptions(),
		LjungBoxLags:        10,
		SeriesSize:          Size{Width: 14, Height: 6},
		DecompositionSize:   Size{Width: 14, Height: 8},
		AutocorrelationSize: Size{Width: 10, Height: 4},
		LagPlotSize:         Size{Width: 6, Height: 6},
	}
}

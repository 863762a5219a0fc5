// Package eda runs a fixed exploratory analysis over one time series column.
//
// The sequence prepares a sorted time index, prints dataset info, missing
// values and summary statistics, then renders the original series, the
// resampled series and its 30-period rolling mean and standard deviation.
// It decomposes the resampled series, prints an augmented Dickey-Fuller
// test and finishes with autocorrelation and lag plots:
//
//	logger, _ := zap.NewDevelopment()
//	renderer, _ := figure.NewPNGRenderer("figures", logger)
//	explorer := eda.New(logger, os.Stdout, renderer, eda.DefaultConfig())
//	err := explorer.Explore(table, "date", "sales", "W")
//
// The package-level Explore writes figures to a temporary directory, prints
// its path, and waits for Enter on stdin after each one. Interactive does the
// same with caller-supplied input, output and Config.FigureDir.
package eda

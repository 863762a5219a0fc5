// Package stats provides the statistical routines behind exploratory
// time series analysis.
//
// # Decomposition
//
// Split a series into trend, seasonal and residual components:
//
//	// Period inferred from the sampling frequency (daily data: 7)
//	decomp, err := stats.DecomposeSeries(series, timeseries.MustParseFrequency("D"), "additive")
//
//	// Explicit period
//	decomp, err := stats.Decompose(series, 12, "multiplicative")
//
// Decomposition needs at least two full periods and a gap-free index.
//
// # Stationarity
//
// Augmented Dickey-Fuller test, H0: the series has a unit root:
//
//	adf, err := stats.ADF(series, stats.DefaultADFOptions())
//	fmt.Printf("ADF: stat=%.4f, p=%.4f\n", adf.Statistic, adf.PValue)
//	for _, level := range stats.CriticalLevels {
//	    fmt.Println(level, adf.CriticalVals[level])
//	}
//
// Constant series fail with ErrConstantSeries and short ones with
// ErrInsufficientData.
//
// # Autocorrelation
//
//	acf := stats.ACF(series, 20)
//	all, err := stats.Autocorrelation(series) // lags 1..n with 95%/99% bands
//
// # Residual Diagnostics
//
//	lb := stats.LjungBox(residuals, 10, 0)
//	dw := stats.DurbinWatson(residuals.Values)
package stats

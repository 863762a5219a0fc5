// Package goeda provides exploratory analysis of a single time series.
//
// GoEDA takes a table with a datetime column and a numeric target column,
// builds a sorted time index and walks through a fixed sequence of
// diagnostics: dataset info, missing values, summary statistics, resampling,
// rolling mean and standard deviation, classical decomposition, the
// augmented Dickey-Fuller test, and autocorrelation and lag plots.
//
// # Quick Start
//
//	table, _ := timeseries.LoadCSV("sales.csv", nil)
//	renderer, _ := figure.NewPNGRenderer("figures", logger)
//	explorer := eda.New(logger, os.Stdout, renderer, nil)
//	err := explorer.Explore(table, "date", "sales", "D")
//
// # Packages
//
//   - timeseries: tables, time-indexed series, resampling and rolling windows
//   - stats: decomposition, stationarity and autocorrelation
//   - figure: chart model and renderers
//   - eda: the exploration sequence
//   - datasource: Parquet, Arrow and DuckDB loaders
//
// # References
//
//   - MacKinnon, J.G. (1994). Approximate asymptotic distribution functions for unit-root and cointegration tests
//   - MacKinnon, J.G. (2010). Critical values for cointegration tests
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
package goeda

// Package timeseries provides tables, time-indexed series and the
// transformations used by exploratory analysis.
//
// # Tables and Preparation
//
// A Table holds loosely typed columns, typically loaded from CSV:
//
//	table, err := timeseries.LoadCSV("sales.csv", nil)
//	series, err := table.Prepare("date", "sales")
//
// Prepare parses the datetime column of a copy of the table, converts the
// target column to float64 (missing values become NaN) and sorts by time.
//
// # Resampling
//
// Aggregate into fixed-width or calendar buckets by mean:
//
//	daily := series.Resample(timeseries.MustParseFrequency("D"))
//	monthly := series.Resample(timeseries.MustParseFrequency("M"))
//
// Buckets without observations are NaN; nothing is interpolated.
//
// # Rolling Statistics
//
// Trailing-window statistics:
//
//	mean := daily.Rolling(30).Mean()
//	std := daily.Rolling(30).Std()
//
// The first window-1 positions are NaN.
//
// # Diagnostics
//
// Summaries for reporting:
//
//	info := series.Info(column.Dtype())
//	missing := series.MissingCount()
//	summary := series.Describe() // count, mean, std, min, quartiles, max
//
// # CSV Options
//
// Customize CSV loading:
//
//	opts := &timeseries.CSVOptions{
//	    HasHeader: true,
//	    Delimiter: ';',
//	    IDColumn:  "store",
//	    IDFilter:  "north",
//	}
//	table, err := timeseries.LoadCSVFromReader(reader, opts)
package timeseries

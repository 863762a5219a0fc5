package eda

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/sartorproj/goeda/stats"
	"github.com/sartorproj/goeda/timeseries"
)

func (e *Explorer) header(title string) {
	fmt.Fprintf(e.out, "\n--- %s ---\n", title)
}

func (e *Explorer) printInfo(s *timeseries.Series, dtype string) {
	e.header("Dataset Info")
	info := s.Info(dtype)

	if info.Entries == 0 {
		fmt.Fprintln(e.out, "DatetimeIndex: 0 entries")
	} else {
		fmt.Fprintf(e.out, "DatetimeIndex: %d entries, %s to %s\n",
			info.Entries, formatTime(info.First), formatTime(info.Last))
	}
	fmt.Fprintln(e.out, "Data columns (total 1 columns):")

	tw := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, " #\tColumn\tNon-Null Count\tDtype\t")
	fmt.Fprintln(tw, "---\t------\t--------------\t-----\t")
	fmt.Fprintf(tw, " 0\t%s\t%d non-null\t%s\t\n", info.Column, info.NonNull, info.Dtype)
	_ = tw.Flush()

	fmt.Fprintf(e.out, "dtypes: %s(1)\n", info.Dtype)
}

func (e *Explorer) printMissing(s *timeseries.Series) {
	e.header("Missing Values")
	tw := tabwriter.NewWriter(e.out, 0, 0, 4, ' ', 0)
	fmt.Fprintf(tw, "%s\t%d\n", s.Name, s.MissingCount())
	_ = tw.Flush()
	fmt.Fprintln(e.out, "dtype: int64")
}

func (e *Explorer) printSummary(s *timeseries.Series) {
	e.header("Summary Statistics")
	sum := s.Describe()

	rows := []struct {
		label string
		value float64
	}{
		{"count", float64(sum.Count)},
		{"mean", sum.Mean},
		{"std", sum.Std},
		{"min", sum.Min},
		{"25%", sum.Q25},
		{"50%", sum.Q50},
		{"75%", sum.Q75},
		{"max", sum.Max},
	}

	tw := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\t%s\t\n", s.Name)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t\n", r.label, formatStat(r.value))
	}
	_ = tw.Flush()
}

func (e *Explorer) printDecomposition(d *stats.DecompositionResult) {
	fmt.Fprintf(e.out, "Model: %s\n", d.Type)
	fmt.Fprintf(e.out, "Period: %d\n", d.Period)
	fmt.Fprintf(e.out, "Observations: %d\n", d.Original.Len())

	residual := d.Residual.DropNA()
	if lb := stats.LjungBox(residual, e.config.LjungBoxLags, 0); lb != nil {
		fmt.Fprintf(e.out, "Residual Ljung-Box (lags=%d): Q=%v, p-value=%v\n", lb.Lags, lb.Statistic, lb.PValue)
	}
	if dw := stats.DurbinWatson(residual.Values); dw != nil {
		fmt.Fprintf(e.out, "Residual Durbin-Watson: %v\n", dw.Statistic)
	}
}

func (e *Explorer) printADF(r *stats.ADFResult) {
	fmt.Fprintf(e.out, "ADF Statistic: %v\n", r.Statistic)
	fmt.Fprintf(e.out, "p-value: %v\n", r.PValue)
	for _, level := range stats.CriticalLevels {
		fmt.Fprintf(e.out, "Critical Value (%s): %v\n", level, r.CriticalVals[level])
	}
}

// formatStat prints six decimals, or NaN for undefined statistics.
func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func formatTime(t time.Time) string {
	if h, m, sec := t.Clock(); h == 0 && m == 0 && sec == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}

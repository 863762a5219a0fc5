package eda

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sartorproj/goeda/figure"
	"github.com/sartorproj/goeda/stats"
	"github.com/sartorproj/goeda/timeseries"
)

type recorder struct {
	figures []*figure.Figure
	err     error
}

func (r *recorder) Render(fig *figure.Figure) error {
	if r.err != nil {
		return r.err
	}
	r.figures = append(r.figures, fig)
	return nil
}

func (r *recorder) titles() []string {
	out := make([]string, len(r.figures))
	for i, f := range r.figures {
		out[i] = f.Title
	}
	return out
}

// dailyTable builds one non-leap year of daily rows, with dates as strings
// in reverse order so preparation has to sort them.
func dailyTable(t *testing.T, value func(i int) any) *timeseries.Table {
	t.Helper()
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	dates := make([]any, 365)
	values := make([]any, 365)
	for i := range dates {
		j := 364 - i
		dates[i] = start.AddDate(0, 0, j).Format("2006-01-02")
		values[i] = value(j)
	}
	table, err := timeseries.NewTable(
		&timeseries.Column{Name: "date", Values: dates},
		&timeseries.Column{Name: "sales", Values: values},
	)
	require.NoError(t, err)
	return table
}

func seasonalTable(t *testing.T) *timeseries.Table {
	rng := rand.New(rand.NewPCG(3, 5))
	noise := make([]float64, 365)
	for i := range noise {
		noise[i] = rng.NormFloat64()
	}
	return dailyTable(t, func(i int) any {
		return 100 + 0.05*float64(i) + 10*math.Sin(2*math.Pi*float64(i%7)/7) + 2*noise[i]
	})
}

func newExplorer(t *testing.T, r figure.Renderer) (*Explorer, *bytes.Buffer) {
	var out bytes.Buffer
	return New(zaptest.NewLogger(t), &out, r, nil), &out
}

func TestExploreDailyYear(t *testing.T) {
	r := &recorder{}
	e, out := newExplorer(t, r)

	require.NoError(t, e.Explore(seasonalTable(t), "date", "sales", ""))

	assert.Equal(t, []string{
		"Original Time Series",
		"Resampled (D) Time Series",
		"Rolling Mean & Standard Deviation",
		"Decomposition",
		"Autocorrelation Plot",
		"Lag Plot (lag=1)",
	}, r.titles())

	text := out.String()
	headers := []string{
		"--- Dataset Info ---",
		"--- Missing Values ---",
		"--- Summary Statistics ---",
		"--- Decomposition ---",
		"--- Augmented Dickey-Fuller Test ---",
	}
	last := -1
	for _, h := range headers {
		idx := strings.Index(text, h)
		require.Greater(t, idx, last, "header %q out of order", h)
		last = idx
	}

	assert.Contains(t, text, "DatetimeIndex: 365 entries, 2023-01-01 to 2023-12-31")
	assert.Regexp(t, `sales\s+365 non-null\s+float64`, text)
	assert.Regexp(t, `sales\s+0\ndtype: int64`, text)
	assert.Regexp(t, `count\s+365\.000000`, text)
	assert.Contains(t, text, "Period: 7")
	assert.Contains(t, text, "ADF Statistic: ")
	assert.Contains(t, text, "p-value: ")
	for _, level := range []string{"1%", "5%", "10%"} {
		assert.Contains(t, text, "Critical Value ("+level+"): ")
	}
}

func TestExploreFigures(t *testing.T) {
	r := &recorder{}
	e, _ := newExplorer(t, r)
	require.NoError(t, e.Explore(seasonalTable(t), "date", "sales", "D"))
	require.Len(t, r.figures, 6)

	for _, fig := range r.figures {
		for _, p := range fig.Panels {
			assert.True(t, p.Grid, "figure %q has a panel without grid", fig.Title)
		}
	}

	sizes := map[string][2]float64{}
	for _, fig := range r.figures {
		sizes[fig.Name] = [2]float64{fig.Width, fig.Height}
	}
	assert.Equal(t, [2]float64{14, 6}, sizes["original"])
	assert.Equal(t, [2]float64{14, 8}, sizes["decomposition"])
	assert.Equal(t, [2]float64{10, 4}, sizes["autocorrelation"])
	assert.Equal(t, [2]float64{6, 6}, sizes["lag"])

	// Resampling daily data at "D" keeps every row.
	resampled := r.figures[1].Panels[0].Traces[0]
	assert.Len(t, resampled.Y, 365)

	rolling := r.figures[2].Panels[0]
	require.Len(t, rolling.Traces, 3)
	assert.Equal(t, "Resampled", rolling.Traces[0].Label)
	assert.Equal(t, "Rolling Mean (30)", rolling.Traces[1].Label)
	assert.Equal(t, figure.Orange, rolling.Traces[1].Color)
	assert.Equal(t, "Rolling Std (30)", rolling.Traces[2].Label)
	assert.Equal(t, figure.Green, rolling.Traces[2].Color)
	for i := 0; i < 29; i++ {
		assert.True(t, math.IsNaN(rolling.Traces[1].Y[i]))
	}
	assert.False(t, math.IsNaN(rolling.Traces[1].Y[29]))

	decomp := r.figures[3]
	require.Len(t, decomp.Panels, 4)
	for i, label := range []string{"Observed", "Trend", "Seasonal", "Residual"} {
		assert.Equal(t, label, decomp.Panels[i].YLabel)
	}

	acfPanel := r.figures[4].Panels[0]
	acfLine := acfPanel.Traces[len(acfPanel.Traces)-1]
	require.Len(t, acfLine.X, 365)
	assert.Equal(t, 365.0, acfLine.X[364])
	assert.Equal(t, 0.0, acfLine.Y[364])

	lag := r.figures[5].Panels[0].Traces[0]
	assert.Len(t, lag.X, 364)
	assert.Equal(t, lag.X[1], lag.Y[0])
}

func TestExploreAllMissing(t *testing.T) {
	r := &recorder{}
	e, out := newExplorer(t, r)

	err := e.Explore(dailyTable(t, func(int) any { return nil }), "date", "sales", "")
	require.ErrorIs(t, err, stats.ErrInsufficientData)
	assert.Contains(t, err.Error(), "decomposition")

	text := out.String()
	assert.Regexp(t, `count\s+0\.000000`, text)
	assert.Regexp(t, `sales\s+365\ndtype: int64`, text)
	assert.Contains(t, text, "--- Decomposition ---")
	assert.NotContains(t, text, "--- Augmented Dickey-Fuller Test ---")
	assert.Len(t, r.figures, 3)
}

func TestExploreConstant(t *testing.T) {
	r := &recorder{}
	e, out := newExplorer(t, r)

	err := e.Explore(dailyTable(t, func(int) any { return 5.0 }), "date", "sales", "")
	require.ErrorIs(t, err, stats.ErrConstantSeries)
	assert.Contains(t, out.String(), "--- Augmented Dickey-Fuller Test ---")
	assert.NotContains(t, out.String(), "ADF Statistic")
	assert.Len(t, r.figures, 4)
}

func TestExploreHourlyToDaily(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewPCG(11, 13))
	n := 30 * 24
	dates := make([]any, n)
	values := make([]any, n)
	for i := range dates {
		dates[i] = start.Add(time.Duration(i) * time.Hour)
		values[i] = 20 + 3*math.Sin(2*math.Pi*float64(i/24%7)/7) + rng.NormFloat64()
	}
	values[5] = "NaN"
	table, err := timeseries.NewTable(
		&timeseries.Column{Name: "ts", Values: dates},
		&timeseries.Column{Name: "temp", Values: values},
	)
	require.NoError(t, err)

	r := &recorder{}
	e, out := newExplorer(t, r)
	require.NoError(t, e.Explore(table, "ts", "temp", "D"))

	assert.Len(t, r.figures[1].Panels[0].Traces[0].Y, 30)
	assert.Contains(t, out.String(), "DatetimeIndex: 720 entries, 2024-03-01 to 2024-03-30 23:00:00")
	assert.Regexp(t, `temp\s+1\ndtype: int64`, out.String())
	assert.Regexp(t, `temp\s+719 non-null\s+float64`, out.String())
}

func TestExploreErrors(t *testing.T) {
	table := seasonalTable(t)

	tests := []struct {
		name     string
		dtCol    string
		target   string
		freq     string
		expected error
	}{
		{"unknown datetime column", "when", "sales", "", timeseries.ErrColumnNotFound},
		{"unknown target column", "date", "revenue", "", timeseries.ErrColumnNotFound},
		{"non-numeric target", "date", "date", "", timeseries.ErrNonNumeric},
		{"bad frequency", "date", "sales", "fortnight", timeseries.ErrInvalidFrequency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			e, _ := newExplorer(t, r)
			err := e.Explore(table, tt.dtCol, tt.target, tt.freq)
			require.ErrorIs(t, err, tt.expected)
			assert.Empty(t, r.figures)
		})
	}
}

func TestExploreRendererError(t *testing.T) {
	boom := errors.New("window closed")
	core, logs := observer.New(zap.InfoLevel)

	var out bytes.Buffer
	e := New(zap.New(core), &out, &recorder{err: boom}, nil)

	err := e.Explore(seasonalTable(t), "date", "sales", "")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "Original Time Series")
	assert.NotContains(t, out.String(), "--- Decomposition ---")

	failed := logs.FilterMessage("exploration failed").All()
	require.Len(t, failed, 1)
	assert.NotEmpty(t, failed[0].ContextMap()["run_id"])
}

func TestExploreDoesNotMutateTable(t *testing.T) {
	table := seasonalTable(t)
	col, err := table.Column("date")
	require.NoError(t, err)
	first := col.Values[0]

	e, _ := newExplorer(t, &recorder{})
	require.NoError(t, e.Explore(table, "date", "sales", ""))
	assert.Equal(t, first, col.Values[0])
}

func TestExploreWritesPNGs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping figure encoding in short mode")
	}
	dir := filepath.Join(t.TempDir(), "figures")
	png, err := figure.NewPNGRenderer(dir, zaptest.NewLogger(t))
	require.NoError(t, err)

	e, _ := newExplorer(t, png)
	require.NoError(t, e.Explore(seasonalTable(t), "date", "sales", "D"))
	assert.Len(t, png.Files(), 6)
}

func TestNilRenderer(t *testing.T) {
	e, out := newExplorer(t, nil)
	require.NoError(t, e.Explore(seasonalTable(t), "date", "sales", ""))
	assert.Contains(t, out.String(), "ADF Statistic")
}

func TestInteractive(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping figure encoding in short mode")
	}
	cfg := DefaultConfig()
	cfg.FigureDir = filepath.Join(t.TempDir(), "figures")

	var out bytes.Buffer
	e := Interactive(strings.NewReader(strings.Repeat("\n", 6)), &out, cfg)
	require.NoError(t, e.Explore(seasonalTable(t), "date", "sales", "D"))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Figures are written to "+cfg.FigureDir+"\n"))

	names := []string{"original", "resampled", "rolling", "decomposition", "autocorrelation", "lag"}
	for i, name := range names {
		path := filepath.Join(cfg.FigureDir, fmt.Sprintf("%02d_%s.png", i+1, name))
		assert.FileExists(t, path)
		assert.Contains(t, text, "saved to "+path+", press Enter to continue...")
	}
	assert.Equal(t, 6, strings.Count(text, "press Enter to continue..."))
}

func TestInteractiveTempDir(t *testing.T) {
	var out bytes.Buffer
	e := Interactive(strings.NewReader(""), &out, nil)

	err := e.Explore(seasonalTable(t), "date", "revenue", "")
	require.ErrorIs(t, err, timeseries.ErrColumnNotFound)

	line, _, _ := strings.Cut(out.String(), "\n")
	dir, ok := strings.CutPrefix(line, "Figures are written to ")
	require.True(t, ok, "missing figure directory in %q", line)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	assert.DirExists(t, dir)
	assert.Contains(t, filepath.Base(dir), "goeda-")
}

func TestLagFigure(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	values := []float64{1, 2, 3, 4, 5, 6}
	timestamps := make([]time.Time, len(values))
	for i := range timestamps {
		timestamps[i] = start.AddDate(0, 0, i)
	}
	s := &timeseries.Series{Timestamps: timestamps, Values: values, Name: "y"}

	tests := []struct {
		lag  int
		x, y []float64
	}{
		{1, []float64{1, 2, 3, 4, 5}, []float64{2, 3, 4, 5, 6}},
		{4, []float64{1, 2}, []float64{5, 6}},
		{0, []float64{}, []float64{}},
		{6, []float64{}, []float64{}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("lag %d", tt.lag), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Lag = tt.lag
			fig := lagFigure(s, cfg)

			assert.Equal(t, fmt.Sprintf("Lag Plot (lag=%d)", tt.lag), fig.Title)
			trace := fig.Panels[0].Traces[0]
			assert.Equal(t, tt.x, trace.X)
			assert.Equal(t, tt.y, trace.Y)
		})
	}
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, values)
}

func TestExploreHighLevel(t *testing.T) {
	rng := rand.New(rand.NewPCG(29, 31))
	noise := make([]float64, 365)
	for i := range noise {
		noise[i] = rng.NormFloat64()
	}
	table := dailyTable(t, func(i int) any {
		return 101325 + 20*math.Sin(2*math.Pi*float64(i)/7) + 10*noise[i]
	})

	r := &recorder{}
	e, out := newExplorer(t, r)
	require.NoError(t, e.Explore(table, "date", "sales", ""))
	assert.Len(t, r.figures, 6)
	assert.Contains(t, out.String(), "ADF Statistic: ")
}

package timeseries

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// RollingWindow computes trailing-window statistics over a series.
type RollingWindow struct {
	window int
	series *Series
}

// Rolling creates a trailing window of the given size over the series.
func (s *Series) Rolling(window int) RollingWindow {
	return RollingWindow{window: window, series: s}
}

// Mean returns the rolling mean. Positions before the window fills, and
// windows containing a missing value, are NaN.
func (r RollingWindow) Mean() *Series {
	return r.apply("rolling_mean", func(block []float64) float64 {
		return stat.Mean(block, nil)
	})
}

// Std returns the rolling sample standard deviation (ddof=1).
func (r RollingWindow) Std() *Series {
	return r.apply("rolling_std", func(block []float64) float64 {
		if len(block) < 2 {
			return math.NaN()
		}
		return stat.StdDev(block, nil)
	})
}

func (r RollingWindow) apply(suffix string, fn func([]float64) float64) *Series {
	s := r.series
	n := s.Len()
	values := make([]float64, n)
	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	// missing counts the NaNs inside the current window.
	missing := 0
	for i := 0; i < n; i++ {
		if math.IsNaN(s.Values[i]) {
			missing++
		}
		if i >= r.window && math.IsNaN(s.Values[i-r.window]) {
			missing--
		}
		if r.window <= 0 || i < r.window-1 || missing > 0 {
			values[i] = math.NaN()
			continue
		}
		values[i] = fn(s.Values[i-r.window+1 : i+1])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name + "_" + suffix,
	}
}

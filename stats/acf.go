package stats

import (
	"fmt"
	"math"

	"github.com/sartorproj/goeda/timeseries"
)

// ACF calculates the Autocorrelation Function for the given series.
// Returns ACF values for lags 0 to maxLag, or nil for a constant series.
func ACF(series *timeseries.Series, maxLag int) []float64 {
	n := series.Len()
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := series.Mean()
	variance := 0.0
	for _, v := range series.Values {
		diff := v - mean
		variance += diff * diff
	}

	if variance == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (series.Values[i] - mean) * (series.Values[i-k] - mean)
		}
		acf[k] = sum / variance
	}

	return acf
}

// Two-sided normal quantiles for the autocorrelation confidence bands.
const (
	z95 = 1.959963984540054
	z99 = 2.5758293035489004
)

// AutocorrelationResult holds the autocorrelation of a series at every lag
// from 1 to n-1, with the bands a white noise series stays within at the 95%
// and 99% levels.
type AutocorrelationResult struct {
	Lags   []int
	Values []float64
	Conf95 float64
	Conf99 float64
}

// Autocorrelation computes the autocorrelation of the series at lags 1..n.
// Lag n has no overlapping pairs, so its value is 0.
func Autocorrelation(series *timeseries.Series) (*AutocorrelationResult, error) {
	n := series.Len()
	if n < 2 {
		return nil, fmt.Errorf("%w: autocorrelation needs 2 observations, got %d", ErrInsufficientData, n)
	}
	if series.MissingCount() > 0 {
		return nil, fmt.Errorf("%w: autocorrelation", ErrMissingValues)
	}

	acf := ACF(series, n-1)
	if acf == nil {
		return nil, ErrConstantSeries
	}

	lags := make([]int, n)
	for i := range lags {
		lags[i] = i + 1
	}
	values := append(acf[1:n:n], 0)

	sqrtN := math.Sqrt(float64(n))
	return &AutocorrelationResult{
		Lags:   lags,
		Values: values,
		Conf95: z95 / sqrtN,
		Conf99: z99 / sqrtN,
	}, nil
}

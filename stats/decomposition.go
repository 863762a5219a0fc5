package stats

import (
	"fmt"
	"math"

	"github.com/sartorproj/goeda/timeseries"
)

// DecompositionResult represents the decomposition of a time series.
type DecompositionResult struct {
	Original *timeseries.Series
	Trend    *timeseries.Series
	Seasonal *timeseries.Series
	Residual *timeseries.Series
	Period   int
	Type     string // "additive" or "multiplicative"
}

// InferPeriod returns the seasonal period implied by a bucket frequency:
// one day of hours, one week of days, one year of weeks, months or quarters.
// Second and minute frequencies have no period and return 0. Multipliers are
// ignored.
func InferPeriod(freq timeseries.Frequency) int {
	switch freq.Unit {
	case timeseries.Second, timeseries.Minute:
		return 0
	case timeseries.Hour:
		return 24
	case timeseries.Day:
		return 7
	case timeseries.Week:
		return 52
	case timeseries.Month:
		return 12
	case timeseries.Quarter:
		return 4
	default:
		return 1
	}
}

// DecomposeSeries decomposes a series sampled at freq. The index must be
// regular at freq and the frequency must imply a period.
func DecomposeSeries(series *timeseries.Series, freq timeseries.Frequency, decompositionType string) (*DecompositionResult, error) {
	if series.Len() == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrInsufficientData)
	}
	if !series.IsRegular(freq) {
		return nil, fmt.Errorf("%w: cannot infer a period at frequency %s", ErrIrregularIndex, freq)
	}
	period := InferPeriod(freq)
	if period == 0 {
		return nil, fmt.Errorf("%w: no seasonal period for frequency %s", ErrInvalidPeriod, freq)
	}
	return Decompose(series, period, decompositionType)
}

// Decompose performs classical seasonal decomposition of a time series.
// The trend is a centered moving average of length period (2xperiod for even
// periods), so the first and last period/2 trend and residual values are NaN.
// Type can be "additive" (Y = T + S + R) or "multiplicative" (Y = T * S * R).
func Decompose(series *timeseries.Series, period int, decompositionType string) (*DecompositionResult, error) {
	n := series.Len()
	if period < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPeriod, period)
	}
	if n < 2*period || n < 2 {
		return nil, fmt.Errorf("%w: decomposition with period %d needs %d observations, got %d",
			ErrInsufficientData, period, max(2*period, 2), n)
	}
	if series.MissingCount() > 0 {
		return nil, fmt.Errorf("%w: decomposition", ErrMissingValues)
	}

	if decompositionType != "additive" && decompositionType != "multiplicative" {
		decompositionType = "additive"
	}
	if decompositionType == "multiplicative" && series.Min() <= 0 {
		return nil, fmt.Errorf("multiplicative decomposition needs positive values, min is %v", series.Min())
	}

	// Step 1: Calculate trend using centered moving average
	trend := calculateTrend(series, period)

	// Step 2: Detrend the series
	detrended := make([]float64, n)
	for i := 0; i < n; i++ {
		switch {
		case math.IsNaN(trend[i]):
			detrended[i] = math.NaN()
		case decompositionType == "multiplicative":
			detrended[i] = series.Values[i] / trend[i]
		default:
			detrended[i] = series.Values[i] - trend[i]
		}
	}

	// Step 3: Average the detrended values at each position of the period
	seasonalPattern := make([]float64, period)
	counts := make([]int, period)

	for i := 0; i < n; i++ {
		if !math.IsNaN(detrended[i]) {
			seasonIdx := i % period
			seasonalPattern[seasonIdx] += detrended[i]
			counts[seasonIdx]++
		}
	}

	for i := 0; i < period; i++ {
		if counts[i] > 0 {
			seasonalPattern[i] /= float64(counts[i])
		}
	}

	// Center the pattern on 0 (additive) or 1 (multiplicative)
	sum := 0.0
	for _, v := range seasonalPattern {
		sum += v
	}
	mean := sum / float64(period)
	for i := range seasonalPattern {
		if decompositionType == "multiplicative" {
			seasonalPattern[i] /= mean
		} else {
			seasonalPattern[i] -= mean
		}
	}

	seasonal := make([]float64, n)
	for i := 0; i < n; i++ {
		seasonal[i] = seasonalPattern[i%period]
	}

	// Step 4: Calculate residual
	residual := make([]float64, n)
	for i := 0; i < n; i++ {
		switch {
		case math.IsNaN(trend[i]):
			residual[i] = math.NaN()
		case decompositionType == "multiplicative":
			residual[i] = series.Values[i] / (trend[i] * seasonal[i])
		default:
			residual[i] = series.Values[i] - trend[i] - seasonal[i]
		}
	}

	return &DecompositionResult{
		Original: series.Copy(),
		Trend:    component(series, trend, "trend"),
		Seasonal: component(series, seasonal, "seasonal"),
		Residual: component(series, residual, "residual"),
		Period:   period,
		Type:     decompositionType,
	}, nil
}

func component(series *timeseries.Series, values []float64, name string) *timeseries.Series {
	return &timeseries.Series{
		Values:     values,
		Timestamps: series.Timestamps,
		Name:       name,
	}
}

// calculateTrend calculates trend using centered moving average.
func calculateTrend(series *timeseries.Series, period int) []float64 {
	n := series.Len()
	trend := make([]float64, n)

	for i := range trend {
		trend[i] = math.NaN()
	}

	halfPeriod := period / 2

	if period%2 == 0 {
		// Even period: 2xperiod MA, the outer values get half weight
		for i := halfPeriod; i < n-halfPeriod; i++ {
			sum := 0.0
			sum += series.Values[i-halfPeriod] * 0.5
			sum += series.Values[i+halfPeriod] * 0.5
			for j := i - halfPeriod + 1; j < i+halfPeriod; j++ {
				sum += series.Values[j]
			}
			trend[i] = sum / float64(period)
		}
	} else {
		for i := halfPeriod; i < n-halfPeriod; i++ {
			sum := 0.0
			for j := i - halfPeriod; j <= i+halfPeriod; j++ {
				sum += series.Values[j]
			}
			trend[i] = sum / float64(period)
		}
	}

	return trend
}

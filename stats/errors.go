package stats

import "errors"

var (
	// ErrInsufficientData is returned when a series is too short for a test.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrConstantSeries is returned when a series has zero variance.
	ErrConstantSeries = errors.New("series is constant")
	// ErrMissingValues is returned when a routine receives NaN values.
	ErrMissingValues = errors.New("series contains missing values")
	// ErrIrregularIndex is returned when no period can be derived from the index.
	ErrIrregularIndex = errors.New("irregular index")
	// ErrInvalidPeriod is returned for a seasonal period below one.
	ErrInvalidPeriod = errors.New("invalid period")
	// ErrDegenerateRegression is returned when a regression is singular or
	// fits perfectly, leaving its test statistic undefined.
	ErrDegenerateRegression = errors.New("degenerate regression")
)

package datasource

import "errors"

var (
	// ErrNoColumns is returned when a source yields no columns to load.
	ErrNoColumns = errors.New("source has no columns")
	// ErrUnsupportedType is returned for column types that cannot be loaded.
	ErrUnsupportedType = errors.New("unsupported column type")
)

package datasource

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/sartorproj/goeda/timeseries"
)

// FromArrowRecord copies an Arrow record into a table. Numeric columns become
// float64 or int64, string columns strings, timestamp and date columns
// time.Time. Null slots become nil. The record is not released.
func FromArrowRecord(record arrow.Record) (*timeseries.Table, error) {
	if record == nil {
		return nil, fmt.Errorf("%w: record is nil", ErrNoColumns)
	}
	if record.NumCols() == 0 {
		return nil, fmt.Errorf("%w: arrow record", ErrNoColumns)
	}

	schema := record.Schema()
	columns := make([]*timeseries.Column, record.NumCols())
	for i := range columns {
		field := schema.Field(i)
		values, err := arrowValues(record.Column(i))
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", field.Name, err)
		}
		columns[i] = &timeseries.Column{Name: field.Name, Values: values}
	}

	return timeseries.NewTable(columns...)
}

func arrowValues(col arrow.Array) ([]any, error) {
	n := col.Len()
	values := make([]any, n)

	var at func(i int) any
	switch arr := col.(type) {
	case *array.Float64:
		at = func(i int) any { return arr.Value(i) }
	case *array.Float32:
		at = func(i int) any { return float64(arr.Value(i)) }
	case *array.Int64:
		at = func(i int) any { return arr.Value(i) }
	case *array.Int32:
		at = func(i int) any { return int64(arr.Value(i)) }
	case *array.Boolean:
		at = func(i int) any { return arr.Value(i) }
	case *array.String:
		at = func(i int) any { return arr.Value(i) }
	case *array.Timestamp:
		unit := arr.DataType().(*arrow.TimestampType).Unit
		at = func(i int) any { return arr.Value(i).ToTime(unit) }
	case *array.Date32:
		at = func(i int) any { return arr.Value(i).ToTime() }
	case *array.Date64:
		at = func(i int) any { return arr.Value(i).ToTime() }
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, col.DataType())
	}

	for i := 0; i < n; i++ {
		if col.IsNull(i) {
			continue
		}
		values[i] = at(i)
	}
	return values, nil
}

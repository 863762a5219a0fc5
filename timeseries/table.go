package timeseries

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrColumnNotFound is returned when a named column is not in the table.
	ErrColumnNotFound = errors.New("column not found")
	// ErrUnparseableTime is returned when a datetime value cannot be parsed.
	ErrUnparseableTime = errors.New("unparseable datetime value")
	// ErrNonNumeric is returned when a target value is not numeric.
	ErrNonNumeric = errors.New("non-numeric value")
)

// dateLayouts are tried in order when parsing datetime strings.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"02-Jan-2006",
	"2006-01",
	"2006",
}

// Column is a named, loosely typed column. Nil values, NaN, and the tokens
// "", "NA", "NaN", "null" and "NaT" are missing.
type Column struct {
	Name   string
	Values []any
}

// Len returns the number of values in the column.
func (c *Column) Len() int {
	return len(c.Values)
}

// Table is an ordered set of uniquely named, equal-length columns.
type Table struct {
	columns []*Column
	index   map[string]int
}

// NewTable creates a table from columns.
func NewTable(columns ...*Column) (*Table, error) {
	t := &Table{index: make(map[string]int, len(columns))}
	for _, c := range columns {
		if _, dup := t.index[c.Name]; dup {
			return nil, fmt.Errorf("duplicate column %q", c.Name)
		}
		if len(t.columns) > 0 && c.Len() != t.columns[0].Len() {
			return nil, fmt.Errorf("column %q has %d values, expected %d", c.Name, c.Len(), t.columns[0].Len())
		}
		t.index[c.Name] = len(t.columns)
		t.columns = append(t.columns, c)
	}
	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Len()
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column.
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return t.columns[i], nil
}

// Copy returns a copy of the table. Column value slices are copied.
func (t *Table) Copy() *Table {
	columns := make([]*Column, len(t.columns))
	for i, c := range t.columns {
		values := make([]any, len(c.Values))
		copy(values, c.Values)
		columns[i] = &Column{Name: c.Name, Values: values}
	}
	cp, _ := NewTable(columns...)
	return cp
}

// Prepare builds the time-indexed target series: it parses the datetime
// column of a copy of the table, converts the target column to float64 and
// sorts ascending by time. Duplicate timestamps are kept in input order.
// The table itself is not modified.
func (t *Table) Prepare(datetimeCol, targetCol string) (*Series, error) {
	work := t.Copy()

	dt, err := work.Column(datetimeCol)
	if err != nil {
		return nil, err
	}
	target, err := work.Column(targetCol)
	if err != nil {
		return nil, err
	}

	timestamps := make([]time.Time, dt.Len())
	for i, v := range dt.Values {
		ts, err := ParseTime(v)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w", datetimeCol, i, err)
		}
		timestamps[i] = ts
	}

	values := make([]float64, target.Len())
	for i, v := range target.Values {
		f, err := ParseFloat(v)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w", targetCol, i, err)
		}
		values[i] = f
	}

	series := &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       targetCol,
	}
	series.SortByTime()
	return series, nil
}

// ParseTime converts a datetime-like value to a time.Time. Integers are
// Unix nanoseconds; strings are tried against common layouts.
func ParseTime(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case *time.Time:
		if x != nil {
			return *x, nil
		}
	case int64:
		return time.Unix(0, x).UTC(), nil
	case int:
		return time.Unix(0, int64(x)).UTC(), nil
	case int32:
		return time.Unix(0, int64(x)).UTC(), nil
	case []byte:
		return ParseTime(string(x))
	case string:
		s := strings.TrimSpace(strings.Trim(x, "\""))
		if isMissingToken(s) {
			break
		}
		for _, layout := range dateLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts, nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("%w: %v", ErrUnparseableTime, v)
}

// ParseFloat converts a numeric value to float64. Missing values become NaN.
func ParseFloat(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return math.NaN(), nil
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case *float64:
		if x == nil {
			return math.NaN(), nil
		}
		return *x, nil
	case []byte:
		return ParseFloat(string(x))
	case string:
		s := strings.TrimSpace(strings.Trim(x, "\""))
		if isMissingToken(s) {
			return math.NaN(), nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrNonNumeric, v)
}

func isMissing(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	case string:
		return isMissingToken(strings.TrimSpace(x))
	}
	return false
}

func isMissingToken(s string) bool {
	switch s {
	case "", "NA", "NaN", "nan", "null", "NULL", "NaT", "None":
		return true
	}
	return false
}

package datasource

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
	"golang.org/x/exp/mmap"

	"github.com/sartorproj/goeda/timeseries"
)

// ReadParquet memory-maps a Parquet file and loads every leaf column into a
// table. Nested column names are joined with dots.
func ReadParquet(path string) (*timeseries.Table, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open parquet file %q: %w", path, err)
	}
	defer func() { _ = r.Close() }()

	return ReadParquetFromReader(r, int64(r.Len()))
}

// ReadParquetFromReader loads Parquet data from r. Timestamp and date
// columns become time.Time values; nulls become nil.
func ReadParquetFromReader(r io.ReaderAt, size int64) (*timeseries.Table, error) {
	pf, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	schema := pf.Schema()
	paths := schema.Columns()
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: parquet schema has no columns", ErrNoColumns)
	}

	convs := make([]valueConverter, len(paths))
	columns := make([]*timeseries.Column, len(paths))
	for i, path := range paths {
		leaf, ok := schema.Lookup(path...)
		if !ok {
			return nil, fmt.Errorf("column %q not found in parquet schema", strings.Join(path, "."))
		}
		convs[i] = converterFor(leaf.Node.Type())
		columns[i] = &timeseries.Column{
			Name:   strings.Join(path, "."),
			Values: make([]any, 0, pf.NumRows()),
		}
	}

	buf := make([]parquet.Row, 1000)
	for _, rg := range pf.RowGroups() {
		rows := rg.Rows()
		for {
			n, err := rows.ReadRows(buf)
			for _, row := range buf[:n] {
				seen := make([]bool, len(columns))
				for _, val := range row {
					idx := val.Column()
					if idx < 0 || idx >= len(columns) || seen[idx] {
						continue
					}
					seen[idx] = true
					columns[idx].Values = append(columns[idx].Values, convs[idx](val))
				}
				for idx, ok := range seen {
					if !ok {
						columns[idx].Values = append(columns[idx].Values, nil)
					}
				}
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				_ = rows.Close()
				return nil, fmt.Errorf("failed to read rows: %w", err)
			}
			if n == 0 {
				break
			}
		}
		_ = rows.Close()
	}

	return timeseries.NewTable(columns...)
}

type valueConverter func(parquet.Value) any

func converterFor(t parquet.Type) valueConverter {
	if lt := t.LogicalType(); lt != nil {
		switch {
		case lt.Timestamp != nil:
			unit := time.Nanosecond
			switch {
			case lt.Timestamp.Unit.Millis != nil:
				unit = time.Millisecond
			case lt.Timestamp.Unit.Micros != nil:
				unit = time.Microsecond
			}
			return func(v parquet.Value) any {
				if v.IsNull() {
					return nil
				}
				return time.Unix(0, v.Int64()*int64(unit)).UTC()
			}
		case lt.Date != nil:
			return func(v parquet.Value) any {
				if v.IsNull() {
					return nil
				}
				return time.Unix(int64(v.Int32())*86400, 0).UTC()
			}
		}
	}
	return plainValue
}

func plainValue(v parquet.Value) any {
	if v.IsNull() {
		return nil
	}
	switch v.Kind() {
	case parquet.Boolean:
		return v.Boolean()
	case parquet.Int32:
		return int64(v.Int32())
	case parquet.Int64:
		return v.Int64()
	case parquet.Float:
		return float64(v.Float())
	case parquet.Double:
		return v.Double()
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	default:
		return v.String()
	}
}

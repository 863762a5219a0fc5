package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	IDColumn  string // Column name for series ID (optional, for filtering)
	IDFilter  string // Value to filter by ID column
	HasHeader bool   // Whether CSV has header row (default: true)
	Delimiter rune   // Field delimiter (default: ',')
	SkipRows  int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		HasHeader: true,
		Delimiter: ',',
	}
}

// LoadCSV loads a table from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a table from an io.Reader. Every field is kept as
// a string; missing tokens (empty, NA, NaN, null) become nil. Without a
// header, columns are named by their position.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	var headers []string
	var pending []string
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		for _, h := range header {
			headers = append(headers, strings.TrimSpace(strings.Trim(h, "\"")))
		}
	} else {
		first, err := reader.Read()
		if err != nil {
			return nil, err
		}
		for i := range first {
			headers = append(headers, strconv.Itoa(i))
		}
		pending = first
	}

	idIdx := -1
	for i, h := range headers {
		if opts.IDColumn != "" && h == opts.IDColumn {
			idIdx = i
		}
	}
	if opts.IDFilter != "" && idIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, opts.IDColumn)
	}

	columns := make([]*Column, len(headers))
	for i, h := range headers {
		columns[i] = &Column{Name: h}
	}

	appendRecord := func(record []string) {
		if opts.IDFilter != "" {
			id := strings.TrimSpace(strings.Trim(record[idIdx], "\""))
			if id != opts.IDFilter {
				return
			}
		}
		for i, c := range columns {
			field := strings.TrimSpace(strings.Trim(record[i], "\""))
			if isMissingToken(field) {
				c.Values = append(c.Values, nil)
				continue
			}
			c.Values = append(c.Values, field)
		}
	}

	if pending != nil {
		appendRecord(pending)
	}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		appendRecord(record)
	}

	if len(columns) == 0 || columns[0].Len() == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	return NewTable(columns...)
}

// LoadCSVFiltered loads the rows of a CSV file whose ID column equals idValue.
func LoadCSVFiltered(filename string, idColumn, idValue string) (*Table, error) {
	opts := DefaultCSVOptions()
	opts.IDColumn = idColumn
	opts.IDFilter = idValue
	return LoadCSV(filename, opts)
}

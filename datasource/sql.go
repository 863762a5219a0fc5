package datasource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sartorproj/goeda/timeseries"
)

// Queryer is implemented by *sql.DB, *sql.Conn and *sql.Tx.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// QueryTable runs query and materializes the result set into a table with
// one column per selected expression. Byte slices become strings and SQL
// NULL becomes nil.
func QueryTable(ctx context.Context, db Queryer, query string, args ...any) (*timeseries.Table, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error running query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("error reading columns: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: query result", ErrNoColumns)
	}

	columns := make([]*timeseries.Column, len(names))
	for i, name := range names {
		columns[i] = &timeseries.Column{Name: name}
	}

	dest := make([]any, len(names))
	ptrs := make([]any, len(names))
	for i := range dest {
		ptrs[i] = &dest[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		for i, v := range dest {
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			columns[i].Values = append(columns[i].Values, v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error scanning rows: %w", err)
	}

	return timeseries.NewTable(columns...)
}

package datasource

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/sartorproj/goeda/timeseries"
)

// DuckDB loads tables from a DuckDB database. An empty data source name
// opens an in-memory database.
type DuckDB struct {
	dataSourceName string
	db             *sql.DB
}

// NewDuckDB creates an unconnected DuckDB source.
func NewDuckDB(dataSourceName string) *DuckDB {
	return &DuckDB{dataSourceName: dataSourceName}
}

// Connect opens the database and verifies it with a ping.
func (d *DuckDB) Connect() error {
	db, err := sql.Open("duckdb", d.dataSourceName)
	if err != nil {
		return fmt.Errorf("unable to open duckdb %q: %w", d.dataSourceName, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("unable to connect to duckdb %q: %w", d.dataSourceName, err)
	}
	d.db = db
	return nil
}

// Close releases the database handle, if any.
func (d *DuckDB) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}
}

// DB returns the underlying handle, nil before Connect.
func (d *DuckDB) DB() *sql.DB {
	return d.db
}

// LoadTable runs query and returns its rows as a table.
func (d *DuckDB) LoadTable(ctx context.Context, query string, args ...any) (*timeseries.Table, error) {
	if d.db == nil {
		return nil, fmt.Errorf("duckdb %q is not connected", d.dataSourceName)
	}
	return QueryTable(ctx, d.db, query, args...)
}

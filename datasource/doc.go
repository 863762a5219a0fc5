// Package datasource loads timeseries tables from Parquet files, Arrow
// records and SQL databases.
//
//	table, err := datasource.ReadParquet("sales.parquet")
//
//	db := datasource.NewDuckDB("sales.duckdb")
//	if err := db.Connect(); err != nil { ... }
//	defer db.Close()
//	table, err := db.LoadTable(ctx, "SELECT ts, amount FROM sales WHERE region = ?", "north")
package datasource

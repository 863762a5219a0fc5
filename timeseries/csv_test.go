package timeseries

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCSVFromReader(t *testing.T) {
	csvData := `ds,y
2020-01-01,100
2020-01-02,101
2020-01-03,102
2020-01-04,103
2020-01-05,104`

	table, err := LoadCSVFromReader(strings.NewReader(csvData), DefaultCSVOptions())
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if table.Len() != 5 {
		t.Errorf("Expected 5 rows, got %d", table.Len())
	}

	names := table.Names()
	if len(names) != 2 || names[0] != "ds" || names[1] != "y" {
		t.Errorf("Unexpected columns: %v", names)
	}

	series, err := table.Prepare("ds", "y")
	if err != nil {
		t.Fatalf("Failed to prepare series: %v", err)
	}

	expected := []float64{100, 101, 102, 103, 104}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}
}

func TestLoadCSVWithFilter(t *testing.T) {
	csvData := `unique_id,ds,y
A,2020-01-01,100
B,2020-01-01,200
A,2020-01-02,101
B,2020-01-02,201
A,2020-01-03,102`

	opts := DefaultCSVOptions()
	opts.IDColumn = "unique_id"
	opts.IDFilter = "A"

	table, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if table.Len() != 3 {
		t.Errorf("Expected 3 rows for 'A', got %d", table.Len())
	}
}

func TestLoadCSVFiltered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stores.csv")
	csvData := "store,date,sales\nnorth,2020-01-01,10\nsouth,2020-01-01,20\nnorth,2020-01-02,11\n"
	if err := os.WriteFile(path, []byte(csvData), 0o600); err != nil {
		t.Fatal(err)
	}

	table, err := LoadCSVFiltered(path, "store", "north")
	if err != nil {
		t.Fatalf("LoadCSVFiltered failed: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("Expected 2 rows for 'north', got %d", table.Len())
	}

	series, err := table.Prepare("date", "sales")
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if series.Values[0] != 10 || series.Values[1] != 11 {
		t.Errorf("Expected north sales [10 11], got %v", series.Values)
	}

	if _, err := LoadCSVFiltered(filepath.Join(t.TempDir(), "missing.csv"), "store", "north"); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestLoadCSVFilterUnknownColumn(t *testing.T) {
	opts := DefaultCSVOptions()
	opts.IDColumn = "store"
	opts.IDFilter = "A"

	_, err := LoadCSVFromReader(strings.NewReader("ds,y\n2020-01-01,1"), opts)
	if !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("Expected ErrColumnNotFound, got %v", err)
	}
}

func TestLoadCSVWithNAValues(t *testing.T) {
	csvData := `ds,y
2020-01-01,100
2020-01-02,NA
2020-01-03,102
2020-01-04,NaN
2020-01-05,`

	table, err := LoadCSVFromReader(strings.NewReader(csvData), DefaultCSVOptions())
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	// Missing values are kept as rows
	if table.Len() != 5 {
		t.Errorf("Expected 5 rows, got %d", table.Len())
	}

	series, err := table.Prepare("ds", "y")
	if err != nil {
		t.Fatalf("Failed to prepare series: %v", err)
	}

	if series.MissingCount() != 3 {
		t.Errorf("Expected 3 missing values, got %d", series.MissingCount())
	}
}

func TestLoadCSVQuotedFields(t *testing.T) {
	csvData := `"unique_id","ds","y"
"Australia","2020-01-01","1000000"
"Australia","2020-01-02","1000100"
"Australia","2020-01-03","1000200"`

	table, err := LoadCSVFromReader(strings.NewReader(csvData), DefaultCSVOptions())
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if table.Len() != 3 {
		t.Errorf("Expected 3 rows, got %d", table.Len())
	}

	if _, err := table.Column("unique_id"); err != nil {
		t.Errorf("Quoted header not unquoted: %v", err)
	}
}

func TestLoadCSVNoHeader(t *testing.T) {
	csvData := `2020-01-01;1.5
2020-01-02;2.5`

	opts := DefaultCSVOptions()
	opts.HasHeader = false
	opts.Delimiter = ';'

	table, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if table.Len() != 2 {
		t.Errorf("Expected 2 rows, got %d", table.Len())
	}

	series, err := table.Prepare("0", "1")
	if err != nil {
		t.Fatalf("Failed to prepare series: %v", err)
	}
	if series.Values[1] != 2.5 {
		t.Errorf("Expected 2.5, got %f", series.Values[1])
	}
}

func TestLoadCSVEmpty(t *testing.T) {
	_, err := LoadCSVFromReader(strings.NewReader("ds,y\n"), DefaultCSVOptions())
	if err == nil {
		t.Error("Expected error for CSV without rows")
	}
}

func TestDefaultCSVOptions(t *testing.T) {
	opts := DefaultCSVOptions()

	if !opts.HasHeader {
		t.Error("Expected HasHeader to be true by default")
	}

	if opts.Delimiter != ',' {
		t.Errorf("Expected default delimiter ',', got '%c'", opts.Delimiter)
	}
}

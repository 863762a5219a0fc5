// Package main runs the exploratory analysis on one year of synthetic daily
// sales and writes the figures to ./figures.
package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sartorproj/goeda/eda"
	"github.com/sartorproj/goeda/figure"
	"github.com/sartorproj/goeda/timeseries"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("GoEDA Demonstration - Exploratory Time Series Analysis")
	fmt.Println(strings.Repeat("=", 80))

	table, err := syntheticSales(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 365)
	if err != nil {
		logger.Fatal("building dataset", zap.Error(err))
	}

	renderer, err := figure.NewPNGRenderer("figures", logger)
	if err != nil {
		logger.Fatal("creating renderer", zap.Error(err))
	}

	explorer := eda.New(logger, os.Stdout, renderer, eda.DefaultConfig())
	if err := explorer.Explore(table, "date", "sales", "D"); err != nil {
		logger.Fatal("exploration failed", zap.Error(err))
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("Wrote %d figures to %s\n", len(renderer.Files()), renderer.Dir)
	fmt.Println(strings.Repeat("=", 80))
}

// syntheticSales builds daily rows with a linear trend, weekly seasonality
// and deterministic noise. A few days get a second, empty reading. Dates are
// strings, as they would come out of a CSV file.
func syntheticSales(start time.Time, days int) (*timeseries.Table, error) {
	dates := make([]any, days)
	sales := make([]any, days)
	for i := 0; i < days; i++ {
		dates[i] = start.AddDate(0, 0, i).Format("2006-01-02")

		trend := 200 + 0.3*float64(i)
		weekly := 25 * math.Sin(2*math.Pi*float64(i%7)/7)
		noise := 8 * math.Sin(float64(i)*12.9898) * math.Cos(float64(i)*78.233)
		sales[i] = trend + weekly + noise
	}
	for _, i := range []int{40, 41, 180} {
		dates = append(dates, dates[i])
		sales = append(sales, nil)
	}

	return timeseries.NewTable(
		&timeseries.Column{Name: "date", Values: dates},
		&timeseries.Column{Name: "sales", Values: sales},
	)
}

package timeseries

import (
	"errors"
	"math"
	"testing"
	"time"
)

func dailySeries(start time.Time, values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	for i := range values {
		timestamps[i] = start.AddDate(0, 0, i)
	}
	return &Series{Timestamps: timestamps, Values: values, Name: "y"}
}

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		in   string
		want Frequency
	}{
		{"D", Frequency{N: 1, Unit: Day}},
		{"2D", Frequency{N: 2, Unit: Day}},
		{"h", Frequency{N: 1, Unit: Hour}},
		{"H", Frequency{N: 1, Unit: Hour}},
		{"15min", Frequency{N: 15, Unit: Minute}},
		{"T", Frequency{N: 1, Unit: Minute}},
		{"S", Frequency{N: 1, Unit: Second}},
		{"W", Frequency{N: 1, Unit: Week}},
		{"M", Frequency{N: 1, Unit: Month}},
		{"ME", Frequency{N: 1, Unit: Month}},
		{"Q", Frequency{N: 1, Unit: Quarter}},
		{"A", Frequency{N: 1, Unit: Year}},
		{"Y", Frequency{N: 1, Unit: Year}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFrequency(tt.in)
			if err != nil {
				t.Fatalf("ParseFrequency(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFrequency(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "X", "0D", "D2", "fortnight"} {
		if _, err := ParseFrequency(bad); !errors.Is(err, ErrInvalidFrequency) {
			t.Errorf("ParseFrequency(%q): expected ErrInvalidFrequency, got %v", bad, err)
		}
	}
}

func TestFrequencyString(t *testing.T) {
	if s := MustParseFrequency("D").String(); s != "D" {
		t.Errorf("Expected 'D', got %q", s)
	}
	if s := MustParseFrequency("15T").String(); s != "15min" {
		t.Errorf("Expected '15min', got %q", s)
	}
}

func TestResampleDailyIsNoOp(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	values := make([]float64, 365)
	for i := range values {
		values[i] = float64(i)
	}
	s := dailySeries(start, values)

	r := s.Resample(MustParseFrequency("D"))

	if r.Len() != 365 {
		t.Fatalf("Expected 365 buckets, got %d", r.Len())
	}
	for i := range values {
		if r.Values[i] != values[i] || !r.Timestamps[i].Equal(s.Timestamps[i]) {
			t.Fatalf("Bucket %d differs: %v %f", i, r.Timestamps[i], r.Values[i])
		}
	}
}

func TestResampleMean(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	s, _ := NewWithTimestamps(
		[]time.Time{
			start.Add(1 * time.Hour),
			start.Add(5 * time.Hour),
			start.Add(23 * time.Hour),
			start.Add(50 * time.Hour),
		},
		[]float64{1, 2, math.NaN(), 10},
	)

	r := s.Resample(MustParseFrequency("D"))

	if r.Len() != 3 {
		t.Fatalf("Expected 3 buckets, got %d", r.Len())
	}
	if r.Values[0] != 1.5 {
		t.Errorf("Expected mean 1.5 for first day, got %f", r.Values[0])
	}
	if !math.IsNaN(r.Values[1]) {
		t.Errorf("Expected empty second day to be NaN, got %f", r.Values[1])
	}
	if r.Values[2] != 10 {
		t.Errorf("Expected 10 for third day, got %f", r.Values[2])
	}
	if !r.Timestamps[1].Equal(start.AddDate(0, 0, 1)) {
		t.Errorf("Expected bucket label %v, got %v", start.AddDate(0, 0, 1), r.Timestamps[1])
	}
}

func TestResampleFinerThanData(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	s := dailySeries(start, []float64{1, 2, 3})

	r := s.Resample(MustParseFrequency("h"))

	if r.Len() != 49 {
		t.Fatalf("Expected 49 hourly buckets, got %d", r.Len())
	}
	if r.Count() != 3 {
		t.Errorf("Expected 3 non-missing buckets, got %d", r.Count())
	}
	if !math.IsNaN(r.Values[1]) {
		t.Errorf("Expected NaN between observations, got %f", r.Values[1])
	}
	if r.Values[24] != 2 {
		t.Errorf("Expected 2 at hour 24, got %f", r.Values[24])
	}
}

func TestResampleCalendar(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC) // a Sunday
	values := make([]float64, 90)
	for i := range values {
		values[i] = 1
	}
	s := dailySeries(start, values)

	t.Run("weekly", func(t *testing.T) {
		r := s.Resample(MustParseFrequency("W"))
		// Jan 1 closes its own week; the rest fall in weeks ending on Sundays
		if !r.Timestamps[0].Equal(start) {
			t.Errorf("Expected first label %v, got %v", start, r.Timestamps[0])
		}
		for _, ts := range r.Timestamps {
			if ts.Weekday() != time.Sunday {
				t.Errorf("Weekly label %v is not a Sunday", ts)
			}
		}
	})

	t.Run("monthly", func(t *testing.T) {
		r := s.Resample(MustParseFrequency("M"))
		want := []time.Time{
			time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
			time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
			time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC),
		}
		if r.Len() != len(want) {
			t.Fatalf("Expected %d monthly buckets, got %d", len(want), r.Len())
		}
		for i, w := range want {
			if !r.Timestamps[i].Equal(w) {
				t.Errorf("Bucket %d: expected %v, got %v", i, w, r.Timestamps[i])
			}
			if r.Values[i] != 1 {
				t.Errorf("Bucket %d: expected mean 1, got %f", i, r.Values[i])
			}
		}
	})

	t.Run("quarterly", func(t *testing.T) {
		r := s.Resample(MustParseFrequency("Q"))
		if r.Len() != 1 || !r.Timestamps[0].Equal(time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("Unexpected quarterly buckets: %v", r.Timestamps)
		}
	})

	t.Run("yearly", func(t *testing.T) {
		r := s.Resample(MustParseFrequency("A"))
		if r.Len() != 1 || !r.Timestamps[0].Equal(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("Unexpected yearly buckets: %v", r.Timestamps)
		}
	})
}

func TestResampleEmpty(t *testing.T) {
	r := (&Series{}).Resample(MustParseFrequency("D"))
	if r.Len() != 0 {
		t.Errorf("Expected empty result, got %d buckets", r.Len())
	}
}

func TestIsRegular(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	s := dailySeries(start, []float64{1, 2, math.NaN(), 4})
	daily := MustParseFrequency("D")

	if !s.IsRegular(daily) {
		t.Error("Expected daily series to be regular")
	}

	// Dropping the missing value leaves a gap
	if s.DropNA().IsRegular(daily) {
		t.Error("Expected gapped series to be irregular")
	}

	monthly := s.Resample(MustParseFrequency("M"))
	if !monthly.IsRegular(MustParseFrequency("M")) {
		t.Error("Expected resampled monthly series to be regular")
	}
}

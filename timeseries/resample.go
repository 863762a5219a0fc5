package timeseries

import (
	"math"
	"time"
)

// Resample aggregates the series into buckets of the given frequency using
// the arithmetic mean of the non-missing values in each bucket. Buckets
// without values are NaN. The series must be sorted by time.
//
// Fixed-width buckets are anchored at midnight of the first timestamp's day
// and labelled by their start; week, month, quarter and year buckets are
// labelled by their last day.
func (s *Series) Resample(freq Frequency) *Series {
	name := s.Name
	if s.Len() == 0 || len(s.Timestamps) != s.Len() {
		return &Series{Values: []float64{}, Name: name}
	}

	g := newGrid(freq, s.Timestamps[0])
	first := g.bucket(s.Timestamps[0])
	last := g.bucket(s.Timestamps[s.Len()-1])
	n := int(last-first) + 1

	sums := make([]float64, n)
	counts := make([]int, n)
	for i, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		k := int(g.bucket(s.Timestamps[i]) - first)
		sums[k] += v
		counts[k]++
	}

	values := make([]float64, n)
	timestamps := make([]time.Time, n)
	for k := range values {
		timestamps[k] = g.label(first + int64(k))
		if counts[k] == 0 {
			values[k] = math.NaN()
			continue
		}
		values[k] = sums[k] / float64(counts[k])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       name,
	}
}

// IsRegular reports whether every timestamp is a bucket label of freq and
// consecutive timestamps are exactly one bucket apart.
func (s *Series) IsRegular(freq Frequency) bool {
	if len(s.Timestamps) != s.Len() {
		return false
	}
	if s.Len() < 2 {
		return true
	}
	g := newGrid(freq, s.Timestamps[0])
	prev := g.bucket(s.Timestamps[0])
	if !g.label(prev).Equal(s.Timestamps[0]) {
		return false
	}
	for _, t := range s.Timestamps[1:] {
		k := g.bucket(t)
		if k != prev+1 || !g.label(k).Equal(t) {
			return false
		}
		prev = k
	}
	return true
}

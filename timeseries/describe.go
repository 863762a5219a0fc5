package timeseries

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Info summarizes the index and the non-null count of a series.
type Info struct {
	Entries int
	First   time.Time
	Last    time.Time
	Column  string
	NonNull int
	Dtype   string
}

// Info returns the dataset info of the series. dtype is the storage type of
// the source column, as reported by Column.Dtype.
func (s *Series) Info(dtype string) Info {
	info := Info{
		Entries: s.Len(),
		Column:  s.Name,
		NonNull: s.Count(),
		Dtype:   dtype,
	}
	if len(s.Timestamps) > 0 {
		info.First = s.Timestamps[0]
		info.Last = s.Timestamps[len(s.Timestamps)-1]
	}
	return info
}

// Dtype infers the storage type name of the column from its non-missing
// values: "float64", "int64", "bool", "datetime64[ns]" or "object".
func (c *Column) Dtype() string {
	kind := ""
	for _, v := range c.Values {
		if isMissing(v) {
			continue
		}
		var k string
		switch x := v.(type) {
		case float64, float32, *float64:
			k = "float64"
		case int, int8, int16, int32, int64, uint8, uint16, uint32, uint64:
			k = "int64"
		case bool:
			k = "bool"
		case time.Time, *time.Time:
			k = "datetime64[ns]"
		case string:
			k = stringDtype(x)
		case []byte:
			k = stringDtype(string(x))
		default:
			k = "object"
		}
		switch {
		case kind == "":
			kind = k
		case kind == k:
		case (kind == "int64" && k == "float64") || (kind == "float64" && k == "int64"):
			kind = "float64"
		default:
			return "object"
		}
	}
	if kind == "" || (kind == "int64" && c.hasMissing()) {
		return "float64"
	}
	return kind
}

func stringDtype(s string) string {
	s = strings.TrimSpace(strings.Trim(s, "\""))
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return "int64"
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return "float64"
	}
	return "object"
}

func (c *Column) hasMissing() bool {
	for _, v := range c.Values {
		if isMissing(v) {
			return true
		}
	}
	return false
}

// Summary holds descriptive statistics of the non-missing values.
type Summary struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Q25   float64
	Q50   float64
	Q75   float64
	Max   float64
}

// Describe computes count, mean, sample standard deviation, min, quartiles
// and max over the non-missing values. Statistics of an empty series are NaN.
func (s *Series) Describe() Summary {
	clean := s.DropNA()
	valid := make([]float64, clean.Len())
	copy(valid, clean.Values)
	sort.Float64s(valid)

	sum := Summary{
		Count: len(valid),
		Mean:  math.NaN(),
		Std:   math.NaN(),
		Min:   math.NaN(),
		Q25:   math.NaN(),
		Q50:   math.NaN(),
		Q75:   math.NaN(),
		Max:   math.NaN(),
	}
	if len(valid) == 0 {
		return sum
	}

	sum.Mean = stat.Mean(valid, nil)
	if len(valid) > 1 {
		sum.Std = clean.Std()
	}
	sum.Min = valid[0]
	sum.Max = valid[len(valid)-1]
	sum.Q25 = Quantile(valid, 0.25)
	sum.Q50 = clean.Median()
	sum.Q75 = Quantile(valid, 0.75)
	return sum
}

// Quantile returns the p-quantile of sorted values, interpolating linearly
// between the closest ranks.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if hi >= n {
		hi = n - 1
	}
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}

package timeseries

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidFrequency is returned when a frequency string cannot be parsed.
var ErrInvalidFrequency = errors.New("invalid frequency")

// Unit is the base unit of a resampling frequency.
type Unit int

// Base units, from finest to coarsest. Calendar units (Week and coarser)
// align buckets to calendar boundaries.
const (
	Second  Unit = iota // "S"
	Minute              // "min" or "T"
	Hour                // "h"
	Day                 // "D"
	Week                // "W", weeks ending on Sunday
	Month               // "M"
	Quarter             // "Q"
	Year                // "A" or "Y"
)

var unitCodes = map[string]Unit{
	"S": Second, "s": Second,
	"T": Minute, "min": Minute,
	"H": Hour, "h": Hour,
	"D": Day,
	"W": Week, "W-SUN": Week,
	"M": Month, "ME": Month,
	"Q": Quarter, "QE": Quarter, "Q-DEC": Quarter,
	"A": Year, "Y": Year, "YE": Year, "A-DEC": Year,
}

var unitNames = [...]string{"S", "min", "h", "D", "W", "M", "Q", "Y"}

// String returns the canonical code of the unit.
func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "Unit(" + strconv.Itoa(int(u)) + ")"
}

// Calendar reports whether buckets of this unit vary in width and are
// labelled by their end.
func (u Unit) Calendar() bool {
	return u >= Week
}

// Frequency is a resampling bucket width: N units.
type Frequency struct {
	N    int
	Unit Unit
}

// ParseFrequency parses frequency aliases such as "D", "h",
// "15min", "2D", "W" or "M".
func ParseFrequency(s string) (Frequency, error) {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	n := 1
	if i > 0 {
		v, err := strconv.Atoi(s[:i])
		if err != nil || v <= 0 {
			return Frequency{}, fmt.Errorf("%w: %q", ErrInvalidFrequency, s)
		}
		n = v
	}
	unit, ok := unitCodes[s[i:]]
	if !ok {
		return Frequency{}, fmt.Errorf("%w: %q", ErrInvalidFrequency, s)
	}
	return Frequency{N: n, Unit: unit}, nil
}

// MustParseFrequency is like ParseFrequency but panics on error.
func MustParseFrequency(s string) Frequency {
	f, err := ParseFrequency(s)
	if err != nil {
		panic(err)
	}
	return f
}

// String returns the frequency in its canonical form, e.g. "2D".
func (f Frequency) String() string {
	if f.N <= 1 {
		return f.Unit.String()
	}
	return strconv.Itoa(f.N) + f.Unit.String()
}

// Width returns the bucket width of fixed-width frequencies, and zero for
// calendar frequencies.
func (f Frequency) Width() time.Duration {
	var d time.Duration
	switch f.Unit {
	case Second:
		d = time.Second
	case Minute:
		d = time.Minute
	case Hour:
		d = time.Hour
	case Day:
		d = 24 * time.Hour
	default:
		return 0
	}
	return time.Duration(f.n()) * d
}

func (f Frequency) n() int {
	if f.N < 1 {
		return 1
	}
	return f.N
}

// grid maps timestamps to bucket numbers counted from the bucket holding
// the anchor, and bucket numbers back to their labels.
type grid struct {
	freq   Frequency
	loc    *time.Location
	origin time.Time // fixed units: midnight of the anchor day
	base   int64     // calendar units: period ordinal of the anchor
}

func newGrid(freq Frequency, anchor time.Time) grid {
	g := grid{freq: freq, loc: anchor.Location()}
	if freq.Unit.Calendar() {
		g.base = periodOrdinal(freq.Unit, anchor)
	} else {
		y, m, d := anchor.Date()
		g.origin = time.Date(y, m, d, 0, 0, 0, 0, g.loc)
	}
	return g
}

func (g grid) bucket(t time.Time) int64 {
	if g.freq.Unit.Calendar() {
		return floorDiv(periodOrdinal(g.freq.Unit, t.In(g.loc))-g.base, int64(g.freq.n()))
	}
	return floorDiv(int64(t.Sub(g.origin)), int64(g.freq.Width()))
}

func (g grid) label(k int64) time.Time {
	if g.freq.Unit.Calendar() {
		n := int64(g.freq.n())
		return periodEnd(g.freq.Unit, g.base+k*n+n-1, g.loc)
	}
	return g.origin.Add(time.Duration(k) * g.freq.Width())
}

// mondayEpoch is the first Monday of the Unix epoch; weeks run Monday to
// Sunday and are labelled by their Sunday.
var mondayEpoch = time.Date(1970, 1, 5, 0, 0, 0, 0, time.UTC)

func periodOrdinal(u Unit, t time.Time) int64 {
	y, m, d := t.Date()
	switch u {
	case Week:
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return floorDiv(int64(day.Sub(mondayEpoch)/(24*time.Hour)), 7)
	case Month:
		return int64(y)*12 + int64(m-1)
	case Quarter:
		return int64(y)*4 + int64(m-1)/3
	default:
		return int64(y)
	}
}

func periodEnd(u Unit, ordinal int64, loc *time.Location) time.Time {
	switch u {
	case Week:
		day := mondayEpoch.AddDate(0, 0, int(ordinal*7+6))
		return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	case Month:
		y, m := floorDiv(ordinal, 12), ordinal-floorDiv(ordinal, 12)*12
		return time.Date(int(y), time.Month(m+2), 0, 0, 0, 0, 0, loc)
	case Quarter:
		y, q := floorDiv(ordinal, 4), ordinal-floorDiv(ordinal, 4)*4
		return time.Date(int(y), time.Month(3*q+4), 0, 0, 0, 0, 0, loc)
	default:
		return time.Date(int(ordinal), time.December, 31, 0, 0, 0, 0, loc)
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

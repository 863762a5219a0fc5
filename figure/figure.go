package figure

import (
	"image/color"
	"math"

	"github.com/sartorproj/goeda/timeseries"
)

// Style is how a trace is drawn.
type Style int

const (
	Line Style = iota
	Dashed
	Points
)

// Default trace colors.
var (
	Blue   = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	Orange = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	Green  = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	Gray   = color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}
)

// Trace is one data set inside a panel. NaN values are not drawn.
type Trace struct {
	Label string
	X, Y  []float64
	Color color.Color
	Style Style
}

// Panel is a single set of axes.
type Panel struct {
	Title    string
	XLabel   string
	YLabel   string
	TimeAxis bool // X values are Unix seconds
	Grid     bool
	Legend   bool
	Traces   []Trace
}

// Figure is a renderable chart made of vertically stacked panels. Width and
// Height are in inches. Name is a short identifier used for file names.
type Figure struct {
	Name   string
	Title  string
	Width  float64
	Height float64
	Panels []Panel
}

// New creates an empty figure.
func New(name, title string, width, height float64) *Figure {
	return &Figure{Name: name, Title: title, Width: width, Height: height}
}

// AddPanel appends a panel and returns it for further setup.
func (f *Figure) AddPanel(p Panel) *Panel {
	f.Panels = append(f.Panels, p)
	return &f.Panels[len(f.Panels)-1]
}

// Add appends a trace to the panel.
func (p *Panel) Add(t Trace) {
	p.Traces = append(p.Traces, t)
}

// SeriesTrace builds a trace over the series' timestamps.
func SeriesTrace(label string, s *timeseries.Series, c color.Color, style Style) Trace {
	x := make([]float64, len(s.Timestamps))
	for i, ts := range s.Timestamps {
		x[i] = float64(ts.UnixNano()) / 1e9
	}
	y := make([]float64, len(s.Values))
	copy(y, s.Values)
	return Trace{Label: label, X: x, Y: y, Color: c, Style: style}
}

// HLine builds a horizontal line at y spanning [x0, x1].
func HLine(label string, y, x0, x1 float64, c color.Color, style Style) Trace {
	return Trace{Label: label, X: []float64{x0, x1}, Y: []float64{y, y}, Color: c, Style: style}
}

// segments splits the trace into runs of finite points.
func (t Trace) segments() [][2][]float64 {
	var out [][2][]float64
	var xs, ys []float64
	n := min(len(t.X), len(t.Y))
	for i := 0; i < n; i++ {
		if !finite(t.X[i]) || !finite(t.Y[i]) {
			if len(xs) > 0 {
				out = append(out, [2][]float64{xs, ys})
				xs, ys = nil, nil
			}
			continue
		}
		xs = append(xs, t.X[i])
		ys = append(ys, t.Y[i])
	}
	if len(xs) > 0 {
		out = append(out, [2][]float64{xs, ys})
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

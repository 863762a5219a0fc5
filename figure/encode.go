package figure

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DPI is the resolution of encoded images.
const DPI = 100

// ErrEmptyFigure is returned when a figure has no panels or no size.
var ErrEmptyFigure = errors.New("figure has nothing to draw")

// Encode draws the figure and writes it to w as PNG. A single panel without
// a title takes the figure title; stacked panels keep their own titles and
// share the X axis layout.
func Encode(fig *Figure, w io.Writer) error {
	if len(fig.Panels) == 0 || fig.Width <= 0 || fig.Height <= 0 {
		return fmt.Errorf("%w: %q", ErrEmptyFigure, fig.Name)
	}

	plots := make([][]*plot.Plot, len(fig.Panels))
	for i := range fig.Panels {
		p, err := buildPlot(&fig.Panels[i])
		if err != nil {
			return fmt.Errorf("figure %q panel %d: %w", fig.Name, i, err)
		}
		plots[i] = []*plot.Plot{p}
	}

	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(fig.Width)*vg.Inch, vg.Length(fig.Height)*vg.Inch),
		vgimg.UseDPI(DPI),
	)
	dc := draw.New(img)

	if len(plots) == 1 {
		p := plots[0][0]
		if p.Title.Text == "" {
			p.Title.Text = fig.Title
		}
		p.Draw(dc)
	} else {
		tiles := draw.Tiles{
			Rows:      len(plots),
			Cols:      1,
			PadY:      vg.Millimeter * 2,
			PadTop:    vg.Millimeter * 2,
			PadBottom: vg.Millimeter * 2,
			PadLeft:   vg.Millimeter * 2,
			PadRight:  vg.Millimeter * 4,
		}
		canvases := plot.Align(plots, tiles, dc)
		for i := range plots {
			plots[i][0].Draw(canvases[i][0])
		}
	}

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("encode figure %q: %w", fig.Name, err)
	}
	return nil
}

func buildPlot(panel *Panel) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = panel.Title
	p.X.Label.Text = panel.XLabel
	p.Y.Label.Text = panel.YLabel
	if panel.TimeAxis {
		p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	}
	if panel.Grid {
		p.Add(plotter.NewGrid())
	}
	p.Legend.Top = true

	for _, tr := range panel.Traces {
		c := tr.Color
		if c == nil {
			c = Blue
		}

		var thumb plot.Thumbnailer
		for _, seg := range tr.segments() {
			xys := make(plotter.XYs, len(seg[0]))
			for i := range xys {
				xys[i].X, xys[i].Y = seg[0][i], seg[1][i]
			}

			if tr.Style == Points {
				sc, err := plotter.NewScatter(xys)
				if err != nil {
					return nil, err
				}
				sc.GlyphStyle.Color = c
				sc.GlyphStyle.Radius = vg.Points(2)
				sc.GlyphStyle.Shape = draw.CircleGlyph{}
				p.Add(sc)
				thumb = sc
				continue
			}

			l, err := plotter.NewLine(xys)
			if err != nil {
				return nil, err
			}
			styleLine(l, c, tr.Style)
			p.Add(l)
			if thumb == nil {
				thumb = l
			}
		}

		if panel.Legend && tr.Label != "" && thumb != nil {
			p.Legend.Add(tr.Label, thumb)
		}
	}
	return p, nil
}

func styleLine(l *plotter.Line, c color.Color, style Style) {
	l.Color = c
	l.Width = vg.Points(1)
	if style == Dashed {
		l.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	}
}

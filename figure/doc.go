// Package figure describes charts as plain data and renders them.
//
// A Figure holds stacked Panels, each with Traces of X/Y values. Renderers
// consume figures one at a time and block until the figure is acknowledged:
//
//	r, err := figure.NewPNGRenderer("figures", logger)
//	fig := figure.New("original", "Original Time Series", 14, 6)
//	panel := fig.AddPanel(figure.Panel{TimeAxis: true, Grid: true})
//	panel.Add(figure.SeriesTrace("sales", series, figure.Blue, figure.Line))
//	err = r.Render(fig)
//
// Wrap a renderer in a PromptRenderer to wait for the user between figures.
// Encode draws with gonum/plot and writes PNG.
package figure

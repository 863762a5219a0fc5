package eda

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sartorproj/goeda/figure"
	"github.com/sartorproj/goeda/stats"
	"github.com/sartorproj/goeda/timeseries"
)

// Explorer runs the exploration sequence over one table. Console text goes
// to out; figures go to the renderer, one at a time.
type Explorer struct {
	logger   *zap.Logger
	out      io.Writer
	renderer figure.Renderer
	config   *Config

	interactive io.Reader
}

// New creates an Explorer. A nil logger discards logs, a nil out writes to
// stdout and a nil config uses DefaultConfig.
func New(logger *zap.Logger, out io.Writer, renderer figure.Renderer, config *Config) *Explorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if out == nil {
		out = os.Stdout
	}
	if config == nil {
		config = DefaultConfig()
	}
	return &Explorer{
		logger:   logger,
		out:      out,
		renderer: renderer,
		config:   config,
	}
}

// Explore prints diagnostics and renders the six exploration figures for
// targetCol indexed by datetimeCol. freq is the resample frequency; empty
// means the configured default. Figures are written as PNGs to a temporary
// directory whose path is printed first, and each prompt names its file and
// waits for Enter on stdin. The first failing step stops the run and its
// error is returned.
func Explore(table *timeseries.Table, datetimeCol, targetCol, freq string) error {
	return Interactive(os.Stdin, os.Stdout, nil).Explore(table, datetimeCol, targetCol, freq)
}

// Interactive creates an Explorer that writes figures to config.FigureDir
// and prompts on out after each one, reading acknowledgments from in.
func Interactive(in io.Reader, out io.Writer, config *Config) *Explorer {
	e := New(nil, out, nil, config)
	e.interactive = in
	return e
}

// openFigureDir creates the PNG renderer of an interactive run.
func (e *Explorer) openFigureDir() (*figure.PNGRenderer, error) {
	dir := e.config.FigureDir
	if dir == "" {
		var err error
		if dir, err = os.MkdirTemp("", "goeda-*"); err != nil {
			return nil, fmt.Errorf("create figure directory: %w", err)
		}
	}
	png, err := figure.NewPNGRenderer(dir, e.logger)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(e.out, "Figures are written to %s\n", png.Dir)
	return png, nil
}

// Explore runs the exploration sequence.
func (e *Explorer) Explore(table *timeseries.Table, datetimeCol, targetCol, freq string) error {
	logger := e.logger.With(zap.String("run_id", uuid.NewString()))
	if e.interactive != nil {
		png, err := e.openFigureDir()
		if err != nil {
			logger.Error("exploration failed", zap.Error(err))
			return err
		}
		e.renderer = figure.NewPromptRenderer(png, e.interactive, e.out)
	}
	if err := e.explore(logger, table, datetimeCol, targetCol, freq); err != nil {
		logger.Error("exploration failed", zap.Error(err))
		return err
	}
	logger.Info("exploration finished")
	return nil
}

func (e *Explorer) explore(logger *zap.Logger, table *timeseries.Table, datetimeCol, targetCol, freqCode string) error {
	cfg := e.config
	if freqCode == "" {
		freqCode = cfg.Frequency
	}
	freq, err := timeseries.ParseFrequency(freqCode)
	if err != nil {
		return fmt.Errorf("resample: %w", err)
	}

	logger.Debug("preparing series",
		zap.String("datetime_column", datetimeCol),
		zap.String("target_column", targetCol),
		zap.Int("rows", table.Len()),
	)
	series, err := table.Prepare(datetimeCol, targetCol)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	column, _ := table.Column(targetCol)

	e.printInfo(series, column.Dtype())
	e.printMissing(series)
	e.printSummary(series)

	if err := e.render(logger, originalFigure(series, cfg)); err != nil {
		return err
	}

	logger.Debug("resampling", zap.Stringer("frequency", freq))
	resampled := series.Resample(freq)
	if err := e.render(logger, resampledFigure(resampled, freqCode, cfg)); err != nil {
		return err
	}

	rollingMean := resampled.Rolling(cfg.Window).Mean()
	rollingStd := resampled.Rolling(cfg.Window).Std()
	if err := e.render(logger, rollingFigure(resampled, rollingMean, rollingStd, cfg)); err != nil {
		return err
	}

	clean := resampled.DropNA()

	e.header("Decomposition")
	logger.Debug("decomposing", zap.Int("observations", clean.Len()), zap.String("model", cfg.Model))
	decomp, err := stats.DecomposeSeries(clean, freq, cfg.Model)
	if err != nil {
		return fmt.Errorf("decomposition: %w", err)
	}
	e.printDecomposition(decomp)
	if err := e.render(logger, decompositionFigure(decomp, cfg)); err != nil {
		return err
	}

	e.header("Augmented Dickey-Fuller Test")
	adf, err := stats.ADF(clean, cfg.ADF)
	if err != nil {
		return fmt.Errorf("adf: %w", err)
	}
	e.printADF(adf)
	logger.Debug("adf finished",
		zap.Float64("statistic", adf.Statistic),
		zap.Float64("p_value", adf.PValue),
		zap.Int("lags", adf.Lags),
	)

	acf, err := stats.Autocorrelation(clean)
	if err != nil {
		return fmt.Errorf("autocorrelation: %w", err)
	}
	if err := e.render(logger, autocorrelationFigure(acf, cfg)); err != nil {
		return err
	}

	return e.render(logger, lagFigure(clean, cfg))
}

func (e *Explorer) render(logger *zap.Logger, fig *figure.Figure) error {
	if e.renderer == nil {
		logger.Debug("no renderer, skipping figure", zap.String("title", fig.Title))
		return nil
	}
	logger.Debug("rendering figure", zap.String("title", fig.Title))
	if err := e.renderer.Render(fig); err != nil {
		return fmt.Errorf("render %q: %w", fig.Title, err)
	}
	return nil
}

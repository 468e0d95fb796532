package chart

import (
	"fmt"
	"image/color"
	"time"

	"github.com/dnldd/barchart/frame"
	"github.com/dnldd/barchart/shared"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	// Intraday figure dimensions.
	intradayFigureWidth  = 10 * vg.Inch
	intradayFigureHeight = 5 * vg.Inch
)

// IntradayPlotOptions represents the optional arguments of an intraday plot.
type IntradayPlotOptions struct {
	// Title is the figure title.
	Title string
	// Start marks the inclusive lower date bound, applied before resampling.
	Start time.Time
	// End marks the inclusive upper date bound, applied before resampling.
	End time.Time
	// BarWidth overrides the selected candle body width, in day units.
	BarWidth float64
	// Ticker overrides the x axis ticker.
	Ticker AxisTicker
	// OutputPath saves the rendered figure when set.
	OutputPath string
}

// IntradayPlot resamples the provided candlesticks to the provided bar size
// and renders an intraday candlestick figure, optionally saving it to the
// configured output path.
func (r *Renderer) IntradayPlot(candles []shared.Candlestick, barSize shared.BarSize, opts *IntradayPlotOptions) (*Figure, error) {
	if opts == nil {
		opts = &IntradayPlotOptions{}
	}

	params, err := NewBarSizeParams(barSize)
	if err != nil {
		return nil, err
	}

	resampled, err := frame.Resample(frame.Truncate(candles, opts.Start, opts.End), barSize)
	if err != nil {
		return nil, fmt.Errorf("resampling candlesticks: %w", err)
	}

	table := frame.TableFromCandles(resampled, frame.UnixSeconds)

	width := opts.BarWidth
	if width == 0 {
		width = params.Width
	}

	ticker := opts.Ticker
	if ticker == nil {
		ticker = MinuteTicker{
			Majors: params.MajorTickMinutes,
			Every:  params.MinorTick,
			Layout: params.LabelLayout,
			Scale:  table.Scale,
		}
	}

	price, err := r.renderPrice(table, ticker, width, opts.Title)
	if err != nil {
		return nil, err
	}
	price.Add(dashedGrid())

	fig := &Figure{
		price:  price,
		width:  intradayFigureWidth,
		height: intradayFigureHeight,
	}

	r.cfg.Logger.Info().
		Stringer("barsize", barSize).
		Int("rows", table.Rows()).
		Msg("rendered intraday plot")

	if opts.OutputPath != "" {
		err = fig.Save(opts.OutputPath)
		if err != nil {
			return nil, fmt.Errorf("saving intraday plot: %w", err)
		}
	}

	return fig, nil
}

// dashedGrid returns a light dashed grid for both axes.
func dashedGrid() *plotter.Grid {
	style := draw.LineStyle{
		Color:  color.Gray{Y: 192},
		Width:  vg.Points(0.25),
		Dashes: []vg.Length{vg.Points(2), vg.Points(2)},
	}

	grid := plotter.NewGrid()
	grid.Vertical = style
	grid.Horizontal = style

	return grid
}

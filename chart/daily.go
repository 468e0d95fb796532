package chart

import (
	"fmt"
	"time"

	"github.com/dnldd/barchart/frame"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	// Daily figure dimensions.
	dailyFigureWidth  = 8 * vg.Inch
	dailyFigureHeight = 6 * vg.Inch

	// defaultDailyBarWidth is the default candle body width in day units.
	defaultDailyBarWidth = 0.3
)

// defaultMonthMajors are the labeled month marks on daily axes.
var defaultMonthMajors = []time.Month{time.March, time.June, time.September, time.December}

// DailyPlotOptions represents the optional arguments of a daily plot.
type DailyPlotOptions struct {
	// Title is the figure title.
	Title string
	// Start and End bound the plotted rows inclusively. Zero values leave
	// the corresponding side unbounded.
	Start time.Time
	End   time.Time
	// Mode overrides table schema detection.
	Mode frame.Mode
	// BarWidth overrides the candle body width, in day units.
	BarWidth float64
	// Ticker overrides the x axis ticker.
	Ticker AxisTicker
	// OutputPath saves the rendered figure when set.
	OutputPath string
}

// DailyPlot renders a daily candlestick figure from the provided table,
// optionally saving it to the configured output path.
func (r *Renderer) DailyPlot(f *frame.Frame, opts *DailyPlotOptions) (*Figure, error) {
	if opts == nil {
		opts = &DailyPlotOptions{}
	}

	table, err := frame.Prepare(f, opts.Mode, opts.Start, opts.End)
	if err != nil {
		return nil, fmt.Errorf("preparing plot data: %w", err)
	}

	width := opts.BarWidth
	if width == 0 {
		width = defaultDailyBarWidth
	}

	ticker := opts.Ticker
	if ticker == nil {
		ticker = MonthTicker{
			Majors: defaultMonthMajors,
			Layout: monthLabelLayout,
			Scale:  table.Scale,
		}
	}

	price, err := r.renderPrice(table, ticker, width, opts.Title)
	if err != nil {
		return nil, err
	}
	price.Add(plotter.NewGrid())

	fig := &Figure{
		price:  price,
		width:  dailyFigureWidth,
		height: dailyFigureHeight,
	}

	if r.cfg.VolumePane {
		volume, err := r.renderVolume(table, ticker, width)
		if err != nil {
			return nil, err
		}

		// The volume pane carries the shared date labels.
		price.X.Tick.Marker = unlabeledTicks{Ticker: ticker}
		fig.volume = volume
	}

	r.cfg.Logger.Info().
		Str("mode", table.Mode.String()).
		Int("rows", table.Rows()).
		Msg("rendered daily plot")

	if opts.OutputPath != "" {
		err = fig.Save(opts.OutputPath)
		if err != nil {
			return nil, fmt.Errorf("saving daily plot: %w", err)
		}
	}

	return fig, nil
}

// renderVolume builds the traded volume pane for the provided table.
func (r *Renderer) renderVolume(table *frame.PlotTable, ticker AxisTicker, width float64) (*plot.Plot, error) {
	bars, err := NewVolumeBars(table, width*table.Scale.UnitsPerDay())
	if err != nil {
		return nil, fmt.Errorf("creating volume plotter: %v", err)
	}

	bars.UpColor = r.cfg.UpColor
	bars.DownColor = r.cfg.DownColor

	p := plot.New()
	p.X.Tick.Marker = ticker
	rotateTickLabels(&p.X)
	p.Add(bars)

	return p, nil
}

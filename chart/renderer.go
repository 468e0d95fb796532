package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/davecgh/go-spew/spew"
	"github.com/dnldd/barchart/frame"
	"github.com/dnldd/barchart/shared"
	"github.com/rs/zerolog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// titleFontSize is the figure title font size.
const titleFontSize = vg.Length(20)

// RendererConfig represents the renderer configuration.
type RendererConfig struct {
	// UpColor fills candles closing at or above their open.
	UpColor color.Color
	// DownColor fills candles closing below their open.
	DownColor color.Color
	// VolumePane toggles the traded volume pane on daily plots.
	VolumePane bool
	// Logger represents the renderer logger.
	Logger *zerolog.Logger
}

// Validate asserts the config has sane inputs.
func (cfg *RendererConfig) Validate() error {
	var errs error

	if cfg.Logger == nil {
		errs = errors.Join(errs, fmt.Errorf("logger cannot be nil"))
	}

	return errs
}

// Renderer renders candlestick figures from prepared plot data.
type Renderer struct {
	cfg *RendererConfig
}

// NewRenderer initializes a new renderer.
func NewRenderer(cfg *RendererConfig) (*Renderer, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating renderer config: %v", err)
	}

	if cfg.UpColor == nil {
		cfg.UpColor = DefaultUpColor
	}
	if cfg.DownColor == nil {
		cfg.DownColor = DefaultDownColor
	}

	return &Renderer{cfg: cfg}, nil
}

// renderPrice builds the price pane for the provided table: title, dated x
// axis and candlesticks. The table's date scale must match the ticker's.
func (r *Renderer) renderPrice(table *frame.PlotTable, ticker AxisTicker, width float64, title string) (*plot.Plot, error) {
	if table.Scale != ticker.DateScale() {
		r.cfg.Logger.Error().Msgf("unexpected plot table for %s axis: %s",
			ticker.DateScale(), spew.Sdump(table.Columns))
		return nil, fmt.Errorf("%w: table uses %s, axis uses %s",
			shared.ErrMixedScales, table.Scale, ticker.DateScale())
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = titleFontSize
	p.X.Tick.Marker = ticker
	rotateTickLabels(&p.X)

	candles, err := NewCandleSticks(table, width*table.Scale.UnitsPerDay())
	if err != nil {
		return nil, fmt.Errorf("creating candlestick plotter: %v", err)
	}

	candles.UpColor = r.cfg.UpColor
	candles.DownColor = r.cfg.DownColor
	p.Add(candles)

	return p, nil
}

// rotateTickLabels angles the axis tick labels to keep long date labels legible.
func rotateTickLabels(axis *plot.Axis) {
	axis.Tick.Label.Rotation = math.Pi / 4
	axis.Tick.Label.XAlign = draw.XRight
	axis.Tick.Label.YAlign = draw.YCenter
}

package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/dnldd/barchart/frame"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Default candle colors, up candles blue and down candles red.
var (
	DefaultUpColor   = color.RGBA{B: 255, A: 255}
	DefaultDownColor = color.RGBA{R: 255, A: 255}
)

// CandleSticks is a plotter drawing one candlestick glyph per table row: a
// body box spanning open to close with wicks out to the high and low.
type CandleSticks struct {
	table *frame.PlotTable

	// Width is the candle body width in x axis units.
	Width float64
	// UpColor fills candles closing at or above their open.
	UpColor color.Color
	// DownColor fills candles closing below their open.
	DownColor color.Color
	// WickStyle is the line style used for candle wicks.
	WickStyle draw.LineStyle
}

// Ensure CandleSticks can be added to a plot and sizes its data range.
var _ plot.Plotter = (*CandleSticks)(nil)
var _ plot.DataRanger = (*CandleSticks)(nil)

// NewCandleSticks initializes a candlestick plotter for the provided table.
func NewCandleSticks(table *frame.PlotTable, width float64) (*CandleSticks, error) {
	if table == nil || table.Rows() == 0 {
		return nil, fmt.Errorf("no rows to plot")
	}
	if width <= 0 {
		return nil, fmt.Errorf("candle width must be positive, got %v", width)
	}

	return &CandleSticks{
		table:     table,
		Width:     width,
		UpColor:   DefaultUpColor,
		DownColor: DefaultDownColor,
		WickStyle: draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)},
	}, nil
}

// Plot draws the candlesticks on the provided canvas.
func (cs *CandleSticks) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for idx := 0; idx < cs.table.Rows(); idx++ {
		date, open, high, low, cls := cs.table.OHLC(idx)

		x := trX(date)
		xmin := trX(date - cs.Width/2)
		xmax := trX(date + cs.Width/2)

		// Wick from the low to the high.
		c.StrokeLine2(cs.WickStyle, x, trY(low), x, trY(high))

		fill := cs.UpColor
		if cls < open {
			fill = cs.DownColor
		}

		ymin := trY(math.Min(open, cls))
		ymax := trY(math.Max(open, cls))
		c.FillPolygon(fill, []vg.Point{
			{X: xmin, Y: ymin},
			{X: xmax, Y: ymin},
			{X: xmax, Y: ymax},
			{X: xmin, Y: ymax},
		})
	}
}

// DataRange returns the span of the plotted data, padded by a candle width
// on each side so edge candles are not clipped.
func (cs *CandleSticks) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)

	for idx := 0; idx < cs.table.Rows(); idx++ {
		date, _, high, low, _ := cs.table.OHLC(idx)

		xmin = math.Min(xmin, date-cs.Width)
		xmax = math.Max(xmax, date+cs.Width)
		ymin = math.Min(ymin, low)
		ymax = math.Max(ymax, high)
	}

	return xmin, xmax, ymin, ymax
}

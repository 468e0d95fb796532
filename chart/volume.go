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

// VolumeBars is a plotter drawing traded volume bars colored by each bar's
// up or down close.
type VolumeBars struct {
	table *frame.PlotTable

	// Width is the bar width in x axis units.
	Width float64
	// UpColor fills bars closing at or above their open.
	UpColor color.Color
	// DownColor fills bars closing below their open.
	DownColor color.Color
}

var _ plot.Plotter = (*VolumeBars)(nil)
var _ plot.DataRanger = (*VolumeBars)(nil)

// NewVolumeBars initializes a volume bar plotter for the provided table.
func NewVolumeBars(table *frame.PlotTable, width float64) (*VolumeBars, error) {
	if table == nil || table.Rows() == 0 {
		return nil, fmt.Errorf("no rows to plot")
	}
	if width <= 0 {
		return nil, fmt.Errorf("bar width must be positive, got %v", width)
	}

	return &VolumeBars{
		table:     table,
		Width:     width,
		UpColor:   DefaultUpColor,
		DownColor: DefaultDownColor,
	}, nil
}

// Plot draws the volume bars on the provided canvas.
func (vb *VolumeBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	base := trY(0)

	for idx := 0; idx < vb.table.Rows(); idx++ {
		date, open, _, _, cls := vb.table.OHLC(idx)

		fill := vb.UpColor
		if cls < open {
			fill = vb.DownColor
		}

		xmin := trX(date - vb.Width/2)
		xmax := trX(date + vb.Width/2)
		top := trY(vb.table.Volume[idx])
		c.FillPolygon(fill, []vg.Point{
			{X: xmin, Y: base},
			{X: xmax, Y: base},
			{X: xmax, Y: top},
			{X: xmin, Y: top},
		})
	}
}

// DataRange returns the span of the plotted data, anchored at zero volume.
func (vb *VolumeBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin = math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)

	for idx := 0; idx < vb.table.Rows(); idx++ {
		date := vb.table.Dates[idx]

		xmin = math.Min(xmin, date-vb.Width)
		xmax = math.Max(xmax, date+vb.Width)
		ymax = math.Max(ymax, vb.table.Volume[idx])
	}

	return xmin, xmax, 0, ymax
}

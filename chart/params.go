package chart

import (
	"fmt"
	"time"

	"github.com/dnldd/barchart/shared"
)

const (
	// sessionHours is the assumed length of one trading session.
	sessionHours = 6.5
	// intradayLabelLayout is the tick label layout for intraday axes.
	intradayLabelLayout = "15:04"
	// monthLabelLayout is the tick label layout for daily axes.
	monthLabelLayout = "Jan 06"
)

// BarSizeParams represents the axis and glyph parameters selected for a bar size.
type BarSizeParams struct {
	// BarSize is the bar size the parameters were built for.
	BarSize shared.BarSize
	// Width is the candle body width in day units.
	Width float64
	// MajorTickMinutes are the minute marks carrying labeled ticks.
	MajorTickMinutes []int
	// MinorTick is the spacing of unlabeled ticks.
	MinorTick time.Duration
	// LabelLayout is the time layout used for major tick labels.
	LabelLayout string
}

// barSizeParams maps each supported bar size to its parameter constructor.
var barSizeParams = map[shared.BarSize]func() BarSizeParams{
	shared.OneMinute:     oneMinuteParams,
	shared.FiveMinute:    fiveMinuteParams,
	shared.FifteenMinute: fifteenMinuteParams,
}

// NewBarSizeParams selects plot parameters for the provided bar size.
func NewBarSizeParams(barSize shared.BarSize) (BarSizeParams, error) {
	newParams, ok := barSizeParams[barSize]
	if !ok {
		return BarSizeParams{}, fmt.Errorf("%w: no plot parameters for %s",
			shared.ErrUnsupportedBarSize, barSize)
	}

	return newParams(), nil
}

// barWidth returns the candle body width in day units for the provided bar
// size in minutes, filling roughly ninety percent of the bar's slot over a
// six and a half hour session.
func barWidth(minutes float64) float64 {
	return minutes * 0.9 * 60 / 4.0 / (3600 * sessionHours)
}

func oneMinuteParams() BarSizeParams {
	return BarSizeParams{
		BarSize:          shared.OneMinute,
		Width:            barWidth(1),
		MajorTickMinutes: []int{0, 15, 30, 45},
		MinorTick:        time.Minute,
		LabelLayout:      intradayLabelLayout,
	}
}

func fiveMinuteParams() BarSizeParams {
	return BarSizeParams{
		BarSize:          shared.FiveMinute,
		Width:            barWidth(5),
		MajorTickMinutes: []int{0, 15, 30, 45},
		MinorTick:        time.Minute,
		LabelLayout:      intradayLabelLayout,
	}
}

func fifteenMinuteParams() BarSizeParams {
	return BarSizeParams{
		BarSize:          shared.FifteenMinute,
		Width:            barWidth(15),
		MajorTickMinutes: []int{0, 30},
		MinorTick:        time.Minute,
		LabelLayout:      intradayLabelLayout,
	}
}

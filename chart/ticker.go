package chart

import (
	"slices"
	"time"

	"github.com/dnldd/barchart/frame"
	"gonum.org/v1/plot"
)

// maxMinorTicks bounds the number of unlabeled ticks emitted for one axis.
// Wider spans keep their labeled ticks and drop the minors.
const maxMinorTicks = 2000

// AxisTicker is a plot ticker bound to a specific numeric date scale.
type AxisTicker interface {
	plot.Ticker

	// DateScale returns the numeric date scale the ticker expects on its axis.
	DateScale() frame.DateScale
}

// MinuteTicker produces labeled ticks on fixed minute marks with unlabeled
// ticks between them.
type MinuteTicker struct {
	// Majors are the minute marks receiving labeled ticks.
	Majors []int
	// Every is the spacing of unlabeled ticks.
	Every time.Duration
	// Layout is the label time layout.
	Layout string
	// Scale converts axis values back to dates.
	Scale frame.DateScale
}

var _ AxisTicker = MinuteTicker{}

// DateScale returns the numeric date scale the ticker expects on its axis.
func (t MinuteTicker) DateScale() frame.DateScale {
	return t.Scale
}

// Ticks returns the axis ticks for the provided range.
func (t MinuteTicker) Ticks(min, max float64) []plot.Tick {
	if max <= min {
		return nil
	}

	every := t.Every
	if every <= 0 {
		every = time.Minute
	}

	start := t.Scale.ToTime(min)
	end := t.Scale.ToTime(max)

	at := start.Truncate(every)
	if at.Before(start) {
		at = at.Add(every)
	}

	skipMinors := end.Sub(at)/every > maxMinorTicks

	var ticks []plot.Tick
	for ; !at.After(end); at = at.Add(every) {
		major := at.Second() == 0 && slices.Contains(t.Majors, at.Minute())
		switch {
		case major:
			ticks = append(ticks, plot.Tick{Value: t.Scale.FromTime(at), Label: at.Format(t.Layout)})
		case !skipMinors:
			ticks = append(ticks, plot.Tick{Value: t.Scale.FromTime(at)})
		}
	}

	return ticks
}

// MonthTicker produces labeled ticks at the start of selected months with
// unlabeled ticks at every other month boundary.
type MonthTicker struct {
	// Majors are the months receiving labeled ticks.
	Majors []time.Month
	// Layout is the label time layout.
	Layout string
	// Scale converts axis values back to dates.
	Scale frame.DateScale
}

var _ AxisTicker = MonthTicker{}

// DateScale returns the numeric date scale the ticker expects on its axis.
func (t MonthTicker) DateScale() frame.DateScale {
	return t.Scale
}

// Ticks returns the axis ticks for the provided range.
func (t MonthTicker) Ticks(min, max float64) []plot.Tick {
	if max <= min {
		return nil
	}

	start := t.Scale.ToTime(min)
	end := t.Scale.ToTime(max)

	at := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	if at.Before(start) {
		at = at.AddDate(0, 1, 0)
	}

	var ticks []plot.Tick
	for ; !at.After(end); at = at.AddDate(0, 1, 0) {
		tick := plot.Tick{Value: t.Scale.FromTime(at)}
		if slices.Contains(t.Majors, at.Month()) {
			tick.Label = at.Format(t.Layout)
		}
		ticks = append(ticks, tick)
	}

	return ticks
}

// unlabeledTicks strips the labels from another ticker's output, hiding the
// axis labels of a pane that shares its axis with another.
type unlabeledTicks struct {
	plot.Ticker
}

// Ticks returns the wrapped ticker's ticks with labels removed.
func (u unlabeledTicks) Ticks(min, max float64) []plot.Tick {
	ticks := u.Ticker.Ticks(min, max)
	for idx := range ticks {
		ticks[idx].Label = ""
	}

	return ticks
}

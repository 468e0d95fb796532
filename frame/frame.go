package frame

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dnldd/barchart/shared"
)

// Canonical column names.
const (
	// DateColumn marks a market mode table.
	DateColumn = "date"
	// EventDateColumn marks an event mode table.
	EventDateColumn = "event_date"

	OpenColumn   = "open"
	HighColumn   = "high"
	LowColumn    = "low"
	CloseColumn  = "close"
	VolumeColumn = "volume"
)

// Mode identifies the schema convention of an input table.
type Mode int

const (
	// ModeAuto detects the schema from the table's column names.
	ModeAuto Mode = iota
	// ModeMarket expects a lower-case schema keyed by a date column.
	ModeMarket
	// ModeEvent expects an event_date column and emits capitalized value columns.
	ModeEvent
)

// String stringifies the provided mode.
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeMarket:
		return "market"
	case ModeEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Frame represents a column-ordered table of raw OHLCV data.
type Frame struct {
	names  []string
	values map[string][]float64
	dates  map[string][]time.Time
	rows   int
}

// NewFrame initializes an empty frame.
func NewFrame() *Frame {
	return &Frame{
		values: make(map[string][]float64),
		dates:  make(map[string][]time.Time),
	}
}

// has reports whether the frame carries a column with the provided name.
func (f *Frame) has(name string) bool {
	return slices.Contains(f.names, name)
}

// addName records a new column name, asserting uniqueness and a consistent row count.
func (f *Frame) addName(name string, rows int) error {
	if f.has(name) {
		return fmt.Errorf("duplicate column %q", name)
	}

	if len(f.names) > 0 && rows != f.rows {
		return fmt.Errorf("column %q has %d rows, want %d", name, rows, f.rows)
	}

	f.names = append(f.names, name)
	f.rows = rows

	return nil
}

// AddColumn appends a numeric column to the frame.
func (f *Frame) AddColumn(name string, values []float64) error {
	if err := f.addName(name, len(values)); err != nil {
		return err
	}

	f.values[name] = values

	return nil
}

// AddDateColumn appends a date column to the frame.
func (f *Frame) AddDateColumn(name string, dates []time.Time) error {
	if err := f.addName(name, len(dates)); err != nil {
		return err
	}

	f.dates[name] = dates

	return nil
}

// Columns returns the frame's column names in insertion order.
func (f *Frame) Columns() []string {
	return slices.Clone(f.names)
}

// Rows returns the number of rows in the frame.
func (f *Frame) Rows() int {
	return f.rows
}

// FromCandles creates a market mode frame from the provided candlesticks.
func FromCandles(candles []shared.Candlestick) *Frame {
	dates := make([]time.Time, len(candles))
	open := make([]float64, len(candles))
	high := make([]float64, len(candles))
	low := make([]float64, len(candles))
	cls := make([]float64, len(candles))
	volume := make([]float64, len(candles))

	for idx := range candles {
		dates[idx] = candles[idx].Date
		open[idx] = candles[idx].Open
		high[idx] = candles[idx].High
		low[idx] = candles[idx].Low
		cls[idx] = candles[idx].Close
		volume[idx] = candles[idx].Volume
	}

	f := NewFrame()
	// Column additions on a fresh frame with equal lengths cannot fail.
	_ = f.AddDateColumn(DateColumn, dates)
	_ = f.AddColumn(OpenColumn, open)
	_ = f.AddColumn(HighColumn, high)
	_ = f.AddColumn(LowColumn, low)
	_ = f.AddColumn(CloseColumn, cls)
	_ = f.AddColumn(VolumeColumn, volume)

	return f
}

// DetectMode infers the schema mode of the provided frame from its marker
// column. Detection fails when the frame carries both markers or neither.
func DetectMode(f *Frame) (Mode, error) {
	hasDate := f.has(DateColumn)
	hasEventDate := f.has(EventDateColumn)

	switch {
	case hasDate && hasEventDate:
		return ModeAuto, fmt.Errorf("%w: both %q and %q columns present",
			shared.ErrUnsupportedSchema, DateColumn, EventDateColumn)
	case hasDate:
		return ModeMarket, nil
	case hasEventDate:
		return ModeEvent, nil
	default:
		return ModeAuto, fmt.Errorf("%w: no %q or %q column",
			shared.ErrUnsupportedSchema, DateColumn, EventDateColumn)
	}
}

// PlotTable represents a normalized table ready for rendering, with dates
// reduced to the numeric scale expected by the chart axes.
type PlotTable struct {
	Columns []string
	Dates   []float64
	Open    []float64
	High    []float64
	Low     []float64
	Close   []float64
	Volume  []float64
	Scale   DateScale
	Mode    Mode
}

// Rows returns the number of rows in the table.
func (t *PlotTable) Rows() int {
	return len(t.Dates)
}

// OHLC returns the numeric date and price values of the row at the provided index.
func (t *PlotTable) OHLC(idx int) (date, open, high, low, cls float64) {
	return t.Dates[idx], t.Open[idx], t.High[idx], t.Low[idx], t.Close[idx]
}

// capitalize upper cases the first character of the provided column name.
func capitalize(name string) string {
	if name == "" {
		return name
	}

	return strings.ToUpper(name[:1]) + name[1:]
}

// plotColumns returns the normalized output column names for the provided mode.
func plotColumns(mode Mode) []string {
	names := []string{DateColumn, OpenColumn, HighColumn, LowColumn, CloseColumn, VolumeColumn}
	if mode != ModeEvent {
		return names
	}

	for idx := 1; idx < len(names); idx++ {
		names[idx] = capitalize(names[idx])
	}

	return names
}

// Prepare normalizes the provided frame for plotting, truncating rows to the
// inclusive [start, end] date range. Zero-valued bounds leave the
// corresponding side unbounded.
func Prepare(f *Frame, mode Mode, start, end time.Time) (*PlotTable, error) {
	var err error
	if mode == ModeAuto {
		mode, err = DetectMode(f)
		if err != nil {
			return nil, err
		}
	}

	dateColumn := DateColumn
	scale := UnixSeconds
	if mode == ModeEvent {
		dateColumn = EventDateColumn
		scale = OrdinalDays
	}

	dates, ok := f.dates[dateColumn]
	if !ok {
		return nil, fmt.Errorf("%w: no %q date column for %s mode",
			shared.ErrUnsupportedSchema, dateColumn, mode)
	}

	values := make(map[string][]float64, 5)
	for _, name := range []string{OpenColumn, HighColumn, LowColumn, CloseColumn, VolumeColumn} {
		column, ok := f.values[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing %q column", shared.ErrUnsupportedSchema, name)
		}
		values[name] = column
	}

	table := &PlotTable{
		Columns: plotColumns(mode),
		Scale:   scale,
		Mode:    mode,
	}

	for idx, date := range dates {
		if date.IsZero() {
			return nil, fmt.Errorf("%w: row %d of column %q", shared.ErrBadDate, idx, dateColumn)
		}

		if !start.IsZero() && date.Before(start) {
			continue
		}
		if !end.IsZero() && date.After(end) {
			continue
		}

		table.Dates = append(table.Dates, scale.FromTime(date))
		table.Open = append(table.Open, values[OpenColumn][idx])
		table.High = append(table.High, values[HighColumn][idx])
		table.Low = append(table.Low, values[LowColumn][idx])
		table.Close = append(table.Close, values[CloseColumn][idx])
		table.Volume = append(table.Volume, values[VolumeColumn][idx])
	}

	return table, nil
}

// TableFromCandles normalizes the provided candlesticks directly into a plot
// table on the provided date scale.
func TableFromCandles(candles []shared.Candlestick, scale DateScale) *PlotTable {
	table := &PlotTable{
		Columns: plotColumns(ModeMarket),
		Scale:   scale,
		Mode:    ModeMarket,
	}

	for idx := range candles {
		table.Dates = append(table.Dates, scale.FromTime(candles[idx].Date))
		table.Open = append(table.Open, candles[idx].Open)
		table.High = append(table.High, candles[idx].High)
		table.Low = append(table.Low, candles[idx].Low)
		table.Close = append(table.Close, candles[idx].Close)
		table.Volume = append(table.Volume, candles[idx].Volume)
	}

	return table
}

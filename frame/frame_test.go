package frame

import (
	"errors"
	"testing"
	"time"

	"github.com/dnldd/barchart/shared"
	"github.com/google/go-cmp/cmp"
	"github.com/peterldowns/testy/assert"
)

// dailyCandles generates consecutive daily candlesticks starting from the provided date.
func dailyCandles(start time.Time, days int) []shared.Candlestick {
	candles := make([]shared.Candlestick, days)
	for idx := range candles {
		base := float64(100 + idx)
		candles[idx] = shared.Candlestick{
			Open:   base,
			High:   base + 2,
			Low:    base - 2,
			Close:  base + 1,
			Volume: 1000,
			Date:   start.AddDate(0, 0, idx),
		}
	}

	return candles
}

func TestFrameColumns(t *testing.T) {
	start := time.Date(2014, 6, 1, 0, 0, 0, 0, time.UTC)
	f := FromCandles(dailyCandles(start, 3))

	wantColumns := []string{"date", "open", "high", "low", "close", "volume"}
	if !cmp.Equal(f.Columns(), wantColumns) {
		t.Errorf("mismatching columns, got %v", cmp.Diff(f.Columns(), wantColumns))
	}
	assert.Equal(t, f.Rows(), 3)

	// Ensure duplicate columns are rejected.
	err := f.AddColumn("open", []float64{1, 2, 3})
	assert.Error(t, err)

	// Ensure ragged columns are rejected.
	err = f.AddColumn("vwap", []float64{1, 2})
	assert.Error(t, err)
	err = f.AddDateColumn("settled", []time.Time{start})
	assert.Error(t, err)

	// Ensure consistent extra columns can be added.
	err = f.AddColumn("vwap", []float64{1, 2, 3})
	assert.NoError(t, err)
}

func TestDetectMode(t *testing.T) {
	start := time.Date(2014, 6, 1, 0, 0, 0, 0, time.UTC)
	dates := []time.Time{start, start.AddDate(0, 0, 1)}

	tests := []struct {
		name        string
		dateColumns []string
		want        Mode
		wantErr     bool
	}{
		{
			name:        "market mode table",
			dateColumns: []string{DateColumn},
			want:        ModeMarket,
		},
		{
			name:        "event mode table",
			dateColumns: []string{EventDateColumn},
			want:        ModeEvent,
		},
		{
			name:        "ambiguous table",
			dateColumns: []string{DateColumn, EventDateColumn},
			wantErr:     true,
		},
		{
			name:        "unmarked table",
			dateColumns: []string{"timestamp"},
			wantErr:     true,
		},
	}

	for _, test := range tests {
		f := NewFrame()
		for _, name := range test.dateColumns {
			err := f.AddDateColumn(name, dates)
			assert.NoError(t, err)
		}

		mode, err := DetectMode(f)
		if test.wantErr {
			assert.Error(t, err)
			assert.True(t, errors.Is(err, shared.ErrUnsupportedSchema))
			continue
		}

		assert.NoError(t, err)
		if mode != test.want {
			t.Errorf("%s: expected %v, got %v", test.name, test.want, mode)
		}
	}
}

func TestPrepareTruncates(t *testing.T) {
	// Two years of daily data.
	first := time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := dailyCandles(first, 730)
	f := FromCandles(candles)

	// Ensure an unbounded prepare keeps every row.
	table, err := Prepare(f, ModeAuto, time.Time{}, time.Time{})
	assert.NoError(t, err)
	assert.Equal(t, table.Rows(), 730)
	assert.Equal(t, table.Mode, ModeMarket)
	assert.Equal(t, table.Scale, UnixSeconds)

	// Ensure truncation bounds are inclusive.
	start := time.Date(2014, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2015, 6, 30, 0, 0, 0, 0, time.UTC)
	table, err = Prepare(f, ModeAuto, start, end)
	assert.NoError(t, err)

	wantRows := int(end.Sub(start).Hours()/24) + 1
	assert.Equal(t, table.Rows(), wantRows)
	assert.Equal(t, table.Dates[0], UnixSeconds.FromTime(start))
	assert.Equal(t, table.Dates[table.Rows()-1], UnixSeconds.FromTime(end))

	// Ensure one-sided bounds leave the other side open.
	table, err = Prepare(f, ModeAuto, start, time.Time{})
	assert.NoError(t, err)
	assert.Equal(t, table.Dates[0], UnixSeconds.FromTime(start))
	assert.Equal(t, table.Rows(), 730-151)
}

func TestPrepareEventMode(t *testing.T) {
	dates := []time.Time{
		time.Date(2015, 6, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2015, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	f := NewFrame()
	assert.NoError(t, f.AddDateColumn(EventDateColumn, dates))
	assert.NoError(t, f.AddColumn(OpenColumn, []float64{10, 11}))
	assert.NoError(t, f.AddColumn(HighColumn, []float64{12, 13}))
	assert.NoError(t, f.AddColumn(LowColumn, []float64{9, 10}))
	assert.NoError(t, f.AddColumn(CloseColumn, []float64{11, 12}))
	assert.NoError(t, f.AddColumn(VolumeColumn, []float64{100, 200}))

	table, err := Prepare(f, ModeAuto, time.Time{}, time.Time{})
	assert.NoError(t, err)
	assert.Equal(t, table.Mode, ModeEvent)
	assert.Equal(t, table.Scale, OrdinalDays)

	// Ensure value columns are emitted capitalized with a derived date column.
	wantColumns := []string{"date", "Open", "High", "Low", "Close", "Volume"}
	if !cmp.Equal(table.Columns, wantColumns) {
		t.Errorf("mismatching columns, got %v", cmp.Diff(table.Columns, wantColumns))
	}

	// Ensure dates are ordinal day numbers.
	assert.Equal(t, table.Dates[1], float64(735779))
	assert.Equal(t, table.Dates[0], float64(735778))
}

func TestPrepareErrors(t *testing.T) {
	dates := []time.Time{time.Date(2015, 6, 30, 0, 0, 0, 0, time.UTC)}

	// Ensure a missing value column is reported as a schema error.
	f := NewFrame()
	assert.NoError(t, f.AddDateColumn(DateColumn, dates))
	assert.NoError(t, f.AddColumn(OpenColumn, []float64{10}))

	_, err := Prepare(f, ModeAuto, time.Time{}, time.Time{})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrUnsupportedSchema))

	// Ensure an explicit mode mismatching the table is reported as a schema error.
	_, err = Prepare(f, ModeEvent, time.Time{}, time.Time{})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrUnsupportedSchema))

	// Ensure malformed dates are reported as date errors.
	f = NewFrame()
	assert.NoError(t, f.AddDateColumn(DateColumn, []time.Time{{}}))
	assert.NoError(t, f.AddColumn(OpenColumn, []float64{10}))
	assert.NoError(t, f.AddColumn(HighColumn, []float64{12}))
	assert.NoError(t, f.AddColumn(LowColumn, []float64{9}))
	assert.NoError(t, f.AddColumn(CloseColumn, []float64{11}))
	assert.NoError(t, f.AddColumn(VolumeColumn, []float64{100}))

	_, err = Prepare(f, ModeAuto, time.Time{}, time.Time{})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrBadDate))
}

func TestDateScale(t *testing.T) {
	date := time.Date(2015, 6, 30, 0, 0, 0, 0, time.UTC)

	// Ensure the unix seconds scale round trips with intraday precision.
	stamped := date.Add(time.Hour*15 + time.Minute*5)
	assert.Equal(t, UnixSeconds.FromTime(stamped), float64(stamped.Unix()))
	assert.Equal(t, UnixSeconds.ToTime(UnixSeconds.FromTime(stamped)), stamped)

	// Ensure ordinal day numbers match the proleptic gregorian day count.
	assert.Equal(t, OrdinalDays.FromTime(date), float64(735779))
	assert.Equal(t, OrdinalDays.FromTime(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)), float64(719163))
	assert.Equal(t, OrdinalDays.FromTime(time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)), float64(1))

	// Ensure ordinal values drop the intraday fraction.
	assert.Equal(t, OrdinalDays.FromTime(stamped), float64(735779))
	assert.Equal(t, OrdinalDays.ToTime(735779), date)

	// Ensure the axis unit sizes differ between scales.
	assert.Equal(t, UnixSeconds.UnitsPerDay(), float64(86400))
	assert.Equal(t, OrdinalDays.UnitsPerDay(), float64(1))
}

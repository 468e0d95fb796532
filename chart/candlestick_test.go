package chart

import (
	"testing"
	"time"

	"github.com/dnldd/barchart/frame"
	"github.com/dnldd/barchart/shared"
	"github.com/peterldowns/testy/assert"
)

func TestNewCandleSticks(t *testing.T) {
	date := time.Date(2025, 2, 4, 15, 5, 0, 0, time.UTC)
	table := frame.TableFromCandles([]shared.Candlestick{
		{Open: 10, High: 15, Low: 8, Close: 12, Volume: 5, Date: date},
		{Open: 12, High: 16, Low: 11, Close: 11, Volume: 7, Date: date.Add(time.Minute)},
	}, frame.UnixSeconds)

	// Ensure empty tables and degenerate widths are rejected.
	_, err := NewCandleSticks(nil, 30)
	assert.Error(t, err)
	_, err = NewCandleSticks(&frame.PlotTable{}, 30)
	assert.Error(t, err)
	_, err = NewCandleSticks(table, 0)
	assert.Error(t, err)

	candles, err := NewCandleSticks(table, 30)
	assert.NoError(t, err)

	// Ensure the data range covers the candles padded by a body width.
	xmin, xmax, ymin, ymax := candles.DataRange()
	assert.Equal(t, xmin, float64(date.Unix())-30)
	assert.Equal(t, xmax, float64(date.Add(time.Minute).Unix())+30)
	assert.Equal(t, ymin, float64(8))
	assert.Equal(t, ymax, float64(16))
}

func TestNewVolumeBars(t *testing.T) {
	date := time.Date(2025, 2, 4, 15, 5, 0, 0, time.UTC)
	table := frame.TableFromCandles([]shared.Candlestick{
		{Open: 10, High: 15, Low: 8, Close: 12, Volume: 5, Date: date},
		{Open: 12, High: 16, Low: 11, Close: 11, Volume: 7, Date: date.Add(time.Minute)},
	}, frame.UnixSeconds)

	_, err := NewVolumeBars(table, -1)
	assert.Error(t, err)

	bars, err := NewVolumeBars(table, 30)
	assert.NoError(t, err)

	// Ensure the volume range is anchored at zero.
	_, _, ymin, ymax := bars.DataRange()
	assert.Equal(t, ymin, float64(0))
	assert.Equal(t, ymax, float64(7))
}

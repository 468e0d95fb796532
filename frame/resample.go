package frame

import (
	"fmt"
	"slices"
	"time"

	"github.com/dnldd/barchart/shared"
)

// Truncate returns the candlesticks dated within the provided inclusive
// bounds. A zero-valued bound leaves the corresponding side open.
func Truncate(candles []shared.Candlestick, start, end time.Time) []shared.Candlestick {
	truncated := make([]shared.Candlestick, 0, len(candles))
	for _, candle := range candles {
		if !start.IsZero() && candle.Date.Before(start) {
			continue
		}
		if !end.IsZero() && candle.Date.After(end) {
			continue
		}

		truncated = append(truncated, candle)
	}

	return truncated
}

// Resample aggregates the provided candlesticks into epoch-aligned buckets
// of the provided bar size. Bucket opens take the first value, highs the
// maximum, lows the minimum, closes the last value and volumes the sum.
// Buckets with no candles are omitted.
func Resample(candles []shared.Candlestick, barSize shared.BarSize) ([]shared.Candlestick, error) {
	bucket, err := barSize.Duration()
	if err != nil {
		return nil, fmt.Errorf("sizing resample bucket: %w", err)
	}

	sorted := slices.Clone(candles)
	slices.SortStableFunc(sorted, func(a, b shared.Candlestick) int {
		return a.Date.Compare(b.Date)
	})

	resampled := make([]shared.Candlestick, 0, len(sorted))
	for _, candle := range sorted {
		start := candle.Date.Truncate(bucket)

		if len(resampled) == 0 || !resampled[len(resampled)-1].Date.Equal(start) {
			next := candle
			next.Date = start
			next.BarSize = barSize
			resampled = append(resampled, next)
			continue
		}

		last := &resampled[len(resampled)-1]
		if candle.High > last.High {
			last.High = candle.High
		}
		if candle.Low < last.Low {
			last.Low = candle.Low
		}
		last.Close = candle.Close
		last.Volume += candle.Volume
	}

	return resampled, nil
}

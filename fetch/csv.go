package fetch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dnldd/barchart/shared"
)

// csvColumns are the required csv header columns.
var csvColumns = []string{"date", "open", "high", "low", "close", "volume"}

// LoadCSV loads candlesticks from the csv file at the provided path. The
// file must carry a header naming the date, open, high, low, close and
// volume columns, in any order.
func LoadCSV(path string) ([]shared.Candlestick, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv data from file with path '%s': %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %v", err)
	}

	fields := make(map[string]int, len(header))
	for idx, name := range header {
		fields[strings.ToLower(strings.TrimSpace(name))] = idx
	}
	for _, name := range csvColumns {
		if _, ok := fields[name]; !ok {
			return nil, fmt.Errorf("%w: csv header missing %q column", shared.ErrUnsupportedSchema, name)
		}
	}

	var candles []shared.Candlestick
	for line := 2; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv record: %v", err)
		}

		var candle shared.Candlestick

		candle.Date, err = parseDate(record[fields["date"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		values := map[string]*float64{
			"open":   &candle.Open,
			"high":   &candle.High,
			"low":    &candle.Low,
			"close":  &candle.Close,
			"volume": &candle.Volume,
		}
		for name, value := range values {
			*value, err = strconv.ParseFloat(strings.TrimSpace(record[fields[name]]), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: parsing %s: %v", line, name, err)
			}
		}

		candles = append(candles, candle)
	}

	return candles, nil
}

// parseDate parses a date cell as a timestamp or a day.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{shared.DateLayout, shared.DayLayout} {
		date, err := time.Parse(layout, value)
		if err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", shared.ErrBadDate, value)
}

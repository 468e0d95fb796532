package fetch

import (
	"fmt"
	"os"

	"github.com/dnldd/barchart/shared"
	"github.com/tidwall/gjson"
)

// LoadJSON loads candlesticks from the json file at the provided path. The
// file carries a market name and its candles:
//
//	{"market": "^GSPC", "candles": [{"date": ..., "open": ..., ...}, ...]}
func LoadJSON(path string) (string, []shared.Candlestick, error) {
	readb, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading json data from file with path '%s': %v", path, err)
	}

	b := gjson.ParseBytes(readb)
	market := b.Get("market").String()

	data := b.Get("candles").Array()
	candles := make([]shared.Candlestick, 0, len(data))
	for idx := range data {
		var candle shared.Candlestick

		candle.Open = data[idx].Get("open").Float()
		candle.Low = data[idx].Get("low").Float()
		candle.High = data[idx].Get("high").Float()
		candle.Close = data[idx].Get("close").Float()
		candle.Volume = data[idx].Get("volume").Float()
		candle.Market = market

		candle.Date, err = parseDate(data[idx].Get("date").String())
		if err != nil {
			return "", nil, fmt.Errorf("parsing candlestick date: %w", err)
		}

		candles = append(candles, candle)
	}

	return market, candles, nil
}

package shared

import (
	"testing"
	"time"
)

func TestFetchSentiment(t *testing.T) {
	date := time.Date(2025, 2, 4, 15, 5, 0, 0, time.UTC)

	tests := []struct {
		name   string
		candle Candlestick
		want   Sentiment
	}{
		{
			"bullish candle",
			Candlestick{Open: 10, Low: 9, High: 13, Close: 12, Volume: 5, Date: date},
			Bullish,
		},
		{
			"bearish candle",
			Candlestick{Open: 12, Low: 9, High: 13, Close: 10, Volume: 5, Date: date},
			Bearish,
		},
		{
			"neutral candle",
			Candlestick{Open: 10, Low: 9, High: 13, Close: 10, Volume: 5, Date: date},
			Neutral,
		},
	}

	for _, test := range tests {
		sentiment := test.candle.FetchSentiment()
		if sentiment != test.want {
			t.Errorf("%s: expected %v, got %v", test.name, test.want, sentiment)
		}
	}
}

func TestSentimentString(t *testing.T) {
	tests := []struct {
		name      string
		sentiment Sentiment
		want      string
	}{
		{
			"bullish",
			Bullish,
			"bullish",
		},
		{
			"bearish",
			Bearish,
			"bearish",
		},
		{
			"neutral",
			Neutral,
			"neutral",
		},
	}

	for _, test := range tests {
		str := test.sentiment.String()
		if str != test.want {
			t.Errorf("%s: expected %v, got %v", test.name, test.want, str)
		}
	}
}

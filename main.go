package main

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/dnldd/barchart/chart"
	"github.com/dnldd/barchart/fetch"
	"github.com/dnldd/barchart/frame"
	"github.com/dnldd/barchart/shared"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// loadCandles loads candlestick data from the provided path, picking the
// loader from the file extension.
func loadCandles(path string) ([]shared.Candlestick, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		_, candles, err := fetch.LoadJSON(path)
		return candles, err
	default:
		return fetch.LoadCSV(path)
	}
}

// parseBound parses an optional date bound, leaving zero when unset.
func parseBound(value string) time.Time {
	if value == "" {
		return time.Time{}
	}

	// Bounds are validated during config loading.
	bound, _ := time.Parse(shared.DayLayout, value)
	return bound
}

func main() {
	var cfg Config
	err := loadConfig(&cfg, "")
	if err != nil {
		log.Printf("loading config: %v", err)
		return
	}

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	logger := zlog.With().Str("service", "barchart").Logger()

	barSize, err := shared.ParseBarSize(cfg.BarSize)
	if err != nil {
		logger.Error().Err(err).Msg("parsing bar size")
		return
	}

	candles, err := loadCandles(cfg.DataFilePath)
	if err != nil {
		logger.Error().Err(err).Msg("loading candlestick data")
		return
	}

	rendererLogger := logger.With().Str("component", "renderer").Logger()
	renderer, err := chart.NewRenderer(&chart.RendererConfig{
		VolumePane: cfg.VolumePane,
		Logger:     &rendererLogger,
	})
	if err != nil {
		logger.Error().Err(err).Msg("creating renderer")
		return
	}

	switch barSize {
	case shared.OneDay:
		_, err = renderer.DailyPlot(frame.FromCandles(candles), &chart.DailyPlotOptions{
			Title:      cfg.Title,
			Start:      parseBound(cfg.Start),
			End:        parseBound(cfg.End),
			OutputPath: cfg.OutputPath,
		})
	default:
		_, err = renderer.IntradayPlot(candles, barSize, &chart.IntradayPlotOptions{
			Title:      cfg.Title,
			Start:      parseBound(cfg.Start),
			End:        parseBound(cfg.End),
			OutputPath: cfg.OutputPath,
		})
	}
	if err != nil {
		logger.Error().Err(err).Msg("rendering chart")
		return
	}

	logger.Info().Str("output", cfg.OutputPath).Msg("chart rendered")
}

package shared

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the format layout for parsing timestamped dates.
	DateLayout = "2006-01-02 15:04:05"
	// DayLayout is the format layout for parsing day-only dates.
	DayLayout = "2006-01-02"
)

// BarSize represents the time span aggregated into one plotted bar.
type BarSize int

const (
	OneMinute BarSize = iota
	FiveMinute
	FifteenMinute
	OneDay
)

// ParseBarSize parses the provided bar size token. Tokens are matched
// case-insensitively.
func ParseBarSize(token string) (BarSize, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "1min":
		return OneMinute, nil
	case "5min":
		return FiveMinute, nil
	case "15min":
		return FifteenMinute, nil
	case "1d":
		return OneDay, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedBarSize, token)
	}
}

// String stringifies the provided bar size.
func (b BarSize) String() string {
	switch b {
	case OneMinute:
		return "1Min"
	case FiveMinute:
		return "5Min"
	case FifteenMinute:
		return "15Min"
	case OneDay:
		return "1D"
	default:
		return "unknown"
	}
}

// Minutes returns the number of minutes spanned by one bar of the provided size.
func (b BarSize) Minutes() (int, error) {
	switch b {
	case OneMinute:
		return 1, nil
	case FiveMinute:
		return 5, nil
	case FifteenMinute:
		return 15, nil
	case OneDay:
		return 24 * 60, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBarSize, b)
	}
}

// Duration returns the bucket duration for the provided bar size.
func (b BarSize) Duration() (time.Duration, error) {
	minutes, err := b.Minutes()
	if err != nil {
		return 0, err
	}

	return time.Duration(minutes) * time.Minute, nil
}

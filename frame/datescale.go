package frame

import (
	"math"
	"time"
)

// DateScale identifies the numeric representation used for plotted dates.
// The two scales are not interchangeable; tables and axes built on one must
// not be mixed with the other.
type DateScale int

const (
	// UnixSeconds maps dates to seconds since the unix epoch.
	UnixSeconds DateScale = iota
	// OrdinalDays maps dates to proleptic gregorian day numbers, day one
	// being january 1st of year 1.
	OrdinalDays
)

const (
	// ordinalEpochSeconds is the unix time of 0001-01-01 00:00:00 UTC.
	ordinalEpochSeconds = -62135596800
	// secondsPerDay is the number of seconds in a day.
	secondsPerDay = 86400
)

// String stringifies the provided date scale.
func (s DateScale) String() string {
	switch s {
	case OrdinalDays:
		return "ordinal-days"
	default:
		return "unix-seconds"
	}
}

// FromTime converts the provided date to its numeric axis representation.
// Ordinal day values carry no intraday fraction.
func (s DateScale) FromTime(t time.Time) float64 {
	switch s {
	case OrdinalDays:
		return math.Floor(float64(t.Unix()-ordinalEpochSeconds)/secondsPerDay) + 1
	default:
		return float64(t.Unix())
	}
}

// ToTime converts the provided numeric axis value back to a date.
func (s DateScale) ToTime(v float64) time.Time {
	switch s {
	case OrdinalDays:
		return time.Unix(ordinalEpochSeconds+(int64(v)-1)*secondsPerDay, 0).UTC()
	default:
		return time.Unix(int64(v), 0).UTC()
	}
}

// UnitsPerDay returns the number of axis units spanning one day on the
// provided scale.
func (s DateScale) UnitsPerDay() float64 {
	switch s {
	case OrdinalDays:
		return 1
	default:
		return secondsPerDay
	}
}

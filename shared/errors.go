package shared

import "errors"

var (
	// ErrUnsupportedBarSize is returned when a bar size token has no plot parameters.
	ErrUnsupportedBarSize = errors.New("unsupported bar size")
	// ErrUnsupportedSchema is returned when an input table cannot be matched to a known schema mode.
	ErrUnsupportedSchema = errors.New("unsupported table schema")
	// ErrBadDate is returned when a date value is missing or malformed.
	ErrBadDate = errors.New("missing or malformed date")
	// ErrMixedScales is returned when plot data and axis configuration use different numeric date scales.
	ErrMixedScales = errors.New("mixed date scales")
)

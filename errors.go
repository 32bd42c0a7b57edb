package histview

import "errors"

var (
	// ErrEmptySample is returned when a chart or summary is requested for
	// a sample with no elements.
	ErrEmptySample = errors.New("histview: empty sample")

	// ErrDegenerateSample is returned when every sample value is equal and
	// the selected bin rule cannot derive a positive bin count from the
	// value range.
	ErrDegenerateSample = errors.New("histview: all sample values are equal")

	// ErrDegenerateScale is returned when no bin holds a single value, which
	// would make the vertical pixels-per-count factor a division by zero.
	ErrDegenerateScale = errors.New("histview: histogram has no occupied bin")

	// ErrEmptyRange is returned by Normalize when the source range has zero
	// extent.
	ErrEmptyRange = errors.New("histview: source range is empty")

	// ErrInvalidSize is returned when the chart area is not a positive
	// number of pixels on both axes.
	ErrInvalidSize = errors.New("histview: chart width and height must be positive")
)

// ErrorHandler is a function that can be used to override how construction
// failures are surfaced. When an ErrorHandler is passed as an option to New,
// every error detected during construction is passed to this function, which
// can log it, wrap it, or replace it.
//
// Whatever the ErrorHandler returns is returned as-is to the caller of New;
// returning nil discards the error but construction still yields no chart.
type ErrorHandler func(err error) error

type errorCallback struct {
	fn ErrorHandler
}

// ErrLogger passes construction errors through fn before they are returned.
func ErrLogger(fn ErrorHandler) interface {
	ChartOption
} {
	return errorCallback{fn}
}

func (ec errorCallback) setChartOpt(co *chartOpts) {
	co.errorHandler = ec.fn
}

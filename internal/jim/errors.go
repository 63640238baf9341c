package jim

import (
	"errors"
	"fmt"

	"chart-manifest/internal/manifest"
)

// ErrNoData indicates an external-data manifest was given no data table.
var ErrNoData = errors.New("interaction map cannot be created without external or inline chart data")

// ErrFatal marks configuration errors that indicate a code/schema mismatch.
var ErrFatal = errors.New("fatal configuration error")

// UnmappedChartTypeError reports a chart type missing from the series-type table.
type UnmappedChartTypeError struct {
	ChartType manifest.ChartType
}

func (e *UnmappedChartTypeError) Error() string {
	return fmt.Sprintf("chart type %q has no series type mapping", e.ChartType)
}

func (e *UnmappedChartTypeError) Unwrap() error {
	return ErrFatal
}

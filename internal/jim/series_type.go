package jim

import "chart-manifest/internal/manifest"

// SeriesType is the simplified chart-type classification of a projected series.
type SeriesType string

const (
	SeriesColumn SeriesType = "column"
	SeriesLine   SeriesType = "line"
	SeriesOther  SeriesType = "other"
)

// SeriesTypeFor maps a chart type to its series type by chart family.
func SeriesTypeFor(ct manifest.ChartType) (SeriesType, error) {
	switch {
	case ct.IsBar():
		return SeriesColumn, nil
	case ct.IsLine():
		return SeriesLine, nil
	case ct.IsScatter(), ct.IsPastry():
		return SeriesOther, nil
	default:
		return "", &UnmappedChartTypeError{ChartType: ct}
	}
}

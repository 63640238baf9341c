package jim

import (
	"fmt"

	"chart-manifest/internal/ident"
	"chart-manifest/internal/manifest"
)

//go:generate go tool stringer -type=Strategy -linecomment -output=strategy_string.go

// Strategy selects how datapoint selectors are keyed.
type Strategy int

const (
	_ Strategy = iota

	// StrategyAligned keys datapoints by the x value shared across series.
	StrategyAligned // aligned
	// StrategyUnaligned keys datapoints by their own x, y and series.
	StrategyUnaligned // unaligned
)

const (
	titleSelectorKey = "chartTitle"
	titleDOM         = "#chart-title"
	titlePath        = "$.datasets[0].title"
)

// SelectStrategy picks the strategy matching the alignment of data.
func SelectStrategy(data manifest.SeriesData) Strategy {
	if IsAligned(data) {
		return StrategyAligned
	}

	return StrategyUnaligned
}

// Build produces the selector table for data. Both strategies start with
// the chart title entry and number datapoints with one global counter.
func (s Strategy) Build(data manifest.SeriesData) *SelectorTable {
	table := NewSelectorTable()
	table.Set(titleSelectorKey, Selector{DOM: titleDOM, JSON: Paths{titlePath}})

	switch s {
	case StrategyAligned:
		buildAligned(table, data)
	case StrategyUnaligned:
		buildUnaligned(table, data)
	}

	return table
}

func buildAligned(table *SelectorTable, data manifest.SeriesData) {
	if len(data) == 0 {
		return
	}

	xs := collectXs(data[0].Records)
	counter := 1

	for seriesIndex, series := range data {
		positions := make(map[string]int, len(series.Records))
		for i, r := range series.Records {
			positions[r.X] = i
		}

		for _, x := range xs {
			dom := fmt.Sprintf("#datapoint-%s_%s", ident.ToID(x), ident.ToID(series.Key))
			table.Set(datapointKey(counter), Selector{
				DOM:  dom,
				JSON: datapointPaths(seriesIndex, positions[x]),
			})
			counter++
		}
	}
}

func buildUnaligned(table *SelectorTable, data manifest.SeriesData) {
	counter := 1

	for seriesIndex, series := range data {
		for pointIndex, r := range series.Records {
			dom := fmt.Sprintf("#datapoint-%s_%s_%s", ident.ToID(r.X), ident.ToID(r.Y), ident.ToID(series.Key))
			table.Set(datapointKey(counter), Selector{
				DOM:  dom,
				JSON: datapointPaths(seriesIndex, pointIndex),
			})
			counter++
		}
	}
}

func datapointKey(n int) string {
	return fmt.Sprintf("datapoint%d", n)
}

func datapointPaths(seriesIndex, pointIndex int) Paths {
	return Paths{
		fmt.Sprintf("$.datasets[0].series[%d].name", seriesIndex),
		fmt.Sprintf("$.datasets[0].series[%d].records[%d].*", seriesIndex, pointIndex),
	}
}

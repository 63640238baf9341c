package merge

import (
	"fmt"
	"slices"

	"github.com/tiendc/go-deepcopy"

	"chart-manifest/internal/ident"
	"chart-manifest/internal/manifest"
)

// Merge attaches data to the primary dataset of a copy of m and returns the
// copy with an inline data reference. m itself is never modified.
func Merge(m *manifest.Manifest, data manifest.ExternalData) (*manifest.Manifest, error) {
	ds, err := m.Primary()
	if err != nil {
		return nil, err
	}

	if ds.Data.IsInline() || (len(ds.Series) > 0 && ds.Series[0].HasRecords()) {
		return nil, ErrAlreadyInline
	}

	if err := ds.CheckUniqueKeys(); err != nil {
		return nil, err
	}

	var merged manifest.Manifest
	if err := deepcopy.Copy(&merged, *m); err != nil {
		return nil, fmt.Errorf("copying manifest: %w", err)
	}

	target := &merged.Datasets[0]
	target.Data = manifest.DataRef{Source: manifest.SourceInline}

	// Sorted so that the reported unknown key does not depend on map order.
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	for _, key := range keys {
		series := target.FindSeries(key)
		if series == nil {
			return nil, &UnknownSeriesError{Key: key, Suggestion: ident.Closest(key, target.SeriesKeys())}
		}

		series.Records = slices.Clone(data[key])
		if series.Records == nil {
			series.Records = []manifest.Datapoint{}
		}
	}

	for i := range target.Series {
		if !target.Series[i].HasRecords() {
			return nil, &MissingDataError{Key: target.Series[i].Key}
		}
	}

	return &merged, nil
}

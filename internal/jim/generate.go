package jim

import (
	"maps"
	"slices"

	"chart-manifest/internal/manifest"
	"chart-manifest/internal/merge"
)

// Generate builds the interaction map of m's primary dataset. Inline records
// are used when present; otherwise external is merged in first.
func Generate(m *manifest.Manifest, external manifest.ExternalData) (*Jim, error) {
	ds, err := m.Primary()
	if err != nil {
		return nil, err
	}

	source := m

	if !ds.Data.IsInline() {
		if external == nil {
			return nil, ErrNoData
		}

		source, err = merge.Merge(m, external)
		if err != nil {
			return nil, err
		}

		ds = &source.Datasets[0]
	}

	if err := ds.CheckUniqueKeys(); err != nil {
		return nil, err
	}

	seriesType, err := SeriesTypeFor(ds.Type)
	if err != nil {
		return nil, err
	}

	data, err := manifest.DataFromManifest(source)
	if err != nil {
		return nil, err
	}

	projected := Dataset{
		Title:  ds.Title,
		Facets: maps.Clone(ds.Facets),
		Series: make([]Series, 0, len(data)),
	}

	for _, sr := range data {
		records := slices.Clone(sr.Records)
		if records == nil {
			records = []manifest.Datapoint{}
		}

		projected.Series = append(projected.Series, Series{
			Name:    sr.Key,
			Type:    seriesType,
			Records: records,
		})
	}

	return &Jim{
		Dataset:   projected,
		Selectors: SelectStrategy(data).Build(data),
	}, nil
}

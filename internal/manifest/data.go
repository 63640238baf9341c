package manifest

// ExternalData maps a series key to its ordered records, as supplied by an
// external data table.
type ExternalData map[string][]Datapoint

// SeriesRecords pairs a series key with its ordered records.
type SeriesRecords struct {
	Key     string
	Records []Datapoint
}

// SeriesData is per-series data in manifest series order.
type SeriesData []SeriesRecords

// Keys returns the series keys in order.
func (sd SeriesData) Keys() []string {
	keys := make([]string, len(sd))
	for i := range sd {
		keys[i] = sd[i].Key
	}

	return keys
}

// Len returns the total number of datapoints across all series.
func (sd SeriesData) Len() int {
	n := 0
	for i := range sd {
		n += len(sd[i].Records)
	}

	return n
}

// DataFromManifest extracts the primary dataset's inline records in series order.
func DataFromManifest(m *Manifest) (SeriesData, error) {
	ds, err := m.Primary()
	if err != nil {
		return nil, err
	}

	if !ds.Data.IsInline() {
		return nil, ErrNotInline
	}

	data := make(SeriesData, 0, len(ds.Series))
	for i := range ds.Series {
		data = append(data, SeriesRecords{Key: ds.Series[i].Key, Records: ds.Series[i].Records})
	}

	return data, nil
}

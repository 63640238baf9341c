package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Manifest is the root chart description document.
type Manifest struct {
	// Datasets holds at least one dataset; the first is the primary one.
	Datasets []Dataset `json:"datasets"`
}

// Dataset describes one chart: its facets, its series and where its data lives.
type Dataset struct {
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle,omitempty"`
	Source   *Source          `json:"source,omitempty"`
	Type     ChartType        `json:"type"`
	Facets   map[string]Facet `json:"facets"`
	Series   []Series         `json:"series"`
	Data     DataRef          `json:"data"`
}

// Source credits the origin of a dataset.
type Source struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// VariableType is the role of a facet.
type VariableType string

const (
	VariableIndependent VariableType = "independent"
	VariableDependent   VariableType = "dependent"
)

// Facet is a named axis or variable descriptor.
type Facet struct {
	Label        string       `json:"label"`
	VariableType VariableType `json:"variableType,omitempty"`
	Datatype     string       `json:"datatype,omitempty"`
}

// Series is a named, ordered sequence of datapoints.
// Records is nil until data has been inlined.
type Series struct {
	Key     string      `json:"key"`
	Records []Datapoint `json:"records,omitempty"`
}

// MarshalJSON omits records only while they are nil, so an empty merged
// series stays distinguishable from one awaiting data.
func (s Series) MarshalJSON() ([]byte, error) {
	type series struct {
		Key     string       `json:"key"`
		Records *[]Datapoint `json:"records,omitempty"`
	}

	out := series{Key: s.Key}
	if s.Records != nil {
		out.Records = &s.Records
	}

	return json.Marshal(out)
}

// HasRecords reports whether the series carries embedded records.
func (s *Series) HasRecords() bool {
	return s.Records != nil
}

// Datapoint is a single observation in its display form.
type Datapoint struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// DataSource tells whether a dataset embeds its records.
type DataSource string

const (
	SourceInline   DataSource = "inline"
	SourceExternal DataSource = "external"
)

// DataFormat is the serialization of an external data table.
type DataFormat string

const (
	FormatCSV  DataFormat = "csv"
	FormatJSON DataFormat = "json"
	FormatYAML DataFormat = "yaml"
	FormatXLSX DataFormat = "xlsx"
)

// DataRef locates a dataset's records: inline XOR external.
type DataRef struct {
	Source DataSource `json:"source"`
	URL    string     `json:"url,omitempty"`
	Format DataFormat `json:"format,omitempty"`
}

// IsInline reports whether records are embedded in the series.
func (d DataRef) IsInline() bool {
	return d.Source == SourceInline
}

// Validate checks that the reference is exactly one of inline or external.
func (d DataRef) Validate() error {
	switch d.Source {
	case SourceInline:
		if d.URL != "" || d.Format != "" {
			return errors.New("inline data reference must not carry url or format")
		}
	case SourceExternal:
		if d.URL == "" {
			return errors.New("external data reference requires url")
		}
	default:
		return fmt.Errorf("unknown data source %q", d.Source)
	}

	return nil
}

// Primary returns the first dataset of the manifest.
func (m *Manifest) Primary() (*Dataset, error) {
	if m == nil || len(m.Datasets) == 0 {
		return nil, ErrNoDatasets
	}

	return &m.Datasets[0], nil
}

// SeriesKeys returns the dataset's series keys in manifest order.
func (d *Dataset) SeriesKeys() []string {
	keys := make([]string, len(d.Series))
	for i := range d.Series {
		keys[i] = d.Series[i].Key
	}

	return keys
}

// FindSeries returns the first series with the given key, or nil.
func (d *Dataset) FindSeries(key string) *Series {
	for i := range d.Series {
		if d.Series[i].Key == key {
			return &d.Series[i]
		}
	}

	return nil
}

// CheckUniqueKeys fails with a DuplicateSeriesError when two series share a key.
func (d *Dataset) CheckUniqueKeys() error {
	seen := make(map[string]struct{}, len(d.Series))
	for i := range d.Series {
		key := d.Series[i].Key
		if _, ok := seen[key]; ok {
			return &DuplicateSeriesError{Key: key}
		}

		seen[key] = struct{}{}
	}

	return nil
}

package manifest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inlineManifest = `{
  "datasets": [{
    "title": "Quarterly sales",
    "type": "line",
    "facets": {
      "x": {"label": "Quarter", "variableType": "independent", "datatype": "string"},
      "y": {"label": "Sales", "variableType": "dependent", "datatype": "number"}
    },
    "series": [
      {"key": "North", "records": [{"x": "Q1", "y": "10"}, {"x": "Q2", "y": "12"}]},
      {"key": "South", "records": [{"x": "Q1", "y": "7"}, {"x": "Q2", "y": "9"}]}
    ],
    "data": {"source": "inline"}
  }]
}`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(inlineManifest))
	require.NoError(t, err)

	ds, err := m.Primary()
	require.NoError(t, err)

	assert.Equal(t, "Quarterly sales", ds.Title)
	assert.Equal(t, ChartLine, ds.Type)
	assert.Equal(t, VariableIndependent, ds.Facets["x"].VariableType)
	assert.Equal(t, []string{"North", "South"}, ds.SeriesKeys())
	assert.True(t, ds.Data.IsInline())

	require.Len(t, ds.Series[0].Records, 2)
	assert.Equal(t, Datapoint{X: "Q2", Y: "12"}, ds.Series[0].Records[1])
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`{"datasets": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest JSON")
}

func TestPrimary_NoDatasets(t *testing.T) {
	m, err := Parse([]byte(`{"datasets": []}`))
	require.NoError(t, err)

	_, err = m.Primary()
	require.ErrorIs(t, err, ErrNoDatasets)

	var nilManifest *Manifest
	_, err = nilManifest.Primary()
	require.ErrorIs(t, err, ErrNoDatasets)
}

func TestWriteFileAndLoadFile(t *testing.T) {
	ctx := context.Background()

	m, err := Parse([]byte(inlineManifest))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, WriteFile(ctx, m, path, true))

	loaded, err := LoadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, m, loaded)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(context.Background(), filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestDataFromManifest(t *testing.T) {
	m, err := Parse([]byte(inlineManifest))
	require.NoError(t, err)

	data, err := DataFromManifest(m)
	require.NoError(t, err)

	assert.Equal(t, []string{"North", "South"}, data.Keys())
	assert.Equal(t, 4, data.Len())

	m.Datasets[0].Data = DataRef{Source: SourceExternal, URL: "data.csv", Format: FormatCSV}
	_, err = DataFromManifest(m)
	require.ErrorIs(t, err, ErrNotInline)
}

func TestCheckUniqueKeys(t *testing.T) {
	ds := &Dataset{Series: []Series{{Key: "a"}, {Key: "b"}}}
	require.NoError(t, ds.CheckUniqueKeys())

	ds.Series = append(ds.Series, Series{Key: "a"})

	var dup *DuplicateSeriesError
	require.ErrorAs(t, ds.CheckUniqueKeys(), &dup)
	assert.Equal(t, "a", dup.Key)
	assert.Same(t, &ds.Series[1], ds.FindSeries("b"))
	assert.Nil(t, ds.FindSeries("c"))
}

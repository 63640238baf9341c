package validate

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"chart-manifest/internal/jim"
	"chart-manifest/internal/localize"
	"chart-manifest/internal/manifest"
	"chart-manifest/internal/schema"
)

func sampleManifest() *manifest.Manifest {
	return &manifest.Manifest{
		Datasets: []manifest.Dataset{{
			Title: "Rainfall",
			Type:  manifest.ChartLine,
			Facets: map[string]manifest.Facet{
				"x": {Label: "Month", VariableType: manifest.VariableIndependent},
				"y": {Label: "mm", VariableType: manifest.VariableDependent},
			},
			Series: []manifest.Series{
				{Key: "A", Records: []manifest.Datapoint{{X: "1", Y: "2"}}},
				{Key: "B", Records: []manifest.Datapoint{{X: "1", Y: "3"}}},
			},
			Data: manifest.DataRef{Source: manifest.SourceInline},
		}},
	}
}

func newValidator(t *testing.T, opts ...Option) *Validator {
	t.Helper()

	v, err := New(schema.NewRegistry(), opts...)
	require.NoError(t, err)

	return v
}

func TestValidate_Bare(t *testing.T) {
	v := newValidator(t)

	res, err := v.Validate(context.Background(), sampleManifest(), schema.KindAuto)
	require.NoError(t, err)
	assert.Equal(t, Result{Valid: true}, res)

	res, err = v.Validate(context.Background(), sampleManifest(), schema.KindBare)
	require.NoError(t, err)
	assert.True(t, res.Valid)
}

func TestValidate_Enveloped(t *testing.T) {
	v := newValidator(t)
	m := sampleManifest()

	j, err := jim.Generate(m, nil)
	require.NoError(t, err)

	env := jim.NewEnvelope(m, j)

	res, err := v.Validate(context.Background(), env, schema.KindAuto)
	require.NoError(t, err)
	assert.True(t, res.Valid, res.Diagnostic)

	res, err = v.Validate(context.Background(), env, schema.KindBare)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Diagnostic, "Error Keyword: additionalProperties")

	res, err = v.Validate(context.Background(), m, schema.KindEnveloped)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Diagnostic, "Error Keyword: required")
	assert.Contains(t, res.Diagnostic, "Missing required properties: jim")
}

func TestValidate_DiagnosticFields(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		keyword string
		path    string
	}{
		{
			name:    "missing title",
			doc:     `{"datasets":[{"type":"line","facets":{"x":{"label":"X"}},"series":[{"key":"A"}],"data":{"source":"inline"}}]}`,
			keyword: "required",
			path:    "Error Path: $.datasets[0]",
		},
		{
			name:    "bad chart type",
			doc:     `{"datasets":[{"title":"t","type":"radar","facets":{"x":{"label":"X"}},"series":[{"key":"A"}],"data":{"source":"inline"}}]}`,
			keyword: "enum",
			path:    "Error Path: $.datasets[0].type",
		},
		{
			name:    "numeric y",
			doc:     `{"datasets":[{"title":"t","type":"bar","facets":{"x":{"label":"X"}},"series":[{"key":"A","records":[{"x":"1","y":2}]}],"data":{"source":"inline"}}]}`,
			keyword: "type",
			path:    "Error Path: $.datasets[0].series[0].records[0].y",
		},
		{
			name:    "facet key with percent sign",
			doc:     `{"datasets":[{"title":"t","type":"bar","facets":{"growth %":{}},"series":[{"key":"A"}],"data":{"source":"inline"}}]}`,
			keyword: "required",
			path:    "Error Path: $.datasets[0].facets['growth %']",
		},
		{
			name:    "facet key that looks percent-encoded",
			doc:     `{"datasets":[{"title":"t","type":"bar","facets":{"a%20b":{}},"series":[{"key":"A"}],"data":{"source":"inline"}}]}`,
			keyword: "required",
			path:    "Error Path: $.datasets[0].facets['a%20b']",
		},
		{
			name:    "no datasets",
			doc:     `{}`,
			keyword: "required",
			path:    "Error Path: $",
		},
	}

	v := newValidator(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := v.ValidateBytes(context.Background(), []byte(tt.doc), schema.KindAuto)
			require.NoError(t, err)
			require.False(t, res.Valid)

			assert.Contains(t, res.Diagnostic, "Error Keyword: "+tt.keyword)
			assert.Contains(t, res.Diagnostic, "Schema Path: $")
			assert.Contains(t, res.Diagnostic, tt.path)
			assert.NotContains(t, res.Diagnostic, localize.PathErrorPrefix)
			assert.NotContains(t, res.Diagnostic, "Error Instance: null")
		})
	}
}

func TestValidateBytes_Malformed(t *testing.T) {
	v := newValidator(t)

	_, err := v.ValidateBytes(context.Background(), []byte(`{"datasets":`), schema.KindAuto)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest JSON")
}

func TestValidate_Canceled(t *testing.T) {
	v := newValidator(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := v.Validate(ctx, sampleManifest(), schema.KindAuto)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestValidateFullOutput(t *testing.T) {
	v := newValidator(t)

	id, out, err := v.ValidateFullOutput(context.Background(), map[string]any{"datasets": []any{}}, schema.KindAuto)
	require.NoError(t, err)
	assert.Equal(t, schema.BareSchemaID, id)
	assert.False(t, out.Valid)

	last, ok := out.Last()
	require.True(t, ok)
	assert.Equal(t, "minItems", last.Keyword)
	assert.Equal(t, "#/datasets", last.InstanceLocation)
}

func TestValidate_Logs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	v := newValidator(t, WithLogger(zap.New(core)))

	_, err := v.Validate(context.Background(), sampleManifest(), schema.KindAuto)
	require.NoError(t, err)

	entries := logs.FilterMessage("validated document").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "bare", entries[0].ContextMap()["kind"])
	assert.Equal(t, true, entries[0].ContextMap()["valid"])
}

func TestValidate_SharedRegistry(t *testing.T) {
	reg := schema.NewRegistry()

	var wg sync.WaitGroup

	for i := 0; i < 4; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			v, err := New(reg)
			if !assert.NoError(t, err) {
				return
			}

			res, err := v.Validate(context.Background(), sampleManifest(), schema.KindAuto)
			assert.NoError(t, err)
			assert.True(t, res.Valid)
		}()
	}

	wg.Wait()
}

func TestValidate_StableDiagnostic(t *testing.T) {
	doc := []byte(`{"datasets":[{"title":5,"subtitle":6,"type":"radar","facets":{"x":{}},"series":[{"key":""}],"data":{"source":"inline"}}]}`)
	v := newValidator(t)

	first, err := v.ValidateBytes(context.Background(), doc, schema.KindAuto)
	require.NoError(t, err)
	require.False(t, first.Valid)
	assert.Contains(t, first.Diagnostic, "Error Keyword: minLength")
	assert.Contains(t, first.Diagnostic, "Error Path: $.datasets[0].series[0].key")

	for i := 0; i < 30; i++ {
		res, err := v.ValidateBytes(context.Background(), doc, schema.KindAuto)
		require.NoError(t, err)
		require.Equal(t, first, res)
	}
}

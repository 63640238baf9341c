package datatable

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"chart-manifest/internal/manifest"
)

// Column names of tabular sources.
const (
	ColumnSeries = "series"
	ColumnX      = "x"
	ColumnY      = "y"
)

// Load reads the table at url. An empty format is inferred from the
// extension.
func Load(ctx context.Context, url string, format manifest.DataFormat) (manifest.ExternalData, error) {
	if format == "" {
		var err error

		format, err = FormatFromURL(url)
		if err != nil {
			return nil, err
		}
	}

	data, err := afs.New().DownloadWithURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to read data table %s: %w", url, err)
	}

	table, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}

	return table, nil
}

// FormatFromURL infers the format from the extension of url.
func FormatFromURL(url string) (manifest.DataFormat, error) {
	switch ext := strings.ToLower(path.Ext(url)); ext {
	case ".json":
		return manifest.FormatJSON, nil
	case ".yaml", ".yml":
		return manifest.FormatYAML, nil
	case ".csv":
		return manifest.FormatCSV, nil
	case ".xlsx":
		return manifest.FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
	}
}

// Decode parses data in the given format.
func Decode(data []byte, format manifest.DataFormat) (manifest.ExternalData, error) {
	switch format {
	case manifest.FormatJSON:
		var table manifest.ExternalData
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("failed to parse JSON data table: %w", err)
		}

		return table, nil
	case manifest.FormatYAML:
		var table manifest.ExternalData
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("failed to parse YAML data table: %w", err)
		}

		return table, nil
	case manifest.FormatCSV:
		r := csv.NewReader(bytes.NewReader(data))
		r.FieldsPerRecord = -1
		r.TrimLeadingSpace = true

		rows, err := r.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV data table: %w", err)
		}

		return fromRows(rows)
	case manifest.FormatXLSX:
		return decodeXLSX(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func decodeXLSX(data []byte) (manifest.ExternalData, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	return fromRows(rows)
}

// fromRows converts a header row plus records into per-series data. Rows
// keep their order within each series. Blank rows are skipped.
func fromRows(rows [][]string) (manifest.ExternalData, error) {
	if len(rows) == 0 {
		return nil, &MissingColumnError{Column: ColumnSeries}
	}

	index := map[string]int{}
	for i, name := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	cols := make([]int, 0, 3)

	for _, name := range []string{ColumnSeries, ColumnX, ColumnY} {
		i, ok := index[name]
		if !ok {
			return nil, &MissingColumnError{Column: name}
		}

		cols = append(cols, i)
	}

	table := manifest.ExternalData{}

	for n, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		key := cell(row, cols[0])
		if key == "" {
			return nil, fmt.Errorf("row %d: empty series key", n+2)
		}

		table[key] = append(table[key], manifest.Datapoint{X: cell(row, cols[1]), Y: cell(row, cols[2])})
	}

	return table, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}

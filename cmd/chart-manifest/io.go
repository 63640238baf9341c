package main

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"

	"chart-manifest/internal/datatable"
	"chart-manifest/internal/manifest"
)

// loadExternal reads the data table for ds. An explicit url wins over the
// dataset's own reference, which is resolved relative to the manifest.
func loadExternal(ctx context.Context, manifestURL, url string, ds *manifest.Dataset) (manifest.ExternalData, error) {
	var format manifest.DataFormat

	if url == "" {
		if ds.Data.IsInline() {
			return nil, nil
		}

		if err := ds.Data.Validate(); err != nil {
			return nil, err
		}

		url = resolveRelative(manifestURL, ds.Data.URL)
		format = ds.Data.Format
	}

	return datatable.Load(ctx, url, format)
}

func resolveRelative(base, ref string) string {
	if strings.Contains(ref, "://") || path.IsAbs(ref) {
		return ref
	}

	return path.Join(path.Dir(base), ref)
}

func readFile(ctx context.Context, url string) ([]byte, error) {
	data, err := afs.New().DownloadWithURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", url, err)
	}

	return data, nil
}

package manifest

import (
	"errors"
	"fmt"
)

// ErrNoDatasets indicates a manifest without any dataset.
var ErrNoDatasets = errors.New("manifest has no datasets")

// ErrNotInline indicates inline data was requested from an external dataset.
var ErrNotInline = errors.New("only manifests with inline data carry series records")

// DuplicateSeriesError reports a series key used more than once in a dataset.
type DuplicateSeriesError struct {
	Key string
}

func (e *DuplicateSeriesError) Error() string {
	return fmt.Sprintf("series key %q appears more than once in dataset", e.Key)
}

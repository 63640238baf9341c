package merge

import (
	"errors"
	"fmt"
)

// ErrAlreadyInline indicates the manifest already embeds its records.
var ErrAlreadyInline = errors.New("cannot inline data into manifest which already has inline data")

// UnknownSeriesError reports a data series absent from the manifest.
type UnknownSeriesError struct {
	Key string
	// Suggestion is the closest manifest series key, if any.
	Suggestion string
}

func (e *UnknownSeriesError) Error() string {
	msg := fmt.Sprintf("series key %q is missing in manifest", e.Key)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}

	return msg
}

// MissingDataError reports a manifest series that received no records.
type MissingDataError struct {
	Key string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("series key %q is missing in data", e.Key)
}

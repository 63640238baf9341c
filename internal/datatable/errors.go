package datatable

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat indicates a format that is neither given nor inferable.
var ErrUnknownFormat = errors.New("unknown data table format")

// MissingColumnError reports a tabular source without a required column.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("data table has no %q column", e.Column)
}

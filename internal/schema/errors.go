package schema

import (
	"errors"
	"fmt"
)

// ErrMissingID indicates a schema document without a string "$id".
var ErrMissingID = errors.New("schema document has no $id")

// NotRegisteredError reports validation against an unknown schema id.
type NotRegisteredError struct {
	ID string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("schema %q is not registered", e.ID)
}

package localize

import "fmt"

// PathEvaluationError reports a location that could not be translated or
// queried.
type PathEvaluationError struct {
	Path string
	Err  error
}

func (e *PathEvaluationError) Error() string {
	return fmt.Sprintf("evaluating %q: %v", e.Path, e.Err)
}

func (e *PathEvaluationError) Unwrap() error {
	return e.Err
}

package localize

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
)

// Querier looks up the subtrees of doc matched by a JSONPath expression.
type Querier interface {
	Query(doc any, path string) ([]any, error)
}

// JSONPath is the default Querier.
type JSONPath struct{}

var _ Querier = JSONPath{}

// Query parses path and evaluates it against doc.
func (JSONPath) Query(doc any, path string) (matches []any, err error) {
	expr, err := jp.ParseString(path)
	if err != nil {
		return nil, &PathEvaluationError{Path: path, Err: err}
	}

	defer func() {
		if r := recover(); r != nil {
			matches = nil
			err = &PathEvaluationError{Path: path, Err: fmt.Errorf("%v", r)}
		}
	}()

	return expr.Get(doc), nil
}

package schema

// Output is the flattened result of validating one instance.
type Output struct {
	Valid bool
	// Errors lists failures in depth-first order; the last one is the most
	// specific.
	Errors []OutputUnit
}

// OutputUnit is one failure of the validation trace.
type OutputUnit struct {
	// Keyword is the failing keyword, e.g. "required".
	Keyword string
	// AbsoluteKeywordLocation is "<schema id>#<json pointer to keyword>".
	AbsoluteKeywordLocation string
	// InstanceLocation is "#<json pointer to value>".
	InstanceLocation string
	// Message is the engine's own description of the failure.
	Message string
}

// Last returns the most specific failure, if any.
func (o *Output) Last() (OutputUnit, bool) {
	if o == nil || len(o.Errors) == 0 {
		return OutputUnit{}, false
	}

	return o.Errors[len(o.Errors)-1], true
}

// Engine is the structural JSON-Schema checker consumed by the validator.
type Engine interface {
	// Register adds a schema document and returns its id. Registering an id
	// twice is a no-op.
	Register(doc any) (string, error)
	// Has reports whether id is registered.
	Has(id string) bool
	// Document returns the registered document for id.
	Document(id string) (any, bool)
	// Validate checks instance against schema id, accumulating a full trace.
	Validate(id string, instance any) (*Output, error)
}

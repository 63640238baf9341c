package localize

import (
	"slices"
	"strings"

	"chart-manifest/internal/common"
	"chart-manifest/internal/diagnostic"
	"chart-manifest/internal/schema"
)

// PathErrorPrefix starts every diagnostic produced when a location cannot
// be resolved.
const PathErrorPrefix = "Error in JSONPath when attempting to pretty print validation error: "

// Localize describes the last failure in out. instance is the validated
// document and schemaDoc the registered schema out was produced against.
// Lookup failures are reported in the returned text.
func Localize(instance any, out *schema.Output, schemaDoc any, q Querier) string {
	last, ok := out.Last()
	if !ok {
		return ""
	}

	report, err := Report(instance, last, schemaDoc, q)
	if err != nil {
		return PathErrorPrefix + err.Error()
	}

	return report.String()
}

// Report resolves unit against both documents.
func Report(instance any, unit schema.OutputUnit, schemaDoc any, q Querier) (diagnostic.Report, error) {
	_, fragment, _ := strings.Cut(unit.AbsoluteKeywordLocation, "#")

	schemaPath, err := ToJSONPath("#" + fragment)
	if err != nil {
		return diagnostic.Report{}, &PathEvaluationError{Path: unit.AbsoluteKeywordLocation, Err: err}
	}

	instancePath, err := ToJSONPath(unit.InstanceLocation)
	if err != nil {
		return diagnostic.Report{}, &PathEvaluationError{Path: unit.InstanceLocation, Err: err}
	}

	subschema, err := q.Query(schemaDoc, schemaPath)
	if err != nil {
		return diagnostic.Report{}, err
	}

	offending, err := q.Query(instance, instancePath)
	if err != nil {
		return diagnostic.Report{}, err
	}

	report := diagnostic.Report{
		Keyword:      unit.Keyword,
		Schema:       single(subschema),
		SchemaPath:   schemaPath,
		Instance:     single(offending),
		InstancePath: instancePath,
	}

	if unit.Keyword == "required" {
		report.Missing = missingRequired(report.Schema, report.Instance)
	}

	return report, nil
}

// single unwraps a one-element match list.
func single(matches []any) any {
	if common.IsSingle(matches) {
		v, _ := common.First(matches)
		return v
	}

	return matches
}

// missingRequired lists, in required order, the names absent from instance.
func missingRequired(required, instance any) []string {
	names, ok := required.([]any)
	if !ok {
		return nil
	}

	obj, _ := instance.(map[string]any)

	var missing []string

	for _, n := range names {
		name, ok := n.(string)
		if !ok {
			continue
		}

		if _, present := obj[name]; !present && !slices.Contains(missing, name) {
			missing = append(missing, name)
		}
	}

	return missing
}

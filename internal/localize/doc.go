// Package localize turns a failed schema validation into a readable
// diagnostic pointing at both the offending subschema and the offending
// part of the document.
package localize

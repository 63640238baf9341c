// Package schema owns the JSON Schemas a manifest is validated against.
//
// It provides:
//   - Registry: an explicit, idempotent schema registry with lazy,
//     memoized compilation (backed by santhosh-tekuri/jsonschema)
//   - Bundle: a build-time bundler that inlines relative "$ref" files and
//     hoists their "$defs" into the parent document
//   - Kind: the bare / enveloped schema selector
//
// Validation results are reported as a flat Output whose last unit is the
// most specific failure.
package schema

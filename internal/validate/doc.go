// Package validate checks manifests against the embedded schemas and
// localizes the first actionable failure.
package validate

// Package diagnostic formats validation failures for humans.
//
// Key capabilities:
//   - Report: the multi-line description of one localized schema failure
//   - Diagnostics: per-file errors and warnings collected by the CLI
package diagnostic

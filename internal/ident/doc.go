// Package ident provides identifier normalization and fuzzy comparison for
// series keys, datapoint values and DOM ids.
//
// Key functions:
//   - ToID: collapses a free-form string into a lowercase DOM-safe id
//   - NormalizeKey: folds a series key for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Closest: picks the most similar candidate for "did you mean" hints
package ident

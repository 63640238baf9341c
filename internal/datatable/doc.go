// Package datatable reads external series data referenced by a manifest.
//
// Supported formats:
//   - json and yaml: a mapping from series key to a list of {x, y} records
//   - csv and xlsx: a table with "series", "x" and "y" columns, one record per
//     row; for xlsx the first sheet is read
package datatable

// Package merge reunifies a manifest that references external data with an
// externally supplied data table, producing a self-contained manifest.
//
// Merging is one-way: a manifest that already embeds records is rejected
// rather than overwritten, and the manifest (not the data) is authoritative
// for the complete series list.
package merge

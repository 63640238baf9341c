// Package jim generates interaction maps: documents that pair every rendered
// datapoint of a chart with the JSON path that produced it and the DOM
// selector that displays it.
//
// Generation pipeline:
//  1. Resolve per-series data (inline records, or external data merged in)
//  2. Project the primary dataset (title, facets, simplified series)
//  3. Classify the series as aligned or unaligned
//  4. Build the selector table with the matching Strategy
//
// When every series shares one duplicate-free set of x values the selectors
// are keyed by x (StrategyAligned); otherwise each datapoint is identified by
// its x, y and series (StrategyUnaligned).
package jim

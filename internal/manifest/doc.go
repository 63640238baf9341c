// Package manifest provides the chart manifest data model, its JSON loader,
// and the chart-type catalogue shared by validation and interaction-map
// generation.
//
// A manifest has the following structure:
//
//	{
//	  "datasets": [{
//	    "title": "Quarterly sales",
//	    "type": "line",
//	    "facets": {
//	      "x": {"label": "Quarter", "variableType": "independent"},
//	      "y": {"label": "Sales", "variableType": "dependent"}
//	    },
//	    "series": [{"key": "North", "records": [{"x": "Q1", "y": "10"}]}],
//	    "data": {"source": "inline"}
//	  }]
//	}
//
// # Data references
//
// A dataset's data is either inline (records embedded in each series) or
// external (a url and format, with no records). Manifest values are treated
// as read-only: every transformation produces a new document.
package manifest

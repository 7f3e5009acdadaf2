// Package sink provides the output adapters for a built [chart.Tree].
//
// # Overview
//
// A "sink" turns the option tree into the form a caller asked for:
//
//   - Structured: the tree itself, or a plain map view via [RenderMap]
//   - JSON: the canonical JSON document via [RenderJSON]
//   - JS: a Highcharts constructor call via [RenderJS]
//
// Basic usage:
//
//	tree, err := chart.Build(tbl, cfg)
//	js, err := sink.RenderJS(tree)
//	// new Highcharts.Chart({"chart":{...},...});
//
// # Encoding
//
// Top-level keys appear in the order chart, colors, legend, series, title,
// xAxis, yAxis. Keys inside override maps are sorted. Point values follow
// [chart.Point.MarshalJSON]: times become epoch milliseconds and NaN becomes
// null.
//
// [chart.Tree]: github.com/matzehuels/tabchart/pkg/chart.Tree
// [chart.Point.MarshalJSON]: github.com/matzehuels/tabchart/pkg/chart.Point.MarshalJSON
package sink

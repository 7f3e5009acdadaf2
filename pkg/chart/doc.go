// Package chart converts a [table.Table] and a [config.Config] into the
// option tree understood by Highcharts.
//
// # Sections
//
// The tree has seven fixed sections, each produced by exactly one builder
// that reads only the table and the configuration:
//
//   - chart: render target, chart type and alignTicks, plus config.chart
//   - colors: the default palette, or config.colors as a whole
//   - legend: enabled by default, plus config.legend
//   - series: one entry per numeric column with [index, value] pairs
//   - title: a placeholder text, plus config.title
//   - xAxis: title, datetime type or sorted categories from the index, plus config.xAxis
//   - yAxis: a primary axis and, when core.secondary_y is set, a percentage
//     axis on the opposite side
//
// Overlays are applied with [Merge]: keys from the configuration replace the
// generated defaults one level deep, unknown keys pass through untouched.
//
// # Usage
//
//	tree, err := chart.Build(tbl, cfg)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(tree.Chart["type"]) // "line"
//
// [Build] never mutates its inputs: the table is deep-copied before the
// builders run and overlay values are deep-copied into the tree.
package chart

// Package pkg provides the core libraries for tabchart.
//
// # Overview
//
// Tabchart converts a table (typed columns plus an ordered index) and a
// declarative chart config into a Highcharts option tree, then renders that
// tree as a structure, a JSON document, or a JavaScript constructor call.
//
// # Architecture
//
// The typical data flow through tabchart:
//
//	CSV / XLSX file          chart.toml / .yaml / .json
//	       ↓                          ↓
//	 [table] package            [config] package
//	       └────────────┬─────────────┘
//	                    ↓
//	   [chart] package (section builders → Tree)
//	                    ↓
//	   [chart/sink] package (map, JSON, JS)
//
// [pipeline] ties the stages together and is the entry point for library
// users:
//
//	tbl, _ := table.ReadFile("sales.csv", table.Options{})
//	cfg, _ := config.Load("chart.toml")
//	out, err := pipeline.Serialize(tbl, cfg, pipeline.OutputTemplated)
//
// # Main Packages
//
//   - [table]: typed columns, kind classification, CSV and XLSX loaders
//   - [config]: chart configuration and its TOML, YAML and JSON loaders
//   - [chart]: option tree types, section builders, override merging
//   - [chart/sink]: output adapters
//   - [pipeline]: output kinds, Serialize, Runner with logging and stats
//   - [errors]: coded errors shared by all packages
//   - [observability]: hooks for build, render and load events
//   - [buildinfo]: version information set at link time
//
// [table]: https://pkg.go.dev/github.com/matzehuels/tabchart/pkg/table
// [config]: https://pkg.go.dev/github.com/matzehuels/tabchart/pkg/config
// [chart]: https://pkg.go.dev/github.com/matzehuels/tabchart/pkg/chart
// [chart/sink]: https://pkg.go.dev/github.com/matzehuels/tabchart/pkg/chart/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tabchart/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/tabchart/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/tabchart/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/tabchart/pkg/buildinfo
package pkg

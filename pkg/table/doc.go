// Package table provides the tabular input consumed by the chart pipeline.
//
// A [Table] is an ordered list of named [Column] values aligned to a shared
// row [Index]. Every column and the index carry a [Kind] tag (numeric,
// temporal or categorical) which is computed once when the table is built,
// so downstream code dispatches on the tag instead of inspecting values.
//
// # Building tables
//
// Tables are built in memory with [New]:
//
//	idx := table.NewIndex("day", []any{3, 1, 2})
//	t, err := table.New(idx,
//	    table.NewColumn("visits", []any{10, 20, 30}),
//	    table.NewColumn("note", []any{"a", "b", "c"}),
//	)
//
// or loaded from files with [ReadCSV], [ReadXLSX] or [ReadFile], which infer
// typed values from text cells.
//
// # Immutability
//
// A Table is treated as read-only once built. [Table.Clone] returns a fully
// independent deep copy and [Table.SortedByIndex] returns a new table, so the
// pipeline never mutates caller-owned data.
package table

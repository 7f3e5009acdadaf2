package table

import (
	"strings"

	apperr "github.com/matzehuels/tabchart/pkg/errors"
)

// Options controls how text records are turned into a table.
type Options struct {
	// IndexColumn names the header used as the row index.
	// Empty selects the first column.
	IndexColumn string

	// Sheet selects the worksheet for XLSX input. Empty selects the first sheet.
	Sheet string
}

// FromRecords builds a table from a header row and text rows.
//
// Rows shorter than the header are padded with empty cells, rows made only
// of empty cells are dropped and rows longer than the header are rejected.
// Each column's values are typed with [InferStrings].
func FromRecords(header []string, rows [][]string, opts Options) (*Table, error) {
	if len(header) == 0 {
		return nil, apperr.New(apperr.ErrCodeInvalidTable, "missing header row")
	}

	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
	}

	indexPos := 0
	if opts.IndexColumn != "" {
		indexPos = -1
		for i, n := range names {
			if n == opts.IndexColumn {
				indexPos = i
				break
			}
		}
		if indexPos < 0 {
			return nil, apperr.New(apperr.ErrCodeInvalidTable, "index column %q not found", opts.IndexColumn)
		}
	}

	cells := make([][]string, len(names))
	for r, row := range rows {
		if len(row) > len(names) {
			return nil, apperr.New(apperr.ErrCodeInvalidTable,
				"row %d has %d cells, header has %d", r+1, len(row), len(names))
		}
		if blank(row) {
			continue
		}
		for c := range names {
			var v string
			if c < len(row) {
				v = row[c]
			}
			cells[c] = append(cells[c], v)
		}
	}

	values, kind := InferStrings(cells[indexPos])
	index := Index{Name: names[indexPos], Kind: kind, Values: values}

	columns := make([]Column, 0, len(names)-1)
	for c, name := range names {
		if c == indexPos {
			continue
		}
		values, kind := InferStrings(cells[c])
		columns = append(columns, Column{Name: name, Kind: kind, Values: values})
	}

	return New(index, columns...)
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

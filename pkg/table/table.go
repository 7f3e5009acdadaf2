package table

import (
	"slices"

	"github.com/mitchellh/copystructure"

	apperr "github.com/matzehuels/tabchart/pkg/errors"
)

// Column is a named, ordered sequence of values aligned to the table index.
type Column struct {
	Name   string
	Kind   Kind
	Values []any
}

// Index is the row-identifying sequence of a table. Name is optional.
type Index struct {
	Name   string
	Kind   Kind
	Values []any
}

// NewColumn creates a column and classifies its values.
func NewColumn(name string, values []any) Column {
	return Column{Name: name, Kind: Classify(values), Values: values}
}

// NewIndex creates an index and classifies its values.
func NewIndex(name string, values []any) Index {
	return Index{Name: name, Kind: Classify(values), Values: values}
}

// Table is an immutable set of columns sharing one index.
// Callers must not modify the slices returned by its accessors; use
// [Table.Clone] to obtain a private copy.
type Table struct {
	index   Index
	columns []Column
}

// New builds a table from an index and columns in declaration order.
//
// Every column must have exactly as many values as the index, and column
// names must be valid and unique. Columns or an index whose Kind is
// [Unknown] are classified with [Classify].
func New(index Index, columns ...Column) (*Table, error) {
	if index.Name != "" {
		if err := apperr.ValidateColumnName(index.Name); err != nil {
			return nil, err
		}
	}
	if index.Kind == Unknown {
		index.Kind = Classify(index.Values)
	}

	seen := make(map[string]bool, len(columns))
	cols := make([]Column, len(columns))
	for i, c := range columns {
		if err := apperr.ValidateColumnName(c.Name); err != nil {
			return nil, err
		}
		if seen[c.Name] {
			return nil, apperr.New(apperr.ErrCodeInvalidTable, "duplicate column %q", c.Name)
		}
		seen[c.Name] = true

		if len(c.Values) != len(index.Values) {
			return nil, apperr.New(apperr.ErrCodeInvalidTable,
				"column %q has %d values, index has %d", c.Name, len(c.Values), len(index.Values))
		}
		if c.Kind == Unknown {
			c.Kind = Classify(c.Values)
		}
		cols[i] = c
	}

	return &Table{index: index, columns: cols}, nil
}

// Index returns the row index.
func (t *Table) Index() Index { return t.index }

// Columns returns the columns in declaration order.
func (t *Table) Columns() []Column { return t.columns }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.index.Values) }

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Clone returns a deep copy of the table that shares no mutable state
// with the receiver, including values nested inside cells.
func (t *Table) Clone() (*Table, error) {
	idx, err := copyValues(t.index.Values)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "copy index")
	}
	out := &Table{
		index:   Index{Name: t.index.Name, Kind: t.index.Kind, Values: idx},
		columns: make([]Column, len(t.columns)),
	}
	for i, c := range t.columns {
		vals, err := copyValues(c.Values)
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "copy column %q", c.Name)
		}
		out.columns[i] = Column{Name: c.Name, Kind: c.Kind, Values: vals}
	}
	return out, nil
}

func copyValues(values []any) ([]any, error) {
	if values == nil {
		return nil, nil
	}
	v, err := copystructure.Copy(values)
	if err != nil {
		return nil, err
	}
	return v.([]any), nil
}

// SortedByIndex returns a new table whose rows are ordered by ascending
// index value under [Compare]. The sort is stable, so rows with equal index
// values keep their relative order. The receiver is not modified.
func (t *Table) SortedByIndex() *Table {
	n := t.Len()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	idx := t.index.Values
	slices.SortStableFunc(order, func(a, b int) int {
		return Compare(idx[a], idx[b])
	})

	out := &Table{
		index:   Index{Name: t.index.Name, Kind: t.index.Kind, Values: permute(idx, order)},
		columns: make([]Column, len(t.columns)),
	}
	for i, c := range t.columns {
		out.columns[i] = Column{Name: c.Name, Kind: c.Kind, Values: permute(c.Values, order)}
	}
	return out
}

func permute(values []any, order []int) []any {
	out := make([]any, len(order))
	for i, j := range order {
		out[i] = values[j]
	}
	return out
}

package tables

import (
	"github.com/fluxfield/tablestack/pkg/errors"
)

// MissingValue is the marker written into cells that have no value:
// columns absent from a contributing file and fields that failed their
// declared-type cast.
const MissingValue = ""

// Table is an in-memory delimited table: an ordered column list and rows
// of string cells. Rows always have exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable creates an empty table with the given columns.
func NewTable(columns ...string) *Table {
	return &Table{Columns: columns}
}

// ColumnIndex returns the index of a named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// AddColumn appends a new column, filling existing rows with fill.
// Adding an existing column is a no-op.
func (t *Table) AddColumn(name, fill string) {
	if t.ColumnIndex(name) >= 0 {
		return
	}
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], fill)
	}
}

// InsertColumn inserts a new column at position idx, filling existing
// rows with fill. Inserting an existing column is a no-op.
func (t *Table) InsertColumn(idx int, name, fill string) {
	if t.ColumnIndex(name) >= 0 {
		return
	}
	if idx < 0 || idx > len(t.Columns) {
		idx = len(t.Columns)
	}
	t.Columns = append(t.Columns, "")
	copy(t.Columns[idx+1:], t.Columns[idx:])
	t.Columns[idx] = name
	for i, row := range t.Rows {
		row = append(row, "")
		copy(row[idx+1:], row[idx:])
		row[idx] = fill
		t.Rows[i] = row
	}
}

// AppendOuter concatenates other's rows onto t using outer-union
// semantics: the result schema is the union of both schemas in first-seen
// column order, and any cell with no source value holds MissingValue.
// No rows are dropped. Returns an error only on a structural mismatch
// beyond column add/remove (a row whose width disagrees with its header).
func (t *Table) AppendOuter(other *Table) error {
	for _, row := range other.Rows {
		if len(row) != len(other.Columns) {
			return errors.New("row width disagrees with header")
		}
	}

	// Grow t's schema to cover other's columns.
	for _, c := range other.Columns {
		t.AddColumn(c, MissingValue)
	}

	// Remap other's rows into t's column order.
	mapping := make([]int, len(other.Columns))
	for i, c := range other.Columns {
		mapping[i] = t.ColumnIndex(c)
	}
	for _, row := range other.Rows {
		merged := make([]string, len(t.Columns))
		for i := range merged {
			merged[i] = MissingValue
		}
		for i, v := range row {
			merged[mapping[i]] = v
		}
		t.Rows = append(t.Rows, merged)
	}
	return nil
}

package tables

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendOuter_UnionSchema(t *testing.T) {
	dst := &Table{
		Columns: []string{"a", "b"},
		Rows:    [][]string{{"1", "x"}, {"2", "y"}},
	}
	src := &Table{
		Columns: []string{"a", "c"},
		Rows:    [][]string{{"3", "z"}},
	}

	require.NoError(t, dst.AppendOuter(src))

	assert.Equal(t, []string{"a", "b", "c"}, dst.Columns)
	require.Len(t, dst.Rows, 3)
	assert.Equal(t, []string{"1", "x", MissingValue}, dst.Rows[0])
	assert.Equal(t, []string{"2", "y", MissingValue}, dst.Rows[1])
	assert.Equal(t, []string{"3", MissingValue, "z"}, dst.Rows[2])
}

func TestAppendOuter_IntoEmpty(t *testing.T) {
	dst := NewTable()
	src := &Table{Columns: []string{"a"}, Rows: [][]string{{"1"}}}

	require.NoError(t, dst.AppendOuter(src))
	assert.Equal(t, []string{"a"}, dst.Columns)
	assert.Equal(t, [][]string{{"1"}}, dst.Rows)
}

func TestAppendOuter_ReorderedColumns(t *testing.T) {
	dst := &Table{Columns: []string{"a", "b"}, Rows: [][]string{{"1", "x"}}}
	src := &Table{Columns: []string{"b", "a"}, Rows: [][]string{{"y", "2"}}}

	require.NoError(t, dst.AppendOuter(src))
	assert.Equal(t, []string{"a", "b"}, dst.Columns)
	assert.Equal(t, []string{"2", "y"}, dst.Rows[1])
}

func TestAppendOuter_RaggedRowIsStructural(t *testing.T) {
	dst := NewTable("a")
	src := &Table{Columns: []string{"a", "b"}, Rows: [][]string{{"only-one-cell"}}}

	err := dst.AppendOuter(src)
	require.Error(t, err)
	// nothing appended on failure
	assert.Empty(t, dst.Rows)
}

func TestInsertColumn(t *testing.T) {
	tb := &Table{Columns: []string{"a", "b"}, Rows: [][]string{{"1", "2"}}}
	tb.InsertColumn(0, "siteID", "ABBY")

	assert.Equal(t, []string{"siteID", "a", "b"}, tb.Columns)
	assert.Equal(t, []string{"ABBY", "1", "2"}, tb.Rows[0])

	// no duplicates
	tb.InsertColumn(0, "siteID", "OTHER")
	assert.Equal(t, []string{"siteID", "a", "b"}, tb.Columns)
}

func TestCSV_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	want := &Table{
		Columns: []string{"siteID", "temp", "note"},
		Rows:    [][]string{{"ABBY", "1.5", "with, comma"}, {"BART", "", "quoted \"q\""}},
	}
	require.NoError(t, WriteCSV(path, want))

	got, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, want.Columns, got.Columns)
	assert.Equal(t, want.Rows, got.Rows)
}

func TestReadCSV_DuplicateColumns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dup.csv")
	require.NoError(t, WriteCSV(path, &Table{Columns: []string{"a", "a"}}))

	_, err := ReadCSV(path)
	assert.Error(t, err)
}

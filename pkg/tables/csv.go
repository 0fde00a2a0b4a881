package tables

import (
	"encoding/csv"
	"os"

	"github.com/fluxfield/tablestack/pkg/constants"
	"github.com/fluxfield/tablestack/pkg/errors"
)

// ReadCSV loads a delimited file into a Table. The first record is the
// header; duplicate column names are a structural error because they make
// the outer union ambiguous.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	if len(records) == 0 {
		return nil, errors.WrapIO("read", path, errors.New("empty file, no header"))
	}

	header := records[0]
	seen := make(map[string]bool, len(header))
	for _, c := range header {
		if seen[c] {
			return nil, errors.WrapIO("read", path, errors.New("duplicate column "+c))
		}
		seen[c] = true
	}

	return &Table{Columns: header, Rows: records[1:]}, nil
}

// WriteCSV writes a Table as a delimited file, header first.
func WriteCSV(path string, t *Table) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("write", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		f.Close() //nolint:errcheck,gosec // write error takes precedence
		return errors.WrapIO("write", path, err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		f.Close() //nolint:errcheck,gosec // write error takes precedence
		return errors.WrapIO("write", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close() //nolint:errcheck,gosec // write error takes precedence
		return errors.WrapIO("write", path, err)
	}
	return errors.WrapIO("write", path, f.Close())
}

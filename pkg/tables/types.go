// Package tables defines the domain model for the tablestack system:
// typed source files, the table-type dictionary that drives merge policy,
// the per-field variable dictionary, and the in-memory Table with
// outer-union concatenation.
package tables

import (
	"github.com/goccy/go-yaml"

	"github.com/fluxfield/tablestack/pkg/errors"
)

// TableType categorizes how files of a table are combined.
type TableType string

// The closed set of table types. Every table name in the dictionary
// resolves to exactly one of these.
const (
	// TableTypeSiteDate marks tables where every (site, date) file is a
	// distinct observation; all files are stacked.
	TableTypeSiteDate TableType = "site-date"

	// TableTypeSiteAll marks cumulative snapshot tables; only the most
	// recent publication per site is stacked.
	TableTypeSiteAll TableType = "site-all"

	// TableTypeLabCurrent marks lab tables copied (not stacked), most
	// recent publication only.
	TableTypeLabCurrent TableType = "lab-current"

	// TableTypeLabAll marks lab tables copied (not stacked), all
	// historical publications represented by the most recent file.
	TableTypeLabAll TableType = "lab-all"

	// TableTypeOther marks auxiliary tables with no special selection
	// policy; all files are stacked.
	TableTypeOther TableType = "other"
)

// Valid reports whether t is a member of the closed table-type set.
func (t TableType) Valid() bool {
	switch t {
	case TableTypeSiteDate, TableTypeSiteAll, TableTypeLabCurrent, TableTypeLabAll, TableTypeOther:
		return true
	}
	return false
}

// IsLab reports whether t is one of the lab table types, which are
// copied by the sidecar copier rather than stacked.
func (t TableType) IsLab() bool {
	return t == TableTypeLabCurrent || t == TableTypeLabAll
}

// String returns the string representation of the table type.
func (t TableType) String() string {
	return string(t)
}

// TableTypeEntry is one dictionary record mapping a table name to its type.
type TableTypeEntry struct {
	Table string    `yaml:"table" json:"table"`
	Type  TableType `yaml:"type" json:"type"`
}

// TableTypeDictionary is the read-only reference mapping table names to
// table types. Built once per run and shared across all workers.
type TableTypeDictionary struct {
	entries map[string]TableType
}

// tableTypesFile is the YAML document shape for a dictionary file.
type tableTypesFile struct {
	TableTypes []TableTypeEntry `yaml:"table_types"`
}

// NewTableTypeDictionary creates a dictionary from explicit entries.
// Entries with invalid types are rejected.
func NewTableTypeDictionary(entries []TableTypeEntry) (*TableTypeDictionary, error) {
	d := &TableTypeDictionary{entries: make(map[string]TableType, len(entries))}
	for _, e := range entries {
		if e.Table == "" {
			return nil, errors.NewConfigurationError("table_types", e.Table, "empty table name")
		}
		if !e.Type.Valid() {
			return nil, errors.NewConfigurationError("table_types", string(e.Type),
				"invalid table type for table "+e.Table)
		}
		d.entries[e.Table] = e.Type
	}
	return d, nil
}

// ParseTableTypeDictionary parses a YAML dictionary document.
func ParseTableTypeDictionary(data []byte) (*TableTypeDictionary, error) {
	var doc tableTypesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewConfigurationError("table_types", "", "parse dictionary: "+err.Error())
	}
	return NewTableTypeDictionary(doc.TableTypes)
}

// Lookup returns the type for a table name.
func (d *TableTypeDictionary) Lookup(table string) (TableType, bool) {
	t, ok := d.entries[table]
	return t, ok
}

// Len returns the number of dictionary entries.
func (d *TableTypeDictionary) Len() int {
	return len(d.entries)
}

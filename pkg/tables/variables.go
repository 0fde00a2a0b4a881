package tables

import (
	"strings"

	"github.com/fluxfield/tablestack/pkg/errors"
)

// FieldType is the declared semantic type of one table field.
type FieldType string

// The field types the variable dictionary can declare.
const (
	FieldTypeString   FieldType = "string"
	FieldTypeInteger  FieldType = "integer"
	FieldTypeNumeric  FieldType = "numeric"
	FieldTypeDateTime FieldType = "dateTime"
)

// ParseFieldType normalizes a dictionary dataType value. Publications use
// a few spellings for the same types ("real", "datetime", "unsigned integer").
func ParseFieldType(s string) (FieldType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string", "text":
		return FieldTypeString, true
	case "integer", "signed integer", "unsigned integer":
		return FieldTypeInteger, true
	case "numeric", "real", "number", "float":
		return FieldTypeNumeric, true
	case "datetime", "date", "timestamp":
		return FieldTypeDateTime, true
	}
	return "", false
}

// varKey identifies one field of one table.
type varKey struct {
	table string
	field string
}

// VariableDictionary maps (table, field) to the field's declared type.
// Built once per run from the most recent variables publication and shared
// read-only across all workers.
type VariableDictionary struct {
	types map[varKey]FieldType
}

// NewVariableDictionary creates an empty dictionary.
func NewVariableDictionary() *VariableDictionary {
	return &VariableDictionary{types: make(map[varKey]FieldType)}
}

// Add records the declared type for a field.
func (d *VariableDictionary) Add(table, field string, ft FieldType) {
	d.types[varKey{table: table, field: field}] = ft
}

// Lookup returns the declared type for a field. Fields with no entry are
// passed through as strings by the coercer.
func (d *VariableDictionary) Lookup(table, field string) (FieldType, bool) {
	ft, ok := d.types[varKey{table: table, field: field}]
	return ft, ok
}

// Len returns the number of declared fields.
func (d *VariableDictionary) Len() int {
	return len(d.types)
}

// VariableDictionaryFromTable builds a dictionary from a loaded variables
// publication, which declares one field per row with columns
// table, fieldName and dataType. Rows declaring an unrecognized dataType
// are skipped: the coercer treats their fields as plain strings.
func VariableDictionaryFromTable(t *Table) (*VariableDictionary, error) {
	tableIdx := t.ColumnIndex("table")
	fieldIdx := t.ColumnIndex("fieldName")
	typeIdx := t.ColumnIndex("dataType")
	if tableIdx < 0 || fieldIdx < 0 || typeIdx < 0 {
		return nil, errors.New("variables file must have table, fieldName and dataType columns")
	}

	d := NewVariableDictionary()
	for _, row := range t.Rows {
		ft, ok := ParseFieldType(row[typeIdx])
		if !ok {
			continue
		}
		d.Add(row[tableIdx], row[fieldIdx], ft)
	}
	return d, nil
}

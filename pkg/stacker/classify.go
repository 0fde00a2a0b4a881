package stacker

import (
	"github.com/fluxfield/tablestack/pkg/constants"
	"github.com/fluxfield/tablestack/pkg/errors"
	"github.com/fluxfield/tablestack/pkg/tables"
)

// Classify resolves a source file's table type against the dictionary.
// Reserved sidecar tables (variables, validation, sensor positions) are
// always TableTypeOther and need no dictionary entry. Any other table
// name with no entry is a ClassificationError: the whole inventory is
// untrustworthy if a single file cannot be classified.
func Classify(f *tables.SourceFile, dict *tables.TableTypeDictionary) (tables.TableType, error) {
	switch f.Table {
	case constants.VariablesTable, constants.ValidationTable, constants.SensorPositionsTable:
		return tables.TableTypeOther, nil
	}
	tt, ok := dict.Lookup(f.Table)
	if !ok {
		return "", errors.NewClassificationError(f.Name, f.Table)
	}
	return tt, nil
}

// tableGroup is one ordinary table's classified file set.
type tableGroup struct {
	name  string
	typ   tables.TableType
	files []*tables.SourceFile
}

// labKey identifies one lab table publication stream.
type labKey struct {
	table string
	lab   string // lab identifier, first file-name token
}

// inventory is the classified partition of all discovered files. Lab
// tables and sidecar categories are separated out before ordinary
// stacking begins.
type inventory struct {
	tables     map[string]*tableGroup
	labs       map[labKey][]*tables.SourceFile
	variables  []*tables.SourceFile
	validation []*tables.SourceFile
	positions  []*tables.SourceFile
}

// buildInventory classifies every file and partitions the set. It fails
// on the first unclassifiable file.
func buildInventory(files []*tables.SourceFile, dict *tables.TableTypeDictionary) (*inventory, error) {
	inv := &inventory{
		tables: make(map[string]*tableGroup),
		labs:   make(map[labKey][]*tables.SourceFile),
	}

	for _, f := range files {
		switch f.Table {
		case constants.VariablesTable:
			inv.variables = append(inv.variables, f)
			continue
		case constants.ValidationTable:
			inv.validation = append(inv.validation, f)
			continue
		case constants.SensorPositionsTable:
			inv.positions = append(inv.positions, f)
			continue
		}

		tt, err := Classify(f, dict)
		if err != nil {
			return nil, err
		}

		if tt.IsLab() {
			k := labKey{table: f.Table, lab: f.Site}
			inv.labs[k] = append(inv.labs[k], f)
			continue
		}

		g, ok := inv.tables[f.Table]
		if !ok {
			g = &tableGroup{name: f.Table, typ: tt}
			inv.tables[f.Table] = g
		}
		g.files = append(g.files, f)
	}

	return inv, nil
}

package stacker

import (
	"strconv"
	"time"

	"github.com/agentstation/utc"

	"github.com/fluxfield/tablestack/pkg/tables"
)

// timestampLayouts are the input formats accepted for dateTime fields,
// tried in order. The normalized output form (RFC3339 UTC) is first so
// coercion is idempotent.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"20060102T150405Z",
}

// Coerce casts every field of t to its type declared in the variable
// dictionary for tableName, in place. Fields with no dictionary entry
// pass through untouched; empty cells stay empty. A cell that fails its
// declared cast is replaced with the missing-value marker rather than
// failing the file, and the number of such replacements is returned for
// the run summary.
//
// Normalized values are fixed points of their own cast, so coercing an
// already-coerced table changes nothing.
func Coerce(t *tables.Table, tableName string, vars *tables.VariableDictionary) int {
	if vars == nil || vars.Len() == 0 {
		return 0
	}

	failures := 0
	for col, name := range t.Columns {
		ft, ok := vars.Lookup(tableName, name)
		if !ok || ft == tables.FieldTypeString {
			continue
		}
		for _, row := range t.Rows {
			v := row[col]
			if v == tables.MissingValue {
				continue
			}
			normalized, ok := coerceValue(v, ft)
			if !ok {
				row[col] = tables.MissingValue
				failures++
				continue
			}
			row[col] = normalized
		}
	}
	return failures
}

// coerceValue casts one cell to its declared type and returns the
// normalized representation.
func coerceValue(v string, ft tables.FieldType) (string, bool) {
	switch ft {
	case tables.FieldTypeInteger:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return "", false
		}
		return strconv.FormatInt(n, 10), true
	case tables.FieldTypeNumeric:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "", false
		}
		return strconv.FormatFloat(f, 'g', -1, 64), true
	case tables.FieldTypeDateTime:
		for _, layout := range timestampLayouts {
			ts, err := time.Parse(layout, v)
			if err == nil {
				return utc.Time{Time: ts.UTC()}.Format(time.RFC3339), true
			}
		}
		return "", false
	}
	return v, true
}

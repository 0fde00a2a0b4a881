package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableType_Valid(t *testing.T) {
	for _, tt := range []TableType{TableTypeSiteDate, TableTypeSiteAll, TableTypeLabCurrent, TableTypeLabAll, TableTypeOther} {
		assert.True(t, tt.Valid(), tt)
	}
	assert.False(t, TableType("site-weekly").Valid())
	assert.False(t, TableType("").Valid())
}

func TestTableType_IsLab(t *testing.T) {
	assert.True(t, TableTypeLabCurrent.IsLab())
	assert.True(t, TableTypeLabAll.IsLab())
	assert.False(t, TableTypeSiteDate.IsLab())
	assert.False(t, TableTypeSiteAll.IsLab())
}

func TestParseTableTypeDictionary(t *testing.T) {
	doc := []byte(`
table_types:
  - table: temp_2min
    type: site-date
  - table: sensor_metadata
    type: site-all
  - table: soilChem_externalLab
    type: lab-all
`)
	d, err := ParseTableTypeDictionary(doc)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())

	tt, ok := d.Lookup("temp_2min")
	require.True(t, ok)
	assert.Equal(t, TableTypeSiteDate, tt)

	_, ok = d.Lookup("unknown_table")
	assert.False(t, ok)
}

func TestParseTableTypeDictionary_InvalidType(t *testing.T) {
	doc := []byte(`
table_types:
  - table: temp_2min
    type: site-weekly
`)
	_, err := ParseTableTypeDictionary(doc)
	assert.Error(t, err)
}

func TestNewTableTypeDictionary_EmptyName(t *testing.T) {
	_, err := NewTableTypeDictionary([]TableTypeEntry{{Table: "", Type: TableTypeSiteDate}})
	assert.Error(t, err)
}

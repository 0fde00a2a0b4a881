package embedded

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxfield/tablestack/pkg/tables"
)

func TestTableTypes_ParsesAsDictionary(t *testing.T) {
	dict, err := tables.ParseTableTypeDictionary(TableTypes())
	require.NoError(t, err)
	assert.Greater(t, dict.Len(), 0)

	tt, ok := dict.Lookup("temp_2min")
	require.True(t, ok)
	assert.Equal(t, tables.TableTypeSiteDate, tt)
}

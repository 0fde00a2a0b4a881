package stacker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxfield/tablestack/pkg/tables"
)

func testPositionIndex(t *testing.T) *PositionIndex {
	t.Helper()
	idx := NewPositionIndex(&tables.Table{
		Columns: []string{"siteID", "horIndex", "verIndex", "xOffset", "yOffset", "zOffset"},
		Rows: [][]string{
			{"BART", "000", "050", "1.2", "-0.5", "3.0"},
		},
	})
	require.NotNil(t, idx)
	return idx
}

func TestEnrichPositions_SiteOnly(t *testing.T) {
	f := mustParse(t, "ABBY.temp_2min.2020-01.20200201T000000Z.csv")
	tbl := &tables.Table{Columns: []string{"tempMean"}, Rows: [][]string{{"1.5"}}}

	EnrichPositions(tbl, f, nil)
	assert.Equal(t, []string{"siteID", "tempMean"}, tbl.Columns)
	assert.Equal(t, []string{"ABBY", "1.5"}, tbl.Rows[0])
}

func TestEnrichPositions_IndicesFromFileName(t *testing.T) {
	f := mustParse(t, "BART.RH_30min.000.050.2019-11.20191201T120000Z.csv")
	tbl := &tables.Table{Columns: []string{"rhMean"}, Rows: [][]string{{"55"}}}

	EnrichPositions(tbl, f, nil)
	assert.Equal(t, []string{"siteID", "horIndex", "verIndex", "rhMean"}, tbl.Columns)
	assert.Equal(t, []string{"BART", "000", "050", "55"}, tbl.Rows[0])
}

func TestEnrichPositions_JoinsOffsets(t *testing.T) {
	f := mustParse(t, "BART.RH_30min.000.050.2019-11.20191201T120000Z.csv")
	tbl := &tables.Table{Columns: []string{"rhMean"}, Rows: [][]string{{"55"}}}

	EnrichPositions(tbl, f, testPositionIndex(t))
	assert.Equal(t, []string{"siteID", "horIndex", "verIndex", "rhMean", "xOffset", "yOffset", "zOffset"}, tbl.Columns)
	assert.Equal(t, []string{"BART", "000", "050", "55", "1.2", "-0.5", "3.0"}, tbl.Rows[0])
}

func TestEnrichPositions_UnknownLocationSkipsOffsets(t *testing.T) {
	f := mustParse(t, "ABBY.RH_30min.000.010.2019-11.20191201T120000Z.csv")
	tbl := &tables.Table{Columns: []string{"rhMean"}, Rows: [][]string{{"55"}}}

	EnrichPositions(tbl, f, testPositionIndex(t))
	assert.Equal(t, []string{"siteID", "horIndex", "verIndex", "rhMean"}, tbl.Columns)
}

func TestEnrichPositions_ExistingSiteColumnKept(t *testing.T) {
	f := mustParse(t, "ABBY.temp_2min.2020-01.20200201T000000Z.csv")
	tbl := &tables.Table{Columns: []string{"siteID", "tempMean"}, Rows: [][]string{{"OTHER", "1.5"}}}

	EnrichPositions(tbl, f, nil)
	// file-provided siteID values win over the enricher's fill
	assert.Equal(t, []string{"OTHER", "1.5"}, tbl.Rows[0])
}

func TestNewPositionIndex_Missingcolumns(t *testing.T) {
	assert.Nil(t, NewPositionIndex(&tables.Table{Columns: []string{"horIndex", "verIndex"}}))
}

package tables

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxfield/tablestack/pkg/errors"
)

func TestParseSourceFile_SiteDate(t *testing.T) {
	f, err := ParseSourceFile("/data/ABBY.temp_2min.2020-01.20200201T000000Z.csv", 1024)
	require.NoError(t, err)

	assert.Equal(t, "ABBY", f.Site)
	assert.Equal(t, "temp_2min", f.Table)
	assert.Equal(t, "2020-01", f.Month)
	assert.Equal(t, "20200201T000000Z", f.PubToken)
	assert.Equal(t, int64(1024), f.Size)
	assert.False(t, f.HasPosition())
	assert.Equal(t, time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC), f.Published.Time)
}

func TestParseSourceFile_WithPosition(t *testing.T) {
	f, err := ParseSourceFile("BART.RH_30min.000.050.2019-11.20191201T120000Z.csv", 0)
	require.NoError(t, err)

	assert.Equal(t, "BART", f.Site)
	assert.Equal(t, "RH_30min", f.Table)
	assert.Equal(t, "000", f.Hor)
	assert.Equal(t, "050", f.Ver)
	assert.Equal(t, "2019-11", f.Month)
	assert.True(t, f.HasPosition())
}

func TestParseSourceFile_StripsPubSuffix(t *testing.T) {
	f, err := ParseSourceFile("ABBY.sensor_positions_pub.20200101T000000Z.csv", 0)
	require.NoError(t, err)
	assert.Equal(t, "sensor_positions", f.Table)
}

func TestParseSourceFile_Malformed(t *testing.T) {
	cases := []string{
		"justonetoken.csv",
		"ABBY.temp_2min.nodate.csv",                      // bad publication token
		"lower.temp_2min.20200101T000000Z.csv",           // bad site token
		"ABBY.temp_2min.banana.20200101T000000Z.csv",     // unrecognized middle token
		"ABBY.temp_2min.2020-01-05.20200101T000000Z.csv", // day-resolution month token
	}
	for _, name := range cases {
		_, err := ParseSourceFile(name, 0)
		assert.ErrorIs(t, err, errors.ErrBadFileName, name)
	}
}

func TestMoreRecent(t *testing.T) {
	older := &SourceFile{Path: "a", PubToken: "20200101T000000Z"}
	newer := &SourceFile{Path: "b", PubToken: "20200601T000000Z"}
	assert.True(t, MoreRecent(newer, older))
	assert.False(t, MoreRecent(older, newer))

	// identical publication tokens tie-break on full path order
	twinA := &SourceFile{Path: "/in/a.csv", PubToken: "20200101T000000Z"}
	twinB := &SourceFile{Path: "/in/b.csv", PubToken: "20200101T000000Z"}
	assert.True(t, MoreRecent(twinB, twinA))
	assert.False(t, MoreRecent(twinA, twinB))
}

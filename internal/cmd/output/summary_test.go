package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxfield/tablestack/pkg/stacker"
)

func TestRenderSummary(t *testing.T) {
	s := &stacker.Summary{
		Events: []stacker.Event{
			{Kind: stacker.EventPoolScaled, Workers: 8, Bytes: 3_000_000_000},
			{Kind: stacker.EventSidecarCopied, Category: "variables", Table: "variables",
				Source: "ABBY.variables.20200615T000000Z.csv"},
			{Kind: stacker.EventTableStacked, Table: "temp_2min", Rows: 4, Files: 4},
			{Kind: stacker.EventCoercionIssues, Table: "temp_2min", Count: 2},
		},
		Tables:  1,
		Elapsed: 1500 * time.Millisecond,
	}

	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, s))
	out := buf.String()

	assert.Contains(t, out, "temp_2min")
	assert.Contains(t, out, "4 rows from 4 files")
	assert.Contains(t, out, "ABBY.variables.20200615T000000Z.csv")
	assert.Contains(t, out, "2 values replaced with missing marker")
	assert.Contains(t, out, "Stacked 1 table(s) in 1.5s")
}

func TestRenderSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, &stacker.Summary{}))
	assert.Contains(t, buf.String(), "Stacked 0 table(s)")
}

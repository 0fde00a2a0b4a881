// Package output renders structured run summaries for the CLI. The
// stacking engine itself never prints; it returns a summary value and
// this package turns it into human-readable output.
package output

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fluxfield/tablestack/pkg/stacker"
)

// RenderSummary writes a run summary as a table of discrete events
// followed by the table count and wall-clock time.
func RenderSummary(w io.Writer, s *stacker.Summary) error {
	title := cases.Title(language.English)

	table := tablewriter.NewTable(w)
	table.Header("Event", "Subject", "Detail")
	for _, e := range s.Events {
		if err := table.Append(title.String(string(e.Kind)), subject(e), detail(e)); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nStacked %d table(s) in %s\n", s.Tables, s.Elapsed.Round(time.Millisecond))
	return err
}

func subject(e stacker.Event) string {
	if e.Table != "" {
		return e.Table
	}
	return e.Category
}

func detail(e stacker.Event) string {
	switch e.Kind {
	case stacker.EventTableStacked:
		return fmt.Sprintf("%d rows from %d files", e.Rows, e.Files)
	case stacker.EventSidecarCopied:
		if e.Source != "" {
			return e.Source
		}
		return fmt.Sprintf("%d rows from %d files", e.Rows, e.Files)
	case stacker.EventCoercionIssues:
		return strconv.Itoa(e.Count) + " values replaced with missing marker"
	case stacker.EventPoolScaled:
		return fmt.Sprintf("%d workers for %d candidate bytes", e.Workers, e.Bytes)
	case stacker.EventFileCopied:
		return e.Source
	}
	return ""
}

package stacker

import "time"

// EventKind identifies the kind of a run-summary event.
type EventKind string

// The event kinds a run can report.
const (
	// EventTableStacked reports one ordinary table merged and written.
	EventTableStacked EventKind = "table stacked"

	// EventSidecarCopied reports one sidecar artifact copied or consolidated.
	EventSidecarCopied EventKind = "sidecar copied"

	// EventCoercionIssues reports accumulated cast failures for one table.
	EventCoercionIssues EventKind = "coercion issues"

	// EventPoolScaled reports the automatic worker-pool scale-up decision.
	EventPoolScaled EventKind = "pool scaled"

	// EventFileCopied reports the single-file shortcut: one input copied
	// verbatim with no merge logic.
	EventFileCopied EventKind = "file copied"
)

// Event is one discrete record in the run summary. Which fields are set
// depends on Kind.
type Event struct {
	Kind     EventKind
	Table    string // table or artifact name
	Category string // sidecar category (lab, variables, validation, positions)
	Source   string // source file name for copies
	Rows     int    // stacked row count
	Files    int    // contributing file count
	Count    int    // coercion failure count
	Workers  int    // pool size after scaling
	Bytes    int64  // aggregate candidate bytes behind a scaling decision
}

// Summary is the structured result of one run. The engine returns it and
// never prints; rendering belongs to the caller.
type Summary struct {
	Events  []Event
	Tables  int // ordinary tables stacked
	Elapsed time.Duration
}

// add appends an event to the summary.
func (s *Summary) add(e Event) {
	s.Events = append(s.Events, e)
}

// CoercionFailures totals the cast failures reported across all tables.
func (s *Summary) CoercionFailures() int {
	total := 0
	for _, e := range s.Events {
		if e.Kind == EventCoercionIssues {
			total += e.Count
		}
	}
	return total
}

package stacker

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/fluxfield/tablestack/pkg/constants"
	"github.com/fluxfield/tablestack/pkg/errors"
	"github.com/fluxfield/tablestack/pkg/logging"
	"github.com/fluxfield/tablestack/pkg/tables"
)

// Sidecar categories reported in summary events.
const (
	categoryLab        = "lab"
	categoryVariables  = "variables"
	categoryValidation = "validation"
	categoryPositions  = "positions"
)

// copyFile copies src to dst verbatim.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.WrapIO("copy", src, err)
	}
	defer in.Close() //nolint:errcheck // read-only handle

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("copy", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close() //nolint:errcheck,gosec // copy error takes precedence
		return errors.WrapIO("copy", dst, err)
	}
	return errors.WrapIO("copy", dst, out.Close())
}

// copySidecars handles the non-stacked artifact categories: lab tables,
// the variable dictionary, the validation rules, and the consolidated
// sensor-position table. Every category is optional; an absent category
// is skipped, never an error.
//
// It returns the position index built from the consolidated position
// table (nil when no position files exist) so stacking can join offsets,
// plus the sidecar events for the run summary.
func copySidecars(ctx context.Context, inv *inventory, outDir string) (*PositionIndex, []Event, error) {
	logger := logging.FromContext(ctx)
	var events []Event

	// Lab tables: one copy per distinct lab identifier, most recent
	// publication of that lab's stream.
	keys := make([]labKey, 0, len(inv.labs))
	for k := range inv.labs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].table != keys[j].table {
			return keys[i].table < keys[j].table
		}
		return keys[i].lab < keys[j].lab
	})
	for _, k := range keys {
		f := latest(inv.labs[k])
		if err := copyFile(f.Path, filepath.Join(outDir, f.Name)); err != nil {
			return nil, events, err
		}
		logger.Info().Str("table", k.table).Str("lab", k.lab).Str("file", f.Name).
			Msg("Copied lab table")
		events = append(events, Event{Kind: EventSidecarCopied, Category: categoryLab,
			Table: k.table, Source: f.Name})
	}

	// Variable dictionary and validation rules: most recent publication,
	// renamed to a canonical name.
	if f := latest(inv.variables); f != nil {
		if err := copyFile(f.Path, filepath.Join(outDir, constants.VariablesFile)); err != nil {
			return nil, events, err
		}
		logger.Info().Str("file", f.Name).Msg("Copied variable dictionary")
		events = append(events, Event{Kind: EventSidecarCopied, Category: categoryVariables,
			Table: constants.VariablesTable, Source: f.Name})
	}
	if f := latest(inv.validation); f != nil {
		if err := copyFile(f.Path, filepath.Join(outDir, constants.ValidationFile)); err != nil {
			return nil, events, err
		}
		logger.Info().Str("file", f.Name).Msg("Copied validation rules")
		events = append(events, Event{Kind: EventSidecarCopied, Category: categoryValidation,
			Table: constants.ValidationTable, Source: f.Name})
	}

	idx, posEvent, err := consolidatePositions(ctx, inv.positions, outDir)
	if err != nil {
		return nil, events, err
	}
	if posEvent != nil {
		events = append(events, *posEvent)
	}
	return idx, events, nil
}

// consolidatePositions unions the most recent position file per site into
// one site-enriched table, writes it under the canonical name, and builds
// the position index stacking joins against. Position files are not
// merely copied because each one covers a single site.
func consolidatePositions(ctx context.Context, files []*tables.SourceFile, outDir string) (*PositionIndex, *Event, error) {
	if len(files) == 0 {
		return nil, nil, nil
	}

	selected := latestPerSite(files)
	sort.Slice(selected, func(i, j int) bool { return selected[i].Path < selected[j].Path })

	merged := tables.NewTable()
	for _, f := range selected {
		t, err := tables.ReadCSV(f.Path)
		if err != nil {
			return nil, nil, err
		}
		EnrichPositions(t, f, nil)
		if err := merged.AppendOuter(t); err != nil {
			return nil, nil, errors.NewMergeError(constants.SensorPositionsTable, f.Name, err)
		}
	}

	outPath := filepath.Join(outDir, constants.SensorPositionsFile)
	if err := tables.WriteCSV(outPath, merged); err != nil {
		return nil, nil, err
	}
	logging.FromContext(ctx).Info().
		Int("sites", len(selected)).
		Int("rows", len(merged.Rows)).
		Msg("Consolidated sensor positions")

	return NewPositionIndex(merged), &Event{
		Kind:     EventSidecarCopied,
		Category: categoryPositions,
		Table:    constants.SensorPositionsTable,
		Files:    len(selected),
		Rows:     len(merged.Rows),
	}, nil
}

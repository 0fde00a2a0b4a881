// Package stacker implements the table-stacking engine: it classifies a
// directory of per-site, per-date delimited files, selects the files that
// participate in each table's merge, coerces fields against the variable
// dictionary, enriches rows with positional metadata, and writes one
// outer-union stacked file per table, distributing the work across a
// bounded worker pool. Sidecar artifacts (lab tables, dictionaries, the
// sensor-position table) are copied or consolidated rather than stacked.
package stacker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fluxfield/tablestack/internal/embedded"
	"github.com/fluxfield/tablestack/internal/scan"
	"github.com/fluxfield/tablestack/pkg/constants"
	"github.com/fluxfield/tablestack/pkg/errors"
	"github.com/fluxfield/tablestack/pkg/logging"
	"github.com/fluxfield/tablestack/pkg/tables"
)

// Stacker runs batch stacking over one input directory. Each run is a
// pure transform: inputs are read once, outputs land under the
// stackedFiles subdirectory, and no state survives between runs.
type Stacker struct {
	dir    string
	config config
}

// New creates a Stacker for an input directory of previously unpacked
// data files. Without options the run is effectively sequential (one
// worker) and classification uses the embedded table-type dictionary.
func New(dir string, opts ...Option) (*Stacker, error) {
	c := config{workers: constants.DefaultWorkers}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return nil, err
		}
	}
	if c.tableTypes == nil {
		dict, err := tables.ParseTableTypeDictionary(embedded.TableTypes())
		if err != nil {
			return nil, err
		}
		c.tableTypes = dict
	}
	return &Stacker{dir: dir, config: c}, nil
}

// stackJob is the unit of per-table work: the selected file set, the
// per-file typed row sets produced by phase one, and the fold result
// tallies from phase two. Every slice slot is owned by exactly one
// worker, so no locking is needed.
type stackJob struct {
	name   string
	files  []*tables.SourceFile
	loaded []*tables.Table
	fails  []int // coercion failures per file
	rows   int   // stacked row count, set by the fold
}

// Run executes one batch stacking run and returns its structured summary.
// Fatal errors abort the run; files already dispatched run to completion
// on their workers, queued work observes the failure and bails, and the
// pool is always torn down before Run returns.
func (s *Stacker) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	logger := logging.FromContext(ctx)
	summary := &Summary{}

	scanned, err := scan.Dir(s.dir)
	if err != nil {
		return nil, err
	}
	if len(scanned) == 0 {
		return nil, fmt.Errorf("%w in %s", errors.ErrNoFiles, s.dir)
	}

	files := make([]*tables.SourceFile, len(scanned))
	for i, sc := range scanned {
		f, err := tables.ParseSourceFile(sc.Path, sc.Size)
		if err != nil {
			return nil, err
		}
		files[i] = f
	}

	// Pool sizing runs once, before any processing or write. The core
	// guard in particular must fire before the single-file shortcut.
	workers, scaled, err := poolSize(s.config.workers, s.config.forceParallel, candidateBytes(files))
	if err != nil {
		return nil, err
	}

	outDir := filepath.Join(s.dir, constants.StackedDir)
	if err := os.MkdirAll(outDir, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("mkdir", outDir, err)
	}

	// A single input file is copied verbatim; there is nothing to merge.
	if len(files) == 1 {
		f := files[0]
		if err := copyFile(f.Path, filepath.Join(outDir, f.Name)); err != nil {
			return nil, err
		}
		logger.Info().Str("file", f.Name).Msg("Single file found, copied without stacking")
		summary.add(Event{Kind: EventFileCopied, Table: f.Table, Source: f.Name})
		summary.Elapsed = time.Since(start)
		return summary, nil
	}

	if scaled {
		logger.Info().
			Int("workers", workers).
			Int64("bytes", candidateBytes(files)).
			Msg("Input volume above threshold, scaling worker pool to all cores")
		summary.add(Event{Kind: EventPoolScaled, Workers: workers, Bytes: candidateBytes(files)})
	}

	inv, err := buildInventory(files, s.config.tableTypes)
	if err != nil {
		return nil, err
	}

	// Sidecars first: the consolidated position table feeds the enricher
	// and the variables publication feeds the coercer.
	posIdx, sidecarEvents, err := copySidecars(ctx, inv, outDir)
	if err != nil {
		return nil, err
	}
	summary.Events = append(summary.Events, sidecarEvents...)

	vars := tables.NewVariableDictionary()
	if f := latest(inv.variables); f != nil {
		vt, err := tables.ReadCSV(f.Path)
		if err != nil {
			return nil, err
		}
		vars, err = tables.VariableDictionaryFromTable(vt)
		if err != nil {
			return nil, errors.WrapIO("read", f.Path, err)
		}
	}

	jobs := buildJobs(inv)
	if err := s.stack(ctx, jobs, workers, outDir, vars, posIdx); err != nil {
		return nil, err
	}

	for _, job := range jobs {
		summary.add(Event{Kind: EventTableStacked, Table: job.name,
			Rows: job.rows, Files: len(job.files)})
		if n := sum(job.fails); n > 0 {
			summary.add(Event{Kind: EventCoercionIssues, Table: job.name, Count: n})
		}
		summary.Tables++
	}
	summary.Elapsed = time.Since(start)

	logger.Info().
		Int("tables", summary.Tables).
		Int("coercion_failures", summary.CoercionFailures()).
		Dur("elapsed", summary.Elapsed).
		Msg("Stacking complete")
	return summary, nil
}

// buildJobs applies the selection policy to every ordinary table and
// returns the non-empty jobs in deterministic name order.
func buildJobs(inv *inventory) []*stackJob {
	names := make([]string, 0, len(inv.tables))
	for name := range inv.tables {
		names = append(names, name)
	}
	sort.Strings(names)

	var jobs []*stackJob
	for _, name := range names {
		g := inv.tables[name]
		selected := Select(g.typ, g.files)
		if len(selected) == 0 {
			continue
		}
		jobs = append(jobs, &stackJob{
			name:   name,
			files:  selected,
			loaded: make([]*tables.Table, len(selected)),
			fails:  make([]int, len(selected)),
		})
	}
	return jobs
}

// stack runs the two merge phases over one bounded worker pool: phase one
// dispatches every (table, file) unit (parse, coerce, enrich), phase two
// dispatches per-table folds and writes. Units of work never block on
// each other; the union fold is order-independent across files but rows
// are appended in selected-file order for stable output.
func (s *Stacker) stack(ctx context.Context, jobs []*stackJob, workers int, outDir string,
	vars *tables.VariableDictionary, posIdx *PositionIndex) error {

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, job := range jobs {
		for i, f := range job.files {
			job, i, f := job, i, f
			g.Go(func() error {
				// In-flight units run to completion; queued units
				// observe an earlier failure here and bail.
				if err := gctx.Err(); err != nil {
					return err
				}
				t, err := tables.ReadCSV(f.Path)
				if err != nil {
					return errors.NewMergeError(job.name, f.Name, err)
				}
				job.fails[i] = Coerce(t, job.name, vars)
				EnrichPositions(t, f, posIdx)
				job.loaded[i] = t
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			merged := tables.NewTable()
			for i, t := range job.loaded {
				if err := merged.AppendOuter(t); err != nil {
					return errors.NewMergeError(job.name, job.files[i].Name, err)
				}
			}
			outPath := filepath.Join(outDir, job.name+".csv")
			if err := tables.WriteCSV(outPath, merged); err != nil {
				return errors.NewMergeError(job.name, "", err)
			}
			job.rows = len(merged.Rows)
			logging.FromContext(ctx).Info().
				Str("table", job.name).
				Int("files", len(job.files)).
				Int("rows", job.rows).
				Msg("Stacked table")
			return nil
		})
	}
	return g.Wait()
}

func sum(ns []int) int {
	total := 0
	for _, n := range ns {
		total += n
	}
	return total
}

package stacker

import (
	"sort"

	"github.com/fluxfield/tablestack/pkg/tables"
)

// Select applies the per-table-type file-selection policy and returns the
// files that participate in the merge, in deterministic path order.
//
// Lab types return nil: their files never reach the stack engine and are
// handled by the sidecar copier.
func Select(tt tables.TableType, files []*tables.SourceFile) []*tables.SourceFile {
	var selected []*tables.SourceFile
	switch tt {
	case tables.TableTypeSiteDate, tables.TableTypeOther:
		// Every (site, date) file is a distinct observation.
		selected = append(selected, files...)
	case tables.TableTypeSiteAll:
		// Cumulative snapshots: only the most recent publication per
		// site contributes, or older snapshots would be double-counted.
		selected = latestPerSite(files)
	case tables.TableTypeLabCurrent, tables.TableTypeLabAll:
		return nil
	}

	sort.Slice(selected, func(i, j int) bool { return selected[i].Path < selected[j].Path })
	return selected
}

// latestPerSite keeps the most recently published file for each site.
func latestPerSite(files []*tables.SourceFile) []*tables.SourceFile {
	bySite := make(map[string]*tables.SourceFile)
	for _, f := range files {
		if best, ok := bySite[f.Site]; !ok || tables.MoreRecent(f, best) {
			bySite[f.Site] = f
		}
	}
	out := make([]*tables.SourceFile, 0, len(bySite))
	for _, f := range bySite {
		out = append(out, f)
	}
	return out
}

// latest returns the most recently published file of the set, or nil for
// an empty set. Ties on the publication token break on path order.
func latest(files []*tables.SourceFile) *tables.SourceFile {
	var best *tables.SourceFile
	for _, f := range files {
		if best == nil || tables.MoreRecent(f, best) {
			best = f
		}
	}
	return best
}

package stacker

import (
	"github.com/fluxfield/tablestack/pkg/tables"
)

// Position column names, shared by the enricher and the consolidated
// sensor-position table.
const (
	colSiteID   = "siteID"
	colHorIndex = "horIndex"
	colVerIndex = "verIndex"
	colXOffset  = "xOffset"
	colYOffset  = "yOffset"
	colZOffset  = "zOffset"
)

// posKey identifies one sensor location.
type posKey struct {
	site string
	hor  string
	ver  string
}

// offsets are the spatial offsets of one sensor location.
type offsets struct {
	x, y, z string
}

// PositionIndex is a read-only lookup of spatial offsets by
// (site, horizontal index, vertical index), built once per run from the
// consolidated sensor-position table and shared across workers.
type PositionIndex struct {
	byLocation map[posKey]offsets
}

// NewPositionIndex builds an index from a consolidated position table.
// Returns nil when the table lacks the location columns, in which case
// enrichment adds file-name positions only.
func NewPositionIndex(t *tables.Table) *PositionIndex {
	site := t.ColumnIndex(colSiteID)
	hor := t.ColumnIndex(colHorIndex)
	ver := t.ColumnIndex(colVerIndex)
	if site < 0 || hor < 0 || ver < 0 {
		return nil
	}
	x := t.ColumnIndex(colXOffset)
	y := t.ColumnIndex(colYOffset)
	z := t.ColumnIndex(colZOffset)

	idx := &PositionIndex{byLocation: make(map[posKey]offsets, len(t.Rows))}
	for _, row := range t.Rows {
		k := posKey{site: row[site], hor: row[hor], ver: row[ver]}
		var o offsets
		if x >= 0 {
			o.x = row[x]
		}
		if y >= 0 {
			o.y = row[y]
		}
		if z >= 0 {
			o.z = row[z]
		}
		idx.byLocation[k] = o
	}
	return idx
}

// Lookup returns the offsets for a sensor location.
func (p *PositionIndex) Lookup(site, hor, ver string) (x, y, z string, ok bool) {
	o, ok := p.byLocation[posKey{site: site, hor: hor, ver: ver}]
	return o.x, o.y, o.z, ok
}

// EnrichPositions augments a file's rows with positional metadata before
// the outer union: the site code always, the horizontal/vertical indices
// when the file name carries them, and spatial offsets when the position
// index knows the location. Position semantics are file-local, so this
// must run per file, never on the merged table.
//
// Columns the file already has are left untouched.
func EnrichPositions(t *tables.Table, f *tables.SourceFile, idx *PositionIndex) {
	t.InsertColumn(0, colSiteID, f.Site)
	if !f.HasPosition() {
		return
	}
	t.InsertColumn(1, colHorIndex, f.Hor)
	t.InsertColumn(2, colVerIndex, f.Ver)

	if idx == nil {
		return
	}
	x, y, z, ok := idx.Lookup(f.Site, f.Hor, f.Ver)
	if !ok {
		return
	}
	t.AddColumn(colXOffset, x)
	t.AddColumn(colYOffset, y)
	t.AddColumn(colZOffset, z)
}

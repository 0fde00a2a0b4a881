package tables

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/agentstation/utc"

	"github.com/fluxfield/tablestack/pkg/errors"
)

// SourceFile is the typed identity of one discovered data file. File names
// are parsed exactly once, at discovery; everything downstream operates on
// this record and never re-parses the name.
//
// The file name grammar is dot-separated tokens:
//
//	<SITE>.<table>[_pub][.<HOR>.<VER>][.<YYYY-MM>].<PUBTOKEN>.csv
//
// where PUBTOKEN is a compact UTC timestamp (20200201T000000Z) whose
// lexicographic order equals chronological order.
type SourceFile struct {
	Path  string // full path; the file's identity
	Name  string // base name
	Size  int64  // bytes, from discovery
	Site  string // site code (or lab identifier for lab tables)
	Table string // table name with any _pub suffix stripped
	Hor   string // horizontal sensor index ("" when absent)
	Ver   string // vertical sensor index ("" when absent)
	Month string // collection month YYYY-MM ("" when absent)

	// PubToken is the raw publication token; recency comparisons use its
	// lexicographic order.
	PubToken string

	// Published is the parsed publication timestamp.
	Published utc.Time
}

// pubTokenLayout is the compact UTC layout of publication tokens.
const pubTokenLayout = "20060102T150405Z"

var (
	siteRe  = regexp.MustCompile(`^[A-Z][A-Z0-9]{1,11}$`)
	indexRe = regexp.MustCompile(`^\d{3}$`)
	monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
	pubRe   = regexp.MustCompile(`^\d{8}T\d{6}Z$`)
)

// ParseSourceFile parses a file path into a SourceFile record.
// size is the file's byte size as reported by discovery.
func ParseSourceFile(path string, size int64) (*SourceFile, error) {
	name := filepath.Base(path)
	base := strings.TrimSuffix(name, filepath.Ext(name))

	tokens := strings.Split(base, ".")
	if len(tokens) < 3 {
		return nil, badName(path, "want at least site, table and publication tokens")
	}

	f := &SourceFile{Path: path, Name: name, Size: size}

	f.Site = tokens[0]
	if !siteRe.MatchString(f.Site) {
		return nil, badName(path, "site token "+f.Site)
	}

	// Table names may carry a _pub suffix that is not part of the
	// dictionary identity.
	f.Table = strings.TrimSuffix(tokens[1], "_pub")
	if f.Table == "" {
		return nil, badName(path, "empty table token")
	}

	f.PubToken = tokens[len(tokens)-1]
	if !pubRe.MatchString(f.PubToken) {
		return nil, badName(path, "publication token "+f.PubToken)
	}
	ts, err := time.Parse(pubTokenLayout, f.PubToken)
	if err != nil {
		return nil, badName(path, "publication token "+f.PubToken)
	}
	f.Published = utc.Time{Time: ts.UTC()}

	// Optional middle tokens: a HOR.VER index pair and a collection month.
	middle := tokens[2 : len(tokens)-1]
	for i := 0; i < len(middle); i++ {
		switch {
		case indexRe.MatchString(middle[i]) && i+1 < len(middle) && indexRe.MatchString(middle[i+1]):
			f.Hor, f.Ver = middle[i], middle[i+1]
			i++
		case monthRe.MatchString(middle[i]):
			f.Month = middle[i]
		default:
			return nil, badName(path, "unrecognized token "+middle[i])
		}
	}

	return f, nil
}

// HasPosition reports whether the file name carried a HOR.VER index pair.
func (f *SourceFile) HasPosition() bool {
	return f.Hor != "" && f.Ver != ""
}

func badName(path, detail string) error {
	return fmt.Errorf("%w %s: %s", errors.ErrBadFileName, filepath.Base(path), detail)
}

// MoreRecent reports whether a was published after b, with ties broken by
// full lexicographic path order so selection is deterministic even when
// two candidates share a publication token.
func MoreRecent(a, b *SourceFile) bool {
	if a.PubToken != b.PubToken {
		return a.PubToken > b.PubToken
	}
	return a.Path > b.Path
}

// Package scan enumerates candidate data files in an input directory.
// It is the discovery collaborator of the stacking engine: it reports
// paths and sizes only, and filters out everything that can never be a
// candidate (archives, directories, previously stacked outputs).
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fluxfield/tablestack/pkg/constants"
	"github.com/fluxfield/tablestack/pkg/errors"
)

// File is one discovered candidate.
type File struct {
	Path string
	Size int64
}

// archiveExts are extensions discovery never offers to the engine.
var archiveExts = map[string]bool{
	".zip": true,
	".gz":  true,
	".tar": true,
}

// Dir walks dir recursively and returns all candidate delimited files in
// deterministic path order. The stackedFiles output directory of a
// previous run is skipped entirely.
func Dir(dir string) ([]File, error) {
	var files []File
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == constants.StackedDir {
				return filepath.SkipDir
			}
			return nil
		}
		if archiveExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".csv") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, File{Path: path, Size: info.Size()})
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewConfigurationError("input", dir, "directory does not exist")
		}
		return nil, errors.WrapIO("read", dir, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

package stacker

import (
	"runtime"

	"github.com/fluxfield/tablestack/pkg/constants"
	"github.com/fluxfield/tablestack/pkg/errors"
	"github.com/fluxfield/tablestack/pkg/tables"
)

// poolSize decides the worker count once, before any table is processed.
//
// Requesting more workers than the machine has cores is a hard error
// before any work begins. A forced run uses the requested count as-is.
// Otherwise the aggregate size of the candidate files decides: above the
// threshold the pool scales to the full core count (scaled=true so the
// decision is reported), below it the requested count stands.
func poolSize(requested int, force bool, totalBytes int64) (workers int, scaled bool, err error) {
	if requested <= 0 {
		requested = constants.DefaultWorkers
	}
	cores := runtime.NumCPU()
	if requested > cores {
		return 0, false, errors.NewConfigurationError("workers", requested,
			"exceeds available cores")
	}
	if force {
		return requested, false, nil
	}
	if totalBytes > constants.ParallelSizeThreshold {
		return cores, true, nil
	}
	return requested, false, nil
}

// candidateBytes is the aggregate size of all candidate files, the input
// to the automatic scaling decision. Discovery has already excluded
// archives and previously stacked outputs.
func candidateBytes(files []*tables.SourceFile) int64 {
	var total int64
	for _, f := range files {
		total += f.Size
	}
	return total
}

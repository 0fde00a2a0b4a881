// Package constants provides shared constants used throughout the tablestack codebase.
// This includes size thresholds, file permissions, and naming conventions that
// should be consistent across the application.
package constants

// Parallelism constants govern the worker pool sizing policy
const (
	// DefaultWorkers is the worker count used when the caller requests nothing
	DefaultWorkers = 1

	// ParallelSizeThreshold is the aggregate input size (bytes) above which
	// the pool automatically scales to the machine's full core count
	ParallelSizeThreshold = 2_500_000_000
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Output naming constants define the canonical names under the output directory
const (
	// StackedDir is the subdirectory of the input directory that receives all outputs
	StackedDir = "stackedFiles"

	// VariablesFile is the canonical name for the copied variable dictionary
	VariablesFile = "variables.csv"

	// ValidationFile is the canonical name for the copied validation rules
	ValidationFile = "validation.csv"

	// SensorPositionsFile is the canonical name for the consolidated position table
	SensorPositionsFile = "sensor_positions.csv"
)

// Reserved table names recognized in file names for sidecar handling
const (
	// VariablesTable is the table name of variable-dictionary publications
	VariablesTable = "variables"

	// ValidationTable is the table name of validation-rule publications
	ValidationTable = "validation"

	// SensorPositionsTable is the table name of sensor-position publications
	SensorPositionsTable = "sensor_positions"
)

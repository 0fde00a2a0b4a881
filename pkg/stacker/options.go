package stacker

import (
	"github.com/fluxfield/tablestack/pkg/tables"
)

// Option is a function that configures a Stacker instance
type Option func(*config) error

// config holds the run configuration assembled from options.
type config struct {
	workers       int
	forceParallel bool
	tableTypes    *tables.TableTypeDictionary
}

// WithWorkers configures the requested worker count. The sizing policy
// may scale it up automatically unless the run is forced parallel.
func WithWorkers(n int) Option {
	return func(c *config) error {
		c.workers = n
		return nil
	}
}

// WithForceParallel configures whether the requested worker count is used
// as-is, skipping the automatic size-based scaling decision.
func WithForceParallel(enabled bool) Option {
	return func(c *config) error {
		c.forceParallel = enabled
		return nil
	}
}

// WithTableTypes configures the table-type dictionary used for
// classification, replacing the embedded default.
func WithTableTypes(dict *tables.TableTypeDictionary) Option {
	return func(c *config) error {
		c.tableTypes = dict
		return nil
	}
}

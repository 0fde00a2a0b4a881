// Package main provides the entry point for the tablestack CLI tool.
package main

import (
	"github.com/fluxfield/tablestack/cmd/tablestack/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}

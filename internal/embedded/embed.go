package embedded

import (
	"embed"
)

// FS embeds the default table-type dictionary shipped with the binary.
//
//go:embed tabletypes/*
var FS embed.FS

// TableTypes returns the embedded table-type dictionary document.
func TableTypes() []byte {
	data, err := FS.ReadFile("tabletypes/table_types.yaml")
	if err != nil {
		// The file is compiled into the binary; a missing entry is a
		// build defect, not a runtime condition.
		panic(err)
	}
	return data
}

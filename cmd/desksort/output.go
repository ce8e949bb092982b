package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeList writes mappings or history records in the requested format. A
// nil slice is written as an empty list so scripts never see null.
func writeList[T any](cmd *cobra.Command, format string, items []T) error {
	if items == nil {
		items = []T{}
	}
	switch format {
	case "yaml":
		return writeYAML(cmd.OutOrStdout(), items)
	default:
		return writeJSON(cmd, items)
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"desksort/internal/app"
	"desksort/internal/config"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err with a follow-up hint for the failures a user can
// act on. Interrupted runs exit quietly.
func reportError(w io.Writer, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	fmt.Fprintln(w, "desksort:", err)
	if hint := errorHint(err); hint != "" {
		fmt.Fprintln(w, "hint:", hint)
	}
}

func errorHint(err error) string {
	var partial *partialSortError
	switch {
	case errors.As(err, &partial):
		return "failed entries were left on the desktop; run `desksort history` to see what moved"
	case errors.Is(err, app.ErrSortInProgress):
		return "another desksort run holds the lock; retry once it finishes"
	case errors.Is(err, config.ErrEnvironmentPathNotFound):
		return "set paths.desktop_dir in the config file or DESKSORT_DESKTOP_DIR"
	default:
		return ""
	}
}

package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"desksort/internal/app"
	"desksort/internal/sorter"
)

type partialSortError struct {
	failed int
}

func (e *partialSortError) Error() string {
	if e.failed == 1 {
		return "1 entry could not be sorted"
	}
	return fmt.Sprintf("%d entries could not be sorted", e.failed)
}

func newSortCommand(ctx *commandContext) *cobra.Command {
	var dirFlag string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Move desktop entries into their category folders",
		Long: `Scan the desktop once and move every file and folder with a mapped category
into its destination. Existing files are never overwritten; name collisions get
a numeric suffix. Entries that fail are reported and left in place, and the
command exits with status 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var report *sorter.Report
			err := ctx.withApp(cmd, func(runCtx context.Context, application *app.App) error {
				var sortErr error
				if dir := strings.TrimSpace(dirFlag); dir != "" {
					report, sortErr = application.SortDir(runCtx, dir)
				} else {
					report, sortErr = application.Sort(runCtx)
				}
				return sortErr
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				if err := writeJSON(cmd, report); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				renderSortReport(out, report, shouldColorize(out))
			}

			if failed := len(report.Failed()); failed > 0 {
				return &partialSortError{failed: failed}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dirFlag, "dir", "", "Sort this directory instead of the configured desktop")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	return cmd
}

func renderSortReport(out io.Writer, report *sorter.Report, colorize bool) {
	moved := report.Moved()
	failed := report.Failed()

	for _, line := range renderSectionHeader("Sort "+report.Root, colorize) {
		fmt.Fprintln(out, line)
	}

	fmt.Fprintln(out, renderCountLine("Moved", statusMoved, len(moved), colorize))
	fmt.Fprintln(out, renderCountLine("Failed", statusFailed, len(failed), colorize))
	fmt.Fprintln(out, renderStatusLine("Duration", statusPlain, report.Duration().Round(time.Millisecond).String(), colorize))

	if len(moved) > 0 {
		rows := make([][]string, 0, len(moved))
		for _, o := range moved {
			rows = append(rows, []string{o.Source, o.Key, o.Destination})
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderTable(sortedColumns, rows))
	}

	if len(failed) > 0 {
		rows := make([][]string, 0, len(failed))
		for _, o := range failed {
			reason := "unknown error"
			if o.Err != nil {
				reason = o.Err.Error()
			}
			rows = append(rows, []string{o.Source, reason})
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderTable(failedColumns, rows))
	}
}

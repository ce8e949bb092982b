package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"desksort/internal/app"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent moves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd, func(runCtx context.Context, application *app.App) error {
				records, err := application.History(runCtx, limit)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeList(cmd, "json", records)
				}

				out := cmd.OutOrStdout()
				if len(records) == 0 {
					fmt.Fprintln(out, "No moves recorded")
					return nil
				}
				rows := make([][]string, 0, len(records))
				for _, rec := range records {
					rows = append(rows, []string{
						rec.MovedAt.Local().Format("2006-01-02 15:04:05"),
						shortScanID(rec.ScanID),
						rec.Source,
						rec.Destination,
					})
				}
				fmt.Fprintln(out, renderTable([]tableColumn{{title: "Moved At"}, {title: "Scan"}, {title: "Source"}, {title: "Destination"}}, rows))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of moves to show (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func shortScanID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

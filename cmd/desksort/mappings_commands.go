package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"desksort/internal/app"
	"desksort/internal/classify"
)

func newMappingsCommand(ctx *commandContext) *cobra.Command {
	mappingsCmd := &cobra.Command{
		Use:     "mappings",
		Aliases: []string{"mapping"},
		Short:   "Inspect and edit category destinations",
	}

	mappingsCmd.AddCommand(newMappingsListCommand(ctx))
	mappingsCmd.AddCommand(newMappingsGetCommand(ctx))
	mappingsCmd.AddCommand(newMappingsSetCommand(ctx))
	mappingsCmd.AddCommand(newMappingsExportCommand(ctx))

	return mappingsCmd
}

func newMappingsListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every mapping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd, func(runCtx context.Context, application *app.App) error {
				mappings, err := application.Mappings(runCtx)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeList(cmd, "json", mappings)
				}

				out := cmd.OutOrStdout()
				if len(mappings) == 0 {
					fmt.Fprintln(out, "No mappings configured")
					return nil
				}
				rows := make([][]string, 0, len(mappings))
				for _, m := range mappings {
					category, ok := classify.CategoryFor(m.Key)
					if !ok {
						category = "-"
					}
					rows = append(rows, []string{m.Key, category, m.TargetPath})
				}
				fmt.Fprintln(out, renderTable([]tableColumn{{title: "Key"}, {title: "Default Category"}, {title: "Destination"}}, rows))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newMappingsGetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Show the destination for one key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd, func(runCtx context.Context, application *app.App) error {
				target, ok, err := application.Mapping(runCtx, args[0])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("no mapping for %q", classify.NormalizeKey(args[0]))
				}
				fmt.Fprintln(cmd.OutOrStdout(), target)
				return nil
			})
		},
	}
}

func newMappingsSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY PATH",
		Short: "Point a key at a destination directory",
		Long: `Point a key at a destination directory. KEY is an extension such as "pdf"
or ".tar.gz", or "folder" for directories. Keys are case-insensitive.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd, func(runCtx context.Context, application *app.App) error {
				if err := application.SetMapping(runCtx, args[0], args[1]); err != nil {
					return err
				}
				target, _, err := application.Mapping(runCtx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", classify.NormalizeKey(args[0]), target)
				return nil
			})
		},
	}
}

func newMappingsExportCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print every mapping as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != "json" && format != "yaml" {
				return errors.New("--format must be json or yaml")
			}
			return ctx.withApp(cmd, func(runCtx context.Context, application *app.App) error {
				mappings, err := application.Mappings(runCtx)
				if err != nil {
					return err
				}
				return writeList(cmd, format, mappings)
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml")
	return cmd
}

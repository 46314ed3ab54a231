package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shoebox/internal/catalog"
	"shoebox/internal/config"
	"shoebox/internal/reorg"
)

func newReorganizeCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "reorganize",
		Short: "Move cataloged files into the library tree",
		Long: `Reorganize moves every cataloged file into
<library_dir>/<photos|videos>/<year>/, keyed by the capture year recorded in
the catalog. Only one file per content hash is moved; the remaining copies
stay where they are.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}

			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				summary, err := reorg.New(cfg, store, logger, dryRun).Run(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				verb := "Moved"
				if dryRun {
					verb = "Would move"
				}
				fmt.Fprintf(out, "%s %d of %d cataloged files\n", verb, summary.Moved, summary.Entries)
				if summary.SkippedDuplicates > 0 {
					fmt.Fprintf(out, "Skipped %d duplicate copies\n", summary.SkippedDuplicates)
				}
				if summary.SkippedUnknown > 0 {
					fmt.Fprintf(out, "Skipped %d entries with unrecognized extensions\n", summary.SkippedUnknown)
				}
				if summary.Errors > 0 {
					fmt.Fprintf(out, "Failed to move %d files (see log for details)\n", summary.Errors)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log planned moves without touching the filesystem")
	return cmd
}

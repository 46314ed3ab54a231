package main

import (
	"errors"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"shoebox/internal/catalog"
	"shoebox/internal/config"
	"shoebox/internal/scan"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [root...]",
		Short: "Discover media files and record them in the catalog",
		Long: `Scan walks the given root directories (or paths.roots from the
configuration when none are given), hashes every photo and video it finds,
and records each file in the catalog with its capture date. Files already
cataloged by path are skipped; files whose content matches an earlier entry
are flagged as duplicates.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			roots := args
			if len(roots) == 0 {
				roots = cfg.Paths.Roots
			}
			if len(roots) == 0 {
				return errors.New("no scan roots: pass directories as arguments or set paths.roots in the configuration")
			}
			for i, root := range roots {
				expanded, err := config.ExpandPath(root)
				if err != nil {
					return fmt.Errorf("resolve root %q: %w", root, err)
				}
				roots[i] = expanded
			}

			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}

			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				scanner := scan.New(store, logger)

				if isTerminal(cmd.ErrOrStderr()) {
					var bar *progressbar.ProgressBar
					scanner.SetProgress(func(done, total int) {
						if bar == nil {
							bar = progressbar.NewOptions(total,
								progressbar.OptionSetWriter(cmd.ErrOrStderr()),
								progressbar.OptionSetDescription("cataloging"),
								progressbar.OptionShowCount(),
								progressbar.OptionClearOnFinish(),
							)
						}
						_ = bar.Set(done)
					})
				}

				summary, err := scanner.Run(cmd.Context(), roots)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Discovered %d media files\n", summary.Discovered)
				fmt.Fprintf(out, "Cataloged %d new entries (%d duplicates)\n", summary.Cataloged, summary.Duplicates)
				if summary.SkippedExisting > 0 {
					fmt.Fprintf(out, "Skipped %d already cataloged files\n", summary.SkippedExisting)
				}
				if summary.Errors > 0 {
					fmt.Fprintf(out, "Failed to catalog %d files (see log for details)\n", summary.Errors)
				}
				return nil
			})
		},
	}
}

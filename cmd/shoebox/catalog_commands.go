package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"shoebox/internal/catalog"
	"shoebox/internal/config"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the media catalog",
	}

	catalogCmd.AddCommand(newCatalogListCommand(ctx))
	catalogCmd.AddCommand(newCatalogStatsCommand(ctx))

	return catalogCmd
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	var duplicatesOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cataloged files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				entries, err := store.All(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "Catalog is empty")
					return nil
				}

				headers := []string{"ID", "Hash", "Taken", "Size", "Dup", "Path"}
				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					if duplicatesOnly && !entry.Duplicate {
						continue
					}
					rows = append(rows, []string{
						strconv.FormatInt(entry.ID, 10),
						shortHash(entry.Hash),
						entry.DateTaken,
						strconv.FormatInt(entry.Size, 10),
						yesNo(entry.Duplicate),
						entry.Path,
					})
				}
				if len(rows) == 0 {
					fmt.Fprintln(out, "No duplicates recorded")
					return nil
				}
				aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft, alignLeft}
				fmt.Fprintln(out, renderTable(headers, rows, aligns))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&duplicatesOnly, "duplicates", false, "Show only entries flagged as duplicates")
	return cmd
}

func newCatalogStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog summary counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				stats, err := store.Stats(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Catalog: %s\n", store.Path())
				fmt.Fprintf(out, "Entries: %d\n", stats.Entries)
				fmt.Fprintf(out, "Distinct files: %d\n", stats.DistinctHashes)
				fmt.Fprintf(out, "Duplicates: %d\n", stats.Duplicates)
				return nil
			})
		},
	}
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}

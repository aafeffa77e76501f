package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/pokedex/internal/catalog"
	"github.com/zjrosen/pokedex/internal/presentation"
)

var (
	catalogType string
	catalogJSON bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the record catalog",
	Long: `Print every catalog entry as an aligned table, or as JSON with --json.

Examples:
  # Full catalog
  pokedex catalog

  # Only one type
  pokedex catalog --type dragon
  pokedex catalog -t fire

  # A replacement catalog, as JSON
  pokedex catalog --catalog ./gen2.yaml --json | jq '.[].name'`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	entries := cat.Entries()
	if catalogType != "" {
		t, err := catalog.ParseType(catalogType)
		if err != nil {
			return err
		}
		entries = cat.Filter(t)
	}

	formatter := presentation.NewFormatter(cmd.OutOrStdout())
	dtos := presentation.FromEntries(entries)
	if catalogJSON {
		return formatter.FormatJSON(dtos)
	}
	if err := formatter.FormatEntries(dtos); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), presentation.Summary(len(entries), cat.Len()))
	return err
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogType, "type", "t", "", "only entries of this type")
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "print JSON instead of a table")
	rootCmd.AddCommand(catalogCmd)
}

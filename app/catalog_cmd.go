package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"example.com/beadwork-storefront/app/internal/config"
	"example.com/beadwork-storefront/app/internal/infra/seed"
)

var catalogFormat string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the assembled catalog",
	Long: `Builds the catalog exactly as the server would (seed source plus
generated products) and writes it to stdout.

The output can be fed back in with catalog.source=file. Set
catalog.generate_count to 0 when doing so, otherwise a fresh batch of
generated products is appended after the exported ones.`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogFormat, "format", "f", string(seed.FormatJSON), "Output format: json or yaml")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	format := seed.Format(catalogFormat)
	if format != seed.FormatJSON && format != seed.FormatYAML {
		return fmt.Errorf("unsupported format %q", catalogFormat)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	source, closeSource, err := openSeedSource(ctx, cfg.Catalog)
	if err != nil {
		return err
	}
	defer closeSource()

	store := newCatalogStore(source, cfg.Catalog, zap.NewNop())
	products, err := store.Products().List(ctx)
	if err != nil {
		return err
	}
	categories, err := store.Categories().List(ctx)
	if err != nil {
		return err
	}

	return seed.FromCatalog(products, categories).Encode(cmd.OutOrStdout(), format)
}

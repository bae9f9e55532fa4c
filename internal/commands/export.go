package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ruamngan.app/internal/config"
	"ruamngan.app/internal/docgen"
	"ruamngan.app/internal/quotes"
)

func newExportCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export <quotation-number>",
		Short: "Generate a quotation PDF without running the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), args[0], outDir)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to write the PDF into")
	return cmd
}

func runExport(ctx context.Context, number, outDir string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := openQuoteStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := quotes.Seed(ctx, store); err != nil {
		return fmt.Errorf("seed quotations: %w", err)
	}

	q, err := store.Find(ctx, number)
	if err != nil {
		return fmt.Errorf("quotation %s: %w", number, err)
	}

	exporter := docgen.NewExporter(docgen.NewRasterizer())
	art, err := exporter.Export(ctx, docgen.QuotationRegion(q), q.Number)
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, art.Filename)
	if err := os.WriteFile(path, art.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Println(path)
	return nil
}

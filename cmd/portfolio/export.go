package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-hydrator/internal/config"
	"github.com/jonathan/portfolio-hydrator/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the hydrated page as PDF",
	Long:  "Hydrates the page, then prints it to PDF in headless Chrome or Chromium.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("page", "p", "index.html", "Path to the HTML page")
	exportCmd.Flags().StringP("base", "b", "", "Directory or http(s) URL holding data.json")
	exportCmd.Flags().StringP("out", "o", "portfolio.pdf", "Path to output PDF file")
	exportCmd.Flags().Bool("landscape", false, "Print in landscape orientation")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := resolveSettings(cmd, true)
	if err != nil {
		return err
	}
	if cfg.Output == "" {
		cfg.Output, _ = cmd.Flags().GetString("out")
	}
	landscape, _ := cmd.Flags().GetBool("landscape")

	opts := &export.Options{PrintBackground: true, Landscape: landscape}
	if err := exportPDF(cmd.Context(), cfg, logger, opts); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", cfg.Output)
	return nil
}

// exportPDF hydrates the page and prints it. The hydrated HTML is written
// next to the page so relative stylesheets and images still resolve.
func exportPDF(ctx context.Context, cfg config.Config, logger *slog.Logger, opts *export.Options) error {
	out, _, err := hydratePage(ctx, cfg, logger)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(cfg.Page), ".portfolio-export-*.html")
	if err != nil {
		return fmt.Errorf("failed to create temporary page: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.WriteString(out); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temporary page: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write temporary page: %w", err)
	}

	abs, err := filepath.Abs(tmp.Name())
	if err != nil {
		return err
	}

	pdf, err := export.PDFFromURL(ctx, "file://"+filepath.ToSlash(abs), opts)
	if err != nil {
		return err
	}
	return writeOutput(cfg.Output, nil, pdf)
}

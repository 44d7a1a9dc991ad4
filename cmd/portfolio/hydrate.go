package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/jonathan/portfolio-hydrator/internal/config"
	"github.com/jonathan/portfolio-hydrator/internal/fetch"
	"github.com/jonathan/portfolio-hydrator/internal/loader"
	"github.com/jonathan/portfolio-hydrator/internal/rendering"
)

// hydratePage renders cfg.Page with data from cfg.Base. A load failure
// returns the page carrying the notice together with a *rendering.LoadError.
func hydratePage(ctx context.Context, cfg config.Config, logger *slog.Logger) (string, *loader.Result, error) {
	opts := fetch.DefaultOptions()
	if timeout := cfg.FetchTimeout(); timeout > 0 {
		opts.Timeout = timeout
	}

	primary, err := loader.NewPrimarySource(cfg.Base, afero.NewOsFs(), opts)
	if err != nil {
		return "", nil, fmt.Errorf("failed to resolve data source: %w", err)
	}

	page, err := os.Open(cfg.Page)
	if err != nil {
		return "", nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer func() { _ = page.Close() }()

	return rendering.NewHydrator(primary, logger).HydrateHTML(ctx, page)
}

// writeOutput writes data to path, creating parent directories, or to
// stdout when path is empty.
func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

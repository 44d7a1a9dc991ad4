package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-hydrator/internal/config"
	"github.com/jonathan/portfolio-hydrator/internal/loader"
	"github.com/jonathan/portfolio-hydrator/internal/observability"
	"github.com/jonathan/portfolio-hydrator/internal/rendering"
	"github.com/jonathan/portfolio-hydrator/internal/watch"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Hydrate a portfolio page and write the HTML",
	Long: "Loads data.json from --base (a directory or http(s) URL, default the page's directory), " +
		"falls back to the page's inline #portfolio-data, and writes the hydrated page.",
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("page", "p", "index.html", "Path to the HTML page to hydrate")
	renderCmd.Flags().StringP("base", "b", "", "Directory or http(s) URL holding data.json")
	renderCmd.Flags().StringP("out", "o", "", "Path to output HTML file (default stdout)")
	renderCmd.Flags().BoolP("watch", "w", false, "Re-render whenever the page or data file changes")
	renderCmd.Flags().BoolP("verbose", "v", false, "Print a summary of the loaded profile")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := resolveSettings(cmd, true)
	if err != nil {
		return err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	watchMode, _ := cmd.Flags().GetBool("watch")

	r := &pageRenderer{cfg: cfg, logger: logger, stdout: cmd.OutOrStdout()}
	if verbose {
		r.printer = observability.NewPrinter(cmd.ErrOrStderr())
	}

	if !watchMode {
		return r.render(cmd.Context())
	}
	if err := r.checkWatchable(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := r.render(ctx); err != nil {
		logger.Error("render failed", "error", err)
	}
	return r.watch(ctx)
}

// pageRenderer hydrates the configured page into the configured output.
type pageRenderer struct {
	cfg     config.Config
	logger  *slog.Logger
	stdout  io.Writer
	printer *observability.Printer
}

// render writes the hydrated page. When no data could be loaded the page
// with its notice is still written and the load error is returned.
func (r *pageRenderer) render(ctx context.Context) error {
	out, result, err := hydratePage(ctx, r.cfg, r.logger)

	var loadErr *rendering.LoadError
	if err != nil && !errors.As(err, &loadErr) {
		return err
	}

	if writeErr := writeOutput(r.cfg.Output, r.stdout, []byte(out)); writeErr != nil {
		return writeErr
	}
	if loadErr != nil {
		return loadErr
	}

	if r.printer != nil {
		r.printer.PrintLoadResult(result)
		r.printer.PrintProfile(result.Profile)
	}
	if r.cfg.Output != "" {
		r.logger.Info("rendered portfolio page", "page", r.cfg.Page, "output", r.cfg.Output, "source", result.Source)
	}
	return nil
}

// watchedFiles lists the page and, for a local base, its data file.
func (r *pageRenderer) watchedFiles() []string {
	files := []string{r.cfg.Page}
	if !loader.IsRemote(r.cfg.Base) {
		files = append(files, filepath.Join(r.cfg.Base, loader.DataFileName))
	}
	return files
}

// checkWatchable rejects outputs that would re-trigger the watcher on
// every write.
func (r *pageRenderer) checkWatchable() error {
	if r.cfg.Output == "" {
		return fmt.Errorf("--watch requires --out")
	}
	out, err := filepath.Abs(r.cfg.Output)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", r.cfg.Output, err)
	}
	for _, f := range r.watchedFiles() {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		if abs == out {
			return fmt.Errorf("--out %s is a watched file; write to a different path", r.cfg.Output)
		}
	}
	return nil
}

// watch re-renders on every change until ctx is cancelled.
func (r *pageRenderer) watch(ctx context.Context) error {
	w := &watch.Watcher{
		Files:  r.watchedFiles(),
		Logger: r.logger,
		OnChange: func(name string) {
			r.logger.Info("change detected, re-rendering", "path", name)
			if err := r.render(ctx); err != nil {
				r.logger.Error("render failed", "error", err)
			}
		},
	}

	r.logger.Info("watching for changes", "files", w.Files)
	return w.Run(ctx)
}

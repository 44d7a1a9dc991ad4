package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-hydrator/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the hydrated portfolio page over HTTP",
	Long: "Start an HTTP server that hydrates the page on every request and serves " +
		"data.json, /health and the static assets next to the page.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	serveCmd.Flags().StringP("page", "p", "index.html", "Path to the HTML page to serve")
	serveCmd.Flags().StringP("base", "b", "", "Directory or http(s) URL holding data.json")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := resolveSettings(cmd, true)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:         cfg.Port,
		PagePath:     cfg.Page,
		Base:         cfg.Base,
		FetchTimeout: cfg.FetchTimeout(),
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

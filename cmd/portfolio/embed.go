package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-hydrator/internal/loader"
	"github.com/jonathan/portfolio-hydrator/internal/rendering"
)

var embedCmd = &cobra.Command{
	Use:   "embed",
	Short: "Embed a profile document into a page",
	Long: "Writes a data.json document into the page's script#portfolio-data element so the " +
		"page renders even where data.json cannot be fetched.",
	RunE: runEmbed,
}

func init() {
	embedCmd.Flags().StringP("page", "p", "index.html", "Path to the HTML page")
	embedCmd.Flags().StringP("data", "d", "", "Path to the profile document (default data.json next to the page)")
	embedCmd.Flags().StringP("out", "o", "", "Path to output HTML file (default stdout)")
	rootCmd.AddCommand(embedCmd)
}

func runEmbed(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := resolveSettings(cmd, true)
	if err != nil {
		return err
	}
	dataPath, _ := cmd.Flags().GetString("data")
	if dataPath == "" {
		dataPath = filepath.Join(filepath.Dir(cfg.Page), loader.DataFileName)
	}

	out, err := embedFile(cfg.Page, dataPath)
	if err != nil {
		return err
	}
	if err := writeOutput(cfg.Output, cmd.OutOrStdout(), []byte(out)); err != nil {
		return err
	}

	logger.Debug("embedded profile document", "page", cfg.Page, "data", dataPath)
	return nil
}

// embedFile returns the page at pagePath with the document at dataPath inlined.
func embedFile(pagePath, dataPath string) (string, error) {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return "", fmt.Errorf("failed to read profile document: %w", err)
	}

	page, err := os.Open(pagePath)
	if err != nil {
		return "", fmt.Errorf("failed to open page: %w", err)
	}
	defer func() { _ = page.Close() }()

	doc, err := rendering.ParsePage(page)
	if err != nil {
		return "", err
	}
	if err := loader.Embed(doc, data); err != nil {
		return "", err
	}
	return rendering.SerializePage(doc)
}

// Package main provides the entry point for the portfolio page hydrator.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio page hydrator",
	Long: "Portfolio fills a static portfolio page from a JSON profile document (data.json), " +
		"falling back to the page's inline #portfolio-data payload.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Int("fetch-timeout", 0, "Timeout in seconds for fetching a remote data.json")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

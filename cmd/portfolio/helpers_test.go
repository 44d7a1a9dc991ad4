package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const sitePage = `<!DOCTYPE html>
<html><head><title>Portfolio</title></head>
<body>
<main>
<h1 id="name">Placeholder</h1>
<p id="tagline"></p>
<div id="about-text"></div>
<ul id="skills-list"></ul>
<div id="projects-grid"></div>
</main>
<footer><span id="name-footer"></span> <span id="year"></span></footer>
</body></html>`

const siteData = `{
  "name": "Ada Lovelace",
  "tagline": "Analyst",
  "about": "First.\n\nSecond.",
  "skills": ["Go", "SQL"],
  "projects": [{"name": "Engine", "tags": ["math"]}]
}`

// getBinaryPath returns the path to the portfolio binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "portfolio"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/portfolio ./cmd/portfolio'", binaryPath)
	}

	return binaryPath
}

// writeSite creates a site directory holding index.html and, when data is
// non-empty, data.json. It returns the directory.
func writeSite(t *testing.T, page, data string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(page), 0644))
	if data != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "data.json"), []byte(data), 0644))
	}
	return dir
}

// clearEnv blanks the variables that config.ApplyEnv reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORTFOLIO_PAGE", "PORTFOLIO_BASE", "PORTFOLIO_OUTPUT", "PORT", "LOG_FORMAT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

// newTestCommand returns a command carrying every settings flag, parsed from args.
func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("log-format", "", "")
	cmd.Flags().String("log-level", "", "")
	cmd.Flags().Int("fetch-timeout", 0, "")
	cmd.Flags().String("page", "index.html", "")
	cmd.Flags().String("base", "", "")
	cmd.Flags().String("out", "", "")
	cmd.Flags().Int("port", 8080, "")
	require.NoError(t, cmd.ParseFlags(args))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd
}

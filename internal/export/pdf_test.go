package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFFromURL_NoBrowser(t *testing.T) {
	if BrowserAvailable() {
		t.Skip("browser installed; covered by TestPDFFromURL_Renders")
	}
	_, err := PDFFromURL(context.Background(), "about:blank", nil)
	assert.ErrorIs(t, err, ErrBrowserNotFound)
}

func TestPDFFromURL_Renders(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser tests in short mode")
	}
	if !BrowserAvailable() {
		t.Skip("Chrome/Chromium not installed")
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"), []byte("h1 { color: navy; }"), 0o644))
	page := filepath.Join(dir, "index.html")
	html := `<html><head><link rel="stylesheet" href="style.css"></head><body><h1>Ada Lovelace</h1></body></html>`
	require.NoError(t, os.WriteFile(page, []byte(html), 0o644))

	pdf, err := PDFFromURL(context.Background(), "file://"+filepath.ToSlash(page), &Options{PrintBackground: true, Landscape: true})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
}

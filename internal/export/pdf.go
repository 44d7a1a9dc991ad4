// Package export prints hydrated portfolio pages to PDF in a headless browser.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds a single PDF export.
const DefaultTimeout = 30 * time.Second

// ErrBrowserNotFound is returned when no Chrome or Chromium binary is installed.
var ErrBrowserNotFound = errors.New("chrome or chromium not found")

// browserNames are the executables chromedp looks for.
var browserNames = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"headless-shell",
}

// BrowserAvailable reports whether a Chrome or Chromium executable is on PATH.
func BrowserAvailable() bool {
	for _, name := range browserNames {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

// Options configures PDF printing.
type Options struct {
	Timeout         time.Duration
	PrintBackground bool
	Landscape       bool
}

// PDFFromURL navigates to url and prints the page. Hydrated pages are
// exported from a file:// URL so their relative assets resolve.
func PDFFromURL(ctx context.Context, url string, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = &Options{Timeout: DefaultTimeout, PrintBackground: true}
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if !BrowserAvailable() {
		return nil, ErrBrowserNotFound
	}

	slog.Debug("starting headless browser for export", "url_length", len(url))

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(opts.PrintBackground).
				WithLandscape(opts.Landscape).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("browser export failed: %w", err)
	}

	slog.Debug("exported PDF", "bytes", len(pdf))
	return pdf, nil
}

// Package watch re-runs a callback when watched files change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 200 * time.Millisecond

// Watcher monitors a set of files and reports changes to OnChange.
// Directories are watched rather than files so that editors which replace
// a file on save keep being observed.
type Watcher struct {
	Files    []string
	Debounce time.Duration
	OnChange func(name string)
	Logger   *slog.Logger
}

// Run blocks until ctx is cancelled or the underlying watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	wanted := make(map[string]bool, len(w.Files))
	dirs := make(map[string]bool)
	for _, f := range w.Files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		wanted[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		logger.Debug("added directory to watcher", "path", dir)
	}

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending string
	)
	stopTimer := func() {
		if timer != nil {
			timer.Stop()
		}
	}
	defer stopTimer()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("file system watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !wanted[abs] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("file changed", "path", event.Name, "op", event.Op.String())

			pending = event.Name
			stopTimer()
			timer = time.NewTimer(debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			if w.OnChange != nil {
				w.OnChange(pending)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("file system watcher error", "error", err)
		}
	}
}

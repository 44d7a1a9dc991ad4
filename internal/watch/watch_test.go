package watch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, files ...string) (chan string, context.CancelFunc, chan error) {
	t.Helper()
	changes := make(chan string, 10)
	ctx, cancel := context.WithCancel(context.Background())

	w := &Watcher{
		Files:    files,
		Debounce: 20 * time.Millisecond,
		OnChange: func(name string) { changes <- name },
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	// Give the watcher time to register its directories.
	time.Sleep(100 * time.Millisecond)
	return changes, cancel, done
}

func TestWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(data, []byte(`{}`), 0o644))

	changes, cancel, done := startWatcher(t, data)
	defer cancel()

	require.NoError(t, os.WriteFile(data, []byte(`{"name": "x"}`), 0o644))

	select {
	case name := <-changes:
		assert.Equal(t, data, name)
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(data, []byte(`{}`), 0o644))

	changes, cancel, _ := startWatcher(t, data)
	defer cancel()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644))

	select {
	case name := <-changes:
		t.Fatalf("unexpected change for %s", name)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(page, []byte("<html></html>"), 0o644))

	changes := make(chan string, 10)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := &Watcher{
		Files:    []string{page},
		Debounce: 300 * time.Millisecond,
		OnChange: func(name string) { changes <- name },
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	go func() { _ = w.Run(ctx) }()
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(page, []byte("<html><body></body></html>"), 0o644))
	}

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}

	select {
	case <-changes:
		t.Fatal("burst produced more than one change")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := &Watcher{Files: []string{filepath.Join(t.TempDir(), "nope", "data.json")}}
	err := w.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}

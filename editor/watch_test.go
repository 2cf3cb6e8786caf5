package editor

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchFileMissingPathDegradesSilently(t *testing.T) {
	e := simEditor(t, 20, 5, "x")
	e.watchFile(filepath.Join(t.TempDir(), "gone.txt"))
	if e.fileWatcher != nil {
		t.Fatalf("expected no watcher for a missing file")
	}
	// Closing with no watcher must be safe; Run defers it
	// unconditionally.
	e.closeWatcher()
}

func TestWatchFilePostsChangeEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("v1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	e := simEditor(t, 20, 5, "x")
	e.watchFile(path)
	if e.fileWatcher == nil {
		t.Skip("fsnotify unavailable on this platform")
	}
	defer e.closeWatcher()

	if err := os.WriteFile(path, []byte("v2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !e.screen.HasPendingEvent() {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		if fe, ok := e.screen.PollEvent().(*FileChangedEvent); ok {
			if fe.Path != path {
				t.Fatalf("expected event for %q, got %q", path, fe.Path)
			}
			return
		}
	}
	t.Fatalf("expected a file change event before the deadline")
}

package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherDetectsWrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "maze.toml")
	if err := os.WriteFile(path, []byte("[grid]\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	// Give the directory watch a moment to register, then modify the file.
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte("[grid]\nrows = 3\n"), 0o644); err != nil {
		t.Fatalf("rewrite file: %v", err)
	}

	select {
	case <-w.Changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification after write")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "maze.toml")
	if err := os.WriteFile(path, []byte("[grid]\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write sibling: %v", err)
	}

	select {
	case <-w.Changes:
		t.Fatal("notified for a sibling file")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherCoalescesBursts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "maze.toml")
	if err := os.WriteFile(path, []byte("[grid]\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	time.Sleep(50 * time.Millisecond)
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("[grid]\n"), 0o644); err != nil {
			t.Fatalf("rewrite file: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-w.Changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification after burst")
	}

	// The burst happened within one debounce window; a second notification
	// would mean the writes were not coalesced.
	select {
	case <-w.Changes:
		t.Error("burst produced more than one notification")
	case <-time.After(500 * time.Millisecond):
	}
}

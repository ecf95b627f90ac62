package drawfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	pass := writeFile(t, dir, "pass.yaml", "name: a\n")
	other := writeFile(t, dir, "notes.txt", "x")

	w, err := Watch(pass)
	if err != nil {
		t.Skipf("file watching unavailable: %v", err)
	}
	defer w.Close()

	// Unwatched files in the same directory are ignored.
	if err := os.WriteFile(other, []byte("y"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(pass, []byte("name: b\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	want, _ := filepath.Abs(pass)
	select {
	case got := <-w.Changes():
		if got != want {
			t.Errorf("change = %q, want %q", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherClose(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch(writeFile(t, dir, "pass.toml", "name = \"a\"\n"))
	if err != nil {
		t.Skipf("file watching unavailable: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	select {
	case _, ok := <-w.Changes():
		if ok {
			// A change raced with Close; the channel still closes.
			<-w.Changes()
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Changes not closed after Close")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	if _, err := Watch(filepath.Join(t.TempDir(), "gone", "pass.yaml")); err == nil {
		t.Error("Watch() of a missing directory succeeded")
	}
}

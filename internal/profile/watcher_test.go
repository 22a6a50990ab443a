package profile

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitChange(t *testing.T, w *Watcher) Change {
	t.Helper()
	select {
	case c := <-w.Changes:
		return c
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for profile change")
	}
	return Change{}
}

func TestWatcher_DetectsWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	if err := Save(path, &Profile{BirthDate: "1985-06-15"}); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := Save(path, &Profile{BirthDate: "1990-01-01"}); err != nil {
		t.Fatal(err)
	}

	c := waitChange(t, w)
	if c.Kind != ChangeWritten {
		t.Errorf("Kind = %v, want ChangeWritten", c.Kind)
	}
	if c.File != w.Path {
		t.Errorf("File = %q, want %q", c.File, w.Path)
	}
}

func TestWatcher_DetectsRemove(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	if err := Save(path, &Profile{BirthDate: "1985-06-15"}); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	if c := waitChange(t, w); c.Kind != ChangeRemoved {
		t.Errorf("Kind = %v, want ChangeRemoved", c.Kind)
	}
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-w.Changes:
		t.Errorf("unexpected change for sibling file: %+v", c)
	case <-time.After(4 * debounce):
	}
}

func TestWatcher_StartFailureReleases(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", DefaultFile)
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err == nil {
		t.Fatal("expected Start to fail for a missing directory")
	}

	stopped := make(chan struct{})
	go func() {
		w.Stop()
		w.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(3 * time.Second):
		t.Fatal("Stop blocked after a failed Start")
	}
	if _, ok := <-w.Changes; ok {
		t.Error("Changes should be closed after Stop")
	}
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	t.Parallel()

	w, err := NewWatcher(filepath.Join(t.TempDir(), DefaultFile))
	if err != nil {
		t.Fatal(err)
	}

	stopped := make(chan struct{})
	go func() {
		w.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(3 * time.Second):
		t.Fatal("Stop blocked without Start")
	}
}

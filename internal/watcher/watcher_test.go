package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu       sync.Mutex
	upserted []string
	removed  []string
}

func (r *recorder) Upsert(_ context.Context, path string) {
	r.mu.Lock()
	r.upserted = append(r.upserted, path)
	r.mu.Unlock()
}

func (r *recorder) Remove(_ context.Context, path string) {
	r.mu.Lock()
	r.removed = append(r.removed, path)
	r.mu.Unlock()
}

func (r *recorder) snapshot() (upserted, removed []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.upserted...), append([]string(nil), r.removed...)
}

func hasSuffix(paths []string, suffix string) bool {
	for _, p := range paths {
		if strings.HasSuffix(p, suffix) {
			return true
		}
	}
	return false
}

// waitFor polls cond until it holds or the timeout passes.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return cond()
}

func startWatcher(t *testing.T, roots []string, h Handler, opts ...Option) *Watcher {
	t.Helper()
	w := New(roots, h, append([]Option{WithDebounce(50 * time.Millisecond)}, opts...)...)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		w.Stop()
		cancel()
	})
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	return w
}

func TestWatcher_DebounceAndExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := mkdirAll(sub); err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	startWatcher(t, []string{dir}, rec, WithExtensions([]string{".txt"}))

	path := filepath.Join(sub, "jane.txt")
	for i := 0; i < 3; i++ {
		if err := writeFile(path, "Jane Doe"); err != nil {
			t.Fatal(err)
		}
	}
	if err := writeFile(filepath.Join(sub, "notes.md"), "skip"); err != nil {
		t.Fatal(err)
	}

	ok := waitFor(t, 2*time.Second, func() bool {
		up, _ := rec.snapshot()
		return hasSuffix(up, "jane.txt")
	})
	if !ok {
		t.Fatal("expected jane.txt to be handled")
	}
	time.Sleep(150 * time.Millisecond)
	up, _ := rec.snapshot()
	if hasSuffix(up, "notes.md") {
		t.Errorf("notes.md should be filtered out: %v", up)
	}
	n := 0
	for _, p := range up {
		if p == path {
			n++
		}
	}
	if n != 1 {
		t.Errorf("rapid writes should be debounced into one upsert, got %d", n)
	}
}

func TestWatcher_RemoveCallsHandler(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gone.txt")
	if err := writeFile(path, "x"); err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	startWatcher(t, []string{dir}, rec, WithExtensions([]string{".txt"}))

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	ok := waitFor(t, 2*time.Second, func() bool {
		_, rm := rec.snapshot()
		return hasSuffix(rm, "gone.txt")
	})
	if !ok {
		t.Error("expected gone.txt to be removed")
	}
}

func TestMatchExtension(t *testing.T) {
	tests := []struct {
		path       string
		extensions []string
		want       bool
	}{
		{"/a/b.pdf", []string{".pdf", ".docx"}, true},
		{"/a/b.DOCX", []string{".pdf", ".docx"}, true},
		{"/a/b.txt", []string{"txt"}, true},
		{"/a/b.md", []string{".txt"}, false},
		{"/a/b", nil, true},
		{"/a/b", []string{}, true},
	}
	for _, tt := range tests {
		if got := matchExtension(tt.path, tt.extensions); got != tt.want {
			t.Errorf("matchExtension(%q, %v) = %v, want %v", tt.path, tt.extensions, got, tt.want)
		}
	}
}

func TestWatcher_Sync(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "ignore.xyz", "nested/b.txt"} {
		p := filepath.Join(dir, name)
		if err := mkdirAll(filepath.Dir(p)); err != nil {
			t.Fatal(err)
		}
		if err := writeFile(p, "hello"); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("recursive", func(t *testing.T) {
		rec := &recorder{}
		w := startWatcher(t, []string{dir}, rec, WithExtensions([]string{".txt"}))
		w.Sync(context.Background())
		up, _ := rec.snapshot()
		if len(up) != 2 || !hasSuffix(up, "a.txt") || !hasSuffix(up, "b.txt") {
			t.Errorf("expected a.txt and b.txt, got %v", up)
		}
	})
	t.Run("flat", func(t *testing.T) {
		rec := &recorder{}
		w := startWatcher(t, []string{dir}, rec, WithExtensions([]string{".txt"}), WithRecursive(false))
		w.Sync(context.Background())
		up, _ := rec.snapshot()
		if len(up) != 1 || !hasSuffix(up, "a.txt") {
			t.Errorf("expected only a.txt, got %v", up)
		}
	})
}

func TestWatcher_Start_createsMissingRootDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "inbox", "new")
	startWatcher(t, []string{root}, &recorder{})
	if _, err := os.Stat(root); err != nil {
		t.Errorf("root directory should exist after Start: %v", err)
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w := New([]string{t.TempDir()}, &recorder{})
	w.Stop()
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	w.Stop()
	w.Stop()
}

func TestWatcher_NewDirectoryIsWatched(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{}
	startWatcher(t, []string{dir}, rec, WithExtensions([]string{".txt", ".pdf"}))

	nested := filepath.Join(dir, "batch", "week1")
	if err := mkdirAll(nested); err != nil {
		t.Fatal(err)
	}
	// Give the watcher a moment to register the new directories.
	time.Sleep(100 * time.Millisecond)
	if err := writeFile(filepath.Join(nested, "deep.txt"), "deep content"); err != nil {
		t.Fatal(err)
	}
	if err := writeFile(filepath.Join(nested, "ignore.xyz"), "skip"); err != nil {
		t.Fatal(err)
	}

	ok := waitFor(t, 2*time.Second, func() bool {
		up, _ := rec.snapshot()
		return hasSuffix(up, "deep.txt")
	})
	if !ok {
		up, _ := rec.snapshot()
		t.Errorf("expected deep.txt to be handled, got %v", up)
	}
	up, _ := rec.snapshot()
	if hasSuffix(up, "ignore.xyz") {
		t.Error("ignore.xyz should not be handled")
	}
}

func mkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0600)
}

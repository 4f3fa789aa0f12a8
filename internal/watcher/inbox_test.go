package watcher

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/hyperjump/resumecua/internal/fileid"
	"github.com/hyperjump/resumecua/internal/keyword"
	"github.com/hyperjump/resumecua/internal/pipeline"
	"github.com/hyperjump/resumecua/internal/storage"
)

func TestInbox_UpsertAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewSQLiteStorage(filepath.Join(dir, "candidates.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	idx, err := keyword.NewMemBleveIndex()
	if err != nil {
		t.Fatal(err)
	}
	defer idx.Close()

	inbox := NewInbox(pipeline.New(nil), pipeline.Options{Keywords: []string{"python"}},
		WithStore(store), WithIndex(idx))
	ctx := context.Background()

	path := filepath.Join(dir, "jane.txt")
	if err := writeFile(path, "Jane Doe\njane@example.com\nSkills\nPython, Terraform"); err != nil {
		t.Fatal(err)
	}
	inbox.Upsert(ctx, path)

	id := fileid.CandidateID(path)
	got, err := store.GetCandidate(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Jane Doe" || got.SourceFile != "jane.txt" || got.RelevancyScore == nil {
		t.Errorf("stored candidate = %+v", got)
	}
	res, err := idx.Search(ctx, "terraform", 10, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Hits) != 1 || res.Hits[0].ID != id {
		t.Errorf("search hits = %+v", res.Hits)
	}

	inbox.Remove(ctx, path)
	if _, err := store.GetCandidate(ctx, id); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("after remove: err = %v, want ErrNotFound", err)
	}
	if n, _ := idx.DocCount(); n != 0 {
		t.Errorf("DocCount after remove = %d", n)
	}
	// Removing twice is harmless.
	inbox.Remove(ctx, path)
}

func TestInbox_UpsertStoresUnreadableAsEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewSQLiteStorage(filepath.Join(dir, "candidates.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	path := filepath.Join(dir, "broken.pdf")
	if err := writeFile(path, "not a pdf"); err != nil {
		t.Fatal(err)
	}
	NewInbox(pipeline.New(nil), pipeline.Options{}, WithStore(store)).Upsert(context.Background(), path)

	got, err := store.GetCandidate(context.Background(), fileid.CandidateID(path))
	if err != nil {
		t.Fatal(err)
	}
	if got.SourceFile != "broken.pdf" || got.Error != "" || got.Name != "" {
		t.Errorf("stored record = %+v, want empty record", got)
	}
}

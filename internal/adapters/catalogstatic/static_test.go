package catalogstatic

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const seedJSON = `[
  {"id": "1", "slug": "older", "title": "Older Item", "condition": "B",
   "status": "available", "created_at": "2026-01-01T00:00:00Z"},
  {"id": "2", "slug": "newer", "title": "Newer Item", "condition": "A",
   "status": "available", "created_at": "2026-02-01T00:00:00Z"},
  {"id": "3", "slug": "hidden", "title": "Hidden Item", "condition": "C",
   "status": "draft", "created_at": "2026-03-01T00:00:00Z"}
]`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return path
}

func TestStaticCatalogListItems(t *testing.T) {
	c := New(writeSeed(t, seedJSON))

	items, err := c.ListItems(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2 (drafts filtered)", len(items))
	}
	if items[0].Slug != "newer" {
		t.Fatalf("first item = %q, want newest first", items[0].Slug)
	}
	if items[1].Slug != "older" {
		t.Fatalf("second item = %q", items[1].Slug)
	}
}

func TestStaticCatalogMissingFile(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := c.ListItems(context.Background()); err == nil {
		t.Fatalf("expected an error for a missing seed file")
	}
}

func TestStaticCatalogConfigured(t *testing.T) {
	if New("").Configured() {
		t.Fatalf("empty path should not report configured")
	}
	if !New("catalog.json").Configured() {
		t.Fatalf("non-empty path should report configured")
	}
}

package repo

import (
	"path/filepath"
	"testing"
	"time"

	"fetcharr/internal/database"
	"fetcharr/internal/models"
)

func newTestStore(t *testing.T) *HistoryStore {
	t.Helper()

	db, err := database.InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to initialize test database: %v", err)
	}
	t.Cleanup(db.Close)

	return GetHistoryStore(db.DB)
}

func TestAddAndGetRecent(t *testing.T) {
	hs := newTestStore(t)

	first := &models.HistoryEntry{
		URL:       "https://example.com/a",
		Operation: "formats",
		Status:    "completed",
		CreatedAt: time.Now().Add(-time.Minute),
	}
	second := &models.HistoryEntry{
		URL:       "https://example.com/b",
		Operation: "download",
		FormatID:  "137+140",
		Title:     "Test Video",
		Filesize:  1024,
		Status:    "completed",
		CreatedAt: time.Now(),
	}

	for _, e := range []*models.HistoryEntry{first, second} {
		id, err := hs.AddEntry(e)
		if err != nil {
			t.Fatalf("failed to add entry for %q: %v", e.URL, err)
		}
		if id == 0 {
			t.Fatalf("expected a non-zero ID for %q", e.URL)
		}
		if e.ID != id {
			t.Fatalf("expected entry ID to be set to %d, got %d", id, e.ID)
		}
	}

	entries, found, err := hs.GetRecent(10)
	if err != nil {
		t.Fatalf("failed to get recent entries: %v", err)
	}
	if !found {
		t.Fatal("expected entries to be found")
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	// Newest first
	if entries[0].URL != "https://example.com/b" {
		t.Fatalf("expected the newest entry first, got %q", entries[0].URL)
	}
	if entries[0].FormatID != "137+140" || entries[0].Filesize != 1024 {
		t.Fatalf("unexpected entry fields: %+v", entries[0])
	}
}

func TestGetRecentLimit(t *testing.T) {
	hs := newTestStore(t)

	for i := 0; i < 5; i++ {
		e := &models.HistoryEntry{
			URL:       "https://example.com/v",
			Operation: "formats",
			Status:    "completed",
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}
		if _, err := hs.AddEntry(e); err != nil {
			t.Fatalf("failed to add entry: %v", err)
		}
	}

	entries, _, err := hs.GetRecent(3)
	if err != nil {
		t.Fatalf("failed to get recent entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
}

func TestGetRecentEmpty(t *testing.T) {
	hs := newTestStore(t)

	entries, found, err := hs.GetRecent(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected no entries to be found")
	}
	if len(entries) != 0 {
		t.Fatalf("expected 0 entries, got %d", len(entries))
	}
}

func TestDeleteAll(t *testing.T) {
	hs := newTestStore(t)

	if _, err := hs.AddEntry(&models.HistoryEntry{
		URL:       "https://example.com/a",
		Operation: "formats",
		Status:    "completed",
	}); err != nil {
		t.Fatalf("failed to add entry: %v", err)
	}

	if err := hs.DeleteAll(); err != nil {
		t.Fatalf("failed to clear history: %v", err)
	}

	_, found, err := hs.GetRecent(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected history to be empty after clearing")
	}
}

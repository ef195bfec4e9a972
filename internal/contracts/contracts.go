// Package contracts defines interfaces that decouple the server layer from
// the extraction and storage implementations.
package contracts

import (
	"context"
	"database/sql"

	"fetcharr/internal/models"
)

// Extractor proxies to the external media-extraction tool.
type Extractor interface {
	// Probe lists the available formats for a URL without downloading.
	Probe(ctx context.Context, url string) (*models.VideoInfo, error)

	// Fetch downloads the chosen format and returns a handle to the
	// produced file. The caller must call FetchResult.Cleanup when done.
	Fetch(ctx context.Context, url, formatID string) (*FetchResult, error)
}

// FetchResult describes a completed download sitting in a temp directory.
type FetchResult struct {
	Path     string
	Filename string
	Size     int64
	Cleanup  func()
}

// Previewer scrapes lightweight page metadata without the extraction tool.
type Previewer interface {
	Preview(ctx context.Context, url string) (*models.Preview, error)
}

// Store allows access to the main store repo methods.
type Store interface {
	HistoryStore() HistoryStore
}

// HistoryStore allows access to history repo methods.
type HistoryStore interface {
	GetDB() *sql.DB

	// Add operations.
	AddEntry(e *models.HistoryEntry) (int64, error)

	// 'Get' operations.
	GetRecent(limit int) (entries []*models.HistoryEntry, hasRows bool, err error)

	// Delete operations.
	DeleteAll() error
}

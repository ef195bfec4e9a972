package repo

import (
	"database/sql"
	"fmt"
	"time"

	"fetcharr/internal/domain/consts"
	"fetcharr/internal/models"
	"fetcharr/internal/utils/logging"

	"github.com/Masterminds/squirrel"
)

// HistoryStore holds a pointer to the sql.DB.
type HistoryStore struct {
	DB *sql.DB
}

// GetHistoryStore returns a history store instance with injected database.
func GetHistoryStore(db *sql.DB) *HistoryStore {
	return &HistoryStore{
		DB: db,
	}
}

// GetDB returns the database.
func (hs *HistoryStore) GetDB() *sql.DB {
	return hs.DB
}

// AddEntry inserts one history record and returns its ID.
func (hs *HistoryStore) AddEntry(e *models.HistoryEntry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	query := squirrel.
		Insert(consts.DBHistory).
		Columns(
			consts.QHistURL,
			consts.QHistOperation,
			consts.QHistFormatID,
			consts.QHistTitle,
			consts.QHistFilesize,
			consts.QHistStatus,
			consts.QHistCreatedAt,
		).
		Values(
			e.URL,
			e.Operation,
			e.FormatID,
			e.Title,
			e.Filesize,
			e.Status,
			e.CreatedAt,
		).
		RunWith(hs.DB)

	res, err := query.Exec()
	if err != nil {
		return 0, fmt.Errorf("failed to insert history entry for URL %q: %w", e.URL, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted history ID: %w", err)
	}

	e.ID = id
	logging.D(2, "Recorded history entry %d (%s %q: %s)", id, e.Operation, e.URL, e.Status)
	return id, nil
}

// GetRecent returns the most recent history entries, newest first.
func (hs *HistoryStore) GetRecent(limit int) (entries []*models.HistoryEntry, hasRows bool, err error) {
	if limit <= 0 {
		limit = 25
	}

	query := squirrel.
		Select(
			consts.QHistID,
			consts.QHistURL,
			consts.QHistOperation,
			consts.QHistFormatID,
			consts.QHistTitle,
			consts.QHistFilesize,
			consts.QHistStatus,
			consts.QHistCreatedAt,
		).
		From(consts.DBHistory).
		OrderBy(consts.QHistCreatedAt + " DESC").
		Limit(uint64(limit)).
		RunWith(hs.DB)

	rows, err := query.Query()
	if err != nil {
		return nil, false, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logging.E("Failed to close history rows: %v", err)
		}
	}()

	for rows.Next() {
		e := new(models.HistoryEntry)
		if err := rows.Scan(
			&e.ID,
			&e.URL,
			&e.Operation,
			&e.FormatID,
			&e.Title,
			&e.Filesize,
			&e.Status,
			&e.CreatedAt,
		); err != nil {
			return nil, false, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to iterate history rows: %w", err)
	}

	return entries, len(entries) > 0, nil
}

// DeleteAll clears the history table.
func (hs *HistoryStore) DeleteAll() error {
	query := squirrel.
		Delete(consts.DBHistory).
		RunWith(hs.DB)

	if _, err := query.Exec(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

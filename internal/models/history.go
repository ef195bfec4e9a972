package models

import "time"

// HistoryEntry records one proxied operation.
//
// Matches the order of the DB table, do not alter.
type HistoryEntry struct {
	ID        int64     `json:"id" db:"id"`
	URL       string    `json:"url" db:"url"`
	Operation string    `json:"operation" db:"operation"`
	FormatID  string    `json:"format_id,omitempty" db:"format_id"`
	Title     string    `json:"title,omitempty" db:"title"`
	Filesize  int64     `json:"filesize,omitempty" db:"filesize"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Package repo is used for performing database repository operations.
package repo

import (
	"database/sql"

	"fetcharr/internal/contracts"
)

// Store holds the database variable and sub-stores like HistoryStore.
type Store struct {
	db           *sql.DB
	historyStore *HistoryStore
}

// InitStores injects the database into the store methods.
func InitStores(db *sql.DB) *Store {
	return &Store{
		db:           db,
		historyStore: GetHistoryStore(db),
	}
}

// HistoryStore with pointer receiver.
func (s *Store) HistoryStore() contracts.HistoryStore {
	return s.historyStore
}

// Package database sets up/opens the program database.
package database

import (
	"database/sql"
	"fmt"

	"fetcharr/internal/utils/logging"

	_ "github.com/mattn/go-sqlite3"
)

const (
	dbDriver = "sqlite3"
)

// Database wraps the program's SQLite handle.
type Database struct {
	DB *sql.DB
}

// InitDB opens (or creates) the database at dbFilePath and initializes its
// tables.
func InitDB(dbFilePath string) (d *Database, err error) {
	d = new(Database)
	d.DB, err = sql.Open(dbDriver, dbFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at path %q: %w", dbFilePath, err)
	}

	// Enable foreign key enforcement
	if _, err = d.DB.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := d.initTables(); err != nil {
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}
	return d, nil
}

// Close closes the underlying database handle.
func (d *Database) Close() {
	if err := d.DB.Close(); err != nil {
		logging.E("Failed to close database: %v", err)
	}
}

// initTables initializes the SQL tables.
func (d *Database) initTables() error {
	tx, err := d.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logging.E("Transaction rollback failed: %v", rollbackErr)
			}
		}
	}()

	if err = initHistoryTable(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

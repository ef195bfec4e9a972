package database

import (
	"database/sql"
	"embed"
	"fmt"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

const (
	historySQL = "sql/history.sql"
)

// initHistoryTable initializes the request history table.
func initHistoryTable(tx *sql.Tx) error {
	return executeSQLFile(tx, historySQL, "history table")
}

// executeSQLFile executes the SQL file stored in memory from go:embed.
func executeSQLFile(tx *sql.Tx, filename, description string) error {
	query, err := sqlFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read SQL file %s: %w", filename, err)
	}

	if _, err := tx.Exec(string(query)); err != nil {
		return fmt.Errorf("failed to create %s: %w", description, err)
	}
	return nil
}

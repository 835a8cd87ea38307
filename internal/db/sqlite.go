package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const createRemindersTable = `
CREATE TABLE IF NOT EXISTS reminders (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    date       TEXT NOT NULL,
    time       TEXT NOT NULL,
    message    TEXT NOT NULL,
    remind_via TEXT NOT NULL
)`

// Init ensures the database directory, file and schema exist and returns
// an open handle. Safe to call on every startup: the table is created
// with IF NOT EXISTS and existing rows are never touched.
func Init(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if _, err := sqlDB.Exec(createRemindersTable); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("create reminders table: %w", err)
	}

	return sqlDB, nil
}

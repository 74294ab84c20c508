package output

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/sbmraj03/OLX-car-cover-scraper/pkg/types"
)

const sqliteTable = "listings"

// SQLiteWriter writes listings into a local SQLite database file. The table
// is created on demand and each batch is inserted in one transaction.
type SQLiteWriter struct {
	db *sql.DB
}

// NewSQLiteWriter opens (or creates) the database at path.
func NewSQLiteWriter(path string) (*SQLiteWriter, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	columns := make([]string, 0, len(types.RequiredFields))
	for _, field := range types.RequiredFields {
		columns = append(columns, field+" TEXT NOT NULL")
	}
	schema := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		sqliteTable, strings.Join(columns, ", "))

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &SQLiteWriter{db: db}, nil
}

// Write inserts the batch transactionally.
func (w *SQLiteWriter) Write(records []types.Listing) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(types.RequiredFields)), ", ")
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		sqliteTable, strings.Join(types.RequiredFields, ", "), placeholders)

	stmt, err := tx.Prepare(insert)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		args := make([]interface{}, 0, len(types.RequiredFields))
		for _, field := range types.RequiredFields {
			args = append(args, record[field])
		}
		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Close closes the database handle.
func (w *SQLiteWriter) Close() error {
	if w.db != nil {
		err := w.db.Close()
		w.db = nil
		return err
	}
	return nil
}

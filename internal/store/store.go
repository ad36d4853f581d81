package store

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"recruitcrm/internal/contact"
)

//go:embed schema.sql
var schemaSQL string

// migratedColumns lists the optional columns added after the first release.
// Databases created before a column existed get it added in place; rows
// already stored keep their data and read the new column as its default.
var migratedColumns = []struct {
	name string
	decl string
}{
	{"status", "TEXT DEFAULT '" + contact.DefaultStatus + "'"},
	{"last_contact", "TEXT"},
	{"next_step", "TEXT"},
	{"resume_path", "TEXT"},
}

// Store provides durable storage for contact records.
// Uses SQLite with WAL mode; the single connection lives until Close.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// Applies required pragmas and schema upkeep automatically.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//   - Foreign key enforcement
//
// This function is idempotent - safe to call on every startup.
func Open(path string) (*Store, error) {
	// Open database (creates file if doesn't exist)
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &contact.StorageError{Op: "open", Err: err}
	}

	// Verify connection works
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &contact.StorageError{Op: "open", Err: err}
	}

	// One connection for the whole process. SQLite allows a single
	// writer at a time, and all operations here run sequentially.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, &contact.StorageError{Op: "open", Err: err}
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, &contact.StorageError{Op: "open", Err: err}
	}

	return &Store{db: db}, nil
}

// Close releases the database connection.
// Should be called once when the store is no longer needed.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return &contact.StorageError{Op: "close", Err: err}
	}
	return nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}

	return nil
}

// applySchema creates the table if it doesn't exist and adds any columns
// missing from older databases. Idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}

	if err := ensureColumns(db); err != nil {
		return fmt.Errorf("ensure columns: %w", err)
	}

	return nil
}

// ensureColumns inspects the live table and issues ALTER TABLE ADD COLUMN
// for each expected column that is missing. Existing rows are never
// rewritten; a database that already has every column is left untouched.
func ensureColumns(db *sql.DB) error {
	existing, err := tableColumns(db)
	if err != nil {
		return err
	}

	for _, col := range migratedColumns {
		if existing[col.name] {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE contacts ADD COLUMN %s %s", col.name, col.decl)
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("add column %s: %w", col.name, err)
		}
	}

	return nil
}

// tableColumns returns the set of column names currently on the contacts
// table, read from the live schema.
func tableColumns(db *sql.DB) (map[string]bool, error) {
	rows, err := db.Query("PRAGMA table_info(contacts)")
	if err != nil {
		return nil, fmt.Errorf("table info: %w", err)
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var (
			cid       int
			name      string
			ctype     string
			notNull   int
			dfltValue any
			pk        int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("scan table info: %w", err)
		}
		columns[name] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate table info: %w", err)
	}

	return columns, nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}

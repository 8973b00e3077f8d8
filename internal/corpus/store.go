// Package corpus records parse outcomes in SQLite so that recurring
// leftover fragments can be mined for new known values.
package corpus

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS parses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	path TEXT NOT NULL,
	guessed TEXT NOT NULL,
	parsed_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS leftovers (
	parse_id INTEGER NOT NULL REFERENCES parses(id) ON DELETE CASCADE,
	fragment TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_leftovers_fragment ON leftovers(fragment);
CREATE INDEX IF NOT EXISTS idx_parses_path ON parses(path);
`

// Open opens (creating if necessary) the corpus database at path and
// applies the schema. Use ":memory:" for an ephemeral database.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open corpus db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply corpus schema: %w", err)
	}
	return db, nil
}

// querier abstracts *sql.DB and *sql.Tx for shared query logic.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
	Query(query string, args ...any) (*sql.Rows, error)
	Exec(query string, args ...any) (sql.Result, error)
}

// Store provides access to recorded parses.
type Store struct {
	db *sql.DB
}

// NewStore creates a new corpus store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Begin starts a transaction.
func (s *Store) Begin() (*Tx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &Tx{tx: tx}, nil
}

// Tx wraps a database transaction with the same methods as Store.
type Tx struct {
	tx *sql.Tx
}

// Commit commits the transaction.
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction.
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

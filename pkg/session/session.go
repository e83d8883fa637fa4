// Package session persists the set of typedef names between runs, so that
// a type defined in one invocation can be referenced in the next.
package session

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cexplain/cexplain/pkg/parser"
)

// Store is a SQLite-backed registry of typedef names.
type Store struct {
	db *sql.DB
}

// Open opens or creates the session database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS typedefs (
		name TEXT PRIMARY KEY
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create typedefs table: %w", err)
	}
	return &Store{db: db}, nil
}

// Load defines every stored typedef name in the given parser state.
func (s *Store) Load(state *parser.State) error {
	rows, err := s.db.Query("SELECT name FROM typedefs")
	if err != nil {
		return fmt.Errorf("load typedefs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("scan typedef: %w", err)
		}
		state.Define(name)
	}
	return rows.Err()
}

// Save stores every typedef name known to the given parser state. Names
// already present are kept.
func (s *Store) Save(state *parser.State) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("save typedefs: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO typedefs (name) VALUES (?)")
	if err != nil {
		return fmt.Errorf("save typedefs: %w", err)
	}
	defer stmt.Close()

	for _, name := range state.Names() {
		if _, err := stmt.Exec(name); err != nil {
			return fmt.Errorf("save typedef %q: %w", name, err)
		}
	}
	return tx.Commit()
}

// Names returns the stored typedef names in sorted order.
func (s *Store) Names() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM typedefs ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list typedefs: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan typedef: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Clear removes all stored typedef names.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM typedefs")
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Package store persists instruction programs in a local SQLite database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/chazu/frameisa/wire"
)

// ErrProgramNotFound indicates the requested program doesn't exist.
var ErrProgramNotFound = errors.New("program not found")

// Store is a SQLite-backed program store. Programs are keyed by name;
// content hashes are stored alongside the code and re-verified on read, so
// a corrupted row surfaces as an error rather than bad instructions.
type Store struct {
	db     *sql.DB
	dbPath string
	mu     sync.Mutex
}

// Open opens (or creates) a program store at the given path.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Set busy timeout for concurrent access
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS programs (
		name    TEXT PRIMARY KEY,
		version TEXT NOT NULL DEFAULT '',
		code    BLOB NOT NULL,
		hash    BLOB NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating table: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Put saves a program, replacing any existing program with the same name.
// The program's content hash is verified before writing.
func (s *Store) Put(p *wire.Program) error {
	if err := p.Verify(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO programs (name, version, code, hash) VALUES (?, ?, ?, ?)`,
		p.Name, p.Version, p.Code, p.Hash[:],
	)
	if err != nil {
		return fmt.Errorf("saving program %q: %w", p.Name, err)
	}
	return nil
}

// Get loads a program by name. The stored hash is re-verified.
func (s *Store) Get(name string) (*wire.Program, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p wire.Program
	var hash []byte
	err := s.db.QueryRow(
		`SELECT name, version, code, hash FROM programs WHERE name = ?`, name,
	).Scan(&p.Name, &p.Version, &p.Code, &hash)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("program %q: %w", name, ErrProgramNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading program %q: %w", name, err)
	}

	if len(hash) != len(p.Hash) {
		return nil, fmt.Errorf("program %q: stored hash has length %d", name, len(hash))
	}
	copy(p.Hash[:], hash)

	if err := p.Verify(); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all stored program names in sorted order.
func (s *Store) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT name FROM programs ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing programs: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning program name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes a program by name.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM programs WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting program %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("program %q: %w", name, ErrProgramNotFound)
	}
	return nil
}

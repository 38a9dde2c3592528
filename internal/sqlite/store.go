// Package sqlite stores the person and property books in a single SQLite
// database as an alternative to the JSON files.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/estatebook/internal/book"
	"github.com/mesh-intelligence/estatebook/internal/storage"
)

// DatabaseFile is the database file name inside the data directory.
const DatabaseFile = "estatebook.db"

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("store is closed")

// Store implements storage.BookStorage on SQLite.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	path   string
	logger *slog.Logger
}

var _ storage.BookStorage = (*Store)(nil)

// Open opens or creates the database in dataDir and applies the schema.
func Open(dataDir string, logger *slog.Logger) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	path := filepath.Join(dataDir, DatabaseFile)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// One connection keeps transactions and pragmas on the same handle.
	db.SetMaxOpenConns(1)

	for _, ddl := range append(append([]string{}, schemaDDL...), indexDDL...) {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}
	logger.Debug("opened sqlite store", "path", path)
	return &Store{db: db, path: path, logger: logger}, nil
}

// Path returns the database file.
func (s *Store) Path() string { return s.path }

// Close releases the database. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) ReadPersonBook() (*book.PersonBook, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, false, ErrClosed
	}
	saved, err := s.isSaved(bookPersons)
	if err != nil || !saved {
		return nil, false, err
	}

	rows, err := s.db.Query(`SELECT name, phone, email FROM persons ORDER BY ordinal`)
	if err != nil {
		return nil, true, fmt.Errorf("querying persons: %w", err)
	}
	defer rows.Close()

	var records []storage.PersonRecord
	for rows.Next() {
		var r storage.PersonRecord
		if err := rows.Scan(&r.Name, &r.Phone, &r.Email); err != nil {
			return nil, true, fmt.Errorf("scanning person: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, true, fmt.Errorf("iterating persons: %w", err)
	}

	b, err := storage.PersonBookFromRecords(records)
	if err != nil {
		return nil, true, &storage.DataConversionError{Path: s.path, Err: err}
	}
	return b, true, nil
}

func (s *Store) SavePersonBook(b *book.PersonBook) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return ErrClosed
	}
	return s.replace(bookPersons, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM persons`); err != nil {
			return fmt.Errorf("clearing persons: %w", err)
		}
		stmt, err := tx.Prepare(`INSERT INTO persons (person_id, ordinal, name, phone, email) VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("preparing person insert: %w", err)
		}
		defer stmt.Close()
		for i, r := range storage.PersonRecords(b) {
			if _, err := stmt.Exec(generateUUID(), i, r.Name, r.Phone, r.Email); err != nil {
				return fmt.Errorf("inserting person %q: %w", r.Name, err)
			}
		}
		return nil
	})
}

func (s *Store) ReadPropertyBook() (*book.PropertyBook, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, false, ErrClosed
	}
	saved, err := s.isSaved(bookProperties)
	if err != nil || !saved {
		return nil, false, err
	}

	rows, err := s.db.Query(`SELECT name, price, address, description, owner_name, owner_phone, characteristics
		FROM properties ORDER BY ordinal`)
	if err != nil {
		return nil, true, fmt.Errorf("querying properties: %w", err)
	}
	defer rows.Close()

	var records []storage.PropertyRecord
	for rows.Next() {
		var (
			r               storage.PropertyRecord
			owner           storage.OwnerRecord
			ownerPhone      sql.NullString
			characteristics sql.NullString
		)
		if err := rows.Scan(&r.Name, &r.Price, &r.Address, &r.Description,
			&owner.Name, &ownerPhone, &characteristics); err != nil {
			return nil, true, fmt.Errorf("scanning property: %w", err)
		}
		owner.Phone = ownerPhone.String
		r.Owner = &owner
		r.Characteristics = characteristics.String
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, true, fmt.Errorf("iterating properties: %w", err)
	}

	b, err := storage.PropertyBookFromRecords(records)
	if err != nil {
		return nil, true, &storage.DataConversionError{Path: s.path, Err: err}
	}
	return b, true, nil
}

func (s *Store) SavePropertyBook(b *book.PropertyBook) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return ErrClosed
	}
	return s.replace(bookProperties, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM properties`); err != nil {
			return fmt.Errorf("clearing properties: %w", err)
		}
		stmt, err := tx.Prepare(`INSERT INTO properties
			(property_id, ordinal, name, price, address, description, owner_name, owner_phone, characteristics)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("preparing property insert: %w", err)
		}
		defer stmt.Close()
		for i, r := range storage.PropertyRecords(b) {
			_, err := stmt.Exec(generateUUID(), i, r.Name, r.Price, r.Address, r.Description,
				r.Owner.Name, nullString(r.Owner.Phone), nullString(r.Characteristics))
			if err != nil {
				return fmt.Errorf("inserting property %q: %w", r.Name, err)
			}
		}
		return nil
	})
}

// replace runs fill in a transaction and records name as saved.
func (s *Store) replace(name string, fill func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fill(tx); err != nil {
		return err
	}
	_, err = tx.Exec(`INSERT INTO books (book, saved_at) VALUES (?, ?)
		ON CONFLICT(book) DO UPDATE SET saved_at = excluded.saved_at`,
		name, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording %s save: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %s: %w", name, err)
	}
	s.logger.Debug("saved book", "book", name, "path", s.path)
	return nil
}

// isSaved reports whether the named book has been saved before.
func (s *Store) isSaved(name string) (bool, error) {
	var savedAt string
	err := s.db.QueryRow(`SELECT saved_at FROM books WHERE book = ?`, name).Scan(&savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", name, err)
	}
	return true, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// generateUUID generates a new UUID v7 for row ids.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fall back to v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}

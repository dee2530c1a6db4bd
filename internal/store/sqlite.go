package store

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pbaille/abook/internal/domain"
)

//go:embed schema.sql
var schema string

// Store handles database operations
type Store struct {
	db *sql.DB
}

// New creates a new Store with the given database path
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Initialize schema
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// ListPersons returns every stored person in address book order
func (s *Store) ListPersons() ([]domain.Person, error) {
	rows, err := s.db.Query(
		"SELECT id, name, phone, email, address, created_at FROM persons ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	var persons []domain.Person
	for rows.Next() {
		var p domain.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &p.Email, &p.Address, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}

	types, err := s.clientTypes()
	if err != nil {
		return nil, err
	}
	for i := range persons {
		persons[i].ClientTypes = types[persons[i].ID]
	}

	return persons, nil
}

// clientTypes returns client types keyed by person ID
func (s *Store) clientTypes() (map[string][]string, error) {
	rows, err := s.db.Query(
		"SELECT person_id, name FROM person_client_types ORDER BY person_id, position",
	)
	if err != nil {
		return nil, fmt.Errorf("list client types: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var personID, name string
		if err := rows.Scan(&personID, &name); err != nil {
			return nil, fmt.Errorf("scan client type: %w", err)
		}
		out[personID] = append(out[personID], name)
	}
	return out, rows.Err()
}

// ReplacePersons overwrites the stored address book with persons in a
// single transaction
func (s *Store) ReplacePersons(persons []domain.Person) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM persons"); err != nil {
		return fmt.Errorf("clear persons: %w", err)
	}

	for i, p := range persons {
		_, err := tx.Exec(
			"INSERT INTO persons (id, position, name, phone, email, address, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			p.ID, i, p.Name, p.Phone, p.Email, p.Address, p.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert person: %w", err)
		}

		for j, ct := range p.ClientTypes {
			_, err := tx.Exec(
				"INSERT INTO person_client_types (person_id, position, name) VALUES (?, ?, ?)",
				p.ID, j, ct,
			)
			if err != nil {
				return fmt.Errorf("insert client type: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

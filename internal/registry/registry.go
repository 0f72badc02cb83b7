// Package registry persists the users who have interacted with the bot.
package registry

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Record is one registered user, a snapshot of their Telegram identity.
type Record struct {
	ID           int64
	Username     string
	FirstName    string
	LastName     string
	LanguageCode string
}

// Registry wraps SQLite access to the users table.
type Registry struct {
	db *sql.DB
}

// Open opens or creates the database and applies the schema.
func Open(path string) (*Registry, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening users db: %w", err)
	}
	r := &Registry{db: db}
	if err := r.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

// Close closes the underlying database.
func (r *Registry) Close() error {
	return r.db.Close()
}

func (r *Registry) migrate() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,
		username TEXT,
		first_name TEXT,
		last_name TEXT,
		language_code TEXT
	);`)
	if err != nil {
		return fmt.Errorf("migrating users db: %w", err)
	}
	return nil
}

// Upsert inserts the record or, on an existing ID, refreshes every field
// from the new snapshot.
func (r *Registry) Upsert(ctx context.Context, rec Record) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, first_name, last_name, language_code)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   username=excluded.username,
		   first_name=excluded.first_name,
		   last_name=excluded.last_name,
		   language_code=excluded.language_code`,
		rec.ID, rec.Username, rec.FirstName, rec.LastName, rec.LanguageCode,
	)
	if err != nil {
		return fmt.Errorf("upserting user %d: %w", rec.ID, err)
	}
	return nil
}

// ListAll returns every registered user ordered by ID.
func (r *Registry) ListAll(ctx context.Context) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, username, first_name, last_name, language_code FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Username, &rec.FirstName, &rec.LastName, &rec.LanguageCode); err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return records, nil
}

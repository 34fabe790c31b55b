package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a preference key has no row.
var ErrNotFound = errors.New("preference not found")

// PreferenceRepo handles durable key/value preferences.
type PreferenceRepo struct {
	db *sql.DB
}

func NewPreferenceRepo(db *sql.DB) *PreferenceRepo {
	return &PreferenceRepo{db: db}
}

// Get returns the stored preference for key or ErrNotFound.
func (r *PreferenceRepo) Get(ctx context.Context, key string) (Preference, error) {
	var p Preference
	err := r.db.QueryRowContext(ctx, `SELECT key, value, updated_at FROM preferences WHERE key = ?`, key).
		Scan(&p.Key, &p.Value, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Preference{}, ErrNotFound
	}
	if err != nil {
		return Preference{}, err
	}
	return p, nil
}

// Set inserts or replaces the value for key.
func (r *PreferenceRepo) Set(ctx context.Context, key, value string, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO preferences(key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET
	 value=excluded.value,
	 updated_at=excluded.updated_at;
	`, key, value, now)
	return err
}

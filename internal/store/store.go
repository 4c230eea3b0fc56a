// Package store persists the pieces of UI state that outlive a session:
// settings edited in the settings panel and the save slots listed in the
// saves panel.
package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the sqlite connection.
type Store struct {
	db *sql.DB
}

// SaveSlot is one saved game entry.
type SaveSlot struct {
	ID        string
	Name      string
	CreatedAt string
}

// Open opens (or creates) the database at path and applies migrations.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Setting returns the stored value for key, or fallback when unset.
func (s *Store) Setting(key, fallback string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("read setting %q: %w", key, err)
	}
	return value, nil
}

// SetSetting upserts a settings value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("write setting %q: %w", key, err)
	}
	return nil
}

// SaveSlots lists save slots, newest first.
func (s *Store) SaveSlots() ([]SaveSlot, error) {
	rows, err := s.db.Query(`SELECT id, name, created_at FROM save_slots ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list save slots: %w", err)
	}
	defer rows.Close()
	var slots []SaveSlot
	for rows.Next() {
		var slot SaveSlot
		if err := rows.Scan(&slot.ID, &slot.Name, &slot.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan save slot: %w", err)
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

// CreateSaveSlot inserts a new slot and returns it.
func (s *Store) CreateSaveSlot(name string) (SaveSlot, error) {
	slot := SaveSlot{ID: uuid.NewString(), Name: name}
	err := s.db.QueryRow(`
		INSERT INTO save_slots (id, name) VALUES (?, ?)
		RETURNING created_at
	`, slot.ID, slot.Name).Scan(&slot.CreatedAt)
	if err != nil {
		return SaveSlot{}, fmt.Errorf("create save slot: %w", err)
	}
	return slot, nil
}

// DeleteSaveSlot removes a slot by id. Deleting a missing id is not an error.
func (s *Store) DeleteSaveSlot(id string) error {
	if _, err := s.db.Exec(`DELETE FROM save_slots WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete save slot: %w", err)
	}
	return nil
}

// Package store persists viewer settings across runs: the last opened save
// file and a short history of recently opened files. SQLite-backed, single
// file on disk.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// maxRecent bounds the recent-files history.
const maxRecent = 10

const lastPathKey = "sav_path"

// RecentFile is one entry in the recently-opened history, newest first.
type RecentFile struct {
	ID       string    `json:"id"`
	Path     string    `json:"path"`
	OpenedAt time.Time `json:"opened_at"`
}

// Store is the SQLite-backed settings store.
type Store struct {
	db      *sql.DB
	entropy *rand.Rand
}

// New opens or creates the settings database at the given path.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create settings dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *Store) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS settings (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS recent_files (
		id        TEXT PRIMARY KEY,
		path      TEXT NOT NULL,
		opened_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// LastPath returns the most recently stored save-file path, or "" when none
// has been stored yet.
func (s *Store) LastPath(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, lastPathKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetLastPath stores the given path as the last opened save file and records
// it in the recent-files history, dropping any older entry for the same path
// and trimming the history to its cap.
func (s *Store) SetLastPath(ctx context.Context, path string) error {
	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		lastPathKey, path, now)
	if err != nil {
		return fmt.Errorf("store last path: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM recent_files WHERE path = ?`, path); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO recent_files (id, path, opened_at) VALUES (?, ?, ?)`,
		s.newID(), path, now)
	if err != nil {
		return fmt.Errorf("record recent file: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`DELETE FROM recent_files WHERE rowid NOT IN (
			SELECT rowid FROM recent_files ORDER BY rowid DESC LIMIT ?
		)`, maxRecent)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Recent returns the recently opened files, newest first. A limit <= 0 or
// above the history cap returns everything stored.
func (s *Store) Recent(ctx context.Context, limit int) ([]RecentFile, error) {
	if limit <= 0 || limit > maxRecent {
		limit = maxRecent
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, path, opened_at FROM recent_files
		 ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []RecentFile
	for rows.Next() {
		var f RecentFile
		var openedAt string
		if err := rows.Scan(&f.ID, &f.Path, &openedAt); err != nil {
			return nil, err
		}
		f.OpenedAt, _ = time.Parse(time.RFC3339, openedAt)
		files = append(files, f)
	}
	return files, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

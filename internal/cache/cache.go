// Package cache is a sqlite-backed render cache. Entries are keyed by
// a digest of the raw markdown source, so an unchanged source never
// has to be rendered twice.
package cache

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zeebo/blake3"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS renders (
  key        TEXT PRIMARY KEY,
  html       BLOB NOT NULL,
  created_at TIMESTAMP NOT NULL
);`

// Key returns the cache key for a markdown source: the lowercase hex
// BLAKE3 digest of the raw bytes.
func Key(src []byte) string {
	sum := blake3.Sum256(src)
	return hex.EncodeToString(sum[:])
}

// Store is a sqlite-backed render cache.
type Store struct {
	db *sql.DB
}

// Open opens the cache database at path, creating the file and its
// parent directory as needed.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate cache: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Get returns the cached HTML for key; ok reports whether it was found.
func (s *Store) Get(ctx context.Context, key string) (html string, ok bool, err error) {
	var b []byte
	err = s.db.QueryRowContext(ctx, `SELECT html FROM renders WHERE key = ?`, key).Scan(&b)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

// Put stores HTML under key, replacing any previous entry.
func (s *Store) Put(ctx context.Context, key, html string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO renders(key, html, created_at) VALUES(?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET html = excluded.html, created_at = excluded.created_at`,
		key, []byte(html), time.Now().UTC())
	return err
}

// Purge deletes cache entries older than the cutoff and reports how
// many were removed.
func (s *Store) Purge(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM renders WHERE created_at < ?`, olderThan.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

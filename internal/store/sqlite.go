package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/me/workdeck/pkg/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and returns
// a Store. Use ":memory:" for an in-memory database (useful in tests).
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "store"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates all required tables.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	return migrate(ctx, s.db)
}

// ReplaceGallery replaces the cached feed in one transaction.
func (s *SQLiteStore) ReplaceGallery(ctx context.Context, entries []model.GalleryEntry) error {
	s.logger.Debug("sql", "op", "replace", "table", "gallery_cache", "entries", len(entries))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM gallery_cache`); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for i, e := range entries {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO gallery_cache (position, title, author, time, thumbnail, fetched_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			i, e.Meta.Title, e.Meta.Author, e.Meta.Time, e.Meta.Thumbnail, now,
		)
		if err != nil {
			return fmt.Errorf("insert entry %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// ListGallery returns the cached entries in feed order plus the fetch time.
func (s *SQLiteStore) ListGallery(ctx context.Context) ([]model.GalleryEntry, time.Time, error) {
	s.logger.Debug("sql", "op", "list", "table", "gallery_cache")

	rows, err := s.db.QueryContext(ctx,
		`SELECT title, author, time, thumbnail, fetched_at FROM gallery_cache ORDER BY position`)
	if err != nil {
		return nil, time.Time{}, err
	}
	defer rows.Close()

	var entries []model.GalleryEntry
	var fetchedAt time.Time
	for rows.Next() {
		var meta model.GalleryMeta
		var fetched string
		if err := rows.Scan(&meta.Title, &meta.Author, &meta.Time, &meta.Thumbnail, &fetched); err != nil {
			return nil, time.Time{}, err
		}
		if fetchedAt.IsZero() {
			fetchedAt, _ = time.Parse(time.RFC3339Nano, fetched)
		}
		entries = append(entries, model.GalleryEntry{Meta: meta})
	}
	return entries, fetchedAt, rows.Err()
}

package store

import (
	"context"
	"time"

	"github.com/me/workdeck/pkg/model"
)

// Store defines the persistence layer for the gallery cache.
type Store interface {
	// ReplaceGallery atomically replaces the cached gallery feed.
	ReplaceGallery(ctx context.Context, entries []model.GalleryEntry) error
	// ListGallery returns the cached entries in feed order and the time
	// they were fetched. An empty cache returns no entries and a zero time.
	ListGallery(ctx context.Context) ([]model.GalleryEntry, time.Time, error)

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}

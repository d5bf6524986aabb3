// Package gallery fetches the curated workflow feed from an upstream URL
// and caches it in the store.
package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/me/workdeck/internal/store"
	"github.com/me/workdeck/pkg/model"
)

// Thumbnailer synthesizes a placeholder image for entries the upstream
// feed ships without one.
type Thumbnailer interface {
	DataURI(title string) string
}

// Source serves gallery entries, preferring a fresh cache over the
// upstream feed and falling back to a stale cache when upstream is down.
type Source struct {
	upstream string
	ttl      time.Duration
	client   *http.Client
	store    store.Store
	thumbs   Thumbnailer
	logger   *slog.Logger
}

// New creates a gallery source. An empty upstream URL serves only the
// cache (seeded out of band or empty). thumbs may be nil to serve the
// feed exactly as upstream publishes it.
func New(upstream string, ttl time.Duration, st store.Store, thumbs Thumbnailer, logger *slog.Logger) *Source {
	return &Source{
		upstream: upstream,
		ttl:      ttl,
		client:   &http.Client{Timeout: 30 * time.Second},
		store:    st,
		thumbs:   thumbs,
		logger:   logger.With("component", "gallery"),
	}
}

// Fetch returns the current gallery entries.
func (s *Source) Fetch(ctx context.Context) ([]model.GalleryEntry, error) {
	cached, fetchedAt, err := s.store.ListGallery(ctx)
	if err != nil {
		s.logger.Error("gallery cache read failed", "error", err)
		cached = nil
	}
	if len(cached) > 0 && time.Since(fetchedAt) < s.ttl {
		return cached, nil
	}

	if s.upstream == "" {
		return cached, nil
	}

	entries, err := s.fetchUpstream(ctx)
	if err != nil {
		if len(cached) > 0 {
			s.logger.Warn("gallery upstream unavailable, serving stale cache", "error", err)
			return cached, nil
		}
		return nil, err
	}

	if s.thumbs != nil {
		for i := range entries {
			if entries[i].Meta.Thumbnail == "" {
				entries[i].Meta.Thumbnail = s.thumbs.DataURI(entries[i].Meta.Title)
			}
		}
	}

	if err := s.store.ReplaceGallery(ctx, entries); err != nil {
		s.logger.Error("gallery cache write failed", "error", err)
	}
	return entries, nil
}

// fetchUpstream retrieves and normalizes the feed. The upstream speaks the
// same {"json": entry-or-array} shape the /fetch-gallery endpoint serves.
func (s *Source) fetchUpstream(ctx context.Context) ([]model.GalleryEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.upstream, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch upstream gallery: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream gallery: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream gallery: HTTP %d: %s", resp.StatusCode, body)
	}

	var feed model.GalleryResponse
	if err := json.Unmarshal(body, &feed); err != nil {
		// Some feeds publish the entry array bare, without the wrapper.
		var payload model.GalleryPayload
		if err2 := json.Unmarshal(body, &payload); err2 != nil {
			return nil, fmt.Errorf("parse upstream gallery: %w", err)
		}
		return payload, nil
	}
	return feed.JSON, nil
}

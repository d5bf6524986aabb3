package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Addr != ":8080" || cfg.LogLevel != "info" || cfg.GalleryTTL != 15*time.Minute {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("addr: \":9090\"\ngallery_url: https://example.com/feed.json\ngallery_ttl: 1h\n"), 0o644)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("addr = %q", cfg.Addr)
	}
	if cfg.GalleryURL != "https://example.com/feed.json" {
		t.Errorf("gallery_url = %q", cfg.GalleryURL)
	}
	if cfg.GalleryTTL != time.Hour {
		t.Errorf("gallery_ttl = %v", cfg.GalleryTTL)
	}
	// Untouched fields keep their defaults.
	if cfg.LogLevel != "info" {
		t.Errorf("log_level = %q", cfg.LogLevel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("WORKDECK_ADDR", ":7070")
	t.Setenv("WORKDECK_GALLERY_TTL", "30s")

	cfg := Default()
	cfg.ApplyEnv()
	if cfg.Addr != ":7070" {
		t.Errorf("addr = %q", cfg.Addr)
	}
	if cfg.GalleryTTL != 30*time.Second {
		t.Errorf("gallery_ttl = %v", cfg.GalleryTTL)
	}
}

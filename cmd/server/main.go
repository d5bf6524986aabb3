package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/me/workdeck/internal/browser"
	"github.com/me/workdeck/internal/client"
	"github.com/me/workdeck/internal/config"
	"github.com/me/workdeck/internal/gallery"
	"github.com/me/workdeck/internal/logging"
	"github.com/me/workdeck/internal/server"
	"github.com/me/workdeck/internal/store"
	"github.com/me/workdeck/internal/thumbnail"
	"github.com/me/workdeck/internal/ui"
	"github.com/me/workdeck/internal/workspace"
)

// loopbackURL turns a listen address into the base URL the in-process
// browser client calls back on.
func loopbackURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://127.0.0.1" + addr
	}
	return "http://" + addr
}

func main() {
	// Local .env files are a development convenience; missing is fine.
	godotenv.Load()

	cfg := config.Default()
	if path := os.Getenv("WORKDECK_CONFIG"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.ApplyEnv()

	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json)")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Database path (default ~/.workdeck/workdeck.db)")
	flag.StringVar(&cfg.WorkspaceDir, "workspace", cfg.WorkspaceDir, "Saved workflow directory (default ~/.workdeck/workflows)")
	flag.StringVar(&cfg.GalleryURL, "gallery-url", cfg.GalleryURL, "Upstream gallery feed URL (empty serves only the cache)")
	flag.DurationVar(&cfg.GalleryTTL, "gallery-ttl", cfg.GalleryTTL, "Gallery cache lifetime")
	debug := flag.Bool("debug", false, "Shorthand for --log-level=debug")
	flag.Parse()

	if *debug {
		cfg.LogLevel = "debug"
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	// Resolve data paths under the home directory when unset.
	if cfg.DBPath == "" || cfg.WorkspaceDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot determine home directory: %v\n", err)
			os.Exit(1)
		}
		dir := filepath.Join(home, ".workdeck")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", dir, err)
			os.Exit(1)
		}
		if cfg.DBPath == "" {
			cfg.DBPath = filepath.Join(dir, "workdeck.db")
		}
		if cfg.WorkspaceDir == "" {
			cfg.WorkspaceDir = filepath.Join(dir, "workflows")
		}
	}

	// Open store and run migrations.
	st, err := store.NewSQLiteStore(cfg.DBPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.Migrate(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "migrate database: %v\n", err)
		os.Exit(1)
	}
	logger.Info("database ready", "path", cfg.DBPath)

	files, err := workspace.New(cfg.WorkspaceDir, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open workspace: %v\n", err)
		os.Exit(1)
	}
	logger.Info("workspace ready", "path", files.Path())

	thumbs, err := thumbnail.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "thumbnail generator: %v\n", err)
		os.Exit(1)
	}

	gal := gallery.New(cfg.GalleryURL, cfg.GalleryTTL, st, thumbs, logger)

	// The web UI drives the browser core through the same HTTP API
	// external clients use, via the loopback address. Browser state and
	// the alert buffer are process-wide: Workdeck serves one user, there
	// is no per-session isolation.
	api := client.New(loopbackURL(cfg.Addr), logger)
	flash := ui.NewFlash()
	b := browser.New(api, thumbs, browser.Options{Alert: flash, Logger: logger})
	webUI := ui.New(b, flash, logger)

	srv := server.New(cfg, gal, files, webUI, logger)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Handler(),
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", "addr", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// Package workspace stores saved workflows as JSON files in a directory.
package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrNotFound is returned when a named workflow file does not exist.
var ErrNotFound = errors.New("workflow not found")

// Dir is a directory of saved workflow JSON files.
type Dir struct {
	path   string
	logger *slog.Logger
}

// Entry describes one saved workflow file.
type Entry struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// New opens (creating if needed) the workspace directory.
func New(path string, logger *slog.Logger) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create workspace %s: %w", path, err)
	}
	return &Dir{path: path, logger: logger.With("component", "workspace")}, nil
}

// Path returns the workspace directory path.
func (d *Dir) Path() string { return d.path }

// List returns the saved workflow filenames, sorted.
func (d *Dir) List() ([]string, error) {
	entries, err := d.Entries()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names, nil
}

// Entries returns the saved workflow files with size and modification time.
func (d *Dir) Entries() ([]Entry, error) {
	dirents, err := os.ReadDir(d.path)
	if err != nil {
		return nil, fmt.Errorf("read workspace: %w", err)
	}

	var entries []Entry
	for _, de := range dirents {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".json") {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Name: de.Name(), Size: info.Size(), ModTime: info.ModTime()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Save writes a workflow document under name. The name is reduced to its
// base component, gets a ".json" suffix if missing, and the document must
// be valid JSON. Overwriting an existing file is allowed.
func (d *Dir) Save(name string, raw []byte) error {
	fn, err := sanitize(name)
	if err != nil {
		return err
	}
	if !json.Valid(raw) {
		return fmt.Errorf("workflow %s: document is not valid JSON", fn)
	}
	if err := os.WriteFile(filepath.Join(d.path, fn), raw, 0o644); err != nil {
		return fmt.Errorf("write workflow %s: %w", fn, err)
	}
	d.logger.Info("workflow saved", "file", fn, "bytes", len(raw))
	return nil
}

// Load returns the raw JSON document of a saved workflow.
func (d *Dir) Load(name string) ([]byte, error) {
	fn, err := sanitize(name)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(filepath.Join(d.path, fn))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", fn, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read workflow %s: %w", fn, err)
	}
	return raw, nil
}

// Delete removes a saved workflow file.
func (d *Dir) Delete(name string) error {
	fn, err := sanitize(name)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(d.path, fn))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", fn, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete workflow %s: %w", fn, err)
	}
	d.logger.Info("workflow deleted", "file", fn)
	return nil
}

// sanitize rejects path traversal and normalizes the filename.
func sanitize(name string) (string, error) {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "" || base == "." || base == ".." || base == string(filepath.Separator) {
		return "", fmt.Errorf("invalid workflow filename %q", name)
	}
	if !strings.HasSuffix(base, ".json") {
		base += ".json"
	}
	return base, nil
}

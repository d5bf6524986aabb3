package workspace

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func testDir(t *testing.T) *Dir {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	d, err := New(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func TestSaveListLoadDelete(t *testing.T) {
	d := testDir(t)

	if err := d.Save("b", []byte(`{"nodes":[]}`)); err != nil {
		t.Fatalf("Save b: %v", err)
	}
	if err := d.Save("a.json", []byte(`{"nodes":[1]}`)); err != nil {
		t.Fatalf("Save a: %v", err)
	}

	names, err := d.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 2 || names[0] != "a.json" || names[1] != "b.json" {
		t.Errorf("names = %v, want [a.json b.json]", names)
	}

	raw, err := d.Load("a.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(raw) != `{"nodes":[1]}` {
		t.Errorf("loaded = %s", raw)
	}

	if err := d.Delete("a.json"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	names, _ = d.List()
	if len(names) != 1 || names[0] != "b.json" {
		t.Errorf("names after delete = %v", names)
	}
}

func TestSaveRejectsInvalidJSON(t *testing.T) {
	d := testDir(t)
	if err := d.Save("x.json", []byte("not json")); err == nil {
		t.Error("invalid JSON accepted")
	}
}

func TestDeleteMissing(t *testing.T) {
	d := testDir(t)
	err := d.Delete("ghost.json")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSanitizeTraversal(t *testing.T) {
	d := testDir(t)
	if err := d.Save("../../etc/evil", []byte(`{}`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// The file must land inside the workspace, not beside it.
	if _, err := os.Stat(filepath.Join(d.Path(), "evil.json")); err != nil {
		t.Errorf("sanitized file missing: %v", err)
	}

	if _, err := sanitize(".."); err == nil {
		t.Error(`sanitize("..") accepted`)
	}
	if _, err := sanitize(""); err == nil {
		t.Error(`sanitize("") accepted`)
	}
}

func TestListIgnoresNonJSON(t *testing.T) {
	d := testDir(t)
	os.WriteFile(filepath.Join(d.Path(), "readme.txt"), []byte("hi"), 0o644)
	os.Mkdir(filepath.Join(d.Path(), "sub.json"), 0o755)
	if err := d.Save("keep.json", []byte(`{}`)); err != nil {
		t.Fatal(err)
	}

	names, err := d.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 1 || names[0] != "keep.json" {
		t.Errorf("names = %v, want [keep.json]", names)
	}
}

package thumbnail

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"
)

func testGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func decodeDataURI(t *testing.T, uri string) []byte {
	t.Helper()
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("data URI prefix = %q", uri[:min(len(uri), 30)])
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("base64 decode: %v", err)
	}
	return raw
}

func TestDataURIDeterministic(t *testing.T) {
	g := testGenerator(t)
	a := g.DataURI("My Workflow")
	b := g.DataURI("My Workflow")
	if a != b {
		t.Error("same title produced different thumbnails")
	}
	c := g.DataURI("Other Workflow")
	if a == c {
		t.Error("different titles produced identical thumbnails")
	}
}

func TestDataURIDimensions(t *testing.T) {
	g := testGenerator(t)
	raw := decodeDataURI(t, g.DataURI("pipeline"))
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("png decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 150 || b.Dy() != 150 {
		t.Errorf("dimensions = %dx%d, want 150x150", b.Dx(), b.Dy())
	}
}

func TestDataURIBackground(t *testing.T) {
	g := testGenerator(t)
	raw := decodeDataURI(t, g.DataURI("pipeline"))
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("png decode: %v", err)
	}
	// A corner pixel is never covered by the centered title.
	r, gr, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 0xD3 || gr>>8 != 0xD3 || b>>8 != 0xD3 {
		t.Errorf("corner pixel = %02x%02x%02x, want d3d3d3", r>>8, gr>>8, b>>8)
	}
}

func TestDataURIEmptyTitle(t *testing.T) {
	g := testGenerator(t)
	uri := g.DataURI("")
	raw := decodeDataURI(t, uri)
	if _, err := png.Decode(bytes.NewReader(raw)); err != nil {
		t.Fatalf("png decode: %v", err)
	}
	if uri != g.DataURI("") {
		t.Error("empty title not deterministic")
	}
}

package model

import (
	"encoding/json"
	"testing"
)

func TestGalleryPayloadArray(t *testing.T) {
	raw := `{"json":[{"meta":{"title":"Two Agents","author":"alice"}},{"meta":{"title":"RAG Demo"}}]}`
	var resp GalleryResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.JSON) != 2 {
		t.Fatalf("entries = %d, want 2", len(resp.JSON))
	}
	if resp.JSON[0].Meta.Title != "Two Agents" || resp.JSON[0].Meta.Author != "alice" {
		t.Errorf("first entry meta = %+v", resp.JSON[0].Meta)
	}
}

func TestGalleryPayloadSingleEntry(t *testing.T) {
	raw := `{"json":{"meta":{"title":"Solo","time":"2026-01-05"}}}`
	var resp GalleryResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.JSON) != 1 {
		t.Fatalf("entries = %d, want 1 (single entry must normalize to a slice)", len(resp.JSON))
	}
	if resp.JSON[0].Meta.Title != "Solo" {
		t.Errorf("title = %q, want Solo", resp.JSON[0].Meta.Title)
	}
}

func TestGalleryPayloadNull(t *testing.T) {
	var resp GalleryResponse
	if err := json.Unmarshal([]byte(`{"json":null}`), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.JSON) != 0 {
		t.Errorf("entries = %d, want 0", len(resp.JSON))
	}
}

func TestSummaryFromFilename(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"pipeline.json", "pipeline"},
		{"no-extension", "no-extension"},
		{"dotted.name.json", "dotted.name"},
		{"pipeline.yaml", "pipeline.yaml"},
	}
	for _, c := range cases {
		sum := SummaryFromFilename(c.in)
		if sum.Title != c.want {
			t.Errorf("SummaryFromFilename(%q).Title = %q, want %q", c.in, sum.Title, c.want)
		}
		if sum.Author != "" || sum.Time != "" {
			t.Errorf("SummaryFromFilename(%q) has author/time, want empty", c.in)
		}
	}
}

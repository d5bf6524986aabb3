package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/me/workdeck/pkg/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

// recordingHandler captures the last request and replies with a fixed body.
type recordingHandler struct {
	method      string
	path        string
	contentType string
	body        []byte
	status      int
	response    string
}

func (h *recordingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.method = r.Method
	h.path = r.URL.Path
	h.contentType = r.Header.Get("Content-Type")
	h.body, _ = io.ReadAll(r.Body)
	status := h.status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, h.response)
}

func TestFetchGallery(t *testing.T) {
	h := &recordingHandler{response: `{"json":[{"meta":{"title":"Demo","author":"bob","time":"2026-03-01"}}]}`}
	srv := httptest.NewServer(h)
	defer srv.Close()

	c := New(srv.URL, testLogger())
	entries, err := c.FetchGallery(context.Background())
	if err != nil {
		t.Fatalf("FetchGallery: %v", err)
	}
	if len(entries) != 1 || entries[0].Meta.Title != "Demo" {
		t.Errorf("entries = %+v", entries)
	}
	if h.method != "POST" || h.path != "/fetch-gallery" {
		t.Errorf("request = %s %s, want POST /fetch-gallery", h.method, h.path)
	}
	if h.contentType != "application/json" {
		t.Errorf("content type = %q", h.contentType)
	}
	if string(h.body) != "{}" {
		t.Errorf("request body = %q, want {}", h.body)
	}
}

func TestFetchGallerySingleEntry(t *testing.T) {
	h := &recordingHandler{response: `{"json":{"meta":{"title":"Solo"}}}`}
	srv := httptest.NewServer(h)
	defer srv.Close()

	entries, err := New(srv.URL, testLogger()).FetchGallery(context.Background())
	if err != nil {
		t.Fatalf("FetchGallery: %v", err)
	}
	if len(entries) != 1 || entries[0].Meta.Title != "Solo" {
		t.Errorf("entries = %+v, want one Solo entry", entries)
	}
}

func TestFetchGalleryServerError(t *testing.T) {
	h := &recordingHandler{status: http.StatusBadGateway, response: `{"error":"upstream down"}`}
	srv := httptest.NewServer(h)
	defer srv.Close()

	if _, err := New(srv.URL, testLogger()).FetchGallery(context.Background()); err == nil {
		t.Fatal("expected error on 502")
	}
}

func TestListWorkflows(t *testing.T) {
	h := &recordingHandler{response: `{"files":["a.json","b.json"]}`}
	srv := httptest.NewServer(h)
	defer srv.Close()

	c := New(srv.URL, testLogger())
	files, err := c.ListWorkflows(context.Background())
	if err != nil {
		t.Fatalf("ListWorkflows: %v", err)
	}
	if len(files) != 2 || files[0] != "a.json" || files[1] != "b.json" {
		t.Errorf("files = %v", files)
	}
	if h.path != "/list-workflows" || string(h.body) != "{}" {
		t.Errorf("request = %s body=%q", h.path, h.body)
	}
}

func TestListWorkflowsNotArray(t *testing.T) {
	for _, response := range []string{`{"files":"a.json"}`, `{"files":null}`, `{}`} {
		h := &recordingHandler{response: response}
		srv := httptest.NewServer(h)
		_, err := New(srv.URL, testLogger()).ListWorkflows(context.Background())
		srv.Close()
		if err == nil {
			t.Errorf("response %s: expected type error", response)
		}
	}
}

func TestDeleteWorkflow(t *testing.T) {
	h := &recordingHandler{response: `{}`}
	srv := httptest.NewServer(h)
	defer srv.Close()

	c := New(srv.URL, testLogger())
	if err := c.DeleteWorkflow(context.Background(), "x.json"); err != nil {
		t.Fatalf("DeleteWorkflow: %v", err)
	}
	if h.path != "/delete-workflow" {
		t.Errorf("path = %s", h.path)
	}
	var req model.DeleteRequest
	if err := json.Unmarshal(h.body, &req); err != nil || req.Filename != "x.json" {
		t.Errorf("request body = %q", h.body)
	}
}

func TestDeleteWorkflowRemoteError(t *testing.T) {
	h := &recordingHandler{response: `{"error":"locked"}`}
	srv := httptest.NewServer(h)
	defer srv.Close()

	err := New(srv.URL, testLogger()).DeleteWorkflow(context.Background(), "x.json")
	var remote *model.RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("err = %v, want RemoteError", err)
	}
	if remote.Message != "locked" {
		t.Errorf("message = %q, want locked", remote.Message)
	}
}

func TestDeleteWorkflowTransportError(t *testing.T) {
	srv := httptest.NewServer(&recordingHandler{})
	srv.Close() // refuse connections

	err := New(srv.URL, testLogger()).DeleteWorkflow(context.Background(), "x.json")
	if err == nil {
		t.Fatal("expected transport error")
	}
	var remote *model.RemoteError
	if errors.As(err, &remote) {
		t.Error("transport failure must not decode as RemoteError")
	}
}

func TestSaveAndLoadWorkflow(t *testing.T) {
	h := &recordingHandler{response: `{}`}
	srv := httptest.NewServer(h)
	defer srv.Close()

	c := New(srv.URL, testLogger())
	doc := json.RawMessage(`{"nodes":[]}`)
	if err := c.SaveWorkflow(context.Background(), "p.json", doc); err != nil {
		t.Fatalf("SaveWorkflow: %v", err)
	}
	var req model.SaveRequest
	if err := json.Unmarshal(h.body, &req); err != nil {
		t.Fatalf("request body: %v", err)
	}
	if req.Filename != "p.json" || string(req.Workflow) != `{"nodes":[]}` {
		t.Errorf("save request = %+v", req)
	}

	h.response = `{"json":{"nodes":[]}}`
	got, err := c.LoadWorkflow(context.Background(), "p.json")
	if err != nil {
		t.Fatalf("LoadWorkflow: %v", err)
	}
	if string(got) != `{"nodes":[]}` {
		t.Errorf("loaded = %s", got)
	}
}

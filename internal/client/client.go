// Package client implements the HTTP client for the workflow endpoints.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/me/workdeck/pkg/model"
)

// Client talks to the workflow endpoints. Every call is a single POST with a
// JSON body; there are no retries and no client-side timeout.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// New creates a workflow API client.
func New(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
		Logger:     logger.With("component", "client"),
	}
}

// emptyBody marshals to the literal "{}" the list endpoints expect.
type emptyBody struct{}

// post performs a POST with a JSON body and returns the raw response body.
// Non-2xx statuses are errors.
func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.Logger.Debug("HTTP request", "path", path, "body", string(data))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.Logger.Debug("HTTP response", "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, respBody)
	}
	return respBody, nil
}

// FetchGallery retrieves the curated gallery feed. A feed carrying a single
// entry instead of an array is normalized at decode time.
func (c *Client) FetchGallery(ctx context.Context) ([]model.GalleryEntry, error) {
	body, err := c.post(ctx, "/fetch-gallery", emptyBody{})
	if err != nil {
		return nil, fmt.Errorf("fetch gallery: %w", err)
	}
	var resp model.GalleryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("fetch gallery: parse response: %w", err)
	}
	return resp.JSON, nil
}

// ListWorkflows retrieves the saved workflow filenames. A "files" value that
// is not an array is a type error.
func (c *Client) ListWorkflows(ctx context.Context) ([]string, error) {
	body, err := c.post(ctx, "/list-workflows", emptyBody{})
	if err != nil {
		return nil, fmt.Errorf("list workflows: %w", err)
	}

	var resp struct {
		Files json.RawMessage `json:"files"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("list workflows: parse response: %w", err)
	}
	trimmed := bytes.TrimSpace(resp.Files)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("list workflows: files field is not an array: %s", trimmed)
	}

	var files []string
	if err := json.Unmarshal(trimmed, &files); err != nil {
		return nil, fmt.Errorf("list workflows: parse files: %w", err)
	}
	return files, nil
}

// DeleteWorkflow deletes a saved workflow file. A server-reported error
// ({"error": msg} in a 2xx response) is returned as *model.RemoteError.
func (c *Client) DeleteWorkflow(ctx context.Context, filename string) error {
	body, err := c.post(ctx, "/delete-workflow", model.DeleteRequest{Filename: filename})
	if err != nil {
		return fmt.Errorf("delete workflow: %w", err)
	}
	var resp model.ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("delete workflow: parse response: %w", err)
	}
	if resp.Error != "" {
		return &model.RemoteError{Message: resp.Error}
	}
	return nil
}

// SaveWorkflow stores a workflow document under the given filename.
func (c *Client) SaveWorkflow(ctx context.Context, filename string, workflow json.RawMessage) error {
	body, err := c.post(ctx, "/save-workflow", model.SaveRequest{Filename: filename, Workflow: workflow})
	if err != nil {
		return fmt.Errorf("save workflow: %w", err)
	}
	var resp model.ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("save workflow: parse response: %w", err)
	}
	if resp.Error != "" {
		return &model.RemoteError{Message: resp.Error}
	}
	return nil
}

// LoadWorkflow retrieves the raw JSON document of a saved workflow.
func (c *Client) LoadWorkflow(ctx context.Context, filename string) (json.RawMessage, error) {
	body, err := c.post(ctx, "/load-workflow", model.LoadRequest{Filename: filename})
	if err != nil {
		return nil, fmt.Errorf("load workflow: %w", err)
	}
	var resp struct {
		JSON  json.RawMessage `json:"json"`
		Error string          `json:"error"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("load workflow: parse response: %w", err)
	}
	if resp.Error != "" {
		return nil, &model.RemoteError{Message: resp.Error}
	}
	return resp.JSON, nil
}

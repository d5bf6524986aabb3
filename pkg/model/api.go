package model

import (
	"bytes"
	"encoding/json"
)

// GalleryPayload is the "json" field of the /fetch-gallery response. The
// upstream feed sends either a single entry or an array of entries; both
// forms decode into a slice.
type GalleryPayload []GalleryEntry

// UnmarshalJSON normalizes a lone entry object to a one-element slice.
func (p *GalleryPayload) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*p = nil
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var entries []GalleryEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return err
		}
		*p = entries
		return nil
	}
	var entry GalleryEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return err
	}
	*p = GalleryPayload{entry}
	return nil
}

// GalleryResponse is the body of a successful POST /fetch-gallery.
type GalleryResponse struct {
	JSON GalleryPayload `json:"json"`
}

// ListResponse is the body of a successful POST /list-workflows.
type ListResponse struct {
	Files []string `json:"files"`
}

// DeleteRequest is the body of POST /delete-workflow.
type DeleteRequest struct {
	Filename string `json:"filename"`
}

// SaveRequest is the body of POST /save-workflow.
type SaveRequest struct {
	Filename string          `json:"filename"`
	Workflow json.RawMessage `json:"workflow"`
}

// LoadRequest is the body of POST /load-workflow.
type LoadRequest struct {
	Filename string `json:"filename"`
}

// LoadResponse is the body of a successful POST /load-workflow.
type LoadResponse struct {
	JSON json.RawMessage `json:"json"`
}

// ErrorResponse carries an in-band application error ({"error": "..."}).
// The mutation endpoints report failures this way inside a 200 response;
// the caller inspects the field rather than the HTTP status.
type ErrorResponse struct {
	Error string `json:"error,omitempty"`
}

package model

import "strings"

// GalleryMeta describes one curated workflow template in the gallery feed.
type GalleryMeta struct {
	Title     string `json:"title"`
	Author    string `json:"author,omitempty"`
	Time      string `json:"time,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"` // image data URI, optional
}

// GalleryEntry is a single item of the gallery feed.
type GalleryEntry struct {
	Meta GalleryMeta `json:"meta"`
}

// WorkflowSummary is the card-level view of a workflow, produced either from
// a gallery entry's metadata or derived from a saved filename.
type WorkflowSummary struct {
	Title     string
	Author    string
	Time      string
	Thumbnail string // image data URI, empty when none was provided
}

// SummaryFromMeta builds a summary from gallery entry metadata.
func SummaryFromMeta(m GalleryMeta) WorkflowSummary {
	return WorkflowSummary{
		Title:     m.Title,
		Author:    m.Author,
		Time:      m.Time,
		Thumbnail: m.Thumbnail,
	}
}

// SummaryFromFilename builds a summary for a saved workflow file. The title
// is the filename minus a trailing ".json"; author and time are unknown for
// saved files.
func SummaryFromFilename(name string) WorkflowSummary {
	return WorkflowSummary{Title: strings.TrimSuffix(name, ".json")}
}

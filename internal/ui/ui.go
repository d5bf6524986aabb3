// Package ui renders the Workdeck web interface: the two-tab workflow
// browser page and the workstation page a workflow is loaded into.
package ui

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/me/workdeck/internal/browser"
)

// UI handles the web user interface.
type UI struct {
	browser *browser.Browser
	flash   *Flash
	logger  *slog.Logger
}

// New creates a new UI handler. flash is the Alerter the browser was built
// with; alerts raised while handling a request show up as a banner on the
// next rendered page.
func New(b *browser.Browser, flash *Flash, logger *slog.Logger) *UI {
	return &UI{
		browser: b,
		flash:   flash,
		logger:  logger.With("component", "ui"),
	}
}

func (ui *UI) render(w http.ResponseWriter, template string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := renderTemplate(&buf, template, data); err != nil {
		ui.logger.Error("template render failed", "template", template, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	buf.WriteTo(w)
}

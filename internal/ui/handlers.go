package ui

import (
	"net/http"

	"github.com/me/workdeck/internal/browser"
)

// HandleBrowser renders the two-tab browser page. The ?tab= query selects
// the active tab; anything unknown falls back to the gallery.
func (ui *UI) HandleBrowser(w http.ResponseWriter, r *http.Request) {
	tab := browser.ParseTab(r.URL.Query().Get("tab"))
	ui.browser.Activate(r.Context(), tab)

	var alerts []string
	if ui.flash != nil {
		alerts = ui.flash.Drain()
	}

	ui.render(w, "browser", map[string]any{
		"Title":         "Workdeck",
		"ActiveTab":     tab.String(),
		"Gallery":       ui.browser.Panel(browser.TabGallery),
		"Saved":         ui.browser.Panel(browser.TabSaved),
		"Alerts":        alerts,
		"ConfirmLoad":   browser.ConfirmLoadMessage,
		"ConfirmDelete": browser.ConfirmDeleteMessage,
	})
}

// HandleDelete runs the delete action for a saved workflow. The confirm
// dialog already happened in the page, so the browser core runs with its
// always-confirm default. Alerts raised here surface on the redirect.
func (ui *UI) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/browser?tab=saved", http.StatusSeeOther)
		return
	}
	name := r.FormValue("filename")
	if name != "" {
		ui.browser.Delete(r.Context(), name)
	}
	http.Redirect(w, r, "/browser?tab=saved", http.StatusSeeOther)
}

// HandleWorkstation renders the workstation page for the workflow named in
// the filename query parameter.
func (ui *UI) HandleWorkstation(w http.ResponseWriter, r *http.Request) {
	ui.render(w, "workstation", map[string]any{
		"Title":    "Workstation",
		"Filename": r.URL.Query().Get("filename"),
	})
}

package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all UI routes on the given router.
func (ui *UI) RegisterRoutes(r chi.Router) {
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/browser", http.StatusSeeOther)
	})
	r.Get("/browser", ui.HandleBrowser)
	r.Post("/browser/delete", ui.HandleDelete)
	r.Get("/workstation", ui.HandleWorkstation)
}

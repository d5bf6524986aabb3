package server

import (
	"encoding/json"
	"net/http"

	"github.com/me/workdeck/pkg/model"
)

// respondJSON writes v as the response body. The workflow endpoints have
// fixed flat shapes, so there is no envelope.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondEmpty writes the {} success body of the mutation endpoints.
func respondEmpty(w http.ResponseWriter) {
	respondJSON(w, http.StatusOK, model.ErrorResponse{})
}

// respondAppError reports an application error in-band as 200 {"error": msg}.
// The delete/save/load contract carries failures in the body, not the status.
func respondAppError(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusOK, model.ErrorResponse{Error: msg})
}

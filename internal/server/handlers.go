package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/me/workdeck/internal/workspace"
	"github.com/me/workdeck/pkg/model"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
	})
}

// handleFetchGallery serves the curated gallery feed. The response is
// {"json": [entries]}. A cold cache with a dead upstream is the only
// failure mode and surfaces as 502; clients treat any non-2xx as a
// fetch failure.
func (s *Server) handleFetchGallery(w http.ResponseWriter, r *http.Request) {
	entries, err := s.gallery.Fetch(r.Context())
	if err != nil {
		s.logger.Error("gallery fetch failed", "error", err, "request_id", RequestIDFromContext(r.Context()))
		respondJSON(w, http.StatusBadGateway, model.ErrorResponse{Error: "gallery unavailable"})
		return
	}
	if entries == nil {
		entries = model.GalleryPayload{}
	}
	respondJSON(w, http.StatusOK, model.GalleryResponse{JSON: entries})
}

func (s *Server) handleListWorkflows(w http.ResponseWriter, r *http.Request) {
	files, err := s.files.List()
	if err != nil {
		s.logger.Error("workflow listing failed", "error", err, "request_id", RequestIDFromContext(r.Context()))
		respondJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: "failed to list workflows"})
		return
	}
	if files == nil {
		files = []string{}
	}
	respondJSON(w, http.StatusOK, model.ListResponse{Files: files})
}

func (s *Server) handleDeleteWorkflow(w http.ResponseWriter, r *http.Request) {
	var req model.DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := s.files.Delete(req.Filename); err != nil {
		if errors.Is(err, workspace.ErrNotFound) {
			respondAppError(w, "workflow not found: "+req.Filename)
			return
		}
		s.logger.Error("workflow delete failed", "filename", req.Filename, "error", err)
		respondAppError(w, err.Error())
		return
	}

	s.logger.Info("workflow deleted", "filename", req.Filename)
	respondEmpty(w)
}

func (s *Server) handleSaveWorkflow(w http.ResponseWriter, r *http.Request) {
	var req model.SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := s.files.Save(req.Filename, req.Workflow); err != nil {
		s.logger.Error("workflow save failed", "filename", req.Filename, "error", err)
		respondAppError(w, err.Error())
		return
	}

	s.logger.Info("workflow saved", "filename", req.Filename)
	respondEmpty(w)
}

func (s *Server) handleLoadWorkflow(w http.ResponseWriter, r *http.Request) {
	var req model.LoadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body"})
		return
	}

	raw, err := s.files.Load(req.Filename)
	if err != nil {
		if errors.Is(err, workspace.ErrNotFound) {
			respondAppError(w, "workflow not found: "+req.Filename)
			return
		}
		s.logger.Error("workflow load failed", "filename", req.Filename, "error", err)
		respondAppError(w, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, model.LoadResponse{JSON: raw})
}

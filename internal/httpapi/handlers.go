// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/MoayyadShahid/MVPXiv/internal/repository"
	"github.com/MoayyadShahid/MVPXiv/internal/rowmap"
	"github.com/MoayyadShahid/MVPXiv/internal/schema"
)

type handlers struct {
	repo repository.Repository
	log  *zap.Logger
}

func (h *handlers) health(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *handlers) latestBatch(w http.ResponseWriter, req *http.Request) {
	bwi, err := h.repo.LatestBatch(req.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if bwi == nil {
		writeJSON(w, http.StatusNotFound, errorBody("no batches found"))
		return
	}
	writeJSON(w, http.StatusOK, bwi)
}

func (h *handlers) listBatches(w http.ResponseWriter, req *http.Request) {
	batches, err := h.repo.Batches(req.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, batches)
}

func (h *handlers) batchByDate(w http.ResponseWriter, req *http.Request) {
	bwi, err := h.repo.BatchByDate(req.Context(), chi.URLParam(req, "date"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bwi)
}

func (h *handlers) ideaByID(w http.ResponseWriter, req *http.Request) {
	idea, err := h.repo.IdeaByID(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, idea)
}

// writeError maps repository error kinds to status codes: a missing
// key is 404, corrupt or drifted upstream data is the gateway's fault
// (422/502), anything unrecognized is 500.
func (h *handlers) writeError(w http.ResponseWriter, err error) {
	var (
		verr *schema.ValidationError
		merr *rowmap.MappingError
		berr *repository.BackendError
	)

	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody(err.Error()))
	case errors.As(err, &verr):
		h.log.Error("record failed validation", zap.Error(err))
		writeJSON(w, http.StatusUnprocessableEntity, errorBody(err.Error()))
	case errors.As(err, &merr), errors.As(err, &berr):
		h.log.Error("backend failure", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, errorBody(err.Error()))
	default:
		h.log.Error("unhandled error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

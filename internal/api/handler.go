package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ruankao-prep/backend/internal/content"
	"github.com/ruankao-prep/backend/internal/prefs"
	"github.com/ruankao-prep/backend/internal/service"
	"github.com/ruankao-prep/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	resolver *content.Resolver
	practice *service.PracticeService
	store    store.Store
	prefs    *prefs.Preferences
	cdnBase  string
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(resolver *content.Resolver, practice *service.PracticeService, st store.Store, p *prefs.Preferences, cdnBase string, logger *slog.Logger) *Handler {
	return &Handler{
		resolver: resolver,
		practice: practice,
		store:    st,
		prefs:    p,
		cdnBase:  cdnBase,
		logger:   logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON decodes the request body into v. On failure it writes a 400
// and returns false (caller should return).
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, entity+" not found")
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}

// courseID parses the {courseID} path value. Writes a 400 and returns
// false on a non-numeric value.
func courseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("courseID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid course id")
		return 0, false
	}
	return id, true
}

package api

import (
	"net/http"
	"strconv"

	"github.com/ruankao-prep/backend/internal/prefs"
)

// ── Request / Response types ────────────────────────────────────────────────

type SetPreferenceRequest struct {
	Key   string `json:"key" example:"selectedCourseId"`
	Value string `json:"value" example:"3"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getPreferences returns all stored preferences.
// @Summary      Get preferences
// @Tags         Preferences
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /preferences [get]
func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.prefs.All())
}

// setPreference stores one preference.
// @Summary      Set a preference
// @Description  Store a preference key. Setting selectedCourseId also keeps the course display name in sync.
// @Tags         Preferences
// @Accept       json
// @Produce      json
// @Param        body  body      SetPreferenceRequest  true  "Preference to set"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /preferences [put]
func (h *Handler) setPreference(w http.ResponseWriter, r *http.Request) {
	var req SetPreferenceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Key == "" {
		respondError(w, http.StatusBadRequest, "key is required")
		return
	}

	var err error
	if req.Key == prefs.KeySelectedCourseID {
		id, convErr := strconv.Atoi(req.Value)
		if convErr != nil {
			respondError(w, http.StatusBadRequest, "selectedCourseId must be numeric")
			return
		}
		err = h.prefs.SetSelectedCourse(r.Context(), id)
	} else {
		err = h.prefs.Set(r.Context(), req.Key, req.Value)
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to persist preference")
		return
	}

	respondJSON(w, http.StatusOK, h.prefs.All())
}

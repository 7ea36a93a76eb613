package api

import "net/http"

// RegisterRoutes attaches every API route to the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Content catalog
	mux.HandleFunc("GET /courses/{courseID}/chapters", h.listChapters)
	mux.HandleFunc("GET /courses/{courseID}/categories/{category}/years", h.listYearGroups)

	// Practice sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("POST /sessions/{sessionID}/answers", h.submitAnswer)
	mux.HandleFunc("POST /sessions/{sessionID}/complete", h.completeSession)

	// Statistics
	mux.HandleFunc("GET /courses/{courseID}/statistics", h.getStatistics)

	// Wrong-answer ledger
	mux.HandleFunc("GET /courses/{courseID}/wrong-questions", h.listWrongQuestions)
	mux.HandleFunc("DELETE /courses/{courseID}/wrong-questions/{questionID}", h.deleteWrongQuestion)
	mux.HandleFunc("POST /courses/{courseID}/wrong-questions/review", h.startReviewSession)
	mux.HandleFunc("GET /courses/{courseID}/export", h.exportLedger)
	mux.HandleFunc("POST /import", h.importLedger)

	// Preferences
	mux.HandleFunc("GET /preferences", h.getPreferences)
	mux.HandleFunc("PUT /preferences", h.setPreference)
}

package api

import (
	"net/http"
	"time"
)

// ── Request / Response types ────────────────────────────────────────────────

type StatisticsResponse struct {
	CourseID          int     `json:"course_id" example:"3"`
	PracticeQuestions int     `json:"practice_questions" example:"320"`
	CorrectAnswers    int     `json:"correct_answers" example:"241"`
	CompletedExams    int     `json:"completed_exams" example:"4"`
	StudyDurationSecs int     `json:"study_duration_secs" example:"21600"`
	AverageAccuracy   float64 `json:"average_accuracy" example:"75.3"`
	LastUpdated       string  `json:"last_updated,omitempty" example:"2026-08-01T10:00:00Z"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getStatistics returns the cumulative study totals for a course.
// @Summary      Get study statistics
// @Description  Cumulative totals for a course. Courses never practiced return a zeroed record.
// @Tags         Statistics
// @Produce      json
// @Param        courseID  path      int  true  "Course ID"
// @Success      200       {object}  StatisticsResponse
// @Failure      400       {object}  map[string]string
// @Router       /courses/{courseID}/statistics [get]
func (h *Handler) getStatistics(w http.ResponseWriter, r *http.Request) {
	id, ok := courseID(w, r)
	if !ok {
		return
	}

	st, err := h.store.Statistics(r.Context(), id)
	if h.handleStoreError(w, err, "statistics") {
		return
	}

	response := StatisticsResponse{
		CourseID:          st.CourseID,
		PracticeQuestions: st.PracticeQuestions,
		CorrectAnswers:    st.CorrectAnswers,
		CompletedExams:    st.CompletedExams,
		StudyDurationSecs: int(st.StudyDuration.Seconds()),
		AverageAccuracy:   st.AverageAccuracy(),
	}
	if !st.LastUpdated.IsZero() {
		response.LastUpdated = st.LastUpdated.UTC().Format(time.RFC3339)
	}
	respondJSON(w, http.StatusOK, response)
}

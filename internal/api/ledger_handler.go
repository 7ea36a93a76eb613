package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/ruankao-prep/backend/internal/domain/ledger"
	"github.com/ruankao-prep/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type WrongQuestionResponse struct {
	QuestionID        string `json:"question_id" example:"5a6b7c8d9e0f"`
	CourseID          int    `json:"course_id" example:"3"`
	Seq               int    `json:"seq" example:"12"`
	TestID            string `json:"test_id" example:"2016-1"`
	Stem              string `json:"stem"`
	StemPicURL        string `json:"stem_pic_url,omitempty"`
	OptionA           string `json:"option_a"`
	OptionB           string `json:"option_b"`
	OptionC           string `json:"option_c"`
	OptionD           string `json:"option_d"`
	CorrectAnswer     string `json:"correct_answer" example:"A"`
	UserAnswer        string `json:"user_answer" example:"B"`
	Explanation       string `json:"explanation"`
	ExplanationPicURL string `json:"explanation_pic_url,omitempty"`
	WrongCount        int    `json:"wrong_count" example:"2"`
	LastWrongDate     string `json:"last_wrong_date" example:"2026-08-01T10:00:00Z"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listWrongQuestions lists a course's wrong-answer ledger.
// @Summary      List wrong questions
// @Description  Every ledger entry for a course, most recently missed first.
// @Tags         Ledger
// @Produce      json
// @Param        courseID  path      int  true  "Course ID"
// @Success      200       {array}   WrongQuestionResponse
// @Failure      400       {object}  map[string]string
// @Router       /courses/{courseID}/wrong-questions [get]
func (h *Handler) listWrongQuestions(w http.ResponseWriter, r *http.Request) {
	id, ok := courseID(w, r)
	if !ok {
		return
	}

	records, err := h.store.ListWrongQuestions(r.Context(), id)
	if h.handleStoreError(w, err, "wrong questions") {
		return
	}

	response := make([]WrongQuestionResponse, len(records))
	for i, rec := range records {
		response[i] = h.wrongQuestionResponse(rec)
	}
	respondJSON(w, http.StatusOK, response)
}

// deleteWrongQuestion removes one ledger entry.
// @Summary      Delete a wrong question
// @Description  Remove one entry from the ledger. Statistics are never touched.
// @Tags         Ledger
// @Param        courseID    path  int     true  "Course ID"
// @Param        questionID  path  string  true  "Question ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /courses/{courseID}/wrong-questions/{questionID} [delete]
func (h *Handler) deleteWrongQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := courseID(w, r)
	if !ok {
		return
	}

	err := h.store.DeleteWrongQuestion(r.Context(), id, r.PathValue("questionID"))
	if h.handleStoreError(w, err, "wrong question") {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// startReviewSession starts a review session over the ledger.
// @Summary      Start a review session
// @Description  Begin a practice session over the course's wrong-answer ledger, most recently missed first. Repeat misses bump the miss count.
// @Tags         Ledger
// @Produce      json
// @Param        courseID  path      int  true  "Course ID"
// @Success      201       {object}  SessionResponse
// @Failure      400       {object}  map[string]string  "empty ledger"
// @Router       /courses/{courseID}/wrong-questions/review [post]
func (h *Handler) startReviewSession(w http.ResponseWriter, r *http.Request) {
	id, ok := courseID(w, r)
	if !ok {
		return
	}

	sess, err := h.practice.StartReview(r.Context(), id)
	if errors.Is(err, service.ErrEmptyLedger) {
		respondError(w, http.StatusBadRequest, "no wrong questions to review")
		return
	}
	if h.handleStoreError(w, err, "wrong questions") {
		return
	}

	respondJSON(w, http.StatusCreated, h.sessionResponse(sess))
}

func (h *Handler) wrongQuestionResponse(rec *ledger.WrongQuestion) WrongQuestionResponse {
	q := rec.Question()
	return WrongQuestionResponse{
		QuestionID:        rec.QuestionID,
		CourseID:          rec.CourseID,
		Seq:               rec.Seq,
		TestID:            rec.TestID,
		Stem:              rec.Stem,
		StemPicURL:        q.StemPicURL(h.cdnBase),
		OptionA:           rec.OptionA,
		OptionB:           rec.OptionB,
		OptionC:           rec.OptionC,
		OptionD:           rec.OptionD,
		CorrectAnswer:     rec.CorrectAnswer,
		UserAnswer:        rec.UserAnswer,
		Explanation:       rec.Explanation,
		ExplanationPicURL: q.ExplanationPicURL(h.cdnBase),
		WrongCount:        rec.WrongCount,
		LastWrongDate:     rec.LastWrongDate.UTC().Format(time.RFC3339),
	}
}

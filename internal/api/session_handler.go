package api

import (
	"errors"
	"net/http"

	"github.com/ruankao-prep/backend/internal/content"
	"github.com/ruankao-prep/backend/internal/domain/question"
	"github.com/ruankao-prep/backend/internal/domain/session"
	"github.com/ruankao-prep/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExamSelection struct {
	Category string `json:"category" example:"综合知识"`
	Year     string `json:"year" example:"2016"`
	Batch    string `json:"batch" example:"第一批"`
}

type ChapterSelection struct {
	Name  string `json:"name" example:"第1章 信息化发展"`
	Group int    `json:"group" example:"1"`
}

type CreateSessionRequest struct {
	CourseID int               `json:"course_id" example:"3"`
	Mode     string            `json:"mode" example:"simulation"`
	Exam     *ExamSelection    `json:"exam,omitempty"`
	Chapter  *ChapterSelection `json:"chapter,omitempty"`
}

func (r *CreateSessionRequest) Validate() error {
	if _, ok := session.ParseMode(r.Mode); !ok {
		return errors.New("mode must be simulation, memorization, or review")
	}
	if session.Mode(r.Mode) == session.ModeReview {
		if r.Exam != nil || r.Chapter != nil {
			return errors.New("review sessions take no question-set selection")
		}
		return nil
	}
	if (r.Exam == nil) == (r.Chapter == nil) {
		return errors.New("exactly one of exam or chapter is required")
	}
	return nil
}

type SessionQuestion struct {
	ID                string `json:"id" example:"5a6b7c8d9e0f"`
	Seq               int    `json:"seq" example:"1"`
	TestID            string `json:"test_id" example:"2016-1"`
	Type              int    `json:"type" example:"1"`
	Stem              string `json:"stem"`
	StemPicURL        string `json:"stem_pic_url,omitempty"`
	OptionA           string `json:"option_a"`
	OptionB           string `json:"option_b"`
	OptionC           string `json:"option_c"`
	OptionD           string `json:"option_d"`
	Answer            string `json:"answer" example:"A"`
	Explanation       string `json:"explanation"`
	ExplanationPicURL string `json:"explanation_pic_url,omitempty"`
}

type SessionResponse struct {
	ID        string            `json:"id" example:"x9y8z7w6v5u4t3s2"`
	CourseID  int               `json:"course_id" example:"3"`
	Mode      string            `json:"mode" example:"simulation"`
	Questions []SessionQuestion `json:"questions"`
	Answered  int               `json:"answered" example:"0"`
	Completed bool              `json:"completed" example:"false"`
}

type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id" example:"5a6b7c8d9e0f"`
	Answer     string `json:"answer" example:"B"`
}

type SubmitAnswerResponse struct {
	Status string `json:"status" example:"recorded"`
}

type WrongAnswerResponse struct {
	QuestionID    string `json:"question_id" example:"5a6b7c8d9e0f"`
	UserAnswer    string `json:"user_answer" example:"B"`
	CorrectAnswer string `json:"correct_answer" example:"A"`
}

type ResultResponse struct {
	SessionID      string                `json:"session_id" example:"x9y8z7w6v5u4t3s2"`
	TotalQuestions int                   `json:"total_questions" example:"75"`
	Answered       int                   `json:"answered" example:"75"`
	Correct        int                   `json:"correct" example:"52"`
	Score          int                   `json:"score" example:"69"`
	Passed         bool                  `json:"passed" example:"true"`
	DurationSecs   int                   `json:"duration_secs" example:"5400"`
	Wrong          []WrongAnswerResponse `json:"wrong"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSession starts a practice session.
// @Summary      Start a practice session
// @Description  Start a session over a past-exam paper, a chapter question group, or (mode=review) the course's wrong-answer ledger.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateSessionRequest  true  "Session to start"
// @Success      201   {object}  SessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string  "question set not found"
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	mode, _ := session.ParseMode(req.Mode)

	var sess *session.PracticeSession
	var err error
	switch {
	case mode == session.ModeReview:
		sess, err = h.practice.StartReview(r.Context(), req.CourseID)
	case req.Exam != nil:
		category, ok := question.ParseCategory(req.Exam.Category)
		if !ok {
			respondError(w, http.StatusBadRequest, "unknown category")
			return
		}
		sess, err = h.practice.StartExam(req.CourseID, category, req.Exam.Year, req.Exam.Batch, mode)
	default:
		sess, err = h.practice.StartChapter(req.CourseID, req.Chapter.Name, req.Chapter.Group, mode)
	}

	switch {
	case errors.Is(err, content.ErrUnavailable):
		respondError(w, http.StatusNotFound, "question set not found")
		return
	case errors.Is(err, service.ErrEmptyLedger):
		respondError(w, http.StatusBadRequest, "no wrong questions to review")
		return
	case err != nil:
		h.logger.Error("failed to start session", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to start session")
		return
	}

	respondJSON(w, http.StatusCreated, h.sessionResponse(sess))
}

// getSession returns an active session.
// @Summary      Get a session
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.practice.Session(r.PathValue("sessionID"))
	if errors.Is(err, service.ErrSessionNotFound) {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}
	respondJSON(w, http.StatusOK, h.sessionResponse(sess))
}

// submitAnswer records the selected letter for one question.
// @Summary      Submit an answer
// @Description  Record or overwrite the selected letter for a question in an active session.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session ID"
// @Param        body       body      SubmitAnswerRequest  true  "Answer"
// @Success      200        {object}  SubmitAnswerResponse
// @Failure      404        {object}  map[string]string  "session or question not found"
// @Failure      409        {object}  map[string]string  "session already completed"
// @Router       /sessions/{sessionID}/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.practice.RecordAnswer(r.PathValue("sessionID"), req.QuestionID, req.Answer)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "session not found")
		return
	case errors.Is(err, session.ErrUnknownQuestion):
		respondError(w, http.StatusNotFound, "question not in session")
		return
	case errors.Is(err, session.ErrCompleted):
		respondError(w, http.StatusConflict, "session already completed")
		return
	}

	respondJSON(w, http.StatusOK, SubmitAnswerResponse{Status: "recorded"})
}

// completeSession finishes a session and returns the scored result.
// @Summary      Complete a session
// @Description  Finalize a session: simulation results are scored and folded into statistics and the wrong-answer ledger; completing twice returns the original result without double-recording.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  ResultResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/complete [post]
func (h *Handler) completeSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	result, err := h.practice.Complete(r.Context(), sessionID)
	if errors.Is(err, service.ErrSessionNotFound) {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	wrong := make([]WrongAnswerResponse, len(result.Wrong))
	for i, wa := range result.Wrong {
		wrong[i] = WrongAnswerResponse{
			QuestionID:    wa.Question.ID,
			UserAnswer:    wa.UserAnswer,
			CorrectAnswer: wa.Question.Answer,
		}
	}

	respondJSON(w, http.StatusOK, ResultResponse{
		SessionID:      sessionID,
		TotalQuestions: result.TotalQuestions,
		Answered:       result.AnsweredCount,
		Correct:        result.CorrectCount,
		Score:          result.Score,
		Passed:         result.Passed,
		DurationSecs:   int(result.Duration.Seconds()),
		Wrong:          wrong,
	})
}

func (h *Handler) sessionResponse(sess *session.PracticeSession) SessionResponse {
	questions := make([]SessionQuestion, len(sess.Questions))
	for i, q := range sess.Questions {
		questions[i] = SessionQuestion{
			ID:                q.ID,
			Seq:               q.Seq,
			TestID:            q.TestID,
			Type:              q.Type,
			Stem:              q.Stem,
			StemPicURL:        q.StemPicURL(h.cdnBase),
			OptionA:           string(q.OptionA),
			OptionB:           string(q.OptionB),
			OptionC:           string(q.OptionC),
			OptionD:           string(q.OptionD),
			Answer:            q.Answer,
			Explanation:       q.Explanation,
			ExplanationPicURL: q.ExplanationPicURL(h.cdnBase),
		}
	}
	return SessionResponse{
		ID:        sess.ID,
		CourseID:  sess.CourseID,
		Mode:      string(sess.Mode),
		Questions: questions,
		Answered:  sess.AnsweredCount(),
		Completed: sess.Completed(),
	}
}

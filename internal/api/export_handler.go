package api

import (
	"net/http"
	"time"

	"github.com/ruankao-prep/backend/internal/domain/ledger"
)

// ── Request / Response types ────────────────────────────────────────────────

// ExportEntry carries the raw snapshot fields so a round trip through
// export and import is lossless, counts and timestamps included.
type ExportEntry struct {
	QuestionID     string `json:"question_id"`
	CourseID       int    `json:"course_id"`
	Seq            int    `json:"seq"`
	TestID         string `json:"test_id"`
	Type           int    `json:"type"`
	Area           int    `json:"area"`
	Stem           string `json:"stem"`
	StemPic        string `json:"stem_pic,omitempty"`
	OptionA        string `json:"option_a"`
	OptionB        string `json:"option_b"`
	OptionC        string `json:"option_c"`
	OptionD        string `json:"option_d"`
	CorrectAnswer  string `json:"correct_answer"`
	UserAnswer     string `json:"user_answer"`
	Explanation    string `json:"explanation"`
	ExplanationPic string `json:"explanation_pic,omitempty"`
	WrongCount     int    `json:"wrong_count"`
	LastWrongDate  string `json:"last_wrong_date"`
}

type ExportData struct {
	Version        string        `json:"version"`
	ExportedAt     string        `json:"exported_at"`
	CourseID       int           `json:"course_id"`
	WrongQuestions []ExportEntry `json:"wrong_questions"`
}

type ImportResult struct {
	Imported int `json:"imported"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportLedger exports a course's wrong-answer ledger as a JSON file.
// @Summary      Export wrong questions
// @Description  Download the full ledger of a course for backup or transfer to another device.
// @Tags         Ledger
// @Produce      json
// @Param        courseID  path      int  true  "Course ID"
// @Success      200       {object}  ExportData
// @Failure      400       {object}  map[string]string
// @Router       /courses/{courseID}/export [get]
func (h *Handler) exportLedger(w http.ResponseWriter, r *http.Request) {
	id, ok := courseID(w, r)
	if !ok {
		return
	}

	records, err := h.store.ListWrongQuestions(r.Context(), id)
	if h.handleStoreError(w, err, "wrong questions") {
		return
	}

	exportData := ExportData{
		Version:        "1.0",
		ExportedAt:     time.Now().UTC().Format(time.RFC3339),
		CourseID:       id,
		WrongQuestions: make([]ExportEntry, len(records)),
	}
	for i, rec := range records {
		exportData.WrongQuestions[i] = ExportEntry{
			QuestionID:     rec.QuestionID,
			CourseID:       rec.CourseID,
			Seq:            rec.Seq,
			TestID:         rec.TestID,
			Type:           rec.Type,
			Area:           rec.Area,
			Stem:           rec.Stem,
			StemPic:        rec.StemPic,
			OptionA:        rec.OptionA,
			OptionB:        rec.OptionB,
			OptionC:        rec.OptionC,
			OptionD:        rec.OptionD,
			CorrectAnswer:  rec.CorrectAnswer,
			UserAnswer:     rec.UserAnswer,
			Explanation:    rec.Explanation,
			ExplanationPic: rec.ExplanationPic,
			WrongCount:     rec.WrongCount,
			LastWrongDate:  rec.LastWrongDate.UTC().Format(time.RFC3339),
		}
	}

	w.Header().Set("Content-Disposition", "attachment; filename=wrong-questions-export.json")
	respondJSON(w, http.StatusOK, exportData)
}

// importLedger restores ledger entries from a previous export.
// @Summary      Import wrong questions
// @Description  Restore exported ledger entries verbatim, counts included. Entries with the same key are replaced.
// @Tags         Ledger
// @Accept       json
// @Produce      json
// @Param        body  body      ExportData  true  "Previously exported ledger"
// @Success      201   {object}  ImportResult
// @Failure      400   {object}  map[string]string
// @Router       /import [post]
func (h *Handler) importLedger(w http.ResponseWriter, r *http.Request) {
	var importData ExportData
	if !decodeJSON(w, r, &importData) {
		return
	}

	records := make([]*ledger.WrongQuestion, 0, len(importData.WrongQuestions))
	for _, e := range importData.WrongQuestions {
		lastWrong, err := time.Parse(time.RFC3339, e.LastWrongDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid last_wrong_date: "+e.LastWrongDate)
			return
		}
		count := e.WrongCount
		if count < 1 {
			count = 1
		}
		records = append(records, &ledger.WrongQuestion{
			QuestionID:     e.QuestionID,
			CourseID:       e.CourseID,
			Seq:            e.Seq,
			TestID:         e.TestID,
			Type:           e.Type,
			Area:           e.Area,
			Stem:           e.Stem,
			StemPic:        e.StemPic,
			OptionA:        e.OptionA,
			OptionB:        e.OptionB,
			OptionC:        e.OptionC,
			OptionD:        e.OptionD,
			CorrectAnswer:  e.CorrectAnswer,
			UserAnswer:     e.UserAnswer,
			Explanation:    e.Explanation,
			ExplanationPic: e.ExplanationPic,
			WrongCount:     count,
			LastWrongDate:  lastWrong,
		})
	}

	if err := h.store.ImportWrongQuestions(r.Context(), records); err != nil {
		h.logger.Error("failed to import wrong questions", "count", len(records), "error", err)
		respondError(w, http.StatusInternalServerError, "failed to import")
		return
	}

	respondJSON(w, http.StatusCreated, ImportResult{Imported: len(records)})
}

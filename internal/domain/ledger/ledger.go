package ledger

import (
	"time"

	"github.com/ruankao-prep/backend/internal/domain/question"
)

// WrongQuestion is one entry in the wrong-answer ledger: a denormalized
// snapshot of a missed question plus the user's answer and a running
// miss count. Keyed by (course, question id). The snapshot is captured
// at miss time; later edits to the source content never reach existing
// entries.
type WrongQuestion struct {
	QuestionID     string
	CourseID       int
	Seq            int
	TestID         string
	Type           int
	Area           int
	Stem           string
	StemPic        string
	OptionA        string
	OptionB        string
	OptionC        string
	OptionD        string
	CorrectAnswer  string
	UserAnswer     string
	Explanation    string
	ExplanationPic string
	WrongCount     int
	LastWrongDate  time.Time
}

// FromQuestion snapshots a freshly missed question. WrongCount starts at
// 1; the store bumps it when the same (course, question) is missed again.
func FromQuestion(q question.Question, userAnswer string, at time.Time) *WrongQuestion {
	return &WrongQuestion{
		QuestionID:     q.ID,
		CourseID:       q.CourseID,
		Seq:            q.Seq,
		TestID:         q.TestID,
		Type:           q.Type,
		Area:           q.Area,
		Stem:           q.Stem,
		StemPic:        q.StemPic,
		OptionA:        string(q.OptionA),
		OptionB:        string(q.OptionB),
		OptionC:        string(q.OptionC),
		OptionD:        string(q.OptionD),
		CorrectAnswer:  q.Answer,
		UserAnswer:     userAnswer,
		Explanation:    q.Explanation,
		ExplanationPic: q.ExplanationPic,
		WrongCount:     1,
		LastWrongDate:  at,
	}
}

// Question rebuilds a displayable question from the stored snapshot,
// used to drive wrong-answer review sessions.
func (w *WrongQuestion) Question() question.Question {
	return question.Question{
		ID:             w.QuestionID,
		CourseID:       w.CourseID,
		Seq:            w.Seq,
		TestID:         w.TestID,
		Type:           w.Type,
		Area:           w.Area,
		Stem:           w.Stem,
		StemPic:        w.StemPic,
		OptionA:        question.OptionText(w.OptionA),
		OptionB:        question.OptionText(w.OptionB),
		OptionC:        question.OptionText(w.OptionC),
		OptionD:        question.OptionText(w.OptionD),
		Answer:         w.CorrectAnswer,
		Explanation:    w.Explanation,
		ExplanationPic: w.ExplanationPic,
	}
}

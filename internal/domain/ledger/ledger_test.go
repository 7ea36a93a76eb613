package ledger_test

import (
	"testing"
	"time"

	"github.com/ruankao-prep/backend/internal/domain/ledger"
	"github.com/ruankao-prep/backend/internal/domain/question"
)

func TestFromQuestion_Snapshot(t *testing.T) {
	q := question.Question{
		ID:          "q-1",
		CourseID:    3,
		Seq:         5,
		TestID:      "2016-1",
		Stem:        "题干",
		OptionA:     "甲",
		OptionB:     "乙",
		OptionC:     "丙",
		OptionD:     "丁",
		Answer:      "C",
		Explanation: "解析",
		StemPic:     "p.png",
	}

	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	w := ledger.FromQuestion(q, "B", at)

	if w.WrongCount != 1 {
		t.Errorf("expected initial wrong count 1, got %d", w.WrongCount)
	}
	if w.UserAnswer != "B" || w.CorrectAnswer != "C" {
		t.Errorf("unexpected answers: user %q correct %q", w.UserAnswer, w.CorrectAnswer)
	}
	if !w.LastWrongDate.Equal(at) {
		t.Errorf("unexpected last wrong date: %v", w.LastWrongDate)
	}

	back := w.Question()
	if back.ID != q.ID || back.Stem != q.Stem || back.Answer != q.Answer || back.OptionC != q.OptionC {
		t.Error("expected snapshot to rebuild the original question fields")
	}
}

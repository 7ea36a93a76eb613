package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/ruankao-prep/backend/internal/domain/ledger"
	"github.com/ruankao-prep/backend/internal/domain/question"
	"github.com/ruankao-prep/backend/internal/store"
)

func newStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func wrongRecord(questionID string, courseID int, at time.Time) *ledger.WrongQuestion {
	q := question.Question{
		ID:       questionID,
		CourseID: courseID,
		Stem:     "题干 " + questionID,
		OptionA:  "甲", OptionB: "乙", OptionC: "丙", OptionD: "丁",
		Answer:      "A",
		Explanation: "解析",
	}
	return ledger.FromQuestion(q, "B", at)
}

func TestRecordExam_Accumulates(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	if _, err := s.RecordExam(ctx, 3, 10, 7, 30*time.Minute); err != nil {
		t.Fatalf("record exam: %v", err)
	}
	if _, err := s.RecordExam(ctx, 3, 20, 15, time.Hour); err != nil {
		t.Fatalf("record exam: %v", err)
	}

	st, err := s.Statistics(ctx, 3)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if st.CompletedExams != 2 {
		t.Errorf("expected 2 exams, got %d", st.CompletedExams)
	}
	if st.PracticeQuestions != 30 || st.CorrectAnswers != 22 {
		t.Errorf("unexpected totals: %d practiced, %d correct", st.PracticeQuestions, st.CorrectAnswers)
	}
	if st.StudyDuration != 90*time.Minute {
		t.Errorf("expected 90m duration, got %v", st.StudyDuration)
	}
}

func TestStatistics_LazyZeroRecord(t *testing.T) {
	s := newStore(t)

	st, err := s.Statistics(context.Background(), 4)
	if err != nil {
		t.Fatalf("expected lazily created record, got error: %v", err)
	}
	if st.CourseID != 4 || st.PracticeQuestions != 0 || st.CompletedExams != 0 {
		t.Errorf("expected zeroed record, got %+v", st)
	}
	if got := st.AverageAccuracy(); got != 0 {
		t.Errorf("expected 0 accuracy on empty record, got %v", got)
	}
}

func TestStatistics_CoursesIndependent(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	s.RecordExam(ctx, 3, 10, 5, time.Minute)
	s.RecordPractice(ctx, 4, 4, 2, time.Minute)

	st3, _ := s.Statistics(ctx, 3)
	st4, _ := s.Statistics(ctx, 4)
	if st3.CompletedExams != 1 || st3.PracticeQuestions != 10 {
		t.Errorf("unexpected course 3 stats: %+v", st3)
	}
	if st4.CompletedExams != 0 || st4.PracticeQuestions != 4 {
		t.Errorf("unexpected course 4 stats: %+v", st4)
	}
}

func TestUpsertWrongQuestions_Dedupes(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	// Missing the same question three times yields one record, count 3.
	for i := 0; i < 3; i++ {
		rec := wrongRecord("q-1", 3, base.Add(time.Duration(i)*time.Hour))
		rec.UserAnswer = string(rune('B' + i))
		if err := s.UpsertWrongQuestions(ctx, []*ledger.WrongQuestion{rec}); err != nil {
			t.Fatalf("upsert %d: %v", i, err)
		}
	}

	records, err := s.ListWrongQuestions(ctx, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 deduplicated record, got %d", len(records))
	}
	rec := records[0]
	if rec.WrongCount != 3 {
		t.Errorf("expected wrong count 3, got %d", rec.WrongCount)
	}
	if rec.UserAnswer != "D" {
		t.Errorf("expected latest answer to win, got %q", rec.UserAnswer)
	}
	if !rec.LastWrongDate.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("expected refreshed timestamp, got %v", rec.LastWrongDate)
	}
}

func TestUpsertWrongQuestions_BatchMixed(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	if err := s.UpsertWrongQuestions(ctx, []*ledger.WrongQuestion{
		wrongRecord("q-1", 3, base),
		wrongRecord("q-2", 3, base),
	}); err != nil {
		t.Fatalf("first batch: %v", err)
	}

	// Second session misses q-2 again plus a new one.
	if err := s.UpsertWrongQuestions(ctx, []*ledger.WrongQuestion{
		wrongRecord("q-2", 3, base.Add(time.Hour)),
		wrongRecord("q-3", 3, base.Add(time.Hour)),
	}); err != nil {
		t.Fatalf("second batch: %v", err)
	}

	records, _ := s.ListWrongQuestions(ctx, 3)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.QuestionID] = r.WrongCount
	}
	if counts["q-1"] != 1 || counts["q-2"] != 2 || counts["q-3"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestListWrongQuestions_MostRecentFirst(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	s.UpsertWrongQuestions(ctx, []*ledger.WrongQuestion{wrongRecord("q-old", 3, base)})
	s.UpsertWrongQuestions(ctx, []*ledger.WrongQuestion{wrongRecord("q-new", 3, base.Add(2 * time.Hour))})
	s.UpsertWrongQuestions(ctx, []*ledger.WrongQuestion{wrongRecord("q-mid", 3, base.Add(time.Hour))})

	records, err := s.ListWrongQuestions(ctx, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].QuestionID != "q-new" || records[1].QuestionID != "q-mid" || records[2].QuestionID != "q-old" {
		t.Errorf("unexpected order: %s, %s, %s",
			records[0].QuestionID, records[1].QuestionID, records[2].QuestionID)
	}
}

func TestListWrongQuestions_FilteredByCourse(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	now := time.Now()

	s.UpsertWrongQuestions(ctx, []*ledger.WrongQuestion{
		wrongRecord("q-1", 3, now),
		wrongRecord("q-1", 4, now),
	})

	records, _ := s.ListWrongQuestions(ctx, 3)
	if len(records) != 1 || records[0].CourseID != 3 {
		t.Errorf("expected only course 3 records, got %+v", records)
	}
}

func TestDeleteWrongQuestion(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	s.UpsertWrongQuestions(ctx, []*ledger.WrongQuestion{wrongRecord("q-1", 3, time.Now())})
	s.RecordExam(ctx, 3, 10, 9, time.Minute)

	if err := s.DeleteWrongQuestion(ctx, 3, "q-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if records, _ := s.ListWrongQuestions(ctx, 3); len(records) != 0 {
		t.Errorf("expected empty ledger after delete, got %d records", len(records))
	}

	// Deleting never touches statistics.
	st, _ := s.Statistics(ctx, 3)
	if st.PracticeQuestions != 10 || st.CorrectAnswers != 9 {
		t.Errorf("expected statistics untouched by ledger delete, got %+v", st)
	}

	if err := s.DeleteWrongQuestion(ctx, 3, "q-1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestImportWrongQuestions_PreservesCounts(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	rec := wrongRecord("q-1", 3, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	rec.WrongCount = 5
	if err := s.ImportWrongQuestions(ctx, []*ledger.WrongQuestion{rec}); err != nil {
		t.Fatalf("import: %v", err)
	}

	records, _ := s.ListWrongQuestions(ctx, 3)
	if len(records) != 1 || records[0].WrongCount != 5 {
		t.Errorf("expected imported count 5, got %+v", records)
	}
}

func TestPreferences_RoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	if _, err := s.Preference(ctx, "selectedCourseId"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unset key, got %v", err)
	}

	if err := s.SetPreference(ctx, "selectedCourseId", "3"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.SetPreference(ctx, "selectedCourseId", "4"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	v, err := s.Preference(ctx, "selectedCourseId")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != "4" {
		t.Errorf("expected overwritten value 4, got %q", v)
	}

	all, err := s.Preferences(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 || all["selectedCourseId"] != "4" {
		t.Errorf("unexpected preference map: %v", all)
	}
}

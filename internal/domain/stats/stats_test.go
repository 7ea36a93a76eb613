package stats_test

import (
	"testing"
	"time"

	"github.com/ruankao-prep/backend/internal/domain/stats"
)

func TestRecordExam_Accumulates(t *testing.T) {
	s := stats.New(3)

	s.RecordExam(10, 7, 30*time.Minute)
	s.RecordExam(20, 15, time.Hour)

	if s.CompletedExams != 2 {
		t.Errorf("expected 2 completed exams, got %d", s.CompletedExams)
	}
	if s.PracticeQuestions != 30 {
		t.Errorf("expected 30 practice questions, got %d", s.PracticeQuestions)
	}
	if s.CorrectAnswers != 22 {
		t.Errorf("expected 22 correct answers, got %d", s.CorrectAnswers)
	}
	if s.StudyDuration != 90*time.Minute {
		t.Errorf("expected 90m study duration, got %v", s.StudyDuration)
	}
	if s.LastUpdated.IsZero() {
		t.Error("expected LastUpdated to be set")
	}
}

func TestRecordPractice_NoExamBump(t *testing.T) {
	s := stats.New(4)

	s.RecordPractice(5, 3, 10*time.Minute)

	if s.CompletedExams != 0 {
		t.Errorf("expected review practice to leave completedExams at 0, got %d", s.CompletedExams)
	}
	if s.PracticeQuestions != 5 || s.CorrectAnswers != 3 {
		t.Errorf("unexpected totals: %d practiced, %d correct", s.PracticeQuestions, s.CorrectAnswers)
	}
}

func TestAverageAccuracy(t *testing.T) {
	s := stats.New(3)

	if got := s.AverageAccuracy(); got != 0 {
		t.Errorf("expected 0 accuracy with no practice, got %v", got)
	}

	s.RecordExam(10, 7, time.Minute)
	if got := s.AverageAccuracy(); got != 70 {
		t.Errorf("expected 70%% accuracy, got %v", got)
	}
}

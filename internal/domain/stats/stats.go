package stats

import "time"

// StudyStatistics holds the cumulative study totals for one course.
// All counters are monotonically non-decreasing; completing a session
// only ever adds.
type StudyStatistics struct {
	CourseID          int
	PracticeQuestions int
	CorrectAnswers    int
	StudyDuration     time.Duration
	CompletedExams    int
	LastUpdated       time.Time
}

// New returns the zeroed statistics record for a course. Records are
// created lazily on first access.
func New(courseID int) *StudyStatistics {
	return &StudyStatistics{CourseID: courseID}
}

// RecordExam folds one completed simulation exam into the totals.
// Not idempotent: the caller must invoke it at most once per finished
// session (the session's one-shot completion guard does this).
func (s *StudyStatistics) RecordExam(totalQuestions, correctCount int, duration time.Duration) {
	s.CompletedExams++
	s.PracticeQuestions += totalQuestions
	s.CorrectAnswers += correctCount
	s.StudyDuration += duration
	s.LastUpdated = time.Now()
}

// RecordPractice folds an untimed review round into the totals without
// counting a completed exam.
func (s *StudyStatistics) RecordPractice(answered, correct int, duration time.Duration) {
	s.PracticeQuestions += answered
	s.CorrectAnswers += correct
	s.StudyDuration += duration
	s.LastUpdated = time.Now()
}

// AverageAccuracy is always derived from the two counters, never stored.
// Returns 0 when nothing has been practiced yet.
func (s *StudyStatistics) AverageAccuracy() float64 {
	if s.PracticeQuestions == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.PracticeQuestions) * 100
}

package session

import (
	"errors"
	"sync"
	"time"

	"github.com/ruankao-prep/backend/internal/domain/question"
	"github.com/ruankao-prep/backend/internal/id"
)

// Mode decides what happens when a session completes. Simulation sessions
// are scored and persisted; memorization sessions reveal answers as the
// user goes and leave no trace; review sessions replay the wrong-answer
// ledger and bump miss counts on repeat misses.
type Mode string

const (
	ModeSimulation   Mode = "simulation"
	ModeMemorization Mode = "memorization"
	ModeReview       Mode = "review"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeSimulation, ModeMemorization, ModeReview:
		return Mode(s), true
	}
	return "", false
}

// PassingScore is the fixed pass threshold. Not configurable per course.
const PassingScore = 60

var (
	ErrUnknownQuestion = errors.New("question not in session")
	ErrCompleted       = errors.New("session already completed")
)

// WrongAnswer pairs a question with the answer the user actually picked.
type WrongAnswer struct {
	Question   question.Question
	UserAnswer string
}

// Result holds the outcome facts of a completed session.
type Result struct {
	TotalQuestions int
	AnsweredCount  int
	CorrectCount   int
	Score          int
	Passed         bool
	Wrong          []WrongAnswer
	Duration       time.Duration
}

// PracticeSession is an in-memory practice run over one question set.
// It is ephemeral: only the statistics and wrong-answer side effects of
// completing it survive.
type PracticeSession struct {
	ID        string
	CourseID  int
	Mode      Mode
	Locator   string
	Questions []question.Question
	StartedAt time.Time

	mu        sync.Mutex
	byID      map[string]int // question ID → index into Questions
	answers   map[string]string
	completed bool
	result    *Result
}

// New creates a session over the given question set. The locator string
// identifies the set for logging and has no behavioral meaning here.
func New(courseID int, mode Mode, locator string, questions []question.Question) *PracticeSession {
	byID := make(map[string]int, len(questions))
	for i, q := range questions {
		byID[q.ID] = i
	}
	return &PracticeSession{
		ID:        id.New(),
		CourseID:  courseID,
		Mode:      mode,
		Locator:   locator,
		Questions: questions,
		StartedAt: time.Now(),
		byID:      byID,
		answers:   make(map[string]string),
	}
}

// RecordAnswer stores or overwrites the single selected letter for a
// question. The letter is not validated against the option set; an
// invalid letter simply never matches at scoring time.
func (s *PracticeSession) RecordAnswer(questionID, letter string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return ErrCompleted
	}
	if _, ok := s.byID[questionID]; !ok {
		return ErrUnknownQuestion
	}
	s.answers[questionID] = letter
	return nil
}

// Answer returns the currently selected letter for a question, if any.
func (s *PracticeSession) Answer(questionID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.answers[questionID]
	return a, ok
}

// AnsweredCount is the number of questions with a submitted answer.
func (s *PracticeSession) AnsweredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

// CorrectCount is the number of submitted answers matching the correct
// letter. Unanswered questions count neither as correct nor as wrong.
func (s *PracticeSession) CorrectCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.correctCountLocked()
}

func (s *PracticeSession) correctCountLocked() int {
	n := 0
	for _, q := range s.Questions {
		if a, ok := s.answers[q.ID]; ok && a == q.Answer {
			n++
		}
	}
	return n
}

// WrongQuestions returns every answered question whose submitted answer
// differs from the correct one, in question-set order.
func (s *PracticeSession) WrongQuestions() []WrongAnswer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wrongLocked()
}

func (s *PracticeSession) wrongLocked() []WrongAnswer {
	var wrong []WrongAnswer
	for _, q := range s.Questions {
		if a, ok := s.answers[q.ID]; ok && a != q.Answer {
			wrong = append(wrong, WrongAnswer{Question: q, UserAnswer: a})
		}
	}
	return wrong
}

// Score is the integer percentage floor(100*correct/total) over the full
// set size, so an unanswered question weighs like a wrong one. Sessions
// are never created over an empty set; an empty set scores 0.
func (s *PracticeSession) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scoreLocked()
}

func (s *PracticeSession) scoreLocked() int {
	if len(s.Questions) == 0 {
		return 0
	}
	return 100 * s.correctCountLocked() / len(s.Questions)
}

// Passed reports whether the current score clears the pass threshold.
func (s *PracticeSession) Passed() bool {
	return s.Score() >= PassingScore
}

// Complete finalizes the session exactly once and returns the outcome.
// The second return value is false when the session was already
// completed; in that case the original result is returned unchanged, so
// duplicate completion events cannot double-record.
func (s *PracticeSession) Complete(now time.Time) (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return *s.result, false
	}

	res := Result{
		TotalQuestions: len(s.Questions),
		AnsweredCount:  len(s.answers),
		CorrectCount:   s.correctCountLocked(),
		Score:          s.scoreLocked(),
		Wrong:          s.wrongLocked(),
		Duration:       now.Sub(s.StartedAt),
	}
	res.Passed = res.Score >= PassingScore

	s.completed = true
	s.result = &res
	return res, true
}

// Completed reports whether Complete has been called.
func (s *PracticeSession) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

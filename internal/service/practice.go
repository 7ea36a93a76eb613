package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ruankao-prep/backend/internal/content"
	"github.com/ruankao-prep/backend/internal/domain/ledger"
	"github.com/ruankao-prep/backend/internal/domain/question"
	"github.com/ruankao-prep/backend/internal/domain/session"
	"github.com/ruankao-prep/backend/internal/store"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyLedger     = errors.New("no wrong questions to review")
)

// PracticeService runs the practice-session lifecycle: it resolves
// question sets into sessions, records answers, and on completion folds
// the outcome into statistics and the wrong-answer ledger. Sessions are
// in-memory only; the side effects of completing one are the durable
// part.
type PracticeService struct {
	resolver *content.Resolver
	store    store.Store
	logger   *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*session.PracticeSession
}

// NewPracticeService creates a PracticeService.
func NewPracticeService(resolver *content.Resolver, st store.Store, logger *slog.Logger) *PracticeService {
	return &PracticeService{
		resolver: resolver,
		store:    st,
		logger:   logger,
		sessions: make(map[string]*session.PracticeSession),
	}
}

// StartExam begins a session over a past-exam paper.
func (s *PracticeService) StartExam(courseID int, category question.Category, year, batch string, mode session.Mode) (*session.PracticeSession, error) {
	loc := content.ExamLocator{CourseID: courseID, Category: category, Year: year, Batch: batch}
	return s.start(courseID, mode, loc)
}

// StartChapter begins a session over one chapter question group.
func (s *PracticeService) StartChapter(courseID int, chapter string, group int, mode session.Mode) (*session.PracticeSession, error) {
	loc := content.ChapterLocator{CourseID: courseID, Chapter: chapter, Group: group}
	return s.start(courseID, mode, loc)
}

func (s *PracticeService) start(courseID int, mode session.Mode, loc content.Locator) (*session.PracticeSession, error) {
	questions, err := s.resolver.LoadQuestions(loc)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: empty question set at %s", content.ErrUnavailable, loc.Path())
	}

	sess := session.New(courseID, mode, loc.CacheKey(), questions)
	s.track(sess)

	s.logger.Info("session started",
		"session_id", sess.ID,
		"mode", sess.Mode,
		"locator", sess.Locator,
		"questions", len(questions),
	)
	return sess, nil
}

// StartReview begins a review session over the course's wrong-answer
// ledger, most recently missed first.
func (s *PracticeService) StartReview(ctx context.Context, courseID int) (*session.PracticeSession, error) {
	records, err := s.store.ListWrongQuestions(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyLedger
	}

	questions := make([]question.Question, len(records))
	for i, rec := range records {
		questions[i] = rec.Question()
	}

	sess := session.New(courseID, session.ModeReview, fmt.Sprintf("review|%d", courseID), questions)
	s.track(sess)

	s.logger.Info("review session started", "session_id", sess.ID, "course_id", courseID, "questions", len(questions))
	return sess, nil
}

func (s *PracticeService) track(sess *session.PracticeSession) {
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
}

// Session looks up an active session.
func (s *PracticeService) Session(sessionID string) (*session.PracticeSession, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// RecordAnswer stores the selected letter for a question in a session.
func (s *PracticeService) RecordAnswer(sessionID, questionID, letter string) error {
	sess, err := s.Session(sessionID)
	if err != nil {
		return err
	}
	return sess.RecordAnswer(questionID, letter)
}

// Complete finishes a session and persists its side effects. The
// session's one-shot guard makes duplicate completion events safe: the
// original result is returned and nothing is recorded twice. Persistence
// failures are logged and do not fail the completion; the in-memory
// result remains the best-effort truth for the rest of the session.
func (s *PracticeService) Complete(ctx context.Context, sessionID string) (session.Result, error) {
	sess, err := s.Session(sessionID)
	if err != nil {
		return session.Result{}, err
	}

	result, first := sess.Complete(time.Now())
	if !first {
		s.logger.Warn("duplicate session completion ignored", "session_id", sessionID)
		return result, nil
	}

	switch sess.Mode {
	case session.ModeSimulation:
		s.persistWrong(ctx, result.Wrong)
		if _, err := s.store.RecordExam(ctx, sess.CourseID, result.TotalQuestions, result.CorrectCount, result.Duration); err != nil {
			s.logger.Error("failed to record exam statistics", "session_id", sessionID, "error", err)
		}
	case session.ModeReview:
		s.persistWrong(ctx, result.Wrong)
		if result.AnsweredCount > 0 {
			if _, err := s.store.RecordPractice(ctx, sess.CourseID, result.AnsweredCount, result.CorrectCount, result.Duration); err != nil {
				s.logger.Error("failed to record practice statistics", "session_id", sessionID, "error", err)
			}
		}
	case session.ModeMemorization:
		// Memorization leaves no trace.
	}

	s.logger.Info("session completed",
		"session_id", sessionID,
		"mode", sess.Mode,
		"score", result.Score,
		"passed", result.Passed,
		"wrong", len(result.Wrong),
	)
	return result, nil
}

func (s *PracticeService) persistWrong(ctx context.Context, wrong []session.WrongAnswer) {
	if len(wrong) == 0 {
		return
	}
	now := time.Now()
	records := make([]*ledger.WrongQuestion, len(wrong))
	for i, w := range wrong {
		records[i] = ledger.FromQuestion(w.Question, w.UserAnswer, now)
	}
	if err := s.store.UpsertWrongQuestions(ctx, records); err != nil {
		s.logger.Error("failed to save wrong questions", "count", len(records), "error", err)
	}
}

package store

import (
	"context"
	"errors"
	"time"

	"github.com/ruankao-prep/backend/internal/domain/ledger"
	"github.com/ruankao-prep/backend/internal/domain/stats"
)

var ErrNotFound = errors.New("not found")

// Store is the durable local state this service owns: per-course study
// statistics, the wrong-answer ledger, and the user-preferences
// key-value table.
type Store interface {
	// Statistics returns the record for a course, lazily zero-valued
	// when the course has never been practiced.
	Statistics(ctx context.Context, courseID int) (*stats.StudyStatistics, error)
	// RecordExam folds one completed exam into a course's totals and
	// returns the updated record. Increments are serialized per course.
	RecordExam(ctx context.Context, courseID, totalQuestions, correctCount int, duration time.Duration) (*stats.StudyStatistics, error)
	// RecordPractice folds a review round into a course's totals
	// without bumping the completed-exam counter.
	RecordPractice(ctx context.Context, courseID, answered, correct int, duration time.Duration) (*stats.StudyStatistics, error)

	// UpsertWrongQuestions batch-reads existing entries for the given
	// records, then batch-writes: new misses insert with count 1,
	// repeat misses bump the count and refresh answer and timestamp.
	UpsertWrongQuestions(ctx context.Context, records []*ledger.WrongQuestion) error
	// ImportWrongQuestions restores ledger entries verbatim, counts
	// included, replacing any entry with the same key.
	ImportWrongQuestions(ctx context.Context, records []*ledger.WrongQuestion) error
	ListWrongQuestions(ctx context.Context, courseID int) ([]*ledger.WrongQuestion, error)
	DeleteWrongQuestion(ctx context.Context, courseID int, questionID string) error

	Preference(ctx context.Context, key string) (string, error)
	SetPreference(ctx context.Context, key, value string) error
	Preferences(ctx context.Context) (map[string]string, error)

	Close() error
}

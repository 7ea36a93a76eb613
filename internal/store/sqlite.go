package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ruankao-prep/backend/internal/domain/ledger"
	"github.com/ruankao-prep/backend/internal/domain/stats"
)

const schema = `
CREATE TABLE IF NOT EXISTS study_statistics (
    course_id INTEGER PRIMARY KEY,
    practice_questions INTEGER NOT NULL DEFAULT 0,
    correct_answers INTEGER NOT NULL DEFAULT 0,
    study_duration_secs INTEGER NOT NULL DEFAULT 0,
    completed_exams INTEGER NOT NULL DEFAULT 0,
    last_updated INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS wrong_questions (
    question_id TEXT NOT NULL,
    course_id INTEGER NOT NULL,
    seq INTEGER NOT NULL DEFAULT 0,
    test_id TEXT NOT NULL DEFAULT '',
    type INTEGER NOT NULL DEFAULT 0,
    area INTEGER NOT NULL DEFAULT 0,
    tigan TEXT NOT NULL DEFAULT '',
    tigan_pic TEXT NOT NULL DEFAULT '',
    option_a TEXT NOT NULL DEFAULT '',
    option_b TEXT NOT NULL DEFAULT '',
    option_c TEXT NOT NULL DEFAULT '',
    option_d TEXT NOT NULL DEFAULT '',
    correct_answer TEXT NOT NULL DEFAULT '',
    user_answer TEXT NOT NULL DEFAULT '',
    explanation TEXT NOT NULL DEFAULT '',
    explanation_pic TEXT NOT NULL DEFAULT '',
    wrong_count INTEGER NOT NULL DEFAULT 1,
    last_wrong_date INTEGER NOT NULL,
    PRIMARY KEY (course_id, question_id)
);

CREATE INDEX IF NOT EXISTS idx_wrong_questions_recency
    ON wrong_questions (course_id, last_wrong_date DESC);

CREATE TABLE IF NOT EXISTS preferences (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// SQLiteStore persists statistics, the wrong-answer ledger, and
// preferences in a single local database file.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Study statistics
// ============================================================================

func (s *SQLiteStore) Statistics(ctx context.Context, courseID int) (*stats.StudyStatistics, error) {
	st, err := scanStatistics(s.db.QueryRowContext(ctx,
		`SELECT course_id, practice_questions, correct_answers, study_duration_secs, completed_exams, last_updated
		 FROM study_statistics WHERE course_id = ?`, courseID))
	if err == sql.ErrNoRows {
		return stats.New(courseID), nil
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (s *SQLiteStore) RecordExam(ctx context.Context, courseID, totalQuestions, correctCount int, duration time.Duration) (*stats.StudyStatistics, error) {
	return s.updateStatistics(ctx, courseID, func(st *stats.StudyStatistics) {
		st.RecordExam(totalQuestions, correctCount, duration)
	})
}

func (s *SQLiteStore) RecordPractice(ctx context.Context, courseID, answered, correct int, duration time.Duration) (*stats.StudyStatistics, error) {
	return s.updateStatistics(ctx, courseID, func(st *stats.StudyStatistics) {
		st.RecordPractice(answered, correct, duration)
	})
}

// updateStatistics runs a read-modify-write on one course's row inside a
// transaction, so concurrent increments for the same course cannot lose
// updates. Rows for different courses are independent.
func (s *SQLiteStore) updateStatistics(ctx context.Context, courseID int, apply func(*stats.StudyStatistics)) (*stats.StudyStatistics, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	st, err := scanStatistics(tx.QueryRowContext(ctx,
		`SELECT course_id, practice_questions, correct_answers, study_duration_secs, completed_exams, last_updated
		 FROM study_statistics WHERE course_id = ?`, courseID))
	if err == sql.ErrNoRows {
		st = stats.New(courseID)
	} else if err != nil {
		return nil, err
	}

	apply(st)

	_, err = tx.ExecContext(ctx,
		`INSERT INTO study_statistics (course_id, practice_questions, correct_answers, study_duration_secs, completed_exams, last_updated)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (course_id) DO UPDATE SET
		     practice_questions = excluded.practice_questions,
		     correct_answers = excluded.correct_answers,
		     study_duration_secs = excluded.study_duration_secs,
		     completed_exams = excluded.completed_exams,
		     last_updated = excluded.last_updated`,
		st.CourseID, st.PracticeQuestions, st.CorrectAnswers,
		int64(st.StudyDuration.Seconds()), st.CompletedExams, st.LastUpdated.Unix())
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return st, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStatistics(row rowScanner) (*stats.StudyStatistics, error) {
	var st stats.StudyStatistics
	var durationSecs, updatedUnix int64
	err := row.Scan(&st.CourseID, &st.PracticeQuestions, &st.CorrectAnswers,
		&durationSecs, &st.CompletedExams, &updatedUnix)
	if err != nil {
		return nil, err
	}
	st.StudyDuration = time.Duration(durationSecs) * time.Second
	if updatedUnix > 0 {
		st.LastUpdated = time.Unix(updatedUnix, 0)
	}
	return &st, nil
}

// ============================================================================
// Wrong-answer ledger
// ============================================================================

func (s *SQLiteStore) UpsertWrongQuestions(ctx context.Context, records []*ledger.WrongQuestion) error {
	if len(records) == 0 {
		return nil
	}

	// A session produces records for one course, but group defensively
	// so the batch-read stays keyed correctly.
	byCourse := make(map[int][]*ledger.WrongQuestion)
	for _, rec := range records {
		byCourse[rec.CourseID] = append(byCourse[rec.CourseID], rec)
	}

	for courseID, recs := range byCourse {
		if err := s.upsertCourseBatch(ctx, courseID, recs); err != nil {
			return err
		}
	}
	return nil
}

// upsertCourseBatch does one batch read of the existing miss counts,
// then one batch write, so a session with many misses costs two round
// trips instead of two per question.
func (s *SQLiteStore) upsertCourseBatch(ctx context.Context, courseID int, records []*ledger.WrongQuestion) error {
	ids := make([]any, 0, len(records)+1)
	ids = append(ids, courseID)
	for _, rec := range records {
		ids = append(ids, rec.QuestionID)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(records)), ", ")

	rows, err := s.db.QueryContext(ctx,
		`SELECT question_id, wrong_count FROM wrong_questions
		 WHERE course_id = ? AND question_id IN (`+placeholders+`)`, ids...)
	if err != nil {
		return err
	}
	existing := make(map[string]int)
	for rows.Next() {
		var id string
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			rows.Close()
			return err
		}
		existing[id] = count
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, rec := range records {
		if count, ok := existing[rec.QuestionID]; ok {
			_, err = tx.ExecContext(ctx,
				`UPDATE wrong_questions
				 SET wrong_count = ?, user_answer = ?, last_wrong_date = ?
				 WHERE course_id = ? AND question_id = ?`,
				count+1, rec.UserAnswer, rec.LastWrongDate.Unix(), courseID, rec.QuestionID)
		} else {
			err = s.insertWrongQuestion(ctx, tx, rec)
		}
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) ImportWrongQuestions(ctx context.Context, records []*ledger.WrongQuestion) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, rec := range records {
		_, err := tx.ExecContext(ctx,
			`DELETE FROM wrong_questions WHERE course_id = ? AND question_id = ?`,
			rec.CourseID, rec.QuestionID)
		if err != nil {
			return err
		}
		if err := s.insertWrongQuestion(ctx, tx, rec); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) insertWrongQuestion(ctx context.Context, tx *sql.Tx, rec *ledger.WrongQuestion) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO wrong_questions (
		     question_id, course_id, seq, test_id, type, area,
		     tigan, tigan_pic, option_a, option_b, option_c, option_d,
		     correct_answer, user_answer, explanation, explanation_pic,
		     wrong_count, last_wrong_date
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.QuestionID, rec.CourseID, rec.Seq, rec.TestID, rec.Type, rec.Area,
		rec.Stem, rec.StemPic, rec.OptionA, rec.OptionB, rec.OptionC, rec.OptionD,
		rec.CorrectAnswer, rec.UserAnswer, rec.Explanation, rec.ExplanationPic,
		rec.WrongCount, rec.LastWrongDate.Unix())
	return err
}

func (s *SQLiteStore) ListWrongQuestions(ctx context.Context, courseID int) ([]*ledger.WrongQuestion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT question_id, course_id, seq, test_id, type, area,
		        tigan, tigan_pic, option_a, option_b, option_c, option_d,
		        correct_answer, user_answer, explanation, explanation_pic,
		        wrong_count, last_wrong_date
		 FROM wrong_questions
		 WHERE course_id = ?
		 ORDER BY last_wrong_date DESC, question_id`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*ledger.WrongQuestion
	for rows.Next() {
		var rec ledger.WrongQuestion
		var wrongUnix int64
		err := rows.Scan(&rec.QuestionID, &rec.CourseID, &rec.Seq, &rec.TestID, &rec.Type, &rec.Area,
			&rec.Stem, &rec.StemPic, &rec.OptionA, &rec.OptionB, &rec.OptionC, &rec.OptionD,
			&rec.CorrectAnswer, &rec.UserAnswer, &rec.Explanation, &rec.ExplanationPic,
			&rec.WrongCount, &wrongUnix)
		if err != nil {
			return nil, err
		}
		rec.LastWrongDate = time.Unix(wrongUnix, 0)
		records = append(records, &rec)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) DeleteWrongQuestion(ctx context.Context, courseID int, questionID string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM wrong_questions WHERE course_id = ? AND question_id = ?`,
		courseID, questionID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ============================================================================
// Preferences
// ============================================================================

func (s *SQLiteStore) Preference(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *SQLiteStore) SetPreference(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("save preference %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Preferences(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM preferences`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		values[k] = v
	}
	return values, rows.Err()
}

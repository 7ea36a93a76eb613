package content

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"sync"

	"github.com/ruankao-prep/backend/internal/domain/question"
)

// Path vocabulary fixed by the content producer pipeline.
const (
	bankRoot    = "杨老师题库"
	examSection = "历年真题"
	chapterBank = "分章题库"
)

// CourseName maps a course ID to the directory name the producer uses.
// 3 is the advanced track; everything else falls back to intermediate,
// matching the producer's two-course layout.
func CourseName(courseID int) string {
	if courseID == 3 {
		return "高项"
	}
	return "中项"
}

// Locator identifies one concrete question set within the bank.
type Locator interface {
	// Path is the set's file path inside the content source.
	Path() string
	// CacheKey fully qualifies the locator for memoization.
	CacheKey() string
}

// ExamLocator addresses a past-exam paper: course + category + year + batch.
type ExamLocator struct {
	CourseID int
	Category question.Category
	Year     string
	Batch    string
}

func (l ExamLocator) Path() string {
	return path.Join(bankRoot, CourseName(l.CourseID), examSection, string(l.Category), l.Year, l.Year+l.Batch+".json")
}

func (l ExamLocator) CacheKey() string {
	return fmt.Sprintf("exam|%d|%s|%s|%s", l.CourseID, l.Category, l.Year, l.Batch)
}

// ChapterLocator addresses one question group within a chapter.
type ChapterLocator struct {
	CourseID int
	Chapter  string
	Group    int
}

func (l ChapterLocator) Path() string {
	fileName := "第" + ChineseOrdinal(l.Group) + "组.json"
	return path.Join(bankRoot, CourseName(l.CourseID), chapterBank, l.Chapter, fileName)
}

func (l ChapterLocator) CacheKey() string {
	return fmt.Sprintf("chapter|%d|%s|%d", l.CourseID, l.Chapter, l.Group)
}

// YearGroup is one exam year and the batches available in it. Derived by
// enumeration, never stored.
type YearGroup struct {
	Year    string
	Batches []string
}

// ChapterInfo is one chapter directory and its question-group file count.
type ChapterInfo struct {
	Name           string
	QuestionGroups int
}

// Resolver translates logical selections into loaded question data and
// memoizes decoded sets by locator key. Decoding the same set twice
// concurrently is tolerated; both decodes produce identical data and the
// cache keeps one of them.
type Resolver struct {
	fsys   fs.FS
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[string][]question.Question
}

// NewResolver creates a Resolver over a content source.
func NewResolver(fsys fs.FS, logger *slog.Logger) *Resolver {
	return &Resolver{
		fsys:   fsys,
		logger: logger,
		cache:  make(map[string][]question.Question),
	}
}

// ListYearGroups enumerates the years and batches available for a course
// and category, ascending by name. Absent content is not exceptional:
// the result is simply empty.
func (r *Resolver) ListYearGroups(courseID int, category question.Category) []YearGroup {
	dir := path.Join(bankRoot, CourseName(courseID), examSection, string(category))
	years, err := fs.ReadDir(r.fsys, dir)
	if err != nil {
		r.logger.Debug("no exam papers found", "path", dir)
		return nil
	}

	var groups []YearGroup
	for _, yearDir := range years {
		if !yearDir.IsDir() {
			continue
		}
		year := yearDir.Name()
		files, err := fs.ReadDir(r.fsys, path.Join(dir, year))
		if err != nil {
			continue
		}

		var batches []string
		for _, f := range files {
			name := f.Name()
			if f.IsDir() || !strings.HasSuffix(name, ".json") {
				continue
			}
			// "2016第一批.json" → "第一批"
			batch, ok := strings.CutPrefix(strings.TrimSuffix(name, ".json"), year)
			if !ok {
				continue
			}
			batches = append(batches, batch)
		}
		if len(batches) > 0 {
			groups = append(groups, YearGroup{Year: year, Batches: batches})
		}
	}
	return groups
}

// ListChapters enumerates chapter directories for a course, counting the
// question-group files in each, sorted ascending by name. Hidden entries
// are skipped. Absent content yields an empty result.
func (r *Resolver) ListChapters(courseID int) []ChapterInfo {
	dir := path.Join(bankRoot, CourseName(courseID), chapterBank)
	entries, err := fs.ReadDir(r.fsys, dir)
	if err != nil {
		r.logger.Debug("no chapters found", "path", dir)
		return nil
	}

	var chapters []ChapterInfo
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		files, err := fs.ReadDir(r.fsys, path.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		groups := 0
		for _, f := range files {
			if !f.IsDir() && strings.HasSuffix(f.Name(), ".json") {
				groups++
			}
		}
		chapters = append(chapters, ChapterInfo{Name: e.Name(), QuestionGroups: groups})
	}
	return chapters
}

// LoadQuestions loads and decodes the question set a locator points at,
// serving repeated requests for the same locator from the in-memory
// cache so navigation back and forth does not re-parse.
func (r *Resolver) LoadQuestions(loc Locator) ([]question.Question, error) {
	key := loc.CacheKey()

	r.mu.RLock()
	qs, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return qs, nil
	}

	f, err := r.fsys.Open(loc.Path())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, loc.Path())
	}
	defer f.Close()

	qs, err = question.DecodeSet(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", loc.Path(), err)
	}

	r.mu.Lock()
	r.cache[key] = qs
	r.mu.Unlock()

	r.logger.Debug("question set loaded", "locator", key, "questions", len(qs))
	return qs, nil
}

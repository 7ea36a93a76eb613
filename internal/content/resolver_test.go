package content_test

import (
	"archive/zip"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ruankao-prep/backend/internal/content"
	"github.com/ruankao-prep/backend/internal/domain/question"
)

func questionSetJSON(ids ...string) string {
	var items []string
	for i, id := range ids {
		items = append(items, fmt.Sprintf(`{
			"_id": %q, "course_id": 3, "id": %d, "seq": %d, "test_id": "t",
			"type": 1, "area": 1, "tigan": "题目", "A": "a", "B": "b", "C": "c", "D": "d",
			"answer": "A", "explanation": "", "tigan_pic": "", "explanation_pic": ""
		}`, id, i+1, i+1))
	}
	return fmt.Sprintf(`{"success": true, "data": {"errCode": 0, "errMsg": "", "data": [%s]}}`,
		strings.Join(items, ","))
}

func writeFile(t *testing.T, root string, rel string, data string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

// newBankDir builds a content tree matching the producer layout.
func newBankDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, root, "杨老师题库/高项/历年真题/综合知识/2016/2016第一批.json", questionSetJSON("e1", "e2", "e3"))
	writeFile(t, root, "杨老师题库/高项/历年真题/综合知识/2016/2016第二批.json", questionSetJSON("e4"))
	writeFile(t, root, "杨老师题库/高项/历年真题/综合知识/2017/2017第一批.json", questionSetJSON("e5", "e6"))
	writeFile(t, root, "杨老师题库/高项/历年真题/综合知识/2017/notes.txt", "ignore me")
	writeFile(t, root, "杨老师题库/高项/分章题库/第一章 信息化发展/第一组.json", questionSetJSON("c1", "c2"))
	writeFile(t, root, "杨老师题库/高项/分章题库/第一章 信息化发展/第二组.json", questionSetJSON("c3"))
	writeFile(t, root, "杨老师题库/高项/分章题库/第二章 信息技术/第一组.json", questionSetJSON("c4"))
	writeFile(t, root, "杨老师题库/高项/分章题库/.DS_Store/x", "junk")

	return root
}

func newResolver(t *testing.T, root string) *content.Resolver {
	t.Helper()
	fsys, err := content.NewDirSource(root)
	if err != nil {
		t.Fatalf("open dir source: %v", err)
	}
	return content.NewResolver(fsys, slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func TestListYearGroups(t *testing.T) {
	r := newResolver(t, newBankDir(t))

	groups := r.ListYearGroups(3, question.CategoryComprehensive)
	if len(groups) != 2 {
		t.Fatalf("expected 2 year groups, got %d", len(groups))
	}

	// Ascending lexical order; batch labels have the year prefix stripped.
	if groups[0].Year != "2016" || groups[1].Year != "2017" {
		t.Errorf("unexpected year order: %q, %q", groups[0].Year, groups[1].Year)
	}
	if len(groups[0].Batches) != 2 || groups[0].Batches[0] != "第一批" || groups[0].Batches[1] != "第二批" {
		t.Errorf("unexpected batches for 2016: %v", groups[0].Batches)
	}
	if len(groups[1].Batches) != 1 || groups[1].Batches[0] != "第一批" {
		t.Errorf("unexpected batches for 2017: %v", groups[1].Batches)
	}
}

func TestListYearGroups_MissingContent(t *testing.T) {
	r := newResolver(t, newBankDir(t))

	// Wrong course resolves to a path that does not exist: empty, no error.
	if groups := r.ListYearGroups(4, question.CategoryComprehensive); len(groups) != 0 {
		t.Errorf("expected no year groups for absent course, got %v", groups)
	}
	if groups := r.ListYearGroups(3, question.CategoryEssay); len(groups) != 0 {
		t.Errorf("expected no year groups for absent category, got %v", groups)
	}
}

func TestListChapters(t *testing.T) {
	r := newResolver(t, newBankDir(t))

	chapters := r.ListChapters(3)
	if len(chapters) != 2 {
		t.Fatalf("expected 2 chapters (hidden dir skipped), got %d", len(chapters))
	}
	if chapters[0].Name != "第一章 信息化发展" || chapters[0].QuestionGroups != 2 {
		t.Errorf("unexpected first chapter: %+v", chapters[0])
	}
	if chapters[1].Name != "第二章 信息技术" || chapters[1].QuestionGroups != 1 {
		t.Errorf("unexpected second chapter: %+v", chapters[1])
	}
}

func TestLoadQuestions_ExamScenario(t *testing.T) {
	r := newResolver(t, newBankDir(t))

	loc := content.ExamLocator{CourseID: 3, Category: question.CategoryComprehensive, Year: "2016", Batch: "第一批"}
	first, err := r.LoadQuestions(loc)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(first) != 3 || first[0].ID != "e1" {
		t.Fatalf("unexpected question set: %+v", first)
	}

	second, err := r.LoadQuestions(loc)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("expected identical sets across loads")
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("question %d differs across loads: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}

func TestLoadQuestions_ServedFromCache(t *testing.T) {
	root := newBankDir(t)
	r := newResolver(t, root)

	loc := content.ChapterLocator{CourseID: 3, Chapter: "第一章 信息化发展", Group: 1}
	first, err := r.LoadQuestions(loc)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(first))
	}

	// Overwrite the file; the cached set must still be served.
	writeFile(t, root, "杨老师题库/高项/分章题库/第一章 信息化发展/第一组.json", questionSetJSON("changed"))

	again, err := r.LoadQuestions(loc)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(again) != 2 || again[0].ID != "c1" {
		t.Error("expected second load to come from the cache, not the modified file")
	}
}

func TestLoadQuestions_MissingFile(t *testing.T) {
	r := newResolver(t, newBankDir(t))

	loc := content.ExamLocator{CourseID: 3, Category: question.CategoryComprehensive, Year: "2099", Batch: "第一批"}
	if _, err := r.LoadQuestions(loc); err == nil {
		t.Fatal("expected error for missing file")
	} else if !strings.Contains(err.Error(), "content unavailable") {
		t.Errorf("expected content-unavailable error, got %v", err)
	}
}

func TestChapterLocatorPath_Ordinals(t *testing.T) {
	loc := content.ChapterLocator{CourseID: 3, Chapter: "第一章", Group: 2}
	if got := loc.Path(); got != "杨老师题库/高项/分章题库/第一章/第二组.json" {
		t.Errorf("unexpected path: %q", got)
	}

	// Beyond the ordinal table the decimal form is used.
	loc.Group = 21
	if got := loc.Path(); !strings.HasSuffix(got, "第21组.json") {
		t.Errorf("expected decimal fallback, got %q", got)
	}
}

func TestChineseOrdinal(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{1, "一"}, {2, "二"}, {10, "十"}, {11, "十一"}, {20, "二十"},
		{0, "0"}, {21, "21"}, {-1, "-1"},
	}
	for _, c := range cases {
		if got := content.ChineseOrdinal(c.n); got != c.want {
			t.Errorf("ChineseOrdinal(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestZipSource_MatchesDirSource(t *testing.T) {
	root := newBankDir(t)

	// Pack the same tree into a zip archive.
	zipPath := filepath.Join(t.TempDir(), "bank.zip")
	zf, err := os.Create(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(zf)
	err = filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := zf.Close(); err != nil {
		t.Fatal(err)
	}

	fsys, closer, err := content.NewZipSource(zipPath)
	if err != nil {
		t.Fatalf("open zip source: %v", err)
	}
	defer closer.Close()

	r := content.NewResolver(fsys, slog.New(slog.NewTextHandler(os.Stderr, nil)))

	loc := content.ExamLocator{CourseID: 3, Category: question.CategoryComprehensive, Year: "2016", Batch: "第一批"}
	qs, err := r.LoadQuestions(loc)
	if err != nil {
		t.Fatalf("load from zip: %v", err)
	}
	if len(qs) != 3 || qs[0].ID != "e1" {
		t.Errorf("zip source returned a different set: %+v", qs)
	}

	if groups := r.ListYearGroups(3, question.CategoryComprehensive); len(groups) != 2 {
		t.Errorf("expected 2 year groups from zip source, got %d", len(groups))
	}
}

func TestWarmCourse(t *testing.T) {
	r := newResolver(t, newBankDir(t))

	// 3 exam papers + 3 chapter groups in the fixture.
	if loaded := r.WarmCourse(3, 2); loaded != 6 {
		t.Errorf("expected 6 sets warmed, got %d", loaded)
	}

	// Warmed sets are cache hits afterwards.
	loc := content.ExamLocator{CourseID: 3, Category: question.CategoryComprehensive, Year: "2017", Batch: "第一批"}
	if _, err := r.LoadQuestions(loc); err != nil {
		t.Errorf("expected warmed set to load: %v", err)
	}
}

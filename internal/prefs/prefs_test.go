package prefs_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ruankao-prep/backend/internal/prefs"
	"github.com/ruankao-prep/backend/internal/store"
)

func newPrefs(t *testing.T) (*prefs.Preferences, *store.SQLiteStore) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := store.NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	p, err := prefs.Load(context.Background(), st, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err != nil {
		t.Fatalf("load prefs: %v", err)
	}
	return p, st
}

func TestSetAndReload(t *testing.T) {
	ctx := context.Background()
	p, st := newPrefs(t)

	if err := p.SetSelectedCourse(ctx, 3); err != nil {
		t.Fatalf("set course: %v", err)
	}
	if id, ok := p.SelectedCourseID(); !ok || id != 3 {
		t.Errorf("expected selected course 3, got %d (%v)", id, ok)
	}
	if name, _ := p.Get(prefs.KeySelectedCourseName); name != "高项" {
		t.Errorf("expected course name 高项, got %q", name)
	}

	// A fresh load sees the persisted values.
	reloaded, err := prefs.Load(ctx, st, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if id, ok := reloaded.SelectedCourseID(); !ok || id != 3 {
		t.Errorf("expected reloaded course 3, got %d (%v)", id, ok)
	}
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()
	p, _ := newPrefs(t)

	var gotKey, gotValue string
	p.Subscribe(func(key, value string) {
		gotKey, gotValue = key, value
	})

	if err := p.Set(ctx, prefs.KeyUserFullName, "测试用户"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if gotKey != prefs.KeyUserFullName || gotValue != "测试用户" {
		t.Errorf("observer saw (%q, %q)", gotKey, gotValue)
	}
}

func TestSelectedCourseID_Unset(t *testing.T) {
	p, _ := newPrefs(t)

	if _, ok := p.SelectedCourseID(); ok {
		t.Error("expected no selected course on fresh preferences")
	}
}

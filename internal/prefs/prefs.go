package prefs

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/ruankao-prep/backend/internal/content"
	"github.com/ruankao-prep/backend/internal/store"
)

// Well-known preference keys. The names match the key-value store of the
// mobile clients so an exported profile stays readable.
const (
	KeySelectedCourseID   = "selectedCourseId"
	KeySelectedCourseName = "selectedCourseName"
	KeyUserFullName       = "userFullName"
	KeyUserEmail          = "userEmail"
)

// Preferences is the user's durable settings: loaded once at start,
// written through to the store on every change, and observable. It is
// constructed and injected explicitly; there is no package-level state.
type Preferences struct {
	store  store.Store
	logger *slog.Logger

	mu     sync.RWMutex
	values map[string]string
	subs   []func(key, value string)
}

// Load reads all persisted preferences into memory.
func Load(ctx context.Context, st store.Store, logger *slog.Logger) (*Preferences, error) {
	values, err := st.Preferences(ctx)
	if err != nil {
		return nil, err
	}
	return &Preferences{
		store:  st,
		logger: logger,
		values: values,
	}, nil
}

// Get returns the in-memory value for a key.
func (p *Preferences) Get(key string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.values[key]
	return v, ok
}

// Set updates a preference and writes it through to the store. On a
// store failure the in-memory value is kept as the best-effort truth for
// the rest of the session and the error is returned so the caller can
// offer a retry.
func (p *Preferences) Set(ctx context.Context, key, value string) error {
	p.mu.Lock()
	p.values[key] = value
	subs := make([]func(string, string), len(p.subs))
	copy(subs, p.subs)
	p.mu.Unlock()

	for _, fn := range subs {
		fn(key, value)
	}

	if err := p.store.SetPreference(ctx, key, value); err != nil {
		p.logger.Error("failed to persist preference", "key", key, "error", err)
		return err
	}
	return nil
}

// Subscribe registers a callback invoked after every change. Callbacks
// run outside the preferences lock.
func (p *Preferences) Subscribe(fn func(key, value string)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subs = append(p.subs, fn)
}

// All returns a copy of every preference.
func (p *Preferences) All() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]string, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// SelectedCourseID returns the chosen course, if any.
func (p *Preferences) SelectedCourseID() (int, bool) {
	v, ok := p.Get(KeySelectedCourseID)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return id, true
}

// SetSelectedCourse stores the course choice and its display name.
func (p *Preferences) SetSelectedCourse(ctx context.Context, courseID int) error {
	if err := p.Set(ctx, KeySelectedCourseID, strconv.Itoa(courseID)); err != nil {
		return err
	}
	return p.Set(ctx, KeySelectedCourseName, content.CourseName(courseID))
}

package league

import (
	"context"
	"fmt"
	"sync"
)

// ViewerPreferences are the display settings that outlive a single render:
// theme plus the two table/chart visibility toggles. Filter selections are
// intentionally absent; they are session state and reset on reload.
type ViewerPreferences struct {
	Theme           Theme `json:"theme"`
	ShowUnowned     bool  `json:"show_unowned"`
	ShowWeekHistory bool  `json:"show_week_history"`
}

// PreferenceStore persists viewer preferences across sessions.
type PreferenceStore interface {
	Preferences(ctx context.Context, viewerID string) (ViewerPreferences, error)
	SavePreferences(ctx context.Context, viewerID string, prefs ViewerPreferences) error
}

// InMemoryPreferenceStore provides a concurrency-safe default store.
type InMemoryPreferenceStore struct {
	mu   sync.RWMutex
	data map[string]ViewerPreferences
}

// NewInMemoryPreferenceStore creates an empty preference store.
func NewInMemoryPreferenceStore() *InMemoryPreferenceStore {
	return &InMemoryPreferenceStore{
		data: make(map[string]ViewerPreferences),
	}
}

// Preferences returns stored preferences or the defaults: dark theme,
// unowned movies hidden, week history collapsed.
func (s *InMemoryPreferenceStore) Preferences(_ context.Context, viewerID string) (ViewerPreferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if prefs, ok := s.data[viewerID]; ok {
		prefs.Theme = prefs.Theme.Normalize()
		return prefs, nil
	}
	return ViewerPreferences{Theme: DefaultTheme}, nil
}

// SavePreferences persists preferences for a viewer.
func (s *InMemoryPreferenceStore) SavePreferences(_ context.Context, viewerID string, prefs ViewerPreferences) error {
	if viewerID == "" {
		return fmt.Errorf("league: preference store requires a viewer id")
	}
	prefs.Theme = prefs.Theme.Normalize()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[viewerID] = prefs
	return nil
}

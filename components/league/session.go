package league

import (
	"sync"

	"github.com/google/uuid"
)

// Session holds one viewer's mutable dashboard state: the owner filter, the
// table's movie selection, and the display toggles. The rendered view is
// explicit session state rather than a free-floating module variable:
// exactly one live view exists per session, and it is always replaced
// whole, so no window exists where two views coexist.
type Session struct {
	ID     string
	owners *FilterState

	mu              sync.Mutex
	activeMovies    []string
	showUnowned     bool
	showWeekHistory bool
	theme           Theme
	view            *DashboardView
}

func newSession(id string) *Session {
	return &Session{ID: id, owners: NewFilterState(nil), theme: DefaultTheme}
}

// ToggleOwner flips an owner in the selection and returns the new set.
func (s *Session) ToggleOwner(owner string) []string {
	s.owners.Toggle(owner)
	return s.owners.Active()
}

// ClearOwners empties the owner selection.
func (s *Session) ClearOwners() {
	s.owners.Clear()
}

// SelectMovies replaces the movie selection wholesale; the table is the
// source of truth, so mutations arrive as the full selected-row id list.
func (s *Session) SelectMovies(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeMovies = append([]string(nil), ids...)
}

// ActiveOwners returns the current owner selection.
func (s *Session) ActiveOwners() []string {
	return s.owners.Active()
}

// ActiveMovies returns the current movie selection.
func (s *Session) ActiveMovies() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.activeMovies...)
}

// SetDisplay updates the two visibility toggles.
func (s *Session) SetDisplay(showUnowned, showWeekHistory bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showUnowned = showUnowned
	s.showWeekHistory = showWeekHistory
}

// Display returns the visibility toggles.
func (s *Session) Display() (showUnowned, showWeekHistory bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showUnowned, s.showWeekHistory
}

// SetTheme stores the viewer's theme preference.
func (s *Session) SetTheme(theme Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme.Normalize()
}

// Theme returns the viewer's theme preference.
func (s *Session) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// PublishView replaces the session's rendered view atomically. The old view
// is discarded in full before the new one is visible.
func (s *Session) PublishView(view *DashboardView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
}

// View returns the most recently published view, or nil before first render.
func (s *Session) View() *DashboardView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// SessionManager tracks live sessions by id.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionManager creates an empty manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*Session)}
}

// Ensure returns the session for id, creating it (with a fresh uuid when id
// is empty) if needed. State starts empty: no owner filter, no movie
// selection, unowned movies hidden.
func (m *SessionManager) Ensure(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id == "" {
		id = uuid.NewString()
	}
	if session, ok := m.sessions[id]; ok {
		return session
	}
	session := newSession(id)
	m.sessions[id] = session
	return session
}

// Get returns an existing session or nil.
func (m *SessionManager) Get(id string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// Drop removes a session.
func (m *SessionManager) Drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

package league

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	errMissingSource  = errors.New("league: snapshot source not configured")
	errNoSnapshot     = errors.New("league: no snapshot loaded")
	errUnknownSession = errors.New("league: unknown session")
)

// Options configures the league Service. Every collaborator is provided via
// interface so applications can swap implementations.
type Options struct {
	Source      SnapshotSource
	Commits     CommitSource
	Validator   SnapshotValidator
	Renderer    *ChartRenderer
	Preferences PreferenceStore
	RefreshHook RefreshHook
	Telemetry   Telemetry
	Clock       func() time.Time
}

// Service is the orchestrator: it owns the immutable snapshot, the session
// registry, and the rebuild-everything-per-mutation loop. Each mutation
// synchronously recomputes every dependent view inside the same call, so a
// published view is always consistent with the most recent state change.
type Service struct {
	opts     Options
	sessions *SessionManager

	stateMu   sync.RWMutex
	snapState *snapshotState
}

type snapshotState struct {
	snap             *Snapshot
	owners           []string
	colors           map[string]string
	latestGrossDate  string
	latestProfitDate string
	footerData       string
	footerSite       string
}

// NewService builds a Service instance with safe defaults.
func NewService(opts Options) *Service {
	if opts.Validator == nil {
		opts.Validator = NewJSONSchemaValidator()
	}
	if opts.Renderer == nil {
		opts.Renderer = NewChartRenderer()
	}
	if opts.Preferences == nil {
		opts.Preferences = NewInMemoryPreferenceStore()
	}
	if opts.RefreshHook == nil {
		opts.RefreshHook = noopRefreshHook{}
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	return &Service{
		opts:     opts,
		sessions: NewSessionManager(),
	}
}

// FooterView carries the two cosmetic footer lines. SiteUpdated stays empty
// when the metadata lookup fails.
type FooterView struct {
	DataUpdated string `json:"data_updated,omitempty"`
	SiteUpdated string `json:"site_updated,omitempty"`
}

// DashboardView is one complete render: every component derived from the
// same (snapshot, selection) pair.
type DashboardView struct {
	Heading     string             `json:"heading"`
	Theme       Theme              `json:"theme"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	Chart       ChartView          `json:"chart"`
	ChartHTML   string             `json:"chart_html"`
	Table       TableView          `json:"table"`
	Rows        []TableRow         `json:"rows"`
	OwnerFilter OwnerFilterView    `json:"owner_filter"`
	Footer      FooterView         `json:"footer"`
}

// LoadSnapshot fetches, validates, and publishes the snapshot. A failure
// here is fatal to initialization: nothing renders, the error carries the
// underlying message, and there is no retry or cached fallback.
func (s *Service) LoadSnapshot(ctx context.Context) error {
	if s.opts.Source == nil {
		return errMissingSource
	}
	snap, err := s.opts.Source.FetchSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("league: load snapshot: %w", err)
	}
	if err := s.opts.Validator.Validate(snap); err != nil {
		return err
	}

	owners := snap.SortedOwners()
	state := &snapshotState{
		snap:             snap,
		owners:           owners,
		colors:           BuildColorMap(owners),
		latestGrossDate:  snap.LatestGrossDate(),
		latestProfitDate: snap.LatestProfitDate(),
	}
	if snap.FetchedAt != "" {
		state.footerData = "data updated " + FormatTimestamp(snap.FetchedAt)
	}
	state.footerSite = s.lookupSiteUpdated(ctx)

	s.stateMu.Lock()
	s.snapState = state
	s.stateMu.Unlock()

	if cache, ok := s.opts.Renderer.cache.(*ChartCache); ok {
		cache.Purge()
	}
	s.opts.Telemetry.Record(ctx, "league.snapshot.load", map[string]any{
		"movies": len(snap.Movies),
		"owners": len(snap.Owners),
	})
	return nil
}

// lookupSiteUpdated performs the best-effort commit metadata lookup. Any
// failure or empty result leaves the footer line blank.
func (s *Service) lookupSiteUpdated(ctx context.Context) string {
	if s.opts.Commits == nil {
		return ""
	}
	info, err := s.opts.Commits.LatestCommit(ctx)
	if err != nil || info.CommittedAt.IsZero() {
		return ""
	}
	return "site updated " + FormatTime(info.CommittedAt)
}

// Refresh re-fetches the snapshot and tells open pages to re-pull.
func (s *Service) Refresh(ctx context.Context) error {
	if err := s.LoadSnapshot(ctx); err != nil {
		return err
	}
	return s.opts.RefreshHook.SelectionChanged(ctx, SelectionEvent{Reason: "snapshot"})
}

// Session returns (creating if needed) the session for the given id.
func (s *Service) Session(id string) *Session {
	return s.sessions.Ensure(id)
}

// ToggleOwner flips an owner in the session's filter, rebuilds every view,
// and broadcasts the change.
func (s *Service) ToggleOwner(ctx context.Context, sessionID, owner string) error {
	session := s.sessions.Get(sessionID)
	if session == nil {
		return errUnknownSession
	}
	active := session.ToggleOwner(owner)
	s.opts.Telemetry.Record(ctx, "league.filter.toggle_owner", map[string]any{
		"owner":  owner,
		"active": len(active),
	})
	return s.rebuild(ctx, session, "owners")
}

// ClearOwners empties the session's owner filter and rebuilds.
func (s *Service) ClearOwners(ctx context.Context, sessionID string) error {
	session := s.sessions.Get(sessionID)
	if session == nil {
		return errUnknownSession
	}
	session.ClearOwners()
	s.opts.Telemetry.Record(ctx, "league.filter.clear_owners", nil)
	return s.rebuild(ctx, session, "owners")
}

// SelectMovies replaces the session's table selection and rebuilds. A
// non-empty selection forces the chart into movie mode regardless of any
// concurrently active owner filter; both selections persist independently.
func (s *Service) SelectMovies(ctx context.Context, sessionID string, ids []string) error {
	session := s.sessions.Get(sessionID)
	if session == nil {
		return errUnknownSession
	}
	session.SelectMovies(ids)
	s.opts.Telemetry.Record(ctx, "league.filter.select_movies", map[string]any{
		"count": len(ids),
	})
	return s.rebuild(ctx, session, "movies")
}

// SetTheme stores the viewer's theme and rebuilds so the chart re-renders
// in the matching palette.
func (s *Service) SetTheme(ctx context.Context, sessionID string, theme Theme) error {
	session := s.sessions.Get(sessionID)
	if session == nil {
		return errUnknownSession
	}
	session.SetTheme(theme)
	s.savePreferences(ctx, session)
	return s.rebuild(ctx, session, "theme")
}

// SetDisplay stores the show-unowned / show-week-history toggles.
func (s *Service) SetDisplay(ctx context.Context, sessionID string, showUnowned, showWeekHistory bool) error {
	session := s.sessions.Get(sessionID)
	if session == nil {
		return errUnknownSession
	}
	session.SetDisplay(showUnowned, showWeekHistory)
	s.savePreferences(ctx, session)
	return s.rebuild(ctx, session, "display")
}

func (s *Service) savePreferences(ctx context.Context, session *Session) {
	showUnowned, showWeekHistory := session.Display()
	err := s.opts.Preferences.SavePreferences(ctx, session.ID, ViewerPreferences{
		Theme:           session.Theme(),
		ShowUnowned:     showUnowned,
		ShowWeekHistory: showWeekHistory,
	})
	if err != nil {
		s.opts.Telemetry.Record(ctx, "league.preferences.error", map[string]any{
			"error": err.Error(),
		})
	}
}

// Dashboard returns the session's current view, building it on first use.
func (s *Service) Dashboard(ctx context.Context, sessionID string) (*DashboardView, error) {
	session := s.sessions.Ensure(sessionID)
	if view := session.View(); view != nil {
		return view, nil
	}
	s.restorePreferences(ctx, session)
	if err := s.rebuild(ctx, session, ""); err != nil {
		return nil, err
	}
	return session.View(), nil
}

func (s *Service) restorePreferences(ctx context.Context, session *Session) {
	prefs, err := s.opts.Preferences.Preferences(ctx, session.ID)
	if err != nil {
		return
	}
	session.SetTheme(prefs.Theme)
	session.SetDisplay(prefs.ShowUnowned, prefs.ShowWeekHistory)
}

// rebuild recomputes every dependent view from scratch and publishes the
// result atomically, then broadcasts when the rebuild was caused by a
// mutation. No incremental diffing: the snapshot is small and a full pass
// keeps every component trivially consistent.
func (s *Service) rebuild(ctx context.Context, session *Session, reason string) error {
	s.stateMu.RLock()
	state := s.snapState
	s.stateMu.RUnlock()
	if state == nil {
		return errNoSnapshot
	}

	activeOwners := session.ActiveOwners()
	activeMovies := session.ActiveMovies()
	showUnowned, showWeekHistory := session.Display()
	theme := session.Theme()

	chart := BuildChartView(state.snap, state.owners, state.colors, activeOwners, activeMovies)
	chartHTML, err := s.opts.Renderer.Render(chart, theme)
	if err != nil {
		return fmt.Errorf("league: render chart: %w", err)
	}

	table := BuildTableView(state.snap, state.colors, state.latestGrossDate)
	view := &DashboardView{
		Heading:     chart.Heading,
		Theme:       theme,
		Leaderboard: BuildLeaderboard(state.snap, state.owners, state.colors, state.latestProfitDate, activeOwners),
		Chart:       chart,
		ChartHTML:   chartHTML,
		Table:       table,
		Rows:        FilterRows(table.Rows, activeOwners, showUnowned),
		OwnerFilter: BuildOwnerFilterView(state.owners, state.colors, activeOwners, showUnowned, showWeekHistory, table.HasWeekHistory()),
		Footer: FooterView{
			DataUpdated: state.footerData,
			SiteUpdated: state.footerSite,
		},
	}
	session.PublishView(view)

	if reason == "" {
		return nil
	}
	return s.opts.RefreshHook.SelectionChanged(ctx, SelectionEvent{
		SessionID:    session.ID,
		Reason:       reason,
		ActiveOwners: activeOwners,
		ActiveMovies: activeMovies,
	})
}

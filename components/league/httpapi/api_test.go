package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	league "github.com/movieboyz/league-dashboard/components/league"
	"github.com/movieboyz/league-dashboard/components/league/commands"
	"github.com/movieboyz/league-dashboard/components/league/queries"
)

type stubCommander[T any] struct {
	last  T
	calls int
	err   error
}

func (s *stubCommander[T]) Execute(ctx context.Context, msg T) error {
	s.last = msg
	s.calls++
	return s.err
}

type stubDashboardQuerier struct {
	view  *league.DashboardView
	calls int
}

func (s *stubDashboardQuerier) Query(context.Context, queries.DashboardInput) (*league.DashboardView, error) {
	s.calls++
	return s.view, nil
}

func TestHandleDashboard(t *testing.T) {
	query := &stubDashboardQuerier{view: &league.DashboardView{Heading: "Profit Over Time"}}
	api := &Handlers{Dashboard: query}
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	rec := httptest.NewRecorder()
	api.HandleDashboard(rec, req, "s1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if payload["heading"] != "Profit Over Time" {
		t.Fatalf("expected heading in payload, got %v", payload["heading"])
	}
}

func TestHandleToggleOwner(t *testing.T) {
	toggle := &stubCommander[commands.ToggleOwnerInput]{}
	api := &Handlers{ToggleOwner: toggle}
	buf, _ := json.Marshal(commands.ToggleOwnerInput{Owner: "Alice"})
	req := httptest.NewRequest(http.MethodPost, "/api/filters/owners/toggle", bytes.NewReader(buf))
	rec := httptest.NewRecorder()
	api.HandleToggleOwner(rec, req, "s1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if toggle.last.SessionID != "s1" || toggle.last.Owner != "Alice" {
		t.Fatalf("expected session and owner propagation, got %+v", toggle.last)
	}
}

func TestHandleClearOwners(t *testing.T) {
	clear := &stubCommander[commands.ClearOwnersInput]{}
	api := &Handlers{ClearOwners: clear}
	req := httptest.NewRequest(http.MethodPost, "/api/filters/owners/clear", nil)
	rec := httptest.NewRecorder()
	api.HandleClearOwners(rec, req, "s1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if clear.last.SessionID != "s1" {
		t.Fatalf("expected session propagation")
	}
}

func TestHandleSelectMovies(t *testing.T) {
	sel := &stubCommander[commands.SelectMoviesInput]{}
	api := &Handlers{SelectMovies: sel}
	buf, _ := json.Marshal(commands.SelectMoviesInput{MovieIDs: []string{"m1", "m2", "m3"}})
	req := httptest.NewRequest(http.MethodPost, "/api/filters/movies", bytes.NewReader(buf))
	rec := httptest.NewRecorder()
	api.HandleSelectMovies(rec, req, "s1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(sel.last.MovieIDs) != 3 {
		t.Fatalf("expected 3 movie ids, got %d", len(sel.last.MovieIDs))
	}
}

func TestHandleSetThemeRejectsBadJSON(t *testing.T) {
	api := &Handlers{SetTheme: &stubCommander[commands.SetThemeInput]{}}
	req := httptest.NewRequest(http.MethodPost, "/api/theme", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	api.HandleSetTheme(rec, req, "s1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleRefresh(t *testing.T) {
	refresh := &stubCommander[commands.RefreshInput]{}
	api := &Handlers{Refresh: refresh}
	req := httptest.NewRequest(http.MethodPost, "/api/refresh", nil)
	rec := httptest.NewRecorder()
	api.HandleRefresh(rec, req)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if refresh.calls != 1 {
		t.Fatalf("expected refresh to execute")
	}
}

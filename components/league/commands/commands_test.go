package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/movieboyz/league-dashboard/components/league"
)

type stubService struct {
	toggleCalls  int
	clearCalls   int
	selectCalls  int
	themeCalls   int
	displayCalls int
	refreshCalls int

	lastOwner  string
	lastMovies []string
	lastTheme  league.Theme
	err        error
}

func (s *stubService) ToggleOwner(ctx context.Context, sessionID, owner string) error {
	s.toggleCalls++
	s.lastOwner = owner
	return s.err
}

func (s *stubService) ClearOwners(ctx context.Context, sessionID string) error {
	s.clearCalls++
	return s.err
}

func (s *stubService) SelectMovies(ctx context.Context, sessionID string, ids []string) error {
	s.selectCalls++
	s.lastMovies = ids
	return s.err
}

func (s *stubService) SetTheme(ctx context.Context, sessionID string, theme league.Theme) error {
	s.themeCalls++
	s.lastTheme = theme
	return s.err
}

func (s *stubService) SetDisplay(ctx context.Context, sessionID string, showUnowned, showWeekHistory bool) error {
	s.displayCalls++
	return s.err
}

func (s *stubService) Refresh(ctx context.Context) error {
	s.refreshCalls++
	return s.err
}

type stubTelemetry struct {
	calls  int
	events []string
}

func (s *stubTelemetry) Record(_ context.Context, event string, _ map[string]any) {
	s.calls++
	s.events = append(s.events, event)
}

func TestToggleOwnerCommand(t *testing.T) {
	service := &stubService{}
	telemetry := &stubTelemetry{}
	cmd := NewToggleOwnerCommand(service, telemetry)
	if err := cmd.Execute(context.Background(), ToggleOwnerInput{SessionID: "s1", Owner: "Alice"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.toggleCalls != 1 || service.lastOwner != "Alice" {
		t.Fatalf("expected toggle call for Alice, got %d %q", service.toggleCalls, service.lastOwner)
	}
	if telemetry.calls != 1 {
		t.Fatalf("expected telemetry event")
	}
}

func TestToggleOwnerCommandRequiresInput(t *testing.T) {
	cmd := NewToggleOwnerCommand(&stubService{}, nil)
	if err := cmd.Execute(context.Background(), ToggleOwnerInput{Owner: "Alice"}); err == nil {
		t.Fatalf("expected error for missing session id")
	}
	if err := cmd.Execute(context.Background(), ToggleOwnerInput{SessionID: "s1"}); err == nil {
		t.Fatalf("expected error for missing owner")
	}
}

func TestClearOwnersCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewClearOwnersCommand(service, nil)
	if err := cmd.Execute(context.Background(), ClearOwnersInput{SessionID: "s1"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.clearCalls != 1 {
		t.Fatalf("expected clear call")
	}
}

func TestSelectMoviesCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewSelectMoviesCommand(service, nil)
	if err := cmd.Execute(context.Background(), SelectMoviesInput{
		SessionID: "s1",
		MovieIDs:  []string{"m1", "m2"},
	}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.selectCalls != 1 || len(service.lastMovies) != 2 {
		t.Fatalf("expected selection of 2 movies")
	}
}

func TestSelectMoviesCommandAllowsEmptySelection(t *testing.T) {
	service := &stubService{}
	cmd := NewSelectMoviesCommand(service, nil)
	if err := cmd.Execute(context.Background(), SelectMoviesInput{SessionID: "s1"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.selectCalls != 1 {
		t.Fatalf("expected select call clearing the selection")
	}
}

func TestSetThemeCommandNormalizes(t *testing.T) {
	service := &stubService{}
	cmd := NewSetThemeCommand(service, nil)
	if err := cmd.Execute(context.Background(), SetThemeInput{SessionID: "s1", Theme: "neon"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.lastTheme != league.ThemeDark {
		t.Fatalf("expected unknown theme to normalize to dark, got %q", service.lastTheme)
	}
	if err := cmd.Execute(context.Background(), SetThemeInput{SessionID: "s1", Theme: "light"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.lastTheme != league.ThemeLight {
		t.Fatalf("expected light theme, got %q", service.lastTheme)
	}
}

func TestSetDisplayCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewSetDisplayCommand(service, nil)
	if err := cmd.Execute(context.Background(), SetDisplayInput{
		SessionID:   "s1",
		ShowUnowned: true,
	}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.displayCalls != 1 {
		t.Fatalf("expected display call")
	}
}

func TestRefreshCommand(t *testing.T) {
	service := &stubService{}
	telemetry := &stubTelemetry{}
	cmd := NewRefreshCommand(service, telemetry)
	if err := cmd.Execute(context.Background(), RefreshInput{}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.refreshCalls != 1 {
		t.Fatalf("expected refresh call")
	}
	if telemetry.calls != 1 {
		t.Fatalf("expected telemetry event")
	}
}

func TestRefreshCommandPropagatesError(t *testing.T) {
	service := &stubService{err: errors.New("upstream down")}
	telemetry := &stubTelemetry{}
	cmd := NewRefreshCommand(service, telemetry)
	if err := cmd.Execute(context.Background(), RefreshInput{}); err == nil {
		t.Fatalf("expected error")
	}
	if telemetry.calls != 1 || telemetry.events[0] != "league.command.refresh.error" {
		t.Fatalf("expected error telemetry, got %v", telemetry.events)
	}
}

package httpapi

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	league "github.com/movieboyz/league-dashboard/components/league"
	"github.com/movieboyz/league-dashboard/components/league/commands"
	"github.com/movieboyz/league-dashboard/components/league/queries"
)

// Executor is the surface route adapters use to run dashboard
// commands without depending on concrete command types.
type Executor interface {
	ToggleOwner(ctx context.Context, input commands.ToggleOwnerInput) error
	ClearOwners(ctx context.Context, input commands.ClearOwnersInput) error
	SelectMovies(ctx context.Context, input commands.SelectMoviesInput) error
	SetTheme(ctx context.Context, input commands.SetThemeInput) error
	SetDisplay(ctx context.Context, input commands.SetDisplayInput) error
	Refresh(ctx context.Context) error
	Dashboard(ctx context.Context, input queries.DashboardInput) (*league.DashboardView, error)
}

// CommandExecutor implements Executor over go-command wrappers.
type CommandExecutor struct {
	ToggleOwnerCommander  gocommand.Commander[commands.ToggleOwnerInput]
	ClearOwnersCommander  gocommand.Commander[commands.ClearOwnersInput]
	SelectMoviesCommander gocommand.Commander[commands.SelectMoviesInput]
	SetThemeCommander     gocommand.Commander[commands.SetThemeInput]
	SetDisplayCommander   gocommand.Commander[commands.SetDisplayInput]
	RefreshCommander      gocommand.Commander[commands.RefreshInput]
	DashboardQuerier      gocommand.Querier[queries.DashboardInput, *league.DashboardView]
}

var _ Executor = (*CommandExecutor)(nil)

func (e *CommandExecutor) ToggleOwner(ctx context.Context, input commands.ToggleOwnerInput) error {
	if e.ToggleOwnerCommander == nil {
		return errors.New("httpapi: toggle owner commander not configured")
	}
	return e.ToggleOwnerCommander.Execute(ctx, input)
}

func (e *CommandExecutor) ClearOwners(ctx context.Context, input commands.ClearOwnersInput) error {
	if e.ClearOwnersCommander == nil {
		return errors.New("httpapi: clear owners commander not configured")
	}
	return e.ClearOwnersCommander.Execute(ctx, input)
}

func (e *CommandExecutor) SelectMovies(ctx context.Context, input commands.SelectMoviesInput) error {
	if e.SelectMoviesCommander == nil {
		return errors.New("httpapi: select movies commander not configured")
	}
	return e.SelectMoviesCommander.Execute(ctx, input)
}

func (e *CommandExecutor) SetTheme(ctx context.Context, input commands.SetThemeInput) error {
	if e.SetThemeCommander == nil {
		return errors.New("httpapi: set theme commander not configured")
	}
	return e.SetThemeCommander.Execute(ctx, input)
}

func (e *CommandExecutor) SetDisplay(ctx context.Context, input commands.SetDisplayInput) error {
	if e.SetDisplayCommander == nil {
		return errors.New("httpapi: set display commander not configured")
	}
	return e.SetDisplayCommander.Execute(ctx, input)
}

func (e *CommandExecutor) Refresh(ctx context.Context) error {
	if e.RefreshCommander == nil {
		return errors.New("httpapi: refresh commander not configured")
	}
	return e.RefreshCommander.Execute(ctx, commands.RefreshInput{})
}

func (e *CommandExecutor) Dashboard(ctx context.Context, input queries.DashboardInput) (*league.DashboardView, error) {
	if e.DashboardQuerier == nil {
		return nil, errors.New("httpapi: dashboard querier not configured")
	}
	return e.DashboardQuerier.Query(ctx, input)
}

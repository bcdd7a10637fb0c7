package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// SelectMoviesInput replaces a session's movie selection. An empty
// list clears the selection and drops the chart back to owner mode.
type SelectMoviesInput struct {
	SessionID string   `json:"session_id"`
	MovieIDs  []string `json:"movie_ids"`
}

type movieSelectionService interface {
	SelectMovies(ctx context.Context, sessionID string, ids []string) error
}

// SelectMoviesCommand wraps Service.SelectMovies.
type SelectMoviesCommand struct {
	service   movieSelectionService
	telemetry Telemetry
}

// NewSelectMoviesCommand creates the command.
func NewSelectMoviesCommand(service movieSelectionService, telemetry Telemetry) *SelectMoviesCommand {
	return &SelectMoviesCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SelectMoviesInput] = (*SelectMoviesCommand)(nil)

// Execute applies the movie selection.
func (c *SelectMoviesCommand) Execute(ctx context.Context, msg SelectMoviesInput) error {
	if c.service == nil {
		return errors.New("select movies command requires service")
	}
	if msg.SessionID == "" {
		return errors.New("select movies command requires session id")
	}
	if err := c.service.SelectMovies(ctx, msg.SessionID, msg.MovieIDs); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "league.command.select_movies", map[string]any{
		"count": len(msg.MovieIDs),
	})
	return nil
}

package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	"github.com/movieboyz/league-dashboard/components/league"
)

// SetThemeInput switches a session between the dark and light themes.
type SetThemeInput struct {
	SessionID string `json:"session_id"`
	Theme     string `json:"theme"`
}

type themeService interface {
	SetTheme(ctx context.Context, sessionID string, theme league.Theme) error
}

// SetThemeCommand wraps Service.SetTheme.
type SetThemeCommand struct {
	service   themeService
	telemetry Telemetry
}

// NewSetThemeCommand creates the command.
func NewSetThemeCommand(service themeService, telemetry Telemetry) *SetThemeCommand {
	return &SetThemeCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SetThemeInput] = (*SetThemeCommand)(nil)

// Execute normalizes the theme name and applies it.
func (c *SetThemeCommand) Execute(ctx context.Context, msg SetThemeInput) error {
	if c.service == nil {
		return errors.New("set theme command requires service")
	}
	if msg.SessionID == "" {
		return errors.New("set theme command requires session id")
	}
	theme := league.Theme(msg.Theme).Normalize()
	if err := c.service.SetTheme(ctx, msg.SessionID, theme); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "league.command.set_theme", map[string]any{
		"theme": string(theme),
	})
	return nil
}

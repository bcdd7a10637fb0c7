package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// SetDisplayInput toggles the unowned-row and week-history visibility
// flags for a session.
type SetDisplayInput struct {
	SessionID       string `json:"session_id"`
	ShowUnowned     bool   `json:"show_unowned"`
	ShowWeekHistory bool   `json:"show_week_history"`
}

type displayService interface {
	SetDisplay(ctx context.Context, sessionID string, showUnowned, showWeekHistory bool) error
}

// SetDisplayCommand wraps Service.SetDisplay.
type SetDisplayCommand struct {
	service   displayService
	telemetry Telemetry
}

// NewSetDisplayCommand creates the command.
func NewSetDisplayCommand(service displayService, telemetry Telemetry) *SetDisplayCommand {
	return &SetDisplayCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SetDisplayInput] = (*SetDisplayCommand)(nil)

// Execute applies the display flags.
func (c *SetDisplayCommand) Execute(ctx context.Context, msg SetDisplayInput) error {
	if c.service == nil {
		return errors.New("set display command requires service")
	}
	if msg.SessionID == "" {
		return errors.New("set display command requires session id")
	}
	if err := c.service.SetDisplay(ctx, msg.SessionID, msg.ShowUnowned, msg.ShowWeekHistory); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "league.command.set_display", map[string]any{
		"show_unowned":      msg.ShowUnowned,
		"show_week_history": msg.ShowWeekHistory,
	})
	return nil
}

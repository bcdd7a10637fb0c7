package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// ClearOwnersInput empties a session's owner filter.
type ClearOwnersInput struct {
	SessionID string `json:"session_id"`
}

// ClearOwnersCommand wraps Service.ClearOwners.
type ClearOwnersCommand struct {
	service   ownerFilterService
	telemetry Telemetry
}

// NewClearOwnersCommand creates the command.
func NewClearOwnersCommand(service ownerFilterService, telemetry Telemetry) *ClearOwnersCommand {
	return &ClearOwnersCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ClearOwnersInput] = (*ClearOwnersCommand)(nil)

// Execute clears the owner selection.
func (c *ClearOwnersCommand) Execute(ctx context.Context, msg ClearOwnersInput) error {
	if c.service == nil {
		return errors.New("clear owners command requires service")
	}
	if msg.SessionID == "" {
		return errors.New("clear owners command requires session id")
	}
	if err := c.service.ClearOwners(ctx, msg.SessionID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "league.command.clear_owners", nil)
	return nil
}

package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// ToggleOwnerInput flips one owner in a session's filter selection.
type ToggleOwnerInput struct {
	SessionID string `json:"session_id"`
	Owner     string `json:"owner"`
}

type ownerFilterService interface {
	ToggleOwner(ctx context.Context, sessionID, owner string) error
	ClearOwners(ctx context.Context, sessionID string) error
}

// ToggleOwnerCommand wraps Service.ToggleOwner.
type ToggleOwnerCommand struct {
	service   ownerFilterService
	telemetry Telemetry
}

// NewToggleOwnerCommand creates the command.
func NewToggleOwnerCommand(service ownerFilterService, telemetry Telemetry) *ToggleOwnerCommand {
	return &ToggleOwnerCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ToggleOwnerInput] = (*ToggleOwnerCommand)(nil)

// Execute toggles the owner and lets the service rebuild dependent views.
func (c *ToggleOwnerCommand) Execute(ctx context.Context, msg ToggleOwnerInput) error {
	if c.service == nil {
		return errors.New("toggle owner command requires service")
	}
	if msg.SessionID == "" {
		return errors.New("toggle owner command requires session id")
	}
	if msg.Owner == "" {
		return errors.New("toggle owner command requires owner")
	}
	if err := c.service.ToggleOwner(ctx, msg.SessionID, msg.Owner); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "league.command.toggle_owner", map[string]any{
		"owner": msg.Owner,
	})
	return nil
}

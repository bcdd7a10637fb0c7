package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// RefreshInput asks the service to pull a fresh snapshot from the
// upstream source.
type RefreshInput struct{}

type refreshService interface {
	Refresh(ctx context.Context) error
}

// RefreshCommand wraps Service.Refresh.
type RefreshCommand struct {
	service   refreshService
	telemetry Telemetry
}

// NewRefreshCommand creates the command.
func NewRefreshCommand(service refreshService, telemetry Telemetry) *RefreshCommand {
	return &RefreshCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[RefreshInput] = (*RefreshCommand)(nil)

// Execute reloads the snapshot and records the outcome.
func (c *RefreshCommand) Execute(ctx context.Context, msg RefreshInput) error {
	if c.service == nil {
		return errors.New("refresh command requires service")
	}
	if err := c.service.Refresh(ctx); err != nil {
		c.telemetry.Record(ctx, "league.command.refresh.error", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	c.telemetry.Record(ctx, "league.command.refresh", nil)
	return nil
}

package league

import (
	"context"
	"errors"
	"io"
)

// Renderer covers the slice of the template engine the controller needs.
// The embedded go-template renderer satisfies it.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
}

// Controller exposes the render surface used by HTTP transports: the full
// HTML page and the JSON payload open pages re-pull after events.
type Controller struct {
	service  *Service
	renderer Renderer
}

// ControllerOptions wires the controller's collaborators.
type ControllerOptions struct {
	Service  *Service
	Renderer Renderer
}

// NewController wires the service and template renderer into a controller.
func NewController(opts ControllerOptions) *Controller {
	return &Controller{service: opts.Service, renderer: opts.Renderer}
}

// RenderPage writes the dashboard HTML page for the session.
func (c *Controller) RenderPage(ctx context.Context, sessionID string, out io.Writer) error {
	if c.service == nil {
		return errors.New("league: controller requires a service")
	}
	if c.renderer == nil {
		return errors.New("league: controller requires a renderer")
	}
	view, err := c.service.Dashboard(ctx, sessionID)
	if err != nil {
		return err
	}
	_, err = c.renderer.Render("dashboard", pageData(sessionID, view), out)
	return err
}

// Payload resolves the JSON dashboard payload for the session.
func (c *Controller) Payload(ctx context.Context, sessionID string) (*DashboardView, error) {
	if c.service == nil {
		return nil, errors.New("league: controller requires a service")
	}
	return c.service.Dashboard(ctx, sessionID)
}

func pageData(sessionID string, view *DashboardView) map[string]any {
	return map[string]any{
		"session_id": sessionID,
		"view":       view,
	}
}

package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"

	league "github.com/movieboyz/league-dashboard/components/league"
)

// DashboardInput identifies the session requesting a view.
type DashboardInput struct {
	SessionID string
}

type dashboardService interface {
	Dashboard(ctx context.Context, sessionID string) (*league.DashboardView, error)
}

// DashboardQuery executes read-only dashboard resolution.
type DashboardQuery struct {
	service dashboardService
}

// NewDashboardQuery builds the query.
func NewDashboardQuery(service dashboardService) *DashboardQuery {
	return &DashboardQuery{service: service}
}

var _ gocommand.Querier[DashboardInput, *league.DashboardView] = (*DashboardQuery)(nil)

// Query resolves the full dashboard view for the session.
func (q *DashboardQuery) Query(ctx context.Context, input DashboardInput) (*league.DashboardView, error) {
	return q.service.Dashboard(ctx, input.SessionID)
}

package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"

	league "github.com/movieboyz/league-dashboard/components/league"
)

// LeaderboardInput identifies the session requesting standings.
type LeaderboardInput struct {
	SessionID string
}

// LeaderboardQuery fetches just the ranked standings for a session.
type LeaderboardQuery struct {
	service dashboardService
}

// NewLeaderboardQuery builds the query.
func NewLeaderboardQuery(service dashboardService) *LeaderboardQuery {
	return &LeaderboardQuery{service: service}
}

var _ gocommand.Querier[LeaderboardInput, []league.LeaderboardEntry] = (*LeaderboardQuery)(nil)

// Query resolves the session view and returns its leaderboard.
func (q *LeaderboardQuery) Query(ctx context.Context, input LeaderboardInput) ([]league.LeaderboardEntry, error) {
	view, err := q.service.Dashboard(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	return view.Leaderboard, nil
}

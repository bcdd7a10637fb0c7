package league

import (
	"context"
	"sort"
	"time"
)

// UnownedSentinel marks movies that no league member has picked. Snapshots
// emitted before the sentinel existed leave the owner field empty; both
// spellings mean the same thing.
const UnownedSentinel = "none"

// UnreleasedSentinel appears in release_date for movies without a confirmed
// opening date.
const UnreleasedSentinel = "TBA"

// Snapshot is the full league dataset, fetched once and held immutable for
// the session. Every derived structure is recomputed from it on demand.
type Snapshot struct {
	Movies    map[string]Movie       `json:"movies"`
	Owners    map[string]OwnerTotals `json:"owners"`
	FetchedAt string                 `json:"fetched_at"`
}

// Movie is one draft pick. DailyGross maps YYYY-MM-DD date keys to the
// cumulative gross reported on that date; the series is sparse, reporting
// can skip days.
type Movie struct {
	Title       string             `json:"movie_title"`
	Owner       string             `json:"owner"`
	PickType    string             `json:"pick_type"`
	ReleaseDate string             `json:"release_date"`
	Budget      float64            `json:"budget"`
	DailyGross  map[string]float64 `json:"daily_gross,omitempty"`
}

// OwnerTotals carries an owner's cumulative profit across all their picks,
// keyed by YYYY-MM-DD date. Keys are sparse and unordered.
type OwnerTotals struct {
	Total map[string]float64 `json:"total,omitempty"`
}

// Unowned reports whether the movie has no league owner.
func (m Movie) Unowned() bool {
	return m.Owner == "" || m.Owner == UnownedSentinel
}

// Released reports whether the movie has opened on or before the reference
// date. Movies with a TBA or empty release date are never released.
func (m Movie) Released(referenceDate string) bool {
	if m.ReleaseDate == "" || m.ReleaseDate == UnreleasedSentinel || referenceDate == "" {
		return false
	}
	return m.ReleaseDate <= referenceDate
}

// ProfitSeries derives the movie's profit on each recorded date. Breakeven
// is twice the production budget, the league's convention.
func (m Movie) ProfitSeries() map[string]float64 {
	if len(m.DailyGross) == 0 {
		return nil
	}
	profit := make(map[string]float64, len(m.DailyGross))
	for date, gross := range m.DailyGross {
		profit[date] = gross - 2*m.Budget
	}
	return profit
}

// SortedOwners returns owner names in lexicographic order, the canonical
// ordering used for color assignment and tie-breaking.
func (s *Snapshot) SortedOwners() []string {
	if s == nil {
		return nil
	}
	owners := make([]string, 0, len(s.Owners))
	for name := range s.Owners {
		owners = append(owners, name)
	}
	sort.Strings(owners)
	return owners
}

// LatestGrossDate returns the most recent date with reported gross data
// across every movie. Empty when no movie has opened yet.
func (s *Snapshot) LatestGrossDate() string {
	if s == nil {
		return ""
	}
	latest := ""
	for _, movie := range s.Movies {
		for date := range movie.DailyGross {
			if date > latest {
				latest = date
			}
		}
	}
	return latest
}

// LatestProfitDate returns the most recent date present in any owner's
// cumulative totals. Empty when no totals exist.
func (s *Snapshot) LatestProfitDate() string {
	if s == nil {
		return ""
	}
	latest := ""
	for _, totals := range s.Owners {
		for date := range totals.Total {
			if date > latest {
				latest = date
			}
		}
	}
	return latest
}

// SnapshotSource supplies the league snapshot. A fetch either succeeds with
// a parsed snapshot or fails; there is no retry or partial result.
type SnapshotSource interface {
	FetchSnapshot(ctx context.Context) (*Snapshot, error)
}

// CommitInfo carries the committer timestamp of the latest site commit,
// used only for the cosmetic footer line.
type CommitInfo struct {
	CommittedAt time.Time
}

// CommitSource performs the best-effort metadata lookup. Failures are
// swallowed by callers.
type CommitSource interface {
	LatestCommit(ctx context.Context) (CommitInfo, error)
}

// SnapshotValidator checks the structural shape of an inbound snapshot
// before it is published to views.
type SnapshotValidator interface {
	Validate(snap *Snapshot) error
}

// RefreshHook notifies transports (WebSocket/SSE) that a session's
// selection or the underlying snapshot changed.
type RefreshHook interface {
	SelectionChanged(ctx context.Context, event SelectionEvent) error
}

// SelectionEvent describes a state change open pages might care about.
type SelectionEvent struct {
	SessionID    string   `json:"session_id,omitempty"`
	Reason       string   `json:"reason"`
	ActiveOwners []string `json:"active_owners,omitempty"`
	ActiveMovies []string `json:"active_movies,omitempty"`
}

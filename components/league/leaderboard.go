package league

import (
	"sort"
	"strconv"
)

var medals = []string{"🥇", "🥈", "🥉"}

// LeaderboardEntry is one rendered card. Profit is nil when the owner has
// no recorded total for the reference date; such owners sort last.
type LeaderboardEntry struct {
	Owner  string   `json:"owner"`
	Profit *float64 `json:"profit"`
	Rank   string   `json:"rank"`
	Color  string   `json:"color"`
	Active bool     `json:"active"`
	Trend  string   `json:"trend"`
}

// ProfitLabel renders the entry's profit, placeholder when absent.
func (e LeaderboardEntry) ProfitLabel() string {
	return FormatMoneyPtr(e.Profit)
}

// BuildLeaderboard ranks owners by their cumulative profit on the reference
// date. The sort is stable and descending; owners missing that exact date
// key sort strictly last, preserving the caller's (alphabetical) order
// among ties and among all-missing entries. The builder attaches no
// behavior; clicks are the orchestrator's concern.
func BuildLeaderboard(snap *Snapshot, owners []string, colors map[string]string, referenceDate string, activeOwners []string) []LeaderboardEntry {
	activeSet := make(map[string]struct{}, len(activeOwners))
	for _, owner := range activeOwners {
		activeSet[owner] = struct{}{}
	}

	entries := make([]LeaderboardEntry, 0, len(owners))
	for _, owner := range owners {
		var profit *float64
		if referenceDate != "" {
			if totals, ok := snap.Owners[owner]; ok {
				if v, ok := totals.Total[referenceDate]; ok {
					value := v
					profit = &value
				}
			}
		}
		_, active := activeSet[owner]
		entries = append(entries, LeaderboardEntry{
			Owner:  owner,
			Profit: profit,
			Color:  colors[owner],
			Active: active,
			Trend:  Trend(profit),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Profit, entries[j].Profit
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return *a > *b
	})

	for i := range entries {
		if i < len(medals) {
			entries[i].Rank = medals[i]
		} else {
			entries[i].Rank = strconv.Itoa(i+1) + "."
		}
	}
	return entries
}

package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLeaderboardRanksByProfit(t *testing.T) {
	t.Parallel()
	snap := testSnapshot()
	owners := snap.SortedOwners()
	colors := BuildColorMap(owners)

	entries := BuildLeaderboard(snap, owners, colors, "2026-01-03", nil)
	require.Len(t, entries, 3)

	assert.Equal(t, "Alice", entries[0].Owner)
	assert.Equal(t, "🥇", entries[0].Rank)
	assert.Equal(t, "$1.2m", entries[0].ProfitLabel())
	assert.Equal(t, "pos", entries[0].Trend)

	assert.Equal(t, "Bob", entries[1].Owner)
	assert.Equal(t, "🥈", entries[1].Rank)
	assert.Equal(t, "-$2.5m", entries[1].ProfitLabel())
	assert.Equal(t, "neg", entries[1].Trend)

	assert.Equal(t, "Cara", entries[2].Owner)
	assert.Equal(t, "🥉", entries[2].Rank)
	assert.Nil(t, entries[2].Profit, "owners without totals sort last with no value")
	assert.Equal(t, Placeholder, entries[2].ProfitLabel())
	assert.Equal(t, "neu", entries[2].Trend)
}

func TestBuildLeaderboardExactDateLookup(t *testing.T) {
	t.Parallel()
	snap := testSnapshot()
	owners := snap.SortedOwners()
	colors := BuildColorMap(owners)

	// Bob has no entry on Jan 2, so only Alice gets a value; there is no
	// carry-forward on the leaderboard.
	entries := BuildLeaderboard(snap, owners, colors, "2026-01-02", nil)
	assert.Equal(t, "Alice", entries[0].Owner)
	assert.Equal(t, "$250", entries[0].ProfitLabel())
	assert.Nil(t, entries[1].Profit)
	assert.Nil(t, entries[2].Profit)
}

func TestBuildLeaderboardStableAmongMissing(t *testing.T) {
	t.Parallel()
	snap := &Snapshot{Owners: map[string]OwnerTotals{
		"Alice": {}, "Bob": {}, "Cara": {},
	}}
	owners := snap.SortedOwners()
	entries := BuildLeaderboard(snap, owners, BuildColorMap(owners), "2026-01-03", nil)
	require.Len(t, entries, 3)
	assert.Equal(t, "Alice", entries[0].Owner, "all-missing entries keep alphabetical order")
	assert.Equal(t, "Bob", entries[1].Owner)
	assert.Equal(t, "Cara", entries[2].Owner)
}

func TestBuildLeaderboardNumericRanks(t *testing.T) {
	t.Parallel()
	totals := map[string]OwnerTotals{}
	names := []string{"Ann", "Ben", "Cal", "Dee", "Eli"}
	for i, name := range names {
		totals[name] = OwnerTotals{Total: map[string]float64{"2026-01-03": float64(100 - i)}}
	}
	snap := &Snapshot{Owners: totals}
	owners := snap.SortedOwners()
	entries := BuildLeaderboard(snap, owners, BuildColorMap(owners), "2026-01-03", nil)
	require.Len(t, entries, 5)
	assert.Equal(t, "4.", entries[3].Rank)
	assert.Equal(t, "5.", entries[4].Rank)
}

func TestBuildLeaderboardMarksActiveOwners(t *testing.T) {
	t.Parallel()
	snap := testSnapshot()
	owners := snap.SortedOwners()
	entries := BuildLeaderboard(snap, owners, BuildColorMap(owners), "2026-01-03", []string{"Bob"})
	for _, entry := range entries {
		assert.Equal(t, entry.Owner == "Bob", entry.Active)
	}
}

package league

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestTable(t *testing.T) TableView {
	t.Helper()
	snap := testSnapshot()
	owners := snap.SortedOwners()
	return BuildTableView(snap, BuildColorMap(owners), snap.LatestGrossDate())
}

func rowByID(t *testing.T, view TableView, id string) TableRow {
	t.Helper()
	for _, row := range view.Rows {
		if row.ID == id {
			return row
		}
	}
	t.Fatalf("row %s not found", id)
	return TableRow{}
}

func TestBuildTableViewRowTotals(t *testing.T) {
	t.Parallel()
	view := buildTestTable(t)
	require.Len(t, view.Rows, 4)
	assert.Equal(t, "2026-01-05", view.ReferenceDate)
	assert.Equal(t, "release_date", view.InitialSort)

	m1 := rowByID(t, view, "m1")
	require.NotNil(t, m1.GrossToDate)
	assert.Equal(t, 650.0, *m1.GrossToDate)
	require.NotNil(t, m1.ProfitToDate)
	assert.Equal(t, 450.0, *m1.ProfitToDate, "profit is gross minus twice the budget")
	require.NotNil(t, m1.DaysRunning)
	assert.Equal(t, 3, *m1.DaysRunning)

	m3 := rowByID(t, view, "m3")
	assert.Nil(t, m3.GrossToDate, "TBA movies report nothing")
	assert.Nil(t, m3.ProfitToDate)
	assert.Nil(t, m3.DaysRunning)
	assert.Equal(t, UnreleasedSentinel, m3.ReleaseDate)

	m4 := rowByID(t, view, "m4")
	assert.Nil(t, m4.GrossToDate, "future releases report nothing yet")
}

func TestBuildTableViewDailyCells(t *testing.T) {
	t.Parallel()
	view := buildTestTable(t)

	m1 := rowByID(t, view, "m1")
	require.NotNil(t, m1.Daily["2026-01-02"])
	assert.Equal(t, 450.0, *m1.Daily["2026-01-02"], "first global date shows the raw value")
	require.NotNil(t, m1.Daily["2026-01-03"])
	assert.Equal(t, 250.0, *m1.Daily["2026-01-03"])
	require.NotNil(t, m1.Daily["2026-01-05"])
	assert.Equal(t, 0.0, *m1.Daily["2026-01-05"], "corrections never show negative daily takes")

	m2 := rowByID(t, view, "m2")
	assert.Nil(t, m2.Daily["2026-01-02"])
	assert.Nil(t, m2.Daily["2026-01-03"], "no earlier endpoint in this movie's series")
	require.NotNil(t, m2.Daily["2026-01-05"])
	assert.Equal(t, 400.0, *m2.Daily["2026-01-05"])
}

func TestBuildTableViewDailyColumnsNewestFirst(t *testing.T) {
	t.Parallel()
	view := buildTestTable(t)
	require.Len(t, view.DailyColumns, 3)
	assert.Equal(t, "2026-01-05", view.DailyColumns[0].Date)
	assert.Equal(t, "05/01", view.DailyColumns[0].Label)
	assert.Equal(t, "2026-01-02", view.DailyColumns[2].Date)
}

func TestBuildTableViewWeeklyCells(t *testing.T) {
	t.Parallel()
	view := buildTestTable(t)

	m1 := rowByID(t, view, "m1")
	require.NotNil(t, m1.Weekly["2026-W01"])
	assert.Equal(t, 250.0, *m1.Weekly["2026-W01"], "the bucket's first date contributes nothing")
	assert.Nil(t, m1.Weekly["2026-W02"], "a single-date bucket has no deltas to sum")

	m2 := rowByID(t, view, "m2")
	assert.Nil(t, m2.Weekly["2026-W01"], "missing endpoints leave the week empty, not zero")
}

func TestBuildTableViewHidesOldWeeks(t *testing.T) {
	t.Parallel()
	gross := map[string]float64{}
	// Six consecutive Mondays starting 2026-01-05 span six ISO weeks.
	date := "2026-01-05"
	for i := 0; i < 6; i++ {
		gross[date] = float64((i + 1) * 100)
		date = ShiftDate(date, 7)
	}
	snap := &Snapshot{
		Movies: map[string]Movie{
			"m1": {Title: "Long Runner", Owner: "Alice", ReleaseDate: "2026-01-05", Budget: 10, DailyGross: gross},
		},
		Owners: map[string]OwnerTotals{"Alice": {}},
	}
	view := BuildTableView(snap, BuildColorMap(snap.SortedOwners()), snap.LatestGrossDate())

	require.Len(t, view.WeekColumns, 6)
	assert.True(t, view.HasWeekHistory())

	hidden := 0
	for _, col := range view.WeekColumns {
		if col.Hidden {
			hidden++
		}
	}
	assert.Equal(t, 2, hidden, "only the last four weeks start visible")
	assert.True(t, view.WeekColumns[0].Latest, "columns run newest first")
	assert.False(t, view.WeekColumns[0].Hidden)
	assert.True(t, view.WeekColumns[5].Hidden)
}

func TestBuildTableViewLimitsDailyColumns(t *testing.T) {
	t.Parallel()
	gross := map[string]float64{}
	for i := 1; i <= 10; i++ {
		gross[fmt.Sprintf("2026-01-%02d", i)] = float64(i * 100)
	}
	snap := &Snapshot{
		Movies: map[string]Movie{
			"m1": {Title: "Daily Grind", Owner: "Alice", ReleaseDate: "2026-01-01", Budget: 10, DailyGross: gross},
		},
		Owners: map[string]OwnerTotals{"Alice": {}},
	}
	view := BuildTableView(snap, BuildColorMap(snap.SortedOwners()), snap.LatestGrossDate())

	require.Len(t, view.DailyColumns, 7, "daily columns cover only the last seven recorded dates")
	assert.Equal(t, "2026-01-10", view.DailyColumns[0].Date)
	assert.Equal(t, "2026-01-04", view.DailyColumns[6].Date)

	m1 := rowByID(t, view, "m1")
	require.NotNil(t, m1.Daily["2026-01-04"])
	assert.Equal(t, 100.0, *m1.Daily["2026-01-04"],
		"the oldest visible cell still diffs against the date before the window")
}

func TestFilterRows(t *testing.T) {
	t.Parallel()
	view := buildTestTable(t)

	byDefault := FilterRows(view.Rows, nil, false)
	require.Len(t, byDefault, 3, "unowned movies start hidden")
	for _, row := range byDefault {
		assert.NotEqual(t, UnownedSentinel, row.Owner)
	}

	withUnowned := FilterRows(view.Rows, nil, true)
	assert.Len(t, withUnowned, 4)

	aliceOnly := FilterRows(view.Rows, []string{"Alice"}, true)
	require.Len(t, aliceOnly, 1)
	assert.Equal(t, "m1", aliceOnly[0].ID)

	pair := FilterRows(view.Rows, []string{"Alice", "Cara"}, false)
	assert.Len(t, pair, 2, "owner filter overrides the unowned toggle")
}

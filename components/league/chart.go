package league

import "sort"

// ChartMode selects which family of lines the chart shows. Movie selection
// always wins over owner selection; both persist independently as session
// state.
type ChartMode string

const (
	// ModeOwnerAggregate plots cumulative profit per owner (all owners
	// when the selection is empty, otherwise exactly the selected ones).
	ModeOwnerAggregate ChartMode = "owners"
	// ModeSingleOwner plots one line per released movie belonging to the
	// single active owner.
	ModeSingleOwner ChartMode = "owner-movies"
	// ModeMovieSelection plots exactly the movies picked in the table.
	ModeMovieSelection ChartMode = "movies"
)

// ChartLine is one rendered series, reindexed onto the shared date axis.
// Points holds one entry per axis date; nil marks dates strictly before the
// line's first data point and renders as a gap, not a zero.
type ChartLine struct {
	Label  string     `json:"label"`
	Color  string     `json:"color"`
	Points []*float64 `json:"points"`
}

// ChartView is the fully derived chart: a shared ascending date axis, the
// line set for the active mode, and the initial visible window.
type ChartView struct {
	Heading     string      `json:"heading"`
	Mode        ChartMode   `json:"mode"`
	Dates       []string    `json:"dates"`
	Lines       []ChartLine `json:"lines"`
	WindowStart string      `json:"window_start,omitempty"`
}

// BuildChartView derives the chart for the current selection pair.
//
// The date axis is the union of every candidate series' dates (owner
// totals plus every movie profit series) regardless of mode, so switching
// modes never shifts the axis and early unowned-movie data is never
// truncated.
func BuildChartView(snap *Snapshot, owners []string, colors map[string]string, activeOwners, activeMovies []string) ChartView {
	view := ChartView{Dates: chartDateAxis(snap, owners)}

	switch {
	case len(activeMovies) > 0:
		view.Mode = ModeMovieSelection
		view.Heading = Pluralize(len(activeMovies), "Movie")
		view.Lines = movieSelectionLines(snap, activeMovies, view.Dates)
	case len(activeOwners) == 1:
		view.Mode = ModeSingleOwner
		view.Heading = activeOwners[0] + ": Movie Profits"
		view.Lines = singleOwnerLines(snap, activeOwners[0], view.Dates)
	default:
		view.Mode = ModeOwnerAggregate
		view.Heading = "Profit Over Time"
		display := owners
		if len(activeOwners) > 0 {
			display = activeOwners
		}
		view.Lines = ownerAggregateLines(snap, display, colors, view.Dates)
	}

	view.WindowStart = initialWindowStart(view.Lines, view.Dates)
	return view
}

func chartDateAxis(snap *Snapshot, owners []string) []string {
	series := make([]map[string]float64, 0, len(owners)+len(snap.Movies))
	for _, owner := range owners {
		if totals, ok := snap.Owners[owner]; ok {
			series = append(series, totals.Total)
		}
	}
	for _, movie := range snap.Movies {
		series = append(series, movie.ProfitSeries())
	}
	return UnionDates(series...)
}

// reindex spans a sparse series across the shared axis: nil before the
// series' first recorded date, then the last known value as of each date.
// Carry-forward scans for the latest entry at or before the target; it is
// not a simple carry of the prior array element, since that element can
// itself be a gap.
func reindex(series map[string]float64, dates []string) []*float64 {
	sorted := SortedDates(series)
	if len(sorted) == 0 {
		return nil
	}
	first := sorted[0]
	points := make([]*float64, len(dates))
	for i, date := range dates {
		if date < first {
			continue
		}
		value := GrossAsOf(series, date)
		points[i] = &value
	}
	return points
}

func movieSelectionLines(snap *Snapshot, selection []string, dates []string) []ChartLine {
	palette := MoviePalette(len(selection))
	lines := make([]ChartLine, 0, len(selection))
	for i, id := range selection {
		movie, ok := snap.Movies[id]
		if !ok {
			continue
		}
		points := reindex(movie.ProfitSeries(), dates)
		if points == nil {
			// Unreleased, no data yet.
			continue
		}
		lines = append(lines, ChartLine{Label: movie.Title, Color: palette[i], Points: points})
	}
	return lines
}

func singleOwnerLines(snap *Snapshot, owner string, dates []string) []ChartLine {
	var picks []Movie
	for _, movie := range snap.Movies {
		if movie.Owner == owner && len(movie.DailyGross) > 0 {
			picks = append(picks, movie)
		}
	}
	sortMoviesByTitle(picks)
	palette := MoviePalette(len(picks))
	lines := make([]ChartLine, 0, len(picks))
	for i, movie := range picks {
		points := reindex(movie.ProfitSeries(), dates)
		if points == nil {
			continue
		}
		lines = append(lines, ChartLine{Label: movie.Title, Color: palette[i], Points: points})
	}
	return lines
}

func ownerAggregateLines(snap *Snapshot, owners []string, colors map[string]string, dates []string) []ChartLine {
	lines := make([]ChartLine, 0, len(owners))
	for _, owner := range owners {
		var totals map[string]float64
		if t, ok := snap.Owners[owner]; ok {
			totals = t.Total
		}
		points := reindex(totals, dates)
		if points == nil {
			points = make([]*float64, len(dates))
		}
		lines = append(lines, ChartLine{Label: owner, Color: colors[owner], Points: points})
	}
	return lines
}

// initialWindowStart finds the earliest date with a non-null, non-zero
// value across every line and backs the view window up seven calendar days
// so the chart opens on meaningful data rather than a flat run of zeros.
// Empty when no such date exists.
func initialWindowStart(lines []ChartLine, dates []string) string {
	firstReal := ""
	for _, line := range lines {
		for i, point := range line.Points {
			if point == nil || *point == 0 {
				continue
			}
			if firstReal == "" || dates[i] < firstReal {
				firstReal = dates[i]
			}
			break
		}
	}
	if firstReal == "" {
		return ""
	}
	return ShiftDate(firstReal, -7)
}

func sortMoviesByTitle(movies []Movie) {
	sort.Slice(movies, func(i, j int) bool {
		return movies[i].Title < movies[j].Title
	})
}

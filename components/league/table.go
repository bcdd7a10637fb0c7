package league

import "sort"

const visibleWeekColumns = 4
const dailyColumnCount = 7

// TableRow is one movie's derived record. Nullable fields are nil when the
// movie has not released as of the reference date, or when an aggregation
// window has no data to report. Gaps are part of the contract, never an
// error.
type TableRow struct {
	ID           string              `json:"id"`
	Title        string              `json:"movie_title"`
	Owner        string              `json:"owner"`
	OwnerColor   string              `json:"owner_color"`
	PickType     string              `json:"pick_type"`
	ReleaseDate  string              `json:"release_date"`
	DaysRunning  *int                `json:"days_running"`
	Budget       float64             `json:"budget"`
	GrossToDate  *float64            `json:"gross_td"`
	ProfitToDate *float64            `json:"profit_td"`
	Daily        map[string]*float64 `json:"daily"`
	Weekly       map[string]*float64 `json:"weekly"`
}

// WeekColumn describes one weekly aggregate column. Older weeks exist but
// start hidden until the viewer toggles week history on.
type WeekColumn struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Hidden bool   `json:"hidden"`
	Latest bool   `json:"latest"`
}

// DailyColumn describes one of the rolling daily columns, newest first.
type DailyColumn struct {
	Date  string `json:"date"`
	Label string `json:"label"`
}

// TableView carries the rows plus the column descriptors the grid widget
// needs. Sorting, pagination, and row selection mechanics belong to the
// grid; the view only names the initial sort.
type TableView struct {
	Rows          []TableRow    `json:"rows"`
	DailyColumns  []DailyColumn `json:"daily_columns"`
	WeekColumns   []WeekColumn  `json:"week_columns"`
	ReferenceDate string        `json:"reference_date"`
	InitialSort   string        `json:"initial_sort"`
}

// HasWeekHistory reports whether any hidden week columns exist, which
// decides whether the history toggle is offered at all.
func (v TableView) HasWeekHistory() bool {
	for _, col := range v.WeekColumns {
		if col.Hidden {
			return true
		}
	}
	return false
}

// BuildTableView derives one row per movie with rolling daily and weekly
// aggregate columns.
//
// Daily columns cover the last seven distinct dates recorded across any
// movie; a cell is the non-negative day-over-day delta against the previous
// recorded date (not the previous calendar day), the raw value when no
// earlier date exists to diff against, or nil when either endpoint is
// missing. Weekly columns bucket every recorded date into ISO weeks and sum
// the non-negative intra-bucket deltas; the first date of a bucket
// contributes nothing, and a week with no contributing deltas is nil, not
// zero.
func BuildTableView(snap *Snapshot, colors map[string]string, referenceDate string) TableView {
	allDates := collectDailyDates(snap)
	last7 := allDates
	if len(last7) > dailyColumnCount {
		last7 = last7[len(last7)-dailyColumnCount:]
	}

	buckets := weekBuckets(allDates)
	weekKeys := make([]string, 0, len(buckets))
	for key := range buckets {
		weekKeys = append(weekKeys, key)
	}
	sort.Strings(weekKeys)

	view := TableView{
		ReferenceDate: referenceDate,
		InitialSort:   "release_date",
		DailyColumns:  dailyColumns(last7),
		WeekColumns:   weekColumns(weekKeys),
	}

	ids := make([]string, 0, len(snap.Movies))
	for id := range snap.Movies {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		movie := snap.Movies[id]
		view.Rows = append(view.Rows, buildRow(id, movie, colors, referenceDate, allDates, last7, weekKeys, buckets))
	}
	return view
}

func buildRow(id string, movie Movie, colors map[string]string, referenceDate string, allDates, last7, weekKeys []string, buckets map[string][]string) TableRow {
	row := TableRow{
		ID:          id,
		Title:       movie.Title,
		Owner:       movie.Owner,
		OwnerColor:  colors[movie.Owner],
		PickType:    movie.PickType,
		ReleaseDate: movie.ReleaseDate,
		Budget:      movie.Budget,
		Daily:       make(map[string]*float64, len(last7)),
		Weekly:      make(map[string]*float64, len(weekKeys)),
	}
	if row.ReleaseDate == "" {
		row.ReleaseDate = UnreleasedSentinel
	}
	if row.OwnerColor == "" {
		row.OwnerColor = "#888"
	}

	if movie.Released(referenceDate) {
		if days, ok := DaysRunning(movie.ReleaseDate, referenceDate); ok {
			row.DaysRunning = &days
		}
		gross := GrossAsOf(movie.DailyGross, referenceDate)
		profit := gross - 2*movie.Budget
		row.GrossToDate = &gross
		row.ProfitToDate = &profit
	}

	offset := len(allDates) - len(last7)
	for i, date := range last7 {
		globalIdx := offset + i
		if globalIdx > 0 {
			prev := allDates[globalIdx-1]
			if delta, ok := DailyDelta(movie.DailyGross, date, prev); ok {
				clamped := clampNonNegative(delta)
				row.Daily[date] = &clamped
			} else {
				row.Daily[date] = nil
			}
		} else if value, ok := movie.DailyGross[date]; ok {
			clamped := clampNonNegative(value)
			row.Daily[date] = &clamped
		} else {
			row.Daily[date] = nil
		}
	}

	for _, week := range weekKeys {
		dates := buckets[week]
		total := 0.0
		hasData := false
		for i := 1; i < len(dates); i++ {
			if delta, ok := DailyDelta(movie.DailyGross, dates[i], dates[i-1]); ok {
				total += clampNonNegative(delta)
				hasData = true
			}
		}
		if hasData {
			value := total
			row.Weekly[week] = &value
		} else {
			row.Weekly[week] = nil
		}
	}
	return row
}

// FilterRows applies the owner predicate: membership when owners are
// active, otherwise hide unowned movies unless the viewer relaxed that
// default. Both conditions relaxed means no filter at all.
func FilterRows(rows []TableRow, activeOwners []string, showUnowned bool) []TableRow {
	if len(activeOwners) == 0 && showUnowned {
		return rows
	}
	activeSet := make(map[string]struct{}, len(activeOwners))
	for _, owner := range activeOwners {
		activeSet[owner] = struct{}{}
	}
	filtered := make([]TableRow, 0, len(rows))
	for _, row := range rows {
		if len(activeSet) > 0 {
			if _, ok := activeSet[row.Owner]; ok {
				filtered = append(filtered, row)
			}
			continue
		}
		if row.Owner != "" && row.Owner != UnownedSentinel {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func collectDailyDates(snap *Snapshot) []string {
	series := make([]map[string]float64, 0, len(snap.Movies))
	for _, movie := range snap.Movies {
		series = append(series, movie.DailyGross)
	}
	return UnionDates(series...)
}

func weekBuckets(dates []string) map[string][]string {
	buckets := make(map[string][]string)
	for _, date := range dates {
		key := ISOWeekKey(date)
		if key == "" {
			continue
		}
		buckets[key] = append(buckets[key], date)
	}
	return buckets
}

func dailyColumns(last7 []string) []DailyColumn {
	columns := make([]DailyColumn, 0, len(last7))
	for i := len(last7) - 1; i >= 0; i-- {
		date := last7[i]
		columns = append(columns, DailyColumn{Date: date, Label: FormatDayMonth(date)})
	}
	return columns
}

func weekColumns(weekKeys []string) []WeekColumn {
	columns := make([]WeekColumn, 0, len(weekKeys))
	firstVisible := len(weekKeys) - visibleWeekColumns
	for i := len(weekKeys) - 1; i >= 0; i-- {
		key := weekKeys[i]
		columns = append(columns, WeekColumn{
			Key:    key,
			Label:  FormatWeekLabel(key),
			Hidden: i < firstVisible,
			Latest: i == len(weekKeys)-1,
		})
	}
	return columns
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

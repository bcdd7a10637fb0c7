package league

import (
	"fmt"
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// GrossAsOf returns the cumulative value at the latest recorded date at or
// before target, or 0 when no such date exists. Storage order of the sparse
// series is irrelevant.
func GrossAsOf(series map[string]float64, target string) float64 {
	if len(series) == 0 || target == "" {
		return 0
	}
	best := ""
	for date := range series {
		if date <= target && date > best {
			best = date
		}
	}
	if best == "" {
		return 0
	}
	return series[best]
}

// DailyDelta returns the signed difference between two recorded dates. The
// second return is false when either endpoint is missing from the series.
func DailyDelta(series map[string]float64, date, prev string) (float64, bool) {
	current, ok := series[date]
	if !ok {
		return 0, false
	}
	previous, ok := series[prev]
	if !ok {
		return 0, false
	}
	return current - previous, true
}

// DaysRunning counts whole days between the release date and the reference
// date. The second return is false when the movie is unreleased or opens
// after the reference date; the count is never negative.
func DaysRunning(releaseDate, referenceDate string) (int, bool) {
	if releaseDate == "" || releaseDate == UnreleasedSentinel || referenceDate == "" {
		return 0, false
	}
	release, err := parseDate(releaseDate)
	if err != nil {
		return 0, false
	}
	reference, err := parseDate(referenceDate)
	if err != nil {
		return 0, false
	}
	days := int(reference.Sub(release).Hours() / 24)
	if days < 0 {
		return 0, false
	}
	return days, true
}

// ISOWeekKey buckets a date into its ISO-8601 week, e.g. "2026-W01".
// Weeks run Monday through Sunday; week 1 contains January 4th.
func ISOWeekKey(date string) string {
	t, err := parseDate(date)
	if err != nil {
		return ""
	}
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// ISOWeekBounds returns the Monday and Sunday of the given ISO week key as
// YYYY-MM-DD strings. Malformed keys yield empty bounds.
func ISOWeekBounds(weekKey string) (start, end string) {
	var year, week int
	if _, err := fmt.Sscanf(weekKey, "%d-W%d", &year, &week); err != nil {
		return "", ""
	}
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	week1Monday := jan4.AddDate(0, 0, -(weekday - 1))
	monday := week1Monday.AddDate(0, 0, (week-1)*7)
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format(dateLayout), sunday.Format(dateLayout)
}

// SortedDates returns the series' date keys in ascending order.
func SortedDates(series map[string]float64) []string {
	if len(series) == 0 {
		return nil
	}
	dates := make([]string, 0, len(series))
	for date := range series {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// UnionDates merges date keys from several sparse series into one ascending
// axis. The union matters: a per-movie series can start before any owner
// total exists, and dropping those dates silently truncates early data.
func UnionDates(series ...map[string]float64) []string {
	set := make(map[string]struct{})
	for _, s := range series {
		for date := range s {
			set[date] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	dates := make([]string, 0, len(set))
	for date := range set {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// ShiftDate moves a YYYY-MM-DD date by the given number of calendar days.
func ShiftDate(date string, days int) string {
	t, err := parseDate(date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, days).Format(dateLayout)
}

func parseDate(date string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, date, time.UTC)
}

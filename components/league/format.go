package league

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Placeholder renders wherever a value is absent.
const Placeholder = "—"

// FormatMoney abbreviates a dollar amount: $250, $45k, -$2.5m.
func FormatMoney(v float64) string {
	abs := math.Abs(v)
	sign := ""
	if v < 0 {
		sign = "-"
	}
	switch {
	case abs >= 1e6:
		return sign + "$" + strconv.FormatFloat(abs/1e6, 'f', 1, 64) + "m"
	case abs >= 1e3:
		return sign + "$" + strconv.FormatFloat(math.Round(abs/1e3), 'f', 0, 64) + "k"
	default:
		return sign + "$" + strconv.FormatFloat(math.Round(abs), 'f', 0, 64)
	}
}

// FormatMoneyPtr renders a nullable amount, using the neutral placeholder
// for absent values.
func FormatMoneyPtr(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return FormatMoney(*v)
}

// Trend classifies a nullable value for display styling.
func Trend(v *float64) string {
	if v == nil {
		return "neu"
	}
	switch {
	case *v > 0:
		return "pos"
	case *v < 0:
		return "neg"
	default:
		return "neu"
	}
}

// FormatShortDate renders "2026-01-05" as "Jan 5".
func FormatShortDate(date string) string {
	t, err := parseDate(date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}

// FormatDayMonth renders "2026-01-05" as "05/01".
func FormatDayMonth(date string) string {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1]
}

// FormatWeekLabel renders an ISO week key as its Monday–Sunday span,
// compressing the month when both bounds share it: "Jan 5–11" or
// "Jan 26–Feb 1".
func FormatWeekLabel(weekKey string) string {
	start, end := ISOWeekBounds(weekKey)
	if start == "" || end == "" {
		return weekKey
	}
	return formatDateSpan(start, end)
}

func formatDateSpan(start, end string) string {
	startParts := strings.SplitN(start, "-", 3)
	endParts := strings.SplitN(end, "-", 3)
	if len(startParts) != 3 || len(endParts) != 3 {
		return start + "–" + end
	}
	if startParts[1] == endParts[1] {
		day, err := strconv.Atoi(endParts[2])
		if err != nil {
			return FormatShortDate(start) + "–" + FormatShortDate(end)
		}
		return FormatShortDate(start) + "–" + strconv.Itoa(day)
	}
	return FormatShortDate(start) + "–" + FormatShortDate(end)
}

// FormatTimestamp trims a "YYYY-MM-DD HH:MM:SS" stamp to a two-digit year.
// The snapshot's fetched_at field already carries a display-ready string.
func FormatTimestamp(stamp string) string {
	if len(stamp) > 2 && stamp[2] == '-' {
		return stamp
	}
	if len(stamp) < 2 {
		return stamp
	}
	return stamp[2:]
}

// FormatTime renders a time in the same compact footer style.
func FormatTime(t time.Time) string {
	return t.Format("06-01-02 15:04:05")
}

// Pluralize renders a count with its unit: "1 Movie", "3 Movies".
func Pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

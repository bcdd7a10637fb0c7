package league

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "$0", FormatMoney(0))
	assert.Equal(t, "$250", FormatMoney(250))
	assert.Equal(t, "$1k", FormatMoney(1000))
	assert.Equal(t, "$2k", FormatMoney(1500))
	assert.Equal(t, "$45k", FormatMoney(45000))
	assert.Equal(t, "$999k", FormatMoney(999000))
	assert.Equal(t, "$1.0m", FormatMoney(1000000))
	assert.Equal(t, "$2.5m", FormatMoney(2500000))
	assert.Equal(t, "-$250", FormatMoney(-250))
	assert.Equal(t, "-$45k", FormatMoney(-45000))
	assert.Equal(t, "-$2.5m", FormatMoney(-2500000))
}

func TestFormatMoneyPtr(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Placeholder, FormatMoneyPtr(nil))
	v := 45000.0
	assert.Equal(t, "$45k", FormatMoneyPtr(&v))
}

func TestTrend(t *testing.T) {
	t.Parallel()
	pos, neg, zero := 5.0, -5.0, 0.0
	assert.Equal(t, "pos", Trend(&pos))
	assert.Equal(t, "neg", Trend(&neg))
	assert.Equal(t, "neu", Trend(&zero))
	assert.Equal(t, "neu", Trend(nil))
}

func TestFormatShortDate(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Jan 5", FormatShortDate("2026-01-05"))
	assert.Equal(t, "bogus", FormatShortDate("bogus"))
}

func TestFormatDayMonth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "05/01", FormatDayMonth("2026-01-05"))
	assert.Equal(t, "26/12", FormatDayMonth("2025-12-26"))
}

func TestFormatWeekLabel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Jan 5–11", FormatWeekLabel("2026-W02"))
	assert.Equal(t, "Dec 29–Jan 4", FormatWeekLabel("2026-W01"), "span crossing a month names both months")
	assert.Equal(t, "nope", FormatWeekLabel("nope"))
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "26-01-10 06:00:00", FormatTimestamp("2026-01-10 06:00:00"))
	assert.Equal(t, "26-01-10 06:00:00", FormatTimestamp("26-01-10 06:00:00"), "already trimmed stamps pass through")
}

func TestFormatTime(t *testing.T) {
	t.Parallel()
	stamp := time.Date(2026, 1, 9, 22, 30, 5, 0, time.UTC)
	assert.Equal(t, "26-01-09 22:30:05", FormatTime(stamp))
}

func TestPluralize(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1 Movie", Pluralize(1, "Movie"))
	assert.Equal(t, "3 Movies", Pluralize(3, "Movie"))
	assert.Equal(t, "0 Movies", Pluralize(0, "Movie"))
}

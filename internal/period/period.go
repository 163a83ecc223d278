package period

import (
	"fmt"
	"time"
)

// Mode selects the comparison window alignment.
type Mode string

const (
	Monthly   Mode = "monthly"
	Quarterly Mode = "quarterly"
)

// ParseMode validates a period mode coming from a query parameter.
// An empty value defaults to Monthly.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return Monthly, nil
	case Monthly, Quarterly:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown period mode: %q", s)
	}
}

// Period is a calendar date range. Start and End are both sent to the
// vendor API as inclusive calendar dates.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Ranges computes the current-to-date window and the matching previous
// window for the given mode, relative to now.
func Ranges(mode Mode, now time.Time) (current, previous Period, err error) {
	now = truncateToDay(now)

	switch mode {
	case Monthly:
		return monthlyRanges(now), previousMonthRange(now), nil
	case Quarterly:
		return quarterlyRanges(now), previousQuarterRange(now), nil
	default:
		return Period{}, Period{}, fmt.Errorf("unknown period mode: %q", mode)
	}
}

func monthlyRanges(now time.Time) Period {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Period{Start: start, End: now}
}

// previousMonthRange returns the first day of the preceding month through
// the same day-of-month as now, clamped to the last valid day of that
// month (March 31 compares against the last day of February).
func previousMonthRange(now time.Time) Period {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthLastDay := firstOfMonth.AddDate(0, 0, -1)

	start := time.Date(prevMonthLastDay.Year(), prevMonthLastDay.Month(), 1, 0, 0, 0, 0, now.Location())

	day := now.Day()
	if day > prevMonthLastDay.Day() {
		day = prevMonthLastDay.Day()
	}
	end := time.Date(prevMonthLastDay.Year(), prevMonthLastDay.Month(), day, 0, 0, 0, 0, now.Location())

	return Period{Start: start, End: end}
}

func quarterlyRanges(now time.Time) Period {
	start := quarterStart(now)
	return Period{Start: start, End: now}
}

// previousQuarterRange returns the preceding quarter's first day through
// that day plus the number of days elapsed in the current quarter, so
// both windows cover a comparable span.
func previousQuarterRange(now time.Time) Period {
	currentStart := quarterStart(now)
	elapsedDays := daysBetween(currentStart, now)

	prevStart := quarterStart(currentStart.AddDate(0, 0, -1))
	prevEnd := prevStart.AddDate(0, 0, elapsedDays)

	return Period{Start: prevStart, End: prevEnd}
}

// daysBetween counts calendar days from a to b. The dates are compared
// in UTC so a DST-shortened day still counts as a whole day.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// quarterStart returns the first day of the calendar quarter containing t.
func quarterStart(t time.Time) time.Time {
	quarter := (int(t.Month()) - 1) / 3
	return time.Date(t.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, t.Location())
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

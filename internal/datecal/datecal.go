// Package datecal provides the calendar arithmetic behind date picking:
// a Monday-first month grid, month navigation with year rollover, and
// strict parsing for the date strings stored on contacts.
package datecal

import (
	"fmt"
	"time"
)

// DateLayout is the stored date format for last_contact and next_step.
const DateLayout = "2006-01-02"

// MonthLayout selects a month for the calendar view.
const MonthLayout = "2006-01"

// MonthGrid returns the weeks of a month with Monday as the first column.
// Each week is exactly 7 cells; cells outside the month hold 0.
func MonthGrid(year int, month time.Month) [][]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lead := mondayIndex(first.Weekday())
	days := daysIn(year, month)

	var weeks [][]int
	week := make([]int, 7)
	col := lead
	for day := 1; day <= days; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = make([]int, 7)
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// PrevMonth steps one month back, rolling over the year at January.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// NextMonth steps one month forward, rolling over the year at December.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// ParseDate parses a stored date. Only the exact YYYY-MM-DD form is
// accepted; anything else, including real dates in other layouts, is an
// error so malformed values never reach storage.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// FormatDate renders a time in the stored date format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseMonth parses a YYYY-MM month selector.
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (want YYYY-MM): %w", s, err)
	}
	return t.Year(), t.Month(), nil
}

// mondayIndex maps a weekday to its column in a Monday-first week.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// daysIn returns the number of days in a month. Day 0 of the following
// month normalizes to the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

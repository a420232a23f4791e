package datemath

import "time"

// Period is the calendar-aware breakdown of the span between two dates.
// Years, months and days are mutually exclusive units (largest-unit-first);
// TotalWeeks and TotalDays are independent raw counts over the same span.
type Period struct {
	Years  int
	Months int
	Days   int

	TotalWeeks int
	TotalDays  int

	// Future is true when the reference date lies after the comparison
	// date. The unit values are then the magnitudes of the reversed span,
	// so they stay non-negative either way.
	Future bool
}

// Midnight truncates t to the start of its calendar day, keeping the
// location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Span computes the elapsed Period from one date to another.
//
// Whole years are stepped off first, then whole months, then the remaining
// calendar days, each step using AddDate so that rollover follows real
// calendar arithmetic (Jan 31 + 1 month lands in early March, leap years
// come from the time package, never from 30/365-day approximations).
func Span(from, to time.Time) Period {
	from = Midnight(from)
	to = Midnight(to)

	future := from.After(to)
	if future {
		from, to = to, from
	}

	years := 0
	for !from.AddDate(years+1, 0, 0).After(to) {
		years++
	}

	afterYears := from.AddDate(years, 0, 0)
	months := 0
	for !afterYears.AddDate(0, months+1, 0).After(to) {
		months++
	}

	afterMonths := afterYears.AddDate(0, months, 0)
	days := DayCount(afterMonths, to)

	totalDays := DayCount(from, to)

	return Period{
		Years:      years,
		Months:     months,
		Days:       days,
		TotalWeeks: totalDays / 7,
		TotalDays:  totalDays,
		Future:     future,
	}
}

// DayCount returns the whole number of calendar days from one date to the
// other, negative when to precedes from. Both dates are rebuilt at UTC
// midnight first so daylight-saving shifts cannot skew the division.
func DayCount(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

// SameDay reports whether two timestamps fall on the same calendar day in
// their respective locations.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

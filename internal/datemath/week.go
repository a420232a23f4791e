package datemath

import (
	"time"

	"github.com/tartampluch/go-datespan/internal/config"
)

// WeekWindow returns the seven days of the week containing d, Monday
// through Sunday, each at midnight in d's location. The window always
// contains the Monday on or before d.
func WeekWindow(d time.Time) [config.WeekDays]time.Time {
	d = Midnight(d)

	// time.Weekday counts Sunday as 0; treat it as day 7 so Monday leads.
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = config.WeekDays
	}
	monday := d.AddDate(0, 0, -(weekday - 1))

	var week [config.WeekDays]time.Time
	for i := range week {
		week[i] = monday.AddDate(0, 0, i)
	}
	return week
}

// ISOWeeksInYear returns how many ISO 8601 weeks the given year has
// (52 or 53). December 28th always falls in the last ISO week of its year.
func ISOWeeksInYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

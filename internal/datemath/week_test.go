package datemath

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestWeekWindow checks that every weekday of a sample week maps to the
// same Monday-through-Sunday window.
func TestWeekWindow(t *testing.T) {
	// 2023-06-12 is a Monday.
	monday := date(2023, time.June, 12)

	for offset := 0; offset < 7; offset++ {
		d := monday.AddDate(0, 0, offset)
		t.Run(d.Weekday().String(), func(t *testing.T) {
			week := WeekWindow(d)

			assert.Equal(t, monday, week[0])
			assert.Equal(t, time.Monday, week[0].Weekday())
			assert.Equal(t, time.Sunday, week[6].Weekday())

			for i := 1; i < len(week); i++ {
				assert.Equal(t, week[i-1].AddDate(0, 0, 1), week[i],
					"entries must increase by exactly one day")
			}
		})
	}
}

// TestWeekWindow_ContainsInput ensures the selected date is always inside
// its own window.
func TestWeekWindow_ContainsInput(t *testing.T) {
	for offset := 0; offset < 30; offset++ {
		d := date(2023, time.December, 20).AddDate(0, 0, offset)
		week := WeekWindow(d)

		found := false
		for _, day := range week {
			if day.Equal(Midnight(d)) {
				found = true
				break
			}
		}
		assert.True(t, found, "window for %s must contain the date itself", d)
	}
}

// TestWeekWindow_YearBoundary covers a window spanning two years.
func TestWeekWindow_YearBoundary(t *testing.T) {
	week := WeekWindow(date(2024, time.January, 1)) // a Monday

	assert.Equal(t, date(2024, time.January, 1), week[0])
	assert.Equal(t, date(2024, time.January, 7), week[6])

	week = WeekWindow(date(2023, time.December, 31)) // the Sunday before
	assert.Equal(t, date(2023, time.December, 25), week[0])
	assert.Equal(t, date(2023, time.December, 31), week[6])
}

func TestISOWeeksInYear(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{2020, 53}, // leap year starting on Wednesday
		{2015, 53}, // common year starting on Thursday
		{2021, 52},
		{2023, 52},
		{2024, 52},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ISOWeeksInYear(tt.year), "year %d", tt.year)
	}
}

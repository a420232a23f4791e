package datemath

import (
	"errors"
	"strings"
	"time"

	"github.com/tartampluch/go-datespan/internal/config"
)

// ErrNoMatch signals that no layout in config.InputDateLayouts accepted the
// input. It is an expected outcome, not a failure: callers surface it as an
// inline validation message and keep the input for correction.
var ErrNoMatch = errors.New(config.ErrDateParse)

// englishMonths are the month names the time package understands, indexed
// January = 0. Localized names are substituted with these before parsing.
var englishMonths = [config.MonthsInYear]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ParseFlexible attempts to parse raw as a calendar date, trying each layout
// in config.InputDateLayouts in order and returning the first success,
// normalized to midnight in the local timezone.
//
// months, when it holds exactly twelve entries, supplies localized month
// names (January first) recognized by the textual-month layouts. A nil or
// incomplete slice leaves only the English names accepted; time.Parse
// matches those case-insensitively on its own.
//
// Empty or whitespace-only input short-circuits to ErrNoMatch without trying
// any layout. Nonexistent dates such as Feb 30 or Feb 29 of a non-leap year
// are rejected by time.Parse rather than silently normalized.
func ParseFlexible(raw string, months []string) (time.Time, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return time.Time{}, ErrNoMatch
	}

	textual := substituteMonthNames(input, months)

	for _, layout := range config.InputDateLayouts {
		candidate := input
		if strings.Contains(layout, "January") {
			candidate = textual
		}
		if t, err := time.Parse(layout, candidate); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
		}
	}

	return time.Time{}, ErrNoMatch
}

// substituteMonthNames replaces a localized month name token with its
// English equivalent so the textual layouts can parse it. Matching is
// case-insensitive and token-based: separators never appear inside the
// space-separated textual layouts, so plain field splitting is enough.
func substituteMonthNames(input string, months []string) string {
	if len(months) != config.MonthsInYear {
		return input
	}

	fields := strings.Fields(input)
	changed := false
	for i, field := range fields {
		for m, name := range months {
			if name != "" && strings.EqualFold(field, name) {
				fields[i] = englishMonths[m]
				changed = true
				break
			}
		}
	}

	if !changed {
		return input
	}
	return strings.Join(fields, " ")
}

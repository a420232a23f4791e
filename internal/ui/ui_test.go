package ui

import (
	"context"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datespan/internal/config"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// -----------------------------------------------------------------------------
// Test Setup Helper
// -----------------------------------------------------------------------------

// setupTestApp initializes a headless Fyne app with a frozen clock.
// "Today" is pinned to 2024-03-20 (a Wednesday) unless a test overrides it.
func setupTestApp(t *testing.T) *DateSpanApp {
	a := test.NewApp()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	app := NewDateSpanApp(a, ctx)
	app.Clock = MockClock{CurrentTime: time.Date(2024, 3, 20, 10, 0, 0, 0, time.Local)}

	// Manually load I18n and build the window, as Run() is skipped.
	app.SetupI18n()
	app.BuildMainWindow()

	return app
}

// -----------------------------------------------------------------------------
// Selection & Rendering Tests
// -----------------------------------------------------------------------------

func TestSelectDate_RendersBreakdown(t *testing.T) {
	app := setupTestApp(t)

	app.SelectDate(time.Date(2020, 1, 15, 0, 0, 0, 0, time.Local), config.SourcePicker)

	assert.Equal(t, "4 years, 2 months, 5 days", app.lblElapsed.Text)
	assert.Equal(t, "218", app.lblTotalWeeks.Text)
	assert.Equal(t, "1526", app.lblTotalDays.Text)
	assert.Equal(t, "15 January 2020", app.lblSelected.Text)
	assert.Equal(t, "20 March 2024", app.lblToday.Text)
}

func TestSelectToday_AllZeros(t *testing.T) {
	app := setupTestApp(t)

	app.SelectToday()

	assert.Equal(t, "0 years, 0 months, 0 days", app.lblElapsed.Text)
	assert.Equal(t, "0", app.lblTotalWeeks.Text)
	assert.Equal(t, "0", app.lblTotalDays.Text)
}

func TestSelectDate_ISOWeekFields(t *testing.T) {
	app := setupTestApp(t)

	// 2021-01-01 falls in ISO week 53 of 2020; 2021 itself has 52 weeks.
	app.SelectDate(time.Date(2021, 1, 1, 0, 0, 0, 0, time.Local), config.SourcePicker)

	assert.Equal(t, "53 (2020)", app.lblISOWeek.Text)
	assert.Equal(t, "52", app.lblYearWeeks.Text)
}

func TestSelectDate_FutureDateFlagged(t *testing.T) {
	app := setupTestApp(t)

	app.SelectDate(time.Date(2024, 3, 27, 0, 0, 0, 0, time.Local), config.SourceGrid)

	assert.Contains(t, app.lblElapsed.Text, "0 years, 0 months, 7 days")
	assert.Contains(t, app.lblElapsed.Text, app.GetMsg(config.TKeyLblFuture))
}

func TestSelectDate_SyncsEntryText(t *testing.T) {
	app := setupTestApp(t)

	app.SelectDate(time.Date(2023, 6, 10, 0, 0, 0, 0, time.Local), config.SourcePicker)
	assert.Equal(t, "10.06.2023", app.entry.Text)
}

// -----------------------------------------------------------------------------
// Text Entry Validation Tests
// -----------------------------------------------------------------------------

func TestSearchEntry_ValidInput(t *testing.T) {
	app := setupTestApp(t)

	app.entry.SetText("15/03/2023")
	app.SearchEntry()

	assert.Equal(t, time.Date(2023, 3, 15, 0, 0, 0, 0, time.Local), app.Selected)
	assert.False(t, app.errLabel.Visible(), "valid input must clear the error")
	// The entry keeps the user's own text after a successful search.
	assert.Equal(t, "15/03/2023", app.entry.Text)
}

func TestSearchEntry_InvalidInputPreserved(t *testing.T) {
	app := setupTestApp(t)
	app.SelectToday()
	before := app.Selected

	app.entry.SetText("29.02.2023")
	app.SearchEntry()

	assert.True(t, app.errLabel.Visible())
	assert.Equal(t, "Invalid date. Please use a valid format.", app.errLabel.Text)
	assert.Equal(t, "29.02.2023", app.entry.Text, "input must be preserved for correction")
	assert.Equal(t, before, app.Selected, "selection must not change on invalid input")
}

func TestSearchEntry_LocalizedMonthName(t *testing.T) {
	app := setupTestApp(t)
	app.Preferences.SetString(config.PrefLanguage, "ro")
	app.UpdateLocalizer()

	app.entry.SetText("15 martie 2023")
	app.SearchEntry()

	require.False(t, app.errLabel.Visible())
	assert.Equal(t, time.Date(2023, 3, 15, 0, 0, 0, 0, time.Local), app.Selected)
}

// -----------------------------------------------------------------------------
// Week Strip Tests
// -----------------------------------------------------------------------------

func TestWeekStrip_MondayThroughSunday(t *testing.T) {
	app := setupTestApp(t)

	// Wednesday 2024-03-20 sits in the window 18th..24th.
	app.SelectToday()

	assert.Equal(t, "Monday", app.weekCells[0].day.Text)
	assert.Equal(t, "18", app.weekCells[0].num.Text)
	assert.Equal(t, "Sunday", app.weekCells[6].day.Text)
	assert.Equal(t, "24", app.weekCells[6].num.Text)

	for _, cell := range app.weekCells {
		assert.Equal(t, "March", cell.month.Text)
	}
}

func TestWeekStrip_TapSelectsDay(t *testing.T) {
	app := setupTestApp(t)
	app.SelectToday()

	test.Tap(app.weekCells[0].num)

	assert.Equal(t, time.Date(2024, 3, 18, 0, 0, 0, 0, time.Local), app.Selected)
}

func TestShiftWeek_Navigation(t *testing.T) {
	app := setupTestApp(t)
	app.SelectDate(time.Date(2023, 6, 14, 0, 0, 0, 0, time.Local), config.SourcePicker)

	app.ShiftWeek(-config.WeekDays)
	assert.Equal(t, time.Date(2023, 6, 7, 0, 0, 0, 0, time.Local), app.Selected)

	app.ShiftWeek(config.WeekDays)
	app.ShiftWeek(config.WeekDays)
	assert.Equal(t, time.Date(2023, 6, 21, 0, 0, 0, 0, time.Local), app.Selected)
}

// -----------------------------------------------------------------------------
// Localization Tests
// -----------------------------------------------------------------------------

func TestLocalization_Switching(t *testing.T) {
	app := setupTestApp(t)

	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocalizer()
	assert.Equal(t, "Search", app.GetMsg(config.TKeyBtnSearch))

	app.Preferences.SetString(config.PrefLanguage, "ro")
	app.UpdateLocalizer()
	assert.Equal(t, "Caută", app.GetMsg(config.TKeyBtnSearch))
}

func TestLocalization_PluralForms(t *testing.T) {
	app := setupTestApp(t)

	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocalizer()
	assert.Equal(t, "1 year", app.CountMsg(config.TKeyLblYears, 1))
	assert.Equal(t, "2 years", app.CountMsg(config.TKeyLblYears, 2))

	app.Preferences.SetString(config.PrefLanguage, "ro")
	app.UpdateLocalizer()
	assert.Equal(t, "1 an", app.CountMsg(config.TKeyLblYears, 1))
	assert.Equal(t, "2 ani", app.CountMsg(config.TKeyLblYears, 2))
	assert.Equal(t, "21 de ani", app.CountMsg(config.TKeyLblYears, 21))
}

func TestLocalization_MonthAndWeekdayNames(t *testing.T) {
	app := setupTestApp(t)

	app.Preferences.SetString(config.PrefLanguage, "ro")
	app.UpdateLocalizer()

	assert.Equal(t, "martie", app.MonthName(time.March))
	assert.Equal(t, "luni", app.WeekdayName(1))
	assert.Equal(t, "duminică", app.WeekdayName(7))
	assert.Len(t, app.MonthNames(), config.MonthsInYear)
}

func TestLocalization_DateFormatting(t *testing.T) {
	app := setupTestApp(t)

	d := time.Date(2023, 3, 5, 0, 0, 0, 0, time.Local)

	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocalizer()
	assert.Equal(t, "05 March 2023", app.FormatDate(d))

	app.Preferences.SetString(config.PrefLanguage, "ro")
	app.UpdateLocalizer()
	assert.Equal(t, "05 martie 2023", app.FormatDate(d))
}

// -----------------------------------------------------------------------------
// Settings Tests
// -----------------------------------------------------------------------------

func TestSaveSettings_SwitchesLanguageAndRerenders(t *testing.T) {
	app := setupTestApp(t)
	app.SelectDate(time.Date(2020, 1, 15, 0, 0, 0, 0, time.Local), config.SourcePicker)

	w := app.App.NewWindow("settings")
	app.saveSettings("ro", w)

	assert.Equal(t, "ro", app.Preferences.String(config.PrefLanguage))
	assert.Equal(t, "4 ani, 2 luni, 5 zile", app.lblElapsed.Text)
	assert.Equal(t, time.Date(2020, 1, 15, 0, 0, 0, 0, time.Local), app.Selected,
		"selection must survive a language switch")
}

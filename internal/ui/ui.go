package ui

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-datespan/internal/config"
	"github.com/tartampluch/go-datespan/internal/datemath"
)

//go:embed Icon.png
var appIconData []byte

// weekCell groups the widgets of one day in the week strip:
// day name on top, tappable day number, month name underneath.
type weekCell struct {
	date  time.Time
	day   *widget.Label
	num   *widget.Button
	month *widget.Label
	box   fyne.CanvasObject
}

// DateSpanApp encapsulates the UI state, preferences, and rendering logic.
type DateSpanApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context
	Clock       datemath.Clock // Injected clock for testability

	SupportedLanguages []string

	// Selected is the current reference date, normalized to local midnight.
	// It is owned exclusively by the UI and updated atomically per user
	// action; every update triggers a full synchronous render pass.
	Selected time.Time

	entry    *DateEntry
	errLabel *widget.Label

	lblSelected   *widget.Label
	lblToday      *widget.Label
	lblElapsed    *widget.Label
	lblTotalWeeks *widget.Label
	lblTotalDays  *widget.Label
	lblISOWeek    *widget.Label
	lblYearWeeks  *widget.Label

	weekCells [config.WeekDays]*weekCell

	settingsWindow fyne.Window
}

// NewDateSpanApp constructs the application controller and wires dependencies.
func NewDateSpanApp(a fyne.App, ctx context.Context) *DateSpanApp {
	a.SetIcon(fyne.NewStaticResource(config.IconFile, appIconData))

	return &DateSpanApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Clock:              datemath.RealClock{}, // Default to real clock in production
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run launches the main UI loop. It blocks until the main window closes.
func (app *DateSpanApp) Run() {
	app.SetupI18n()
	app.BuildMainWindow()
	app.SelectToday()
	app.Window.Show()
	app.App.Run()
}

// BuildMainWindow creates (or rebuilds, after a language change) the main
// window content. The current selection survives a rebuild.
func (app *DateSpanApp) BuildMainWindow() {
	if app.Window == nil {
		app.Window = app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
		app.Window.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
		app.Window.SetMaster()
	} else {
		app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	}
	app.Window.SetContent(app.buildContent())
}

// buildContent assembles the input row, the results panel, and the week
// strip.
func (app *DateSpanApp) buildContent() fyne.CanvasObject {
	// --- Input ---
	app.entry = NewDateEntry()
	app.entry.PlaceHolder = config.PlaceholderDate
	app.entry.OnSubmitted = func(string) { app.SearchEntry() }
	app.entry.OnFocusLost = func() {
		// Blur validation only fires on actual input; an untouched empty
		// field stays quiet.
		if strings.TrimSpace(app.entry.Text) != "" {
			app.SearchEntry()
		}
	}

	searchBtn := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSearch), theme.SearchIcon(), app.SearchEntry)
	searchBtn.Importance = widget.HighImportance
	pickBtn := widget.NewButton(app.GetMsg(config.TKeyBtnPickDate), app.ShowDatePicker)

	app.errLabel = widget.NewLabel("")
	app.errLabel.Importance = widget.DangerImportance
	app.errLabel.Hide()

	inputRow := container.NewBorder(nil, nil, nil, container.NewHBox(searchBtn, pickBtn), app.entry)
	inputCard := widget.NewCard("", "", container.NewVBox(inputRow, app.errLabel))

	// --- Results ---
	app.lblSelected = widget.NewLabel("")
	app.lblToday = widget.NewLabel("")
	app.lblElapsed = widget.NewLabel("")
	app.lblTotalWeeks = widget.NewLabel("")
	app.lblTotalDays = widget.NewLabel("")
	app.lblISOWeek = widget.NewLabel("")
	app.lblYearWeeks = widget.NewLabel("")

	resultsGrid := container.NewGridWithColumns(config.LayoutColumnsDouble,
		app.resultName(config.TKeyLblSelected), app.lblSelected,
		app.resultName(config.TKeyLblToday), app.lblToday,
		app.resultName(config.TKeyLblElapsed), app.lblElapsed,
		app.resultName(config.TKeyLblTotalWeeks), app.lblTotalWeeks,
		app.resultName(config.TKeyLblTotalDays), app.lblTotalDays,
		app.resultName(config.TKeyLblISOWeek), app.lblISOWeek,
		app.resultName(config.TKeyLblYearWeeks), app.lblYearWeeks,
	)
	resultsCard := widget.NewCard(app.GetMsg(config.TKeyLblElapsed), "", resultsGrid)

	// --- Week strip ---
	prevBtn := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnPrevWeek), theme.NavigateBackIcon(), func() {
		app.ShiftWeek(-config.WeekDays)
	})
	todayBtn := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnToday), theme.HomeIcon(), app.SelectToday)
	nextBtn := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnNextWeek), theme.NavigateNextIcon(), func() {
		app.ShiftWeek(config.WeekDays)
	})
	navRow := container.NewGridWithColumns(3, prevBtn, todayBtn, nextBtn)

	cells := make([]fyne.CanvasObject, config.WeekDays)
	for i := range app.weekCells {
		cell := &weekCell{
			day:   widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
			month: widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{}),
		}
		cell.num = widget.NewButton("", func() {
			app.SelectDate(cell.date, config.SourceGrid)
		})
		cell.box = container.NewVBox(cell.day, cell.num, cell.month)
		app.weekCells[i] = cell
		cells[i] = cell.box
	}
	weekGrid := container.NewGridWithColumns(config.WeekDays, cells...)
	weekCard := widget.NewCard("", "", container.NewVBox(navRow, weekGrid))

	// --- Toolbar & footer ---
	toolbar := widget.NewToolbar(
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.SettingsIcon(), app.ShowSettingsWindow),
	)

	footer := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footer.Alignment = fyne.TextAlignCenter
	footer.TextStyle = fyne.TextStyle{Italic: true}

	body := container.NewVBox(inputCard, resultsCard, weekCard, footer)
	return container.NewBorder(toolbar, nil, nil, nil, container.NewPadded(body))
}

// resultName builds the left-hand caption label of one results row.
func (app *DateSpanApp) resultName(key string) *widget.Label {
	return widget.NewLabelWithStyle(app.GetMsg(key), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

// SearchEntry validates the typed text and selects the parsed date.
// Unparseable text surfaces the inline validation message and preserves the
// input for correction.
func (app *DateSpanApp) SearchEntry() {
	parsed, err := datemath.ParseFlexible(app.entry.Text, app.MonthNames())
	if err != nil {
		slog.Debug(config.MsgDateRejected,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyValue, app.entry.Text)

		msg := app.GetMsg(config.TKeyErrInvalid)
		if msg == config.TKeyErrInvalid {
			msg = config.FallbackErrInvalid
		}
		app.errLabel.SetText(msg)
		app.errLabel.Show()
		return
	}
	app.SelectDate(parsed, config.SourceEntry)
}

// SelectDate makes t the reference date and runs a full render pass.
func (app *DateSpanApp) SelectDate(t time.Time, source string) {
	app.Selected = datemath.Midnight(t)
	app.errLabel.Hide()

	// Keep the entry in sync unless the user is typing in it right now.
	if source != config.SourceEntry {
		app.entry.SetText(app.Selected.Format(config.DateFormatEntry))
	}

	slog.Info(config.MsgDateSelected,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyDate, app.Selected.Format(config.DateFormatDisplay),
		config.LogKeySource, source)

	app.renderResults()
}

// SelectToday resets the reference date to the current day.
func (app *DateSpanApp) SelectToday() {
	app.SelectDate(app.Clock.Now(), config.SourceNav)
}

// ShiftWeek moves the selection by a whole number of days (±7 for the week
// navigation arrows).
func (app *DateSpanApp) ShiftWeek(days int) {
	slog.Debug(config.MsgWeekShift,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyOffset, days)
	app.SelectDate(app.Selected.AddDate(0, 0, days), config.SourceNav)
}

// renderResults recomputes every displayed value from the selected date and
// the clock. "Today" is read fresh here and passed into the calculators
// explicitly; nothing below this point touches a global clock.
func (app *DateSpanApp) renderResults() {
	now := datemath.Midnight(app.Clock.Now())
	period := datemath.Span(app.Selected, now)

	app.lblSelected.SetText(app.FormatDate(app.Selected))
	app.lblToday.SetText(app.FormatDate(now))

	elapsed := strings.Join([]string{
		app.CountMsg(config.TKeyLblYears, period.Years),
		app.CountMsg(config.TKeyLblMonths, period.Months),
		app.CountMsg(config.TKeyLblDays, period.Days),
	}, ", ")
	if period.Future {
		elapsed += "\n" + app.GetMsg(config.TKeyLblFuture)
	}
	app.lblElapsed.SetText(elapsed)

	app.lblTotalWeeks.SetText(strconv.Itoa(period.TotalWeeks))
	app.lblTotalDays.SetText(strconv.Itoa(period.TotalDays))

	isoYear, isoWeek := app.Selected.ISOWeek()
	app.lblISOWeek.SetText(fmt.Sprintf("%d (%d)", isoWeek, isoYear))
	app.lblYearWeeks.SetText(strconv.Itoa(datemath.ISOWeeksInYear(app.Selected.Year())))

	week := datemath.WeekWindow(app.Selected)
	for i, day := range week {
		cell := app.weekCells[i]
		cell.date = day
		cell.day.SetText(app.WeekdayName(i + 1))
		cell.num.SetText(strconv.Itoa(day.Day()))
		cell.month.SetText(app.MonthName(day.Month()))

		if datemath.SameDay(day, app.Selected) {
			cell.num.Importance = widget.HighImportance
		} else {
			cell.num.Importance = widget.MediumImportance
		}
		cell.num.Refresh()
	}
}

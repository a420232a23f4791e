package ui

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datespan/internal/config"
	"github.com/tartampluch/go-datespan/internal/datemath"
)

// monthCalendar holds the state of the pop-up month picker: the month being
// displayed and the most recent selectable day.
type monthCalendar struct {
	app    *DateSpanApp
	shown  time.Time // first day of the displayed month
	latest time.Time // most recent selectable day (today)
	onPick func(time.Time)

	title *widget.Label
	grid  *fyne.Container
}

// ShowDatePicker opens a modal month-grid picker over the main window.
// Days after today are disabled; picking a day closes the dialog and
// selects it.
func (app *DateSpanApp) ShowDatePicker() {
	today := datemath.Midnight(app.Clock.Now())

	cal := &monthCalendar{
		app:    app,
		shown:  firstOfMonth(app.Selected),
		latest: today,
		title:  widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		grid:   container.NewGridWithColumns(config.WeekDays),
	}

	slog.Debug("Opening date picker",
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyDate, cal.shown.Format(config.DateFormatDisplay))

	prevBtn := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		cal.shown = cal.shown.AddDate(0, -1, 0)
		cal.refresh()
	})
	nextBtn := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		cal.shown = cal.shown.AddDate(0, 1, 0)
		cal.refresh()
	})

	header := container.NewBorder(nil, nil, prevBtn, nextBtn, cal.title)
	content := container.NewVBox(header, cal.grid)

	pop := dialog.NewCustom(app.GetMsg(config.TKeyBtnPickDate), app.GetMsg(config.TKeyBtnCancel), content, app.Window)
	cal.onPick = func(t time.Time) {
		pop.Hide()
		app.SelectDate(t, config.SourcePicker)
	}

	cal.refresh()
	pop.Show()
}

// refresh rebuilds the header and the day grid for the displayed month.
func (c *monthCalendar) refresh() {
	c.title.SetText(fmt.Sprintf("%s %d", c.app.MonthName(c.shown.Month()), c.shown.Year()))

	objects := make([]fyne.CanvasObject, 0, config.WeekDays*(config.CalendarRows+1))

	for day := 1; day <= config.WeekDays; day++ {
		objects = append(objects, widget.NewLabelWithStyle(
			c.app.WeekdayShort(day), fyne.TextAlignCenter, fyne.TextStyle{Bold: true}))
	}

	// Leading gap before day 1, counted from Monday.
	gapDays := (int(c.shown.Weekday()) + config.WeekDays - 1) % config.WeekDays
	for i := 0; i < gapDays; i++ {
		objects = append(objects, widget.NewLabel(""))
	}

	// Day zero of the next month is the last day of this one.
	monthDays := time.Date(c.shown.Year(), c.shown.Month()+1, 0, 0, 0, 0, 0, time.Local).Day()

	for day := 1; day <= monthDays; day++ {
		d := c.shown.AddDate(0, 0, day-1)
		btn := widget.NewButton(strconv.Itoa(day), func() {
			c.onPick(d)
		})
		if d.After(c.latest) {
			btn.Disable()
		}
		if d.Equal(c.app.Selected) {
			btn.Importance = widget.HighImportance
		}
		objects = append(objects, btn)
	}

	c.grid.Objects = objects
	c.grid.Refresh()
}

// firstOfMonth returns midnight on the first day of t's month.
func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
}

package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datespan/internal/config"
)

// ShowSettingsWindow displays the configuration dialog. It implements a
// singleton pattern: if the window is already open, it requests focus.
func (app *DateSpanApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		slog.Debug("Settings window already open, requesting focus", config.LogKeyComponent, config.CompUISet)
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info("Opening settings window", config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	langSelect := widget.NewSelect(app.SupportedLanguages, nil)
	langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), langSelect)
	itemLang.HintText = app.GetMsg(config.TKeyHelpLanguage)
	form := widget.NewForm(itemLang)

	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), func() {
		app.saveSettings(langSelect.Selected, w)
	})
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	content := container.NewPadded(container.NewVBox(
		form,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
	))

	w.SetContent(content)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, content.MinSize().Height))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.settingsWindow = nil })
	w.Show()
}

// saveSettings persists the language preference and re-renders the UI with
// the new locale. The current selection is preserved across the rebuild.
func (app *DateSpanApp) saveSettings(lang string, w fyne.Window) {
	slog.Info("Saving preferences",
		config.LogKeyComponent, config.CompUISet,
		config.LogKeyLang, lang)

	app.Preferences.SetString(config.PrefLanguage, lang)

	app.UpdateLocalizer()
	app.BuildMainWindow()
	app.SelectDate(app.Selected, config.SourceNav)

	w.Close()
}

package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-datespan/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// SetupI18n initializes the translation bundle and detects available languages.
func (app *DateSpanApp) SetupI18n() {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return
	}

	var detectedLangs []string

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		trimmed := strings.TrimPrefix(name, "active.")
		langCode := strings.TrimSuffix(trimmed, ".json")

		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		detectedLangs = append(detectedLangs, langCode)

		path := "locales/" + name
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
		} else {
			slog.Debug(config.MsgLocaleLoaded,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyLang, langCode,
				config.LogKeyFile, name,
			)
		}
	}

	app.SupportedLanguages = detectedLangs
	app.I18nBundle = bundle
	app.UpdateLocalizer()
}

// UpdateLocalizer refreshes the translator based on the user's language preference.
func (app *DateSpanApp) UpdateLocalizer() {
	lang := app.Preferences.String(config.PrefLanguage)
	if lang == "" {
		lang = config.DefaultLanguage
	}
	app.Localizer = i18n.NewLocalizer(app.I18nBundle, lang)
}

// GetMsg is a helper to translate a key safely.
func (app *DateSpanApp) GetMsg(key string) string {
	if app.Localizer == nil {
		return key
	}
	msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// CountMsg translates a pluralized key for the given count.
func (app *DateSpanApp) CountMsg(key string, count int) string {
	if app.Localizer != nil {
		msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    key,
			TemplateData: map[string]interface{}{"Count": count},
			PluralCount:  count,
		})
		if err == nil && msg != "" {
			return msg
		}
	}
	return strconv.Itoa(count)
}

// MonthName returns the localized name of a calendar month.
func (app *DateSpanApp) MonthName(m time.Month) string {
	key := config.TKeyMonthPrefix + strconv.Itoa(int(m))
	name := app.GetMsg(key)
	if name == key {
		return m.String()
	}
	return name
}

// MonthNames returns all twelve localized month names, January first.
// The flexible parser uses this table to recognize textual months typed in
// the active language.
func (app *DateSpanApp) MonthNames() []string {
	names := make([]string, config.MonthsInYear)
	for m := time.January; m <= time.December; m++ {
		names[int(m)-1] = app.MonthName(m)
	}
	return names
}

// WeekdayName returns the localized weekday name, with Monday = 1.
func (app *DateSpanApp) WeekdayName(day int) string {
	key := config.TKeyWeekdayPrefix + strconv.Itoa(day)
	name := app.GetMsg(key)
	if name == key {
		// Monday = 1 maps onto time.Weekday's Sunday = 0 numbering.
		return time.Weekday(day % config.WeekDays).String()
	}
	return name
}

// WeekdayShort returns the abbreviated localized weekday name, Monday = 1.
func (app *DateSpanApp) WeekdayShort(day int) string {
	key := config.TKeyWeekdayShortPrefix + strconv.Itoa(day)
	name := app.GetMsg(key)
	if name == key {
		return time.Weekday(day % config.WeekDays).String()[:3]
	}
	return name
}

// FormatDate renders a date with the locale's long pattern, falling back to
// the fixed numeric display format.
func (app *DateSpanApp) FormatDate(t time.Time) string {
	if app.Localizer != nil {
		msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
			MessageID: config.TKeyFormatDate,
			TemplateData: map[string]interface{}{
				"Day":   fmt.Sprintf("%02d", t.Day()),
				"Month": app.MonthName(t.Month()),
				"Year":  t.Year(),
			},
		})
		if err == nil && msg != "" {
			return msg
		}
	}
	return t.Format(config.DateFormatDisplay)
}

package config

import "io/fs"

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Datespan"
	AppID       = "com.github.tartampluch.go-datespan"
	LogFileName = "app.log"
	IconFile    = "Icon.png"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the log file.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating the cache directory.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth     = 520
	MainWindowHeight    = 560
	SettingsWindowWidth = 400

	// Preference Keys
	PrefLanguage = "language"
	PrefLastRun  = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
// The actual list is re-detected from the embedded locale files at startup.
var SupportedLanguages = []string{"en", "ro"}

// -----------------------------------------------------------------------------
// Date Input Layouts
// -----------------------------------------------------------------------------

// InputDateLayouts is the ordered list of accepted text formats.
// Order matters: an ambiguous string resolves to the first layout that
// parses, so day-first layouts precede year-first ones. The two
// textual-month layouts work on input whose localized month name has
// already been substituted with its English equivalent by the parser.
var InputDateLayouts = []string{
	"02.01.2006", // dd.MM.yyyy
	"02-01-2006", // dd-MM-yyyy
	"02/01/2006", // dd/MM/yyyy
	"2.1.2006",   // d.M.yyyy
	"2-1-2006",   // d-M-yyyy
	"2/1/2006",   // d/M/yyyy
	"02 January 2006",
	"2 January 2006",
	"2006-01-02",
	"2006/01/02",
}

// -----------------------------------------------------------------------------
// Display Formats & Calendar Layout
// -----------------------------------------------------------------------------

const (
	// DateFormatDisplay is the fallback when no localized pattern is available.
	DateFormatDisplay = "02.01.2006"

	// DateFormatEntry pre-fills the text entry after a calendar pick.
	DateFormatEntry = "02.01.2006"

	PlaceholderDate = "dd.mm.yyyy"

	WeekDays     = 7
	CalendarRows = 6
	MonthsInYear = 12
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle      = "win_title"
	TKeyWinSettings   = "win_settings_title"
	TKeyBtnSearch     = "btn_search"
	TKeyBtnPickDate   = "btn_pick_date"
	TKeyBtnPrevWeek   = "btn_prev_week"
	TKeyBtnToday      = "btn_today"
	TKeyBtnNextWeek   = "btn_next_week"
	TKeyBtnSave       = "btn_save"
	TKeyBtnCancel     = "btn_cancel"
	TKeyLblSelected   = "lbl_selected_date"
	TKeyLblToday      = "lbl_today"
	TKeyLblElapsed    = "lbl_elapsed"
	TKeyLblYears      = "lbl_years"
	TKeyLblMonths     = "lbl_months"
	TKeyLblDays       = "lbl_days"
	TKeyLblTotalWeeks = "lbl_total_weeks"
	TKeyLblTotalDays  = "lbl_total_days"
	TKeyLblISOWeek    = "lbl_iso_week"
	TKeyLblYearWeeks  = "lbl_year_weeks"
	TKeyLblFuture     = "lbl_future_date"
	TKeyLblLanguage   = "lbl_language"
	TKeyHelpLanguage  = "help_language"
	TKeyLblFooter     = "lbl_footer"
	TKeyErrInvalid    = "err_invalid_date"
	TKeyFormatDate    = "format_date_long"

	// Month names, indexed 1..12 (TKeyMonthPrefix + strconv.Itoa(m)).
	TKeyMonthPrefix = "month_"

	// Weekday names, indexed 1..7 with Monday = 1.
	TKeyWeekdayPrefix      = "weekday_"
	TKeyWeekdayShortPrefix = "weekday_short_"
)

// -----------------------------------------------------------------------------
// Default Values
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrDateParse     = "unable to parse date"
	ErrLogFile       = "failed to open log file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrCreateDir     = "could not create app cache dir"
	ErrAppFailed     = "application failed unexpectedly"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
)

// -----------------------------------------------------------------------------
// Fallbacks
// -----------------------------------------------------------------------------

const (
	FallbackErrInvalid = "Invalid date. Please use a valid format."
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgDateSelected  = "Date selected"
	MsgDateRejected  = "Rejected invalid date input"
	MsgWeekShift     = "Week window shifted"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyDate      = "date"
	LogKeySource    = "source"
	LogKeyOffset    = "offset_days"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompUISet  = "ui_settings"
	CompMain   = "main"
	CompI18n   = "i18n"
	CompPicker = "picker"
)

// -----------------------------------------------------------------------------
// Input Sources (for selection logging)
// -----------------------------------------------------------------------------

const (
	SourceEntry  = "entry"
	SourcePicker = "picker"
	SourceGrid   = "grid"
	SourceNav    = "nav"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)

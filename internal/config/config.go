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
	AppName          = "Go Contacts"
	AppDescription   = "An interactive address book assistant for the terminal."
	AppID            = "com.github.tartampluch.go-contacts"
	AppDirName       = "go-contacts"
	LogFileName      = "app.log"
	SettingsFileName = "config.yaml"
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
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI & Version Output
// -----------------------------------------------------------------------------

const (
	MsgVersionOutput = "%s version %s (%s/%s)"
)

// -----------------------------------------------------------------------------
// Environment Variables
// -----------------------------------------------------------------------------

const (
	EnvLanguage = "GOCONTACTS_LANG"
	EnvNoColor  = "GOCONTACTS_NO_COLOR"
)

// -----------------------------------------------------------------------------
// Interpreter Commands & Argument Hints
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdRemovePhone  = "remove-phone"
	CmdDelete       = "delete"
	CmdImport       = "import"
	CmdExport       = "export"
	CmdCalendar     = "calendar"
	CmdHelp         = "help"
	CmdClose        = "close"
	CmdExit         = "exit"

	ArgName     = "[name]"
	ArgPhone    = "[phone]"
	ArgOldPhone = "[old_phone]"
	ArgNewPhone = "[new_phone]"
	ArgDate     = "[date]"
	ArgPath     = "[path]"

	// Usage listing layout
	HintIndent     = "\t"
	FormatHintLine = "\t%s %s"
	FormatHintBare = "\t%s"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyMsgWelcome        = "msg_welcome"
	TKeyMsgPrompt         = "msg_prompt"
	TKeyMsgGoodbye        = "msg_goodbye"
	TKeyMsgExiting        = "msg_exiting"
	TKeyMsgEmptyInput     = "msg_empty_input"
	TKeyMsgHello          = "msg_hello"
	TKeyMsgContactAdded   = "msg_contact_added"
	TKeyMsgPhoneAdded     = "msg_phone_added"
	TKeyMsgPhoneExists    = "msg_phone_exists"
	TKeyMsgContactMissing = "msg_contact_not_found"
	TKeyMsgOldPhoneMiss   = "msg_old_phone_missing"
	TKeyMsgNewPhoneExists = "msg_new_phone_exists"
	TKeyMsgPhoneUpdated   = "msg_phone_updated" // Requires Old, New, Name
	TKeyMsgPhoneRemoved   = "msg_phone_removed"
	TKeyMsgContactDeleted = "msg_contact_deleted"
	TKeyMsgBirthdayAdded  = "msg_birthday_added" // Requires Name
	TKeyMsgBirthdayUnset  = "msg_birthday_not_set"
	TKeyMsgNoUpcoming     = "msg_no_upcoming"
	TKeyMsgUpcomingEntry  = "msg_upcoming_entry" // Requires Name, Actual, Congratulation
	TKeyMsgBookEmpty      = "msg_book_empty"
	TKeyMsgNothingExport  = "msg_nothing_to_export"
	TKeyMsgImported       = "msg_imported"      // Requires Imported, Processed, Skipped
	TKeyMsgImportFailed   = "msg_import_failed" // Requires Reason
	TKeyMsgAvailable      = "msg_available_commands"
	TKeyMsgUsage          = "msg_usage" // Requires Command, Args

	TKeyErrInvalidCommand = "err_invalid_command"
	TKeyErrInvalidArgs    = "err_invalid_args"
	TKeyErrInvalidArg     = "err_invalid_argument" // Requires Reason
	TKeyErrUnexpected     = "err_unexpected"

	TKeyEvtSummaryAge = "event_summary_age" // Requires Name, Age
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"

	// UpcomingWindowDays is the congratulation lookahead, today inclusive.
	UpcomingWindowDays = 7

	UIDSalt = "go-contacts-v1-" // Salt for deterministic UID generation

	// Demo seeding
	SeedPhonePattern = "##########"
	SeedBirthYearMin = 1950
	SeedMaxAttempts  = 100

	// ImportErrorLimit caps consecutive vCard decode failures; it turns a
	// stuck reader into an error instead of a spin.
	ImportErrorLimit = 100
)

// SupportedLanguages defines the list of shipped UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "uk"}

// -----------------------------------------------------------------------------
// Terminal Colors (ANSI)
// -----------------------------------------------------------------------------

const (
	ColorError  = "1" // red
	ColorPrompt = "3" // yellow
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Contacts//Exchange//EN"
	ICalCalName = "Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "gocontacts"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"
	VCardTEL  = "TEL"
)

// -----------------------------------------------------------------------------
// Data Formats & Validation
// -----------------------------------------------------------------------------

const (
	// DateFormatBirthday is the only format users see (DD.MM.YYYY).
	DateFormatBirthday = "02.01.2006"

	// Date layouts used for vCard BDAY fields
	DateFormatVCardDash  = "2006-01-02"
	DateFormatVCardBasic = "20060102"

	// PhonePattern matches exactly ten decimal digits.
	PhonePattern = `^\d{10}$`

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"
)

// -----------------------------------------------------------------------------
// Display Formats
// -----------------------------------------------------------------------------

const (
	FormatRecord   = "Contact name: %s, birthday: %s, phones: %s"
	BirthdayNotSet = "not set"
	PhoneSeparator = "; "
)

// -----------------------------------------------------------------------------
// Error Messages (Domain, shown verbatim to the operator)
// -----------------------------------------------------------------------------

const (
	ErrPhoneFormat     = "Wrong phone number was passed %s, expected format 10 digits: 0123456789"
	ErrDateFormat      = "Invalid date format. Use DD.MM.YYYY"
	ErrNameEmpty       = "Contact name must not be empty"
	ErrPhoneExists     = "Phone number %s already exists"
	ErrPhoneNotFound   = "Phone number %s was not found"
	ErrContactNotFound = "Contact %s was not found"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrVCardParse    = "failed to parse vCard stream"
	ErrVCardEncode   = "failed to encode vCard data"
	ErrICalEncode    = "failed to encode iCalendar data"
	ErrDateParse     = "unable to parse date"
	ErrImportOpen    = "failed to open import file"
	ErrLogFile       = "failed to open log file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrConfigDir     = "could not determine user config dir"
	ErrCreateDir     = "could not create app cache dir"
	ErrAppFailed     = "application failed unexpectedly"
	ErrCommandFailed = "command execution failed"
	ErrSettingsRead  = "failed to read settings file"
	ErrSettingsParse = "failed to parse settings file"
	ErrEnvBool       = "invalid boolean environment override"
	ErrLangEmpty     = "settings: language must not be empty"
	ErrSeedNegative  = "settings: seed count must not be negative"
	ErrSeedNames     = "seed: unable to generate a unique contact name"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
	ErrLocNotInit    = "localizer not initialized"
)

// -----------------------------------------------------------------------------
// Log Messages & Fallbacks
// -----------------------------------------------------------------------------

const (
	MsgAppStarting     = "Starting application"
	MsgAppStop         = "Application stopped gracefully"
	MsgCtxCancel       = "Context cancelled, leaving command loop"
	MsgInputClosed     = "Input stream closed"
	MsgCommandRun      = "Executing command"
	MsgSkippedCard     = "Skipping malformed vCard"
	MsgSkippedDate     = "Skipping invalid date format"
	MsgSkippedPhone    = "Skipping invalid phone number"
	MsgSkippedContact  = "Skipping card for existing or unnamed contact"
	MsgImportDone      = "vCard import finished"
	MsgExportDone      = "vCard export finished"
	MsgGenSuccess      = "Calendar generation successful"
	MsgSeedDone        = "Demo contacts seeded"
	MsgSettingsLoaded  = "Settings loaded"
	MsgSettingsDefault = "Settings file not found, using defaults"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleBadName   = "Skipping malformed locale filename"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
	MsgLogWarning      = "Warning: %s at %s: %v\n"

	// FallbackSummaryAge is used when no localized calendar summary is wired.
	FallbackSummaryAge = "Birthday: %s (%d)"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	// Using a constant avoids hardcoded magic strings in the exchange logic.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
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
	LogKeyName      = "name"
	LogKeyCommand   = "command"
	LogKeyArgs      = "args"
	LogKeyPath      = "path"
	LogKeyCount     = "count"
	LogKeyStats     = "stats"
	LogKeyTotal     = "total_cards"
	LogKeyImported  = "imported"
	LogKeySkipped   = "skipped"
	LogKeyDOB       = "date_of_birth"
	LogKeySizeBytes = "size_bytes"
	LogKeyDuration  = "duration_ms"

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
	CompMain     = "main"
	CompBot      = "bot"
	CompContacts = "contacts"
	CompExchange = "exchange"
	CompConfig   = "config"
	CompSeed     = "seed"
	CompI18n     = "i18n"
)

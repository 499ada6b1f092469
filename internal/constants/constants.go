package constants

import "time"

// Frequency represents how often a habit is intended to be done.
// Informational only: streak math always operates on consecutive calendar days.
type Frequency string

// Priority represents the priority of a todo item.
type Priority string

const (
	AppName            = "lifedeck"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/lifedeck/lifedeck.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DefaultCompletionWindowDays is the window for the rolling completion rate.
	DefaultCompletionWindowDays = 30

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "lifedeck-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "lifedeck-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.avwray.lifedeck"

	// Habit frequency constants
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"

	// Todo priority constants
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"

	// Expense defaults
	DefaultExpenseCategory = "General"
	DefaultCurrency        = "USD"
)

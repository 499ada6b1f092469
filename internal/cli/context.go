package cli

import (
	"time"

	"github.com/avwray/lifedeck/internal/backup"
	"github.com/avwray/lifedeck/internal/logger"
	"github.com/avwray/lifedeck/internal/models"
	"github.com/avwray/lifedeck/internal/storage"
	"github.com/avwray/lifedeck/internal/utils"
)

type Context struct {
	Store storage.Provider
}

// Now returns the current time in the configured timezone, falling back to
// local time when settings are missing or the timezone is invalid.
func (c *Context) Now() time.Time {
	settings, err := c.Store.GetSettings()
	if err != nil || settings.Timezone == "" {
		return time.Now()
	}
	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		logger.Warn("Invalid timezone in settings, using local time", "timezone", settings.Timezone)
		return time.Now()
	}
	return now
}

// Today returns the current calendar day in the configured timezone.
func (c *Context) Today() string {
	return c.Now().Format("2006-01-02")
}

// Settings loads settings, substituting defaults when none are stored yet.
func (c *Context) Settings() models.Settings {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return models.Settings{}
	}
	return settings
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

package utils

import (
	"fmt"
	"time"

	"github.com/avwray/lifedeck/internal/constants"
)

// Today returns the current calendar day truncated to midnight in the local
// timezone. Analytics functions take this as an explicit parameter so tests
// can pin the reference day.
func Today() time.Time {
	return Midnight(time.Now())
}

// Midnight truncates t to the start of its calendar day, preserving location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDay parses a date string in the standard format (YYYY-MM-DD).
func ParseDay(day string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", day, err)
	}
	return t, nil
}

// FormatDay formats t as a date string in the standard format (YYYY-MM-DD).
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// DaysBetween returns the number of calendar days from a's date to b's date.
// Each operand contributes the calendar day of its own location, so a
// UTC-midnight log date and a zoned wall-clock time compare by the dates a
// user actually sees.
func DaysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// GetTodayInTimezone returns today's date string (YYYY-MM-DD) in the specified timezone.
func GetTodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return now.Format(constants.DateFormat), nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

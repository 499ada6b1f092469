package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/avwray/lifedeck/internal/constants"
)

// Frequency checks a habit frequency value, returning the normalized form.
func Frequency(s string) (constants.Frequency, error) {
	switch constants.Frequency(strings.ToLower(strings.TrimSpace(s))) {
	case constants.FrequencyDaily:
		return constants.FrequencyDaily, nil
	case constants.FrequencyWeekly:
		return constants.FrequencyWeekly, nil
	case constants.FrequencyMonthly:
		return constants.FrequencyMonthly, nil
	}
	return "", fmt.Errorf("invalid frequency %q: must be daily, weekly, or monthly", s)
}

// Priority checks a todo priority value, returning the normalized form.
func Priority(s string) (constants.Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return constants.PriorityHigh, nil
	case "medium":
		return constants.PriorityMedium, nil
	case "low":
		return constants.PriorityLow, nil
	}
	return "", fmt.Errorf("invalid priority %q: must be high, medium, or low", s)
}

// Day checks a YYYY-MM-DD date string.
func Day(s string) error {
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return nil
}

// TimeOfDay checks an HH:MM time string.
func TimeOfDay(s string) error {
	if _, err := time.Parse(constants.TimeFormat, s); err != nil {
		return fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return nil
}

// Amount checks a monetary amount.
func Amount(v float64) error {
	if v <= 0 {
		return fmt.Errorf("amount must be positive, got %.2f", v)
	}
	return nil
}

// Title checks that a title is non-empty after trimming.
func Title(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	return nil
}

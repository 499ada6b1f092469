// Package keyring stores the PostgreSQL connection string in the OS secret
// store, keyed by app name. Credentials never touch the config file or the
// command line this way.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/avwray/lifedeck/internal/constants"
)

var (
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable wraps platform errors from the secret store
	// itself (no dbus session, locked keychain, headless host).
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetConnectionString reads the stored connection string. A missing entry is
// ErrNotFound; anything else is reported as a keyring availability problem.
func GetConnectionString() (string, error) {
	connStr, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	switch {
	case err == nil:
		return connStr, nil
	case errors.Is(err, keyring.ErrNotFound):
		return "", ErrNotFound
	default:
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
}

// SetConnectionString stores connStr, replacing any previous entry.
func SetConnectionString(connStr string) error {
	if connStr == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, connStr); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// DeleteConnectionString removes the stored connection string.
func DeleteConnectionString() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, keyring.ErrNotFound):
		return ErrNotFound
	default:
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
}

// IsAvailable checks the secret store with a throwaway read. An empty result
// still means the keyring itself answered.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "availability-check")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

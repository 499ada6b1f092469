package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/avwray/lifedeck/internal/cli"
	"github.com/avwray/lifedeck/internal/keyring"
	"github.com/avwray/lifedeck/internal/storage"
)

// ConfigCmd manages database connection credentials in the OS keyring.
type ConfigCmd struct {
	SetConnection   ConfigSetConnectionCmd   `cmd:"" name:"set-connection" help:"Store a PostgreSQL connection string in the OS keyring."`
	GetConnection   ConfigGetConnectionCmd   `cmd:"" name:"get-connection" help:"Show the stored connection string (password masked)."`
	ClearConnection ConfigClearConnectionCmd `cmd:"" name:"clear-connection" help:"Remove the stored connection string."`
	KeyringStatus   ConfigKeyringStatusCmd   `cmd:"" name:"keyring-status" help:"Check OS keyring availability."`
}

type ConfigSetConnectionCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in keyring"`
}

func (cmd *ConfigSetConnectionCmd) Run(ctx *cli.Context) error {
	if !storage.IsPostgresConnString(cmd.ConnectionString) &&
		!strings.Contains(cmd.ConnectionString, "host=") {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if storage.HasEmbeddedCredentials(cmd.ConnectionString) {
		// The keyring is encrypted, so storing credentials there is fine.
		fmt.Println("⚠️  Connection string contains embedded credentials.")
		fmt.Println("   It will be stored as-is in the encrypted OS keyring.")
	}

	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}

	fmt.Println("✓ Connection string stored successfully in OS keyring")
	return nil
}

type ConfigGetConnectionCmd struct{}

func (cmd *ConfigGetConnectionCmd) Run(ctx *cli.Context) error {
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring. Use 'lifedeck config set-connection' to store one")
		}
		return fmt.Errorf("failed to retrieve connection string from keyring: %w", err)
	}

	fmt.Println("Connection string retrieved from keyring:")
	fmt.Println(maskPassword(connStr))
	return nil
}

type ConfigClearConnectionCmd struct{}

func (cmd *ConfigClearConnectionCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}

	fmt.Println("✓ Connection string deleted from OS keyring")
	return nil
}

type ConfigKeyringStatusCmd struct{}

func (cmd *ConfigKeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		fmt.Println("❌ OS keyring is not available on this system")
		return errors.New("keyring unavailable")
	}

	fmt.Println("✓ OS keyring is available")
	_, err := keyring.GetConnectionString()
	if err == nil {
		fmt.Println("✓ Connection string is stored in keyring")
	} else if errors.Is(err, keyring.ErrNotFound) {
		fmt.Println("ℹ No connection string stored in keyring")
	}
	return nil
}

// maskPassword masks passwords in connection strings for display
func maskPassword(connStr string) string {
	if storage.IsPostgresConnString(connStr) {
		if idx := strings.Index(connStr, "://"); idx != -1 {
			remaining := connStr[idx+3:]
			if atIdx := strings.LastIndex(remaining, "@"); atIdx != -1 {
				userInfo := remaining[:atIdx]
				if colonIdx := strings.Index(userInfo, ":"); colonIdx != -1 {
					return connStr[:idx+3] + userInfo[:colonIdx] + ":****" + connStr[idx+3+atIdx:]
				}
			}
		}
		return connStr
	}

	if strings.Contains(connStr, "password=") {
		parts := strings.Fields(connStr)
		var masked []string
		for _, part := range parts {
			if strings.HasPrefix(part, "password=") {
				masked = append(masked, "password=****")
			} else {
				masked = append(masked, part)
			}
		}
		return strings.Join(masked, " ")
	}

	return connStr
}

package backups

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avwray/lifedeck/internal/backup"
	"github.com/avwray/lifedeck/internal/cli"
	"github.com/avwray/lifedeck/internal/constants"
	"github.com/avwray/lifedeck/internal/storage"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Printf("✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

func (c *BackupCreateCmd) Validate(ctx *cli.Context) error {
	return ensureFileBackend(ctx)
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.BackupDir())
		return nil
	}

	fmt.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		timestamp := b.Timestamp.Format("2006-01-02 15:04:05")
		fmt.Printf("  %s  %s  (%.1f KB)\n", timestamp, filepath.Base(b.Path), sizeKB)
	}
	fmt.Printf("\nBackup directory: %s\n", mgr.BackupDir())

	return nil
}

func (c *BackupListCmd) Validate(ctx *cli.Context) error {
	return ensureFileBackend(ctx)
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	backupPath, err := resolveBackupPath(mgr, c.BackupFile)
	if err != nil {
		return err
	}

	fmt.Println("⚠️  WARNING: This will replace your current database with the backup.")
	fmt.Println("⚠️  IMPORTANT: All lifedeck processes must be stopped before restore.")
	fmt.Println("A backup of your current database will be created before restoring.")
	fmt.Printf("\nRestore from: %s\n", backupPath)

	if !c.Yes {
		fmt.Print("Continue? [y/N]: ")
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Restore cancelled.")
			return nil
		}
	}

	if err := ctx.Store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close database connection: %v\n", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Println("✓ Database restored successfully!")
	return nil
}

func (c *BackupRestoreCmd) Validate(ctx *cli.Context) error {
	return ensureFileBackend(ctx)
}

// resolveBackupPath locates a backup by absolute path, relative path, or bare
// filename inside the backup directory.
func resolveBackupPath(mgr *backup.Manager, name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); os.IsNotExist(err) {
			return "", fmt.Errorf("backup file not found: %s", name)
		}
		return name, nil
	}

	if _, err := os.Stat(name); err == nil {
		absPath, err := filepath.Abs(name)
		if err != nil {
			return "", fmt.Errorf("failed to resolve backup path: %w", err)
		}
		return absPath, nil
	}

	possiblePath := filepath.Join(mgr.BackupDir(), name)
	if _, err := os.Stat(possiblePath); err == nil {
		return possiblePath, nil
	}
	return "", fmt.Errorf("backup file not found: tried current directory and %s", mgr.BackupDir())
}

func ensureFileBackend(ctx *cli.Context) error {
	if storage.IsPostgresConnString(ctx.Store.GetConfigPath()) {
		return fmt.Errorf("file backups are only supported with SQLite storage; use pg_dump for PostgreSQL")
	}
	return nil
}

package backup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/avwray/lifedeck/internal/constants"
	"github.com/avwray/lifedeck/internal/logger"
)

// Info describes a single backup file on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager creates, lists, rotates, and restores SQLite database backups.
// Backups live in a "backups" directory next to the database file.
type Manager struct {
	dbPath    string
	backupDir string
}

func NewManager(dbPath string) *Manager {
	configDir := filepath.Dir(dbPath)
	return &Manager{
		dbPath:    dbPath,
		backupDir: filepath.Join(configDir, constants.BackupDirName),
	}
}

func (m *Manager) BackupDir() string {
	return m.backupDir
}

// CreateBackup snapshots the database into the backup directory and rotates
// out the oldest backups beyond the retention limit.
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.dbPath); os.IsNotExist(err) {
		return "", fmt.Errorf("database does not exist: %s", m.dbPath)
	}

	backupPath, err := m.uniqueBackupPath()
	if err != nil {
		return "", err
	}

	if err := m.snapshot(backupPath); err != nil {
		return "", fmt.Errorf("failed to backup database: %w", err)
	}

	if !skipRotation {
		if err := m.rotate(); err != nil {
			logger.Warn("failed to rotate old backups", "error", err)
		}
	}

	return backupPath, nil
}

// uniqueBackupPath generates a timestamped filename, falling back to second
// precision and then a numeric counter on collisions.
func (m *Manager) uniqueBackupPath() (string, error) {
	timestamp := time.Now().Format("20060102-1504")
	backupPath := filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+constants.BackupFileSuffix)
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return backupPath, nil
	}

	timestamp = time.Now().Format("20060102-150405")
	backupPath = filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+constants.BackupFileSuffix)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			return backupPath, nil
		}
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		name := fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, timestamp, counter, constants.BackupFileSuffix)
		backupPath = filepath.Join(m.backupDir, name)
	}
}

// snapshot copies the database using VACUUM INTO, which produces a clean
// consistent copy even while other connections hold the file open. Falls back
// to a plain file copy on SQLite builds without VACUUM INTO support.
func (m *Manager) snapshot(destPath string) error {
	srcDB, err := sql.Open("sqlite", m.dbPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer srcDB.Close()

	var count int
	if err := srcDB.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := srcDB.Exec("VACUUM INTO ?", destPath); err != nil {
		srcDB.Close()
		return copyFile(m.dbPath, destPath)
	}
	return nil
}

// ListBackups returns all backups in the backup directory, newest first.
func (m *Manager) ListBackups() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
			continue
		}

		timestamp, ok := parseBackupTimestamp(name)
		if !ok {
			continue
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, Info{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

// parseBackupTimestamp extracts the creation time from a backup filename,
// tolerating an optional trailing collision counter.
func parseBackupTimestamp(name string) (time.Time, bool) {
	s := strings.TrimPrefix(name, constants.BackupFilePrefix)
	s = strings.TrimSuffix(s, constants.BackupFileSuffix)

	parts := strings.Split(s, "-")
	if len(parts) > 2 {
		last := parts[len(parts)-1]
		if len(last) != 4 && len(last) != 6 && isDigits(last) {
			s = strings.Join(parts[:len(parts)-1], "-")
		}
	}

	if ts, err := time.Parse("20060102-1504", s); err == nil {
		return ts, true
	}
	if ts, err := time.Parse("20060102-150405", s); err == nil {
		return ts, true
	}
	return time.Time{}, false
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

func (m *Manager) rotate() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) <= constants.MaxBackups {
		return nil
	}

	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// RestoreBackup replaces the live database with a backup. The current database
// is backed up first, and the swap happens through an atomic rename.
func (m *Manager) RestoreBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	if err := m.verify(backupPath); err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	if _, err := os.Stat(m.dbPath); err == nil {
		currentBackup, err := m.createBackup(true)
		if err != nil {
			return fmt.Errorf("failed to backup current database before restore: %w", err)
		}
		logger.Info("backed up current database", "file", filepath.Base(currentBackup))
	}

	tempPath := m.dbPath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}

	if err := os.Rename(tempPath, m.dbPath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			logger.Warn("failed to remove temporary file", "path", tempPath, "error", removeErr)
		}
		return fmt.Errorf("failed to restore database: %w", err)
	}

	return nil
}

func (m *Manager) verify(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}
	return destFile.Sync()
}

// Package notifier delivers desktop notifications through the lifedeck tray
// companion. The tray app writes a lockfile ("port|pid|secret") into its
// config dir on startup; a notification is an authenticated POST to the local
// port named there, after confirming the PID really belongs to the tray app.
package notifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/avwray/lifedeck/internal/constants"
)

// Swappable in tests.
var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

type Notifier struct{}

func New() *Notifier {
	return &Notifier{}
}

// WebhookPayload is the body the tray app expects.
type WebhookPayload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

// Notify sends text to the tray app. It fails when the tray app is not
// running; callers treat that as a skipped delivery, not a fatal condition.
func (n *Notifier) Notify(text string) error {
	dir, err := GetTrayAppConfigDir()
	if err != nil {
		return err
	}

	port, secret, err := findAndValidateTrayProcess(filepath.Join(dir, constants.NotifierLockfileName))
	if err != nil {
		return err
	}

	return sendNotification(port, secret, WebhookPayload{
		Text:       text,
		DurationMs: constants.NotificationDurationMs,
	})
}

// GetTrayAppConfigDir resolves where the tray app keeps its lockfile. The
// tray app's own settings.json may point the lockfile somewhere else; honor
// that override when present and readable.
func GetTrayAppConfigDir() (string, error) {
	base, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	dir := filepath.Join(base, constants.TrayAppIdentifier)

	if override := lockfileDirOverride(filepath.Join(dir, "settings.json")); override != "" {
		return override, nil
	}
	return dir, nil
}

// lockfileDirOverride reads the tray app's lockfile_dir setting. Any read or
// parse failure means no override.
func lockfileDirOverride(settingsPath string) string {
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return ""
	}
	var store struct {
		Settings struct {
			LockfileDir *string `json:"lockfile_dir"`
		} `json:"settings"`
	}
	if json.Unmarshal(data, &store) != nil || store.Settings.LockfileDir == nil {
		return ""
	}
	return *store.Settings.LockfileDir
}

// trayLock is the parsed lockfile contents.
type trayLock struct {
	port   string
	pid    int
	secret string
}

func parseTrayLock(content []byte) (trayLock, error) {
	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return trayLock{}, errors.New("lockfile is malformed")
	}

	port := strings.TrimSpace(parts[0])
	if port == "" {
		return trayLock{}, errors.New("port in lockfile is empty")
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return trayLock{}, errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return trayLock{}, fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return trayLock{}, errors.New("invalid process ID in lockfile")
	}

	if strings.TrimSpace(parts[2]) == "" {
		return trayLock{}, errors.New("secret in lockfile is empty")
	}

	return trayLock{port: port, pid: pid, secret: parts[2]}, nil
}

// findAndValidateTrayProcess reads the lockfile and confirms the PID it names
// is a live tray-app process. A stale lockfile left by a crashed tray app,
// or a reused PID, must never receive the secret-bearing request.
func findAndValidateTrayProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", errors.New("lifedeck-tray is not running")
	}

	lock, err := parseTrayLock(content)
	if err != nil {
		return "", "", err
	}

	process, err := findProcessFunc(lock.pid)
	if err != nil || process == nil {
		return "", "", errors.New("lifedeck-tray process not running")
	}
	if !strings.HasPrefix(process.Executable(), "lifedeck-tray") {
		return "", "", fmt.Errorf("process with PID %d is not lifedeck-tray (is %s)", lock.pid, process.Executable())
	}

	return lock.port, lock.secret, nil
}

func sendNotification(port, secret string, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, "http://127.0.0.1:"+port, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Lifedeck-Secret", secret)

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(res.Body)
		return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(msg))
	}
	return nil
}

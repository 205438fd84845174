package debug

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable that enables debug logging.
const EnvVar = "FLOWGRID_DEBUG"

var (
	logFile *os.File
	mu      sync.Mutex
)

// Init opens path for appending and returns a debug-level text logger that
// writes to it. If path is empty, uses "flowgrid-debug.log" in the current
// directory. Calling Init again closes the previous file.
func Init(path string) (*slog.Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		path = "flowgrid-debug.log"
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f

	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), nil
}

// FromEnv calls Init with the path in FLOWGRID_DEBUG. It returns a nil
// logger and no error when the variable is unset.
func FromEnv() (*slog.Logger, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return nil, nil
	}
	return Init(path)
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

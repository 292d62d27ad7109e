package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
// Returns the path to the temp file and a cleanup function.
func setupTestLogger(t *testing.T) (string, func()) {
	t.Helper()
	Reset()

	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}

	return logPath, func() {
		Reset()
	}
}

func TestInfo(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	// Logging should not panic
	Info("test message")
	Info("test with %s", "argument")
	Info("test with %d and %s", 42, "string")
}

func TestClose(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	// Close should not panic
	Close()
}

func TestLogFile_Exists(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	testMsg := "test-unique-string-12345"
	Info("%s", testMsg)

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if !strings.Contains(string(content), testMsg) {
		t.Error("Log file should contain the logged message")
	}
}

func TestDebug_SuppressedAtInfoLevel(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	SetDebug(false)
	Debug("hidden-debug-marker")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if strings.Contains(string(content), "hidden-debug-marker") {
		t.Error("Debug message should be suppressed at info level")
	}

	SetDebug(true)
	defer SetDebug(false)
	Debug("visible-debug-marker")

	content, err = os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if !strings.Contains(string(content), "visible-debug-marker") {
		t.Error("Debug message should be written at debug level")
	}
}

func TestComponentLogger(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	log := ComponentLogger("store")
	if log == nil {
		t.Fatal("ComponentLogger returned nil")
	}
	log.Info("component message")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if !strings.Contains(string(content), "component=store") {
		t.Error("Log file should contain the component attribute")
	}
}

func TestLog_Concurrent(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			Info("concurrent message %d", n)
		}(i)
	}
	wg.Wait()
}

func TestReset_AllowsReinit(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	cleanup()

	tmpDir := t.TempDir()
	newPath := filepath.Join(tmpDir, "second.log")
	if err := Init(newPath); err != nil {
		t.Fatalf("Init after Reset failed: %v", err)
	}
	defer Reset()

	Info("after reset")
	if _, err := os.Stat(newPath); err != nil {
		t.Errorf("Expected new log file to exist: %v", err)
	}
}

// Package config persists UI preferences as string key-value pairs in a
// JSON file under ~/.lurk. Storage being unavailable is never an error for
// callers: reads fall back to defaults and writes are dropped silently.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/lurk-sh/lurk/internal/logger"
)

// Persisted preference keys.
const (
	KeyLeftSidebarOpen = "ui.leftSidebarOpen"
	KeyLeftSidebar     = "layout.leftSidebar"
	KeyRightPanel      = "layout.rightPanel"
	KeySidebarChats    = "sidebar.chats"
	KeySidebarFeeds    = "sidebar.feeds"
	KeySidebarFolders  = "sidebar.folders"
)

// Settings holds the persisted preference map.
type Settings struct {
	mu       sync.RWMutex
	values   map[string]string
	filePath string
}

// settingsDir returns the path to the settings directory
func settingsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".lurk"), nil
}

// SettingsPath returns the path to the settings file
func SettingsPath() (string, error) {
	dir, err := settingsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

// Load reads the settings from the default path. Read failures degrade to an
// empty in-memory settings map; they never propagate.
func Load() *Settings {
	path, err := SettingsPath()
	if err != nil {
		logger.Warn("Settings: cannot resolve settings path: %v", err)
		return &Settings{values: map[string]string{}}
	}
	return LoadFrom(path)
}

// LoadFrom reads the settings from an explicit path. Missing or unreadable
// files produce an empty settings map bound to that path.
func LoadFrom(path string) *Settings {
	s := &Settings{
		values:   map[string]string{},
		filePath: path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s
	}
	if err != nil {
		logger.Warn("Settings: read failed, using defaults: %v", err)
		return s
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		logger.Warn("Settings: parse failed, using defaults: %v", err)
		s.values = map[string]string{}
	}
	if s.values == nil {
		s.values = map[string]string{}
	}
	return s
}

// Get returns the stored value for key and whether it was present.
func (s *Settings) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores a value and persists the settings file. A write failure keeps
// the in-memory value and is only logged.
func (s *Settings) Set(key, value string) {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()

	if err := s.save(); err != nil {
		logger.Warn("Settings: persist of %s failed: %v", key, err)
	}
}

// Bool returns the stored boolean for key, or def when absent or malformed.
func (s *Settings) Bool(key string, def bool) bool {
	v, ok := s.Get(key)
	if !ok {
		return def
	}
	switch v {
	case "true":
		return true
	case "false":
		return false
	default:
		return def
	}
}

// SetBool stores a boolean as "true"/"false".
func (s *Settings) SetBool(key string, value bool) {
	s.Set(key, strconv.FormatBool(value))
}

// Int returns the stored integer for key, or def when absent or malformed.
func (s *Settings) Int(key string, def int) int {
	v, ok := s.Get(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// SetInt stores an integer as its decimal string.
func (s *Settings) SetInt(key string, value int) {
	s.Set(key, strconv.Itoa(value))
}

// save writes the settings map to disk
func (s *Settings) save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.filePath == "" {
		return os.ErrNotExist
	}

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0644)
}

package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Settings represents the application configuration persisted to disk.
type Settings struct {
	Server ServerSettings `json:"server"`
	Engine EngineSettings `json:"engine"`
	Cache  CacheSettings  `json:"cache"`
	Search SearchSettings `json:"search"`
	Log    LogConfig      `json:"log"`
}

type ServerSettings struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// EngineSettings configures the external extraction engine binary. The
// cookie file is passed to the engine per call; it is never installed as
// ambient process-wide state.
type EngineSettings struct {
	Path       string `json:"path"`
	CookieFile string `json:"cookieFile"`
}

type CacheSettings struct {
	// FormatTTLHours bounds how long stream/format listings may be served
	// from cache. The media URLs inside them are time-limited signed links.
	FormatTTLHours int `json:"formatTtlHours"`
}

type SearchSettings struct {
	MaxSuggestions int `json:"maxSuggestions"`
}

// LogConfig represents file logging and rotation configuration.
type LogConfig struct {
	File       string `json:"file"`
	Level      string `json:"level"`
	MaxSize    int    `json:"maxSize"`
	MaxAge     int    `json:"maxAge"`
	MaxBackups int    `json:"maxBackups"`
	Compress   bool   `json:"compress"`
}

func DefaultSettings() Settings {
	return Settings{
		Server: ServerSettings{Host: "0.0.0.0", Port: 8080},
		Engine: EngineSettings{Path: "yt-dlp", CookieFile: "cookies.txt"},
		Cache:  CacheSettings{FormatTTLHours: 5},
		Search: SearchSettings{MaxSuggestions: 10},
		Log: LogConfig{
			File:       "cache/logs/ytresolve.log",
			Level:      "info",
			MaxSize:    50, // 50 MB per file
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		},
	}
}

// Manager loads and persists settings to a JSON file.
type Manager struct {
	path string
}

func NewManager(configPath string) *Manager {
	return &Manager{path: configPath}
}

// EnsureDir ensures parent directory exists.
func (m *Manager) EnsureDir() error {
	dir := filepath.Dir(m.path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// Load reads settings from disk or creates defaults if missing. Fields
// introduced after a config file was written are backfilled with defaults.
func (m *Manager) Load() (Settings, error) {
	if m.path == "" {
		return Settings{}, errors.New("config path not set")
	}
	if _, err := os.Stat(m.path); errors.Is(err, fs.ErrNotExist) {
		defaults := DefaultSettings()
		if err := m.Save(defaults); err != nil {
			return Settings{}, err
		}
		return defaults, nil
	}
	f, err := os.Open(m.path)
	if err != nil {
		return Settings{}, err
	}
	defer f.Close()

	var s Settings
	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return Settings{}, err
	}

	if strings.TrimSpace(s.Engine.Path) == "" {
		s.Engine.Path = "yt-dlp"
	}
	if s.Cache.FormatTTLHours <= 0 {
		s.Cache.FormatTTLHours = 5
	}
	if s.Search.MaxSuggestions <= 0 {
		s.Search.MaxSuggestions = 10
	}

	return s, nil
}

// Save writes the provided settings to disk atomically.
func (m *Manager) Save(s Settings) error {
	if m.path == "" {
		return errors.New("config path not set")
	}
	if err := m.EnsureDir(); err != nil {
		return err
	}
	tmp := m.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, m.path)
}

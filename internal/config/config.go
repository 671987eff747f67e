package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Config is the root configuration for wlog, stored in ~/.wlog/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	// Database is the path of the SQLite work log file.
	Database string `json:"database"`
	// LogFile receives the structured application log.
	LogFile string `json:"log_file"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level"`
	// ClearScreen clears the terminal between menus. It has no effect when
	// stdout is not a terminal.
	ClearScreen bool `json:"clear_screen"`
}

const (
	// DefaultDatabase is the work log location relative to the user's home.
	DefaultDatabase = "~/.wlog/worklog.db"
	// DefaultLogFile is the log location relative to the user's home.
	DefaultLogFile = "~/.wlog/wlog.log"
	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		Database:    DefaultDatabase,
		LogFile:     DefaultLogFile,
		LogLevel:    DefaultLogLevel,
		ClearScreen: true,
	}
}

// configTemplate is the annotated config written on first run. Its values
// must stay equal to defaultConfig.
const configTemplate = `// wlog configuration – ~/.wlog/config.json
//
// All settings are optional; the defaults below work out of the box.
{
  // Path of the SQLite work log. A leading ~/ expands to your home directory.
  // Can be overridden per run with: wlog --db <path>
  "database": "~/.wlog/worklog.db",

  // Where the application log is written. Nothing is logged to the terminal.
  "log_file": "~/.wlog/wlog.log",

  // One of "debug", "info", "warn", "error". wlog --verbose forces "debug".
  "log_level": "info",

  // Clear the terminal between menus (ignored when output is not a terminal).
  "clear_screen": true
}
`

// Dir returns the wlog home directory (~/.wlog).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".wlog"), nil
}

// configFilePath returns the path to ~/.wlog/config.json.
func configFilePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// ExpandHome replaces a leading ~/ in path with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/")), nil
}

// Load reads ~/.wlog/config.json and returns it merged over the defaults,
// with ~/ expanded in every path. When the file does not exist yet the
// annotated template is installed and parsed in its place.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		data = []byte(configTemplate)
		if err := install(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, err)
		}
	case err != nil:
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := json.Unmarshal(uncomment(data), &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	return cfg.resolve()
}

// resolve fills settings left empty in the file and expands ~/ in paths.
func (c Config) resolve() (Config, error) {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	paths := []struct {
		dst *string
		def string
	}{
		{&c.Database, DefaultDatabase},
		{&c.LogFile, DefaultLogFile},
	}
	for _, p := range paths {
		if *p.dst == "" {
			*p.dst = p.def
		}
		expanded, err := ExpandHome(*p.dst)
		if err != nil {
			return c, err
		}
		*p.dst = expanded
	}
	return c, nil
}

// uncomment drops every line that starts with // once leading whitespace is
// ignored. Comments after a value on the same line are left alone.
func uncomment(data []byte) []byte {
	lines := bytes.SplitAfter(data, []byte("\n"))
	kept := lines[:0]
	for _, line := range lines {
		if !bytes.HasPrefix(bytes.TrimSpace(line), []byte("//")) {
			kept = append(kept, line)
		}
	}
	return bytes.Join(kept, nil)
}

// install writes the annotated template to path.
func install(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, []byte(configTemplate), 0o600)
}

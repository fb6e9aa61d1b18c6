// Package prefs handles fasttrack user preferences persistence.
// Preferences are stored in ~/.config/fasttrack/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for fasttrack.
type Prefs struct {
	Theme   string `toml:"theme"`
	DataDir string `toml:"data_dir"`
}

const (
	defaultPrefsPath = "~/.config/fasttrack/prefs.toml"
	defaultDataDir   = "~/.local/share/fasttrack"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path, falling back to defaults
// on any failure. A broken prefs file must never keep the tracker from
// starting.
func Load(path string) Prefs {
	defaults := Prefs{Theme: defaultTheme, DataDir: defaultDataDir}

	resolved, err := resolvePath(path)
	if err != nil {
		return defaults
	}

	p := defaults

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p
		}
		return p // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return p // Graceful degradation
	}

	if err := toml.Unmarshal(bytes, &p); err != nil {
		return defaults // Graceful degradation
	}

	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	if strings.TrimSpace(p.DataDir) == "" {
		p.DataDir = defaultDataDir
	}

	return p
}

// Save writes preferences to the given path, creating directories as
// needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

// DBPath returns the SQLite database location inside the data dir.
func (p Prefs) DBPath() string {
	dir, err := expandPath(p.DataDir)
	if err != nil {
		dir, _ = expandPath(defaultDataDir)
	}
	return filepath.Join(dir, "fasttrack.db")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

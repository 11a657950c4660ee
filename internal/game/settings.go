package game

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is the ambient configuration: window, volume, storage, seed.
// Gameplay tuning stays in config.go on purpose.
type Settings struct {
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
	SFXVolume    float64 `yaml:"sfx_volume"`
	ScoreDBPath  string  `yaml:"score_db_path"` // empty = user config dir
	Seed         uint64  `yaml:"seed"`          // 0 = seed from the clock
}

func defaultSettings() Settings {
	return Settings{
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		SFXVolume:    0.58,
	}
}

// DefaultSettingsPath is probed when HARDCORE_SNAKE_CONFIG is unset.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hardcore-snake", "settings.yaml"), nil
}

// LoadSettings reads the YAML settings file. A missing file yields defaults
// without error; a malformed one returns defaults plus the parse error.
func LoadSettings(path string) (Settings, error) {
	cfg := defaultSettings()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return defaultSettings(), fmt.Errorf("settings.yaml: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (s *Settings) normalize() {
	if s.WindowWidth <= 0 {
		s.WindowWidth = WindowWidth
	}
	if s.WindowHeight <= 0 {
		s.WindowHeight = WindowHeight
	}
	s.SFXVolume = clampF(s.SFXVolume, 0, 1)
}

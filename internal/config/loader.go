package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/auragenie/internal/constants"
	"github.com/julianstephens/auragenie/internal/models"
	"github.com/julianstephens/auragenie/internal/theme"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadEnv reads .env files into the process environment. Missing files are
// ignored; variables already set win.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// UserConfigPath is the per-user config file read on every start
func UserConfigPath() (string, error) {
	configDir, err := ExpandHome(constants.DefaultConfigDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, constants.ConfigFileName), nil
}

// Load layers the defaults, the user config file and an optional explicit
// file (in that order) and validates the result. An explicit path that does
// not exist is an error; a missing user file is not.
func Load(explicitPath string) (Config, error) {
	configDir, err := ExpandHome(constants.DefaultConfigDir)
	if err != nil {
		return Config{}, fmt.Errorf("resolve config dir: %w", err)
	}

	cfg := Default(configDir)

	userPath := filepath.Join(configDir, constants.ConfigFileName)
	userCfg, err := loadConfigFromFile(userPath)
	switch {
	case err == nil:
		cfg = mergeConfigs(cfg, userCfg)
	case !errors.Is(err, fs.ErrNotExist):
		return Config{}, fmt.Errorf("error loading user config from %s: %w", userPath, err)
	}

	if explicitPath != "" {
		path, err := ExpandHome(explicitPath)
		if err != nil {
			return Config{}, err
		}
		if path != userPath {
			overlay, err := loadConfigFromFile(path)
			if err != nil {
				return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
			}
			cfg = mergeConfigs(cfg, overlay)
		}
	}

	if cfg.Log.Dir, err = ExpandHome(cfg.Log.Dir); err != nil {
		return Config{}, err
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints and that every theme key names a mood
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := ThemeOverrides(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ThemeOverrides converts the themes section into per-mood overrides
func ThemeOverrides(cfg Config) (map[models.Mood]theme.Override, error) {
	overrides := make(map[models.Mood]theme.Override, len(cfg.Themes))
	for name, tc := range cfg.Themes {
		mood, err := models.ParseMood(name)
		if err != nil {
			return nil, fmt.Errorf("themes: %w", err)
		}
		overrides[mood] = theme.Override{Start: tc.Start, End: tc.End, Accent: tc.Accent}
	}
	return overrides, nil
}

func loadConfigFromFile(filePath string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeConfigs merges 'overlay' config into 'base' config
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.Debug {
		merged.Debug = true
	}

	if overlay.Log.Dir != "" {
		merged.Log.Dir = overlay.Log.Dir
	}
	if overlay.Log.MaxSizeMB != 0 {
		merged.Log.MaxSizeMB = overlay.Log.MaxSizeMB
	}
	if overlay.Log.MaxBackups != 0 {
		merged.Log.MaxBackups = overlay.Log.MaxBackups
	}
	if overlay.Log.MaxAgeDays != 0 {
		merged.Log.MaxAgeDays = overlay.Log.MaxAgeDays
	}

	// Per-mood override, field by field
	merged.Themes = make(map[string]ThemeConfig, len(base.Themes)+len(overlay.Themes))
	for name, tc := range base.Themes {
		merged.Themes[name] = tc
	}
	for name, tc := range overlay.Themes {
		current := merged.Themes[name]
		if tc.Start != "" {
			current.Start = tc.Start
		}
		if tc.End != "" {
			current.End = tc.End
		}
		if tc.Accent != "" {
			current.Accent = tc.Accent
		}
		merged.Themes[name] = current
	}

	if overlay.Coach.Responder != "" {
		merged.Coach.Responder = overlay.Coach.Responder
	}
	if overlay.Coach.Timeout != 0 {
		merged.Coach.Timeout = overlay.Coach.Timeout
	}
	if overlay.Metrics.Addr != "" {
		merged.Metrics.Addr = overlay.Metrics.Addr
	}

	return merged
}

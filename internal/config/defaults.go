package config

import (
	"path/filepath"

	"github.com/julianstephens/auragenie/internal/constants"
)

// Default returns the built-in configuration rooted at configDir
func Default(configDir string) Config {
	return Config{
		Log: LogConfig{
			Dir:        filepath.Join(configDir, constants.LogDirName),
			MaxSizeMB:  constants.DefaultLogMaxSizeMB,
			MaxBackups: constants.DefaultLogMaxBackups,
			MaxAgeDays: constants.DefaultLogMaxAgeDays,
		},
		Themes: map[string]ThemeConfig{},
		Coach: CoachConfig{
			Responder: constants.ResponderCanned,
			Timeout:   constants.DefaultCoachTimeout,
		},
	}
}

package config

import "time"

// Config is the merged user configuration
type Config struct {
	Debug   bool                   `yaml:"debug"`
	Log     LogConfig              `yaml:"log"`
	Themes  map[string]ThemeConfig `yaml:"themes" validate:"dive"`
	Coach   CoachConfig            `yaml:"coach"`
	Metrics MetricsConfig          `yaml:"metrics"`
}

type LogConfig struct {
	Dir        string `yaml:"dir"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" validate:"gte=0"`
}

// ThemeConfig overrides the colours of one mood's theme
type ThemeConfig struct {
	Start  string `yaml:"start" validate:"omitempty,hexcolor"`
	End    string `yaml:"end" validate:"omitempty,hexcolor"`
	Accent string `yaml:"accent" validate:"omitempty,hexcolor"`
}

type CoachConfig struct {
	// Responder selects who answers chat messages: "canned" or "none"
	Responder string        `yaml:"responder" validate:"omitempty,oneof=canned none"`
	Timeout   time.Duration `yaml:"timeout" validate:"gte=0"`
}

type MetricsConfig struct {
	// Addr enables the /metrics endpoint when set, e.g. "127.0.0.1:9273"
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

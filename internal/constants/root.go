package constants

import "time"

// SessionState represents the current input mode of the TUI
type SessionState int

const (
	AppName     = "auragenie"
	DisplayName = "AuraGenie"
	Version     = "v0.1.0"

	// EnvPrefix is prepended to every environment variable the CLI reads
	EnvPrefix = "AURAGENIE_"

	DefaultConfigDir = "~/.config/auragenie"
	ConfigFileName   = "config.yaml"
	LogDirName       = "logs"
	LogFileName      = "auragenie.log"
	MetricsPath      = "/metrics"

	// Log rotation defaults
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28

	// DefaultCoachTimeout bounds a single responder round-trip
	DefaultCoachTimeout = 30 * time.Second

	// Coach responders
	ResponderCanned = "canned"
	ResponderNone   = "none"
)

// Session States
const (
	StateBrowse SessionState = iota
	StateAddGoal
	StateEditHealth
)

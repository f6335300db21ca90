package main

import (
	"github.com/alecthomas/kong"

	"github.com/julianstephens/auragenie/internal/app"
	"github.com/julianstephens/auragenie/internal/cli"
	"github.com/julianstephens/auragenie/internal/config"
	"github.com/julianstephens/auragenie/internal/constants"
	"github.com/julianstephens/auragenie/internal/errors"
	"github.com/julianstephens/auragenie/internal/logger"
	"github.com/julianstephens/auragenie/internal/metrics"
	"github.com/julianstephens/auragenie/internal/theme"
)

var CLI struct {
	Version     kong.VersionFlag
	Config      string `help:"Config file path." type:"path" env:"AURAGENIE_CONFIG"`
	DebugLog    bool   `name:"debug" help:"Enable debug logging to stderr." env:"AURAGENIE_DEBUG"`
	MetricsAddr string `help:"Serve Prometheus metrics on this address." env:"AURAGENIE_METRICS_ADDR"`

	Tui        cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Themes     cli.ThemesCmd  `cmd:"" help:"Show the mood to theme table."`
	Doctor     cli.DoctorCmd  `cmd:"" help:"Run diagnostics."`
	Debug      cli.DebugCmd   `cmd:"" help:"Debugging helpers."`
	VersionCmd cli.VersionCmd `cmd:"" name:"version" help:"Print the version."`
}

func main() {
	if err := config.LoadEnv(); err != nil {
		errors.Fatalf("failed to load .env: %v", err)
	}

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("A mood-aware wellness companion for the terminal"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.DebugLog {
		cfg.Debug = true
	}
	if CLI.MetricsAddr != "" {
		cfg.Metrics.Addr = CLI.MetricsAddr
		if err := config.Validate(cfg); err != nil {
			errors.Fatal(err)
		}
	}

	if err := logger.Init(logger.Config{
		Debug:      cfg.Debug,
		Dir:        cfg.Log.Dir,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	}); err != nil {
		errors.Fatalf("failed to initialise logging: %v", err)
	}

	overrides, err := config.ThemeOverrides(cfg)
	if err != nil {
		errors.Fatal(err)
	}
	themes, err := theme.NewSet(overrides)
	if err != nil {
		errors.Fatal(err)
	}

	configPath := CLI.Config
	if configPath == "" {
		if configPath, err = config.UserConfigPath(); err != nil {
			errors.Fatal(err)
		}
	}

	appCtx := &cli.Context{
		Ctrl:       app.New(),
		Themes:     themes,
		Config:     cfg,
		ConfigPath: configPath,
		Metrics:    metrics.NewCollector(),
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

package cli

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type DebugCmd struct {
	ConfigPath *DebugConfigPathCmd `cmd:"" help:"Show configuration file paths."`
	DumpConfig *DebugDumpConfigCmd `cmd:"" help:"Dump the merged configuration as YAML."`
	DumpState  *DebugDumpStateCmd  `cmd:"" help:"Dump the startup state as JSON."`
}

type DebugConfigPathCmd struct{}

func (cmd *DebugConfigPathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"config":  ctx.ConfigPath,
		"log_dir": ctx.Config.Log.Dir,
	}
	return writeJSON(ctx, output)
}

type DebugDumpConfigCmd struct{}

func (cmd *DebugDumpConfigCmd) Run(ctx *Context) error {
	out, err := yaml.Marshal(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = ctx.out().Write(out)
	return err
}

type DebugDumpStateCmd struct{}

func (cmd *DebugDumpStateCmd) Run(ctx *Context) error {
	return writeJSON(ctx, ctx.Ctrl.Snapshot())
}

func writeJSON(ctx *Context, v interface{}) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(ctx.out(), string(jsonBytes))
	return err
}

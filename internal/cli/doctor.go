package cli

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/auragenie/internal/config"
	"github.com/julianstephens/auragenie/internal/constants"
	"github.com/julianstephens/auragenie/internal/theme"
)

var processesFunc = ps.Processes

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	out := ctx.out()
	fmt.Fprintln(out, "Running diagnostics...")
	fmt.Fprintln(out)

	hasError := false

	// Check 1: configuration
	if err := config.Validate(ctx.Config); err != nil {
		fmt.Fprintf(out, "❌ Configuration: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Configuration: OK\n")
	}

	// Check 2: every mood has a theme
	if err := checkThemes(ctx); err != nil {
		fmt.Fprintf(out, "❌ Themes: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Themes: OK\n")
	}

	// Check 3: log directory writable
	if err := checkLogDir(ctx.Config.Log.Dir); err != nil {
		fmt.Fprintf(out, "❌ Log directory: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Log directory: OK\n")
	}

	// Check 4: clipboard (warning only)
	if clipboard.Unsupported {
		fmt.Fprintf(out, "⚠ Clipboard: WARNING\n")
		fmt.Fprintf(out, "   no clipboard utility found, transcript copy is disabled\n")
	} else {
		fmt.Fprintf(out, "✓ Clipboard: OK\n")
	}

	// Check 5: metrics address
	if addr := ctx.Config.Metrics.Addr; addr == "" {
		fmt.Fprintf(out, "⊘ Metrics: SKIPPED (no address configured)\n")
	} else if err := checkMetricsAddr(addr); err != nil {
		fmt.Fprintf(out, "❌ Metrics: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Metrics: OK\n")
	}

	// Check 6: other running instances (warning only)
	if n, err := countOtherInstances(); err != nil {
		fmt.Fprintf(out, "⊘ Running instances: SKIPPED (%v)\n", err)
	} else if n > 0 {
		fmt.Fprintf(out, "⚠ Running instances: WARNING\n")
		fmt.Fprintf(out, "   %d other %s process(es) running; state is not shared between them\n", n, constants.AppName)
	} else {
		fmt.Fprintf(out, "✓ Running instances: OK\n")
	}

	fmt.Fprintln(out)
	if hasError {
		fmt.Fprintln(out, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Fprintln(out, "All diagnostics passed!")
	return nil
}

func checkThemes(ctx *Context) error {
	if ctx.Themes == nil {
		overrides, err := config.ThemeOverrides(ctx.Config)
		if err != nil {
			return err
		}
		_, err = theme.NewSet(overrides)
		return err
	}
	return ctx.Themes.Validate()
}

func checkLogDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("log directory is not set")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("log directory is not writable: %w", err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(filepath.Clean(name))
}

// checkMetricsAddr confirms the address is free to bind
func checkMetricsAddr(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("cannot listen on %s: %w", addr, err)
	}
	return ln.Close()
}

// countOtherInstances counts processes running this binary, excluding us
func countOtherInstances() (int, error) {
	procs, err := processesFunc()
	if err != nil {
		return 0, fmt.Errorf("failed to list processes: %w", err)
	}
	self := os.Getpid()
	n := 0
	for _, p := range procs {
		if p.Pid() != self && p.Executable() == constants.AppName {
			n++
		}
	}
	return n, nil
}

package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/auragenie/internal/logger"
	"github.com/julianstephens/auragenie/internal/tui"
)

const cannedDelay = 600 * time.Millisecond

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if ctx.Metrics != nil {
		detach := ctx.Metrics.Attach(ctx.Ctrl)
		defer detach()

		if addr := ctx.Config.Metrics.Addr; addr != "" {
			srvCtx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go func() {
				if err := ctx.Metrics.Serve(srvCtx, addr); err != nil {
					logger.Error("metrics server stopped", "addr", addr, "err", err)
				}
			}()
		}
	}

	var opts []tui.Option
	if r := ctx.responder(); r != nil {
		opts = append(opts, tui.WithResponder(r, ctx.Config.Coach.Timeout))
	}

	logger.Info("Starting TUI")
	p := tea.NewProgram(tui.NewModel(ctx.Ctrl, ctx.Themes, opts...), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

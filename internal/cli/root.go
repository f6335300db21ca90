package cli

import (
	"io"
	"os"

	"github.com/julianstephens/auragenie/internal/app"
	"github.com/julianstephens/auragenie/internal/config"
	"github.com/julianstephens/auragenie/internal/constants"
	"github.com/julianstephens/auragenie/internal/metrics"
	"github.com/julianstephens/auragenie/internal/theme"
	"github.com/julianstephens/auragenie/internal/tui/components/coach"
)

type Context struct {
	Ctrl       *app.Controller
	Themes     *theme.Set
	Config     config.Config
	ConfigPath string
	Metrics    *metrics.Collector
	Out        io.Writer
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// responder builds the configured coach responder, nil when replies are off
func (c *Context) responder() coach.Responder {
	switch c.Config.Coach.Responder {
	case constants.ResponderNone:
		return nil
	default:
		return coach.Canned{Delay: cannedDelay}
	}
}

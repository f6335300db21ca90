package cli

import (
	"fmt"

	"github.com/julianstephens/auragenie/internal/constants"
)

type VersionCmd struct{}

func (cmd *VersionCmd) Run(ctx *Context) error {
	_, err := fmt.Fprintf(ctx.out(), "%s %s\n", constants.AppName, constants.Version)
	return err
}

package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/auragenie/internal/models"
)

type ThemesCmd struct {
	Swatch bool `help:"Render a colour swatch for each theme." default:"true" negatable:""`
}

func (cmd *ThemesCmd) Run(ctx *Context) error {
	headers := []string{"MOOD", "THEME", "START", "END", "ACCENT", "TEXTURE"}
	if cmd.Swatch {
		headers = append(headers, "SWATCH")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)

	for _, mood := range models.AllMoods() {
		th, err := ctx.Themes.For(mood)
		if err != nil {
			return err
		}
		texture := string(th.Texture)
		if texture == "" {
			texture = "-"
		}
		row := []string{mood.String(), th.ID, th.Start, th.End, th.Accent, texture}
		if cmd.Swatch {
			row = append(row, th.Gradient(12))
		}
		t.Row(row...)
	}

	fmt.Fprintln(ctx.out(), t.Render())
	return nil
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// NewGoalForm creates the add-goal form. Any text, including empty, is accepted.
func NewGoalForm(fm *GoalFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New goal").
				Placeholder("Drink more water").
				Value(&fm.Text),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewHealthForm creates the form for a single health metric
func NewHealthForm(fm *HealthFormModel) *huh.Form {
	title := fmt.Sprintf("%s (%s)", strings.ToUpper(string(fm.Key[:1]))+string(fm.Key[1:]), fm.Key.Unit())
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&fm.Value).
				Validate(func(s string) error {
					if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
						return fmt.Errorf("enter a number")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

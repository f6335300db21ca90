package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/auragenie/internal/app"
	"github.com/julianstephens/auragenie/internal/constants"
	"github.com/julianstephens/auragenie/internal/logger"
	"github.com/julianstephens/auragenie/internal/models"
	"github.com/julianstephens/auragenie/internal/theme"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.ctrl.Snapshot()
	t, err := m.themes.For(snap.Mood)
	if err != nil {
		logger.Error("no theme for mood", "mood", snap.Mood, "err", err)
	}

	var content string
	switch m.state {
	case constants.StateAddGoal, constants.StateEditHealth:
		content = formStyle.Render(m.form.View())
	default:
		content = m.renderActiveView(snap)
	}

	sections := []string{m.viewHeader(snap, t), content}
	if m.validationWarning != "" {
		sections = append(sections, warningStyle.Render(m.validationWarning))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderActiveView picks the view for the snapshot's tab. Unknown tabs render nothing.
func (m Model) renderActiveView(snap app.Snapshot) string {
	switch snap.ActiveTab {
	case models.TabDashboard:
		return m.dashboard.View()
	case models.TabCoach:
		return m.coach.View()
	case models.TabVideo:
		return m.video.View()
	case models.TabCommunity:
		return m.community.View()
	default:
		return ""
	}
}

func (m Model) viewHeader(snap app.Snapshot, t theme.Theme) string {
	accent := lipgloss.Color(t.Accent)
	brand := brandStyle.Foreground(lipgloss.Color(t.Start)).Render(constants.DisplayName)

	tabs := []string{brand}
	for _, tab := range models.AllTabs() {
		if tab == snap.ActiveTab {
			tabs = append(tabs, activeTabStyle.Background(accent).Render(tab.Label()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(tab.Label()))
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		t.Gradient(m.width),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		t.Pattern(m.width),
		"",
	)
}

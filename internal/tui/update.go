package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/auragenie/internal/constants"
	"github.com/julianstephens/auragenie/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	// Results from views and commands are applied whatever the current state
	if handled, cmd := m.handleViewMessages(msg); handled {
		return m, cmd
	}

	switch m.state {
	case constants.StateAddGoal, constants.StateEditHealth:
		return m, m.handleFormState(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}
	}

	return m, m.updateActiveView(msg)
}

func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	active := m.ctrl.ActiveTab()

	switch {
	case key.Matches(msg, m.keys.Tab):
		m.selectTab(active.Next())
		return true, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.selectTab(active.Prev())
		return true, nil
	}

	// The coach tab owns a text input, so printable shortcuts go to it
	if active == models.TabCoach {
		return false, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, nil
	case key.Matches(msg, m.keys.Jump):
		idx := int(msg.String()[0] - '1')
		m.selectTab(models.AllTabs()[idx])
		return true, nil
	}
	return false, nil
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.ctrl.ActiveTab() {
	case models.TabDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case models.TabCoach:
		m.coach, cmd = m.coach.Update(msg)
	case models.TabVideo:
		m.video, cmd = m.video.Update(msg)
	case models.TabCommunity:
		m.community, cmd = m.community.Update(msg)
	}
	return cmd
}

package video

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Foreground(lipgloss.Color("245")).
			Padding(1, 4).
			Align(lipgloss.Center)
)

var prompts = []string{
	"What went well today?",
	"What drained your energy?",
	"What is one thing you want to carry into tomorrow?",
}

// Model is the reflection view. It has no state beyond its size.
type Model struct {
	width  int
	height int
}

func New() Model {
	return Model{}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m Model) View() string {
	frame := frameStyle.Width(max(30, m.width/2)).Render(
		lipgloss.JoinVertical(lipgloss.Center,
			"Video reflection is not available in the terminal.",
			"",
			"Take a minute with these prompts instead:",
			"",
			lipgloss.JoinVertical(lipgloss.Left, prompts...),
		),
	)
	return lipgloss.Place(max(m.width, lipgloss.Width(frame)), max(m.height, lipgloss.Height(frame)+3),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, titleStyle.Render("Reflection"), frame),
	)
}

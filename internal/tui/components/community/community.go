package community

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	authorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117")).
			Bold(true)

	postStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("62")).
			PaddingLeft(1).
			MarginBottom(1)
)

type Post struct {
	Author string
	Body   string
}

var feed = []Post{
	{Author: "Maya", Body: "Hit 10k steps three days in a row. Small wins add up!"},
	{Author: "Jon", Body: "Swapped my afternoon coffee for a walk. Slept so much better."},
	{Author: "Priya", Body: "Five minutes of breathing before meetings has been a game changer."},
}

// Model is a read-only community feed
type Model struct {
	posts  []Post
	width  int
	height int
}

func New() Model {
	return Model{posts: feed}
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
	var b strings.Builder
	b.WriteString(titleStyle.Render("Community") + "\n\n")
	style := postStyle.Width(max(20, m.width-4))
	for _, p := range m.posts {
		b.WriteString(style.Render(authorStyle.Render(p.Author)+"\n"+p.Body) + "\n")
	}
	return b.String()
}

package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/auragenie/internal/models"
)

// Responder produces the coach's reply to the conversation so far. It is the
// seam for an external AI service.
type Responder interface {
	Reply(ctx context.Context, history []models.ChatMessage) (string, error)
}

// AppendMessageMsg asks the owner to append a message to the history
type AppendMessageMsg struct {
	Message models.ChatMessage
}

// ReplyMsg carries a Responder result back into the update loop
type ReplyMsg struct {
	Content string
	Err     error
}

type copiedMsg struct {
	err error
}

// writeClipboard is replaced in tests
var writeClipboard = clipboard.WriteAll

type KeyMap struct {
	Send key.Binding
	Copy key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy transcript"),
		),
	}
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117")).
			Bold(true)

	modelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("213")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type Model struct {
	history  []models.ChatMessage
	viewport viewport.Model
	input    textinput.Model
	keys     KeyMap
	status   string
	waiting  bool
	width    int
	height   int
}

func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask your coach anything..."
	ti.CharLimit = 500
	ti.Prompt = "› "
	ti.Focus()

	// letters belong to the input, so the transcript only scrolls on
	// arrows and paging keys
	vp := viewport.New(width, max(1, height-3))
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		Up:       key.NewBinding(key.WithKeys("up")),
		Down:     key.NewBinding(key.WithKeys("down")),
	}

	m := Model{
		viewport: vp,
		input:    ti,
		keys:     DefaultKeyMap(),
		width:    width,
		height:   height,
	}
	return m
}

// SetHistory replaces the rendered conversation and scrolls to the newest message
func (m *Model) SetHistory(history []models.ChatMessage) {
	m.history = history
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
}

// SetWaiting marks whether a reply is in flight
func (m *Model) SetWaiting(waiting bool) {
	m.waiting = waiting
	if waiting {
		m.status = "Coach is thinking..."
	} else if m.status == "Coach is thinking..." {
		m.status = ""
	}
}

func (m *Model) SetStatus(status string) {
	m.status = status
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(1, height-3)
	m.input.Width = max(10, width-4)
	m.viewport.SetContent(m.renderHistory())
}

func (m Model) Keys() KeyMap {
	return m.keys
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Send):
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.waiting {
				return m, nil
			}
			m.input.SetValue("")
			return m, func() tea.Msg {
				return AppendMessageMsg{Message: models.UserMessage(text)}
			}
		case key.Matches(msg, m.keys.Copy):
			transcript := Transcript(m.history)
			return m, func() tea.Msg {
				return copiedMsg{err: writeClipboard(transcript)}
			}
		}
	case copiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Copy failed: %v", msg.err)
		} else {
			m.status = "Transcript copied to clipboard"
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	parts := []string{m.viewport.View(), m.input.View()}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHistory() string {
	wrap := lipgloss.NewStyle().Width(max(10, m.width-2))

	var b strings.Builder
	for i, msg := range m.history {
		if i > 0 {
			b.WriteString("\n\n")
		}
		speaker := modelStyle.Render("Coach")
		if msg.Role == models.RoleUser {
			speaker = userStyle.Render("You")
		}
		b.WriteString(speaker + "\n" + wrap.Render(msg.Content))
	}
	return b.String()
}

// Transcript renders the history as plain text, one "role: content" per line
func Transcript(history []models.ChatMessage) string {
	lines := make([]string, len(history))
	for i, msg := range history {
		lines[i] = fmt.Sprintf("%s: %s", msg.Role, msg.Content)
	}
	return strings.Join(lines, "\n")
}

// RequestReply runs r against history in a command bounded by ctx
func RequestReply(ctx context.Context, r Responder, history []models.ChatMessage) tea.Cmd {
	return func() tea.Msg {
		content, err := r.Reply(ctx, history)
		return ReplyMsg{Content: content, Err: err}
	}
}

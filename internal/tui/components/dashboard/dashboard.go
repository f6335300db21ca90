package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/auragenie/internal/constants"
	"github.com/julianstephens/auragenie/internal/models"
)

type SetMoodMsg struct {
	Mood models.Mood
}

type AddGoalMsg struct{}

type ToggleGoalMsg struct {
	ID int64
}

type EditHealthMsg struct {
	Key models.HealthKey
}

type Item struct {
	Goal models.Goal
}

func (i Item) Title() string {
	if i.Goal.Completed {
		return "✓ " + i.Goal.Text
	}
	return "○ " + i.Goal.Text
}

func (i Item) Description() string {
	if i.Goal.Completed {
		return "completed"
	}
	return "in progress"
}

func (i Item) FilterValue() string { return i.Goal.Text }

type KeyMap struct {
	PrevMood     key.Binding
	NextMood     key.Binding
	AddGoal      key.Binding
	ToggleGoal   key.Binding
	EditSleep    key.Binding
	EditWater    key.Binding
	EditExercise key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevMood: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev mood"),
		),
		NextMood: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next mood"),
		),
		AddGoal: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add goal"),
		),
		ToggleGoal: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "toggle goal"),
		),
		EditSleep: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sleep"),
		),
		EditWater: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "water"),
		),
		EditExercise: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "exercise"),
		),
	}
}

var (
	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("255")).
				MarginBottom(1)

	moodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(10)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	sectionStyle = lipgloss.NewStyle().
			MarginBottom(1)
)

// healthTargets scale the progress bars; they match the startup snapshot
var healthTargets = map[models.HealthKey]float64{
	models.HealthSleep:    constants.DefaultSleepHours,
	models.HealthWater:    constants.DefaultWaterGlasses,
	models.HealthExercise: constants.DefaultExerciseMinutes,
}

type Model struct {
	mood   models.Mood
	health models.HealthData
	goals  list.Model
	bar    progress.Model
	accent string
	keys   KeyMap
	width  int
	height int
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Goals"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.AddGoal, keys.ToggleGoal, keys.NextMood}
	}

	return Model{
		mood:   models.MoodCalm,
		goals:  l,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		accent: "205",
		keys:   keys,
		width:  width,
		height: height,
	}
}

// SetState replaces the slice of controller state this view renders
func (m *Model) SetState(mood models.Mood, goals []models.Goal, health models.HealthData) {
	m.mood = mood
	m.health = health

	items := make([]list.Item, len(goals))
	for i, g := range goals {
		items[i] = Item{Goal: g}
	}
	m.goals.SetItems(items)
}

// SetPalette recolours the progress bars and the mood highlight
func (m *Model) SetPalette(start, end, accent string) {
	m.bar = progress.New(
		progress.WithGradient(start, end),
		progress.WithoutPercentage(),
		progress.WithWidth(m.bar.Width),
	)
	m.accent = accent
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.bar.Width = max(10, width/3)
	// mood row, health block and section titles take roughly 12 lines
	m.goals.SetSize(width, max(3, height-12))
}

func (m Model) Keys() KeyMap {
	return m.keys
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.PrevMood):
			mood := m.mood.Prev()
			return m, func() tea.Msg { return SetMoodMsg{Mood: mood} }
		case key.Matches(msg, m.keys.NextMood):
			mood := m.mood.Next()
			return m, func() tea.Msg { return SetMoodMsg{Mood: mood} }
		case key.Matches(msg, m.keys.AddGoal):
			return m, func() tea.Msg { return AddGoalMsg{} }
		case key.Matches(msg, m.keys.ToggleGoal):
			if i, ok := m.goals.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleGoalMsg{ID: i.Goal.ID} }
			}
			return m, nil
		case key.Matches(msg, m.keys.EditSleep):
			return m, func() tea.Msg { return EditHealthMsg{Key: models.HealthSleep} }
		case key.Matches(msg, m.keys.EditWater):
			return m, func() tea.Msg { return EditHealthMsg{Key: models.HealthWater} }
		case key.Matches(msg, m.keys.EditExercise):
			return m, func() tea.Msg { return EditHealthMsg{Key: models.HealthExercise} }
		}
	}

	m.goals, cmd = m.goals.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	sections := []string{
		sectionStyle.Render(m.viewMood()),
		sectionStyle.Render(m.viewGoals()),
		m.viewHealth(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewMood() string {
	selected := moodStyle.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(m.accent)).
		Bold(true)

	var moods []string
	for _, mood := range models.AllMoods() {
		if mood == m.mood {
			moods = append(moods, selected.Render(mood.String()))
		} else {
			moods = append(moods, moodStyle.Render(mood.String()))
		}
	}
	return sectionTitleStyle.Render("How are you feeling?") + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, moods...)
}

func (m Model) viewGoals() string {
	title := sectionTitleStyle.Render("Today's Goals")
	if len(m.goals.Items()) == 0 {
		return title + "\n" + emptyStyle.Render("No goals yet. Press 'a' to add one.")
	}
	return title + "\n" + m.goals.View()
}

func (m Model) viewHealth() string {
	lines := []string{sectionTitleStyle.Render("Health")}
	for _, k := range models.AllHealthKeys() {
		value, _ := m.health.Get(k)
		percent := 0.0
		if target := healthTargets[k]; target > 0 {
			percent = value / target
		}
		percent = min(max(percent, 0), 1)
		lines = append(lines, fmt.Sprintf("%s %s %s",
			labelStyle.Render(strings.ToUpper(string(k[:1]))+string(k[1:])),
			m.bar.ViewAs(percent),
			formatValue(value, k.Unit()),
		))
	}
	return strings.Join(lines, "\n")
}

func formatValue(v float64, unit string) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d %s", int64(v), unit)
	}
	return fmt.Sprintf("%.1f %s", v, unit)
}

package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/auragenie/internal/app"
	"github.com/julianstephens/auragenie/internal/constants"
	"github.com/julianstephens/auragenie/internal/logger"
	"github.com/julianstephens/auragenie/internal/models"
	"github.com/julianstephens/auragenie/internal/theme"
	"github.com/julianstephens/auragenie/internal/tui/components/coach"
	"github.com/julianstephens/auragenie/internal/tui/components/community"
	"github.com/julianstephens/auragenie/internal/tui/components/dashboard"
	"github.com/julianstephens/auragenie/internal/tui/components/video"
	"github.com/julianstephens/auragenie/internal/validation"
)

// SelectTabMsg asks the root model to switch the active tab
type SelectTabMsg struct {
	Tab models.Tab
}

type GoalFormModel struct {
	Text string
}

type HealthFormModel struct {
	Key   models.HealthKey
	Value string
}

type Option func(*Model)

// WithResponder enables coach replies, each bounded by timeout
func WithResponder(r coach.Responder, timeout time.Duration) Option {
	return func(m *Model) {
		m.responder = r
		m.coachTimeout = timeout
	}
}

type Model struct {
	ctrl         *app.Controller
	themes       *theme.Set
	responder    coach.Responder
	coachTimeout time.Duration
	state        constants.SessionState
	keys         KeyMap
	help         help.Model
	dashboard    dashboard.Model
	coach        coach.Model
	video        video.Model
	community    community.Model
	form         *huh.Form
	goalForm     *GoalFormModel
	healthForm   *HealthFormModel
	quitting     bool
	width        int
	height       int

	validationWarning   string                // Validation warning message to display
	validationConflicts []validation.Conflict // Detailed conflict information
}

func NewModel(ctrl *app.Controller, themes *theme.Set, opts ...Option) Model {
	m := Model{
		ctrl:         ctrl,
		themes:       themes,
		coachTimeout: constants.DefaultCoachTimeout,
		state:        constants.StateBrowse,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		dashboard:    dashboard.New(0, 0),
		coach:        coach.New(0, 0),
		video:        video.New(),
		community:    community.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.syncViews()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.ShiftTab}
	switch m.ctrl.ActiveTab() {
	case models.TabDashboard:
		dk := m.dashboard.Keys()
		keys = append(keys, dk.NextMood, dk.AddGoal, dk.ToggleGoal, m.keys.Help, m.keys.Quit)
	case models.TabCoach:
		ck := m.coach.Keys()
		keys = append(keys, ck.Send, ck.Copy, m.keys.ForceQuit)
	default:
		keys = append(keys, m.keys.Help, m.keys.Quit)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Jump, m.keys.Help, m.keys.Quit}

	var actions []key.Binding
	switch m.ctrl.ActiveTab() {
	case models.TabDashboard:
		dk := m.dashboard.Keys()
		actions = []key.Binding{dk.PrevMood, dk.NextMood, dk.AddGoal, dk.ToggleGoal, dk.EditSleep, dk.EditWater, dk.EditExercise}
	case models.TabCoach:
		ck := m.coach.Keys()
		actions = []key.Binding{ck.Send, ck.Copy}
	}

	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return m.coach.Init()
}

// syncViews pushes the current controller state into every view
func (m *Model) syncViews() {
	snap := m.ctrl.Snapshot()
	m.dashboard.SetState(snap.Mood, snap.Goals, snap.Health)
	m.coach.SetHistory(snap.ChatHistory)
	m.updateValidationStatus(snap.Goals, snap.Health)

	t, err := m.themes.For(snap.Mood)
	if err != nil {
		logger.Error("no theme for mood", "mood", snap.Mood, "err", err)
		return
	}
	m.dashboard.SetPalette(t.Start, t.End, t.Accent)
}

// updateValidationStatus runs validation and updates the warning message
func (m *Model) updateValidationStatus(goals []models.Goal, health models.HealthData) {
	result := validation.New().Validate(goals, health)
	m.validationConflicts = result.Conflicts

	if result.HasConflicts() {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s)", len(result.Conflicts))
		logger.Debug("state validation", "report", result.FormatReport())
	} else {
		m.validationWarning = ""
	}
}

// resize hands the space left under the header and help line to the views
func (m *Model) resize() {
	h := max(0, m.height-headerHeight-helpHeight)
	m.dashboard.SetSize(m.width, h)
	m.coach.SetSize(m.width, h)
	m.video.SetSize(m.width, h)
	m.community.SetSize(m.width, h)
}

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/auragenie/internal/app"
	"github.com/julianstephens/auragenie/internal/constants"
	"github.com/julianstephens/auragenie/internal/models"
	"github.com/julianstephens/auragenie/internal/theme"
	"github.com/julianstephens/auragenie/internal/tui/components/coach"
	"github.com/julianstephens/auragenie/internal/tui/components/dashboard"
)

type stubResponder struct {
	reply string
	err   error
	seen  []models.ChatMessage
}

func (s *stubResponder) Reply(ctx context.Context, history []models.ChatMessage) (string, error) {
	s.seen = history
	return s.reply, s.err
}

// steppingClock advances one millisecond per call so goal ids are distinct
func steppingClock() func() time.Time {
	current := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(time.Millisecond)
		return current
	}
}

func newTestModel(t *testing.T, opts ...Option) (Model, *app.Controller) {
	t.Helper()
	themes, err := theme.NewSet(nil)
	require.NoError(t, err)
	ctrl := app.New(app.WithClock(steppingClock()))
	m := NewModel(ctrl, themes, opts...)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model), ctrl
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_RendersDashboard(t *testing.T) {
	m, ctrl := newTestModel(t)

	assert.Equal(t, models.TabDashboard, ctrl.ActiveTab())
	view := m.View()
	assert.Contains(t, view, "AuraGenie")
	for _, tab := range models.AllTabs() {
		assert.Contains(t, view, tab.Label())
	}
	assert.Contains(t, view, "How are you feeling?")
}

func TestTabCycling(t *testing.T) {
	m, ctrl := newTestModel(t)

	for _, want := range []models.Tab{models.TabCoach, models.TabVideo, models.TabCommunity, models.TabDashboard} {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, want, ctrl.ActiveTab())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, models.TabCommunity, ctrl.ActiveTab())
	assert.Contains(t, m.View(), "Community")
}

func TestNumberShortcuts(t *testing.T) {
	m, ctrl := newTestModel(t)

	m, _ = send(t, m, runes("3"))
	assert.Equal(t, models.TabVideo, ctrl.ActiveTab())
	assert.Contains(t, m.View(), "Reflection")

	m, _ = send(t, m, runes("2"))
	assert.Equal(t, models.TabCoach, ctrl.ActiveTab())

	// digits are typed into the chat input on the coach tab
	_, _ = send(t, m, runes("1"))
	assert.Equal(t, models.TabCoach, ctrl.ActiveTab())
}

func TestSelectTabMsg_UnknownKeepsView(t *testing.T) {
	m, ctrl := newTestModel(t)

	m, _ = send(t, m, SelectTabMsg{Tab: models.TabCommunity})
	assert.Equal(t, models.TabCommunity, ctrl.ActiveTab())

	_, _ = send(t, m, SelectTabMsg{Tab: models.Tab("settings")})
	assert.Equal(t, models.TabCommunity, ctrl.ActiveTab())
}

func TestRenderActiveView_UnknownTabIsEmpty(t *testing.T) {
	m, ctrl := newTestModel(t)

	snap := ctrl.Snapshot()
	snap.ActiveTab = models.Tab("settings")
	assert.Empty(t, m.renderActiveView(snap))
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := send(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestQuit_IgnoredOnCoachTab(t *testing.T) {
	m, ctrl := newTestModel(t)
	require.NoError(t, ctrl.SetActiveTab(models.TabCoach))

	m, _ = send(t, m, runes("q"))
	assert.False(t, m.quitting)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
}

func TestSetMoodMsg(t *testing.T) {
	m, ctrl := newTestModel(t)

	m, _ = send(t, m, dashboard.SetMoodMsg{Mood: models.MoodHappy})
	assert.Equal(t, models.MoodHappy, ctrl.Mood())
	assert.Contains(t, m.View(), "☀")

	_, _ = send(t, m, dashboard.SetMoodMsg{Mood: models.Mood("Angry")})
	assert.Equal(t, models.MoodHappy, ctrl.Mood())
}

func TestMoodKeysEmitIntent(t *testing.T) {
	m, ctrl := newTestModel(t)

	_, cmd := send(t, m, runes("]"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, dashboard.SetMoodMsg{Mood: models.MoodFocused}, msg)

	_, _ = send(t, m, msg)
	assert.Equal(t, models.MoodFocused, ctrl.Mood())
}

func TestAddGoalFlow(t *testing.T) {
	m, ctrl := newTestModel(t)

	_, cmd := send(t, m, runes("a"))
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, dashboard.AddGoalMsg{}, msg)

	m, _ = send(t, m, msg)
	assert.Equal(t, constants.StateAddGoal, m.state)
	require.NotNil(t, m.form)
	require.NotNil(t, m.goalForm)

	m.goalForm.Text = "Meditate"
	m.commitGoal()
	m.closeForm()

	goals := ctrl.Goals()
	require.Len(t, goals, 1)
	assert.Equal(t, "Meditate", goals[0].Text)
	history := ctrl.ChatHistory()
	assert.Equal(t, `Great goal! I've added "Meditate" to your list. You can do it!`, history[len(history)-1].Content)
	assert.Equal(t, constants.StateBrowse, m.state)
	assert.Contains(t, m.View(), "Meditate")
}

func TestAddGoalForm_EscCancels(t *testing.T) {
	m, ctrl := newTestModel(t)

	m, _ = send(t, m, dashboard.AddGoalMsg{})
	require.Equal(t, constants.StateAddGoal, m.state)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, constants.StateBrowse, m.state)
	assert.Nil(t, m.form)
	assert.Empty(t, ctrl.Goals())
}

func TestToggleGoalFromList(t *testing.T) {
	m, ctrl := newTestModel(t)
	goal, _ := ctrl.AddGoal("Stretch")
	m.syncViews()

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, dashboard.ToggleGoalMsg{ID: goal.ID}, msg)

	_, _ = send(t, m, msg)
	goals := ctrl.Goals()
	require.Len(t, goals, 1)
	assert.True(t, goals[0].Completed)
	history := ctrl.ChatHistory()
	assert.Equal(t, `Amazing! You completed your goal: "Stretch". Let's celebrate this win!`, history[len(history)-1].Content)
}

func TestToggleGoalMsg_UnknownID(t *testing.T) {
	m, ctrl := newTestModel(t)
	before := ctrl.Snapshot()

	_, _ = send(t, m, dashboard.ToggleGoalMsg{ID: 42})
	assert.Equal(t, before, ctrl.Snapshot())
}

func TestEditHealthFlow(t *testing.T) {
	m, ctrl := newTestModel(t)

	m, _ = send(t, m, dashboard.EditHealthMsg{Key: models.HealthWater})
	assert.Equal(t, constants.StateEditHealth, m.state)
	require.NotNil(t, m.healthForm)
	assert.Equal(t, "8", m.healthForm.Value)

	m.healthForm.Value = " 6.5 "
	m.commitHealth()
	m.closeForm()

	assert.Equal(t, models.HealthData{Sleep: 8, Water: 6.5, Exercise: 30}, ctrl.HealthData())
	assert.Len(t, ctrl.ChatHistory(), 1)
}

func TestEditHealth_NonNumericIgnored(t *testing.T) {
	m, ctrl := newTestModel(t)

	m, _ = send(t, m, dashboard.EditHealthMsg{Key: models.HealthSleep})
	m.healthForm.Value = "lots"
	m.commitHealth()

	assert.Equal(t, 8.0, ctrl.HealthData().Sleep)
}

func TestCoachAppend_NoResponder(t *testing.T) {
	m, ctrl := newTestModel(t)

	_, cmd := send(t, m, coach.AppendMessageMsg{Message: models.UserMessage("hi")})
	assert.Nil(t, cmd)

	history := ctrl.ChatHistory()
	require.Len(t, history, 2)
	assert.Equal(t, models.UserMessage("hi"), history[1])
}

func TestCoachAppend_WithResponder(t *testing.T) {
	r := &stubResponder{reply: "Drink a glass of water first."}
	m, ctrl := newTestModel(t, WithResponder(r, time.Second))

	m, cmd := send(t, m, coach.AppendMessageMsg{Message: models.UserMessage("How do I start?")})
	require.NotNil(t, cmd)
	reply := cmd()
	require.IsType(t, coach.ReplyMsg{}, reply)
	require.Len(t, r.seen, 2)

	_, cmd = send(t, m, reply)
	assert.Nil(t, cmd)

	history := ctrl.ChatHistory()
	require.Len(t, history, 3)
	assert.Equal(t, models.ModelMessage("Drink a glass of water first."), history[2])
}

func TestCoachReply_ErrorAppendsNothing(t *testing.T) {
	m, ctrl := newTestModel(t, WithResponder(&stubResponder{}, time.Second))

	_, _ = send(t, m, coach.ReplyMsg{Err: errors.New("offline")})
	assert.Len(t, ctrl.ChatHistory(), 1)
}

func TestCoachInputSubmits(t *testing.T) {
	m, ctrl := newTestModel(t)
	require.NoError(t, ctrl.SetActiveTab(models.TabCoach))

	for _, r := range "hello" {
		m, _ = send(t, m, runes(string(r)))
	}
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, coach.AppendMessageMsg{Message: models.UserMessage("hello")}, msg)

	_, _ = send(t, m, msg)
	history := ctrl.ChatHistory()
	assert.Equal(t, models.UserMessage("hello"), history[len(history)-1])
}

func TestValidationWarning(t *testing.T) {
	m, ctrl := newTestModel(t)
	assert.Empty(t, m.validationWarning)

	ctrl.AddGoal("Walk")
	ctrl.AddGoal("Walk")
	require.NoError(t, ctrl.UpdateHealthData(models.HealthSleep, -2))
	m.syncViews()

	assert.Equal(t, "⚠ 2 validation warning(s)", m.validationWarning)
	assert.Len(t, m.validationConflicts, 2)
	assert.Contains(t, m.View(), "validation warning")
}

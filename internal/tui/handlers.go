package tui

import (
	"context"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/auragenie/internal/constants"
	"github.com/julianstephens/auragenie/internal/logger"
	"github.com/julianstephens/auragenie/internal/models"
	"github.com/julianstephens/auragenie/internal/tui/components/coach"
	"github.com/julianstephens/auragenie/internal/tui/components/dashboard"
)

// handleViewMessages applies intents emitted by the views
func (m *Model) handleViewMessages(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case SelectTabMsg:
		m.selectTab(msg.Tab)
		return true, nil

	case dashboard.SetMoodMsg:
		if err := m.ctrl.SetMood(msg.Mood); err != nil {
			logger.Warn("ignoring mood change", "mood", msg.Mood, "err", err)
			return true, nil
		}
		m.syncViews()
		return true, nil

	case dashboard.AddGoalMsg:
		m.goalForm = &GoalFormModel{}
		m.form = NewGoalForm(m.goalForm)
		m.state = constants.StateAddGoal
		return true, m.form.Init()

	case dashboard.ToggleGoalMsg:
		if _, ok := m.ctrl.ToggleGoal(msg.ID); !ok {
			logger.Debug("toggle for unknown goal", "id", msg.ID)
			return true, nil
		}
		m.syncViews()
		return true, nil

	case dashboard.EditHealthMsg:
		value, ok := m.ctrl.HealthData().Get(msg.Key)
		if !ok {
			logger.Warn("ignoring health edit", "key", msg.Key)
			return true, nil
		}
		m.healthForm = &HealthFormModel{
			Key:   msg.Key,
			Value: strconv.FormatFloat(value, 'f', -1, 64),
		}
		m.form = NewHealthForm(m.healthForm)
		m.state = constants.StateEditHealth
		return true, m.form.Init()

	case coach.AppendMessageMsg:
		return true, m.appendMessage(msg.Message)

	case coach.ReplyMsg:
		m.coach.SetWaiting(false)
		if msg.Err != nil {
			logger.Warn("coach reply failed", "err", msg.Err)
			m.coach.SetStatus("Coach is unavailable right now.")
			return true, nil
		}
		if strings.TrimSpace(msg.Content) == "" {
			return true, nil
		}
		return true, m.appendMessage(models.ModelMessage(msg.Content))
	}
	return false, nil
}

// handleFormState drives the open huh form and commits it on completion
func (m *Model) handleFormState(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.closeForm()
		return nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		switch m.state {
		case constants.StateAddGoal:
			m.commitGoal()
		case constants.StateEditHealth:
			m.commitHealth()
		}
		m.closeForm()
	case huh.StateAborted:
		m.closeForm()
	}
	return cmd
}

func (m *Model) closeForm() {
	m.form = nil
	m.goalForm = nil
	m.healthForm = nil
	m.state = constants.StateBrowse
}

func (m *Model) commitGoal() {
	if m.goalForm == nil {
		return
	}
	goal, _ := m.ctrl.AddGoal(m.goalForm.Text)
	logger.Debug("goal added", "id", goal.ID)
	m.syncViews()
}

func (m *Model) commitHealth() {
	if m.healthForm == nil {
		return
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(m.healthForm.Value), 64)
	if err != nil {
		logger.Warn("ignoring health value", "key", m.healthForm.Key, "value", m.healthForm.Value)
		return
	}
	if err := m.ctrl.UpdateHealthData(m.healthForm.Key, value); err != nil {
		logger.Warn("ignoring health update", "key", m.healthForm.Key, "err", err)
		return
	}
	m.syncViews()
}

func (m *Model) selectTab(tab models.Tab) {
	if err := m.ctrl.SetActiveTab(tab); err != nil {
		logger.Warn("ignoring tab change", "tab", tab, "err", err)
	}
}

// appendMessage records msg and, for user input, asks the responder for a reply
func (m *Model) appendMessage(msg models.ChatMessage) tea.Cmd {
	if err := m.ctrl.AppendMessage(msg); err != nil {
		logger.Warn("ignoring chat message", "role", msg.Role, "err", err)
		return nil
	}
	m.syncViews()

	if msg.Role != models.RoleUser || m.responder == nil {
		return nil
	}

	m.coach.SetWaiting(true)
	ctx, cancel := context.WithTimeout(context.Background(), m.coachTimeout)
	reply := coach.RequestReply(ctx, m.responder, m.ctrl.ChatHistory())
	return func() tea.Msg {
		defer cancel()
		return reply()
	}
}

// Package app holds the application controller: the single owner of all
// AuraGenie state. Views never mutate state directly; they call the
// operations defined here and re-read a Snapshot.
package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/auragenie/internal/constants"
	apperrors "github.com/julianstephens/auragenie/internal/errors"
	"github.com/julianstephens/auragenie/internal/logger"
	"github.com/julianstephens/auragenie/internal/models"
)

// Snapshot is a consistent copy of the controller state
type Snapshot struct {
	Mood        models.Mood          `json:"mood"`
	ActiveTab   models.Tab           `json:"active_tab"`
	Goals       []models.Goal        `json:"goals"`
	Health      models.HealthData    `json:"health"`
	ChatHistory []models.ChatMessage `json:"chat_history"`
}

// Option configures a Controller
type Option func(*Controller)

// WithClock overrides the time source used for goal ids
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// Controller owns mood, navigation, goals, health metrics and chat history.
// Every operation that pairs a state change with a chat message commits both
// under one lock, so readers never see one without the other.
type Controller struct {
	mu     sync.RWMutex
	mood   models.Mood
	tab    models.Tab
	goals  []models.Goal
	health models.HealthData
	chat   []models.ChatMessage
	now    func() time.Time

	lmu          sync.Mutex
	listeners    map[int]Listener
	nextListener int
}

// New creates a controller with the startup state
func New(opts ...Option) *Controller {
	c := &Controller{
		mood:  models.MoodCalm,
		tab:   models.TabDashboard,
		goals: []models.Goal{},
		health: models.HealthData{
			Sleep:    constants.DefaultSleepHours,
			Water:    constants.DefaultWaterGlasses,
			Exercise: constants.DefaultExerciseMinutes,
		},
		chat:      []models.ChatMessage{models.ModelMessage(constants.CoachGreeting)},
		now:       time.Now,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetMood replaces the current mood
func (c *Controller) SetMood(mood models.Mood) error {
	if !mood.Valid() {
		logger.Warn("Rejected mood", "mood", mood)
		return fmt.Errorf("set mood %q: %w", mood, apperrors.ErrUnknownMood)
	}

	c.mu.Lock()
	c.mood = mood
	c.mu.Unlock()

	c.emit(Event{Kind: EventMoodChanged, Mood: mood})
	return nil
}

// SetActiveTab replaces the active tab. Unknown tabs keep the previous one.
func (c *Controller) SetActiveTab(tab models.Tab) error {
	if !tab.Valid() {
		logger.Warn("Rejected tab", "tab", tab)
		return fmt.Errorf("set tab %q: %w", tab, apperrors.ErrUnknownTab)
	}

	c.mu.Lock()
	c.tab = tab
	c.mu.Unlock()

	c.emit(Event{Kind: EventTabChanged, Tab: tab})
	return nil
}

// AddGoal appends an incomplete goal and the coach's acknowledgement.
// Empty text is accepted.
func (c *Controller) AddGoal(text string) (models.Goal, models.ChatMessage) {
	c.mu.Lock()
	goal := models.Goal{
		ID:   c.now().UnixMilli(),
		Text: text,
	}
	msg := models.ModelMessage(fmt.Sprintf(constants.GoalAddedTemplate, text))
	c.goals = append(c.goals, goal)
	c.chat = append(c.chat, msg)
	c.mu.Unlock()

	logger.Debug("Goal added", "id", goal.ID)
	c.emit(Event{Kind: EventGoalAdded, Goal: goal, Messages: []models.ChatMessage{msg}})
	return goal, msg
}

// ToggleGoal flips the completion flag of the goal with id and reports
// whether one matched. Only an incomplete to complete transition produces a
// celebration message. Goals sharing an id (created within the same
// millisecond) are all flipped; the first match decides the message.
func (c *Controller) ToggleGoal(id int64) (models.Goal, bool) {
	c.mu.Lock()
	var (
		toggled models.Goal
		found   bool
	)
	for i := range c.goals {
		if c.goals[i].ID != id {
			continue
		}
		c.goals[i].Completed = !c.goals[i].Completed
		if !found {
			toggled = c.goals[i]
			found = true
		}
	}
	if !found {
		c.mu.Unlock()
		return models.Goal{}, false
	}

	var appended []models.ChatMessage
	if toggled.Completed {
		msg := models.ModelMessage(fmt.Sprintf(constants.GoalCompletedTemplate, toggled.Text))
		c.chat = append(c.chat, msg)
		appended = append(appended, msg)
	}
	c.mu.Unlock()

	logger.Debug("Goal toggled", "id", id, "completed", toggled.Completed)
	c.emit(Event{Kind: EventGoalToggled, Goal: toggled, Messages: appended})
	return toggled, true
}

// UpdateHealthData replaces a single metric with copy-on-write semantics.
// Values are not range checked.
func (c *Controller) UpdateHealthData(key models.HealthKey, value float64) error {
	c.mu.Lock()
	next, err := c.health.With(key, value)
	if err != nil {
		c.mu.Unlock()
		logger.Warn("Rejected health update", "key", key)
		return fmt.Errorf("update health: %w", err)
	}
	c.health = next
	c.mu.Unlock()

	c.emit(Event{Kind: EventHealthUpdated, HealthKey: key, Health: next})
	return nil
}

// AppendMessage adds a message from the coach view to the history
func (c *Controller) AppendMessage(msg models.ChatMessage) error {
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("append message: %w", err)
	}

	c.mu.Lock()
	c.chat = append(c.chat, msg)
	c.mu.Unlock()

	c.emit(Event{Kind: EventMessageAppended, Messages: []models.ChatMessage{msg}})
	return nil
}

func (c *Controller) Mood() models.Mood {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mood
}

func (c *Controller) ActiveTab() models.Tab {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tab
}

func (c *Controller) HealthData() models.HealthData {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.health
}

// Goals returns a copy in insertion order
func (c *Controller) Goals() []models.Goal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Goal(nil), c.goals...)
}

// ChatHistory returns a copy in chronological order
func (c *Controller) ChatHistory() []models.ChatMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.ChatMessage(nil), c.chat...)
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		Mood:        c.mood,
		ActiveTab:   c.tab,
		Goals:       append([]models.Goal(nil), c.goals...),
		Health:      c.health,
		ChatHistory: append([]models.ChatMessage(nil), c.chat...),
	}
}

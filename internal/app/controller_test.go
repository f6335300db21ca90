package app

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/auragenie/internal/constants"
	apperrors "github.com/julianstephens/auragenie/internal/errors"
	"github.com/julianstephens/auragenie/internal/models"
)

// steppingClock advances one millisecond per call so goal ids are distinct
func steppingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Millisecond)
		return current
	}
}

func newTestController() *Controller {
	return New(WithClock(steppingClock(time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC))))
}

func TestNew_InitialState(t *testing.T) {
	c := New()
	snap := c.Snapshot()

	assert.Equal(t, models.MoodCalm, snap.Mood)
	assert.Equal(t, models.TabDashboard, snap.ActiveTab)
	assert.Empty(t, snap.Goals)
	assert.Equal(t, models.HealthData{Sleep: 8, Water: 8, Exercise: 30}, snap.Health)
	require.Len(t, snap.ChatHistory, 1)
	assert.Equal(t, models.ModelMessage(constants.CoachGreeting), snap.ChatHistory[0])
}

func TestAddGoal_Scenario(t *testing.T) {
	c := newTestController()

	goal, msg := c.AddGoal("Run 5k")
	goals := c.Goals()
	require.Len(t, goals, 1)
	assert.Equal(t, models.Goal{ID: goal.ID, Text: "Run 5k", Completed: false}, goals[0])

	history := c.ChatHistory()
	require.Len(t, history, 2)
	assert.Equal(t, models.RoleModel, history[1].Role)
	assert.Contains(t, history[1].Content, "Run 5k")
	assert.Equal(t, `Great goal! I've added "Run 5k" to your list. You can do it!`, msg.Content)

	// complete it
	toggled, ok := c.ToggleGoal(goal.ID)
	require.True(t, ok)
	assert.True(t, toggled.Completed)
	assert.Equal(t, []models.Goal{{ID: goal.ID, Text: "Run 5k", Completed: true}}, c.Goals())
	history = c.ChatHistory()
	require.Len(t, history, 3)
	assert.Equal(t, `Amazing! You completed your goal: "Run 5k". Let's celebrate this win!`, history[2].Content)

	// un-complete it: no new message
	toggled, ok = c.ToggleGoal(goal.ID)
	require.True(t, ok)
	assert.False(t, toggled.Completed)
	assert.False(t, c.Goals()[0].Completed)
	assert.Len(t, c.ChatHistory(), 3)
}

func TestAddGoal_ManyCalls(t *testing.T) {
	c := newTestController()

	const n = 25
	for i := 0; i < n; i++ {
		c.AddGoal(fmt.Sprintf("goal %d", i))
	}

	goals := c.Goals()
	require.Len(t, goals, n)
	ids := make(map[int64]bool, n)
	for i, g := range goals {
		assert.False(t, g.Completed)
		assert.Equal(t, fmt.Sprintf("goal %d", i), g.Text, "insertion order must be preserved")
		ids[g.ID] = true
	}
	assert.Len(t, ids, n, "ids must be pairwise distinct")
	assert.Len(t, c.ChatHistory(), n+1)
}

func TestAddGoal_EmptyTextAccepted(t *testing.T) {
	c := newTestController()
	goal, msg := c.AddGoal("")
	assert.Equal(t, "", goal.Text)
	assert.Equal(t, `Great goal! I've added "" to your list. You can do it!`, msg.Content)
	assert.Len(t, c.Goals(), 1)
}

func TestToggleGoal_DoubleToggleRestores(t *testing.T) {
	c := newTestController()
	first, _ := c.AddGoal("Drink water")
	second, _ := c.AddGoal("Sleep early")
	before := len(c.ChatHistory())

	c.ToggleGoal(second.ID)
	c.ToggleGoal(second.ID)

	goals := c.Goals()
	assert.Equal(t, first.ID, goals[0].ID, "toggling must not reorder goals")
	assert.Equal(t, second.ID, goals[1].ID)
	assert.False(t, goals[1].Completed)
	assert.False(t, goals[0].Completed, "other goals are untouched")
	assert.Len(t, c.ChatHistory(), before+1, "only the completing toggle celebrates")
}

func TestToggleGoal_UnknownIDIsNoop(t *testing.T) {
	c := newTestController()
	c.AddGoal("Stretch")
	goalsBefore := c.Goals()
	historyBefore := c.ChatHistory()

	var events int
	c.Subscribe(func(Event) { events++ })

	_, ok := c.ToggleGoal(42)
	assert.False(t, ok)
	assert.Equal(t, goalsBefore, c.Goals())
	assert.Equal(t, historyBefore, c.ChatHistory())
	assert.Zero(t, events)
}

func TestToggleGoal_SharedID(t *testing.T) {
	frozen := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	c := New(WithClock(func() time.Time { return frozen }))

	a, _ := c.AddGoal("first")
	b, _ := c.AddGoal("second")
	require.Equal(t, a.ID, b.ID, "a frozen clock produces colliding ids")

	toggled, ok := c.ToggleGoal(a.ID)
	require.True(t, ok)
	assert.Equal(t, "first", toggled.Text)
	for _, g := range c.Goals() {
		assert.True(t, g.Completed)
	}
	assert.Len(t, c.ChatHistory(), 4)
}

func TestUpdateHealthData(t *testing.T) {
	c := newTestController()
	held := c.HealthData()

	require.NoError(t, c.UpdateHealthData(models.HealthSleep, 5))
	require.NoError(t, c.UpdateHealthData(models.HealthWater, 10))

	assert.Equal(t, models.HealthData{Sleep: 5, Water: 10, Exercise: 30}, c.HealthData())
	assert.Equal(t, models.HealthData{Sleep: 8, Water: 8, Exercise: 30}, held, "earlier snapshots stay valid")
	assert.Len(t, c.ChatHistory(), 1, "health updates never chat")

	err := c.UpdateHealthData(models.HealthKey("steps"), 1000)
	assert.ErrorIs(t, err, apperrors.ErrUnknownHealthKey)
	assert.Equal(t, models.HealthData{Sleep: 5, Water: 10, Exercise: 30}, c.HealthData())
}

func TestSetMood(t *testing.T) {
	c := newTestController()

	for _, mood := range models.AllMoods() {
		require.NoError(t, c.SetMood(mood))
		assert.Equal(t, mood, c.Mood())
	}
	assert.Equal(t, models.MoodStressed, c.Mood())

	err := c.SetMood(models.Mood("Angry"))
	assert.ErrorIs(t, err, apperrors.ErrUnknownMood)
	assert.Equal(t, models.MoodStressed, c.Mood())
	assert.Len(t, c.ChatHistory(), 1)
}

func TestSetActiveTab(t *testing.T) {
	c := newTestController()

	for _, from := range models.AllTabs() {
		for _, to := range models.AllTabs() {
			require.NoError(t, c.SetActiveTab(from))
			require.NoError(t, c.SetActiveTab(to))
			assert.Equal(t, to, c.ActiveTab())
		}
	}

	require.NoError(t, c.SetActiveTab(models.TabVideo))
	assert.ErrorIs(t, c.SetActiveTab(models.Tab("settings")), apperrors.ErrUnknownTab)
	assert.Equal(t, models.TabVideo, c.ActiveTab())
}

func TestAppendMessage(t *testing.T) {
	c := newTestController()

	require.NoError(t, c.AppendMessage(models.UserMessage("I feel tired")))
	require.NoError(t, c.AppendMessage(models.ModelMessage("Let's rest a bit.")))
	assert.ErrorIs(t, c.AppendMessage(models.ChatMessage{Role: "system"}), apperrors.ErrUnknownRole)

	history := c.ChatHistory()
	require.Len(t, history, 3)
	assert.Equal(t, models.RoleUser, history[1].Role)
	assert.Equal(t, "Let's rest a bit.", history[2].Content)
}

func TestSnapshotIsACopy(t *testing.T) {
	c := newTestController()
	c.AddGoal("Journal")

	snap := c.Snapshot()
	snap.Goals[0].Completed = true
	snap.ChatHistory[0].Content = "tampered"

	assert.False(t, c.Goals()[0].Completed)
	assert.Equal(t, constants.CoachGreeting, c.ChatHistory()[0].Content)
}

func TestSubscribe_ReceivesPairedMessages(t *testing.T) {
	c := newTestController()

	var events []Event
	unsubscribe := c.Subscribe(func(ev Event) {
		// state is already committed when listeners run
		snap := c.Snapshot()
		if ev.Kind == EventGoalAdded {
			assert.Len(t, snap.Goals, 1)
			assert.Len(t, snap.ChatHistory, 2)
		}
		events = append(events, ev)
	})

	goal, _ := c.AddGoal("Meditate")
	c.ToggleGoal(goal.ID)
	c.ToggleGoal(goal.ID)
	require.NoError(t, c.SetMood(models.MoodFocused))
	require.NoError(t, c.UpdateHealthData(models.HealthExercise, 45))

	require.Len(t, events, 5)
	assert.Equal(t, EventGoalAdded, events[0].Kind)
	assert.Len(t, events[0].Messages, 1)
	assert.Equal(t, EventGoalToggled, events[1].Kind)
	assert.Len(t, events[1].Messages, 1)
	assert.Empty(t, events[2].Messages)
	assert.Equal(t, models.MoodFocused, events[3].Mood)
	assert.Equal(t, models.HealthExercise, events[4].HealthKey)
	assert.Equal(t, 45.0, events[4].Health.Exercise)

	unsubscribe()
	c.AddGoal("After unsubscribe")
	assert.Len(t, events, 5)
}

func TestConcurrentReadersSeePairedState(t *testing.T) {
	c := newTestController()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			c.AddGoal("g")
		}
	}()

	for i := 0; i < 200; i++ {
		snap := c.Snapshot()
		// greeting plus one acknowledgement per goal
		assert.Equal(t, len(snap.Goals)+1, len(snap.ChatHistory))
	}
	wg.Wait()
}

package app

import "github.com/julianstephens/auragenie/internal/models"

// EventKind identifies the controller operation that produced an Event
type EventKind string

const (
	EventMoodChanged     EventKind = "mood_changed"
	EventTabChanged      EventKind = "tab_changed"
	EventGoalAdded       EventKind = "goal_added"
	EventGoalToggled     EventKind = "goal_toggled"
	EventHealthUpdated   EventKind = "health_updated"
	EventMessageAppended EventKind = "message_appended"
)

// Event describes one committed state change. Messages lists the chat
// messages appended by the same operation, if any.
type Event struct {
	Kind      EventKind
	Mood      models.Mood
	Tab       models.Tab
	Goal      models.Goal
	HealthKey models.HealthKey
	Health    models.HealthData
	Messages  []models.ChatMessage
}

// Listener receives events after the state change is visible to readers
type Listener func(Event)

// Subscribe registers l and returns a function that removes it
func (c *Controller) Subscribe(l Listener) func() {
	c.lmu.Lock()
	defer c.lmu.Unlock()

	id := c.nextListener
	c.nextListener++
	c.listeners[id] = l

	return func() {
		c.lmu.Lock()
		defer c.lmu.Unlock()
		delete(c.listeners, id)
	}
}

func (c *Controller) emit(ev Event) {
	c.lmu.Lock()
	listeners := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.lmu.Unlock()

	for _, l := range listeners {
		l(ev)
	}
}

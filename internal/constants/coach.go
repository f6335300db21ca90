package constants

import "strings"

const (
	// CoachGreeting seeds the chat history on startup.
	CoachGreeting = "Hello! I'm your AI Success Coach. How can I help you be your best self today?"

	// Follow-up messages synthesized by goal transitions. Each template takes
	// the goal text exactly once.
	GoalAddedTemplate     = "Great goal! I've added \"%s\" to your list. You can do it!"
	GoalCompletedTemplate = "Amazing! You completed your goal: \"%s\". Let's celebrate this win!"
)

// Initial health snapshot
const (
	DefaultSleepHours      = 8
	DefaultWaterGlasses    = 8
	DefaultExerciseMinutes = 30
)

func init() {
	for _, tmpl := range []string{GoalAddedTemplate, GoalCompletedTemplate} {
		if strings.Count(tmpl, "%s") != 1 || strings.Count(tmpl, "%") != 1 {
			panic("goal message templates must contain exactly one %s verb")
		}
	}
}

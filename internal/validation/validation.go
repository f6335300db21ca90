package validation

import (
	"fmt"
	"sort"

	"github.com/julianstephens/auragenie/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateGoalID   ConflictType = "duplicate_goal_id"
	ConflictDuplicateGoalText ConflictType = "duplicate_goal_text"
	ConflictEmptyGoal         ConflictType = "empty_goal"
	ConflictHealthOutOfRange  ConflictType = "health_out_of_range"
)

// Conflict represents a questionable value in the current state
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // Goal texts or metric names involved
	GoalIDs     []int64
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// healthLimits are the inclusive upper bounds for a plausible day
var healthLimits = map[models.HealthKey]float64{
	models.HealthSleep:    24,
	models.HealthWater:    40,
	models.HealthExercise: 24 * 60,
}

// Validator flags state the controller accepts but the user probably did not
// mean. It never rejects anything.
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateGoals checks goals for shared ids, repeated text and empty text
func (v *Validator) ValidateGoals(goals []models.Goal) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	byID := make(map[int64][]string)
	byText := make(map[string][]int64)
	var ids []int64
	var texts []string

	for _, g := range goals {
		if _, seen := byID[g.ID]; !seen {
			ids = append(ids, g.ID)
		}
		byID[g.ID] = append(byID[g.ID], g.Text)

		if g.Text == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictEmptyGoal,
				Description: fmt.Sprintf("Goal %d has no text", g.ID),
				GoalIDs:     []int64{g.ID},
			})
			continue
		}
		if _, seen := byText[g.Text]; !seen {
			texts = append(texts, g.Text)
		}
		byText[g.Text] = append(byText[g.Text], g.ID)
	}

	for _, id := range ids {
		if names := byID[id]; len(names) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateGoalID,
				Description: fmt.Sprintf("Goals %q share id %d and toggle together", names, id),
				Items:       names,
				GoalIDs:     []int64{id},
			})
		}
	}

	for _, text := range texts {
		if gids := byText[text]; len(gids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateGoalText,
				Description: fmt.Sprintf("Duplicate goal: %q (%d times)", text, len(gids)),
				Items:       []string{text},
				GoalIDs:     gids,
			})
		}
	}

	return result
}

// ValidateHealth checks each metric against a plausible daily range
func (v *Validator) ValidateHealth(h models.HealthData) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	for _, key := range models.AllHealthKeys() {
		value, _ := h.Get(key)
		limit := healthLimits[key]
		if value < 0 || value > limit {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictHealthOutOfRange,
				Description: fmt.Sprintf("%s of %g %s is outside 0-%g", key, value, key.Unit(), limit),
				Items:       []string{string(key)},
			})
		}
	}

	return result
}

// Validate runs every check and returns the conflicts ordered by type
func (v *Validator) Validate(goals []models.Goal, h models.HealthData) ValidationResult {
	result := v.ValidateGoals(goals)
	result.Conflicts = append(result.Conflicts, v.ValidateHealth(h).Conflicts...)
	sort.SliceStable(result.Conflicts, func(i, j int) bool {
		return result.Conflicts[i].Type < result.Conflicts[j].Type
	})
	return result
}

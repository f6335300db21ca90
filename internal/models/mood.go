package models

import (
	"fmt"
	"strings"

	apperrors "github.com/julianstephens/auragenie/internal/errors"
)

type Mood string

const (
	MoodHappy    Mood = "Happy"
	MoodCalm     Mood = "Calm"
	MoodFocused  Mood = "Focused"
	MoodSad      Mood = "Sad"
	MoodStressed Mood = "Stressed"
)

// AllMoods returns every mood in display order
func AllMoods() []Mood {
	return []Mood{MoodHappy, MoodCalm, MoodFocused, MoodSad, MoodStressed}
}

func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodCalm, MoodFocused, MoodSad, MoodStressed:
		return true
	}
	return false
}

func (m Mood) String() string { return string(m) }

// Next returns the mood after m in display order, wrapping around
func (m Mood) Next() Mood {
	return m.shift(1)
}

// Prev returns the mood before m in display order, wrapping around
func (m Mood) Prev() Mood {
	return m.shift(-1)
}

func (m Mood) shift(step int) Mood {
	moods := AllMoods()
	for i, mood := range moods {
		if mood == m {
			return moods[(i+step+len(moods))%len(moods)]
		}
	}
	return m
}

// ParseMood matches a mood name case-insensitively
func ParseMood(s string) (Mood, error) {
	for _, mood := range AllMoods() {
		if strings.EqualFold(strings.TrimSpace(s), string(mood)) {
			return mood, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, apperrors.ErrUnknownMood)
}

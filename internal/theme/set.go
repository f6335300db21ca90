package theme

import (
	"fmt"

	apperrors "github.com/julianstephens/auragenie/internal/errors"
	"github.com/julianstephens/auragenie/internal/models"
)

// Override replaces individual colours of a built-in theme. Empty fields keep
// the built-in value.
type Override struct {
	Start  string
	End    string
	Accent string
}

// Set is a validated, total mood to theme table
type Set struct {
	themes map[models.Mood]Theme
}

// NewSet builds the table from the built-in themes plus overrides and fails
// if any mood is left without a theme.
func NewSet(overrides map[models.Mood]Override) (*Set, error) {
	themes := make(map[models.Mood]Theme, len(models.AllMoods()))
	for _, mood := range models.AllMoods() {
		t, err := For(mood)
		if err != nil {
			return nil, err
		}
		themes[mood] = t
	}

	for mood, o := range overrides {
		t, ok := themes[mood]
		if !ok {
			return nil, fmt.Errorf("theme override for %q: %w", mood, apperrors.ErrUnknownMood)
		}
		if o.Start != "" {
			t.Start = o.Start
		}
		if o.End != "" {
			t.End = o.End
		}
		if o.Accent != "" {
			t.Accent = o.Accent
		}
		themes[mood] = t
	}

	s := &Set{themes: themes}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that every mood has a theme
func (s *Set) Validate() error {
	for _, mood := range models.AllMoods() {
		if _, ok := s.themes[mood]; !ok {
			return fmt.Errorf("%q: %w", mood, apperrors.ErrMissingTheme)
		}
	}
	return nil
}

func (s *Set) For(mood models.Mood) (Theme, error) {
	t, ok := s.themes[mood]
	if !ok {
		return Theme{}, fmt.Errorf("%q: %w", mood, apperrors.ErrMissingTheme)
	}
	return t, nil
}

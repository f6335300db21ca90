// Package theme maps each mood to its visual theme.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	apperrors "github.com/julianstephens/auragenie/internal/errors"
	"github.com/julianstephens/auragenie/internal/models"
)

type Texture string

const (
	TextureNone Texture = ""
	TextureSun  Texture = "sun"
	TextureWave Texture = "wave"
)

type Theme struct {
	ID      string
	Start   string
	End     string
	Accent  string
	Texture Texture
}

// For returns the built-in theme for mood. Every mood must have a case here;
// anything else is a configuration error.
func For(mood models.Mood) (Theme, error) {
	switch mood {
	case models.MoodHappy:
		return Theme{ID: "happy-gradient", Start: "#F9D423", End: "#FF4E50", Accent: "#FFF3B0", Texture: TextureSun}, nil
	case models.MoodCalm:
		return Theme{ID: "calm-gradient", Start: "#74EBD5", End: "#9FACE6", Accent: "#E0F7FA", Texture: TextureWave}, nil
	case models.MoodFocused:
		return Theme{ID: "focused-gradient", Start: "#4776E6", End: "#8E54E9", Accent: "#D1C4E9"}, nil
	case models.MoodSad:
		return Theme{ID: "sad-gradient", Start: "#536976", End: "#292E49", Accent: "#B0BEC5"}, nil
	case models.MoodStressed:
		return Theme{ID: "stressed-gradient", Start: "#ED213A", End: "#93291E", Accent: "#FFCDD2"}, nil
	default:
		return Theme{}, fmt.Errorf("%q: %w", mood, apperrors.ErrMissingTheme)
	}
}

// Gradient renders a full-width bar blending Start into End
func (t Theme) Gradient(width int) string {
	if width <= 0 {
		return ""
	}
	start, err := colorful.Hex(t.Start)
	if err != nil {
		return ""
	}
	end, err := colorful.Hex(t.End)
	if err != nil {
		return ""
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		step := 0.0
		if width > 1 {
			step = float64(i) / float64(width-1)
		}
		c := start.BlendLuv(end, step).Clamped()
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(" "))
	}
	return b.String()
}

// Pattern renders the faint texture overlay line, empty for untextured themes
func (t Theme) Pattern(width int) string {
	var unit string
	switch t.Texture {
	case TextureSun:
		unit = " ☀ · "
	case TextureWave:
		unit = "∿∿ "
	default:
		return ""
	}
	if width <= 0 {
		return ""
	}
	line := strings.Repeat(unit, width/lipgloss.Width(unit)+1)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Accent)).
		Faint(true).
		Render(truncate(line, width))
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
